package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/sanity-io/litter"

	"github.com/imaddar/poker-arena/services/tablecore/internal/domain"
)

const (
	formatJSON = "json"
	formatDump = "dump"
	formatText = "text"
)

// app carries what every command needs to report its result.
type app struct {
	logger *log.Logger
	out    io.Writer
	format string
}

type namedTable struct {
	Name   string             `json:"name"`
	Config domain.TableConfig `json:"config"`
}

func (a *app) print(v any) error {
	var text string
	switch a.format {
	case formatDump:
		text = litter.Sdump(v) + "\n"
	case formatText:
		text = renderText(v)
	default:
		data, err := json.MarshalIndent(v, "", "  ")
		if err != nil {
			return fmt.Errorf("encode output: %w", err)
		}
		text = string(data) + "\n"
	}

	_, err := io.WriteString(a.out, text)
	return err
}

func renderText(v any) string {
	switch value := v.(type) {
	case domain.Deck:
		return formatCardList(value.Cards()) + "\n"
	case domain.Action:
		return value.String() + "\n"
	case domain.HandState:
		return renderHandTable(value)
	case []namedTable:
		var builder strings.Builder
		for _, table := range value {
			cfg := table.Config
			fmt.Fprintf(&builder,
				"%s: seats=%d min_players=%d stack=%d blinds=%d/%d timeout=%s\n",
				table.Name,
				cfg.MaxSeats,
				cfg.MinPlayersToStart,
				cfg.StartingStack,
				cfg.SmallBlind,
				cfg.BigBlind,
				cfg.ActionTimeout(),
			)
		}
		return builder.String()
	default:
		return fmt.Sprintf("%v\n", v)
	}
}

func formatCardList(cards []domain.Card) string {
	formatted := make([]string, 0, len(cards))
	for _, card := range cards {
		formatted = append(formatted, card.String())
	}
	return strings.Join(formatted, " ")
}
