package main

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/imaddar/poker-arena/services/tablecore/internal/domain"
	"github.com/imaddar/poker-arena/services/tablecore/internal/tableconfig"
)

type DeckCmd struct{}

func (c *DeckCmd) Run(a *app) error {
	deck := domain.Standard52Deck()
	a.logger.Debug("built standard deck", "cards", deck.Len())
	return a.print(deck)
}

type ConfigCmd struct {
	Path string `arg:"" type:"path" help:"HCL table file"`
}

func (c *ConfigCmd) Run(a *app) error {
	file, err := tableconfig.Load(c.Path)
	if err != nil {
		return err
	}

	tables := make([]namedTable, 0, len(file.Names()))
	for _, name := range file.Names() {
		cfg, err := file.Table(name)
		if err != nil {
			return err
		}
		a.logger.Info("table valid", "table", name, "max_seats", cfg.MaxSeats, "blinds", fmt.Sprintf("%d/%d", cfg.SmallBlind, cfg.BigBlind))
		tables = append(tables, namedTable{Name: name, Config: cfg})
	}
	return a.print(tables)
}

type ActionCmd struct {
	Input []string `arg:"" help:"Action words, e.g. 'raise 400' or 'check'"`
}

func (c *ActionCmd) Run(a *app) error {
	action, err := parseAction(strings.Join(c.Input, " "))
	if err != nil {
		return err
	}
	a.logger.Debug("action valid", "kind", action.Kind())
	return a.print(action)
}

type HandCmd struct {
	Seats      uint8   `short:"s" default:"2" help:"Number of seats to fill, numbered from 1"`
	SittingOut []uint8 `name:"sitting-out" help:"Seat numbers that are sitting out"`
	Button     uint8   `default:"1" help:"Button seat number"`
	Acting     uint8   `default:"1" help:"Acting seat number"`
	HandNo     uint64  `name:"hand-no" default:"1" help:"Hand number within the table"`
	TableID    string  `name:"table-id" help:"Table UUID (random when empty)"`
	ConfigFile string  `name:"config" type:"path" help:"HCL table file" env:"ENGINE_TABLE_CONFIG"`
	Table      string  `default:"default" help:"Table name inside the config file"`
}

func (c *HandCmd) Run(a *app) error {
	cfg, err := c.tableConfig()
	if err != nil {
		return err
	}

	seats, err := buildInitialSeats(cfg, c.Seats)
	if err != nil {
		return err
	}
	if err := markSittingOut(seats, c.SittingOut); err != nil {
		return err
	}

	button, err := domain.NewSeatNo(c.Button, cfg.MaxSeats)
	if err != nil {
		return fmt.Errorf("button seat: %w", err)
	}
	acting, err := domain.NewSeatNo(c.Acting, cfg.MaxSeats)
	if err != nil {
		return fmt.Errorf("acting seat: %w", err)
	}

	tableID := uuid.New()
	if c.TableID != "" {
		tableID, err = uuid.Parse(c.TableID)
		if err != nil {
			return fmt.Errorf("parse table id: %w", err)
		}
	}

	state, err := domain.NewHandState(tableID, c.HandNo, button, acting, seats, cfg)
	if err != nil {
		return err
	}

	a.logger.Info(
		"hand built",
		"hand_id", state.HandID(),
		"table_id", state.TableID(),
		"hand_no", state.HandNo(),
		"seats", len(seats),
		"active", state.ActiveSeatCount(),
	)
	return a.print(state)
}

func (c *HandCmd) tableConfig() (domain.TableConfig, error) {
	if c.ConfigFile == "" {
		return domain.DefaultV0TableConfig(), nil
	}
	file, err := tableconfig.Load(c.ConfigFile)
	if err != nil {
		return domain.TableConfig{}, err
	}
	return file.Table(c.Table)
}
