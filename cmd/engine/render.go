package main

import (
	"fmt"
	"strings"

	"github.com/imaddar/poker-arena/services/tablecore/internal/domain"
)

const tablePromptWidth = 56

func renderHandTable(state domain.HandState) string {
	lines := []string{
		"HAND SNAPSHOT",
		fmt.Sprintf("Hand #%d | Table: %s", state.HandNo(), state.TableID()),
		fmt.Sprintf("Hand ID: %s", state.HandID()),
		fmt.Sprintf("Phase: %s | Pot: %d", state.Phase(), state.Pot()),
		fmt.Sprintf("Board: %s", formatBoardCards(state.Board())),
	}

	for _, seat := range state.Seats() {
		lines = append(lines, formatSeatLine(seat, state))
	}

	var builder strings.Builder
	builder.WriteString("+" + strings.Repeat("-", tablePromptWidth+2) + "+\n")
	for _, line := range lines {
		builder.WriteString(frameLine(line))
	}
	builder.WriteString("+" + strings.Repeat("-", tablePromptWidth+2) + "+\n")
	return builder.String()
}

func frameLine(content string) string {
	if len(content) > tablePromptWidth {
		content = content[:tablePromptWidth]
	}
	return fmt.Sprintf("| %-*s |\n", tablePromptWidth, content)
}

func formatSeatLine(seat domain.SeatState, state domain.HandState) string {
	marker := " "
	if seat.SeatNo == state.ActingSeat() {
		marker = ">"
	}

	role := "-"
	switch {
	case seat.SeatNo == state.ActingSeat() && seat.SeatNo == state.ButtonSeat():
		role = "A/D"
	case seat.SeatNo == state.ActingSeat():
		role = "A"
	case seat.SeatNo == state.ButtonSeat():
		role = "D"
	}

	status := ""
	if !seat.IsActive() {
		status = " [" + string(seat.Status) + "]"
	}

	return fmt.Sprintf(
		"%s %s Seat %d | stack:%d | in:%d%s",
		marker,
		role,
		seat.SeatNo.Value(),
		seat.Stack,
		seat.CommittedInRound,
		status,
	)
}

func formatBoardCards(board []domain.Card) string {
	formatted := make([]string, 0, domain.MaxBoardCards)
	for i := 0; i < domain.MaxBoardCards; i++ {
		if i < len(board) {
			formatted = append(formatted, board[i].String())
			continue
		}
		formatted = append(formatted, "--")
	}
	return strings.Join(formatted, " ")
}
