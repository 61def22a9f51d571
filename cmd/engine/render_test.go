package main

import (
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/imaddar/poker-arena/services/tablecore/internal/domain"
)

func TestRenderHandTable(t *testing.T) {
	t.Parallel()

	cfg := domain.DefaultV0TableConfig()
	seats, err := buildInitialSeats(cfg, 3)
	require.NoError(t, err)
	require.NoError(t, markSittingOut(seats, []uint8{3}))

	state, err := domain.NewHandState(uuid.New(), 9, seats[0].SeatNo, seats[1].SeatNo, seats, cfg)
	require.NoError(t, err)

	out := renderHandTable(state)
	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	for _, line := range lines {
		assert.Len(t, line, tablePromptWidth+4)
	}

	assert.Contains(t, out, "Hand #9")
	assert.Contains(t, out, "Phase: dealing | Pot: 0")
	assert.Contains(t, out, "Board: -- -- -- -- --")
	assert.Contains(t, out, "  D Seat 1 | stack:10000 | in:0 ")
	assert.Contains(t, out, "> A Seat 2 | stack:10000 | in:0 ")
	assert.Contains(t, out, "  - Seat 3 | stack:10000 | in:0 [sitting_out]")
}

func TestFormatBoardCardsPadsToFive(t *testing.T) {
	t.Parallel()

	cards := domain.Standard52Deck().Cards()
	assert.Equal(t, "2c 3c 4c -- --", formatBoardCards(cards[:3]))
	assert.Equal(t, "-- -- -- -- --", formatBoardCards(nil))
}

func TestFrameLineTruncates(t *testing.T) {
	t.Parallel()

	line := frameLine(strings.Repeat("x", tablePromptWidth+10))
	assert.Equal(t, "| "+strings.Repeat("x", tablePromptWidth)+" |\n", line)
}
