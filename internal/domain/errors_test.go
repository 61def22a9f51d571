package domain

import (
	"errors"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorIsMatchesKindOnly(t *testing.T) {
	t.Parallel()

	err := tooManySeats(2, 3)
	assert.ErrorIs(t, err, ErrTooManySeats)
	assert.NotErrorIs(t, err, ErrDuplicateSeat)
	assert.NotErrorIs(t, err, errors.New("hand cannot exceed max seats (2), got 3"))

	wrapped := fmt.Errorf("start hand: %w", err)
	assert.ErrorIs(t, wrapped, ErrTooManySeats)

	var domainErr *Error
	require.ErrorAs(t, wrapped, &domainErr)
	assert.Equal(t, KindTooManySeats, domainErr.Kind)
}

func TestErrorMessages(t *testing.T) {
	t.Parallel()

	tests := []struct {
		err  error
		want string
	}{
		{invalidRank(1), "rank must be in range 2..=14, got 1"},
		{invalidSeatNo(4, 5), "seat number must be in range 1..=4, got 5"},
		{missingActionAmount(ActionBet), "action amount is required for bet"},
		{unexpectedActionAmount(ActionCall), "action amount is not allowed for call"},
		{invalidMaxSeats(8), "table max_seats must be in range 2..=6, got 8"},
		{invalidMinPlayersToStart(), "min_players_to_start must be at least 2 and <= max_seats"},
		{invalidBlindStructure(), "big blind must be greater than or equal to small blind"},
		{notEnoughActiveSeats(3, 2), "hand must start with at least 3 active seats, got 2"},
		{tooManySeats(6, 7), "hand cannot exceed max seats (6), got 7"},
		{duplicateSeat(), "duplicate seat numbers are not allowed"},
	}

	for _, tt := range tests {
		assert.EqualError(t, tt.err, tt.want)
	}
}

func TestErrorKindString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "duplicate_seat", KindDuplicateSeat.String())
	assert.Equal(t, "invalid_rank", KindInvalidRank.String())
	assert.Equal(t, "error_kind(0)", ErrorKind(0).String())
}

func TestConstructorErrorsAreNotSharedSentinels(t *testing.T) {
	t.Parallel()

	cfg := DefaultV0TableConfig()
	seatNo, err := NewSeatNo(1, cfg.MaxSeats)
	require.NoError(t, err)
	seats := []SeatState{NewSeatState(seatNo, 100), NewSeatState(seatNo, 100)}

	_, err = NewHandState(uuid.New(), 1, seatNo, seatNo, seats, cfg)
	var domainErr *Error
	require.ErrorAs(t, err, &domainErr)
	require.NotSame(t, ErrDuplicateSeat, domainErr)
	domainErr.Kind = KindInvalidRank
	assert.Equal(t, KindDuplicateSeat, ErrDuplicateSeat.Kind)
	assert.EqualError(t, ErrDuplicateSeat, "duplicate seat numbers are not allowed")

	blinds := cfg
	blinds.SmallBlind = blinds.BigBlind + 1
	first := blinds.Validate()
	second := blinds.Validate()
	require.ErrorIs(t, first, ErrInvalidBlindStructure)
	assert.NotSame(t, ErrInvalidBlindStructure, first)
	assert.NotSame(t, first, second)

	minPlayers := cfg
	minPlayers.MinPlayersToStart = 1
	err = minPlayers.Validate()
	require.ErrorIs(t, err, ErrInvalidMinPlayersToStart)
	assert.NotSame(t, ErrInvalidMinPlayersToStart, err)
}
