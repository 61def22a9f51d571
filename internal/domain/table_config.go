package domain

import "time"

const (
	DefaultMaxSeats          uint8  = 6
	DefaultMinPlayersToStart uint8  = 2
	DefaultStartingStack     uint32 = 10_000
	DefaultSmallBlind        uint32 = 50
	DefaultBigBlind          uint32 = 100
	DefaultActionTimeoutMS   uint64 = 2_000
)

type TableConfig struct {
	MaxSeats          uint8  `json:"max_seats"`
	MinPlayersToStart uint8  `json:"min_players_to_start"`
	StartingStack     uint32 `json:"starting_stack"`
	SmallBlind        uint32 `json:"small_blind"`
	BigBlind          uint32 `json:"big_blind"`
	ActionTimeoutMS   uint64 `json:"action_timeout_ms"`
}

func DefaultV0TableConfig() TableConfig {
	return TableConfig{
		MaxSeats:          DefaultMaxSeats,
		MinPlayersToStart: DefaultMinPlayersToStart,
		StartingStack:     DefaultStartingStack,
		SmallBlind:        DefaultSmallBlind,
		BigBlind:          DefaultBigBlind,
		ActionTimeoutMS:   DefaultActionTimeoutMS,
	}
}

// Validate reports the first violated rule, checked in order: seat count,
// minimum players, blind structure.
func (c TableConfig) Validate() error {
	// DefaultMaxSeats is the hard ceiling for every table, not just v0.
	if c.MaxSeats < 2 || c.MaxSeats > DefaultMaxSeats {
		return invalidMaxSeats(c.MaxSeats)
	}

	if c.MinPlayersToStart < 2 || c.MinPlayersToStart > c.MaxSeats {
		return invalidMinPlayersToStart()
	}

	if c.BigBlind < c.SmallBlind {
		return invalidBlindStructure()
	}

	return nil
}

func (c TableConfig) ActionTimeout() time.Duration {
	return time.Duration(c.ActionTimeoutMS) * time.Millisecond
}
