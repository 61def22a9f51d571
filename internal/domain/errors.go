package domain

import "fmt"

type ErrorKind uint8

const (
	KindInvalidRank ErrorKind = iota + 1
	KindInvalidSeatNo
	KindMissingActionAmount
	KindUnexpectedActionAmount
	KindInvalidMaxSeats
	KindInvalidMinPlayersToStart
	KindInvalidBlindStructure
	KindNotEnoughActiveSeats
	KindTooManySeats
	KindDuplicateSeat
)

func (k ErrorKind) String() string {
	switch k {
	case KindInvalidRank:
		return "invalid_rank"
	case KindInvalidSeatNo:
		return "invalid_seat_no"
	case KindMissingActionAmount:
		return "missing_action_amount"
	case KindUnexpectedActionAmount:
		return "unexpected_action_amount"
	case KindInvalidMaxSeats:
		return "invalid_max_seats"
	case KindInvalidMinPlayersToStart:
		return "invalid_min_players_to_start"
	case KindInvalidBlindStructure:
		return "invalid_blind_structure"
	case KindNotEnoughActiveSeats:
		return "not_enough_active_seats"
	case KindTooManySeats:
		return "too_many_seats"
	case KindDuplicateSeat:
		return "duplicate_seat"
	default:
		return fmt.Sprintf("error_kind(%d)", uint8(k))
	}
}

// Error is the single error type produced by every fallible constructor in
// this package. Only the payload fields relevant to Kind are populated.
type Error struct {
	Kind    ErrorKind
	Value   uint8
	Action  ActionKind
	Max     uint8
	Minimum uint8
	Actual  int
}

// Sentinels for errors.Is. Matching compares Kind only, so a sentinel matches
// any payload. Constructors never return a sentinel itself.
var (
	ErrInvalidRank              = &Error{Kind: KindInvalidRank}
	ErrInvalidSeatNo            = &Error{Kind: KindInvalidSeatNo}
	ErrMissingActionAmount      = &Error{Kind: KindMissingActionAmount}
	ErrUnexpectedActionAmount   = &Error{Kind: KindUnexpectedActionAmount}
	ErrInvalidMaxSeats          = &Error{Kind: KindInvalidMaxSeats}
	ErrInvalidMinPlayersToStart = &Error{Kind: KindInvalidMinPlayersToStart}
	ErrInvalidBlindStructure    = &Error{Kind: KindInvalidBlindStructure}
	ErrNotEnoughActiveSeats     = &Error{Kind: KindNotEnoughActiveSeats}
	ErrTooManySeats             = &Error{Kind: KindTooManySeats}
	ErrDuplicateSeat            = &Error{Kind: KindDuplicateSeat}
)

func (e *Error) Error() string {
	switch e.Kind {
	case KindInvalidRank:
		return fmt.Sprintf("rank must be in range %d..=%d, got %d", MinRank, MaxRank, e.Value)
	case KindInvalidSeatNo:
		return fmt.Sprintf("seat number must be in range 1..=%d, got %d", e.Max, e.Actual)
	case KindMissingActionAmount:
		return fmt.Sprintf("action amount is required for %s", e.Action)
	case KindUnexpectedActionAmount:
		return fmt.Sprintf("action amount is not allowed for %s", e.Action)
	case KindInvalidMaxSeats:
		return fmt.Sprintf("table max_seats must be in range 2..=%d, got %d", DefaultMaxSeats, e.Value)
	case KindInvalidMinPlayersToStart:
		return "min_players_to_start must be at least 2 and <= max_seats"
	case KindInvalidBlindStructure:
		return "big blind must be greater than or equal to small blind"
	case KindNotEnoughActiveSeats:
		return fmt.Sprintf("hand must start with at least %d active seats, got %d", e.Minimum, e.Actual)
	case KindTooManySeats:
		return fmt.Sprintf("hand cannot exceed max seats (%d), got %d", e.Max, e.Actual)
	case KindDuplicateSeat:
		return "duplicate seat numbers are not allowed"
	default:
		return "domain error: " + e.Kind.String()
	}
}

func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok || t == nil {
		return false
	}
	return t.Kind == e.Kind
}

func invalidRank(value uint8) error {
	return &Error{Kind: KindInvalidRank, Value: value}
}

func invalidSeatNo(maxSeats, actual uint8) error {
	return &Error{Kind: KindInvalidSeatNo, Max: maxSeats, Actual: int(actual)}
}

func missingActionAmount(kind ActionKind) error {
	return &Error{Kind: KindMissingActionAmount, Action: kind}
}

func unexpectedActionAmount(kind ActionKind) error {
	return &Error{Kind: KindUnexpectedActionAmount, Action: kind}
}

func invalidMaxSeats(value uint8) error {
	return &Error{Kind: KindInvalidMaxSeats, Value: value}
}

func invalidMinPlayersToStart() error {
	return &Error{Kind: KindInvalidMinPlayersToStart}
}

func invalidBlindStructure() error {
	return &Error{Kind: KindInvalidBlindStructure}
}

func duplicateSeat() error {
	return &Error{Kind: KindDuplicateSeat}
}

func notEnoughActiveSeats(minimum uint8, actual int) error {
	return &Error{Kind: KindNotEnoughActiveSeats, Minimum: minimum, Actual: actual}
}

func tooManySeats(maxSeats uint8, actual int) error {
	return &Error{Kind: KindTooManySeats, Max: maxSeats, Actual: actual}
}
