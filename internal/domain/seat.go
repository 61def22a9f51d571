package domain

import (
	"encoding/json"
	"fmt"
)

// SeatNo is a 1-based seat index, valid relative to the max_seats of the
// table it was built for.
type SeatNo struct {
	value uint8
}

func NewSeatNo(value uint8, maxSeats uint8) (SeatNo, error) {
	if value == 0 || value > maxSeats {
		return SeatNo{}, invalidSeatNo(maxSeats, value)
	}
	return SeatNo{value: value}, nil
}

func (s SeatNo) Value() uint8 {
	return s.value
}

func (s SeatNo) String() string {
	return fmt.Sprintf("%d", s.value)
}

func (s SeatNo) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.value)
}

// UnmarshalJSON checks the decoded number against DefaultMaxSeats, the
// ceiling shared by every table.
func (s *SeatNo) UnmarshalJSON(data []byte) error {
	var value uint8
	if err := json.Unmarshal(data, &value); err != nil {
		return err
	}
	seatNo, err := NewSeatNo(value, DefaultMaxSeats)
	if err != nil {
		return err
	}
	*s = seatNo
	return nil
}

type SeatStatus string

const (
	SeatStatusActive     SeatStatus = "active"
	SeatStatusSittingOut SeatStatus = "sitting_out"
	SeatStatusBusted     SeatStatus = "busted"
)

func (s SeatStatus) Valid() bool {
	switch s {
	case SeatStatusActive, SeatStatusSittingOut, SeatStatusBusted:
		return true
	}
	return false
}

func (s SeatStatus) String() string {
	return string(s)
}

func (s SeatStatus) MarshalText() ([]byte, error) {
	if !s.Valid() {
		return nil, fmt.Errorf("unknown seat status %q", string(s))
	}
	return []byte(s), nil
}

func (s *SeatStatus) UnmarshalText(text []byte) error {
	status := SeatStatus(text)
	if !status.Valid() {
		return fmt.Errorf("unknown seat status %q", string(text))
	}
	*s = status
	return nil
}

// SeatState holds one seat's chips and participation. Stack, commitment and
// status are owned by the betting engine; the seat number is fixed.
type SeatState struct {
	SeatNo           SeatNo     `json:"seat_no"`
	Stack            uint32     `json:"stack"`
	CommittedInRound uint32     `json:"committed_in_round"`
	Status           SeatStatus `json:"status"`
}

func NewSeatState(seatNo SeatNo, stack uint32) SeatState {
	return SeatState{
		SeatNo:           seatNo,
		Stack:            stack,
		CommittedInRound: 0,
		Status:           SeatStatusActive,
	}
}

func (s SeatState) IsActive() bool {
	return s.Status == SeatStatusActive
}
