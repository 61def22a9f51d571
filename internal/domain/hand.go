package domain

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
)

const MaxBoardCards = 5

type Street string

const (
	StreetPreflop Street = "preflop"
	StreetFlop    Street = "flop"
	StreetTurn    Street = "turn"
	StreetRiver   Street = "river"
)

func Streets() []Street {
	return []Street{StreetPreflop, StreetFlop, StreetTurn, StreetRiver}
}

func (s Street) Valid() bool {
	switch s {
	case StreetPreflop, StreetFlop, StreetTurn, StreetRiver:
		return true
	}
	return false
}

func (s Street) String() string {
	return string(s)
}

func (s Street) MarshalText() ([]byte, error) {
	if !s.Valid() {
		return nil, fmt.Errorf("unknown street %q", string(s))
	}
	return []byte(s), nil
}

func (s *Street) UnmarshalText(text []byte) error {
	street := Street(text)
	if !street.Valid() {
		return fmt.Errorf("unknown street %q", string(text))
	}
	*s = street
	return nil
}

type PhaseKind string

const (
	PhaseKindDealing  PhaseKind = "dealing"
	PhaseKindBetting  PhaseKind = "betting"
	PhaseKindShowdown PhaseKind = "showdown"
	PhaseKindComplete PhaseKind = "complete"
)

// HandPhase is a tagged value: Kind selects the variant and only the betting
// variant carries a Street.
type HandPhase struct {
	kind   PhaseKind
	street Street
}

func PhaseDealing() HandPhase {
	return HandPhase{kind: PhaseKindDealing}
}

func PhaseBetting(street Street) HandPhase {
	return HandPhase{kind: PhaseKindBetting, street: street}
}

func PhaseShowdown() HandPhase {
	return HandPhase{kind: PhaseKindShowdown}
}

func PhaseComplete() HandPhase {
	return HandPhase{kind: PhaseKindComplete}
}

func (p HandPhase) Kind() PhaseKind {
	return p.kind
}

// Street returns the betting street, or false outside the betting phase.
func (p HandPhase) Street() (Street, bool) {
	if p.kind != PhaseKindBetting {
		return "", false
	}
	return p.street, true
}

func (p HandPhase) String() string {
	if p.kind == PhaseKindBetting {
		return fmt.Sprintf("%s(%s)", p.kind, p.street)
	}
	return string(p.kind)
}

func (p HandPhase) MarshalJSON() ([]byte, error) {
	switch p.kind {
	case PhaseKindDealing, PhaseKindShowdown, PhaseKindComplete:
		return json.Marshal(string(p.kind))
	case PhaseKindBetting:
		return json.Marshal(map[PhaseKind]Street{PhaseKindBetting: p.street})
	default:
		return nil, fmt.Errorf("unknown hand phase %q", string(p.kind))
	}
}

func (p *HandPhase) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '{' {
		var tagged map[PhaseKind]Street
		if err := json.Unmarshal(data, &tagged); err != nil {
			return err
		}
		street, ok := tagged[PhaseKindBetting]
		if !ok || len(tagged) != 1 {
			return fmt.Errorf("hand phase object must hold exactly one %q key", PhaseKindBetting)
		}
		*p = PhaseBetting(street)
		return nil
	}

	var tag string
	if err := json.Unmarshal(data, &tag); err != nil {
		return err
	}
	switch PhaseKind(tag) {
	case PhaseKindDealing:
		*p = PhaseDealing()
	case PhaseKindShowdown:
		*p = PhaseShowdown()
	case PhaseKindComplete:
		*p = PhaseComplete()
	case PhaseKindBetting:
		return fmt.Errorf("hand phase %q requires a street", tag)
	default:
		return fmt.Errorf("unknown hand phase %q", tag)
	}
	return nil
}

// HandState is a snapshot of one hand. It is only built by NewHandState or
// decoded from JSON; both paths check the seat roster.
type HandState struct {
	handID     uuid.UUID
	tableID    uuid.UUID
	handNo     uint64
	buttonSeat SeatNo
	actingSeat SeatNo
	phase      HandPhase
	pot        uint32
	board      []Card
	seats      []SeatState
}

// NewHandState validates config and seats and starts a hand in the dealing
// phase with an empty pot and board. Checks run in a fixed order: config,
// active seat count, roster size, duplicate seat numbers. The button and
// acting seats are stored as given and are not checked against the roster.
func NewHandState(
	tableID uuid.UUID,
	handNo uint64,
	buttonSeat SeatNo,
	actingSeat SeatNo,
	seats []SeatState,
	config TableConfig,
) (HandState, error) {
	if err := config.Validate(); err != nil {
		return HandState{}, err
	}

	activeCount := countActive(seats)
	if activeCount < int(config.MinPlayersToStart) {
		return HandState{}, notEnoughActiveSeats(config.MinPlayersToStart, activeCount)
	}

	if len(seats) > int(config.MaxSeats) {
		return HandState{}, tooManySeats(config.MaxSeats, len(seats))
	}

	if hasDuplicateSeat(seats) {
		return HandState{}, duplicateSeat()
	}

	return HandState{
		handID:     uuid.New(),
		tableID:    tableID,
		handNo:     handNo,
		buttonSeat: buttonSeat,
		actingSeat: actingSeat,
		phase:      PhaseDealing(),
		pot:        0,
		board:      make([]Card, 0, MaxBoardCards),
		seats:      append([]SeatState(nil), seats...),
	}, nil
}

func countActive(seats []SeatState) int {
	count := 0
	for _, seat := range seats {
		if seat.IsActive() {
			count++
		}
	}
	return count
}

func hasDuplicateSeat(seats []SeatState) bool {
	seen := make(map[SeatNo]struct{}, len(seats))
	for _, seat := range seats {
		if _, exists := seen[seat.SeatNo]; exists {
			return true
		}
		seen[seat.SeatNo] = struct{}{}
	}
	return false
}

func (h HandState) HandID() uuid.UUID {
	return h.handID
}

func (h HandState) TableID() uuid.UUID {
	return h.tableID
}

func (h HandState) HandNo() uint64 {
	return h.handNo
}

func (h HandState) ButtonSeat() SeatNo {
	return h.buttonSeat
}

func (h HandState) ActingSeat() SeatNo {
	return h.actingSeat
}

func (h HandState) Phase() HandPhase {
	return h.phase
}

func (h HandState) Pot() uint32 {
	return h.pot
}

// Board returns a copy of the community cards.
func (h HandState) Board() []Card {
	return append([]Card(nil), h.board...)
}

// Seats returns a copy of the roster in the order it was supplied.
func (h HandState) Seats() []SeatState {
	return append([]SeatState(nil), h.seats...)
}

func (h HandState) ActiveSeatCount() int {
	return countActive(h.seats)
}

func (h HandState) Seat(seatNo SeatNo) (SeatState, bool) {
	for _, seat := range h.seats {
		if seat.SeatNo == seatNo {
			return seat, true
		}
	}
	return SeatState{}, false
}

type handStateJSON struct {
	HandID     uuid.UUID   `json:"hand_id"`
	TableID    uuid.UUID   `json:"table_id"`
	HandNo     uint64      `json:"hand_no"`
	ButtonSeat SeatNo      `json:"button_seat"`
	ActingSeat SeatNo      `json:"acting_seat"`
	Phase      HandPhase   `json:"phase"`
	Pot        uint32      `json:"pot"`
	Board      []Card      `json:"board"`
	Seats      []SeatState `json:"seats"`
}

func (h HandState) MarshalJSON() ([]byte, error) {
	board := h.board
	if board == nil {
		board = []Card{}
	}
	return json.Marshal(handStateJSON{
		HandID:     h.handID,
		TableID:    h.tableID,
		HandNo:     h.handNo,
		ButtonSeat: h.buttonSeat,
		ActingSeat: h.actingSeat,
		Phase:      h.phase,
		Pot:        h.pot,
		Board:      board,
		Seats:      h.seats,
	})
}

// UnmarshalJSON restores a snapshot. Without the table config only the
// config-independent rules can be checked: non-nil ids, seat numbers within
// the global ceiling, roster size, unique seats and board length.
func (h *HandState) UnmarshalJSON(data []byte) error {
	var wire handStateJSON
	if err := json.Unmarshal(data, &wire); err != nil {
		return err
	}
	if wire.HandID == uuid.Nil {
		return fmt.Errorf("hand_id is required")
	}
	if wire.TableID == uuid.Nil {
		return fmt.Errorf("table_id is required")
	}
	if wire.ButtonSeat == (SeatNo{}) || wire.ActingSeat == (SeatNo{}) {
		return invalidSeatNo(DefaultMaxSeats, 0)
	}
	if wire.Phase == (HandPhase{}) {
		return fmt.Errorf("hand phase is required")
	}
	if len(wire.Board) > MaxBoardCards {
		return fmt.Errorf("board cannot exceed %d cards, got %d", MaxBoardCards, len(wire.Board))
	}
	if len(wire.Seats) > int(DefaultMaxSeats) {
		return tooManySeats(DefaultMaxSeats, len(wire.Seats))
	}
	// Every valid config starts a hand with at least this many seats, and
	// seats are never removed from a hand once dealt.
	if len(wire.Seats) < int(DefaultMinPlayersToStart) {
		return fmt.Errorf("hand must hold at least %d seats, got %d", DefaultMinPlayersToStart, len(wire.Seats))
	}
	for _, seat := range wire.Seats {
		if seat.SeatNo == (SeatNo{}) {
			return invalidSeatNo(DefaultMaxSeats, 0)
		}
		if !seat.Status.Valid() {
			return fmt.Errorf("unknown seat status %q", string(seat.Status))
		}
	}
	if hasDuplicateSeat(wire.Seats) {
		return duplicateSeat()
	}

	*h = HandState{
		handID:     wire.HandID,
		tableID:    wire.TableID,
		handNo:     wire.HandNo,
		buttonSeat: wire.ButtonSeat,
		actingSeat: wire.ActingSeat,
		phase:      wire.Phase,
		pot:        wire.Pot,
		board:      append(make([]Card, 0, MaxBoardCards), wire.Board...),
		seats:      wire.Seats,
	}
	return nil
}
