package domain

import (
	"encoding/json"
	"fmt"
)

const (
	MinRank          uint8 = 2
	MaxRank          uint8 = 14
	StandardDeckSize       = 52
)

type Suit string

const (
	SuitClubs    Suit = "clubs"
	SuitDiamonds Suit = "diamonds"
	SuitHearts   Suit = "hearts"
	SuitSpades   Suit = "spades"
)

// Suits returns the four suits in deck order.
func Suits() []Suit {
	return []Suit{SuitClubs, SuitDiamonds, SuitHearts, SuitSpades}
}

func (s Suit) Valid() bool {
	switch s {
	case SuitClubs, SuitDiamonds, SuitHearts, SuitSpades:
		return true
	}
	return false
}

func (s Suit) String() string {
	return string(s)
}

func (s Suit) MarshalText() ([]byte, error) {
	if !s.Valid() {
		return nil, fmt.Errorf("unknown suit %q", string(s))
	}
	return []byte(s), nil
}

func (s *Suit) UnmarshalText(text []byte) error {
	suit := Suit(text)
	if !suit.Valid() {
		return fmt.Errorf("unknown suit %q", string(text))
	}
	*s = suit
	return nil
}

func (s Suit) code() byte {
	switch s {
	case SuitClubs:
		return 'c'
	case SuitDiamonds:
		return 'd'
	case SuitHearts:
		return 'h'
	case SuitSpades:
		return 's'
	}
	return '?'
}

// Rank is a card rank in 2..=14, aces high. The zero value is not a valid
// rank; obtain one from NewRank.
type Rank struct {
	value uint8
}

func NewRank(value uint8) (Rank, error) {
	if value < MinRank || value > MaxRank {
		return Rank{}, invalidRank(value)
	}
	return Rank{value: value}, nil
}

func (r Rank) Value() uint8 {
	return r.value
}

func (r Rank) String() string {
	switch r.value {
	case 10:
		return "T"
	case 11:
		return "J"
	case 12:
		return "Q"
	case 13:
		return "K"
	case 14:
		return "A"
	}
	return fmt.Sprintf("%d", r.value)
}

func (r Rank) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.value)
}

func (r *Rank) UnmarshalJSON(data []byte) error {
	var value uint8
	if err := json.Unmarshal(data, &value); err != nil {
		return err
	}
	rank, err := NewRank(value)
	if err != nil {
		return err
	}
	*r = rank
	return nil
}

type Card struct {
	rank Rank
	suit Suit
}

func NewCard(rank Rank, suit Suit) Card {
	return Card{rank: rank, suit: suit}
}

func (c Card) Rank() Rank {
	return c.rank
}

func (c Card) Suit() Suit {
	return c.suit
}

// String renders the two-character code, e.g. "As" or "Td".
func (c Card) String() string {
	return c.rank.String() + string(c.suit.code())
}

type cardJSON struct {
	Rank Rank `json:"rank"`
	Suit Suit `json:"suit"`
}

func (c Card) MarshalJSON() ([]byte, error) {
	return json.Marshal(cardJSON{Rank: c.rank, Suit: c.suit})
}

func (c *Card) UnmarshalJSON(data []byte) error {
	var wire cardJSON
	if err := json.Unmarshal(data, &wire); err != nil {
		return err
	}
	if wire.Rank == (Rank{}) {
		return invalidRank(0)
	}
	if !wire.Suit.Valid() {
		return fmt.Errorf("unknown suit %q", string(wire.Suit))
	}
	*c = NewCard(wire.Rank, wire.Suit)
	return nil
}

type Deck struct {
	cards []Card
}

// Standard52Deck enumerates every rank of every suit, suit-major, in the
// order of Suits and ascending rank.
func Standard52Deck() Deck {
	cards := make([]Card, 0, StandardDeckSize)

	for _, suit := range Suits() {
		for value := MinRank; value <= MaxRank; value++ {
			rank, err := NewRank(value)
			if err != nil {
				panic("standard deck ranks are always valid: " + err.Error())
			}
			cards = append(cards, NewCard(rank, suit))
		}
	}

	return Deck{cards: cards}
}

// Cards returns a copy of the deck's cards in order.
func (d Deck) Cards() []Card {
	return append([]Card(nil), d.cards...)
}

func (d Deck) Len() int {
	return len(d.cards)
}

type deckJSON struct {
	Cards []Card `json:"cards"`
}

func (d Deck) MarshalJSON() ([]byte, error) {
	cards := d.cards
	if cards == nil {
		cards = []Card{}
	}
	return json.Marshal(deckJSON{Cards: cards})
}

func (d *Deck) UnmarshalJSON(data []byte) error {
	var wire deckJSON
	if err := json.Unmarshal(data, &wire); err != nil {
		return err
	}
	if len(wire.Cards) != StandardDeckSize {
		return fmt.Errorf("deck must hold %d cards, got %d", StandardDeckSize, len(wire.Cards))
	}
	seen := make(map[Card]struct{}, len(wire.Cards))
	for _, card := range wire.Cards {
		if _, ok := seen[card]; ok {
			return fmt.Errorf("deck holds duplicate card %s", card)
		}
		seen[card] = struct{}{}
	}
	d.cards = wire.Cards
	return nil
}
