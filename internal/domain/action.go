package domain

import (
	"encoding/json"
	"fmt"
)

type ActionKind string

const (
	ActionFold  ActionKind = "fold"
	ActionCheck ActionKind = "check"
	ActionCall  ActionKind = "call"
	ActionBet   ActionKind = "bet"
	ActionRaise ActionKind = "raise"
)

func ActionKinds() []ActionKind {
	return []ActionKind{ActionFold, ActionCheck, ActionCall, ActionBet, ActionRaise}
}

func (k ActionKind) Valid() bool {
	switch k {
	case ActionFold, ActionCheck, ActionCall, ActionBet, ActionRaise:
		return true
	}
	return false
}

// RequiresAmount reports whether an action of this kind must carry a chip
// amount. Bet and raise do; every other kind must not.
func (k ActionKind) RequiresAmount() bool {
	return k == ActionBet || k == ActionRaise
}

func (k ActionKind) String() string {
	return string(k)
}

func (k ActionKind) MarshalText() ([]byte, error) {
	if !k.Valid() {
		return nil, fmt.Errorf("unknown action kind %q", string(k))
	}
	return []byte(k), nil
}

func (k *ActionKind) UnmarshalText(text []byte) error {
	kind := ActionKind(text)
	if !kind.Valid() {
		return fmt.Errorf("unknown action kind %q", string(text))
	}
	*k = kind
	return nil
}

type Action struct {
	kind      ActionKind
	amount    uint32
	hasAmount bool
}

func NewAction(kind ActionKind, amount *uint32) (Action, error) {
	if !kind.Valid() {
		return Action{}, fmt.Errorf("unknown action kind %q", string(kind))
	}

	needsAmount := kind.RequiresAmount()

	if needsAmount && amount == nil {
		return Action{}, missingActionAmount(kind)
	}

	if !needsAmount && amount != nil {
		return Action{}, unexpectedActionAmount(kind)
	}

	action := Action{kind: kind}
	if amount != nil {
		action.amount = *amount
		action.hasAmount = true
	}
	return action, nil
}

func (a Action) Kind() ActionKind {
	return a.kind
}

// Amount returns the chip amount and whether one is present.
func (a Action) Amount() (uint32, bool) {
	return a.amount, a.hasAmount
}

func (a Action) String() string {
	if a.hasAmount {
		return fmt.Sprintf("%s %d", a.kind, a.amount)
	}
	return string(a.kind)
}

type actionJSON struct {
	Kind   ActionKind `json:"kind"`
	Amount *uint32    `json:"amount"`
}

func (a Action) MarshalJSON() ([]byte, error) {
	wire := actionJSON{Kind: a.kind}
	if a.hasAmount {
		amount := a.amount
		wire.Amount = &amount
	}
	return json.Marshal(wire)
}

func (a *Action) UnmarshalJSON(data []byte) error {
	var wire actionJSON
	if err := json.Unmarshal(data, &wire); err != nil {
		return err
	}
	action, err := NewAction(wire.Kind, wire.Amount)
	if err != nil {
		return err
	}
	*a = action
	return nil
}
