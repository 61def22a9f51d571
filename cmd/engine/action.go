package main

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/imaddar/poker-arena/services/tablecore/internal/domain"
)

var errUnsupportedAction = errors.New("unsupported action")

// parseAction reads "<kind> [amount]" with the short forms f, k, c, b and r.
// Whether an amount is required or forbidden is left to domain.NewAction.
func parseAction(input string) (domain.Action, error) {
	parts := strings.Fields(strings.ToLower(strings.TrimSpace(input)))
	if len(parts) == 0 {
		return domain.Action{}, fmt.Errorf("%w: empty action", errUnsupportedAction)
	}
	if len(parts) > 2 {
		return domain.Action{}, fmt.Errorf("%w: %q", errUnsupportedAction, input)
	}

	var kind domain.ActionKind
	switch parts[0] {
	case "fold", "f":
		kind = domain.ActionFold
	case "check", "k":
		kind = domain.ActionCheck
	case "call", "c":
		kind = domain.ActionCall
	case "bet", "b":
		kind = domain.ActionBet
	case "raise", "r":
		kind = domain.ActionRaise
	default:
		return domain.Action{}, fmt.Errorf("%w: %q", errUnsupportedAction, input)
	}

	var amount *uint32
	if len(parts) == 2 {
		parsed, err := strconv.ParseUint(parts[1], 10, 32)
		if err != nil {
			return domain.Action{}, fmt.Errorf("%w: invalid amount %q", errUnsupportedAction, parts[1])
		}
		value := uint32(parsed)
		amount = &value
	}

	return domain.NewAction(kind, amount)
}
