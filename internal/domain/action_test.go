package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewActionRequiresAmountForRaise(t *testing.T) {
	t.Parallel()

	_, err := NewAction(ActionRaise, nil)
	require.ErrorIs(t, err, ErrMissingActionAmount)

	var domainErr *Error
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, ActionRaise, domainErr.Action)
	assert.EqualError(t, err, "action amount is required for raise")
}

func TestNewActionPairsAmountWithKind(t *testing.T) {
	t.Parallel()

	amount := uint32(250)
	for _, kind := range ActionKinds() {
		for _, withAmount := range []bool{false, true} {
			var input *uint32
			if withAmount {
				input = &amount
			}

			action, err := NewAction(kind, input)
			wantOK := kind.RequiresAmount() == withAmount
			if !wantOK {
				if kind.RequiresAmount() {
					assert.ErrorIs(t, err, ErrMissingActionAmount, "%s", kind)
				} else {
					assert.ErrorIs(t, err, ErrUnexpectedActionAmount, "%s", kind)
				}
				continue
			}

			require.NoError(t, err, "%s with amount=%v", kind, withAmount)
			assert.Equal(t, kind, action.Kind())
			got, ok := action.Amount()
			assert.Equal(t, withAmount, ok)
			if withAmount {
				assert.Equal(t, amount, got)
			}
		}
	}
}

func TestRequiresAmountOnlyForBetAndRaise(t *testing.T) {
	t.Parallel()

	assert.True(t, ActionBet.RequiresAmount())
	assert.True(t, ActionRaise.RequiresAmount())
	assert.False(t, ActionFold.RequiresAmount())
	assert.False(t, ActionCheck.RequiresAmount())
	assert.False(t, ActionCall.RequiresAmount())
}

func TestNewActionDoesNotAliasAmount(t *testing.T) {
	t.Parallel()

	amount := uint32(100)
	action, err := NewAction(ActionBet, &amount)
	require.NoError(t, err)

	amount = 999
	got, _ := action.Amount()
	assert.Equal(t, uint32(100), got)
}

func TestActionJSONRoundTrip(t *testing.T) {
	t.Parallel()

	amount := uint32(300)
	bet, err := NewAction(ActionBet, &amount)
	require.NoError(t, err)
	fold, err := NewAction(ActionFold, nil)
	require.NoError(t, err)

	tests := []struct {
		action Action
		want   string
	}{
		{bet, `{"kind":"bet","amount":300}`},
		{fold, `{"kind":"fold","amount":null}`},
	}

	for _, tt := range tests {
		data, err := json.Marshal(tt.action)
		require.NoError(t, err)
		assert.JSONEq(t, tt.want, string(data))

		var decoded Action
		require.NoError(t, json.Unmarshal(data, &decoded))
		assert.Equal(t, tt.action, decoded)
	}
}

func TestActionJSONRevalidates(t *testing.T) {
	t.Parallel()

	var action Action
	assert.ErrorIs(t, json.Unmarshal([]byte(`{"kind":"raise"}`), &action), ErrMissingActionAmount)
	assert.ErrorIs(t, json.Unmarshal([]byte(`{"kind":"check","amount":5}`), &action), ErrUnexpectedActionAmount)
	assert.Error(t, json.Unmarshal([]byte(`{"kind":"shove","amount":5}`), &action))
}

func TestNewActionRejectsUnknownKind(t *testing.T) {
	t.Parallel()

	amount := uint32(100)
	for _, input := range []*uint32{nil, &amount} {
		_, err := NewAction(ActionKind("allin"), input)
		assert.EqualError(t, err, `unknown action kind "allin"`)
	}

	_, err := NewAction("", nil)
	assert.Error(t, err)
}
