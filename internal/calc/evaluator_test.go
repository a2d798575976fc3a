package calc_test

import (
	"testing"

	"github.com/aretw0/strcalc/internal/calc"
	"github.com/aretw0/strcalc/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func toks(vals ...string) []domain.Token {
	out := make([]domain.Token, len(vals))
	for i, v := range vals {
		out[i] = domain.Token{Value: v, Position: i}
	}
	return out
}

func TestEvaluate_Sum(t *testing.T) {
	sum, err := calc.Evaluate(nil, domain.Policy{})
	require.NoError(t, err)
	assert.Equal(t, int64(0), sum)

	sum, err = calc.Evaluate(toks("1", "2", "3"), domain.Policy{})
	require.NoError(t, err)
	assert.Equal(t, int64(6), sum)

	sum, err = calc.Evaluate(toks("0", "-0", "007"), domain.Policy{})
	require.NoError(t, err)
	assert.Equal(t, int64(7), sum)
}

func TestEvaluate_InvalidFailsFast(t *testing.T) {
	tests := []struct {
		name  string
		input []domain.Token
		token string
		pos   int
	}{
		{"letter", toks("1", "a", "3"), "a", 1},
		{"empty", toks("1", ""), "", 1},
		{"lone minus", toks("-"), "-", 0},
		{"double minus", toks("--1"), "--1", 0},
		{"plus sign", toks("+1"), "+1", 0},
		{"whitespace", toks(" 1"), " 1", 0},
		{"decimal", toks("1.5"), "1.5", 0},
		{"overflow", toks("99999999999999999999"), "99999999999999999999", 0},
		{"first invalid wins", toks("x", "y"), "x", 0},
		{"invalid before negatives", toks("-1", "b", "-2"), "b", 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := calc.Evaluate(tt.input, domain.Policy{})
			require.ErrorIs(t, err, domain.ErrInvalidNumber)

			var inv *domain.InvalidNumberError
			require.ErrorAs(t, err, &inv)
			assert.Equal(t, tt.token, inv.Token)
			assert.Equal(t, tt.pos, inv.Position)
		})
	}
}

func TestEvaluate_NegativesAggregate(t *testing.T) {
	_, err := calc.Evaluate(toks("1", "-2", "3", "-4"), domain.Policy{})
	require.ErrorIs(t, err, domain.ErrNegativeNumber)

	var neg *domain.NegativeNumberError
	require.ErrorAs(t, err, &neg)
	assert.Equal(t, []int64{-2, -4}, neg.Negatives)
	assert.Equal(t, "negative numbers not allowed: -2, -4", err.Error())
}

func TestEvaluate_UpperBound(t *testing.T) {
	policy := domain.Policy{UpperBound: 1000}

	sum, err := calc.Evaluate(toks("2", "1000", "1001"), policy)
	require.NoError(t, err)
	assert.Equal(t, int64(1002), sum)

	// Still validated and still rejected when negative.
	_, err = calc.Evaluate(toks("5000", "-1"), policy)
	assert.ErrorIs(t, err, domain.ErrNegativeNumber)

	sum, err = calc.Evaluate(toks("2", "1001"), domain.Policy{})
	require.NoError(t, err)
	assert.Equal(t, int64(1003), sum)
}

func TestEvaluate_SumOverflow(t *testing.T) {
	_, err := calc.Evaluate(toks("9223372036854775807", "1"), domain.Policy{})
	require.ErrorIs(t, err, domain.ErrSumOverflow)

	var oe *domain.SumOverflowError
	require.ErrorAs(t, err, &oe)
	assert.Equal(t, "1", oe.Token)
	assert.Equal(t, 1, oe.Position)

	sum, err := calc.Evaluate(toks("9223372036854775806", "1"), domain.Policy{})
	require.NoError(t, err)
	assert.Equal(t, int64(9223372036854775807), sum)

	// Excluded values never reach the sum.
	sum, err = calc.Evaluate(toks("9223372036854775807", "5000"), domain.Policy{UpperBound: 9223372036854775806})
	require.NoError(t, err)
	assert.Equal(t, int64(5000), sum)
}
