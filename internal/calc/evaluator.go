package calc

import (
	"math"
	"strconv"

	"github.com/aretw0/strcalc/pkg/domain"
)

// Evaluate parses tokens and sums them.
//
// Format errors stop at the first bad token. Negative values are only
// checked once every token parsed, and all of them are reported together.
// A sum beyond int64 fails with *domain.SumOverflowError.
func Evaluate(tokens []domain.Token, policy domain.Policy) (int64, error) {
	if len(tokens) == 0 {
		return 0, nil
	}

	// 1. Parse (fail fast)
	values := make([]int64, len(tokens))
	for i, tok := range tokens {
		n, err := parseToken(tok)
		if err != nil {
			return 0, err
		}
		values[i] = n
	}

	// 2. Collect negatives (aggregate)
	var negatives []int64
	for _, n := range values {
		if n < 0 {
			negatives = append(negatives, n)
		}
	}
	if len(negatives) > 0 {
		return 0, &domain.NegativeNumberError{Negatives: negatives}
	}

	// 3. Sum (every value is non-negative here)
	var sum int64
	for i, n := range values {
		if policy.Excludes(n) {
			continue
		}
		if n > math.MaxInt64-sum {
			return 0, &domain.SumOverflowError{Token: tokens[i].Value, Position: tokens[i].Position}
		}
		sum += n
	}
	return sum, nil
}

// parseToken accepts an optional single leading '-' followed by one or more ASCII digits.
func parseToken(tok domain.Token) (int64, error) {
	if !isInteger(tok.Value) {
		return 0, &domain.InvalidNumberError{Token: tok.Value, Position: tok.Position}
	}
	n, err := strconv.ParseInt(tok.Value, 10, 64)
	if err != nil {
		// Only reachable on int64 overflow.
		return 0, &domain.InvalidNumberError{Token: tok.Value, Position: tok.Position}
	}
	return n, nil
}

func isInteger(s string) bool {
	if len(s) > 0 && s[0] == '-' {
		s = s[1:]
	}
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
