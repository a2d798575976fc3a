// Package calc implements the delimiter-aware string summation pipeline:
// header parsing, tokenizing and evaluation. It is pure and safe for concurrent use.
package calc

import "github.com/aretw0/strcalc/pkg/domain"

// Outcome is the successful result of Run.
type Outcome struct {
	Sum    int64
	Tokens int
	Spec   domain.DelimiterSpec
}

// Run executes ParseHeader, Split and Evaluate in order.
// The first failing stage ends the call.
func Run(raw string, policy domain.Policy) (Outcome, error) {
	spec, err := ParseHeader(raw)
	if err != nil {
		return Outcome{}, err
	}

	tokens := Split(spec)

	sum, err := Evaluate(tokens, policy)
	if err != nil {
		return Outcome{Tokens: len(tokens), Spec: spec}, err
	}

	return Outcome{Sum: sum, Tokens: len(tokens), Spec: spec}, nil
}
