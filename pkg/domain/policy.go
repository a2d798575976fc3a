package domain

// Policy holds optional evaluation rules. The zero value applies no upper bound.
type Policy struct {
	// UpperBound excludes values strictly greater than it from the sum.
	// Zero or negative disables the rule.
	UpperBound int64
}

// HasUpperBound reports whether the upper-bound rule is active.
func (p Policy) HasUpperBound() bool {
	return p.UpperBound > 0
}

// Excludes reports whether n is left out of the sum under this policy.
func (p Policy) Excludes(n int64) bool {
	return p.HasUpperBound() && n > p.UpperBound
}
