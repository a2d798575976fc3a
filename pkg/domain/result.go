package domain

// Result is the boundary contract of a single calculation:
// either {success: true, result} or {success: false, error}.
type Result struct {
	Success bool   `json:"success"`
	Result  *int64 `json:"result,omitempty"`
	Input   string `json:"input"`
	Error   string `json:"error,omitempty"`
	Kind    string `json:"kind,omitempty"`
}

// Succeeded builds a successful result.
func Succeeded(input string, sum int64) Result {
	return Result{Success: true, Result: &sum, Input: input}
}

// Failed builds a failed result from err.
func Failed(input string, err error) Result {
	return Result{Success: false, Input: input, Error: err.Error(), Kind: KindOf(err)}
}

// Value returns the sum, or zero for a failed result.
func (r Result) Value() int64 {
	if r.Result == nil {
		return 0
	}
	return *r.Result
}
