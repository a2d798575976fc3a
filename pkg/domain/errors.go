package domain

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var (
	// ErrMalformedHeader is returned when a "//" header is present but cannot be parsed.
	ErrMalformedHeader = errors.New("malformed delimiter header")

	// ErrInvalidNumber is returned when a token is not a signed base-10 integer.
	ErrInvalidNumber = errors.New("invalid number")

	// ErrNegativeNumber is returned when one or more parsed numbers are negative.
	ErrNegativeNumber = errors.New("negative numbers not allowed")

	// ErrSumOverflow is returned when the sum does not fit in an int64.
	ErrSumOverflow = errors.New("sum overflows int64")
)

// Error kinds exposed to adapters so they can discriminate failures without type switches.
const (
	KindMalformedHeader = "malformed_header"
	KindInvalidNumber   = "invalid_number"
	KindNegativeNumber  = "negative_number"
	KindSumOverflow     = "sum_overflow"
	KindInternal        = "internal"
)

// MalformedHeaderError describes why the delimiter header was rejected.
type MalformedHeaderError struct {
	Header string
	Reason string
}

func (e *MalformedHeaderError) Error() string {
	if e.Header == "" {
		return fmt.Sprintf("%s: %s", ErrMalformedHeader, e.Reason)
	}
	return fmt.Sprintf("%s %q: %s", ErrMalformedHeader, e.Header, e.Reason)
}

func (e *MalformedHeaderError) Unwrap() error { return ErrMalformedHeader }

// InvalidNumberError carries the first token that failed to parse.
type InvalidNumberError struct {
	Token    string
	Position int
}

func (e *InvalidNumberError) Error() string {
	return fmt.Sprintf("%s %q at position %d", ErrInvalidNumber, e.Token, e.Position)
}

func (e *InvalidNumberError) Unwrap() error { return ErrInvalidNumber }

// NegativeNumberError carries every negative value found, in order of appearance.
type NegativeNumberError struct {
	Negatives []int64
}

func (e *NegativeNumberError) Error() string {
	parts := make([]string, len(e.Negatives))
	for i, n := range e.Negatives {
		parts[i] = strconv.FormatInt(n, 10)
	}
	return fmt.Sprintf("%s: %s", ErrNegativeNumber, strings.Join(parts, ", "))
}

func (e *NegativeNumberError) Unwrap() error { return ErrNegativeNumber }

// SumOverflowError names the token whose addition overflowed.
type SumOverflowError struct {
	Token    string
	Position int
}

func (e *SumOverflowError) Error() string {
	return fmt.Sprintf("%s when adding %q at position %d", ErrSumOverflow, e.Token, e.Position)
}

func (e *SumOverflowError) Unwrap() error { return ErrSumOverflow }

// KindOf maps an error to its discriminator. Unknown errors are KindInternal.
func KindOf(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrMalformedHeader):
		return KindMalformedHeader
	case errors.Is(err, ErrInvalidNumber):
		return KindInvalidNumber
	case errors.Is(err, ErrNegativeNumber):
		return KindNegativeNumber
	case errors.Is(err, ErrSumOverflow):
		return KindSumOverflow
	default:
		return KindInternal
	}
}

// IsUserError reports whether err was caused by the caller's input.
func IsUserError(err error) bool {
	k := KindOf(err)
	return k != "" && k != KindInternal
}

var (
	// ErrCacheMiss is returned by a ResultCache when no value is stored for a key.
	ErrCacheMiss = errors.New("cache miss")

	// ErrNoCache is returned when a cache operation is requested but no cache is configured.
	ErrNoCache = errors.New("no result cache configured")
)
