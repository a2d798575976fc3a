package domain

import (
	"context"
	"time"
)

// CalculationEvent describes one finished calculation.
type CalculationEvent struct {
	Timestamp  time.Time     `json:"timestamp"`
	InputBytes int           `json:"input_bytes"`
	Tokens     int           `json:"tokens"`
	Custom     bool          `json:"custom_delimiters"`
	Cached     bool          `json:"cached"`
	Duration   time.Duration `json:"duration"`
	Kind       string        `json:"kind,omitempty"`
	Err        error         `json:"-"`
}

// Outcome is "ok" or the error kind.
func (e *CalculationEvent) Outcome() string {
	if e.Kind == "" {
		return "ok"
	}
	return e.Kind
}

// LifecycleHooks defines callbacks for calculator observability.
type LifecycleHooks struct {
	OnCalculate func(context.Context, *CalculationEvent)
}

// Merge returns hooks that call h first and then other.
func (h LifecycleHooks) Merge(other LifecycleHooks) LifecycleHooks {
	if h.OnCalculate == nil {
		return other
	}
	if other.OnCalculate == nil {
		return h
	}
	first, second := h.OnCalculate, other.OnCalculate
	return LifecycleHooks{
		OnCalculate: func(ctx context.Context, e *CalculationEvent) {
			first(ctx, e)
			second(ctx, e)
		},
	}
}
