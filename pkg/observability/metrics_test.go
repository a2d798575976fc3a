package observability_test

import (
	"context"
	"testing"

	"github.com/aretw0/strcalc"
	"github.com/aretw0/strcalc/pkg/observability"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics_RecordsOutcomes(t *testing.T) {
	reg := prometheus.NewRegistry()
	m, err := observability.NewMetrics(reg)
	require.NoError(t, err)

	calc := strcalc.New(strcalc.WithLifecycleHooks(m.Hooks()))
	ctx := context.Background()

	_, _ = calc.Add(ctx, "1,2,3")
	_, _ = calc.Add(ctx, "4")
	_, _ = calc.Add(ctx, "1,-2")
	_, _ = calc.Add(ctx, "1,x")

	assert.Equal(t, 2.0, testutil.ToFloat64(m.Calculations.WithLabelValues("ok", "false")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Calculations.WithLabelValues("negative_number", "false")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Calculations.WithLabelValues("invalid_number", "false")))
	assert.Equal(t, 3, testutil.CollectAndCount(m.Calculations))
}

func TestMetrics_DoubleRegistration(t *testing.T) {
	reg := prometheus.NewRegistry()
	_, err := observability.NewMetrics(reg)
	require.NoError(t, err)

	_, err = observability.NewMetrics(reg)
	assert.Error(t, err)
}
