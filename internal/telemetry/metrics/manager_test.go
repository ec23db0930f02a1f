package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewManager(t *testing.T) {
	m, reg := NewTestManagerAndRegistry()
	require.NotNil(t, m)

	m.CounterPlateCalculations.WithLabelValues("deadlift").Inc()
	m.CounterPlateCalculations.WithLabelValues("regular").Add(2)
	m.CounterApproximateLoads.WithLabelValues("regular").Inc()
	m.HistogramPlatesPerSide.Observe(3)
	m.GaugeLifeSignal.Set(1)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.CounterPlateCalculations.WithLabelValues("deadlift")))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.CounterPlateCalculations.WithLabelValues("regular")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.CounterApproximateLoads.WithLabelValues("regular")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.GaugeLifeSignal))

	count, err := testutil.GatherAndCount(reg, "backend_test_server_plates_per_side")
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestNewManager_SeparateRegistries(t *testing.T) {
	// two managers on separate registries must not clash
	assert.NotPanics(t, func() {
		NewTestManager()
		NewTestManager()
	})
}

func TestSetupPrometheus(t *testing.T) {
	extra := prometheus.NewCounter(prometheus.CounterOpts{Name: "extra_collector_total", Help: "test"})
	reg := SetupPrometheus(extra)
	extra.Inc()

	count, err := testutil.GatherAndCount(reg, "extra_collector_total")
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	families, err := reg.Gather()
	require.NoError(t, err)
	assert.Greater(t, len(families), 1)
}
