// Copyright (c) 2025 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrometheusMetrics(t *testing.T) {
	registry := prometheus.NewRegistry()
	m := setupPrometheusMetrics(registry)

	m.AddSlowPhase("createPairings")
	m.AddSlowPhase("createPairings")
	m.AddPairingsCreated("proximity", 3)
	m.AddColorAssignment("history", 2)
	m.AddPhaseElapsedTimeMs("makePreps", 12*time.Millisecond)

	assert.Equal(t, float64(2), testutil.ToFloat64(m.slowPhases.With(prometheus.Labels{"phase": "createPairings"})))
	assert.Equal(t, float64(3), testutil.ToFloat64(m.pairingsCreated.With(prometheus.Labels{"strategy": "proximity"})))
	assert.Equal(t, float64(2), testutil.ToFloat64(m.colorAssignments.With(prometheus.Labels{"mode": "history"})))

	families, err := registry.Gather()
	require.NoError(t, err)
	names := make([]string, 0, len(families))
	for _, f := range families {
		names = append(names, f.GetName())
	}
	assert.Contains(t, names, "ab_arena_pairing_phase_elapsed_time_ms")
}
