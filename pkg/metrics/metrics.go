// Copyright (c) 2025 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

type PairingMetrics interface {
	AddPhaseElapsedTimeMs(phase string, elapsedTime time.Duration)
	AddSlowPhase(phase string)
	AddPairingsCreated(strategy string, count int)
	AddColorAssignment(mode string, count int)
}

func NewMetrics(registry *prometheus.Registry) PairingMetrics {
	return setupPrometheusMetrics(registry)
}
