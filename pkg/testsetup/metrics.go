// Copyright (c) 2025 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

package testsetup

import (
	"sync"
	"time"

	"github.com/AccelByte/extend-arena-pairing/pkg/metrics"
)

// RecordingMetrics keeps what the pairing engine reported so tests can assert on it.
type RecordingMetrics struct {
	mutex           sync.Mutex
	SlowPhases      map[string]int
	PhaseDurations  map[string][]time.Duration
	PairingsCreated map[string]int
	ColorModes      map[string]int
}

func NewMetrics() *RecordingMetrics {
	return &RecordingMetrics{
		SlowPhases:      map[string]int{},
		PhaseDurations:  map[string][]time.Duration{},
		PairingsCreated: map[string]int{},
		ColorModes:      map[string]int{},
	}
}

var _ metrics.PairingMetrics = (*RecordingMetrics)(nil)

func (r *RecordingMetrics) AddPhaseElapsedTimeMs(phase string, elapsedTime time.Duration) {
	r.mutex.Lock()
	defer r.mutex.Unlock()
	r.PhaseDurations[phase] = append(r.PhaseDurations[phase], elapsedTime)
}

func (r *RecordingMetrics) AddSlowPhase(phase string) {
	r.mutex.Lock()
	defer r.mutex.Unlock()
	r.SlowPhases[phase]++
}

func (r *RecordingMetrics) AddPairingsCreated(strategy string, count int) {
	r.mutex.Lock()
	defer r.mutex.Unlock()
	r.PairingsCreated[strategy] += count
}

func (r *RecordingMetrics) AddColorAssignment(mode string, count int) {
	r.mutex.Lock()
	defer r.mutex.Unlock()
	r.ColorModes[mode] += count
}
