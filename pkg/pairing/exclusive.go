// Copyright (c) 2025 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

package pairing

import (
	"sync"
)

// Exclusive lets a scheduler keep at most one pairing computation in flight per tournament.
// Two overlapping ticks of the same tournament could pair a waiting user twice.
type Exclusive struct {
	mutex   sync.Mutex
	running map[string]struct{}
}

func NewExclusive() *Exclusive {
	return &Exclusive{running: make(map[string]struct{})}
}

// TryRun runs fn unless a computation of the tournament is already running. It reports whether fn ran.
func (e *Exclusive) TryRun(tournamentID string, fn func() error) (bool, error) {
	e.mutex.Lock()
	if _, busy := e.running[tournamentID]; busy {
		e.mutex.Unlock()
		return false, nil
	}
	e.running[tournamentID] = struct{}{}
	e.mutex.Unlock()

	defer func() {
		e.mutex.Lock()
		delete(e.running, tournamentID)
		e.mutex.Unlock()
	}()

	return true, fn()
}

func (e *Exclusive) Running(tournamentID string) bool {
	e.mutex.Lock()
	defer e.mutex.Unlock()
	_, busy := e.running[tournamentID]
	return busy
}
