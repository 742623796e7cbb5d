// Copyright (c) 2025 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

package testsetup

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/AccelByte/extend-arena-pairing/pkg/models"
)

// StubStore serves the pairing collaborators from memory and records how it was called.
type StubStore struct {
	History      models.LastOpponents
	Playing      map[string]bool
	ActiveCount  int
	FirstMover   func(userA, userB string) string
	HistoryErr   error
	ActiveErr    error
	IdleErr      error
	ColorErr     error
	MatchIDErr   error
	PerCallDelay func()

	mutex         sync.Mutex
	HistoryLimits []int
	ActiveCalls   int
	ColorCalls    int
	idSequence    atomic.Int64
}

func (s *StubStore) LastOpponents(ctx context.Context, tournamentID string, userIDs []string, limit int) (models.LastOpponents, error) {
	s.delay()
	s.mutex.Lock()
	s.HistoryLimits = append(s.HistoryLimits, limit)
	s.mutex.Unlock()
	if s.HistoryErr != nil {
		return nil, s.HistoryErr
	}
	return s.History, nil
}

func (s *StubStore) CountActivePlayers(ctx context.Context, tournamentID string) (int, error) {
	s.delay()
	s.mutex.Lock()
	s.ActiveCalls++
	s.mutex.Unlock()
	if s.ActiveErr != nil {
		return 0, s.ActiveErr
	}
	return s.ActiveCount, nil
}

func (s *StubStore) RankedIdlePlayers(ctx context.Context, tournamentID string, userIDs []string, ranking models.Ranking) (models.RankedPlayers, error) {
	s.delay()
	if s.IdleErr != nil {
		return nil, s.IdleErr
	}
	idle := make([]string, 0, len(userIDs))
	for _, id := range userIDs {
		if !s.Playing[id] {
			idle = append(idle, id)
		}
	}
	return models.NewRankedPlayers(idle, ranking), nil
}

// FirstMoveRecipient gives white to the first user unless FirstMover is set.
func (s *StubStore) FirstMoveRecipient(ctx context.Context, userA, userB string) (string, error) {
	s.mutex.Lock()
	s.ColorCalls++
	s.mutex.Unlock()
	if s.ColorErr != nil {
		return "", s.ColorErr
	}
	if s.FirstMover != nil {
		return s.FirstMover(userA, userB), nil
	}
	return userA, nil
}

func (s *StubStore) AllocateMatchID(ctx context.Context) (string, error) {
	if s.MatchIDErr != nil {
		return "", s.MatchIDErr
	}
	return fmt.Sprintf("match-%d", s.idSequence.Add(1)), nil
}

func (s *StubStore) delay() {
	if s.PerCallDelay != nil {
		s.PerCallDelay()
	}
}

// UserIDs returns user ids u1..un, which is also their rank order in Ranking(n).
func UserIDs(n int) []string {
	ids := make([]string, n)
	for i := range ids {
		ids[i] = fmt.Sprintf("u%d", i+1)
	}
	return ids
}

// Ranking ranks u1..un from 1 to n.
func Ranking(n int) models.Ranking {
	ranking := make(models.Ranking, n)
	for i, id := range UserIDs(n) {
		ranking[id] = i + 1
	}
	return ranking
}
