// Copyright (c) 2025 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

package pairing

import (
	"context"
	"math/rand"
	"sync"

	"github.com/AccelByte/extend-arena-pairing/pkg/models"
)

// OpponentHistory provides the recent opponents of the waiting users, at most limit pairings are read.
type OpponentHistory interface {
	LastOpponents(ctx context.Context, tournamentID string, userIDs []string, limit int) (models.LastOpponents, error)
}

// ActivePlayers counts the players still taking part in the tournament.
type ActivePlayers interface {
	CountActivePlayers(ctx context.Context, tournamentID string) (int, error)
}

// IdlePlayers returns the given users that are not in a match, sorted by rank.
type IdlePlayers interface {
	RankedIdlePlayers(ctx context.Context, tournamentID string, userIDs []string, ranking models.Ranking) (models.RankedPlayers, error)
}

// ColorHistory tells which of two users is due to move first.
type ColorHistory interface {
	FirstMoveRecipient(ctx context.Context, userA, userB string) (string, error)
}

type MatchIDAllocator interface {
	AllocateMatchID(ctx context.Context) (string, error)
}

// Store is a single backend serving every collaborator.
type Store interface {
	OpponentHistory
	ActivePlayers
	IdlePlayers
	ColorHistory
	MatchIDAllocator
}

// Collaborators are the services the orchestrator calls during a tick.
type Collaborators struct {
	History  OpponentHistory
	Active   ActivePlayers
	Idle     IdlePlayers
	Colors   ColorHistory
	MatchIDs MatchIDAllocator
}

func CollaboratorsFrom(store Store) Collaborators {
	return Collaborators{
		History:  store,
		Active:   store,
		Idle:     store,
		Colors:   store,
		MatchIDs: store,
	}
}

// RandomSource is the randomness of coin flip color assignment. *rand.Rand satisfies it.
type RandomSource interface {
	Intn(n int) int
}

type lockedSource struct {
	mutex sync.Mutex
	rand  *rand.Rand
}

// NewRandomSource returns a RandomSource safe for concurrent ticks.
func NewRandomSource(seed int64) RandomSource {
	return &lockedSource{rand: rand.New(rand.NewSource(seed))}
}

func (l *lockedSource) Intn(n int) int {
	l.mutex.Lock()
	defer l.mutex.Unlock()
	return l.rand.Intn(n)
}
