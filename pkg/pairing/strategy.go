// Copyright (c) 2025 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

package pairing

import (
	pie "github.com/elliotchance/pie/v2"

	"github.com/AccelByte/extend-arena-pairing/pkg/envelope"
	"github.com/AccelByte/extend-arena-pairing/pkg/mathutil"
	"github.com/AccelByte/extend-arena-pairing/pkg/models"
)

type Strategy int

const (
	StrategyNone Strategy = iota
	StrategyProximity
	StrategySmallWeighted
	StrategyLargeWeighted
)

func (s Strategy) String() string {
	switch s {
	case StrategyProximity:
		return "proximity"
	case StrategySmallWeighted:
		return "small_weighted"
	case StrategyLargeWeighted:
		return "large_weighted"
	default:
		return "none"
	}
}

// Batch is a half open range of the rank ordered idle pool.
type Batch struct {
	From int
	To   int
}

func (b Batch) Size() int {
	return b.To - b.From
}

// Plan tells which strategy runs on which part of the idle pool.
type Plan struct {
	Strategy Strategy
	Batches  []Batch
}

// Skipped returns how many idle players the plan leaves for a later tick.
func (p Plan) Skipped(idleCount int) int {
	covered := 0
	for _, b := range p.Batches {
		covered += b.Size()
	}
	return idleCount - covered
}

// Outcome is what one pairing attempt produced.
type Outcome struct {
	Preps    []models.Prep
	Strategy Strategy
}

// SelectStrategy picks the strategy for a pool of poolSize idle players.
func SelectStrategy(data Data, poolSize int) Strategy {
	switch {
	case poolSize < 2:
		return StrategyNone
	case data.Tournament.RecentlyStarted && !data.Tournament.TeamBattle, data.IsFirstRound():
		return StrategyProximity
	case poolSize <= data.Settings.SmallPoolMaxSize && !data.Tournament.TeamBattle:
		return StrategySmallWeighted
	default:
		return StrategyLargeWeighted
	}
}

// BatchSize returns the size of each of the two batches an oversized pool is split in.
func BatchSize(idleCount int, batchCap int) int {
	return mathutil.EvenFloor(mathutil.Min(batchCap, (idleCount/4)*2))
}

// PlanFor splits the idle pool when it exceeds the batch cap and picks the strategy of the batches.
// Players beyond the second batch are skipped this tick.
func PlanFor(data Data, idleCount int) Plan {
	strategy := SelectStrategy(data, idleCount)
	switch {
	case strategy == StrategyNone:
		return Plan{Strategy: StrategyNone}
	case strategy == StrategyProximity:
		return Plan{Strategy: strategy, Batches: []Batch{{From: 0, To: idleCount}}}
	case idleCount > data.Settings.BatchCap:
		size := BatchSize(idleCount, data.Settings.BatchCap)
		return Plan{
			Strategy: SelectStrategy(data, size),
			Batches:  []Batch{{From: 0, To: size}, {From: size, To: 2 * size}},
		}
	default:
		return Plan{Strategy: strategy, Batches: []Batch{{From: 0, To: idleCount}}}
	}
}

// MakePreps pairs the idle players among the candidates.
// Candidates that are no longer idle are dropped silently.
func MakePreps(rootScope *envelope.Scope, data Data, candidates []string) Outcome {
	scope := rootScope.NewChildScope("pairing.MakePreps")
	defer scope.Finish()

	if len(candidates) < 2 {
		return Outcome{Strategy: StrategyNone}
	}

	wanted := make(map[string]struct{}, len(candidates))
	for _, id := range candidates {
		wanted[id] = struct{}{}
	}
	idle := models.RankedPlayers(pie.Filter(data.Idle, func(p models.RankedPlayer) bool {
		_, ok := wanted[p.UserID]
		return ok
	}))

	plan := PlanFor(data, len(idle))
	scope.SetAttributes(envelope.StrategyTag, plan.Strategy)
	scope.Log.
		WithField("candidates", len(candidates)).
		WithField("idle", len(idle)).
		WithField("batches", len(plan.Batches)).
		WithField("skipped", plan.Skipped(len(idle))).
		Debugf("pairing with %s strategy", plan.Strategy)

	preps := make([]models.Prep, 0, len(idle)/2)
	for _, batch := range plan.Batches {
		players := idle[batch.From:batch.To]
		switch plan.Strategy {
		case StrategyProximity:
			preps = append(preps, ProximityPairs(players)...)
		case StrategySmallWeighted:
			preps = append(preps, SmallPoolMatch(players, data.history())...)
		case StrategyLargeWeighted:
			preps = append(preps, LargePoolMatch(players, data.history(), data.Settings.RankWindow)...)
		}
	}

	return Outcome{Preps: preps, Strategy: plan.Strategy}
}
