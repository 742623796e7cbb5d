// Copyright (c) 2025 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

// Package pairing computes the pairings of an arena tournament tick.
// The matching strategies are pure functions over resolved snapshots, only the Orchestrator talks to collaborators.
package pairing

import (
	"errors"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/AccelByte/extend-arena-pairing/pkg/config"
	"github.com/AccelByte/extend-arena-pairing/pkg/constants"
	"github.com/AccelByte/extend-arena-pairing/pkg/envelope"
	"github.com/AccelByte/extend-arena-pairing/pkg/mathutil"
	"github.com/AccelByte/extend-arena-pairing/pkg/metrics"
	"github.com/AccelByte/extend-arena-pairing/pkg/models"
)

var ErrUnexpectedFirstMover = errors.New("first move recipient is not part of the pairing")

type Orchestrator struct {
	cfg      *config.Config
	settings Settings
	collab   Collaborators
	metrics  metrics.PairingMetrics
	random   RandomSource
	clock    func() time.Time
}

type Option func(*Orchestrator)

// WithRandomSource replaces the coin used for high volume color assignment.
func WithRandomSource(random RandomSource) Option {
	return func(o *Orchestrator) {
		o.random = random
	}
}

func WithClock(clock func() time.Time) Option {
	return func(o *Orchestrator) {
		o.clock = clock
	}
}

func NewOrchestrator(cfg *config.Config, collab Collaborators, m metrics.PairingMetrics, opts ...Option) *Orchestrator {
	o := &Orchestrator{
		cfg:      cfg,
		settings: NewSettings(cfg),
		collab:   collab,
		metrics:  m,
		random:   NewRandomSource(time.Now().UnixNano()),
		clock:    time.Now,
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

/*
CreatePairings computes the pairings of one tick of the tournament.

The opponent history, the active player count and the idle players are fetched concurrently, then frozen into Data.
EvenOrAll produces the preps, which receive a color and a match id. Any collaborator failure fails the whole tick
and nothing is returned. Slow ticks are reported, never aborted.
*/
func (o *Orchestrator) CreatePairings(rootScope *envelope.Scope, tournament models.Tournament, users models.WaitingUsers, ranking models.Ranking) ([]models.Pairing, error) {
	scope := rootScope.NewChildScope("Orchestrator.CreatePairings").WithTournament(tournament.ID)
	defer scope.Finish()

	startTime := o.clock()

	if err := tournament.Validate(); err != nil {
		return nil, err
	}
	if users.Size() < 2 {
		return nil, nil
	}

	data, err := o.fetchData(scope, tournament, users, ranking)
	if err != nil {
		scope.Log.WithError(err).Warn("unable to build pairing context")
		return nil, err
	}

	prepsStartTime := o.clock()
	outcome := EvenOrAll(scope, data, users)
	o.observe(scope, constants.MakePrepsFunction, o.clock().Sub(prepsStartTime), o.cfg.SlowPreps())

	if err = models.ValidatePreps(outcome.Preps, users); err != nil {
		scope.Log.WithError(err).Error("invalid preps")
		return nil, err
	}

	pairings, err := o.finalize(scope, tournament.ID, outcome.Preps)
	if err != nil {
		scope.Log.WithError(err).Warn("unable to finalize pairings")
		return nil, err
	}

	o.metrics.AddPairingsCreated(outcome.Strategy.String(), len(pairings))
	scope.SetAttributes(envelope.PrepCountTag, len(pairings))
	o.observe(scope, constants.CreatePairingsFunction, o.clock().Sub(startTime), o.cfg.SlowTick())

	scope.Log.Debugf("created %d pairings from %d waiting users", len(pairings), users.Size())

	return pairings, nil
}

func (o *Orchestrator) fetchData(scope *envelope.Scope, tournament models.Tournament, users models.WaitingUsers, ranking models.Ranking) (Data, error) {
	frozenRanking, err := freeze(ranking)
	if err != nil {
		return Data{}, err
	}

	var (
		lastOpponents        models.LastOpponents
		onlyTwoActivePlayers bool
		idle                 models.RankedPlayers
	)

	g, ctx := errgroup.WithContext(scope.Ctx)
	g.Go(func() error {
		limit := mathutil.Min(o.cfg.HistoryLimit, o.cfg.HistoryPerWaitingUser*users.Size())
		result, err := o.collab.History.LastOpponents(ctx, tournament.ID, users.All(), limit)
		if err != nil {
			return fmt.Errorf("fetch last opponents: %w", err)
		}
		lastOpponents = result
		return nil
	})
	if tournament.NbPlayers <= o.cfg.SmallTournamentMaxPlayers {
		g.Go(func() error {
			count, err := o.collab.Active.CountActivePlayers(ctx, tournament.ID)
			if err != nil {
				return fmt.Errorf("count active players: %w", err)
			}
			onlyTwoActivePlayers = count == 2
			return nil
		})
	}
	g.Go(func() error {
		result, err := o.collab.Idle.RankedIdlePlayers(ctx, tournament.ID, users.All(), frozenRanking)
		if err != nil {
			return fmt.Errorf("fetch ranked idle players: %w", err)
		}
		idle = result
		return nil
	})
	if err = g.Wait(); err != nil {
		return Data{}, err
	}

	return NewData(tournament, lastOpponents, idle, onlyTwoActivePlayers, o.settings)
}

// finalize gives a color and a match id to every prep.
// Few preps ask the color history who is due to move first, many preps flip a coin.
func (o *Orchestrator) finalize(scope *envelope.Scope, tournamentID string, preps []models.Prep) ([]models.Pairing, error) {
	if len(preps) == 0 {
		return nil, nil
	}

	firstMovers := make([]string, len(preps))
	if len(preps) < o.cfg.ColorLookupMaxPreps {
		g, ctx := errgroup.WithContext(scope.Ctx)
		for i, prep := range preps {
			g.Go(func() error {
				userID, err := o.collab.Colors.FirstMoveRecipient(ctx, prep.User1, prep.User2)
				if err != nil {
					return fmt.Errorf("fetch first move recipient: %w", err)
				}
				if !prep.Has(userID) {
					return fmt.Errorf("%w: %s", ErrUnexpectedFirstMover, userID)
				}
				firstMovers[i] = userID
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			return nil, err
		}
		o.metrics.AddColorAssignment(constants.ColorModeHistory, len(preps))
	} else {
		for i, prep := range preps {
			firstMovers[i] = prep.User1
			if o.random.Intn(2) == 1 {
				firstMovers[i] = prep.User2
			}
		}
		o.metrics.AddColorAssignment(constants.ColorModeRandom, len(preps))
	}

	pairings := make([]models.Pairing, 0, len(preps))
	for i, prep := range preps {
		matchID, err := o.collab.MatchIDs.AllocateMatchID(scope.Ctx)
		if err != nil {
			return nil, fmt.Errorf("allocate match id: %w", err)
		}
		pairings = append(pairings, models.NewPairing(matchID, tournamentID, prep, firstMovers[i]))
	}
	return pairings, nil
}

func (o *Orchestrator) observe(scope *envelope.Scope, phase string, elapsed time.Duration, limit time.Duration) {
	o.metrics.AddPhaseElapsedTimeMs(phase, elapsed)
	if elapsed <= limit {
		return
	}
	o.metrics.AddSlowPhase(phase)
	scope.Log.
		WithField("phase", phase).
		WithField("elapsedMs", elapsed.Milliseconds()).
		Warnf("slow %s", phase)
}
