// Copyright (c) 2025 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

package pairing

import (
	"errors"
	"fmt"

	"github.com/mitchellh/copystructure"

	"github.com/AccelByte/extend-arena-pairing/pkg/config"
	"github.com/AccelByte/extend-arena-pairing/pkg/models"
)

var ErrFreeze = errors.New("unable to freeze pairing snapshot")

// Settings are the thresholds the strategies are selected with.
type Settings struct {
	BatchCap         int
	SmallPoolMaxSize int
	RankWindow       int
}

func NewSettings(cfg *config.Config) Settings {
	return Settings{
		BatchCap:         cfg.BatchCap,
		SmallPoolMaxSize: cfg.SmallPoolMaxSize,
		RankWindow:       cfg.RankWindow,
	}
}

// Data is the frozen context of one tick, every strategy reads the same copy.
type Data struct {
	Tournament           models.Tournament
	LastOpponents        models.LastOpponents
	Idle                 models.RankedPlayers
	OnlyTwoActivePlayers bool
	Settings             Settings
}

// NewData copies the snapshots so that collaborators can not alter them after the fetch.
func NewData(tournament models.Tournament, lastOpponents models.LastOpponents, idle models.RankedPlayers, onlyTwoActivePlayers bool, settings Settings) (Data, error) {
	history, err := freeze(lastOpponents)
	if err != nil {
		return Data{}, err
	}
	players, err := freeze(idle)
	if err != nil {
		return Data{}, err
	}
	players.Sort()

	return Data{
		Tournament:           tournament,
		LastOpponents:        history,
		Idle:                 players,
		OnlyTwoActivePlayers: onlyTwoActivePlayers,
		Settings:             settings,
	}, nil
}

// IsFirstRound is true when nobody waiting has an opponent yet.
func (d Data) IsFirstRound() bool {
	return d.LastOpponents.IsEmpty()
}

// history is the opponent history the matchers have to respect.
// With only two active players left they have to be allowed to meet again.
func (d Data) history() models.LastOpponents {
	if d.OnlyTwoActivePlayers {
		return nil
	}
	return d.LastOpponents
}

// freeze deep copies v. A nil input is returned as is.
func freeze[T any](v T) (T, error) {
	var zero T
	copied, err := copystructure.Copy(v)
	if err != nil {
		return zero, err
	}
	if copied == nil {
		return zero, nil
	}
	frozen, ok := copied.(T)
	if !ok {
		return zero, fmt.Errorf("%w: got %T, want %T", ErrFreeze, copied, zero)
	}
	return frozen, nil
}
