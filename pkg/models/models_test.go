// Copyright (c) 2025 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTournament_Validate(t *testing.T) {
	tests := []struct {
		name       string
		tournament Tournament
		wantErr    error
	}{
		{name: "valid", tournament: Tournament{ID: "t1", NbPlayers: 12}},
		{name: "empty_id", tournament: Tournament{NbPlayers: 12}, wantErr: ValidationErrorEmptyTournamentID},
		{name: "negative_players", tournament: Tournament{ID: "t1", NbPlayers: -1}, wantErr: ValidationErrorNegativeNbPlayers},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.tournament.Validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestWaitingUsers(t *testing.T) {
	odd := NewWaitingUsers([]string{"a", "b", "c", "b"})
	assert.Equal(t, 3, odd.Size())
	assert.True(t, odd.IsOdd())
	assert.Equal(t, []string{"a", "b", "c"}, odd.All())
	assert.Equal(t, []string{"a", "b"}, odd.Even(), "the most recent arrival is left out")
	assert.True(t, odd.Contains("c"))
	assert.False(t, odd.Contains("d"))

	even := NewWaitingUsers([]string{"a", "b"})
	assert.False(t, even.IsOdd())
	assert.Equal(t, even.All(), even.Even())

	empty := NewWaitingUsers(nil)
	assert.Equal(t, 0, empty.Size())
	assert.Empty(t, empty.Even())
}

func TestWaitingUsers_AllReturnsCopy(t *testing.T) {
	users := NewWaitingUsers([]string{"a", "b"})
	all := users.All()
	all[0] = "z"
	assert.Equal(t, []string{"a", "b"}, users.All())
}

func TestNewRankedPlayers(t *testing.T) {
	ranking := Ranking{"a": 3, "b": 1, "c": 2, "d": 2}
	players := NewRankedPlayers([]string{"a", "x", "d", "b", "c"}, ranking)

	assert.Equal(t, RankedPlayers{
		{UserID: "b", Rank: 1},
		{UserID: "c", Rank: 2},
		{UserID: "d", Rank: 2},
		{UserID: "a", Rank: 3},
		{UserID: "x", Rank: 4},
	}, players)
	assert.Equal(t, 4, players.MaxRank())
	assert.Equal(t, []string{"b", "c", "d", "a", "x"}, players.UserIDs())
}

func TestLastOpponents_Recency(t *testing.T) {
	history := LastOpponents{
		"a": {"b", "c"},
		"b": {"d", "a"},
		"c": {"a"},
	}
	assert.False(t, history.IsEmpty())
	assert.Equal(t, 0, history.Recency("a", "b"), "a just played b")
	assert.Equal(t, 0, history.Recency("b", "a"))
	assert.Equal(t, 0, history.Recency("c", "a"))
	assert.Equal(t, -1, history.Recency("a", "d"))
	assert.True(t, history.MetRecently("b", "d"))
	assert.False(t, history.MetRecently("c", "d"))
	assert.True(t, LastOpponents{}.IsEmpty())
}

func TestNewPairing(t *testing.T) {
	prep := Prep{User1: "a", User2: "b"}

	p := NewPairing("m1", "t1", prep, "b")
	assert.Equal(t, Pairing{ID: "m1", TournamentID: "t1", White: "b", Black: "a"}, p)

	color, ok := p.ColorOf("a")
	require.True(t, ok)
	assert.Equal(t, Black, color)
	assert.Equal(t, White, color.Opposite())

	opponent, ok := p.Opponent("b")
	require.True(t, ok)
	assert.Equal(t, "a", opponent)

	_, ok = p.Opponent("z")
	assert.False(t, ok)

	assert.Equal(t, "a", NewPairing("m2", "t1", prep, "a").White)
}

func TestValidatePreps(t *testing.T) {
	waiting := NewWaitingUsers([]string{"a", "b", "c", "d"})
	tests := []struct {
		name    string
		preps   []Prep
		wantErr error
	}{
		{name: "valid", preps: []Prep{{"a", "b"}, {"c", "d"}}},
		{name: "empty", preps: nil},
		{name: "same_user", preps: []Prep{{"a", "a"}}, wantErr: ValidationErrorSameUserPrep},
		{name: "used_twice", preps: []Prep{{"a", "b"}, {"b", "c"}}, wantErr: ValidationErrorUserPairedTwice},
		{name: "unknown_user", preps: []Prep{{"a", "z"}}, wantErr: ValidationErrorUnknownUser},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePreps(tt.preps, waiting)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
			assert.NotEqual(t, 20002, ValidationErrorCode(err))
		})
	}
}
