// Copyright (c) 2025 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

package models

import (
	"sort"

	"github.com/elliotchance/pie/v2"
)

// Ranking maps a user id to its rank, 1 being the best. Only the relative order matters.
type Ranking map[string]int

// Rank returns the rank of the user, false when the user is not ranked.
func (r Ranking) Rank(userID string) (int, bool) {
	rank, ok := r[userID]
	return rank, ok
}

// Worst returns the numerically largest rank of the ranking.
func (r Ranking) Worst() int {
	worst := 0
	for _, rank := range r {
		if rank > worst {
			worst = rank
		}
	}
	return worst
}

type RankedPlayer struct {
	UserID string `json:"user_id"`
	Rank   int    `json:"rank"`
}

// RankedPlayers is sorted ascending by rank.
type RankedPlayers []RankedPlayer

// NewRankedPlayers ranks the given users. Unranked users are placed after every ranked one.
// Equal ranks are ordered by user id so the sequence does not depend on input order.
func NewRankedPlayers(userIDs []string, ranking Ranking) RankedPlayers {
	unranked := ranking.Worst() + 1
	players := make(RankedPlayers, 0, len(userIDs))
	for _, id := range userIDs {
		rank, ok := ranking.Rank(id)
		if !ok {
			rank = unranked
		}
		players = append(players, RankedPlayer{UserID: id, Rank: rank})
	}
	players.Sort()
	return players
}

// Sort orders the players ascending by rank, then by user id.
func (r RankedPlayers) Sort() {
	sort.SliceStable(r, func(i, j int) bool {
		if r[i].Rank != r[j].Rank {
			return r[i].Rank < r[j].Rank
		}
		return r[i].UserID < r[j].UserID
	})
}

// MaxRank returns the worst rank in the sequence.
func (r RankedPlayers) MaxRank() int {
	maxRank := 0
	for _, p := range r {
		if p.Rank > maxRank {
			maxRank = p.Rank
		}
	}
	return maxRank
}

func (r RankedPlayers) UserIDs() []string {
	return pie.Map(r, func(p RankedPlayer) string {
		return p.UserID
	})
}
