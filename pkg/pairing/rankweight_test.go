// Copyright (c) 2025 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

package pairing

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/AccelByte/extend-arena-pairing/pkg/models"
)

func rankedPool(ranks ...int) models.RankedPlayers {
	players := make(models.RankedPlayers, len(ranks))
	for i, rank := range ranks {
		players[i] = models.RankedPlayer{UserID: string(rune('a' + i)), Rank: rank}
	}
	return players
}

func TestRankFactorFor(t *testing.T) {
	players := rankedPool(1, 2, 3, 4, 5, 6, 7, 8, 9, 10)
	weight := RankFactorFor(players)

	tests := []struct {
		name string
		a, b models.RankedPlayer
		want int
	}{
		{name: "leader", a: players[0], b: players[4], want: 1830},
		{name: "leader_reversed", a: players[4], b: players[0], want: 1830},
		{name: "middle", a: players[4], b: players[5], want: 300 + 1700*5/10},
		{name: "bottom", a: players[9], b: players[9], want: 300},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, weight(tt.a, tt.b))
		})
	}
}

func TestRankFactorFor_TopPairsWeighMore(t *testing.T) {
	players := rankedPool(1, 5, 300, 310)
	weight := RankFactorFor(players)

	assert.Greater(t, weight(players[0], players[1]), weight(players[2], players[3]))
	assert.GreaterOrEqual(t, weight(players[2], players[3]), 300)
}

func TestRankFactorFor_EmptyPool(t *testing.T) {
	weight := RankFactorFor(nil)
	assert.Equal(t, 300, weight(models.RankedPlayer{Rank: 1}, models.RankedPlayer{Rank: 1}))
}
