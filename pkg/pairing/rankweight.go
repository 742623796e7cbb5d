// Copyright (c) 2025 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

package pairing

import (
	"github.com/AccelByte/extend-arena-pairing/pkg/constants"
	"github.com/AccelByte/extend-arena-pairing/pkg/mathutil"
	"github.com/AccelByte/extend-arena-pairing/pkg/models"
)

// RankWeight scores how desirable a pairing is, higher is better.
type RankWeight func(a, b models.RankedPlayer) int

/*
RankFactorFor returns the rank weight of a pool of players.

	weight(a, b) = 300 + 1700 * (maxRank - min(rank(a), rank(b))) / maxRank

With maxRank = 10 a pairing involving the leader weighs 1830 and a pairing of two players ranked 10 weighs 300.
Pairings at the top of the standings weigh more, the bottom of the standings is never excluded.
*/
func RankFactorFor(players models.RankedPlayers) RankWeight {
	maxRank := mathutil.Max(players.MaxRank(), 1)
	return func(a, b models.RankedPlayer) int {
		r := mathutil.Min(a.Rank, b.Rank)
		return constants.MinRankWeight + constants.RankWeightSpan*(maxRank-r)/maxRank
	}
}
