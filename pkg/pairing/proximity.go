// Copyright (c) 2025 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

package pairing

import (
	"github.com/AccelByte/extend-arena-pairing/pkg/models"
)

// ProximityPairs pairs rank neighbours in order: (p1, p2), (p3, p4)...
// The last player of an odd sequence stays unpaired.
func ProximityPairs(players models.RankedPlayers) []models.Prep {
	preps := make([]models.Prep, 0, len(players)/2)
	for i := 0; i+1 < len(players); i += 2 {
		preps = append(preps, models.Prep{User1: players[i].UserID, User2: players[i+1].UserID})
	}
	return preps
}
