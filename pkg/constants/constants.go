// Copyright (c) 2025 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

package constants

const (
	CreatePairingsFunction = "createPairings"
	MakePrepsFunction      = "makePreps"
)

const (
	// MinRankWeight is the weight of a pairing among the lowest ranked players.
	MinRankWeight = 300
	// RankWeightSpan is added on top of MinRankWeight for a pairing involving the leader.
	RankWeightSpan = 1700
)

const (
	ColorModeHistory = "history"
	ColorModeRandom  = "random"
)

const (
	// ExhaustiveSearchMaxSize bounds the exact matcher, its cost doubles with every player.
	ExhaustiveSearchMaxSize = 16
)
