// Copyright (c) 2025 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

// Package models holds the snapshots the pairing engine reads during one tick
// and the pairings it produces.
package models

import (
	validator "github.com/AccelByte/justice-input-validation-go"
)

// Tournament is the read-only snapshot of an arena tournament for one tick.
type Tournament struct {
	ID              string `json:"id"               valid:"stringlength(1|64)"`
	NbPlayers       int    `json:"nb_players"       valid:"range(0|2147483647)" optional:"true"`
	RecentlyStarted bool   `json:"recently_started" optional:"true"`
	TeamBattle      bool   `json:"team_battle"      optional:"true"`
}

func (t Tournament) Validate() error {
	if t.ID == "" {
		return ValidationErrorEmptyTournamentID
	}
	if t.NbPlayers < 0 {
		return ValidationErrorNegativeNbPlayers
	}
	if _, err := validator.ValidateStruct(t); err != nil {
		return err
	}
	return nil
}
