// Copyright (c) 2025 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

package models

import (
	"errors"
)

var (
	ValidationErrorEmptyTournamentID = errors.New("tournament id cannot be empty")
	ValidationErrorNegativeNbPlayers = errors.New("tournament player count cannot be negative")
	ValidationErrorSameUserPrep      = errors.New("a prep cannot pair a user with itself")
	ValidationErrorUserPairedTwice   = errors.New("a user cannot appear in more than one prep")
	ValidationErrorUnknownUser       = errors.New("a prep references a user outside of the waiting set")
)

var validationErrorCodeMap = map[error]int{
	ValidationErrorEmptyTournamentID: 520101,
	ValidationErrorNegativeNbPlayers: 520102,
	ValidationErrorSameUserPrep:      520103,
	ValidationErrorUserPairedTwice:   520104,
	ValidationErrorUnknownUser:       520105,
}

// ValidationErrorCode returns a code for the error.
// It returns 20002 if the error is not registered in the map.
func ValidationErrorCode(err error) int {
	for registered, code := range validationErrorCodeMap {
		if errors.Is(err, registered) {
			return code
		}
	}
	return 20002
}
