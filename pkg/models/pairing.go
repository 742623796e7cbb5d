// Copyright (c) 2025 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

package models

type Color int

const (
	White Color = iota
	Black
)

func (c Color) String() string {
	if c == White {
		return "white"
	}
	return "black"
}

// Opposite returns the other color.
func (c Color) Opposite() Color {
	if c == White {
		return Black
	}
	return White
}

// Prep is a proposed pairing of two users without colors. It never outlives a tick.
type Prep struct {
	User1 string
	User2 string
}

func (p Prep) Has(userID string) bool {
	return p.User1 == userID || p.User2 == userID
}

// Pairing is a finalized pairing ready to become a match. White moves first.
type Pairing struct {
	ID           string `json:"id"`
	TournamentID string `json:"tournament_id"`
	White        string `json:"white"`
	Black        string `json:"black"`
}

// NewPairing assigns colors to a prep, firstMover receives white.
func NewPairing(id, tournamentID string, prep Prep, firstMover string) Pairing {
	white, black := prep.User1, prep.User2
	if firstMover == prep.User2 {
		white, black = prep.User2, prep.User1
	}
	return Pairing{ID: id, TournamentID: tournamentID, White: white, Black: black}
}

func (p Pairing) ColorOf(userID string) (Color, bool) {
	switch userID {
	case p.White:
		return White, true
	case p.Black:
		return Black, true
	}
	return White, false
}

func (p Pairing) Opponent(userID string) (string, bool) {
	switch userID {
	case p.White:
		return p.Black, true
	case p.Black:
		return p.White, true
	}
	return "", false
}

// ValidatePreps checks that every prep pairs two distinct waiting users and that no user is used twice.
func ValidatePreps(preps []Prep, waiting WaitingUsers) error {
	used := make(map[string]struct{}, len(preps)*2)
	for _, prep := range preps {
		if prep.User1 == prep.User2 {
			return ValidationErrorSameUserPrep
		}
		for _, id := range []string{prep.User1, prep.User2} {
			if !waiting.Contains(id) {
				return ValidationErrorUnknownUser
			}
			if _, ok := used[id]; ok {
				return ValidationErrorUserPairedTwice
			}
			used[id] = struct{}{}
		}
	}
	return nil
}
