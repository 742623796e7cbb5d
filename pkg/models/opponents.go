// Copyright (c) 2025 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

package models

// LastOpponents maps a user id to its recent opponents, the most recent first.
// An empty value means nobody in the tournament has played yet.
type LastOpponents map[string][]string

func (l LastOpponents) IsEmpty() bool {
	return len(l) == 0
}

// Recency returns how many other meetings happened since a and b last met,
// from the point of view of whichever of the two met the other most recently.
// It returns -1 when they did not meet recently.
func (l LastOpponents) Recency(a, b string) int {
	recency := -1
	for i, opponent := range l[a] {
		if opponent == b {
			recency = i
			break
		}
	}
	for i, opponent := range l[b] {
		if opponent == a {
			if recency < 0 || i < recency {
				recency = i
			}
			break
		}
	}
	return recency
}

func (l LastOpponents) MetRecently(a, b string) bool {
	return l.Recency(a, b) >= 0
}
