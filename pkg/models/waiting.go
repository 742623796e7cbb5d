// Copyright (c) 2025 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

package models

import (
	"github.com/AccelByte/extend-arena-pairing/pkg/utils"
)

// WaitingUsers is the set of users waiting for an opponent, in arrival order.
type WaitingUsers struct {
	all   []string
	index map[string]struct{}
}

// NewWaitingUsers builds the waiting set. Ids are expected oldest arrival first, repeated ids are ignored.
func NewWaitingUsers(userIDs []string) WaitingUsers {
	all := utils.Dedupe(userIDs)
	index := make(map[string]struct{}, len(all))
	for _, id := range all {
		index[id] = struct{}{}
	}
	return WaitingUsers{all: all, index: index}
}

// All returns a copy of every waiting user id.
func (w WaitingUsers) All() []string {
	return append([]string(nil), w.all...)
}

// Even returns the waiting users without the most recent arrival when the set is odd.
func (w WaitingUsers) Even() []string {
	if w.IsOdd() {
		return append([]string(nil), w.all[:len(w.all)-1]...)
	}
	return w.All()
}

func (w WaitingUsers) IsOdd() bool {
	return len(w.all)%2 == 1
}

func (w WaitingUsers) Size() int {
	return len(w.all)
}

func (w WaitingUsers) Contains(userID string) bool {
	_, ok := w.index[userID]
	return ok
}
