// Copyright (c) 2025 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

package pairing

import (
	"github.com/AccelByte/extend-arena-pairing/pkg/envelope"
	"github.com/AccelByte/extend-arena-pairing/pkg/models"
)

/*
EvenOrAll chooses which waiting users MakePreps runs on.

The first round of a tournament that just started pairs everybody at once.
Otherwise only an even number of waiting users is tried first, the most recent arrival of an odd set waits.
If that produces nothing and the set is odd, everybody is tried so that small pools such as 3 players still progress.
*/
func EvenOrAll(rootScope *envelope.Scope, data Data, users models.WaitingUsers) Outcome {
	scope := rootScope.NewChildScope("pairing.EvenOrAll")
	defer scope.Finish()

	if data.IsFirstRound() && data.Tournament.RecentlyStarted {
		return MakePreps(scope, data, users.All())
	}

	outcome := MakePreps(scope, data, users.Even())
	if len(outcome.Preps) == 0 && users.IsOdd() {
		scope.Log.Debug("no preps from the even subset, retrying with every waiting user")
		return MakePreps(scope, data, users.All())
	}
	return outcome
}
