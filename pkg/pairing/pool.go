// Copyright (c) 2025 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

package pairing

import (
	"gopkg.in/typ.v4/sync2"
)

// pool reusable objects to reduce garbage collector, every tick of every tournament builds candidate edges
type pool struct {
	edges *sync2.Pool[[]edge]
}

func newPool() *pool {
	return &pool{
		edges: &sync2.Pool[[]edge]{
			New: func() []edge {
				return make([]edge, 0, 1024)
			},
		},
	}
}

var buffers = newPool()
