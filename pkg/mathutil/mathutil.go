// Copyright (c) 2025 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

package mathutil

import "cmp"

// Integer is the set of types ranks and pool sizes are expressed in.
type Integer interface {
	~int | ~int32 | ~int64
}

// Max returns the larger of x and y.
func Max[T cmp.Ordered](x T, y T) T {
	return max(x, y)
}

// Min returns the smaller of x and y.
func Min[T cmp.Ordered](x T, y T) T {
	return min(x, y)
}

// EvenFloor rounds x down to the closest even number.
func EvenFloor[T Integer](x T) T {
	return x - x%2
}
