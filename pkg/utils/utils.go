// Copyright (c) 2025 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

package utils

import (
	"crypto/rand"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	ulid "github.com/oklog/ulid/v2"
)

var (
	entropy   = ulid.Monotonic(rand.Reader, 0)
	ulidMutex sync.Mutex
)

// Dedupe removes repeated values and keeps the first occurrence order.
func Dedupe[T comparable](list []T) []T {
	seen := make(map[T]struct{}, len(list))
	result := make([]T, 0, len(list))
	for _, v := range list {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		result = append(result, v)
	}
	return result
}

// GenerateUUID generates uuid without hyphens.
func GenerateUUID() string {
	id, _ := uuid.NewRandom()
	return strings.ReplaceAll(id.String(), "-", "")
}

// NewMatchID returns a lexically sortable unique match id.
func NewMatchID(t time.Time) string {
	ulidMutex.Lock()
	defer ulidMutex.Unlock()
	return ulid.MustNew(ulid.Timestamp(t), entropy).String()
}
