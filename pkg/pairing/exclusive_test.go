// Copyright (c) 2025 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

package pairing

import (
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExclusive_RejectsOverlappingRun(t *testing.T) {
	exclusive := NewExclusive()
	started := make(chan struct{})
	release := make(chan struct{})

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		ran, err := exclusive.TryRun("t1", func() error {
			close(started)
			<-release
			return nil
		})
		assert.True(t, ran)
		assert.NoError(t, err)
	}()

	<-started
	assert.True(t, exclusive.Running("t1"))

	ran, err := exclusive.TryRun("t1", func() error {
		t.Error("overlapping run must not start")
		return nil
	})
	assert.False(t, ran)
	assert.NoError(t, err)

	ran, err = exclusive.TryRun("t2", func() error { return nil })
	assert.True(t, ran, "other tournaments are not blocked")
	assert.NoError(t, err)

	close(release)
	wg.Wait()
	assert.False(t, exclusive.Running("t1"))
}

func TestExclusive_ReleasesOnError(t *testing.T) {
	exclusive := NewExclusive()
	boom := errors.New("boom")

	ran, err := exclusive.TryRun("t1", func() error { return boom })
	require.True(t, ran)
	assert.ErrorIs(t, err, boom)
	assert.False(t, exclusive.Running("t1"))

	ran, _ = exclusive.TryRun("t1", func() error { return nil })
	assert.True(t, ran)
}
