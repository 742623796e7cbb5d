// Copyright (c) 2025 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault_IsValid(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, 500*time.Millisecond, cfg.SlowTick())
	assert.Equal(t, 200*time.Millisecond, cfg.SlowPreps())
}

func TestLoad_UsesDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)
	def := Default()
	assert.Equal(t, def.BatchCap, cfg.BatchCap)
	assert.Equal(t, def.SmallPoolMaxSize, cfg.SmallPoolMaxSize)
	assert.Equal(t, def.RankWindow, cfg.RankWindow)
	assert.Equal(t, def.ColorLookupMaxPreps, cfg.ColorLookupMaxPreps)
	assert.Equal(t, def.SlowPrepsMs, cfg.SlowPrepsMs)
}

func TestLoad_ReadsEnvironment(t *testing.T) {
	t.Setenv("PAIRING_BATCH_CAP", "60")
	t.Setenv("PAIRING_SMALL_POOL_MAX_SIZE", "8")
	t.Setenv("PAIRING_SLOW_TICK_MS", "900")
	t.Setenv("REDIS_KEY_PREFIX", "arena-test")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 60, cfg.BatchCap)
	assert.Equal(t, 8, cfg.SmallPoolMaxSize)
	assert.Equal(t, 900*time.Millisecond, cfg.SlowTick())
	assert.Equal(t, "arena-test", cfg.RedisKeyPrefix)
	assert.Equal(t, 300, cfg.HistoryLimit)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(cfg *Config)
		wantErr error
	}{
		{
			name:   "default",
			modify: func(cfg *Config) {},
		},
		{
			name: "history_limit_below_per_user",
			modify: func(cfg *Config) {
				cfg.HistoryLimit = 2
				cfg.HistoryPerWaitingUser = 4
			},
			wantErr: ErrHistoryLimitTooSmall,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.modify(cfg)
			err := cfg.Validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
