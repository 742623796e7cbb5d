// Copyright (c) 2025 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

package config

import (
	"errors"
	"time"

	validator "github.com/AccelByte/justice-input-validation-go"
	"github.com/caarlos0/env"
)

type Config struct {
	BatchCap                  int `env:"PAIRING_BATCH_CAP"                   envDefault:"100" envDocs:"idle pool size above which the pool is split in two independently matched batches" valid:"range(2|100000)"`
	SmallPoolMaxSize          int `env:"PAIRING_SMALL_POOL_MAX_SIZE"         envDefault:"10"  envDocs:"largest pool matched with the exhaustive small pool strategy"                        optional:"true" valid:"range(0|16)"`
	RankWindow                int `env:"PAIRING_RANK_WINDOW"                 envDefault:"12"  envDocs:"number of rank neighbours considered per player by the large pool strategy"         valid:"range(1|1000)"`
	HistoryLimit              int `env:"PAIRING_HISTORY_LIMIT"               envDefault:"300" envDocs:"maximum number of recent pairings fetched per tick"                                 valid:"range(1|100000)"`
	HistoryPerWaitingUser     int `env:"PAIRING_HISTORY_PER_WAITING_USER"    envDefault:"4"   envDocs:"number of recent pairings fetched per waiting user, capped by PAIRING_HISTORY_LIMIT" valid:"range(1|1000)"`
	SmallTournamentMaxPlayers int `env:"PAIRING_SMALL_TOURNAMENT_MAX_PLAYER" envDefault:"20"  envDocs:"tournaments up to this size check whether only two players are still active"    optional:"true" valid:"range(0|100000)"`
	ColorLookupMaxPreps       int `env:"PAIRING_COLOR_LOOKUP_MAX_PREPS"      envDefault:"50"  envDocs:"ticks with fewer preps than this assign colors from color history, others flip a coin" optional:"true" valid:"range(0|100000)"`
	SlowTickMs                int `env:"PAIRING_SLOW_TICK_MS"                envDefault:"500" envDocs:"createPairings duration in milliseconds above which the tick is reported as slow"  valid:"range(1|600000)"`
	SlowPrepsMs               int `env:"PAIRING_SLOW_PREPS_MS"               envDefault:"200" envDocs:"makePreps duration in milliseconds above which the phase is reported as slow"      valid:"range(1|600000)"`

	RedisURL           string `env:"REDIS_URL"                     envDefault:"redis://localhost:6379/0" envDocs:"redis used for opponent and color history"`
	RedisKeyPrefix     string `env:"REDIS_KEY_PREFIX"              envDefault:"arena"                    envDocs:"prefix of every redis key"`
	PairingHistorySize int    `env:"REDIS_PAIRING_HISTORY_SIZE"    envDefault:"1000"                     envDocs:"number of pairings kept per tournament in redis" valid:"range(1|1000000)"`
	ZipkinEndpoint     string `env:"OTEL_EXPORTER_ZIPKIN_ENDPOINT" envDefault:""                         envDocs:"zipkin collector url, tracing export is disabled when empty" optional:"true"`
	ServiceName        string `env:"SERVICE_NAME"                  envDefault:"arena-pairing"            envDocs:"service name reported on traces"`
}

var (
	ErrHistoryLimitTooSmall = errors.New("history limit must not be smaller than history per waiting user")
	ErrEmptyKeyPrefix       = errors.New("redis key prefix must not be empty")
)

// Default returns the configuration used when no environment is set.
func Default() *Config {
	return &Config{
		BatchCap:                  100,
		SmallPoolMaxSize:          10,
		RankWindow:                12,
		HistoryLimit:              300,
		HistoryPerWaitingUser:     4,
		SmallTournamentMaxPlayers: 20,
		ColorLookupMaxPreps:       50,
		SlowTickMs:                500,
		SlowPrepsMs:               200,
		RedisURL:                  "redis://localhost:6379/0",
		RedisKeyPrefix:            "arena",
		PairingHistorySize:        1000,
		ServiceName:               "arena-pairing",
	}
}

// Load reads the configuration from the environment.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	if _, err := validator.ValidateStruct(c); err != nil {
		return err
	}
	if c.HistoryLimit < c.HistoryPerWaitingUser {
		return ErrHistoryLimitTooSmall
	}
	if c.RedisKeyPrefix == "" {
		return ErrEmptyKeyPrefix
	}

	return nil
}

func (c *Config) SlowTick() time.Duration {
	return time.Duration(c.SlowTickMs) * time.Millisecond
}

func (c *Config) SlowPreps() time.Duration {
	return time.Duration(c.SlowPrepsMs) * time.Millisecond
}
