// Copyright (c) 2025 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

// Package redisstore keeps the tournament state the pairing engine reads in redis:
// recent pairings, players in a game, active players and color balances.
package redisstore

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/AccelByte/extend-arena-pairing/pkg/config"
	"github.com/AccelByte/extend-arena-pairing/pkg/models"
	"github.com/AccelByte/extend-arena-pairing/pkg/pairing"
	"github.com/AccelByte/extend-arena-pairing/pkg/utils"
)

const (
	fieldBalance = "balance"
	fieldLast    = "last"
	separator    = "|"
)

var ErrMalformedPairing = errors.New("malformed pairing entry")

type Store struct {
	rdb         *redis.Client
	prefix      string
	historySize int
	now         func() time.Time
}

var _ pairing.Store = (*Store)(nil)

func NewStore(rdb *redis.Client, prefix string, historySize int) *Store {
	return &Store{rdb: rdb, prefix: prefix, historySize: historySize, now: time.Now}
}

// Open connects to the redis of the configuration and checks that it answers.
func Open(ctx context.Context, cfg *config.Config) (*Store, error) {
	opts, err := redis.ParseURL(cfg.RedisURL)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}
	rdb := redis.NewClient(opts)
	if err = rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("ping redis: %w", err)
	}
	return NewStore(rdb, cfg.RedisKeyPrefix, cfg.PairingHistorySize), nil
}

func (s *Store) Close() error { return s.rdb.Close() }

func (s *Store) keyTournament(tournamentID string) string { return s.prefix + ":t:" + tournamentID }
func (s *Store) keyPairings(tournamentID string) string   { return s.keyTournament(tournamentID) + ":pairings" }
func (s *Store) keyPlaying(tournamentID string) string    { return s.keyTournament(tournamentID) + ":playing" }
func (s *Store) keyActive(tournamentID string) string     { return s.keyTournament(tournamentID) + ":active" }
func (s *Store) keyColor(userID string) string            { return s.prefix + ":u:" + userID + ":color" }

// LastOpponents reads the limit most recent pairings of the tournament and keeps those involving the given users.
func (s *Store) LastOpponents(ctx context.Context, tournamentID string, userIDs []string, limit int) (models.LastOpponents, error) {
	if limit <= 0 {
		return models.LastOpponents{}, nil
	}
	entries, err := s.rdb.LRange(ctx, s.keyPairings(tournamentID), 0, int64(limit-1)).Result()
	if err != nil {
		return nil, err
	}

	wanted := make(map[string]struct{}, len(userIDs))
	for _, id := range userIDs {
		wanted[id] = struct{}{}
	}

	opponents := models.LastOpponents{}
	for _, entry := range entries {
		white, black, ok := strings.Cut(entry, separator)
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrMalformedPairing, entry)
		}
		if _, ok = wanted[white]; ok {
			opponents[white] = append(opponents[white], black)
		}
		if _, ok = wanted[black]; ok {
			opponents[black] = append(opponents[black], white)
		}
	}
	return opponents, nil
}

func (s *Store) CountActivePlayers(ctx context.Context, tournamentID string) (int, error) {
	count, err := s.rdb.SCard(ctx, s.keyActive(tournamentID)).Result()
	if err != nil {
		return 0, err
	}
	return int(count), nil
}

func (s *Store) RankedIdlePlayers(ctx context.Context, tournamentID string, userIDs []string, ranking models.Ranking) (models.RankedPlayers, error) {
	if len(userIDs) == 0 {
		return models.RankedPlayers{}, nil
	}
	members := make([]interface{}, len(userIDs))
	for i, id := range userIDs {
		members[i] = id
	}
	playing, err := s.rdb.SMIsMember(ctx, s.keyPlaying(tournamentID), members...).Result()
	if err != nil {
		return nil, err
	}

	idle := make([]string, 0, len(userIDs))
	for i, id := range userIDs {
		if !playing[i] {
			idle = append(idle, id)
		}
	}
	return models.NewRankedPlayers(idle, ranking), nil
}

type colorRecord struct {
	balance int
	last    string
}

func (s *Store) colorRecords(ctx context.Context, userIDs ...string) ([]colorRecord, error) {
	cmds := make([]*redis.MapStringStringCmd, len(userIDs))
	_, err := s.rdb.Pipelined(ctx, func(pipe redis.Pipeliner) error {
		for i, id := range userIDs {
			cmds[i] = pipe.HGetAll(ctx, s.keyColor(id))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	records := make([]colorRecord, len(userIDs))
	for i, cmd := range cmds {
		fields := cmd.Val()
		if raw, ok := fields[fieldBalance]; ok {
			balance, err := strconv.Atoi(raw)
			if err != nil {
				return nil, fmt.Errorf("color balance of %s: %w", userIDs[i], err)
			}
			records[i].balance = balance
		}
		records[i].last = fields[fieldLast]
	}
	return records, nil
}

/*
FirstMoveRecipient returns the user that gets white.

The user that played white less often gets white. On equal balance the user that played black last gets white,
then the smaller user id.
*/
func (s *Store) FirstMoveRecipient(ctx context.Context, userA, userB string) (string, error) {
	records, err := s.colorRecords(ctx, userA, userB)
	if err != nil {
		return "", err
	}
	a, b := records[0], records[1]

	switch {
	case a.balance != b.balance:
		if a.balance < b.balance {
			return userA, nil
		}
		return userB, nil
	case a.last != b.last:
		if a.last == models.Black.String() || b.last == models.White.String() {
			return userA, nil
		}
		if b.last == models.Black.String() || a.last == models.White.String() {
			return userB, nil
		}
	}
	if userA <= userB {
		return userA, nil
	}
	return userB, nil
}

func (s *Store) AllocateMatchID(ctx context.Context) (string, error) {
	return utils.NewMatchID(s.now()), nil
}

// RecordPairings stores the pairings of a tick: both players are in a game and their color balance moves.
func (s *Store) RecordPairings(ctx context.Context, pairings []models.Pairing) error {
	if len(pairings) == 0 {
		return nil
	}
	touched := map[string]struct{}{}
	_, err := s.rdb.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		for _, p := range pairings {
			pipe.LPush(ctx, s.keyPairings(p.TournamentID), p.White+separator+p.Black)
			pipe.SAdd(ctx, s.keyPlaying(p.TournamentID), p.White, p.Black)
			pipe.HIncrBy(ctx, s.keyColor(p.White), fieldBalance, 1)
			pipe.HSet(ctx, s.keyColor(p.White), fieldLast, models.White.String())
			pipe.HIncrBy(ctx, s.keyColor(p.Black), fieldBalance, -1)
			pipe.HSet(ctx, s.keyColor(p.Black), fieldLast, models.Black.String())
			touched[p.TournamentID] = struct{}{}
		}
		for tournamentID := range touched {
			pipe.LTrim(ctx, s.keyPairings(tournamentID), 0, int64(s.historySize-1))
		}
		return nil
	})
	return err
}

// FinishMatch makes both players of the pairing idle again.
func (s *Store) FinishMatch(ctx context.Context, p models.Pairing) error {
	return s.rdb.SRem(ctx, s.keyPlaying(p.TournamentID), p.White, p.Black).Err()
}

func (s *Store) Join(ctx context.Context, tournamentID, userID string) error {
	return s.rdb.SAdd(ctx, s.keyActive(tournamentID), userID).Err()
}

// Withdraw removes the user from the active players, a game in progress still ends with FinishMatch.
func (s *Store) Withdraw(ctx context.Context, tournamentID, userID string) error {
	return s.rdb.SRem(ctx, s.keyActive(tournamentID), userID).Err()
}
