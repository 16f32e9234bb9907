// Package journal keeps a short, expiring log of encounter turn reports in Redis.
package journal

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/udisondev/dungeoncrawl/internal/game/encounter"
)

const (
	DefaultTTL        = 30 * time.Minute
	DefaultMaxEntries = 200
)

// Journal appends turn reports to a capped Redis list per encounter.
type Journal struct {
	rdb        *redis.Client
	ttl        time.Duration
	maxEntries int64
	logger     *slog.Logger
}

// Connect parses url, pings the server and returns a client.
func Connect(ctx context.Context, url string) (*redis.Client, error) {
	opt, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("parsing redis url: %w", err)
	}
	rdb := redis.NewClient(opt)
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("pinging redis: %w", err)
	}
	return rdb, nil
}

// New creates a journal. Zero ttl or maxEntries fall back to defaults.
func New(rdb *redis.Client, ttl time.Duration, maxEntries int, logger *slog.Logger) *Journal {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	if maxEntries <= 0 {
		maxEntries = DefaultMaxEntries
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Journal{
		rdb:        rdb,
		ttl:        ttl,
		maxEntries: int64(maxEntries),
		logger:     logger,
	}
}

func journalKey(encounterID uuid.UUID) string {
	return "encounter-journal:" + encounterID.String()
}

// Record appends a report, trims the list to the newest entries and refreshes expiry.
func (j *Journal) Record(ctx context.Context, encounterID uuid.UUID, report encounter.TurnReport) error {
	payload, err := json.Marshal(report)
	if err != nil {
		return fmt.Errorf("marshaling turn report: %w", err)
	}

	key := journalKey(encounterID)
	pipe := j.rdb.TxPipeline()
	pipe.RPush(ctx, key, payload)
	pipe.LTrim(ctx, key, -j.maxEntries, -1)
	pipe.Expire(ctx, key, j.ttl)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("recording turn %d for encounter %s: %w", report.Turn, encounterID, err)
	}

	j.logger.Debug("turn recorded", "encounter", encounterID, "turn", report.Turn)
	return nil
}

// Recent returns up to n newest reports in turn order. n <= 0 returns all.
func (j *Journal) Recent(ctx context.Context, encounterID uuid.UUID, n int) ([]encounter.TurnReport, error) {
	start := int64(0)
	if n > 0 {
		start = -int64(n)
	}
	raw, err := j.rdb.LRange(ctx, journalKey(encounterID), start, -1).Result()
	if err != nil && !errors.Is(err, redis.Nil) {
		return nil, fmt.Errorf("reading journal for encounter %s: %w", encounterID, err)
	}

	reports := make([]encounter.TurnReport, 0, len(raw))
	for _, entry := range raw {
		var r encounter.TurnReport
		if err := json.Unmarshal([]byte(entry), &r); err != nil {
			j.logger.Warn("skipping malformed journal entry", "encounter", encounterID, "error", err)
			continue
		}
		reports = append(reports, r)
	}
	return reports, nil
}

// Len returns the number of stored reports.
func (j *Journal) Len(ctx context.Context, encounterID uuid.UUID) (int, error) {
	n, err := j.rdb.LLen(ctx, journalKey(encounterID)).Result()
	if err != nil {
		return 0, fmt.Errorf("journal length for encounter %s: %w", encounterID, err)
	}
	return int(n), nil
}

// Clear drops the journal of an encounter.
func (j *Journal) Clear(ctx context.Context, encounterID uuid.UUID) error {
	if err := j.rdb.Del(ctx, journalKey(encounterID)).Err(); err != nil {
		return fmt.Errorf("clearing journal for encounter %s: %w", encounterID, err)
	}
	return nil
}

