package store

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/redis/go-redis/v9"

	"attendlog/internal/attendance"
)

const reportKey = "attendlog:report"

// ReportCache keeps the latest formatted report in Redis so report requests
// served between log events do not recompute the aggregation. All methods
// degrade to no-ops when redis is absent or failing; the service always
// falls back to a fresh computation.
type ReportCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewReportCache builds a cache with the given snapshot TTL.
func NewReportCache(client *redis.Client, ttl time.Duration) *ReportCache {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	return &ReportCache{client: client, ttl: ttl}
}

// Get returns the cached report, if a valid snapshot exists.
func (c *ReportCache) Get(ctx context.Context) ([]attendance.ReportDay, bool) {
	if c == nil || c.client == nil {
		return nil, false
	}
	raw, err := c.client.Get(ctx, reportKey).Bytes()
	if err != nil {
		return nil, false
	}
	var report []attendance.ReportDay
	if err := json.Unmarshal(raw, &report); err != nil {
		return nil, false
	}
	return report, true
}

// Set stores a report snapshot.
func (c *ReportCache) Set(ctx context.Context, report []attendance.ReportDay) {
	if c == nil || c.client == nil {
		return
	}
	raw, err := json.Marshal(report)
	if err != nil {
		return
	}
	if err := c.client.Set(ctx, reportKey, raw, c.ttl).Err(); err != nil {
		log.Printf("report cache set failed: %v", err)
	}
}

// Invalidate drops the snapshot after a user or log mutation.
func (c *ReportCache) Invalidate(ctx context.Context) {
	if c == nil || c.client == nil {
		return
	}
	if err := c.client.Del(ctx, reportKey).Err(); err != nil && err != redis.Nil {
		log.Printf("report cache invalidate failed: %v", err)
	}
}
