package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/epms/payroll-system/internal/core/domain"
)

const reportCacheTTL = 15 * time.Minute

// ReportCache stores rendered monthly summaries in Redis.
// Key format: report:summary:<month>
type ReportCache struct {
	client *redis.Client
}

// NewReportCache creates a ReportCache wrapping the given Redis client.
func NewReportCache(client *redis.Client) *ReportCache {
	return &ReportCache{client: client}
}

// Get returns the cached summary for the month, or (nil, nil) on a miss.
func (c *ReportCache) Get(ctx context.Context, month string) (*domain.ReportSummary, error) {
	raw, err := c.client.Get(ctx, c.key(month)).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("report cache get: %w", err)
	}

	var summary domain.ReportSummary
	if err := json.Unmarshal(raw, &summary); err != nil {
		return nil, fmt.Errorf("report cache decode: %w", err)
	}
	return &summary, nil
}

// Set stores the summary for the month (expires after reportCacheTTL).
func (c *ReportCache) Set(ctx context.Context, month string, summary *domain.ReportSummary) error {
	raw, err := json.Marshal(summary)
	if err != nil {
		return fmt.Errorf("report cache encode: %w", err)
	}
	return c.client.Set(ctx, c.key(month), raw, reportCacheTTL).Err()
}

func (c *ReportCache) key(month string) string {
	return fmt.Sprintf("report:summary:%s", month)
}
