package cache

import (
	"context"
	"encoding/json"

	"interviewflow/internal/model"

	"github.com/redis/go-redis/v9"
)

const recentKey = "interviews:recent"

// HistoryStore persists summaries of finished interviews for the
// history and dashboard views.
type HistoryStore interface {
	Save(ctx context.Context, record *model.InterviewRecord) error
	Recent(ctx context.Context, limit int) ([]model.InterviewRecord, error)
}

type historyCache struct {
	client *redis.Client
}

// NewHistoryCache creates a Redis-backed history store
func NewHistoryCache(client *redis.Client) HistoryStore {
	return &historyCache{
		client: client,
	}
}

func (c *historyCache) Save(ctx context.Context, record *model.InterviewRecord) error {
	data, err := json.Marshal(record)
	if err != nil {
		return err
	}
	if err := c.client.Set(ctx, "report:"+record.SessionID, data, 0).Err(); err != nil {
		return err
	}
	return c.client.ZAdd(ctx, recentKey, redis.Z{
		Score:  float64(record.EndedAt.UnixMilli()),
		Member: record.SessionID,
	}).Err()
}

func (c *historyCache) Recent(ctx context.Context, limit int) ([]model.InterviewRecord, error) {
	ids, err := c.client.ZRevRange(ctx, recentKey, 0, int64(limit-1)).Result()
	if err != nil {
		return nil, err
	}

	records := make([]model.InterviewRecord, 0, len(ids))
	for _, id := range ids {
		data, err := c.client.Get(ctx, "report:"+id).Result()
		if err == redis.Nil {
			continue
		}
		if err != nil {
			return nil, err
		}
		var record model.InterviewRecord
		if err := json.Unmarshal([]byte(data), &record); err != nil {
			continue
		}
		records = append(records, record)
	}
	return records, nil
}
