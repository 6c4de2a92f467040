package staging

import (
	"context"
	"encoding/json"
	"fmt"

	"cfachievements/internal/models"

	"github.com/redis/go-redis/v9"
)

const (
	rowsKeyFormat = "staging:submissions:%d"
	doneKeyFormat = "staging:submissions:%d:done"
)

// RedisStore stages submissions as a per-contest append-only list plus a
// done marker key. Each Append flushes one page in a single pipeline, so a
// crash loses at most the in-flight page.
type RedisStore struct {
	client *redis.Client
}

func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

func rowsKey(contestID int) string {
	return fmt.Sprintf(rowsKeyFormat, contestID)
}

func doneKey(contestID int) string {
	return fmt.Sprintf(doneKeyFormat, contestID)
}

func (s *RedisStore) Append(ctx context.Context, contestID int, rows []models.Submission) error {
	if len(rows) == 0 {
		return nil
	}
	values := make([]interface{}, 0, len(rows))
	for i := range rows {
		data, err := json.Marshal(&rows[i])
		if err != nil {
			return fmt.Errorf("marshal staged submission %d: %w", rows[i].ID, err)
		}
		values = append(values, data)
	}

	pipe := s.client.Pipeline()
	pipe.RPush(ctx, rowsKey(contestID), values...)
	_, err := pipe.Exec(ctx)
	if err != nil {
		return fmt.Errorf("append staged submissions for contest %d: %w", contestID, err)
	}
	return nil
}

func (s *RedisStore) Count(ctx context.Context, contestID int) (int64, error) {
	return s.client.LLen(ctx, rowsKey(contestID)).Result()
}

func (s *RedisStore) Load(ctx context.Context, contestID int) ([]models.Submission, error) {
	raw, err := s.client.LRange(ctx, rowsKey(contestID), 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("load staged submissions for contest %d: %w", contestID, err)
	}
	rows := make([]models.Submission, 0, len(raw))
	for _, item := range raw {
		var sub models.Submission
		if err := json.Unmarshal([]byte(item), &sub); err != nil {
			return nil, fmt.Errorf("decode staged submission for contest %d: %w", contestID, err)
		}
		rows = append(rows, sub)
	}
	return rows, nil
}

func (s *RedisStore) MarkDone(ctx context.Context, contestID int) error {
	return s.client.Set(ctx, doneKey(contestID), "1", 0).Err()
}

func (s *RedisStore) Done(ctx context.Context, contestID int) (bool, error) {
	n, err := s.client.Exists(ctx, doneKey(contestID)).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (s *RedisStore) Wipe(ctx context.Context, contestID int) error {
	return s.client.Del(ctx, rowsKey(contestID), doneKey(contestID)).Err()
}
