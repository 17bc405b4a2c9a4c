// Package queue hands thumbnail jobs from the upload path to the worker
// over a Redis list. LPush/BRPop gives FIFO delivery with each job handed
// to exactly one consumer.
package queue

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// DefaultKey is the list the producer and consumers share.
const DefaultKey = "files_manager:thumbnail_jobs"

// ThumbnailJob asks the worker to generate derivatives for one stored image.
type ThumbnailJob struct {
	UserID string `json:"userId"`
	FileID string `json:"fileId"`
}

// Producer is the upload pipeline's side of the queue.
type Producer interface {
	Enqueue(ctx context.Context, job ThumbnailJob) error
}

// Consumer is the worker's side. Dequeue blocks until a job is available or
// ctx is canceled.
type Consumer interface {
	Dequeue(ctx context.Context) (*ThumbnailJob, error)
}

type RedisQueue struct {
	client *redis.Client
	key    string
}

func NewRedisQueue(client *redis.Client, key string) *RedisQueue {
	if key == "" {
		key = DefaultKey
	}
	return &RedisQueue{client: client, key: key}
}

func (q *RedisQueue) Enqueue(ctx context.Context, job ThumbnailJob) error {
	payload, err := json.Marshal(job)
	if err != nil {
		return fmt.Errorf("encode job: %w", err)
	}
	return q.client.LPush(ctx, q.key, payload).Err()
}

func (q *RedisQueue) Dequeue(ctx context.Context) (*ThumbnailJob, error) {
	res, err := q.client.BRPop(ctx, 0, q.key).Result()
	if err != nil {
		return nil, err
	}
	// BRPop returns [key, value]
	var job ThumbnailJob
	if err := json.Unmarshal([]byte(res[1]), &job); err != nil {
		return nil, fmt.Errorf("decode job: %w", err)
	}
	return &job, nil
}
