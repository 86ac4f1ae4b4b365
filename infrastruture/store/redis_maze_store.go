// Package store provides the Redis-backed maze document store.
package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/huyndao/mazegen/service/i"
	"github.com/redis/go-redis/v9"
)

// key string format
const mazeKeyFmt = "maze:%s"

// RedisMazeStore keeps canonical maze documents in Redis with a TTL, so a
// generated maze stays downloadable in every format for the lifetime of a
// session and then expires on its own.
type RedisMazeStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisMazeStore initializes a RedisMazeStore with the provided Redis
// client and TTL in seconds.
func NewRedisMazeStore(client *redis.Client, ttlSeconds int) (i.MazeStore, error) {
	if client == nil {
		return nil, errors.New("redis client is required")
	}

	return &RedisMazeStore{
		client: client,
		ttl:    time.Duration(ttlSeconds) * time.Second,
	}, nil
}

// Save stores the document under the maze key with the configured TTL.
func (s *RedisMazeStore) Save(ctx context.Context, id string, document string) error {
	return s.client.Set(ctx, fmt.Sprintf(mazeKeyFmt, id), document, s.ttl).Err()
}

// ByID retrieves the document stored under id. Expired and unknown ids
// both report i.ErrMazeNotFound.
func (s *RedisMazeStore) ByID(ctx context.Context, id string) (string, error) {
	document, err := s.client.Get(ctx, fmt.Sprintf(mazeKeyFmt, id)).Result()
	if errors.Is(err, redis.Nil) {
		return "", i.ErrMazeNotFound
	}
	if err != nil {
		return "", err
	}
	return document, nil
}
