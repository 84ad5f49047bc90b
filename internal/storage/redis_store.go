package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"gameforge/internal/model"
)

// RedisOptions configures a RedisStore.
type RedisOptions struct {
	Addr     string
	Password string
	DB       int
	Prefix   string
	TTL      time.Duration // 0 keeps projects until deleted
}

// RedisStore keeps each project as a JSON string under prefix:project:<id>
// and indexes ids in the sorted set prefix:projects by creation time.
type RedisStore struct {
	client *redis.Client
	prefix string
	ttl    time.Duration
}

// NewRedisStore connects to Redis and verifies the connection.
func NewRedisStore(ctx context.Context, opts RedisOptions) (*RedisStore, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     opts.Addr,
		Password: opts.Password,
		DB:       opts.DB,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("failed to connect to redis at %s: %w", opts.Addr, err)
	}
	return NewRedisStoreWithClient(client, opts.Prefix, opts.TTL), nil
}

// NewRedisStoreWithClient wraps an existing client.
func NewRedisStoreWithClient(client *redis.Client, prefix string, ttl time.Duration) *RedisStore {
	if prefix == "" {
		prefix = "gameforge"
	}
	return &RedisStore{client: client, prefix: prefix, ttl: ttl}
}

func (s *RedisStore) projectKey(id string) string {
	return s.prefix + ":project:" + id
}

func (s *RedisStore) indexKey() string {
	return s.prefix + ":projects"
}

// BasePath returns the key prefix.
func (s *RedisStore) BasePath() string {
	return s.prefix
}

// Close closes the underlying client.
func (s *RedisStore) Close() error {
	return s.client.Close()
}

// Save stores the project and updates the index in one transaction.
func (s *RedisStore) Save(ctx context.Context, project *model.GeneratedProject) error {
	if err := validateID(project.ID); err != nil {
		return err
	}
	data, err := json.Marshal(project)
	if err != nil {
		return fmt.Errorf("failed to marshal project %s: %w", project.ID, err)
	}

	_, err = s.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Set(ctx, s.projectKey(project.ID), data, s.ttl)
		pipe.ZAdd(ctx, s.indexKey(), redis.Z{
			Score:  float64(project.CreatedAt.UnixMilli()),
			Member: project.ID,
		})
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to save project %s: %w", project.ID, err)
	}
	return nil
}

// Load retrieves a project by id.
func (s *RedisStore) Load(ctx context.Context, id string) (*model.GeneratedProject, error) {
	if err := validateID(id); err != nil {
		return nil, err
	}
	data, err := s.client.Get(ctx, s.projectKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, fmt.Errorf("project %s: %w", id, ErrProjectNotFound)
		}
		return nil, fmt.Errorf("failed to load project %s: %w", id, err)
	}

	var project model.GeneratedProject
	if err := json.Unmarshal(data, &project); err != nil {
		return nil, fmt.Errorf("failed to unmarshal project %s: %w", id, err)
	}
	return &project, nil
}

// List returns summaries newest first. Index entries whose project expired
// are removed from the index.
func (s *RedisStore) List(ctx context.Context) ([]model.ProjectSummary, error) {
	ids, err := s.client.ZRevRange(ctx, s.indexKey(), 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to read project index: %w", err)
	}
	if len(ids) == 0 {
		return []model.ProjectSummary{}, nil
	}

	keys := make([]string, len(ids))
	for i, id := range ids {
		keys[i] = s.projectKey(id)
	}
	values, err := s.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to load projects: %w", err)
	}

	summaries := make([]model.ProjectSummary, 0, len(ids))
	var stale []any
	for i, v := range values {
		raw, ok := v.(string)
		if !ok {
			stale = append(stale, ids[i])
			continue
		}
		var project model.GeneratedProject
		if err := json.Unmarshal([]byte(raw), &project); err != nil {
			return nil, fmt.Errorf("failed to unmarshal project %s: %w", ids[i], err)
		}
		summaries = append(summaries, project.Summary())
	}
	if len(stale) > 0 {
		if err := s.client.ZRem(ctx, s.indexKey(), stale...).Err(); err != nil {
			return nil, fmt.Errorf("failed to prune project index: %w", err)
		}
	}
	sortNewestFirst(summaries)
	return summaries, nil
}

// Delete removes the project and its index entry.
func (s *RedisStore) Delete(ctx context.Context, id string) error {
	if err := validateID(id); err != nil {
		return err
	}
	var del *redis.IntCmd
	_, err := s.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		del = pipe.Del(ctx, s.projectKey(id))
		pipe.ZRem(ctx, s.indexKey(), id)
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to delete project %s: %w", id, err)
	}
	if del.Val() == 0 {
		return fmt.Errorf("project %s: %w", id, ErrProjectNotFound)
	}
	return nil
}
