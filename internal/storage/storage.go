package storage

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"gameforge/internal/config"
	"gameforge/internal/model"
)

var (
	// ErrProjectNotFound is returned when no project has the requested id.
	ErrProjectNotFound = errors.New("project not found")
	// ErrInvalidID is returned for empty ids or ids that are not safe as a file name.
	ErrInvalidID = errors.New("invalid project id")
)

// ProjectStore defines the operations needed for persisting generated projects.
// This allows swapping implementations (JSON files, Redis).
type ProjectStore interface {
	// Save persists the project, replacing any project with the same id.
	Save(ctx context.Context, project *model.GeneratedProject) error

	// Load retrieves a project by id. Missing projects return ErrProjectNotFound.
	Load(ctx context.Context, id string) (*model.GeneratedProject, error)

	// List returns summaries of all projects, newest first.
	List(ctx context.Context) ([]model.ProjectSummary, error)

	// Delete removes a project. Missing projects return ErrProjectNotFound.
	Delete(ctx context.Context, id string) error

	// BasePath describes where projects live (directory or key prefix).
	BasePath() string

	Close() error
}

// Open creates the store selected by cfg.Driver.
func Open(ctx context.Context, cfg config.StorageConfig) (ProjectStore, error) {
	switch cfg.Driver {
	case "", "json":
		return NewJSONStore(cfg.Path)
	case "redis":
		return NewRedisStore(ctx, RedisOptions{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
			Prefix:   cfg.Redis.Prefix,
			TTL:      cfg.Redis.TTL,
		})
	default:
		return nil, fmt.Errorf("unknown storage driver %q", cfg.Driver)
	}
}

func validateID(id string) error {
	if id == "" || strings.ContainsAny(id, `/\`) || strings.Contains(id, "..") {
		return fmt.Errorf("%w: %q", ErrInvalidID, id)
	}
	return nil
}

func sortNewestFirst(summaries []model.ProjectSummary) {
	sort.SliceStable(summaries, func(i, j int) bool {
		if summaries[i].CreatedAt.Equal(summaries[j].CreatedAt) {
			return summaries[i].ID < summaries[j].ID
		}
		return summaries[i].CreatedAt.After(summaries[j].CreatedAt)
	})
}
