package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"gameforge/internal/model"
)

// JSONStore implements the ProjectStore interface using JSON files.
// It stores each project as an individual <id>.json file.
type JSONStore struct {
	basePath string
	mu       sync.RWMutex
}

// NewJSONStore creates a new JSONStore instance.
// It ensures the base storage directory exists.
func NewJSONStore(basePath string) (*JSONStore, error) {
	if err := os.MkdirAll(basePath, 0755); err != nil {
		return nil, fmt.Errorf("failed to create storage directory '%s': %w", basePath, err)
	}
	return &JSONStore{basePath: basePath}, nil
}

// BasePath returns the directory of the JSON store.
func (js *JSONStore) BasePath() string {
	return js.basePath
}

// Close implements ProjectStore.
func (js *JSONStore) Close() error { return nil }

func (js *JSONStore) path(id string) string {
	return filepath.Join(js.basePath, id+".json")
}

// Save writes the project to a temporary file and renames it into place.
func (js *JSONStore) Save(ctx context.Context, project *model.GeneratedProject) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := validateID(project.ID); err != nil {
		return err
	}

	data, err := json.MarshalIndent(project, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal project %s: %w", project.ID, err)
	}

	js.mu.Lock()
	defer js.mu.Unlock()

	filePath := js.path(project.ID)
	tmp := filePath + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return fmt.Errorf("failed to write project file %s: %w", tmp, err)
	}
	if err := os.Rename(tmp, filePath); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("failed to move project file into place %s: %w", filePath, err)
	}
	return nil
}

// Load retrieves a project from its JSON file.
func (js *JSONStore) Load(ctx context.Context, id string) (*model.GeneratedProject, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := validateID(id); err != nil {
		return nil, err
	}

	js.mu.RLock()
	data, err := os.ReadFile(js.path(id))
	js.mu.RUnlock()
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("project %s: %w", id, ErrProjectNotFound)
		}
		return nil, fmt.Errorf("failed to read project file %s: %w", js.path(id), err)
	}

	var project model.GeneratedProject
	if err := json.Unmarshal(data, &project); err != nil {
		return nil, fmt.Errorf("failed to unmarshal project data from %s: %w", js.path(id), err)
	}
	return &project, nil
}

// IDs scans the base directory for *.json files and extracts project ids.
func (js *JSONStore) IDs(ctx context.Context) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	js.mu.RLock()
	defer js.mu.RUnlock()

	files, err := os.ReadDir(js.basePath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return []string{}, nil
		}
		return nil, fmt.Errorf("failed to read storage directory %s: %w", js.basePath, err)
	}

	ids := make([]string, 0, len(files))
	for _, file := range files {
		if !file.IsDir() && strings.HasSuffix(file.Name(), ".json") {
			ids = append(ids, strings.TrimSuffix(file.Name(), ".json"))
		}
	}
	return ids, nil
}

// List loads every project and returns their summaries, newest first.
func (js *JSONStore) List(ctx context.Context) ([]model.ProjectSummary, error) {
	ids, err := js.IDs(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get project IDs: %w", err)
	}

	summaries := make([]model.ProjectSummary, 0, len(ids))
	for _, id := range ids {
		project, err := js.Load(ctx, id)
		if err != nil {
			if errors.Is(err, ErrProjectNotFound) {
				continue // deleted while listing
			}
			return nil, fmt.Errorf("failed to load project %s during List: %w", id, err)
		}
		summaries = append(summaries, project.Summary())
	}
	sortNewestFirst(summaries)
	return summaries, nil
}

// Delete removes the project's JSON file.
func (js *JSONStore) Delete(ctx context.Context, id string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := validateID(id); err != nil {
		return err
	}

	js.mu.Lock()
	defer js.mu.Unlock()

	if err := os.Remove(js.path(id)); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("project %s: %w", id, ErrProjectNotFound)
		}
		return fmt.Errorf("failed to delete project file %s: %w", js.path(id), err)
	}
	return nil
}
