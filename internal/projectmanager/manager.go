package projectmanager

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"gameforge/internal/catalog"
	"gameforge/internal/config"
	"gameforge/internal/enrichment"
	"gameforge/internal/generator"
	"gameforge/internal/logging"
	"gameforge/internal/model"
	"gameforge/internal/storage"
	"gameforge/internal/templating"
	"gameforge/pkg/fsutils"
)

var (
	// ErrTemplateNotFound is returned when a request names a template the catalog lacks.
	ErrTemplateNotFound = errors.New("template not found")
	// ErrFileNotFound is returned when a template or project has no file of the given name.
	ErrFileNotFound = errors.New("file not found")
)

// GenerateRequest is a generation call addressed by template id.
type GenerateRequest struct {
	TemplateID     string                       `json:"templateId"`
	Customizations model.TemplateCustomizations `json:"customizations"`
	Prompt         string                       `json:"prompt,omitempty"`
	Title          string                       `json:"title,omitempty"`
	Genre          string                       `json:"genre,omitempty"`
	Save           bool                         `json:"save,omitempty"`
}

// Manager provides the operations shared by the API server, the admin
// dashboard and the CLI: generate, browse, delete and export projects.
type Manager struct {
	catalog   *catalog.Catalog
	generator *generator.Generator
	store     storage.ProjectStore
	logger    zerolog.Logger
}

// NewManager creates a new Manager instance.
func NewManager(cat *catalog.Catalog, gen *generator.Generator, store storage.ProjectStore, logger zerolog.Logger) *Manager {
	return &Manager{
		catalog:   cat,
		generator: gen,
		store:     store,
		logger:    logging.WithComponent(logger, "projectmanager"),
	}
}

// Open wires a Manager from configuration: catalog (built-ins plus
// generation.catalog_dir), enricher, generator and project store.
func Open(ctx context.Context, cfg *config.Config, logger zerolog.Logger) (*Manager, error) {
	cat, err := LoadCatalog(cfg, logger)
	if err != nil {
		return nil, err
	}

	mock := enrichment.NewMockEnricher(cfg.Enrichment.Seed)
	opts := []generator.Option{
		generator.WithLogger(logging.WithComponent(logger, "generator")),
		generator.WithStrict(cfg.Generation.Strict),
		generator.WithFallbackEnricher(mock),
	}
	if cfg.Enrichment.Provider == "openai" {
		ai, err := enrichment.NewOpenAIEnricher(enrichment.OpenAIConfig{
			APIKey:     cfg.Enrichment.OpenAI.APIKey,
			BaseURL:    cfg.Enrichment.OpenAI.BaseURL,
			Model:      cfg.Enrichment.OpenAI.Model,
			Timeout:    cfg.Enrichment.OpenAI.Timeout,
			MaxRetries: cfg.Enrichment.OpenAI.MaxRetries,
		}, logging.WithComponent(logger, "enrichment"))
		if err != nil {
			return nil, err
		}
		opts = append(opts, generator.WithEnricher(ai))
	}

	store, err := storage.Open(ctx, cfg.Storage)
	if err != nil {
		return nil, fmt.Errorf("opening project store: %w", err)
	}
	return NewManager(cat, generator.New(opts...), store, logger), nil
}

// LoadCatalog returns the built-in templates plus any YAML templates in
// generation.catalog_dir.
func LoadCatalog(cfg *config.Config, logger zerolog.Logger) (*catalog.Catalog, error) {
	cat := catalog.Default()
	if cfg.Generation.CatalogDir != "" {
		var err error
		if cat, err = catalog.LoadDir(cfg.Generation.CatalogDir); err != nil {
			return nil, fmt.Errorf("loading catalog: %w", err)
		}
	}
	return cat.WithLogger(logging.WithComponent(logger, "catalog")), nil
}

// Catalog returns the template catalog.
func (m *Manager) Catalog() *catalog.Catalog {
	return m.catalog
}

// Store returns the project store.
func (m *Manager) Store() storage.ProjectStore {
	return m.store
}

// Close releases the project store.
func (m *Manager) Close() error {
	return m.store.Close()
}

// Generate looks up the template, runs the generator and, when req.Save is
// set, persists the project. The result is returned even when saving fails.
func (m *Manager) Generate(ctx context.Context, req GenerateRequest) (*generator.Result, error) {
	t, ok := m.catalog.ByID(req.TemplateID)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrTemplateNotFound, req.TemplateID)
	}

	result, err := m.generator.Generate(ctx, generator.Request{
		Template:       t,
		Customizations: req.Customizations,
		Prompt:         req.Prompt,
		Title:          req.Title,
		GenreHint:      req.Genre,
	})
	if err != nil {
		return result, err
	}

	if req.Save {
		logger := logging.WithProjectID(m.logger, result.Project.ID)
		if err := m.store.Save(ctx, result.Project); err != nil {
			logger.Error().Err(err).Msg("Error saving project")
			return result, fmt.Errorf("saving project failed: %w", err)
		}
		logger.Info().Str("path", m.store.BasePath()).Msg("Project saved")
	}
	return result, nil
}

// Get loads a saved project.
func (m *Manager) Get(ctx context.Context, id string) (*model.GeneratedProject, error) {
	return m.store.Load(ctx, id)
}

// List returns summaries of saved projects, newest first.
func (m *Manager) List(ctx context.Context) ([]model.ProjectSummary, error) {
	return m.store.List(ctx)
}

// Delete removes a saved project.
func (m *Manager) Delete(ctx context.Context, id string) error {
	if err := m.store.Delete(ctx, id); err != nil {
		return err
	}
	logger := logging.WithProjectID(m.logger, id)
	logger.Info().Msg("Project deleted")
	return nil
}

// File returns one rendered file of a saved project.
func (m *Manager) File(ctx context.Context, id, name string) (string, error) {
	project, err := m.store.Load(ctx, id)
	if err != nil {
		return "", err
	}
	content, ok := project.Files[name]
	if !ok {
		return "", fmt.Errorf("%w: %s in project %s", ErrFileNotFound, name, id)
	}
	return content, nil
}

// Export writes a saved project's files under dir and returns the written paths.
func (m *Manager) Export(ctx context.Context, id, dir string) ([]string, error) {
	project, err := m.store.Load(ctx, id)
	if err != nil {
		return nil, err
	}
	return ExportProject(project, dir)
}

// ExportProject writes project's files under dir.
func ExportProject(project *model.GeneratedProject, dir string) ([]string, error) {
	paths, err := fsutils.WriteFiles(dir, project.Files)
	if err != nil {
		return nil, fmt.Errorf("exporting project %s: %w", project.ID, err)
	}
	return paths, nil
}

// Preview renders one file of a template with its default variables.
// Unresolved tokens are left in place.
func (m *Manager) Preview(templateID, file string) (string, error) {
	t, ok := m.catalog.ByID(templateID)
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrTemplateNotFound, templateID)
	}
	src, ok := t.Code.Files()[file]
	if !ok {
		return "", fmt.Errorf("%w: %s in template %s", ErrFileNotFound, file, templateID)
	}
	out, err := templating.Render(src, t.Variables)
	if err != nil {
		return "", fmt.Errorf("render %s: %w", file, err)
	}
	return out.Output, nil
}
