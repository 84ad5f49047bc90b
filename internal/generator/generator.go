// Package generator turns a template and a customization request into a
// GeneratedProject.
package generator

import (
	"context"
	"encoding/json"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/samber/lo"

	"gameforge/internal/customize"
	"gameforge/internal/enrichment"
	"gameforge/internal/logging"
	"gameforge/internal/model"
	"gameforge/internal/templating"
)

// Status summarizes how a generation went.
type Status string

const (
	StatusSuccess Status = "success"
	StatusPartial Status = "partial"
	StatusFailed  Status = "failed"
)

// Warning is a non-fatal problem; see customize.WarningKind for the kinds.
type Warning = customize.Warning

// Request is one generation call.
type Request struct {
	Template       model.Template
	Customizations model.TemplateCustomizations
	Prompt         string
	Title          string
	GenreHint      string
}

// Result is the outcome of Generate. Project is nil only when Status is StatusFailed.
type Result struct {
	Project  *model.GeneratedProject `json:"project,omitempty"`
	Status   Status                  `json:"status"`
	Warnings []Warning               `json:"warnings,omitempty"`
}

// Generator assembles projects. It holds no per-request state and is safe
// for concurrent use as long as its enrichers are.
type Generator struct {
	engine   *templating.Engine
	enricher enrichment.Enricher
	fallback enrichment.Enricher
	newID    func() string
	now      func() time.Time
	logger   zerolog.Logger
}

// Option configures a Generator.
type Option func(*Generator)

// WithIDFunc overrides project id generation.
func WithIDFunc(f func() string) Option {
	return func(g *Generator) { g.newID = f }
}

// WithClock overrides the clock used for CreatedAt.
func WithClock(f func() time.Time) Option {
	return func(g *Generator) { g.now = f }
}

// WithLogger sets the logger.
func WithLogger(logger zerolog.Logger) Option {
	return func(g *Generator) { g.logger = logger }
}

// WithStrict makes unresolved tokens a render error instead of a warning.
func WithStrict(strict bool) Option {
	return func(g *Generator) { g.engine = templating.NewEngine(strict) }
}

// WithEnricher sets the primary content enricher.
func WithEnricher(e enrichment.Enricher) Option {
	return func(g *Generator) { g.enricher = e }
}

// WithFallbackEnricher sets the enricher used when the primary one fails.
func WithFallbackEnricher(e enrichment.Enricher) Option {
	return func(g *Generator) { g.fallback = e }
}

// New creates a Generator. By default content comes from a time-seeded
// MockEnricher, which also serves as the fallback.
func New(opts ...Option) *Generator {
	g := &Generator{
		engine: templating.NewEngine(false),
		newID:  uuid.NewString,
		now:    time.Now,
		logger: zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.fallback == nil {
		g.fallback = enrichment.NewMockEnricher(0)
	}
	if g.enricher == nil {
		g.enricher = g.fallback
	}
	return g
}

// Generate runs the full pipeline for req. A non-nil error is returned only
// together with StatusFailed.
func (g *Generator) Generate(ctx context.Context, req Request) (*Result, error) {
	start := g.now()
	t := req.Template
	logger := logging.WithTemplateID(g.logger, t.ID)

	// 1. Resolve customizations
	res := customize.Resolve(t, req.Customizations)
	warnings := append([]Warning(nil), res.Warnings...)

	// 2. Render files, falling back to the un-customized template
	vars := res.Variables
	files, unresolved, err := g.render(t, vars)
	renderFellBack := false
	if renderErr := err; err != nil {
		if req.Customizations.IsEmpty() {
			logger.Error().Err(err).Msg("template render failed")
			return &Result{Status: StatusFailed, Warnings: warnings}, fmt.Errorf("render template %s: %w", t.ID, err)
		}
		logger.Warn().Err(err).Msg("customized render failed, using base template")
		// Assets and gameplay below must describe the files actually rendered.
		res = customize.Resolve(t, model.TemplateCustomizations{})
		vars = res.Variables
		files, unresolved, err = g.render(t, vars)
		if err != nil {
			logger.Error().Err(err).Msg("base template render failed")
			return &Result{Status: StatusFailed, Warnings: warnings}, fmt.Errorf("render template %s: %w", t.ID, err)
		}
		renderFellBack = true
		warnings = append(warnings, Warning{
			Kind:    customize.RenderFallback,
			Message: fmt.Sprintf("customizations could not be rendered (%v); project uses the base template", renderErr),
		})
	}
	for _, tok := range unresolved {
		warnings = append(warnings, Warning{
			Kind:    customize.UnresolvedToken,
			Message: fmt.Sprintf("token %s has no value", tok),
		})
	}

	title := projectTitle(req.Title, vars, t)
	if len(t.Structure.Dependencies) > 0 {
		pkg, err := packageJSON(t, title)
		if err != nil {
			return &Result{Status: StatusFailed, Warnings: warnings}, err
		}
		files[model.FilePackageJSON] = pkg
	}

	// 3. Enrich content
	enrichReq := enrichment.Request{Prompt: req.Prompt, GenreHint: req.GenreHint, Template: t}
	content, err := g.enricher.Enrich(ctx, enrichReq)
	enrichFellBack := false
	if err != nil {
		logger.Warn().Err(err).Msg("enrichment failed, using mock content")
		content, err = g.fallback.Enrich(ctx, enrichReq)
		if err != nil {
			return &Result{Status: StatusFailed, Warnings: warnings}, fmt.Errorf("enrich project: %w", err)
		}
		enrichFellBack = true
		warnings = append(warnings, Warning{
			Kind:    customize.EnrichmentFailed,
			Message: "content enrichment failed; placeholder content was used",
		})
	}

	// 4. QA
	qa := runQA(t, files, unresolved)

	// 5. Assemble
	assets := content.Assets
	assets.Art = res.ArtAssets
	gameplay := content.Gameplay
	gameplay.Mechanics = lo.Uniq(append(gameplay.Mechanics, res.Applied.Mechanics...))
	gameplay.Difficulty = lo.Ternary(res.Applied.Difficulty != "", res.Applied.Difficulty, "normal")

	project := &model.GeneratedProject{
		ID:              g.newID(),
		Title:           title,
		Description:     lo.Ternary(vars["GAME_DESCRIPTION"] != "", vars["GAME_DESCRIPTION"], t.Description),
		TemplateID:      t.ID,
		TemplateVersion: t.Version,
		Prompt:          req.Prompt,
		Genre:           content.Genre,
		Story:           content.Story,
		Assets:          assets,
		Gameplay:        gameplay,
		QA:              qa,
		Pipeline:        pipeline(enrichFellBack, renderFellBack, qa.Passed),
		Files:           files,
		Customizations:  req.Customizations,
		CreatedAt:       g.now().UTC(),
	}

	status := StatusSuccess
	if len(warnings) > 0 {
		status = StatusPartial
	}
	logger.Info().
		Str("project_id", project.ID).
		Str("status", string(status)).
		Int("warnings", len(warnings)).
		Bool("qa_passed", qa.Passed).
		Dur("duration", g.now().Sub(start)).
		Msg("project generated")

	return &Result{Project: project, Status: status, Warnings: warnings}, nil
}

func (g *Generator) render(t model.Template, vars map[string]string) (map[string]string, []string, error) {
	return g.engine.RenderFiles(t.Code.Files(), vars)
}

func projectTitle(requested string, vars map[string]string, t model.Template) string {
	switch {
	case strings.TrimSpace(requested) != "":
		return strings.TrimSpace(requested)
	case vars["GAME_TITLE"] != "":
		return vars["GAME_TITLE"]
	default:
		return t.Name
	}
}

func pipeline(enrichFellBack, renderFellBack, qaPassed bool) []model.PipelineStage {
	content := lo.Ternary(enrichFellBack, model.StageFallback, model.StageCompleted)
	qa := model.StageCompleted
	switch {
	case !qaPassed:
		qa = model.StageFailed
	case renderFellBack:
		qa = model.StageFallback
	}
	return []model.PipelineStage{
		{Name: model.StageStory, Status: content, Progress: 100},
		{Name: model.StageAssets, Status: content, Progress: 100},
		{Name: model.StageGameplay, Status: content, Progress: 100},
		{Name: model.StageQA, Status: qa, Progress: 100},
	}
}

var (
	nonAlphanumeric = regexp.MustCompile(`[^a-z0-9]+`)
	multiHyphen     = regexp.MustCompile(`-+`)
)

// Slug creates a URL and npm friendly name.
func Slug(name string) string {
	slug := strings.ToLower(name)
	slug = nonAlphanumeric.ReplaceAllString(slug, "-")
	slug = multiHyphen.ReplaceAllString(slug, "-")
	slug = strings.Trim(slug, "-")
	if slug == "" {
		return "game"
	}
	return slug
}

type packageManifest struct {
	Name         string            `json:"name"`
	Version      string            `json:"version"`
	Private      bool              `json:"private"`
	Description  string            `json:"description,omitempty"`
	Scripts      map[string]string `json:"scripts"`
	Dependencies map[string]string `json:"dependencies"`
}

func packageJSON(t model.Template, title string) (string, error) {
	manifest := packageManifest{
		Name:         Slug(title),
		Version:      "1.0.0",
		Private:      true,
		Description:  t.Description,
		Scripts:      map[string]string{"start": "npx http-server . -c-1"},
		Dependencies: t.Structure.Dependencies,
	}
	data, err := json.MarshalIndent(manifest, "", "  ")
	if err != nil {
		return "", fmt.Errorf("encode package.json: %w", err)
	}
	return string(data) + "\n", nil
}
