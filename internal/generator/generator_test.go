package generator

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"gameforge/internal/catalog"
	"gameforge/internal/customize"
	"gameforge/internal/enrichment"
	"gameforge/internal/model"
)

var fixedTime = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

func newTestGenerator(opts ...Option) *Generator {
	base := []Option{
		WithIDFunc(func() string { return "proj-1" }),
		WithClock(func() time.Time { return fixedTime }),
		WithEnricher(enrichment.NewMockEnricher(1)),
	}
	return New(append(base, opts...)...)
}

func builtin(t *testing.T, id string) model.Template {
	t.Helper()
	tmpl, ok := catalog.Default().ByID(id)
	require.True(t, ok, "template %s", id)
	return tmpl
}

func kinds(ws []Warning) []customize.WarningKind {
	out := make([]customize.WarningKind, 0, len(ws))
	for _, w := range ws {
		out = append(out, w.Kind)
	}
	return out
}

// tinyTemplate has a mechanic whose block references a token with no default.
func tinyTemplate() model.Template {
	return model.Template{
		ID:      "tiny",
		Name:    "Tiny",
		Version: "0.0.1",
		Variables: map[string]string{
			"GAME_TITLE":   "Tiny Game",
			"ENABLE_BOOST": "false",
		},
		Options: model.CustomizationOptions{
			Mechanics: []model.MechanicOption{{ID: "boost", Flag: "ENABLE_BOOST"}},
		},
		Code: model.CodeTemplates{
			HTML:   `<link rel="stylesheet" href="styles.css"><script src="config.js"></script><script src="game.js"></script><h1>{{GAME_TITLE}}</h1>`,
			Main:   "const boost = {{#ENABLE_BOOST}}{{BOOST_POWER}}{{/ENABLE_BOOST}}{{^ENABLE_BOOST}}0{{/ENABLE_BOOST}};",
			CSS:    "body { margin: 0; }",
			Config: "const CONFIG = {};",
		},
	}
}

func TestGenerate_ClickerSpaceMiningHard(t *testing.T) {
	g := newTestGenerator()
	res, err := g.Generate(context.Background(), Request{
		Template: builtin(t, "cookie-clicker"),
		Customizations: model.TemplateCustomizations{
			Theme:      "space-mining",
			Difficulty: "hard",
		},
		Prompt: "mining asteroids in space",
	})
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	if res.Status != StatusSuccess {
		t.Fatalf("Status mismatch: got %q, want %q (warnings: %v)", res.Status, StatusSuccess, res.Warnings)
	}

	p := res.Project
	main := p.Files[model.FileMain]
	assert.Contains(t, main, "Minerals")
	assert.Contains(t, main, "const COST_MULTIPLIER = 1.25;")
	assert.NotContains(t, main, "{{")

	assert.Equal(t, "proj-1", p.ID)
	assert.Equal(t, fixedTime, p.CreatedAt)
	assert.Equal(t, "Space Miner", p.Title)
	assert.Equal(t, "cookie-clicker", p.TemplateID)
	assert.Equal(t, "1.2.0", p.TemplateVersion)
	assert.Equal(t, enrichment.GenreSciFi, p.Genre)
	assert.Equal(t, "hard", p.Gameplay.Difficulty)
	assert.True(t, p.QA.Passed)

	require.Len(t, p.Pipeline, 4)
	for i, name := range []string{model.StageStory, model.StageAssets, model.StageGameplay, model.StageQA} {
		assert.Equal(t, name, p.Pipeline[i].Name)
		assert.Equal(t, model.StageCompleted, p.Pipeline[i].Status)
		assert.Equal(t, 100, p.Pipeline[i].Progress)
	}
}

func TestGenerate_EmptyCustomizations(t *testing.T) {
	g := newTestGenerator()
	for _, tmpl := range catalog.Default().Templates() {
		t.Run(tmpl.ID, func(t *testing.T) {
			res, err := g.Generate(context.Background(), Request{Template: tmpl})
			require.NoError(t, err)
			assert.Equal(t, StatusSuccess, res.Status)
			assert.Empty(t, res.Warnings)

			for _, name := range []string{model.FileHTML, model.FileMain, model.FileCSS, model.FileConfig} {
				assert.NotEmpty(t, res.Project.Files[name], name)
			}
			for name, content := range res.Project.Files {
				assert.NotContains(t, content, "{{", name)
			}
			assert.True(t, res.Project.QA.Passed, "%+v", res.Project.QA.Checks)
			assert.Equal(t, "normal", res.Project.Gameplay.Difficulty)
			assert.Equal(t, tmpl.Prebuilt.Assets.Art, res.Project.Assets.Art)
		})
	}
}

func TestGenerate_PackageJSONOnlyWithDependencies(t *testing.T) {
	g := newTestGenerator()

	res, err := g.Generate(context.Background(), Request{Template: builtin(t, "platformer"), Title: "My Gem Game!"})
	require.NoError(t, err)
	raw, ok := res.Project.Files[model.FilePackageJSON]
	require.True(t, ok)

	var manifest packageManifest
	require.NoError(t, json.Unmarshal([]byte(raw), &manifest))
	assert.Equal(t, "my-gem-game", manifest.Name)
	assert.Contains(t, manifest.Dependencies, "phaser")
	assert.Equal(t, "My Gem Game!", res.Project.Title)

	res, err = g.Generate(context.Background(), Request{Template: builtin(t, "snake")})
	require.NoError(t, err)
	assert.NotContains(t, res.Project.Files, model.FilePackageJSON)
}

func TestGenerate_MechanicsAndVisuals(t *testing.T) {
	g := newTestGenerator()
	res, err := g.Generate(context.Background(), Request{
		Template: builtin(t, "snake"),
		Customizations: model.TemplateCustomizations{
			Mechanics: []string{"obstacles", "high-score"},
			Visuals:   []string{"grid-lines"},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, StatusSuccess, res.Status)

	files := res.Project.Files
	assert.Contains(t, files[model.FileMain], "obstacles.push(freeCell())")
	assert.NotContains(t, files[model.FileMain], "bonus = { cell: freeCell()")
	assert.Contains(t, files[model.FileHTML], `id="best"`)
	assert.Contains(t, files[model.FileConfig], "showGrid: true,")
	assert.Contains(t, res.Project.Assets.Art, "rock")
	assert.Contains(t, res.Project.Gameplay.Mechanics, "obstacles")
}

func TestGenerate_UnknownIDsArePartial(t *testing.T) {
	g := newTestGenerator()
	res, err := g.Generate(context.Background(), Request{
		Template: builtin(t, "flappy-bird"),
		Customizations: model.TemplateCustomizations{
			Theme:      "volcano",
			Difficulty: "impossible",
			Mechanics:  []string{"lasers"},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, StatusPartial, res.Status)
	assert.Equal(t, []customize.WarningKind{customize.LookupMiss, customize.LookupMiss, customize.LookupMiss}, kinds(res.Warnings))

	for _, name := range []string{model.FileHTML, model.FileMain, model.FileCSS, model.FileConfig} {
		assert.NotEmpty(t, res.Project.Files[name], name)
	}
	assert.True(t, res.Project.QA.Passed)
}

func TestGenerate_StrictRenderFallsBackToBaseTemplate(t *testing.T) {
	tmpl := tinyTemplate()
	tmpl.Options.Mechanics[0].RequiredAssets = []string{"boost-trail"}
	tmpl.Options.Difficulties = []model.DifficultyOption{
		{ID: "hard", ParameterAdjustments: map[string]string{"SPEED": "2"}},
	}

	g := newTestGenerator(WithStrict(true))
	res, err := g.Generate(context.Background(), Request{
		Template:       tmpl,
		Customizations: model.TemplateCustomizations{Difficulty: "hard", Mechanics: []string{"boost"}},
	})
	require.NoError(t, err)

	assert.Equal(t, StatusPartial, res.Status)
	assert.Equal(t, []customize.WarningKind{customize.RenderFallback}, kinds(res.Warnings))
	assert.Contains(t, res.Warnings[0].Message, "BOOST_POWER")
	assert.Equal(t, "const boost = 0;", res.Project.Files[model.FileMain])
	assert.Equal(t, model.StageFallback, res.Project.Pipeline[3].Status)

	// The record describes the base template that was rendered
	assert.NotContains(t, res.Project.Assets.Art, "boost-trail")
	assert.NotContains(t, res.Project.Gameplay.Mechanics, "boost")
	assert.Equal(t, "normal", res.Project.Gameplay.Difficulty)
	assert.Equal(t, []string{"boost"}, res.Project.Customizations.Mechanics, "the request is still recorded")
}

func TestGenerate_UnresolvedTokensFailQA(t *testing.T) {
	g := newTestGenerator()
	res, err := g.Generate(context.Background(), Request{
		Template:       tinyTemplate(),
		Customizations: model.TemplateCustomizations{Mechanics: []string{"boost"}},
	})
	require.NoError(t, err)

	assert.Equal(t, StatusPartial, res.Status)
	assert.Equal(t, []customize.WarningKind{customize.UnresolvedToken}, kinds(res.Warnings))
	assert.Equal(t, "const boost = {{BOOST_POWER}};", res.Project.Files[model.FileMain])
	assert.False(t, res.Project.QA.Passed)
	assert.Equal(t, model.StageFailed, res.Project.Pipeline[3].Status)
}

func TestGenerate_BrokenTemplateFails(t *testing.T) {
	tmpl := tinyTemplate()
	tmpl.Code.CSS = "{{#ENABLE_BOOST}} never closed"

	res, err := newTestGenerator().Generate(context.Background(), Request{Template: tmpl})
	require.Error(t, err)
	assert.Equal(t, StatusFailed, res.Status)
	assert.Nil(t, res.Project)
}

type failingEnricher struct{ mock.Mock }

func (f *failingEnricher) Enrich(ctx context.Context, req enrichment.Request) (*model.Content, error) {
	args := f.Called(ctx, req)
	content, _ := args.Get(0).(*model.Content)
	return content, args.Error(1)
}

func TestGenerate_EnrichmentFallsBackToMock(t *testing.T) {
	primary := &failingEnricher{}
	primary.On("Enrich", mock.Anything, mock.AnythingOfType("enrichment.Request")).
		Return(nil, errors.New("provider unavailable")).Once()

	g := newTestGenerator(WithEnricher(primary), WithFallbackEnricher(enrichment.NewMockEnricher(3)))
	res, err := g.Generate(context.Background(), Request{Template: builtin(t, "snake"), Prompt: "a scary snake"})
	require.NoError(t, err)
	primary.AssertExpectations(t)

	assert.Equal(t, StatusPartial, res.Status)
	assert.Equal(t, []customize.WarningKind{customize.EnrichmentFailed}, kinds(res.Warnings))
	assert.Equal(t, enrichment.GenreHorror, res.Project.Genre)
	assert.Equal(t, model.StageFallback, res.Project.Pipeline[0].Status)
	assert.Equal(t, model.StageCompleted, res.Project.Pipeline[3].Status)
}

func TestGenerate_ConcurrentCalls(t *testing.T) {
	g := New(WithEnricher(enrichment.NewMockEnricher(5)))
	tmpl := builtin(t, "cookie-clicker")

	errs := make(chan error, 8)
	for i := 0; i < 8; i++ {
		go func() {
			_, err := g.Generate(context.Background(), Request{Template: tmpl, Customizations: model.TemplateCustomizations{Theme: "enchanted-forest"}})
			errs <- err
		}()
	}
	for i := 0; i < 8; i++ {
		assert.NoError(t, <-errs)
	}
}

func TestSlug(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Space Miner", "space-miner"},
		{"  My -- Game!! ", "my-game"},
		{"Snake 2", "snake-2"},
		{"!!!", "game"},
	}
	for _, tt := range tests {
		if got := Slug(tt.in); got != tt.want {
			t.Errorf("Slug(%q): got %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestRunQA_ReportsMissingFiles(t *testing.T) {
	qa := runQA(tinyTemplate(), map[string]string{model.FileHTML: "<p>no links</p>"}, nil)
	if qa.Passed {
		t.Fatal("expected QA to fail")
	}
	byName := map[string]model.QACheck{}
	for _, c := range qa.Checks {
		byName[c.Name] = c
	}
	if byName[CheckRequiredFiles].Passed || !strings.Contains(byName[CheckRequiredFiles].Detail, model.FileMain) {
		t.Errorf("required files check: got %+v", byName[CheckRequiredFiles])
	}
	if byName[CheckScriptLinked].Passed {
		t.Errorf("script link check should fail")
	}
	if !byName[CheckTokensResolved].Passed {
		t.Errorf("tokens check should pass")
	}
}
