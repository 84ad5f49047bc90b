package catalog

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gameforge/internal/model"
	"gameforge/internal/templating"
)

func ids(templates []model.Template) []string {
	return lo.Map(templates, func(t model.Template, _ int) string { return t.ID })
}

func TestDefault_Order(t *testing.T) {
	c := Default()
	assert.Equal(t, []string{"cookie-clicker", "snake", "flappy-bird", "platformer"}, ids(c.Templates()))
	assert.Equal(t, 4, c.Len())
}

func TestBuiltin_DefaultRenderHasNoTokensLeft(t *testing.T) {
	for _, tmpl := range Default().Templates() {
		t.Run(tmpl.ID, func(t *testing.T) {
			out, unresolved, err := templating.NewEngine(true).RenderFiles(tmpl.Code.Files(), tmpl.Variables)
			require.NoError(t, err)
			assert.Empty(t, unresolved)
			for name, content := range out {
				assert.NotEmpty(t, content, name)
				assert.NotContains(t, content, "{{", name)
			}
		})
	}
}

func TestBuiltin_EveryTokenHasADefault(t *testing.T) {
	for _, tmpl := range Default().Templates() {
		t.Run(tmpl.ID, func(t *testing.T) {
			for name, src := range tmpl.Code.Files() {
				tokens, err := templating.Tokens(src)
				require.NoError(t, err, name)
				for _, tok := range tokens {
					assert.Contains(t, tmpl.Variables, tok, "%s references %s", name, tok)
				}
			}
		})
	}
}

func TestBuiltin_OptionsAreWellFormed(t *testing.T) {
	for _, tmpl := range Default().Templates() {
		t.Run(tmpl.ID, func(t *testing.T) {
			opts := tmpl.Options
			assert.NotEmpty(t, opts.Themes)
			assert.NotEmpty(t, opts.Difficulties)
			assert.NotEmpty(t, opts.Mechanics)
			assert.NotEmpty(t, opts.Visuals)

			for _, m := range opts.Mechanics {
				require.NotEmpty(t, m.Flag, m.ID)
				assert.Equal(t, "false", tmpl.Variables[m.Flag], "mechanic %s flag should default to false", m.ID)
			}
			for _, d := range opts.Difficulties {
				for key := range d.ParameterAdjustments {
					assert.Contains(t, tmpl.Variables, key, "difficulty %s adjusts unknown %s", d.ID, key)
				}
			}
		})
	}
}

func TestBuiltin_AllOptionsEnabledStillRenders(t *testing.T) {
	for _, tmpl := range Default().Templates() {
		t.Run(tmpl.ID, func(t *testing.T) {
			vars := lo.Assign(tmpl.Variables)
			for _, m := range tmpl.Options.Mechanics {
				vars[m.Flag] = "true"
			}
			for _, v := range tmpl.Options.Visuals {
				vars = lo.Assign(vars, v.Variables)
			}
			out, _, err := templating.NewEngine(true).RenderFiles(tmpl.Code.Files(), vars)
			require.NoError(t, err)
			assert.NotContains(t, out[model.FileMain], "{{")
		})
	}
}

func TestByID_ReturnsDeepCopy(t *testing.T) {
	c := Default()
	first := c.Templates()[0]

	got, ok := c.ByID(first.ID)
	require.True(t, ok)
	assert.Equal(t, first, got)

	got.Variables["GAME_TITLE"] = "mutated"
	got.Options.Themes[0].ColorScheme["PRIMARY_COLOR"] = "#000000"
	got.Tags[0] = "mutated"

	again, _ := c.ByID(first.ID)
	assert.Equal(t, first, again)
}

func TestByID_Miss(t *testing.T) {
	got, ok := Default().ByID("tetris")
	assert.False(t, ok)
	assert.Empty(t, got.ID)
}

func TestNew_RejectsBadTemplates(t *testing.T) {
	_, err := New(snakeTemplate(), snakeTemplate())
	assert.ErrorIs(t, err, ErrDuplicateTemplate)

	_, err = New(model.Template{Name: "no id"})
	assert.ErrorIs(t, err, ErrInvalidTemplate)

	broken := snakeTemplate()
	broken.ID = "broken"
	broken.Code.Main = "{{#ENABLE_OBSTACLES}} never closed"
	_, err = New(broken)
	assert.ErrorIs(t, err, ErrInvalidTemplate)
}

func TestByCategoryAndTag(t *testing.T) {
	c := Default()
	assert.Equal(t, []string{"snake", "flappy-bird"}, ids(c.ByCategory("ARCADE")))
	assert.Equal(t, []string{"cookie-clicker", "flappy-bird"}, ids(c.ByTag("one-button")))
	assert.Empty(t, c.ByCategory("puzzle"))
}

func TestSearch(t *testing.T) {
	c := Default()
	tests := []struct {
		name    string
		query   string
		filters Filters
		want    []string
	}{
		{"empty matches all", "", Filters{}, []string{"cookie-clicker", "snake", "flappy-bird", "platformer"}},
		{"name substring", "SNAK", Filters{}, []string{"snake"}},
		{"tag substring", "arcade", Filters{}, []string{"snake", "flappy-bird"}},
		{"framework filter", "", Filters{Framework: "phaser"}, []string{"platformer"}},
		{"complexity filter", "", Filters{Complexity: "intermediate"}, []string{"platformer"}},
		{"all tags required", "", Filters{Tags: []string{"arcade", "grid"}}, []string{"snake"}},
		{"query and category", "click", Filters{Category: "idle"}, []string{"cookie-clicker"}},
		{"no match", "racing", Filters{}, []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ids(c.Search(tt.query, tt.filters)))
		})
	}
}

func TestCategoriesAndTags(t *testing.T) {
	c := Default()
	assert.Equal(t, []string{"arcade", "idle", "platformer"}, c.Categories())

	tags := c.Tags()
	assert.True(t, lo.IsSorted(tags))
	assert.Contains(t, tags, "phaser")
	assert.Len(t, tags, len(lo.Uniq(tags)))
}

const breakoutYAML = `id: breakout
name: Breakout
description: Bounce a ball to break bricks.
category: arcade
complexity: beginner
tags: [arcade, paddle]
version: 0.1.0
structure:
  framework: vanilla
variables:
  GAME_TITLE: Breakout
code:
  html: "<title>{{GAME_TITLE}}</title><script src=\"game.js\"></script><link rel=\"stylesheet\" href=\"styles.css\">"
  main: "console.log('{{GAME_TITLE}}');"
  css: "body { margin: 0; }"
  config: "const CONFIG = {};"
`

func TestLoadDir(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "breakout.yaml"), []byte(breakoutYAML), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("ignored"), 0644))

	c, err := LoadDir(dir)
	require.NoError(t, err)
	assert.Equal(t, 5, c.Len())

	got, ok := c.ByID("breakout")
	require.True(t, ok)
	assert.Equal(t, "Breakout", got.Name)
	assert.Equal(t, []string{"arcade", "paddle"}, got.Tags)
	assert.True(t, strings.HasPrefix(got.Code.HTML, "<title>{{GAME_TITLE}}"))
}

func TestLoadDir_Errors(t *testing.T) {
	_, err := LoadDir(filepath.Join(t.TempDir(), "missing"))
	assert.Error(t, err)

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "snake.yml"), []byte("id: snake\nname: Another Snake\n"), 0644))
	_, err = LoadDir(dir)
	assert.ErrorIs(t, err, ErrDuplicateTemplate)

	dir = t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "bad.yaml"), []byte("id: [unclosed"), 0644))
	_, err = LoadDir(dir)
	assert.Error(t, err)
}
