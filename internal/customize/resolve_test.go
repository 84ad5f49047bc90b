package customize

import (
	"testing"

	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gameforge/internal/catalog"
	"gameforge/internal/model"
)

func testTemplate() model.Template {
	return model.Template{
		ID: "test-game",
		Variables: map[string]string{
			"TITLE":        "Base",
			"COLOR":        "#000000",
			"SPEED":        "1",
			"ENABLE_BOOST": "false",
		},
		Prebuilt: model.PrebuiltContent{
			Assets: model.PrebuiltAssets{Art: []string{"hero", "coin"}},
		},
		Options: model.CustomizationOptions{
			Themes: []model.ThemeOption{{
				ID:             "night",
				AssetOverrides: map[string]string{"coin": "moon-coin", "TITLE": "from overrides"},
				ColorScheme:    map[string]string{"COLOR": "#112233", "TITLE": "from colors"},
				Variables:      map[string]string{"TITLE": "Night"},
			}},
			Difficulties: []model.DifficultyOption{{
				ID:                   "hard",
				ParameterAdjustments: map[string]string{"SPEED": "3"},
			}},
			Mechanics: []model.MechanicOption{
				{ID: "boost", Flag: "ENABLE_BOOST", RequiredAssets: []string{"flame", "hero"}, Variables: map[string]string{"SPEED": "4"}},
				{ID: "shield", Flag: "ENABLE_SHIELD", RequiredAssets: []string{"shield", "flame"}},
			},
			Visuals: []model.VisualOption{
				{ID: "fast-fx", Variables: map[string]string{"SPEED": "5"}},
			},
		},
	}
}

func TestResolve_NoCustomizations(t *testing.T) {
	tmpl := testTemplate()
	res := Resolve(tmpl, model.TemplateCustomizations{})

	assert.Equal(t, tmpl.Variables, res.Variables)
	assert.Equal(t, []string{"hero", "coin"}, res.ArtAssets)
	assert.Empty(t, res.Warnings)
	assert.Empty(t, res.Flags)

	res.Variables["TITLE"] = "changed"
	assert.Equal(t, "Base", tmpl.Variables["TITLE"], "template variables must not be mutated")
}

func TestResolve_Priority(t *testing.T) {
	tmpl := testTemplate()

	res := Resolve(tmpl, model.TemplateCustomizations{Theme: "night", Difficulty: "hard"})
	assert.Equal(t, "Night", res.Variables["TITLE"], "theme variables beat colors and overrides")
	assert.Equal(t, "#112233", res.Variables["COLOR"])
	assert.Equal(t, "3", res.Variables["SPEED"])
	assert.Equal(t, []string{"hero", "moon-coin"}, res.ArtAssets)

	res = Resolve(tmpl, model.TemplateCustomizations{Difficulty: "hard", Mechanics: []string{"boost"}})
	assert.Equal(t, "4", res.Variables["SPEED"], "mechanics beat difficulty")

	res = Resolve(tmpl, model.TemplateCustomizations{Difficulty: "hard", Mechanics: []string{"boost"}, Visuals: []string{"fast-fx"}})
	assert.Equal(t, "5", res.Variables["SPEED"], "visuals beat mechanics")

	res = Resolve(tmpl, model.TemplateCustomizations{
		Theme:     "night",
		Visuals:   []string{"fast-fx"},
		Variables: map[string]string{"TITLE": "Mine", "SPEED": "9"},
	})
	assert.Equal(t, "Mine", res.Variables["TITLE"], "caller variables always win")
	assert.Equal(t, "9", res.Variables["SPEED"])
}

func TestResolve_Mechanics(t *testing.T) {
	res := Resolve(testTemplate(), model.TemplateCustomizations{Mechanics: []string{"boost", "shield", "boost"}})

	assert.Equal(t, "true", res.Variables["ENABLE_BOOST"])
	assert.Equal(t, "true", res.Variables["ENABLE_SHIELD"])
	assert.Equal(t, []string{"ENABLE_BOOST", "ENABLE_SHIELD"}, res.Flags)
	assert.Equal(t, []string{"hero", "coin", "flame", "shield"}, res.ArtAssets)
	assert.Equal(t, []string{"boost", "shield"}, res.Applied.Mechanics)
}

func TestResolve_UnknownIDsAreWarnings(t *testing.T) {
	tmpl := testTemplate()
	res := Resolve(tmpl, model.TemplateCustomizations{
		Theme:      "ocean",
		Difficulty: "nightmare",
		Mechanics:  []string{"boost", "teleport"},
		Visuals:    []string{"bloom"},
	})

	require.Len(t, res.Warnings, 4)
	for _, w := range res.Warnings {
		assert.Equal(t, LookupMiss, w.Kind)
	}
	assert.Contains(t, res.Warnings[0].Message, `"ocean"`)
	assert.Equal(t, "#000000", res.Variables["COLOR"])
	assert.Equal(t, "true", res.Variables["ENABLE_BOOST"], "known ids still apply")
	assert.Empty(t, res.Applied.Theme)
	assert.Equal(t, []string{"boost"}, res.Applied.Mechanics)
}

func TestApplyTheme_Idempotent(t *testing.T) {
	tmpl := testTemplate()
	theme := tmpl.Options.Themes[0]

	once := map[string]string{"TITLE": "Base", "COLOR": "#000000"}
	ApplyTheme(once, theme)

	twice := map[string]string{"TITLE": "Base", "COLOR": "#000000"}
	ApplyTheme(twice, theme)
	ApplyTheme(twice, theme)

	assert.Equal(t, once, twice)
}

func TestApplyDifficulty(t *testing.T) {
	vars := map[string]string{"SPEED": "1", "OTHER": "x"}
	ApplyDifficulty(vars, testTemplate().Options.Difficulties[0])
	assert.Equal(t, map[string]string{"SPEED": "3", "OTHER": "x"}, vars)
}

func TestApplyTheme_IdempotentForCatalogThemes(t *testing.T) {
	for _, tmpl := range catalog.Default().Templates() {
		for _, theme := range tmpl.Options.Themes {
			t.Run(tmpl.ID+"/"+theme.ID, func(t *testing.T) {
				res := Resolve(tmpl, model.TemplateCustomizations{Theme: theme.ID})
				require.Empty(t, res.Warnings)

				again := lo.Assign(res.Variables)
				ApplyTheme(again, theme)
				assert.Equal(t, res.Variables, again)

				assert.Equal(t, res, Resolve(tmpl, model.TemplateCustomizations{Theme: theme.ID}))
			})
		}
	}
}
