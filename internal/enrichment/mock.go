package enrichment

import (
	"context"
	"math/rand"
	"strings"
	"sync"
	"time"

	"github.com/samber/lo"

	"gameforge/internal/model"
)

type genreData struct {
	styles       []string
	settings     []string
	themes       []string
	plots        []string
	archetypes   []string
	environments []string
	items        []string
	objectives   []string
}

var mockData = map[string]genreData{
	GenreFantasy: {
		styles:       []string{"hand-painted storybook", "pixel-art high fantasy", "soft watercolor"},
		settings:     []string{"an enchanted forest", "a floating castle", "a dragon's mountain lair", "a village of wizards"},
		themes:       []string{"courage", "ancient magic", "friendship", "destiny"},
		plots:        []string{"An old prophecy stirs and only a reluctant hero can answer it.", "A stolen spellbook threatens to unravel the realm.", "The last dragon egg must be carried to safety."},
		archetypes:   []string{"wise mentor", "trickster sprite", "dark sorcerer", "loyal squire"},
		environments: []string{"mossy ruins", "crystal cavern", "wizard tower", "misty lake"},
		items:        []string{"rune stone", "healing potion", "enchanted sword", "phoenix feather"},
		objectives:   []string{"Recover the lost artifact", "Break the ancient curse"},
	},
	GenreSciFi: {
		styles:       []string{"neon vector", "clean low-poly", "retro-futurist"},
		settings:     []string{"a derelict space station", "a mining colony on an asteroid", "a city of robots", "a starship at the edge of the galaxy"},
		themes:       []string{"discovery", "survival", "artificial life", "isolation"},
		plots:        []string{"A distress signal leads to a ship that should not exist.", "The colony AI has started making its own decisions.", "Fuel is running low and the nearest star is far away."},
		archetypes:   []string{"rogue android", "veteran pilot", "corporate envoy", "alien diplomat"},
		environments: []string{"reactor core", "cargo bay", "alien jungle", "orbital dock"},
		items:        []string{"plasma cell", "data chip", "repair drone", "quantum key"},
		objectives:   []string{"Restore power to the station", "Reach the escape pod"},
	},
	GenreHorror: {
		styles:       []string{"grainy monochrome", "dim lantern-lit", "muted gothic"},
		settings:     []string{"an abandoned asylum", "a fog-bound village", "a house that rearranges itself", "a forest where the birds never sing"},
		themes:       []string{"dread", "the unknown", "guilt", "escape"},
		plots:        []string{"Something follows every step but is never seen.", "The lights fail one room at a time.", "A diary describes tomorrow's events."},
		archetypes:   []string{"silent caretaker", "lost child", "skeptical investigator", "the thing in the walls"},
		environments: []string{"flooded basement", "chapel ruins", "endless corridor", "attic"},
		items:        []string{"flickering flashlight", "rusted key", "torn photograph", "music box"},
		objectives:   []string{"Survive until dawn", "Find a way out"},
	},
	GenreAdventure: {
		styles:       []string{"bright cartoon", "chunky pixel-art", "flat vector"},
		settings:     []string{"a sunny archipelago", "a bustling market town", "a hidden jungle temple", "rolling green hills"},
		themes:       []string{"exploration", "teamwork", "treasure", "growing up"},
		plots:        []string{"A torn map points toward a legendary treasure.", "A friendly rivalry turns into a race around the world.", "A small town needs a hero for one very strange day."},
		archetypes:   []string{"cheerful sidekick", "grumpy shopkeeper", "rival explorer", "mysterious stranger"},
		environments: []string{"rope bridge", "harbor", "waterfall cave", "market square"},
		items:        []string{"treasure map", "compass", "grappling hook", "golden coin"},
		objectives:   []string{"Collect every treasure", "Set a new high score"},
	},
}

// MockEnricher builds content by picking from fixed per-genre lists. It does
// not call any model.
type MockEnricher struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewMockEnricher returns a mock enricher seeded with seed. A zero seed uses
// the current time.
func NewMockEnricher(seed int64) *MockEnricher {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return NewMockEnricherWithRand(rand.New(rand.NewSource(seed)))
}

// NewMockEnricherWithRand returns a mock enricher drawing from rng.
func NewMockEnricherWithRand(rng *rand.Rand) *MockEnricher {
	return &MockEnricher{rng: rng}
}

// Enrich implements Enricher.
func (m *MockEnricher) Enrich(ctx context.Context, req Request) (*model.Content, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	genre := ResolveGenre(req)
	data, ok := mockData[genre]
	if !ok {
		data = mockData[GenreAdventure]
	}
	tmpl := req.Template
	prebuilt := tmpl.Prebuilt

	m.mu.Lock()
	defer m.mu.Unlock()

	story := model.Story{
		Title:   lo.Ternary(prebuilt.Story.Title != "", prebuilt.Story.Title, tmpl.Name),
		Genre:   genre,
		Setting: m.pick(data.settings),
		Theme:   m.pick(data.themes),
		Plot:    m.pick(data.plots),
	}
	if prebuilt.Story.Premise != "" {
		story.Plot = prebuilt.Story.Premise + " " + story.Plot
	}
	for _, name := range prebuilt.Story.Characters {
		story.Characters = append(story.Characters, model.Character{
			Name:        name,
			Role:        "protagonist",
			Description: name + " in " + story.Setting + ".",
		})
	}
	archetype := m.pick(data.archetypes)
	story.Characters = append(story.Characters, model.Character{
		Name:        capitalize(archetype),
		Role:        archetype,
		Description: "Met along the way in " + story.Setting + ".",
	})

	assets := model.Assets{
		Style: m.pick(data.styles),
		Characters: lo.Map(story.Characters, func(c model.Character, _ int) model.AssetSpec {
			return model.AssetSpec{Name: c.Name, Type: "sprite", Description: c.Description}
		}),
		Environments: lo.Map(m.pickN(data.environments, 2), func(name string, _ int) model.AssetSpec {
			return model.AssetSpec{Name: name, Type: "background", Description: capitalize(name) + " in " + story.Setting + "."}
		}),
		Items: lo.Map(m.pickN(data.items, 2), func(name string, _ int) model.AssetSpec {
			return model.AssetSpec{Name: name, Type: "item", Description: "A collectible " + name + "."}
		}),
	}

	gameplay := model.Gameplay{
		Mechanics:   append([]string(nil), tmpl.Structure.Mechanics...),
		Objectives:  append(append([]string(nil), prebuilt.Gameplay.Objectives...), m.pick(data.objectives)),
		Controls:    append([]string(nil), prebuilt.Gameplay.Controls...),
		Progression: prebuilt.Gameplay.Progression,
	}

	return &model.Content{
		Source:   SourceMock,
		Genre:    genre,
		Story:    story,
		Assets:   assets,
		Gameplay: gameplay,
	}, nil
}

func (m *MockEnricher) pick(options []string) string {
	if len(options) == 0 {
		return ""
	}
	return options[m.rng.Intn(len(options))]
}

// pickN returns up to n distinct entries in random order.
func (m *MockEnricher) pickN(options []string, n int) []string {
	if n > len(options) {
		n = len(options)
	}
	out := make([]string, 0, n)
	for _, i := range m.rng.Perm(len(options))[:n] {
		out = append(out, options[i])
	}
	return out
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
