// Package catalog holds the registry of game templates projects are generated from.
package catalog

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/rs/zerolog"
	"github.com/samber/lo"
	"gopkg.in/yaml.v3"

	"gameforge/internal/model"
	"gameforge/internal/templating"
)

var (
	// ErrDuplicateTemplate is returned when two templates share an id.
	ErrDuplicateTemplate = errors.New("duplicate template id")
	// ErrInvalidTemplate is returned for templates without an id or with
	// malformed code.
	ErrInvalidTemplate = errors.New("invalid template")
)

// Filters narrow a Search. Empty fields match everything; Tags must all be present.
type Filters struct {
	Category   string
	Complexity string
	Tags       []string
	Framework  string
}

// Catalog is an immutable, ordered set of templates indexed by id.
// It is safe for concurrent use once built.
type Catalog struct {
	templates []model.Template
	index     map[string]int
	logger    zerolog.Logger
}

// New builds a catalog from templates, keeping their order.
func New(templates ...model.Template) (*Catalog, error) {
	c := &Catalog{
		templates: make([]model.Template, 0, len(templates)),
		index:     make(map[string]int, len(templates)),
		logger:    zerolog.Nop(),
	}
	for _, t := range templates {
		if err := validate(t); err != nil {
			return nil, err
		}
		if _, exists := c.index[t.ID]; exists {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateTemplate, t.ID)
		}
		c.index[t.ID] = len(c.templates)
		c.templates = append(c.templates, t.Clone())
	}
	return c, nil
}

// Builtin returns fresh copies of the built-in templates in display order.
func Builtin() []model.Template {
	return []model.Template{
		clickerTemplate(),
		snakeTemplate(),
		flappyTemplate(),
		platformerTemplate(),
	}
}

// Default returns a catalog of the built-in templates.
func Default() *Catalog {
	c, err := New(Builtin()...)
	if err != nil {
		panic(fmt.Sprintf("catalog: invalid built-in templates: %v", err))
	}
	return c
}

// LoadDir returns a catalog of the built-in templates followed by every
// *.yaml / *.yml template found directly in dir, in file name order.
func LoadDir(dir string) (*Catalog, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog directory %s: %w", dir, err)
	}

	templates := Builtin()
	for _, entry := range entries {
		ext := strings.ToLower(filepath.Ext(entry.Name()))
		if entry.IsDir() || (ext != ".yaml" && ext != ".yml") {
			continue
		}
		path := filepath.Join(dir, entry.Name())
		t, err := loadFile(path)
		if err != nil {
			return nil, err
		}
		templates = append(templates, t)
	}
	return New(templates...)
}

func loadFile(path string) (model.Template, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return model.Template{}, fmt.Errorf("failed to read template file %s: %w", path, err)
	}
	var t model.Template
	if err := yaml.Unmarshal(data, &t); err != nil {
		return model.Template{}, fmt.Errorf("failed to parse template file %s: %w", path, err)
	}
	return t, nil
}

func validate(t model.Template) error {
	if strings.TrimSpace(t.ID) == "" {
		return fmt.Errorf("%w: empty id (name %q)", ErrInvalidTemplate, t.Name)
	}
	for name, src := range t.Code.Files() {
		if _, err := templating.Tokens(src); err != nil {
			return fmt.Errorf("%w: %s: %s: %v", ErrInvalidTemplate, t.ID, name, err)
		}
	}
	return nil
}

// WithLogger sets the logger used to report lookup misses and returns c.
func (c *Catalog) WithLogger(logger zerolog.Logger) *Catalog {
	c.logger = logger
	return c
}

// Len returns the number of templates.
func (c *Catalog) Len() int {
	return len(c.templates)
}

// Templates returns every template in catalog order.
func (c *Catalog) Templates() []model.Template {
	return lo.Map(c.templates, func(t model.Template, _ int) model.Template {
		return t.Clone()
	})
}

// ByID looks up a template. A miss is reported through ok, never a panic.
func (c *Catalog) ByID(id string) (model.Template, bool) {
	i, ok := c.index[id]
	if !ok {
		c.logger.Warn().Str("template_id", id).Msg("template not found in catalog")
		return model.Template{}, false
	}
	return c.templates[i].Clone(), true
}

// ByCategory returns the templates whose category equals category, ignoring case.
func (c *Catalog) ByCategory(category string) []model.Template {
	return c.filter(func(t model.Template) bool {
		return strings.EqualFold(t.Category, category)
	})
}

// ByTag returns the templates carrying tag, ignoring case.
func (c *Catalog) ByTag(tag string) []model.Template {
	return c.filter(func(t model.Template) bool {
		return hasTag(t, tag)
	})
}

// Search matches query as a case-insensitive substring of the name,
// description or any tag, then applies filters. An empty query matches all.
func (c *Catalog) Search(query string, f Filters) []model.Template {
	q := strings.ToLower(strings.TrimSpace(query))
	return c.filter(func(t model.Template) bool {
		if q != "" && !matchesQuery(t, q) {
			return false
		}
		if f.Category != "" && !strings.EqualFold(t.Category, f.Category) {
			return false
		}
		if f.Complexity != "" && !strings.EqualFold(t.Complexity, f.Complexity) {
			return false
		}
		if f.Framework != "" && !strings.EqualFold(t.Structure.Framework, f.Framework) {
			return false
		}
		return lo.EveryBy(f.Tags, func(tag string) bool { return hasTag(t, tag) })
	})
}

// Categories returns the distinct categories, sorted.
func (c *Catalog) Categories() []string {
	cats := lo.Uniq(lo.Map(c.templates, func(t model.Template, _ int) string {
		return t.Category
	}))
	sort.Strings(cats)
	return cats
}

// Tags returns the distinct tags across all templates, sorted.
func (c *Catalog) Tags() []string {
	tags := lo.Uniq(lo.FlatMap(c.templates, func(t model.Template, _ int) []string {
		return t.Tags
	}))
	sort.Strings(tags)
	return tags
}

func (c *Catalog) filter(keep func(model.Template) bool) []model.Template {
	out := make([]model.Template, 0)
	for _, t := range c.templates {
		if keep(t) {
			out = append(out, t.Clone())
		}
	}
	return out
}

func matchesQuery(t model.Template, q string) bool {
	if strings.Contains(strings.ToLower(t.Name), q) || strings.Contains(strings.ToLower(t.Description), q) {
		return true
	}
	return lo.ContainsBy(t.Tags, func(tag string) bool {
		return strings.Contains(strings.ToLower(tag), q)
	})
}

func hasTag(t model.Template, tag string) bool {
	return lo.ContainsBy(t.Tags, func(have string) bool {
		return strings.EqualFold(have, tag)
	})
}
