// Package customize merges a user's option selection into a template's
// token map.
package customize

import (
	"fmt"

	"github.com/samber/lo"

	"gameforge/internal/model"
)

// WarningKind classifies a non-fatal problem found during generation.
type WarningKind string

const (
	LookupMiss       WarningKind = "lookup_miss"
	UnresolvedToken  WarningKind = "unresolved_token"
	RenderFallback   WarningKind = "render_fallback"
	EnrichmentFailed WarningKind = "enrichment_failed"
)

// Warning is a non-fatal issue reported back to the caller.
type Warning struct {
	Kind    WarningKind `json:"kind"`
	Message string      `json:"message"`
}

func (w Warning) String() string {
	return string(w.Kind) + ": " + w.Message
}

// Applied records which option ids were found and used.
type Applied struct {
	Theme      string   `json:"theme,omitempty"`
	Difficulty string   `json:"difficulty,omitempty"`
	Mechanics  []string `json:"mechanics,omitempty"`
	Visuals    []string `json:"visuals,omitempty"`
}

// Resolution is the outcome of merging customizations into a template.
type Resolution struct {
	Variables map[string]string
	ArtAssets []string
	Flags     []string
	Applied   Applied
	Warnings  []Warning
}

// Resolve merges c into t's base variables. Later steps win:
//
//  1. template variables
//  2. theme asset overrides, color scheme, variables
//  3. difficulty parameter adjustments
//  4. mechanics (flags set to "true", required assets appended, variables)
//  5. visuals
//  6. caller variables
//
// Unknown option ids are skipped with a LookupMiss warning. Resolve never fails.
func Resolve(t model.Template, c model.TemplateCustomizations) Resolution {
	res := Resolution{
		Variables: lo.Assign(t.Variables),
		ArtAssets: append([]string{}, t.Prebuilt.Assets.Art...),
	}

	if c.Theme != "" {
		if theme, ok := t.Options.Theme(c.Theme); ok {
			ApplyTheme(res.Variables, theme)
			res.ArtAssets = overrideAssets(res.ArtAssets, theme.AssetOverrides)
			res.Applied.Theme = theme.ID
		} else {
			res.miss("theme", c.Theme, t.ID)
		}
	}

	if c.Difficulty != "" {
		if diff, ok := t.Options.Difficulty(c.Difficulty); ok {
			ApplyDifficulty(res.Variables, diff)
			res.Applied.Difficulty = diff.ID
		} else {
			res.miss("difficulty", c.Difficulty, t.ID)
		}
	}

	for _, id := range lo.Uniq(c.Mechanics) {
		mech, ok := t.Options.Mechanic(id)
		if !ok {
			res.miss("mechanic", id, t.ID)
			continue
		}
		if mech.Flag != "" {
			res.Variables[mech.Flag] = "true"
			res.Flags = append(res.Flags, mech.Flag)
		}
		res.ArtAssets = lo.Uniq(append(res.ArtAssets, mech.RequiredAssets...))
		overlay(res.Variables, mech.Variables)
		res.Applied.Mechanics = append(res.Applied.Mechanics, mech.ID)
	}

	for _, id := range lo.Uniq(c.Visuals) {
		vis, ok := t.Options.Visual(id)
		if !ok {
			res.miss("visual", id, t.ID)
			continue
		}
		overlay(res.Variables, vis.Variables)
		res.Applied.Visuals = append(res.Applied.Visuals, vis.ID)
	}

	overlay(res.Variables, c.Variables)
	return res
}

// ApplyTheme overlays a theme onto vars in place. Applying the same theme
// twice leaves vars unchanged the second time.
func ApplyTheme(vars map[string]string, theme model.ThemeOption) {
	overlay(vars, theme.AssetOverrides)
	overlay(vars, theme.ColorScheme)
	overlay(vars, theme.Variables)
}

// ApplyDifficulty overlays a difficulty's parameter adjustments onto vars in place.
func ApplyDifficulty(vars map[string]string, diff model.DifficultyOption) {
	overlay(vars, diff.ParameterAdjustments)
}

func overlay(dst, src map[string]string) {
	for k, v := range src {
		dst[k] = v
	}
}

// overrideAssets renames art assets a theme replaces, keeping order.
func overrideAssets(art []string, overrides map[string]string) []string {
	if len(overrides) == 0 {
		return art
	}
	return lo.Uniq(lo.Map(art, func(name string, _ int) string {
		if replacement, ok := overrides[name]; ok {
			return replacement
		}
		return name
	}))
}

func (r *Resolution) miss(axis, id, templateID string) {
	r.Warnings = append(r.Warnings, Warning{
		Kind:    LookupMiss,
		Message: fmt.Sprintf("unknown %s %q for template %s", axis, id, templateID),
	})
}
