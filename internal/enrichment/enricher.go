// Package enrichment produces the story, asset and gameplay content attached
// to a generated project.
package enrichment

import (
	"context"
	"strings"

	"gameforge/internal/model"
)

// Genres returned by DetectGenre.
const (
	GenreFantasy   = "fantasy"
	GenreSciFi     = "sci-fi"
	GenreHorror    = "horror"
	GenreAdventure = "adventure"
)

// Content sources.
const (
	SourceMock   = "mock"
	SourceOpenAI = "openai"
)

// Request is the input to an Enricher.
type Request struct {
	Prompt    string
	GenreHint string // overrides genre detection when set
	Template  model.Template
}

// Enricher produces content for a project. Implementations must be safe for
// concurrent use.
type Enricher interface {
	Enrich(ctx context.Context, req Request) (*model.Content, error)
}

var genreKeywords = []struct {
	genre    string
	keywords []string
}{
	{GenreFantasy, []string{"magic", "dragon"}},
	{GenreSciFi, []string{"space", "robot"}},
	{GenreHorror, []string{"scary", "horror"}},
}

// DetectGenre maps free text to a genre by keyword. The first matching rule
// wins; text matching none is adventure.
func DetectGenre(text string) string {
	lower := strings.ToLower(text)
	for _, rule := range genreKeywords {
		for _, kw := range rule.keywords {
			if strings.Contains(lower, kw) {
				return rule.genre
			}
		}
	}
	return GenreAdventure
}

// ResolveGenre returns the request's genre hint, or the genre detected from
// its prompt.
func ResolveGenre(req Request) string {
	if hint := strings.TrimSpace(req.GenreHint); hint != "" {
		return strings.ToLower(hint)
	}
	return DetectGenre(req.Prompt)
}
