package model

import "time"

// GeneratedProject is the output of one generation call: rendered files plus
// the story, asset, gameplay and QA blocks that describe them. It is a plain
// serializable record; storage is handled elsewhere.
type GeneratedProject struct {
	ID              string                 `json:"id"`
	Title           string                 `json:"title"`
	Description     string                 `json:"description"`
	TemplateID      string                 `json:"templateId"`
	TemplateVersion string                 `json:"templateVersion"`
	Prompt          string                 `json:"prompt,omitempty"`
	Genre           string                 `json:"genre"`
	Story           Story                  `json:"story"`
	Assets          Assets                 `json:"assets"`
	Gameplay        Gameplay               `json:"gameplay"`
	QA              QA                     `json:"qa"`
	Pipeline        []PipelineStage        `json:"pipeline"`
	Files           map[string]string      `json:"files"`
	Customizations  TemplateCustomizations `json:"customizations"`
	CreatedAt       time.Time              `json:"createdAt"`
}

// Content is what an enricher produces for a project.
type Content struct {
	Source   string   `json:"source"` // "mock" or the provider name
	Genre    string   `json:"genre"`
	Story    Story    `json:"story"`
	Assets   Assets   `json:"assets"`
	Gameplay Gameplay `json:"gameplay"`
}

type Story struct {
	Title      string      `json:"title"`
	Genre      string      `json:"genre"`
	Setting    string      `json:"setting"`
	Theme      string      `json:"theme"`
	Plot       string      `json:"plot"`
	Characters []Character `json:"characters"`
}

type Character struct {
	Name        string `json:"name"`
	Role        string `json:"role"`
	Description string `json:"description"`
}

type Assets struct {
	Style        string      `json:"style"`
	Characters   []AssetSpec `json:"characters"`
	Environments []AssetSpec `json:"environments"`
	Items        []AssetSpec `json:"items"`
	// Art is the flat list of art asset names the rendered game expects,
	// including those required by enabled mechanics.
	Art []string `json:"art"`
}

type AssetSpec struct {
	Name        string `json:"name"`
	Type        string `json:"type"`
	Description string `json:"description"`
}

type Gameplay struct {
	Mechanics   []string `json:"mechanics"`
	Objectives  []string `json:"objectives"`
	Controls    []string `json:"controls"`
	Progression string   `json:"progression"`
	Difficulty  string   `json:"difficulty"`
}

// QA is the result of the checks run against a generated project.
type QA struct {
	Passed bool      `json:"passed"`
	Checks []QACheck `json:"checks"`
}

type QACheck struct {
	Name   string `json:"name"`
	Passed bool   `json:"passed"`
	Detail string `json:"detail,omitempty"`
}

// Pipeline stage names, in order.
const (
	StageStory    = "story"
	StageAssets   = "assets"
	StageGameplay = "gameplay"
	StageQA       = "qa"
)

// Pipeline stage statuses.
const (
	StageCompleted = "completed"
	StageFallback  = "fallback"
	StageFailed    = "failed"
)

type PipelineStage struct {
	Name     string `json:"name"`
	Status   string `json:"status"`
	Progress int    `json:"progress"`
}

// ProjectSummary is the listing view of a project, without its files.
type ProjectSummary struct {
	ID         string    `json:"id"`
	Title      string    `json:"title"`
	TemplateID string    `json:"templateId"`
	Genre      string    `json:"genre"`
	QAPassed   bool      `json:"qaPassed"`
	FileCount  int       `json:"fileCount"`
	CreatedAt  time.Time `json:"createdAt"`
}

// Summary returns the listing view of p.
func (p *GeneratedProject) Summary() ProjectSummary {
	return ProjectSummary{
		ID:         p.ID,
		Title:      p.Title,
		TemplateID: p.TemplateID,
		Genre:      p.Genre,
		QAPassed:   p.QA.Passed,
		FileCount:  len(p.Files),
		CreatedAt:  p.CreatedAt,
	}
}
