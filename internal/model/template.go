package model

// Template is a complete game template: display metadata, the game's
// structure, placeholder content, the customization axes it offers and the
// raw source strings rendered into a project.
type Template struct {
	ID            string   `json:"id" yaml:"id"`
	Name          string   `json:"name" yaml:"name"`
	Description   string   `json:"description" yaml:"description"`
	Category      string   `json:"category" yaml:"category"`
	Complexity    string   `json:"complexity" yaml:"complexity"`         // beginner, intermediate, advanced
	EstimatedTime string   `json:"estimatedTime" yaml:"estimated_time"` // e.g. "5 minutes"
	Tags          []string `json:"tags" yaml:"tags"`
	Version       string   `json:"version" yaml:"version"`

	Structure GameStructure        `json:"structure" yaml:"structure"`
	Prebuilt  PrebuiltContent      `json:"prebuilt" yaml:"prebuilt"`
	Options   CustomizationOptions `json:"options" yaml:"options"`

	// Variables are the base token values. Every token referenced by Code
	// must have an entry here.
	Variables map[string]string `json:"variables" yaml:"variables"`
	Code      CodeTemplates     `json:"code" yaml:"code"`
}

// GameStructure describes how the generated game is put together.
type GameStructure struct {
	Scenes    []string `json:"scenes" yaml:"scenes"`
	Mechanics []string `json:"mechanics" yaml:"mechanics"`
	CoreLoop  string   `json:"coreLoop" yaml:"core_loop"`
	Framework string   `json:"framework" yaml:"framework"` // "vanilla" or "phaser"
	// Dependencies are npm packages the game needs. A package.json is only
	// emitted when this is non-empty.
	Dependencies map[string]string `json:"dependencies,omitempty" yaml:"dependencies,omitempty"`
}

// PrebuiltContent holds the placeholder story, asset and gameplay fragments
// a template ships with.
type PrebuiltContent struct {
	Story    PrebuiltStory    `json:"story" yaml:"story"`
	Assets   PrebuiltAssets   `json:"assets" yaml:"assets"`
	Gameplay PrebuiltGameplay `json:"gameplay" yaml:"gameplay"`
}

type PrebuiltStory struct {
	Title      string   `json:"title" yaml:"title"`
	Setting    string   `json:"setting" yaml:"setting"`
	Premise    string   `json:"premise" yaml:"premise"`
	Characters []string `json:"characters" yaml:"characters"`
}

type PrebuiltAssets struct {
	Art   []string `json:"art" yaml:"art"`
	Audio []string `json:"audio" yaml:"audio"`
	UI    []string `json:"ui" yaml:"ui"`
}

type PrebuiltGameplay struct {
	Objectives  []string `json:"objectives" yaml:"objectives"`
	Controls    []string `json:"controls" yaml:"controls"`
	Progression string   `json:"progression" yaml:"progression"`
}

// CustomizationOptions lists every option a user can select for a template.
type CustomizationOptions struct {
	Themes       []ThemeOption      `json:"themes" yaml:"themes"`
	Difficulties []DifficultyOption `json:"difficulties" yaml:"difficulties"`
	Mechanics    []MechanicOption   `json:"mechanics" yaml:"mechanics"`
	Visuals      []VisualOption     `json:"visuals" yaml:"visuals"`
}

// ThemeOption reskins a template. Asset overrides are applied first, then
// the color scheme, then any narrative variables.
type ThemeOption struct {
	ID             string            `json:"id" yaml:"id"`
	Name           string            `json:"name" yaml:"name"`
	Description    string            `json:"description" yaml:"description"`
	AssetOverrides map[string]string `json:"assetOverrides,omitempty" yaml:"asset_overrides,omitempty"`
	ColorScheme    map[string]string `json:"colorScheme,omitempty" yaml:"color_scheme,omitempty"`
	Variables      map[string]string `json:"variables,omitempty" yaml:"variables,omitempty"`
}

// DifficultyOption adjusts numeric game parameters.
type DifficultyOption struct {
	ID                   string            `json:"id" yaml:"id"`
	Name                 string            `json:"name" yaml:"name"`
	Description          string            `json:"description" yaml:"description"`
	ParameterAdjustments map[string]string `json:"parameterAdjustments" yaml:"parameter_adjustments"`
}

// MechanicOption is an optional gameplay feature. Enabling it sets Flag to
// "true" so conditional blocks in the code can switch it on.
type MechanicOption struct {
	ID             string            `json:"id" yaml:"id"`
	Name           string            `json:"name" yaml:"name"`
	Description    string            `json:"description" yaml:"description"`
	Flag           string            `json:"flag" yaml:"flag"`
	RequiredAssets []string          `json:"requiredAssets,omitempty" yaml:"required_assets,omitempty"`
	Variables      map[string]string `json:"variables,omitempty" yaml:"variables,omitempty"`
}

// VisualOption is a presentation toggle (particles, screen shake, fonts).
type VisualOption struct {
	ID          string            `json:"id" yaml:"id"`
	Name        string            `json:"name" yaml:"name"`
	Description string            `json:"description" yaml:"description"`
	Variables   map[string]string `json:"variables" yaml:"variables"`
}

// CodeTemplates are the raw source strings of a template.
type CodeTemplates struct {
	MainFile string            `json:"mainFile" yaml:"main_file"` // defaults to game.js
	Main     string            `json:"main" yaml:"main"`
	HTML     string            `json:"html" yaml:"html"`
	CSS      string            `json:"css" yaml:"css"`
	Config   string            `json:"config" yaml:"config"`
	Readme   string            `json:"readme,omitempty" yaml:"readme,omitempty"`
	Extra    map[string]string `json:"extra,omitempty" yaml:"extra,omitempty"`
}

// Output file names shared by every template.
const (
	FileHTML        = "index.html"
	FileMain        = "game.js"
	FileCSS         = "styles.css"
	FileConfig      = "config.js"
	FileReadme      = "README.md"
	FilePackageJSON = "package.json"
)

// MainFileName returns the file name the main script is rendered to.
func (c CodeTemplates) MainFileName() string {
	if c.MainFile == "" {
		return FileMain
	}
	return c.MainFile
}

// Files returns the template sources keyed by output file name. README and
// extras are only included when present.
func (c CodeTemplates) Files() map[string]string {
	files := map[string]string{
		FileHTML:         c.HTML,
		c.MainFileName(): c.Main,
		FileCSS:          c.CSS,
		FileConfig:       c.Config,
	}
	if c.Readme != "" {
		files[FileReadme] = c.Readme
	}
	for name, src := range c.Extra {
		files[name] = src
	}
	return files
}

// Theme looks up a theme option by id.
func (o CustomizationOptions) Theme(id string) (ThemeOption, bool) {
	for _, th := range o.Themes {
		if th.ID == id {
			return th, true
		}
	}
	return ThemeOption{}, false
}

// Difficulty looks up a difficulty option by id.
func (o CustomizationOptions) Difficulty(id string) (DifficultyOption, bool) {
	for _, d := range o.Difficulties {
		if d.ID == id {
			return d, true
		}
	}
	return DifficultyOption{}, false
}

// Mechanic looks up a mechanic option by id.
func (o CustomizationOptions) Mechanic(id string) (MechanicOption, bool) {
	for _, m := range o.Mechanics {
		if m.ID == id {
			return m, true
		}
	}
	return MechanicOption{}, false
}

// Visual looks up a visual option by id.
func (o CustomizationOptions) Visual(id string) (VisualOption, bool) {
	for _, v := range o.Visuals {
		if v.ID == id {
			return v, true
		}
	}
	return VisualOption{}, false
}

// TemplateCustomizations is a user's selection for one generation request.
// Option ids are plain strings; an id the template does not know is skipped.
type TemplateCustomizations struct {
	Theme      string            `json:"theme,omitempty"`
	Difficulty string            `json:"difficulty,omitempty"`
	Mechanics  []string          `json:"mechanics,omitempty"`
	Visuals    []string          `json:"visuals,omitempty"`
	Variables  map[string]string `json:"variables,omitempty"` // highest priority, always wins
}

// IsEmpty reports whether no customization was selected.
func (c TemplateCustomizations) IsEmpty() bool {
	return c.Theme == "" && c.Difficulty == "" && len(c.Mechanics) == 0 && len(c.Visuals) == 0 && len(c.Variables) == 0
}

// Clone returns a deep copy of t. Catalog lookups hand out clones so callers
// can never mutate registry data.
func (t Template) Clone() Template {
	c := t
	c.Tags = cloneSlice(t.Tags)
	c.Variables = cloneMap(t.Variables)

	c.Structure.Scenes = cloneSlice(t.Structure.Scenes)
	c.Structure.Mechanics = cloneSlice(t.Structure.Mechanics)
	c.Structure.Dependencies = cloneMap(t.Structure.Dependencies)

	c.Prebuilt.Story.Characters = cloneSlice(t.Prebuilt.Story.Characters)
	c.Prebuilt.Assets.Art = cloneSlice(t.Prebuilt.Assets.Art)
	c.Prebuilt.Assets.Audio = cloneSlice(t.Prebuilt.Assets.Audio)
	c.Prebuilt.Assets.UI = cloneSlice(t.Prebuilt.Assets.UI)
	c.Prebuilt.Gameplay.Objectives = cloneSlice(t.Prebuilt.Gameplay.Objectives)
	c.Prebuilt.Gameplay.Controls = cloneSlice(t.Prebuilt.Gameplay.Controls)

	if t.Options.Themes != nil {
		c.Options.Themes = make([]ThemeOption, len(t.Options.Themes))
		for i, th := range t.Options.Themes {
			th.AssetOverrides = cloneMap(th.AssetOverrides)
			th.ColorScheme = cloneMap(th.ColorScheme)
			th.Variables = cloneMap(th.Variables)
			c.Options.Themes[i] = th
		}
	}
	if t.Options.Difficulties != nil {
		c.Options.Difficulties = make([]DifficultyOption, len(t.Options.Difficulties))
		for i, d := range t.Options.Difficulties {
			d.ParameterAdjustments = cloneMap(d.ParameterAdjustments)
			c.Options.Difficulties[i] = d
		}
	}
	if t.Options.Mechanics != nil {
		c.Options.Mechanics = make([]MechanicOption, len(t.Options.Mechanics))
		for i, m := range t.Options.Mechanics {
			m.RequiredAssets = cloneSlice(m.RequiredAssets)
			m.Variables = cloneMap(m.Variables)
			c.Options.Mechanics[i] = m
		}
	}
	if t.Options.Visuals != nil {
		c.Options.Visuals = make([]VisualOption, len(t.Options.Visuals))
		for i, v := range t.Options.Visuals {
			v.Variables = cloneMap(v.Variables)
			c.Options.Visuals[i] = v
		}
	}

	c.Code.Extra = cloneMap(t.Code.Extra)
	return c
}

func cloneSlice(s []string) []string {
	if s == nil {
		return nil
	}
	return append([]string(nil), s...)
}

func cloneMap(m map[string]string) map[string]string {
	if m == nil {
		return nil
	}
	out := make(map[string]string, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

// TemplateSummary is the listing view of a template, without its code.
type TemplateSummary struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	Description   string   `json:"description"`
	Category      string   `json:"category"`
	Complexity    string   `json:"complexity"`
	EstimatedTime string   `json:"estimatedTime"`
	Framework     string   `json:"framework"`
	Tags          []string `json:"tags"`
	Version       string   `json:"version"`
}

// Summary returns the listing view of t.
func (t Template) Summary() TemplateSummary {
	return TemplateSummary{
		ID:            t.ID,
		Name:          t.Name,
		Description:   t.Description,
		Category:      t.Category,
		Complexity:    t.Complexity,
		EstimatedTime: t.EstimatedTime,
		Framework:     t.Structure.Framework,
		Tags:          t.Tags,
		Version:       t.Version,
	}
}
