package main

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gameforge/internal/catalog"
	"gameforge/internal/enrichment"
	"gameforge/internal/generator"
	"gameforge/internal/model"
	"gameforge/internal/projectmanager"
	"gameforge/internal/storage"
)

// Helper to create a minimal valid application instance for testing
func newTestApplication(t *testing.T) *application {
	t.Helper()
	store, err := storage.NewJSONStore(filepath.Join(t.TempDir(), "projects"))
	require.NoError(t, err)

	gen := generator.New(
		generator.WithClock(func() time.Time { return time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC) }),
		generator.WithEnricher(enrichment.NewMockEnricher(1)),
	)
	manager := projectmanager.NewManager(catalog.Default(), gen, store, zerolog.Nop())
	return newApplication(manager, zerolog.Nop(), 5*time.Second)
}

func do(t *testing.T, h http.Handler, method, target string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, target, &buf)
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	return rr
}

func decode[T any](t *testing.T, rr *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &v), rr.Body.String())
	return v
}

type errorResponse struct {
	Error apiError `json:"error"`
}

func TestHealth(t *testing.T) {
	h := newTestApplication(t).routes()

	rr := do(t, h, http.MethodGet, "/health", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	body := decode[map[string]any](t, rr)
	assert.Equal(t, "ok", body["status"])
	assert.EqualValues(t, 4, body["templates"])
	assert.Contains(t, rr.Header().Get("Content-Type"), "application/json")
}

func TestListTemplates(t *testing.T) {
	h := newTestApplication(t).routes()

	tests := []struct {
		name  string
		query string
		want  []string
	}{
		{"All", "", []string{"cookie-clicker", "snake", "flappy-bird", "platformer"}},
		{"Category", "?category=arcade", []string{"snake", "flappy-bird"}},
		{"Tag", "?tag=one-button", []string{"cookie-clicker", "flappy-bird"}},
		{"Framework", "?framework=phaser", []string{"platformer"}},
		{"Query", "?q=snake", []string{"snake"}},
		{"No Match", "?q=zzz", []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := do(t, h, http.MethodGet, "/api/templates"+tt.query, nil)
			require.Equal(t, http.StatusOK, rr.Code)
			body := decode[struct {
				Templates []model.TemplateSummary `json:"templates"`
			}](t, rr)
			ids := make([]string, 0, len(body.Templates))
			for _, s := range body.Templates {
				ids = append(ids, s.ID)
			}
			assert.Equal(t, tt.want, ids)
		})
	}
}

func TestGetTemplateAndPreview(t *testing.T) {
	h := newTestApplication(t).routes()

	rr := do(t, h, http.MethodGet, "/api/templates/snake", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	tmpl := decode[model.Template](t, rr)
	assert.Equal(t, "snake", tmpl.ID)
	assert.NotEmpty(t, tmpl.Options.Themes)

	rr = do(t, h, http.MethodGet, "/api/templates/tetris", nil)
	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Equal(t, "template_not_found", decode[errorResponse](t, rr).Error.Code)

	rr = do(t, h, http.MethodGet, "/api/templates/snake/preview/index.html", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Header().Get("Content-Type"), "text/html")
	assert.Equal(t, "sandbox allow-scripts", rr.Header().Get("Content-Security-Policy"))
	assert.NotContains(t, rr.Body.String(), "{{")

	rr = do(t, h, http.MethodGet, "/api/templates/snake/preview/missing.txt", nil)
	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Equal(t, "file_not_found", decode[errorResponse](t, rr).Error.Code)
}

func TestGenerateAndProjects(t *testing.T) {
	app := newTestApplication(t)
	h := app.routes()

	// 1. Generate and save
	rr := do(t, h, http.MethodPost, "/api/generate", map[string]any{
		"templateId": "cookie-clicker",
		"customizations": map[string]any{
			"theme":      "space-mining",
			"difficulty": "hard",
		},
		"title": "Rock Collector",
		"save":  true,
	})
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
	result := decode[generator.Result](t, rr)
	require.NotNil(t, result.Project)
	assert.Equal(t, generator.StatusSuccess, result.Status)
	assert.Equal(t, "Rock Collector", result.Project.Title)
	assert.Contains(t, result.Project.Files[model.FileMain], "Minerals")
	id := result.Project.ID

	// 2. List
	rr = do(t, h, http.MethodGet, "/api/projects", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	list := decode[struct {
		Projects []model.ProjectSummary `json:"projects"`
	}](t, rr)
	require.Len(t, list.Projects, 1)
	assert.Equal(t, id, list.Projects[0].ID)

	// 3. Get project and one file
	rr = do(t, h, http.MethodGet, "/api/projects/"+id, nil)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "cookie-clicker", decode[model.GeneratedProject](t, rr).TemplateID)

	rr = do(t, h, http.MethodGet, "/api/projects/"+id+"/files/game.js", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "COST_MULTIPLIER = 1.25")
	assert.Equal(t, "sandbox allow-scripts", rr.Header().Get("Content-Security-Policy"))
	assert.Equal(t, "nosniff", rr.Header().Get("X-Content-Type-Options"))

	rr = do(t, h, http.MethodGet, "/api/projects/"+id+"/files/nope.js", nil)
	assert.Equal(t, http.StatusNotFound, rr.Code)

	// 4. Delete
	rr = do(t, h, http.MethodDelete, "/api/projects/"+id, nil)
	assert.Equal(t, http.StatusNoContent, rr.Code)
	rr = do(t, h, http.MethodGet, "/api/projects/"+id, nil)
	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Equal(t, "project_not_found", decode[errorResponse](t, rr).Error.Code)

	// 5. Metrics include the generation
	rr = do(t, h, http.MethodGet, "/metrics", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), `gameforge_generations_total{status="success",template="cookie-clicker"} 1`)
	assert.Contains(t, rr.Body.String(), "gameforge_generation_duration_seconds_count 1")
}

func TestGenerate_PartialWithUnknownOptions(t *testing.T) {
	h := newTestApplication(t).routes()

	rr := do(t, h, http.MethodPost, "/api/generate", map[string]any{
		"templateId":     "snake",
		"customizations": map[string]any{"theme": "lava", "mechanics": []string{"obstacles", "teleport"}},
	})
	require.Equal(t, http.StatusOK, rr.Code)
	result := decode[generator.Result](t, rr)
	assert.Equal(t, generator.StatusPartial, result.Status)
	assert.Len(t, result.Warnings, 2)

	// unsaved projects are not listed
	rr = do(t, h, http.MethodGet, "/api/projects", nil)
	assert.Contains(t, rr.Body.String(), `"projects":[]`)
}

func TestGenerate_BadRequests(t *testing.T) {
	h := newTestApplication(t).routes()

	tests := []struct {
		name     string
		body     string
		wantCode int
		wantErr  string
	}{
		{"Invalid JSON", `{"templateId":`, http.StatusBadRequest, "invalid_request"},
		{"Unknown Field", `{"templateId":"snake","colour":"red"}`, http.StatusBadRequest, "invalid_request"},
		{"Missing Template", `{"prompt":"a game"}`, http.StatusBadRequest, "invalid_request"},
		{"Unknown Template", `{"templateId":"tetris"}`, http.StatusNotFound, "template_not_found"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/api/generate", strings.NewReader(tt.body))
			rr := httptest.NewRecorder()
			h.ServeHTTP(rr, req)
			assert.Equal(t, tt.wantCode, rr.Code)
			assert.Equal(t, tt.wantErr, decode[errorResponse](t, rr).Error.Code)
		})
	}
}

func TestUnknownRoutes(t *testing.T) {
	h := newTestApplication(t).routes()

	rr := do(t, h, http.MethodGet, "/api/nothing", nil)
	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Equal(t, "not_found", decode[errorResponse](t, rr).Error.Code)

	rr = do(t, h, http.MethodPut, "/api/projects/abc", nil)
	assert.Equal(t, http.StatusMethodNotAllowed, rr.Code)

	rr = do(t, h, http.MethodGet, "/api/projects/..%2Fsecret", nil)
	assert.Contains(t, []int{http.StatusBadRequest, http.StatusNotFound}, rr.Code)
}
