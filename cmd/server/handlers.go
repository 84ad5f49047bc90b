package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"mime"
	"net/http"
	"path"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/hlog"
	"github.com/samber/lo"

	"gameforge/internal/catalog"
	"gameforge/internal/generator"
	"gameforge/internal/model"
	"gameforge/internal/projectmanager"
)

const maxRequestBody = 1 << 20

// healthHandler reports liveness and the size of the catalog.
func (app *application) healthHandler(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, http.StatusOK, map[string]any{
		"status":    "ok",
		"templates": app.manager.Catalog().Len(),
		"store":     app.manager.Store().BasePath(),
	})
}

// listTemplatesHandler serves GET /api/templates?q=&category=&complexity=&tag=&framework=
func (app *application) listTemplatesHandler(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	filters := catalog.Filters{
		Category:   query.Get("category"),
		Complexity: query.Get("complexity"),
		Tags:       lo.Compact(query["tag"]),
		Framework:  query.Get("framework"),
	}
	templates := app.manager.Catalog().Search(query.Get("q"), filters)

	writeJSON(w, r, http.StatusOK, map[string]any{
		"templates": lo.Map(templates, func(t model.Template, _ int) model.TemplateSummary {
			return t.Summary()
		}),
		"categories": app.manager.Catalog().Categories(),
	})
}

func (app *application) getTemplateHandler(w http.ResponseWriter, r *http.Request) {
	templateID := chi.URLParam(r, "templateID")
	t, ok := app.manager.Catalog().ByID(templateID)
	if !ok {
		writeError(w, r, fmt.Errorf("%w: %q", projectmanager.ErrTemplateNotFound, templateID))
		return
	}
	writeJSON(w, r, http.StatusOK, t)
}

// previewTemplateHandler renders one template file with its default values.
func (app *application) previewTemplateHandler(w http.ResponseWriter, r *http.Request) {
	file := chi.URLParam(r, "*")
	out, err := app.manager.Preview(chi.URLParam(r, "templateID"), file)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeFile(w, file, out)
}

// generateRequest is the body of POST /api/generate.
type generateRequest struct {
	TemplateID     string                       `json:"templateId"`
	Customizations model.TemplateCustomizations `json:"customizations"`
	Prompt         string                       `json:"prompt"`
	Title          string                       `json:"title"`
	Genre          string                       `json:"genre"`
	Save           bool                         `json:"save"`
}

func (app *application) generateHandler(w http.ResponseWriter, r *http.Request) {
	var req generateRequest
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxRequestBody))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&req); err != nil {
		writeErrorCode(w, r, http.StatusBadRequest, "invalid_request", "invalid JSON body: "+err.Error())
		return
	}
	req.TemplateID = strings.TrimSpace(req.TemplateID)
	if req.TemplateID == "" {
		writeErrorCode(w, r, http.StatusBadRequest, "invalid_request", "templateId is required")
		return
	}

	start := time.Now()
	result, err := app.manager.Generate(r.Context(), projectmanager.GenerateRequest{
		TemplateID:     req.TemplateID,
		Customizations: req.Customizations,
		Prompt:         req.Prompt,
		Title:          req.Title,
		Genre:          req.Genre,
		Save:           req.Save,
	})
	elapsed := time.Since(start)

	switch {
	case errors.Is(err, projectmanager.ErrTemplateNotFound):
		app.metrics.observeGeneration("unknown", "not_found", elapsed)
		writeError(w, r, err)
		return
	case result != nil && result.Status == generator.StatusFailed:
		app.metrics.observeGeneration(req.TemplateID, string(result.Status), elapsed)
		hlog.FromRequest(r).Warn().Err(err).Str("template_id", req.TemplateID).Msg("generation failed")
		writeJSON(w, r, http.StatusUnprocessableEntity, map[string]any{
			"error":    apiError{Code: "generation_failed", Message: err.Error()},
			"warnings": result.Warnings,
		})
		return
	case err != nil:
		// generated but not saved
		app.metrics.observeGeneration(req.TemplateID, "save_failed", elapsed)
		writeError(w, r, err)
		return
	}

	app.metrics.observeGeneration(req.TemplateID, string(result.Status), elapsed)
	writeJSON(w, r, http.StatusOK, result)
}

func (app *application) listProjectsHandler(w http.ResponseWriter, r *http.Request) {
	projects, err := app.manager.List(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, map[string]any{"projects": projects})
}

func (app *application) getProjectHandler(w http.ResponseWriter, r *http.Request) {
	project, err := app.manager.Get(r.Context(), chi.URLParam(r, "projectID"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, project)
}

func (app *application) getProjectFileHandler(w http.ResponseWriter, r *http.Request) {
	file := chi.URLParam(r, "*")
	content, err := app.manager.File(r.Context(), chi.URLParam(r, "projectID"), file)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeFile(w, file, content)
}

func (app *application) deleteProjectHandler(w http.ResponseWriter, r *http.Request) {
	if err := app.manager.Delete(r.Context(), chi.URLParam(r, "projectID")); err != nil {
		writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// writeFile serves a rendered file with a content type guessed from its extension.
func writeFile(w http.ResponseWriter, name, content string) {
	contentType := mime.TypeByExtension(path.Ext(name))
	if contentType == "" {
		contentType = "text/plain; charset=utf-8"
	}
	w.Header().Set("Content-Type", contentType)
	// Rendered files carry caller-supplied values; keep them out of the API origin.
	w.Header().Set("Content-Security-Policy", "sandbox allow-scripts")
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(content))
}
