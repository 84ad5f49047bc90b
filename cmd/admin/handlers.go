package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"mime"
	"net/http"
	"net/url"
	"path"
	"sort"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/samber/lo"

	"gameforge/internal/generator"
	"gameforge/internal/model"
	"gameforge/internal/projectmanager"
	"gameforge/internal/storage"
)

// DashboardPageData holds the data for the dashboard content block.
type DashboardPageData struct {
	Projects  []model.ProjectSummary
	Templates []model.TemplateSummary
}

// GeneratePageData holds the data for the generate form.
type GeneratePageData struct {
	Templates []model.TemplateSummary
	Selected  *model.Template
}

// ProjectPageData holds the data for a single project page.
type ProjectPageData struct {
	Project *model.GeneratedProject
	Files   []ProjectFile
}

// ProjectFile is one rendered file, listed in name order.
type ProjectFile struct {
	Name    string
	Content string
}

// render executes the cached page inside layout.html. Output is buffered so a
// failing template never leaves a half-written page.
func (app *adminApplication) render(w http.ResponseWriter, status int, page string, data map[string]any) {
	ts, ok := app.templateCache[page]
	if !ok {
		app.logger.Error().Str("page", page).Msg("Template not found in cache")
		http.Error(w, "Internal Server Error - Template not found", http.StatusInternalServerError)
		return
	}

	var buf bytes.Buffer
	if err := ts.ExecuteTemplate(&buf, "layout.html", data); err != nil {
		app.logger.Error().Err(err).Str("page", page).Msg("Error executing admin layout template")
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	buf.WriteTo(w)
}

func redirectWith(w http.ResponseWriter, r *http.Request, target, key, message string) {
	http.Redirect(w, r, target+"?"+key+"="+url.QueryEscape(message), http.StatusSeeOther)
}

// dashboardHandler serves the main admin dashboard page.
func (app *adminApplication) dashboardHandler(w http.ResponseWriter, r *http.Request) {
	data := app.newTemplateData(r, "dashboard")

	pageData := DashboardPageData{
		Templates: lo.Map(app.manager.Catalog().Templates(), func(t model.Template, _ int) model.TemplateSummary {
			return t.Summary()
		}),
	}
	projects, err := app.manager.List(r.Context())
	if err != nil {
		app.logger.Error().Err(err).Msg("Failed to read projects from store")
		data["Error"] = "Failed to load project list."
	} else {
		pageData.Projects = projects
	}
	data["Page"] = pageData

	app.render(w, http.StatusOK, "dashboard.html", data)
}

// generateFormHandler displays the options of the selected template (the first one by default).
func (app *adminApplication) generateFormHandler(w http.ResponseWriter, r *http.Request) {
	data := app.newTemplateData(r, "generate")
	templates := app.manager.Catalog().Templates()

	pageData := GeneratePageData{
		Templates: lo.Map(templates, func(t model.Template, _ int) model.TemplateSummary {
			return t.Summary()
		}),
	}
	if id := r.URL.Query().Get("template"); id != "" {
		t, ok := app.manager.Catalog().ByID(id)
		if !ok {
			data["Error"] = fmt.Sprintf("Unknown template %q.", id)
		} else {
			pageData.Selected = &t
		}
	}
	if pageData.Selected == nil && len(templates) > 0 {
		pageData.Selected = &templates[0]
	}
	data["Page"] = pageData

	app.render(w, http.StatusOK, "generate_form.html", data)
}

// generateHandler handles the submission of the generate form. The project is always saved.
func (app *adminApplication) generateHandler(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		app.logger.Error().Err(err).Msg("Error parsing generate form")
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	templateID := r.PostForm.Get("template")
	if templateID == "" {
		redirectWith(w, r, "/admin/generate", "error", "Template is required.")
		return
	}

	req := projectmanager.GenerateRequest{
		TemplateID: templateID,
		Customizations: model.TemplateCustomizations{
			Theme:      r.PostForm.Get("theme"),
			Difficulty: r.PostForm.Get("difficulty"),
			Mechanics:  lo.Compact(r.PostForm["mechanic"]),
			Visuals:    lo.Compact(r.PostForm["visual"]),
		},
		Title:  strings.TrimSpace(r.PostForm.Get("title")),
		Prompt: strings.TrimSpace(r.PostForm.Get("prompt")),
		Save:   true,
	}

	result, err := app.manager.Generate(r.Context(), req)
	if err != nil {
		app.logger.Error().Err(err).Str("template_id", templateID).Msg("Error generating project via manager")
		redirectWith(w, r, "/admin/generate", "error", fmt.Sprintf("Failed to generate from '%s': %v", templateID, err))
		return
	}

	notice := fmt.Sprintf("Project '%s' generated.", result.Project.Title)
	if len(result.Warnings) > 0 {
		notice += " Warnings: " + strings.Join(lo.Map(result.Warnings, func(w generator.Warning, _ int) string {
			return w.Message
		}), "; ")
	}
	redirectWith(w, r, "/admin/projects/"+result.Project.ID, "notice", notice)
}

// projectHandler shows a saved project with its rendered files.
func (app *adminApplication) projectHandler(w http.ResponseWriter, r *http.Request) {
	project, ok := app.loadProject(w, r)
	if !ok {
		return
	}

	names := lo.Keys(project.Files)
	sort.Strings(names)
	data := app.newTemplateData(r, "dashboard")
	data["Page"] = ProjectPageData{
		Project: project,
		Files: lo.Map(names, func(name string, _ int) ProjectFile {
			return ProjectFile{Name: name, Content: project.Files[name]}
		}),
	}
	app.render(w, http.StatusOK, "project.html", data)
}

// projectDeleteHandler deletes a project. HTMX requests get an empty body
// (the row is swapped out) and an HX-Trigger message; others are redirected.
func (app *adminApplication) projectDeleteHandler(w http.ResponseWriter, r *http.Request) {
	projectID := chi.URLParam(r, "projectID")
	isHTMX := r.Header.Get("HX-Request") == "true"

	err := app.manager.Delete(r.Context(), projectID)
	if err != nil {
		app.logger.Error().Err(err).Str("project_id", projectID).Msg("Error deleting project via manager")
		message := fmt.Sprintf("Failed to delete project '%s': %v", projectID, err)
		if isHTMX {
			setTrigger(w, message, "error")
			w.Header().Set("HX-Reswap", "none")
			w.WriteHeader(http.StatusOK)
			return
		}
		redirectWith(w, r, "/", "error", message)
		return
	}

	message := fmt.Sprintf("Project %s deleted.", projectID)
	if isHTMX {
		setTrigger(w, message, "success")
		w.WriteHeader(http.StatusOK)
		return
	}
	redirectWith(w, r, "/", "notice", message)
}

// playHandler serves a saved project's files so the game runs in the browser.
// Relative links in index.html resolve against the same prefix.
func (app *adminApplication) playHandler(w http.ResponseWriter, r *http.Request) {
	project, ok := app.loadProject(w, r)
	if !ok {
		return
	}
	name := chi.URLParam(r, "*")
	if name == "" {
		name = model.FileHTML
	}
	content, ok := project.Files[name]
	if !ok {
		http.NotFound(w, r)
		return
	}
	contentType := mime.TypeByExtension(path.Ext(name))
	if contentType == "" {
		contentType = "text/plain; charset=utf-8"
	}
	w.Header().Set("Content-Type", contentType)
	// Generated code runs in an opaque origin, away from the admin's cookies.
	w.Header().Set("Content-Security-Policy", sandboxPolicy)
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.Write([]byte(content))
}

const sandboxPolicy = "sandbox allow-scripts"

func (app *adminApplication) loadProject(w http.ResponseWriter, r *http.Request) (*model.GeneratedProject, bool) {
	projectID := chi.URLParam(r, "projectID")
	project, err := app.manager.Get(r.Context(), projectID)
	switch {
	case errors.Is(err, storage.ErrProjectNotFound), errors.Is(err, storage.ErrInvalidID):
		http.NotFound(w, r)
		return nil, false
	case err != nil:
		app.logger.Error().Err(err).Str("project_id", projectID).Msg("Failed to load project")
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return nil, false
	}
	return project, true
}

func setTrigger(w http.ResponseWriter, message, kind string) {
	payload, _ := json.Marshal(map[string]any{
		"showMessage": map[string]string{"message": message, "type": kind},
	})
	w.Header().Set("HX-Trigger", string(payload))
}
