package main

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rs/zerolog/hlog"

	"gameforge/internal/projectmanager"
	"gameforge/internal/storage"
)

type errorBody struct {
	Error apiError `json:"error"`
}

type apiError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, r *http.Request, status int, data any) {
	jsonData, err := json.Marshal(data)
	if err != nil {
		hlog.FromRequest(r).Error().Err(err).Msg("error marshaling response data")
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if _, err := w.Write(jsonData); err != nil {
		hlog.FromRequest(r).Error().Err(err).Msg("error writing response")
	}
}

func writeErrorCode(w http.ResponseWriter, r *http.Request, status int, code, message string) {
	writeJSON(w, r, status, errorBody{Error: apiError{Code: code, Message: message}})
}

// writeError maps domain errors to HTTP statuses. Unexpected errors are
// logged and reported as 500 without their details.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, projectmanager.ErrTemplateNotFound):
		writeErrorCode(w, r, http.StatusNotFound, "template_not_found", err.Error())
	case errors.Is(err, storage.ErrProjectNotFound):
		writeErrorCode(w, r, http.StatusNotFound, "project_not_found", err.Error())
	case errors.Is(err, projectmanager.ErrFileNotFound):
		writeErrorCode(w, r, http.StatusNotFound, "file_not_found", err.Error())
	case errors.Is(err, storage.ErrInvalidID):
		writeErrorCode(w, r, http.StatusBadRequest, "invalid_id", err.Error())
	default:
		hlog.FromRequest(r).Error().Err(err).Msg("request failed")
		writeErrorCode(w, r, http.StatusInternalServerError, "internal", "an unexpected error occurred")
	}
}
