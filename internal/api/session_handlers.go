package api

import (
	"encoding/json"
	stderrors "errors"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/vytor/braingym/internal/errors"
	"github.com/vytor/braingym/internal/logger"
	"github.com/vytor/braingym/internal/models"
)

func (s *Server) handleGetSession(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, http.StatusOK, s.Sessions.View())
}

func (s *Server) handleSelectGame(w http.ResponseWriter, r *http.Request) {
	id := models.GameID(chi.URLParam(r, "id"))
	logger.FromContext(r.Context()).Debug("selecting game: %s", id)

	view, err := s.Sessions.Select(id)
	if err != nil {
		handleError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, view)
}

func (s *Server) handleCommand(w http.ResponseWriter, r *http.Request) {
	cmd, err := decodeCommand(r)
	if err != nil {
		handleError(w, r, err)
		return
	}

	view, err := s.Sessions.Dispatch(cmd)
	if err != nil {
		handleError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, view)
}

func (s *Server) handleExit(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, http.StatusOK, s.Sessions.Exit())
}

func (s *Server) handleRetry(w http.ResponseWriter, r *http.Request) {
	view, err := s.Sessions.Retry()
	if err != nil {
		handleError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, view)
}

func decodeCommand(r *http.Request) (models.Command, error) {
	var cmd models.Command
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&cmd); err != nil {
		if stderrors.Is(err, io.EOF) {
			return cmd, errors.NewBadRequestError("request body required")
		}
		return cmd, errors.NewBadRequestError("invalid JSON: " + err.Error())
	}

	switch cmd.Action {
	case models.ActionSubmit, models.ActionTap:
	case "":
		return cmd, errors.NewValidationError("action", "required")
	default:
		return cmd, errors.NewValidationError("action", "must be submit or tap")
	}
	if cmd.Hand != nil && !models.Hand(*cmd.Hand).Valid() {
		return cmd, errors.NewValidationError("hand", "must be 0 (rock), 1 (scissors) or 2 (paper)")
	}
	return cmd, nil
}
