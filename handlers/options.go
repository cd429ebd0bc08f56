// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"log/slog"
	"net/http"

	"github.com/danielhkuo/quickly-meet/middleware"
	"github.com/danielhkuo/quickly-meet/models"
	"github.com/danielhkuo/quickly-meet/polls"
)

type OptionHandler struct {
	svc *polls.Service
}

func NewOptionHandler(svc *polls.Service) *OptionHandler {
	return &OptionHandler{svc: svc}
}

// AddOption handles POST /polls/{id}/options
func (h *OptionHandler) AddOption(w http.ResponseWriter, r *http.Request) {
	pollID, ok := parsePollID(w, r)
	if !ok {
		return
	}
	adminSecret := r.Header.Get(AdminSecretHeader)

	var req models.OptionMutationRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}
	if !req.Date.IsValid() {
		middleware.ErrorResponse(w, http.StatusBadRequest, "date is required")
		return
	}

	if err := h.svc.AddOption(pollID, adminSecret, req.Date, req.StartTime); err != nil {
		serviceError(w, err, "failed to add option")
		return
	}

	slog.Info("option added", "poll_id", pollID, "date", req.Date)

	poll, err := h.svc.GetAdmin(pollID, adminSecret)
	if err != nil {
		serviceError(w, err, "failed to load poll")
		return
	}
	middleware.JSONResponse(w, http.StatusOK, toAdminPollView(poll))
}

// RemoveOption handles POST /polls/{id}/options/remove
func (h *OptionHandler) RemoveOption(w http.ResponseWriter, r *http.Request) {
	pollID, ok := parsePollID(w, r)
	if !ok {
		return
	}
	adminSecret := r.Header.Get(AdminSecretHeader)

	var req models.OptionMutationRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}
	if !req.Date.IsValid() {
		middleware.ErrorResponse(w, http.StatusBadRequest, "date is required")
		return
	}

	if err := h.svc.RemoveOption(pollID, adminSecret, req.Date, req.StartTime); err != nil {
		serviceError(w, err, "failed to remove option")
		return
	}

	slog.Info("option removed", "poll_id", pollID, "date", req.Date)

	poll, err := h.svc.GetAdmin(pollID, adminSecret)
	if err != nil {
		serviceError(w, err, "failed to load poll")
		return
	}
	middleware.JSONResponse(w, http.StatusOK, toAdminPollView(poll))
}
