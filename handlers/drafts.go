// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/danielhkuo/quickly-meet/middleware"
	"github.com/danielhkuo/quickly-meet/models"
	"github.com/danielhkuo/quickly-meet/store"
)

type DraftHandler struct {
	drafts store.DraftStore
}

func NewDraftHandler(drafts store.DraftStore) *DraftHandler {
	return &DraftHandler{drafts: drafts}
}

// CreateDraft handles POST /drafts
func (h *DraftHandler) CreateDraft(w http.ResponseWriter, r *http.Request) {
	draft, ok := parseDraftBody(w, r)
	if !ok {
		return
	}

	draftID, err := h.drafts.Create(draft)
	if err != nil {
		slog.Error("failed to create draft", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to create draft")
		return
	}

	slog.Info("draft created", "draft_id", draftID)

	middleware.JSONResponse(w, http.StatusCreated, models.CreateDraftResponse{
		DraftID: draftID.String(),
	})
}

// GetDraft handles GET /drafts/{id}
func (h *DraftHandler) GetDraft(w http.ResponseWriter, r *http.Request) {
	draftID, ok := parseDraftID(w, r)
	if !ok {
		return
	}

	draft, found, err := h.drafts.FindByID(draftID)
	if err != nil {
		slog.Error("failed to load draft", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to load draft")
		return
	}
	if !found {
		middleware.ErrorResponse(w, http.StatusNotFound, "Draft not found")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, toDraftView(draft))
}

// SaveDraft handles PUT /drafts/{id}
func (h *DraftHandler) SaveDraft(w http.ResponseWriter, r *http.Request) {
	draftID, ok := parseDraftID(w, r)
	if !ok {
		return
	}
	draft, ok := parseDraftBody(w, r)
	if !ok {
		return
	}

	if err := h.drafts.Save(draftID, draft); err != nil {
		slog.Error("failed to save draft", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to save draft")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// DeleteDraft handles DELETE /drafts/{id}
func (h *DraftHandler) DeleteDraft(w http.ResponseWriter, r *http.Request) {
	draftID, ok := parseDraftID(w, r)
	if !ok {
		return
	}

	if err := h.drafts.Delete(draftID); err != nil {
		slog.Error("failed to delete draft", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to delete draft")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func parseDraftID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	draftID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "invalid draft id")
		return uuid.Nil, false
	}
	return draftID, true
}

func parseDraftBody(w http.ResponseWriter, r *http.Request) (models.WizardDraft, bool) {
	var req models.DraftRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return models.WizardDraft{}, false
	}

	eventType := req.EventType
	if eventType == "" {
		eventType = models.EventAllDay
	}
	if !eventType.Valid() {
		middleware.ErrorResponse(w, http.StatusBadRequest, "event type must be ALL_DAY or INTRADAY")
		return models.WizardDraft{}, false
	}

	draft := models.WizardDraft{
		AuthorName:        req.AuthorName,
		AuthorEmail:       req.AuthorEmail,
		Title:             req.Title,
		Description:       req.Description,
		EventType:         eventType,
		DurationMinutes:   req.DurationMinutes,
		ExpiresAtOverride: req.ExpiresAtOverride,
	}

	groups := make([]models.DayOption, 0, len(req.DayOptions))
	for _, group := range req.DayOptions {
		groups = append(groups, models.DayOption{Day: group.Day, Times: group.Times})
	}
	draft.SetDayOptions(groups)

	return draft, true
}

func toDraftView(draft models.WizardDraft) models.DraftView {
	groups := draft.DayOptions()
	viewGroups := make([]models.DayOptionView, 0, len(groups))
	for _, group := range groups {
		viewGroups = append(viewGroups, models.DayOptionView{Day: group.Day, Times: group.Times})
	}

	return models.DraftView{
		AuthorName:        draft.AuthorName,
		AuthorEmail:       draft.AuthorEmail,
		Title:             draft.Title,
		Description:       draft.Description,
		EventType:         draft.EventType,
		DurationMinutes:   draft.DurationMinutes,
		DayOptions:        viewGroups,
		ExpiresAtOverride: draft.ExpiresAtOverride,
	}
}
