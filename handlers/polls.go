// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/danielhkuo/quickly-meet/cliparse"
	"github.com/danielhkuo/quickly-meet/middleware"
	"github.com/danielhkuo/quickly-meet/models"
	"github.com/danielhkuo/quickly-meet/polls"
	"github.com/danielhkuo/quickly-meet/store"
)

// AdminSecretHeader carries the poll admin secret on admin-only requests.
const AdminSecretHeader = "X-Admin-Secret"

type PollHandler struct {
	svc   *polls.Service
	store store.PollStore
	cfg   cliparse.Config
}

func NewPollHandler(svc *polls.Service, pollStore store.PollStore, cfg cliparse.Config) *PollHandler {
	return &PollHandler{svc: svc, store: pollStore, cfg: cfg}
}

// CreatePoll handles POST /polls
func (h *PollHandler) CreatePoll(w http.ResponseWriter, r *http.Request) {
	var req models.CreatePollRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	// Validate input
	if req.Title == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "title is required")
		return
	}
	if req.AuthorName == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "author_name is required")
		return
	}
	if req.AuthorEmail == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "author_email is required")
		return
	}

	result, err := h.svc.Create(polls.CreateCommand{
		AuthorName:        req.AuthorName,
		AuthorEmail:       req.AuthorEmail,
		Title:             req.Title,
		Description:       req.Description,
		EventType:         req.EventType,
		DurationMinutes:   req.DurationMinutes,
		Dates:             req.Dates,
		StartTimes:        req.StartTimes,
		ExpiresAtOverride: req.ExpiresAtOverride,
	})
	if err != nil {
		serviceError(w, err, "failed to create poll")
		return
	}

	slog.Info("poll created", "poll_id", result.PollID, "author", req.AuthorName)

	pollID := result.PollID.String()
	middleware.JSONResponse(w, http.StatusCreated, models.CreatePollResponse{
		PollID:             pollID,
		AdminURL:           h.absoluteURL("/poll/" + pollID + "-" + result.AdminSecret),
		VoteURL:            h.absoluteURL("/poll/" + pollID),
		NotificationQueued: result.NotificationQueued,
	})
}

// GetPoll handles GET /polls/{id}
// Public view: no author contact data, no admin secret.
func (h *PollHandler) GetPoll(w http.ResponseWriter, r *http.Request) {
	pollID, ok := parsePollID(w, r)
	if !ok {
		return
	}

	poll, err := h.svc.GetPublic(pollID)
	if err != nil {
		serviceError(w, err, "failed to load poll")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, toPollView(poll))
}

// GetPollAdmin handles GET /polls/{id}/admin
func (h *PollHandler) GetPollAdmin(w http.ResponseWriter, r *http.Request) {
	pollID, ok := parsePollID(w, r)
	if !ok {
		return
	}

	poll, err := h.svc.GetAdmin(pollID, r.Header.Get(AdminSecretHeader))
	if err != nil {
		serviceError(w, err, "failed to load poll")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, toAdminPollView(poll))
}

// ActiveCount handles GET /polls/active-count
// Plain text; a store failure reads as zero rather than an error page.
func (h *PollHandler) ActiveCount(w http.ResponseWriter, r *http.Request) {
	count, err := h.store.CountActive()
	if err != nil {
		slog.Error("failed to count polls", "error", err)
		count = 0
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Write([]byte(strconv.FormatInt(count, 10)))
}

func (h *PollHandler) absoluteURL(path string) string {
	base := strings.TrimSuffix(h.cfg.PublicBaseURL, "/")
	if base == "" {
		return path
	}
	return base + path
}

// parsePollID pulls the {id} path value and rejects non-UUIDs.
func parsePollID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	raw := r.PathValue("id")
	pollID, err := uuid.Parse(raw)
	if err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "invalid poll id")
		return uuid.Nil, false
	}
	return pollID, true
}

// serviceError maps the service error taxonomy onto HTTP statuses.
func serviceError(w http.ResponseWriter, err error, logMsg string) {
	switch {
	case errors.Is(err, polls.ErrNotFound):
		middleware.ErrorResponse(w, http.StatusNotFound, "Poll not found")
	case errors.Is(err, polls.ErrUnauthorized):
		middleware.ErrorResponse(w, http.StatusUnauthorized, "Invalid admin secret")
	case polls.IsValidation(err):
		middleware.ErrorResponse(w, http.StatusBadRequest, err.Error())
	default:
		slog.Error(logMsg, "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Internal error")
	}
}

func toPollView(poll models.Poll) models.PollView {
	options := make([]models.OptionView, 0, len(poll.Options))
	for _, opt := range poll.Options {
		options = append(options, models.OptionView{
			OptionID:  opt.ID.String(),
			Date:      opt.Date,
			StartTime: opt.StartTime,
			EndTime:   opt.EndTime,
		})
	}

	responses := make([]models.ResponseView, 0, len(poll.Responses))
	for _, resp := range poll.Responses {
		votes := make([]models.VoteView, 0, len(resp.Votes))
		for _, vote := range resp.Votes {
			votes = append(votes, models.VoteView{OptionID: vote.OptionID, Value: vote.Value})
		}
		responses = append(responses, models.ResponseView{
			ResponseID:      resp.ID.String(),
			ParticipantName: resp.ParticipantName,
			CreatedAt:       resp.CreatedAt,
			Comment:         resp.Comment,
			Votes:           votes,
		})
	}

	return models.PollView{
		PollID:          poll.ID.String(),
		Title:           poll.Title,
		Description:     poll.Description,
		EventType:       poll.EventType,
		DurationMinutes: poll.DurationMinutes,
		ExpiresAt:       poll.ExpiresAt,
		Options:         options,
		Responses:       responses,
	}
}

func toAdminPollView(poll models.Poll) models.AdminPollView {
	return models.AdminPollView{
		PollView:    toPollView(poll),
		AuthorName:  poll.AuthorName,
		AuthorEmail: poll.AuthorEmail,
		CreatedAt:   poll.CreatedAt,
		UpdatedAt:   poll.UpdatedAt,
	}
}
