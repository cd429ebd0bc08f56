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

type VoteHandler struct {
	svc *polls.Service
}

func NewVoteHandler(svc *polls.Service) *VoteHandler {
	return &VoteHandler{svc: svc}
}

// SubmitVote handles POST /polls/{id}/responses
func (h *VoteHandler) SubmitVote(w http.ResponseWriter, r *http.Request) {
	pollID, ok := parsePollID(w, r)
	if !ok {
		return
	}

	var req models.SubmitVoteRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if req.ParticipantName == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "participant_name is required")
		return
	}

	votes := make([]models.PollVote, 0, len(req.Votes))
	for _, vote := range req.Votes {
		if !vote.Value.Valid() {
			middleware.ErrorResponse(w, http.StatusBadRequest, "vote value must be YES, IF_NEEDED or NO")
			return
		}
		votes = append(votes, models.PollVote{OptionID: vote.OptionID, Value: vote.Value})
	}

	responseID, err := h.svc.SubmitVote(polls.SubmitVoteCommand{
		PollID:          pollID,
		ParticipantName: req.ParticipantName,
		Votes:           votes,
		Comment:         req.Comment,
		ResponseID:      req.ResponseID,
	})
	if err != nil {
		serviceError(w, err, "failed to submit vote")
		return
	}

	slog.Info("vote submitted", "poll_id", pollID, "response_id", responseID, "is_update", req.ResponseID != nil)

	middleware.JSONResponse(w, http.StatusCreated, models.SubmitVoteResponse{
		ResponseID: responseID.String(),
	})
}
