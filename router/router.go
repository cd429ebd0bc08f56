// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"net/http"

	"github.com/danielhkuo/quickly-meet/cliparse"
	"github.com/danielhkuo/quickly-meet/handlers"
	"github.com/danielhkuo/quickly-meet/middleware"
	"github.com/danielhkuo/quickly-meet/polls"
	"github.com/danielhkuo/quickly-meet/store"
)

func NewRouter(svc *polls.Service, pollStore store.PollStore, draftStore store.DraftStore, cfg cliparse.Config) *http.ServeMux {
	mux := http.NewServeMux()

	// Initialize handlers
	pollHandler := handlers.NewPollHandler(svc, pollStore, cfg)
	optionHandler := handlers.NewOptionHandler(svc)
	voteHandler := handlers.NewVoteHandler(svc)
	draftHandler := handlers.NewDraftHandler(draftStore)

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Literal route; takes precedence over GET /polls/{id}
	mux.HandleFunc("GET /polls/active-count", middleware.WithLogging(pollHandler.ActiveCount))

	// Poll lifecycle
	mux.HandleFunc("POST /polls", middleware.WithLogging(pollHandler.CreatePoll))
	mux.HandleFunc("GET /polls/{id}", middleware.WithLogging(pollHandler.GetPoll))
	mux.HandleFunc("GET /polls/{id}/admin", middleware.WithLogging(pollHandler.GetPollAdmin))

	// Admin option mutation
	mux.HandleFunc("POST /polls/{id}/options", middleware.WithLogging(optionHandler.AddOption))
	mux.HandleFunc("POST /polls/{id}/options/remove", middleware.WithLogging(optionHandler.RemoveOption))

	// Voting (public)
	mux.HandleFunc("POST /polls/{id}/responses", middleware.WithLogging(voteHandler.SubmitVote))

	// Wizard drafts
	mux.HandleFunc("POST /drafts", middleware.WithLogging(draftHandler.CreateDraft))
	mux.HandleFunc("GET /drafts/{id}", middleware.WithLogging(draftHandler.GetDraft))
	mux.HandleFunc("PUT /drafts/{id}", middleware.WithLogging(draftHandler.SaveDraft))
	mux.HandleFunc("DELETE /drafts/{id}", middleware.WithLogging(draftHandler.DeleteDraft))

	// Root endpoint
	mux.HandleFunc("GET /", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("quickly-meet API v1"))
	})

	return mux
}
