// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package polls

import (
	"fmt"
	"time"

	"cloud.google.com/go/civil"
	"github.com/google/uuid"

	"github.com/danielhkuo/quickly-meet/auth"
	"github.com/danielhkuo/quickly-meet/models"
	"github.com/danielhkuo/quickly-meet/notify"
	"github.com/danielhkuo/quickly-meet/store"
)

// Polls expire four weeks after their last proposed date unless the author
// overrides the expiry explicitly.
const expiryGraceDays = 28

// Service implements the poll use cases over a PollStore and a notification
// Sender. Every operation reads a poll snapshot, computes the full new state
// and writes it back; there are no partial updates.
type Service struct {
	polls  store.PollStore
	sender notify.Sender
}

func NewService(polls store.PollStore, sender notify.Sender) *Service {
	if sender == nil {
		sender = notify.NoopSender{}
	}
	return &Service{polls: polls, sender: sender}
}

// CreateCommand is the input for Create. Dates and StartTimes are parallel
// lists; StartTimes may be shorter, trailing dates then have no time.
type CreateCommand struct {
	AuthorName        string
	AuthorEmail       string
	Title             string
	Description       string
	EventType         models.EventType
	DurationMinutes   *int
	Dates             []civil.Date
	StartTimes        []civil.Time
	ExpiresAtOverride *civil.Date
}

type CreateResult struct {
	PollID             uuid.UUID
	AdminSecret        string
	NotificationQueued bool
}

// Create derives one option per input date, generates a fresh poll id and
// admin secret, persists the poll and notifies the author. Creation always
// succeeds for well-formed input; a failed notification only clears the
// NotificationQueued flag.
func (s *Service) Create(cmd CreateCommand) (CreateResult, error) {
	if !cmd.EventType.Valid() {
		return CreateResult{}, &ValidationError{Reason: "event type must be ALL_DAY or INTRADAY"}
	}

	adminSecret, err := auth.NewAdminSecret()
	if err != nil {
		return CreateResult{}, err
	}

	pollID := uuid.New()
	now := time.Now().UTC()

	poll := models.Poll{
		ID:              pollID,
		AdminSecret:     adminSecret,
		Title:           cmd.Title,
		Description:     cmd.Description,
		AuthorName:      cmd.AuthorName,
		AuthorEmail:     cmd.AuthorEmail,
		EventType:       cmd.EventType,
		DurationMinutes: cmd.DurationMinutes,
		Options:         deriveOptions(cmd),
		Responses:       []models.PollResponse{},
		CreatedAt:       now,
		UpdatedAt:       now,
		ExpiresAt:       computeExpiry(cmd.Dates, cmd.ExpiresAtOverride),
	}

	if err := s.polls.Save(poll); err != nil {
		return CreateResult{}, fmt.Errorf("failed to save poll: %w", err)
	}

	queued := s.sender.SendPollCreated(notify.PollCreatedEmail{
		PollID:      pollID,
		AdminSecret: adminSecret,
		AuthorName:  cmd.AuthorName,
		AuthorEmail: cmd.AuthorEmail,
		Title:       cmd.Title,
	})

	return CreateResult{PollID: pollID, AdminSecret: adminSecret, NotificationQueued: queued}, nil
}

// deriveOptions pairs Dates[i] with StartTimes[i] when that index exists.
// Options are not deduplicated, and a date without a time stays a placeholder
// slot even on intraday polls.
func deriveOptions(cmd CreateCommand) []models.PollOption {
	options := make([]models.PollOption, 0, len(cmd.Dates))
	for i, date := range cmd.Dates {
		var start *civil.Time
		if cmd.EventType == models.EventIntraday && i < len(cmd.StartTimes) {
			t := cmd.StartTimes[i]
			start = &t
		}
		options = append(options, models.PollOption{
			ID:        uuid.New(),
			Date:      date,
			StartTime: start,
			EndTime:   deriveEndTime(start, cmd.DurationMinutes),
		})
	}
	return options
}

func deriveEndTime(start *civil.Time, durationMinutes *int) *civil.Time {
	if start == nil || durationMinutes == nil {
		return nil
	}
	end := models.AddMinutes(*start, *durationMinutes)
	return &end
}

func computeExpiry(dates []civil.Date, override *civil.Date) civil.Date {
	if override != nil {
		return *override
	}
	last := civil.DateOf(time.Now().UTC())
	for i, date := range dates {
		if i == 0 || last.Before(date) {
			last = date
		}
	}
	return last.AddDays(expiryGraceDays)
}

// GetPublic returns the poll or ErrNotFound.
func (s *Service) GetPublic(pollID uuid.UUID) (models.Poll, error) {
	poll, ok, err := s.polls.FindByID(pollID)
	if err != nil {
		return models.Poll{}, fmt.Errorf("failed to load poll: %w", err)
	}
	if !ok {
		return models.Poll{}, ErrNotFound
	}
	return poll, nil
}

// GetAdmin returns the poll when the supplied secret matches its admin
// secret, ErrUnauthorized otherwise.
func (s *Service) GetAdmin(pollID uuid.UUID, adminSecret string) (models.Poll, error) {
	poll, err := s.GetPublic(pollID)
	if err != nil {
		return models.Poll{}, err
	}
	if !auth.VerifyAdminSecret(poll.AdminSecret, adminSecret) {
		return models.Poll{}, ErrUnauthorized
	}
	return poll, nil
}

// AddOption appends one option to the poll. Intraday polls require a start
// time; all-day polls ignore any supplied one. The end time derives from the
// poll's stored duration. Duplicates by date are accepted.
func (s *Service) AddOption(pollID uuid.UUID, adminSecret string, date civil.Date, startTime *civil.Time) error {
	poll, err := s.GetAdmin(pollID, adminSecret)
	if err != nil {
		return err
	}

	if poll.EventType == models.EventIntraday && startTime == nil {
		return &ValidationError{Reason: "start time required for intraday polls"}
	}
	if poll.EventType != models.EventIntraday {
		startTime = nil
	}

	options := append([]models.PollOption{}, poll.Options...)
	options = append(options, models.PollOption{
		ID:        uuid.New(),
		Date:      date,
		StartTime: startTime,
		EndTime:   deriveEndTime(startTime, poll.DurationMinutes),
	})

	if err := s.polls.Save(poll.WithOptions(options)); err != nil {
		return fmt.Errorf("failed to save poll: %w", err)
	}
	return nil
}

// RemoveOption removes the first option matching the requested slot, at most
// one per call. With a start time the match needs exact date and start-time
// equality; without one only the untimed option for that date matches, so an
// omitted start time can never remove a timed option. No match is a no-op,
// not an error.
func (s *Service) RemoveOption(pollID uuid.UUID, adminSecret string, date civil.Date, startTime *civil.Time) error {
	poll, err := s.GetAdmin(pollID, adminSecret)
	if err != nil {
		return err
	}

	options := append([]models.PollOption{}, poll.Options...)
	for i, option := range options {
		if option.Date != date {
			continue
		}
		if startTime != nil {
			if option.StartTime == nil || *option.StartTime != *startTime {
				continue
			}
			options = append(options[:i], options[i+1:]...)
			break
		}
		if option.StartTime == nil {
			options = append(options[:i], options[i+1:]...)
			break
		}
	}

	if err := s.polls.Save(poll.WithOptions(options)); err != nil {
		return fmt.Errorf("failed to save poll: %w", err)
	}
	return nil
}

// SubmitVoteCommand is the input for SubmitVote. A nil ResponseID means a
// brand-new response under a generated id.
type SubmitVoteCommand struct {
	PollID          uuid.UUID
	ParticipantName string
	Votes           []models.PollVote
	Comment         string
	ResponseID      *uuid.UUID
}

// SubmitVote merges a participant's submission into the poll and returns the
// response id it ended up under.
//
// A supplied response id that matches an existing response is an edit: the
// original creation timestamp is kept, name/comment/votes are replaced. A
// supplied id with no match creates a new response under that exact id.
// Votes are not checked against the current option set; votes for removed
// options stay as-is and get filtered at display time.
func (s *Service) SubmitVote(cmd SubmitVoteCommand) (uuid.UUID, error) {
	poll, err := s.GetPublic(cmd.PollID)
	if err != nil {
		return uuid.Nil, err
	}

	var existing *models.PollResponse
	if cmd.ResponseID != nil {
		for i := range poll.Responses {
			if poll.Responses[i].ID == *cmd.ResponseID {
				existing = &poll.Responses[i]
				break
			}
		}
	}

	responseID := uuid.New()
	if cmd.ResponseID != nil {
		responseID = *cmd.ResponseID
	}
	createdAt := time.Now().UTC()
	if existing != nil {
		createdAt = existing.CreatedAt
	}

	response := models.PollResponse{
		ID:              responseID,
		ParticipantName: cmd.ParticipantName,
		CreatedAt:       createdAt,
		Comment:         cmd.Comment,
		Votes:           cmd.Votes,
	}

	var updated models.Poll
	if cmd.ResponseID != nil {
		updated = poll.ReplaceResponse(response)
	} else {
		updated = poll.AddResponse(response)
	}

	if err := s.polls.Save(updated); err != nil {
		return uuid.Nil, fmt.Errorf("failed to save poll: %w", err)
	}
	return responseID, nil
}
