// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"encoding/json"
	"fmt"
	"time"

	"cloud.google.com/go/civil"
	"github.com/google/uuid"

	"github.com/danielhkuo/quickly-meet/models"
)

const pollSchemaVersion = "1"

// pollDoc is the durable JSON shape of a poll. The admin secret lives under
// access.adminToken so the document can grow password hashes or custom slugs
// later without another migration.
type pollDoc struct {
	PollID        uuid.UUID     `json:"pollId"`
	SchemaVersion string        `json:"schemaVersion"`
	Title         string        `json:"title"`
	Description   string        `json:"description,omitempty"`
	Author        authorDoc     `json:"author"`
	Access        accessDoc     `json:"access"`
	CreatedAt     time.Time     `json:"createdAt"`
	UpdatedAt     time.Time     `json:"updatedAt"`
	ExpiresAt     civil.Date    `json:"expiresAt"`
	Options       optionsDoc    `json:"options"`
	Responses     []responseDoc `json:"responses"`
}

type authorDoc struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

type accessDoc struct {
	AdminToken string `json:"adminToken"`
}

type optionsDoc struct {
	EventType       string          `json:"eventType"`
	DurationMinutes *int            `json:"durationMinutes,omitempty"`
	Items           []optionItemDoc `json:"items"`
}

type optionItemDoc struct {
	OptionID  uuid.UUID   `json:"optionId"`
	Date      civil.Date  `json:"date"`
	StartTime *civil.Time `json:"startTime,omitempty"`
	EndTime   *civil.Time `json:"endTime,omitempty"`
}

type responseDoc struct {
	ResponseID      uuid.UUID `json:"responseId"`
	ParticipantName string    `json:"participantName"`
	CreatedAt       time.Time `json:"createdAt"`
	Comment         string    `json:"comment,omitempty"`
	Votes           []voteDoc `json:"votes"`
}

type voteDoc struct {
	OptionID uuid.UUID `json:"optionId"`
	Value    string    `json:"value"`
}

func encodePoll(poll models.Poll) ([]byte, error) {
	items := make([]optionItemDoc, 0, len(poll.Options))
	for _, opt := range poll.Options {
		items = append(items, optionItemDoc{
			OptionID:  opt.ID,
			Date:      opt.Date,
			StartTime: opt.StartTime,
			EndTime:   opt.EndTime,
		})
	}

	responses := make([]responseDoc, 0, len(poll.Responses))
	for _, resp := range poll.Responses {
		votes := make([]voteDoc, 0, len(resp.Votes))
		for _, vote := range resp.Votes {
			votes = append(votes, voteDoc{OptionID: vote.OptionID, Value: string(vote.Value)})
		}
		responses = append(responses, responseDoc{
			ResponseID:      resp.ID,
			ParticipantName: resp.ParticipantName,
			CreatedAt:       resp.CreatedAt,
			Comment:         resp.Comment,
			Votes:           votes,
		})
	}

	doc := pollDoc{
		PollID:        poll.ID,
		SchemaVersion: pollSchemaVersion,
		Title:         poll.Title,
		Description:   poll.Description,
		Author:        authorDoc{Name: poll.AuthorName, Email: poll.AuthorEmail},
		Access:        accessDoc{AdminToken: poll.AdminSecret},
		CreatedAt:     poll.CreatedAt,
		UpdatedAt:     poll.UpdatedAt,
		ExpiresAt:     poll.ExpiresAt,
		Options: optionsDoc{
			EventType:       string(poll.EventType),
			DurationMinutes: poll.DurationMinutes,
			Items:           items,
		},
		Responses: responses,
	}

	payload, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("failed to serialize poll: %w", err)
	}
	return payload, nil
}

func decodePoll(payload []byte) (models.Poll, error) {
	var doc pollDoc
	if err := json.Unmarshal(payload, &doc); err != nil {
		return models.Poll{}, fmt.Errorf("failed to deserialize poll: %w", err)
	}

	options := make([]models.PollOption, 0, len(doc.Options.Items))
	for _, item := range doc.Options.Items {
		options = append(options, models.PollOption{
			ID:        item.OptionID,
			Date:      item.Date,
			StartTime: item.StartTime,
			EndTime:   item.EndTime,
		})
	}

	responses := make([]models.PollResponse, 0, len(doc.Responses))
	for _, resp := range doc.Responses {
		votes := make([]models.PollVote, 0, len(resp.Votes))
		for _, vote := range resp.Votes {
			votes = append(votes, models.PollVote{OptionID: vote.OptionID, Value: models.VoteValue(vote.Value)})
		}
		responses = append(responses, models.PollResponse{
			ID:              resp.ResponseID,
			ParticipantName: resp.ParticipantName,
			CreatedAt:       resp.CreatedAt,
			Comment:         resp.Comment,
			Votes:           votes,
		})
	}

	return models.Poll{
		ID:              doc.PollID,
		AdminSecret:     doc.Access.AdminToken,
		Title:           doc.Title,
		Description:     doc.Description,
		AuthorName:      doc.Author.Name,
		AuthorEmail:     doc.Author.Email,
		EventType:       models.EventType(doc.Options.EventType),
		DurationMinutes: doc.Options.DurationMinutes,
		Options:         options,
		Responses:       responses,
		CreatedAt:       doc.CreatedAt,
		UpdatedAt:       doc.UpdatedAt,
		ExpiresAt:       doc.ExpiresAt,
	}, nil
}

// draftDoc is the durable JSON shape of a wizard draft. New documents carry
// the grouped dayOptions shape; older ones carried the flat dates/startTimes
// pair, which the reader still accepts.
type draftDoc struct {
	AuthorName        string         `json:"authorName,omitempty"`
	AuthorEmail       string         `json:"authorEmail,omitempty"`
	Title             string         `json:"title,omitempty"`
	Description       string         `json:"description,omitempty"`
	EventType         string         `json:"eventType"`
	DurationMinutes   *int           `json:"durationMinutes,omitempty"`
	DayOptions        []dayOptionDoc `json:"dayOptions"`
	Dates             []civil.Date   `json:"dates,omitempty"`
	StartTimes        []civil.Time   `json:"startTimes,omitempty"`
	ExpiresAtOverride *civil.Date    `json:"expiresAtOverride,omitempty"`
}

type dayOptionDoc struct {
	Day   civil.Date   `json:"day"`
	Times []civil.Time `json:"times"`
}

func encodeDraft(draft models.WizardDraft) ([]byte, error) {
	groups := draft.DayOptions()
	docGroups := make([]dayOptionDoc, 0, len(groups))
	for _, group := range groups {
		docGroups = append(docGroups, dayOptionDoc{Day: group.Day, Times: group.Times})
	}

	doc := draftDoc{
		AuthorName:        draft.AuthorName,
		AuthorEmail:       draft.AuthorEmail,
		Title:             draft.Title,
		Description:       draft.Description,
		EventType:         string(draft.EventType),
		DurationMinutes:   draft.DurationMinutes,
		DayOptions:        docGroups,
		ExpiresAtOverride: draft.ExpiresAtOverride,
	}

	payload, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("failed to serialize draft: %w", err)
	}
	return payload, nil
}

func decodeDraft(payload []byte) (models.WizardDraft, error) {
	var doc draftDoc
	if err := json.Unmarshal(payload, &doc); err != nil {
		return models.WizardDraft{}, fmt.Errorf("failed to deserialize draft: %w", err)
	}

	eventType := models.EventType(doc.EventType)
	if doc.EventType == "" {
		eventType = models.EventAllDay
	}

	draft := models.WizardDraft{
		AuthorName:        doc.AuthorName,
		AuthorEmail:       doc.AuthorEmail,
		Title:             doc.Title,
		Description:       doc.Description,
		EventType:         eventType,
		DurationMinutes:   doc.DurationMinutes,
		Dates:             []civil.Date{},
		StartTimes:        []civil.Time{},
		ExpiresAtOverride: doc.ExpiresAtOverride,
	}

	if doc.DayOptions != nil {
		groups := make([]models.DayOption, 0, len(doc.DayOptions))
		for _, group := range doc.DayOptions {
			groups = append(groups, models.DayOption{Day: group.Day, Times: group.Times})
		}
		draft.SetDayOptions(groups)
		return draft, nil
	}

	// Legacy flat shape. Absent lists mean empty, not an error.
	if doc.Dates != nil {
		draft.Dates = doc.Dates
	}
	if doc.StartTimes != nil {
		draft.StartTimes = doc.StartTimes
	}
	return draft, nil
}
