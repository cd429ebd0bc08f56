// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

import "cloud.google.com/go/civil"

// WizardDraft is the working state of the multi-step poll creation wizard.
// It has no identity of its own; the draft store keys it externally.
//
// Internally the selection is a flat, index-aligned pair of lists:
// Dates[i] is paired with StartTimes[i] when that index exists. The grouped
// day-option shape produced by DayOptions is what goes on the wire, because
// it can say "this day is selected but has no times yet" without positional
// ambiguity.
type WizardDraft struct {
	AuthorName        string
	AuthorEmail       string
	Title             string
	Description       string
	EventType         EventType
	DurationMinutes   *int
	Dates             []civil.Date
	StartTimes        []civil.Time
	ExpiresAtOverride *civil.Date
}

// DayOption groups one selected day with its selected times. An empty Times
// slice still counts as a selected day.
type DayOption struct {
	Day   civil.Date
	Times []civil.Time
}

// DayOptions converts the flat selection into day groups.
//
// For INTRADAY drafts consecutive equal dates fold into one group, consuming
// one start time per date entry for as long as start times remain; a date
// entry past the end of the time list contributes a slot with no time.
// For other drafts every date becomes its own group with no times, including
// repeated dates.
func (d WizardDraft) DayOptions() []DayOption {
	groups := make([]DayOption, 0, len(d.Dates))
	if d.EventType != EventIntraday {
		for _, date := range d.Dates {
			groups = append(groups, DayOption{Day: date, Times: []civil.Time{}})
		}
		return groups
	}

	var previous civil.Date
	open := false
	times := []civil.Time{}
	next := 0
	for _, date := range d.Dates {
		if !open || previous != date {
			if open {
				groups = append(groups, DayOption{Day: previous, Times: times})
			}
			previous = date
			open = true
			times = []civil.Time{}
		}
		if next < len(d.StartTimes) {
			times = append(times, d.StartTimes[next])
			next++
		}
	}
	if open {
		groups = append(groups, DayOption{Day: previous, Times: times})
	}
	return groups
}

// SetDayOptions rebuilds the flat selection from day groups. The draft's
// event kind must already be set: for INTRADAY drafts a group with times
// expands into one (date, time) pair per time, anything else flattens to a
// single date with no time. Groups with a zero day are skipped; a well-formed
// writer never produces them, but the reader must not fail on one.
func (d *WizardDraft) SetDayOptions(groups []DayOption) {
	dates := []civil.Date{}
	startTimes := []civil.Time{}
	for _, group := range groups {
		if !group.Day.IsValid() {
			continue
		}
		if d.EventType == EventIntraday && len(group.Times) > 0 {
			for _, t := range group.Times {
				dates = append(dates, group.Day)
				startTimes = append(startTimes, t)
			}
			continue
		}
		dates = append(dates, group.Day)
	}
	d.Dates = dates
	d.StartTimes = startTimes
}
