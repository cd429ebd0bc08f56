// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package polls implements the poll use cases: creation, public and admin
reads, option mutation, and vote submission.

# Operations

	result, err := svc.Create(cmd)                       // derive options, persist, notify
	poll, err := svc.GetPublic(pollID)                   // or ErrNotFound
	poll, err := svc.GetAdmin(pollID, secret)            // or ErrUnauthorized
	err := svc.AddOption(pollID, secret, date, start)    // admin only
	err := svc.RemoveOption(pollID, secret, date, start) // admin only, first match
	id, err := svc.SubmitVote(cmd)                       // new, edit, or recreate

# Error Taxonomy

Exactly three error kinds leave this package: ErrNotFound, ErrUnauthorized,
and ValidationError. All are terminal for the current operation; nothing is
retried internally and nothing is fatal to the process.

# Consistency

Operations are synchronous and stateless. Each one loads a snapshot, builds
the complete new poll value, and saves it. Concurrent mutations of the same
poll race last-write-wins at the store; see the store package.
*/
package polls
