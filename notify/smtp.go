// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package notify

import (
	"log/slog"
	"net/smtp"
	"strings"
)

// SMTPSender mails the author their admin and vote links after creation.
type SMTPSender struct {
	addr          string
	from          string
	subjectPrefix string
	publicBaseURL string
}

func NewSMTPSender(addr, from, subjectPrefix, publicBaseURL string) *SMTPSender {
	return &SMTPSender{
		addr:          addr,
		from:          from,
		subjectPrefix: strings.TrimSpace(subjectPrefix),
		publicBaseURL: strings.TrimSuffix(strings.TrimSpace(publicBaseURL), "/"),
	}
}

func (s *SMTPSender) SendPollCreated(email PollCreatedEmail) bool {
	subject, body := s.render(email)

	msg := "From: " + s.from + "\r\n" +
		"To: " + email.AuthorEmail + "\r\n" +
		"Subject: " + subject + "\r\n" +
		"\r\n" +
		body

	if err := smtp.SendMail(s.addr, nil, s.from, []string{email.AuthorEmail}, []byte(msg)); err != nil {
		slog.Warn("failed to send poll created email", "poll_id", email.PollID, "error", err)
		return false
	}
	return true
}

func (s *SMTPSender) render(email PollCreatedEmail) (subject, body string) {
	pollID := email.PollID.String()
	adminURL := s.absoluteURL("/poll/" + pollID + "-" + email.AdminSecret)
	voteURL := s.absoluteURL("/poll/" + pollID)

	subject = "Poll created: " + email.Title
	if s.subjectPrefix != "" {
		subject = s.subjectPrefix + " " + subject
	}

	body = "Hello " + email.AuthorName + ",\n\n" +
		"your poll \"" + email.Title + "\" has been created successfully.\n\n" +
		"Admin URL:\n" +
		adminURL + "\n\n" +
		"Vote URL:\n" +
		voteURL + "\n"
	return subject, body
}

func (s *SMTPSender) absoluteURL(path string) string {
	if s.publicBaseURL == "" {
		return path
	}
	return s.publicBaseURL + path
}
