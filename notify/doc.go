// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package notify sends the poll-created email.

Senders report success as a boolean, never an error: poll creation must
succeed even when the notification does not. SMTPSender delivers via a plain
SMTP server; NoopSender is wired when no server is configured and always
reports false.
*/
package notify
