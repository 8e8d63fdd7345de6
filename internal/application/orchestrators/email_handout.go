package orchestrators

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"lessonportal/internal/adapters/email"
	"lessonportal/internal/adapters/pdf"
	"lessonportal/internal/application/handout"
	"lessonportal/internal/domain/course"
	"lessonportal/internal/domain/lesson"
)

// EmailHandoutInput carries input for the email-handout orchestrator.
type EmailHandoutInput struct {
	Lesson   lesson.Definition
	Identity handout.Identity
	To       string // recipient address, normally the viewer's own email
	Now      time.Time
}

// EmailHandoutResult reports a queued delivery.
type EmailHandoutResult struct {
	Reference string // internal reference for support lookups
	MessageID string // provider message ID
	Filename  string // attachment filename
}

// EmailHandoutDeps holds dependencies for EmailHandout.
type EmailHandoutDeps struct {
	Exporter pdf.Exporter
	Sender   email.Sender
	From     string
	ReplyTo  string
}

var ErrNoRecipient = errors.New("no recipient address for handout delivery")

// ExecuteEmailHandout renders the lesson handout to PDF and emails it as
// an attachment.
// PRE: input.Lesson is a catalog lesson; deps.Exporter and deps.Sender are set
// POST: On success the handout is queued with the provider; the PDF is the
// same document the download path produces
func ExecuteEmailHandout(ctx context.Context, input EmailHandoutInput, deps EmailHandoutDeps) (EmailHandoutResult, error) {
	if input.To == "" {
		return EmailHandoutResult{}, ErrNoRecipient
	}
	if err := deps.Exporter.Available(); err != nil {
		return EmailHandoutResult{}, fmt.Errorf("handout export unavailable: %w", err)
	}

	ref := uuid.NewString()

	fragment, err := handout.BuildFragment(input.Lesson, input.Identity, input.Now)
	if err != nil {
		return EmailHandoutResult{}, fmt.Errorf("handout render failed: %w", err)
	}

	doc := pdf.Document{
		Title:   input.Lesson.Title(),
		Author:  input.Identity.Instructor.FullName(),
		Subject: "Course handout",
		Program: course.ProgramFilter,
		CoverLines: []string{
			input.Identity.Viewer.FullName(),
			input.Identity.Viewer.Email,
			input.Now.Format("2 January 2006"),
			fmt.Sprintf("Access level: %s", input.Identity.AccessLabel),
		},
		HeaderLeft:  input.Lesson.Title(),
		HeaderRight: input.Now.Format("2 January 2006"),
		FooterEmail: input.Identity.Viewer.Email,
		BodyHTML:    string(fragment),
	}

	data, err := deps.Exporter.Render(doc)
	if err != nil {
		slog.Error("handout_email_render_failed", "reference", ref, "week", input.Lesson.Week, "error", err)
		return EmailHandoutResult{}, fmt.Errorf("handout render failed: %w", err)
	}

	filename := input.Lesson.ExportFilename(input.Now)
	sent, err := deps.Sender.Send(ctx, email.SendRequest{
		To:      []string{input.To},
		From:    deps.From,
		ReplyTo: deps.ReplyTo,
		Subject: fmt.Sprintf("Your handout: %s", input.Lesson.Title()),
		HTML: fmt.Sprintf("<p>Hi %s,</p><p>Your handout for <strong>%s</strong> is attached.</p><p>— %s</p>",
			input.Identity.Viewer.FirstName, input.Lesson.Title(), course.ProgramFilter),
		Attachments: []email.Attachment{{
			Filename:    filename,
			ContentType: "application/pdf",
			Content:     data,
		}},
	})
	if err != nil {
		slog.Error("handout_email_send_failed", "reference", ref, "week", input.Lesson.Week, "error", err)
		return EmailHandoutResult{}, fmt.Errorf("handout email failed: %w", err)
	}

	slog.Info("handout_emailed", "reference", ref, "week", input.Lesson.Week,
		"to", input.To, "message_id", sent.MessageID, "bytes", len(data))

	return EmailHandoutResult{Reference: ref, MessageID: sent.MessageID, Filename: filename}, nil
}
