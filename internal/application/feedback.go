package application

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"sitekit/internal/domain/entities"
	"sitekit/internal/ports/input"
	"sitekit/internal/ports/output"
)

// Per-field limits applied before forwarding. The message budget leaves
// room for captions within the chat backends' message size caps.
const (
	maxTypeLen      = 64
	maxLangLen      = 16
	maxEmailLen     = 254
	maxMessageLen   = 3500
	maxUserAgentLen = 512
	maxSentAtLen    = 64
	maxFilenameLen  = 255
)

var _ input.FeedbackSender = (*FeedbackService)(nil)

// FeedbackService relays feedback submissions to a chat backend.
type FeedbackService struct {
	notifier   output.Notifier
	translator output.T
}

func NewFeedbackService(notifier output.Notifier, translator output.T) *FeedbackService {
	return &FeedbackService{
		notifier:   notifier,
		translator: translator,
	}
}

// Submit truncates the submission's fields, composes the chat message and
// forwards it exactly once. The file-capable call is used only when a
// non-empty attachment is present.
func (s *FeedbackService) Submit(ctx context.Context, fb *entities.Feedback) error {
	if s.notifier == nil {
		return fmt.Errorf("submit feedback: no notifier")
	}
	if fb.ID == "" {
		fb.ID = uuid.NewString()
	}
	s.truncate(fb)

	text := s.composeMessage(fb)
	if fb.HasAttachment() {
		if err := s.notifier.SendFile(ctx, text, fb.Attachment.Name, fb.Attachment.Data); err != nil {
			return fmt.Errorf("forward feedback with file: %w", err)
		}
		return nil
	}
	if err := s.notifier.Send(ctx, text); err != nil {
		return fmt.Errorf("forward feedback: %w", err)
	}
	return nil
}

func (s *FeedbackService) truncate(fb *entities.Feedback) {
	fb.Type = truncateRunes(fb.Type, maxTypeLen)
	fb.Lang = truncateRunes(fb.Lang, maxLangLen)
	fb.Email = truncateRunes(fb.Email, maxEmailLen)
	fb.Message = truncateRunes(fb.Message, maxMessageLen)
	fb.SentAt = truncateRunes(fb.SentAt, maxSentAtLen)
	fb.UserAgent = truncateRunes(fb.UserAgent, maxUserAgentLen)
	if fb.Attachment != nil {
		fb.Attachment.Name = truncateRunes(fb.Attachment.Name, maxFilenameLen)
	}
}

// composeMessage builds the forwarded chat text. Captions are localized to
// the submission's locale so the receiving team sees which language the
// sender was using.
func (s *FeedbackService) composeMessage(fb *entities.Feedback) string {
	var b strings.Builder
	b.WriteString(s.caption(fb.Lang, "feedback.title"))
	b.WriteString("\n\n")

	writeField := func(key, value string) {
		if value == "" {
			return
		}
		fmt.Fprintf(&b, "%s: %s\n", s.caption(fb.Lang, key), value)
	}
	writeField("feedback.field.type", fb.Type)
	writeField("feedback.field.locale", fb.Lang)
	writeField("feedback.field.email", fb.Email)
	writeField("feedback.field.sent", fb.SentAt)
	writeField("feedback.field.useragent", fb.UserAgent)

	if fb.Message != "" {
		fmt.Fprintf(&b, "\n%s:\n%s\n", s.caption(fb.Lang, "feedback.field.message"), fb.Message)
	}
	fmt.Fprintf(&b, "\n#%s", fb.ID)
	return b.String()
}

func (s *FeedbackService) caption(locale, key string) string {
	if s.translator == nil {
		return key
	}
	return s.translator.T(locale, key, nil)
}

func truncateRunes(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max])
}
