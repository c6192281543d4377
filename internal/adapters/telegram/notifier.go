package telegram

import (
	"context"
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"sitekit/internal/ports/output"
)

var _ output.Notifier = (*Notifier)(nil)

// Notifier forwards feedback to a Telegram chat through the Bot API.
type Notifier struct {
	bot    *tgbotapi.BotAPI
	chatID int64
}

// New authenticates against the Bot API and binds the target chat.
func New(token string, chatID int64) (*Notifier, error) {
	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("telegram: authenticate bot: %w", err)
	}
	return &Notifier{bot: bot, chatID: chatID}, nil
}

func (n *Notifier) Send(ctx context.Context, text string) error {
	msg := tgbotapi.NewMessage(n.chatID, text)
	if _, err := n.bot.Send(msg); err != nil {
		return fmt.Errorf("telegram: sendMessage: %w", err)
	}
	return nil
}

// SendFile uses sendDocument so the attachment arrives as a downloadable
// file with the feedback text as its caption.
func (n *Notifier) SendFile(ctx context.Context, text, filename string, data []byte) error {
	doc := tgbotapi.NewDocument(n.chatID, tgbotapi.FileBytes{Name: filename, Bytes: data})
	doc.Caption = text
	if _, err := n.bot.Send(doc); err != nil {
		return fmt.Errorf("telegram: sendDocument: %w", err)
	}
	return nil
}
