package slack

import (
	"bytes"
	"context"
	"fmt"

	"github.com/slack-go/slack"

	"sitekit/internal/ports/output"
)

var _ output.Notifier = (*Notifier)(nil)

// Notifier forwards feedback to a Slack channel.
type Notifier struct {
	client    *slack.Client
	channelID string
}

func New(token, channelID string) *Notifier {
	return &Notifier{
		client:    slack.New(token),
		channelID: channelID,
	}
}

func (n *Notifier) Send(ctx context.Context, text string) error {
	_, _, err := n.client.PostMessageContext(ctx, n.channelID,
		slack.MsgOptionText(text, false),
	)
	if err != nil {
		return fmt.Errorf("slack: post message: %w", err)
	}
	return nil
}

func (n *Notifier) SendFile(ctx context.Context, text, filename string, data []byte) error {
	_, err := n.client.UploadFileV2Context(ctx, slack.UploadFileV2Parameters{
		Channel:        n.channelID,
		Filename:       filename,
		FileSize:       len(data),
		Reader:         bytes.NewReader(data),
		InitialComment: text,
	})
	if err != nil {
		return fmt.Errorf("slack: upload file: %w", err)
	}
	return nil
}
