package discord

import (
	"bytes"
	"context"
	"fmt"

	"github.com/bwmarrin/discordgo"

	"sitekit/internal/ports/output"
)

var _ output.Notifier = (*Notifier)(nil)

// Notifier forwards feedback to a Discord channel. Only REST calls are
// used; no gateway session is opened.
type Notifier struct {
	session   *discordgo.Session
	channelID string
}

func New(token, channelID string) (*Notifier, error) {
	s, err := discordgo.New("Bot " + token)
	if err != nil {
		return nil, fmt.Errorf("discord: create session: %w", err)
	}
	return &Notifier{session: s, channelID: channelID}, nil
}

func (n *Notifier) Send(ctx context.Context, text string) error {
	if _, err := n.session.ChannelMessageSend(n.channelID, text, discordgo.WithContext(ctx)); err != nil {
		return fmt.Errorf("discord: send message: %w", err)
	}
	return nil
}

func (n *Notifier) SendFile(ctx context.Context, text, filename string, data []byte) error {
	_, err := n.session.ChannelMessageSendComplex(n.channelID, &discordgo.MessageSend{
		Content: text,
		Files: []*discordgo.File{
			{Name: filename, Reader: bytes.NewReader(data)},
		},
	}, discordgo.WithContext(ctx))
	if err != nil {
		return fmt.Errorf("discord: send message with file: %w", err)
	}
	return nil
}
