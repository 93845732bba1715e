package communication

import (
	"context"
	"fmt"

	"github.com/slack-go/slack"
)

// Notifier reports operational events to the team.
type Notifier interface {
	Info(ctx context.Context, message string) error
	Error(ctx context.Context, message string) error
}

type SlackPoster interface {
	PostMessageContext(ctx context.Context, channelID string, options ...slack.MsgOption) (string, string, error)
}

type Slack struct {
	client  SlackPoster
	options SlackOption
}

type SlackOption struct {
	InfoChannelID  string
	ErrorChannelID string
}

func NewSlack(token string, options SlackOption) *Slack {
	return NewSlackWithClient(slack.New(token), options)
}

func NewSlackWithClient(client SlackPoster, options SlackOption) *Slack {
	return &Slack{client: client, options: options}
}

func (s *Slack) postMessage(ctx context.Context, channelID, message string) error {
	if channelID == "" {
		return nil
	}
	_, _, err := s.client.PostMessageContext(ctx,
		channelID,
		slack.MsgOptionText(message, false),
		slack.MsgOptionAsUser(true),
	)
	if err != nil {
		return fmt.Errorf("failed to post message to Slack: %w", err)
	}
	return nil
}

func (s *Slack) Info(ctx context.Context, message string) error {
	return s.postMessage(ctx, s.options.InfoChannelID, message)
}

func (s *Slack) Error(ctx context.Context, message string) error {
	return s.postMessage(ctx, s.options.ErrorChannelID, message)
}

// Noop drops every message.
type Noop struct{}

func (Noop) Info(context.Context, string) error  { return nil }
func (Noop) Error(context.Context, string) error { return nil }
