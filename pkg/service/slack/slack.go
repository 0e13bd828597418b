package slack

import (
	"context"

	"github.com/m-mizutani/goerr/v2"
	"github.com/slack-go/slack"
)

// Client is the subset of the Slack Web API used for report delivery
type Client interface {
	PostMessage(ctx context.Context, channelID string, options ...slack.MsgOption) (string, string, error)
	UploadFile(ctx context.Context, params slack.UploadFileV2Parameters) (*slack.FileSummary, error)
}

// Service provides Slack messaging capabilities
type Service struct {
	client *slack.Client
}

var _ Client = (*Service)(nil)

// New creates a new Slack service
func New(token string, options ...slack.Option) *Service {
	return &Service{
		client: slack.New(token, options...),
	}
}

// PostMessage sends a message to a Slack channel
func (s *Service) PostMessage(ctx context.Context, channelID string, options ...slack.MsgOption) (string, string, error) {
	channel, timestamp, err := s.client.PostMessageContext(ctx, channelID, options...)
	if err != nil {
		return "", "", goerr.Wrap(err, "failed to post message to Slack", goerr.V("channel", channelID))
	}
	return channel, timestamp, nil
}

// UploadFile uploads a file to a Slack channel
func (s *Service) UploadFile(ctx context.Context, params slack.UploadFileV2Parameters) (*slack.FileSummary, error) {
	file, err := s.client.UploadFileV2Context(ctx, params)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to upload file to Slack",
			goerr.V("channel", params.Channel),
			goerr.V("filename", params.Filename))
	}
	return file, nil
}

// AuthTest tests authentication and returns basic information about the team and bot
func (s *Service) AuthTest(ctx context.Context) (*slack.AuthTestResponse, error) {
	resp, err := s.client.AuthTestContext(ctx)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to authenticate with Slack")
	}
	return resp, nil
}
