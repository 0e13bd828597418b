package config

import (
	"log/slog"

	"github.com/mouhcineelarfaoui0-afk/smart-qualiti-flow/pkg/domain/interfaces"
	slackSvc "github.com/mouhcineelarfaoui0-afk/smart-qualiti-flow/pkg/service/slack"
	"github.com/urfave/cli/v3"
)

// Slack holds the configuration of exported report notifications
type Slack struct {
	OAuthToken string
	ChannelID  string
}

// Flags returns CLI flags for Slack configuration
func (s *Slack) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "slack-oauth-token",
			Usage:       "Slack bot token used to post exported reports",
			Category:    "Slack",
			Sources:     cli.EnvVars("SMARTQUALI_SLACK_OAUTH_TOKEN"),
			Destination: &s.OAuthToken,
		},
		&cli.StringFlag{
			Name:        "slack-channel",
			Usage:       "Slack channel ID receiving exported reports",
			Category:    "Slack",
			Sources:     cli.EnvVars("SMARTQUALI_SLACK_CHANNEL"),
			Destination: &s.ChannelID,
		},
	}
}

// IsConfigured checks if Slack notification is enabled
func (s *Slack) IsConfigured() bool {
	return s.OAuthToken != "" && s.ChannelID != ""
}

// ConfigureOptional creates a report notifier if configured, returns nil if not
func (s *Slack) ConfigureOptional(logger *slog.Logger, title string) interfaces.Notifier {
	if !s.IsConfigured() {
		logger.Debug("Slack not configured, exported reports will not be posted")
		return nil
	}

	logger.Info("Configuring Slack notifier", "channel", s.ChannelID)
	return slackSvc.NewNotifier(slackSvc.New(s.OAuthToken), s.ChannelID, title)
}

// LogValue returns structured log value
func (s Slack) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Bool("has_oauth_token", s.OAuthToken != ""),
		slog.String("channel", s.ChannelID),
	)
}
