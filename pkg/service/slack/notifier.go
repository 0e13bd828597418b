package slack

import (
	"bytes"
	"context"
	"fmt"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/mouhcineelarfaoui0-afk/smart-qualiti-flow/pkg/domain/interfaces"
	"github.com/mouhcineelarfaoui0-afk/smart-qualiti-flow/pkg/domain/model"
	"github.com/slack-go/slack"
)

// Notifier posts exported reports to a Slack channel
type Notifier struct {
	client    Client
	channelID string
	title     string
}

var _ interfaces.Notifier = (*Notifier)(nil)

// NewNotifier creates a notifier that posts to channelID. title is used as the message header.
func NewNotifier(client Client, channelID, title string) *Notifier {
	return &Notifier{
		client:    client,
		channelID: channelID,
		title:     title,
	}
}

// NotifyReport posts a summary message and attaches the PDF in its thread
func (n *Notifier) NotifyReport(ctx context.Context, report *model.ExportedReport, stats *model.DashboardStats) error {
	if report == nil {
		return goerr.New("report is required")
	}
	if n.channelID == "" {
		return goerr.New("channel ID is required")
	}

	blocks := BuildReportBlocks(n.title, report, stats)
	fallback := fmt.Sprintf("%s: %s", n.title, report.FileName)

	_, ts, err := n.client.PostMessage(ctx, n.channelID,
		slack.MsgOptionText(fallback, false),
		slack.MsgOptionBlocks(blocks...),
	)
	if err != nil {
		return goerr.Wrap(err, "failed to post report message", goerr.V("file", report.FileName))
	}

	if len(report.Content) == 0 {
		return nil
	}

	file, err := n.client.UploadFile(ctx, slack.UploadFileV2Parameters{
		Reader:          bytes.NewReader(report.Content),
		FileSize:        len(report.Content),
		Filename:        report.FileName,
		Title:           report.FileName,
		Channel:         n.channelID,
		ThreadTimestamp: ts,
	})
	if err != nil {
		return goerr.Wrap(err, "failed to attach report", goerr.V("file", report.FileName))
	}

	ctxlog.From(ctx).Info("Report posted to Slack",
		"channel", n.channelID,
		"file", report.FileName,
		"file_id", file.ID,
	)
	return nil
}
