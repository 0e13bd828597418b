package slack_test

import (
	"context"
	"errors"
	"io"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/mouhcineelarfaoui0-afk/smart-qualiti-flow/pkg/domain/model"
	slackSvc "github.com/mouhcineelarfaoui0-afk/smart-qualiti-flow/pkg/service/slack"
	"github.com/slack-go/slack"
)

type fakeClient struct {
	posted   []string
	uploads  []slack.UploadFileV2Parameters
	content  []string
	postErr  error
	uploadTS string
}

func (f *fakeClient) PostMessage(ctx context.Context, channelID string, options ...slack.MsgOption) (string, string, error) {
	if f.postErr != nil {
		return "", "", f.postErr
	}
	f.posted = append(f.posted, channelID)
	return channelID, "1700000000.000100", nil
}

func (f *fakeClient) UploadFile(ctx context.Context, params slack.UploadFileV2Parameters) (*slack.FileSummary, error) {
	data, err := io.ReadAll(params.Reader)
	if err != nil {
		return nil, err
	}
	f.uploads = append(f.uploads, params)
	f.content = append(f.content, string(data))
	return &slack.FileSummary{ID: "F123", Title: params.Title}, nil
}

func newStats() *model.DashboardStats {
	stats := &model.DashboardStats{}
	stats.NCStats.OpenCount = 6
	stats.NCStats.TotalCount = 10
	stats.NCStats.ComplianceRate = 40
	stats.AuditStats.PlannedCount = 2
	stats.ActionStats.ActiveCount = 3
	stats.DocumentStats.ActiveCount = 4
	stats.UserStats.UserCount = 5
	return stats
}

func TestNotifyReport(t *testing.T) {
	ctx := context.Background()
	report := &model.ExportedReport{
		FileName: "SmartQuali_Dashboard_2025-03-05_14-07.pdf",
		Content:  []byte("%PDF-1.3"),
		Pages:    2,
	}

	t.Run("posts message and uploads in thread", func(t *testing.T) {
		client := &fakeClient{}
		n := slackSvc.NewNotifier(client, "C0123", "SmartQuali - Tableau de Bord")

		gt.NoError(t, n.NotifyReport(ctx, report, newStats())).Required()
		gt.Equal(t, 1, len(client.posted))
		gt.Equal(t, "C0123", client.posted[0])
		gt.Equal(t, 1, len(client.uploads))
		gt.Equal(t, "C0123", client.uploads[0].Channel)
		gt.Equal(t, "1700000000.000100", client.uploads[0].ThreadTimestamp)
		gt.Equal(t, report.FileName, client.uploads[0].Filename)
		gt.Equal(t, 8, client.uploads[0].FileSize)
		gt.Equal(t, "%PDF-1.3", client.content[0])
	})

	t.Run("skips upload without content", func(t *testing.T) {
		client := &fakeClient{}
		n := slackSvc.NewNotifier(client, "C0123", "title")

		gt.NoError(t, n.NotifyReport(ctx, &model.ExportedReport{FileName: "r.pdf"}, nil))
		gt.Equal(t, 1, len(client.posted))
		gt.Equal(t, 0, len(client.uploads))
	})

	t.Run("post failure", func(t *testing.T) {
		client := &fakeClient{postErr: errors.New("channel_not_found")}
		n := slackSvc.NewNotifier(client, "C0123", "title")

		gt.Error(t, n.NotifyReport(ctx, report, nil))
		gt.Equal(t, 0, len(client.uploads))
	})

	t.Run("requires channel", func(t *testing.T) {
		n := slackSvc.NewNotifier(&fakeClient{}, "", "title")
		gt.Error(t, n.NotifyReport(ctx, report, nil))
	})
}

func TestBuildReportBlocks(t *testing.T) {
	report := &model.ExportedReport{FileName: "r.pdf", Pages: 3, URL: "https://storage.googleapis.com/b/reports/r.pdf"}

	t.Run("with stats", func(t *testing.T) {
		blocks := slackSvc.BuildReportBlocks("SmartQuali - Tableau de Bord", report, newStats())
		gt.Equal(t, 4, len(blocks))

		header, ok := blocks[0].(*slack.HeaderBlock)
		gt.True(t, ok)
		gt.Equal(t, "SmartQuali - Tableau de Bord", header.Text.Text)

		section, ok := blocks[1].(*slack.SectionBlock)
		gt.True(t, ok)
		gt.Equal(t, 6, len(section.Fields))
		gt.S(t, section.Fields[0].Text).Contains("40.0%")
		gt.S(t, section.Fields[0].Text).Contains("🔴")
		gt.S(t, section.Fields[1].Text).Contains("6 / 10")

		ctxBlock, ok := blocks[3].(*slack.ContextBlock)
		gt.True(t, ok)
		gt.Equal(t, 1, len(ctxBlock.ContextElements.Elements))
		text, ok := ctxBlock.ContextElements.Elements[0].(*slack.TextBlockObject)
		gt.True(t, ok)
		gt.S(t, text.Text).Contains("<https://storage.googleapis.com/b/reports/r.pdf|r.pdf>")
	})

	t.Run("without stats", func(t *testing.T) {
		blocks := slackSvc.BuildReportBlocks("title", &model.ExportedReport{FileName: "r.pdf", Pages: 1}, nil)
		gt.Equal(t, 3, len(blocks))
	})
}
