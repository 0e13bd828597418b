package slack

import (
	"fmt"
	"strconv"

	"github.com/mouhcineelarfaoui0-afk/smart-qualiti-flow/pkg/domain/model"
	"github.com/slack-go/slack"
)

// complianceEmoji returns an emoji for the compliance rate
func complianceEmoji(rate float64) string {
	switch {
	case rate >= 90:
		return "🟢"
	case rate >= 70:
		return "🟠"
	default:
		return "🔴"
	}
}

// formatRate formats a compliance rate with one decimal, as shown on the dashboard
func formatRate(rate float64) string {
	return strconv.FormatFloat(rate, 'f', 1, 64) + "%"
}

// BuildReportBlocks builds the message announcing an exported dashboard report
func BuildReportBlocks(title string, report *model.ExportedReport, stats *model.DashboardStats) []slack.Block {
	blocks := []slack.Block{
		slack.NewHeaderBlock(
			slack.NewTextBlockObject(slack.PlainTextType, title, false, false),
		),
	}

	if stats != nil {
		nc := stats.NCStats
		fields := []*slack.TextBlockObject{
			slack.NewTextBlockObject(slack.MarkdownType,
				fmt.Sprintf("*Taux de conformité:*\n%s %s", complianceEmoji(nc.ComplianceRate), formatRate(nc.ComplianceRate)),
				false, false),
			slack.NewTextBlockObject(slack.MarkdownType,
				fmt.Sprintf("*NC ouvertes:*\n%d / %d", nc.OpenCount, nc.TotalCount),
				false, false),
			slack.NewTextBlockObject(slack.MarkdownType,
				fmt.Sprintf("*Audits ce mois:*\n%d", stats.AuditStats.PlannedCount),
				false, false),
			slack.NewTextBlockObject(slack.MarkdownType,
				fmt.Sprintf("*Actions en cours:*\n%d", stats.ActionStats.ActiveCount),
				false, false),
			slack.NewTextBlockObject(slack.MarkdownType,
				fmt.Sprintf("*Documents actifs:*\n%d", stats.DocumentStats.ActiveCount),
				false, false),
			slack.NewTextBlockObject(slack.MarkdownType,
				fmt.Sprintf("*Utilisateurs:*\n%d", stats.UserStats.UserCount),
				false, false),
		}
		blocks = append(blocks, slack.NewSectionBlock(nil, fields, nil))
	}

	blocks = append(blocks, slack.NewDividerBlock())

	file := fmt.Sprintf("📄 `%s` (%d pages)", report.FileName, report.Pages)
	if report.URL != "" {
		file = fmt.Sprintf("📄 <%s|%s> (%d pages)", report.URL, report.FileName, report.Pages)
	}
	blocks = append(blocks, slack.NewContextBlock(
		"",
		slack.NewTextBlockObject(slack.MarkdownType, file, false, false),
	))

	return blocks
}
