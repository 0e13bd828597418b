package interfaces

//go:generate moq -out mocks/notifier_mock.go -pkg mocks . Notifier

import (
	"context"

	"github.com/mouhcineelarfaoui0-afk/smart-qualiti-flow/pkg/domain/model"
)

// Notifier announces generated reports to a team channel
type Notifier interface {
	NotifyReport(ctx context.Context, report *model.ExportedReport, stats *model.DashboardStats) error
}
