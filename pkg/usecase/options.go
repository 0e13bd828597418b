package usecase

import (
	"context"
	"time"

	"github.com/mouhcineelarfaoui0-afk/smart-qualiti-flow/pkg/domain/interfaces"
	"github.com/mouhcineelarfaoui0-afk/smart-qualiti-flow/pkg/domain/model"
	"github.com/mouhcineelarfaoui0-afk/smart-qualiti-flow/pkg/service/cache"
)

// options holds the optional collaborators of the use cases
type options struct {
	now      func() time.Time
	cache    *cache.QueryCache
	storage  interfaces.BlobStorage
	notifier interfaces.Notifier
	stats    DashboardUseCase
	save     ReportSaver
}

// ReportSaver persists a rendered report locally. It runs before the report is archived.
type ReportSaver func(ctx context.Context, result *model.ExportedReport) error

// Option is a functional option for configuring use cases
type Option func(*options)

// WithClock sets the clock. Defaults to time.Now.
func WithClock(now func() time.Time) Option {
	return func(o *options) {
		o.now = now
	}
}

// WithQueryCache shares a query cache between readers and writers
func WithQueryCache(c *cache.QueryCache) Option {
	return func(o *options) {
		o.cache = c
	}
}

// WithBlobStorage enables archiving reports and uploading document files
func WithBlobStorage(s interfaces.BlobStorage) Option {
	return func(o *options) {
		o.storage = s
	}
}

// WithNotifier enables report notifications
func WithNotifier(n interfaces.Notifier) Option {
	return func(o *options) {
		o.notifier = n
	}
}

// WithStatsSource sets where report notifications get their summary figures from
func WithStatsSource(d DashboardUseCase) Option {
	return func(o *options) {
		o.stats = d
	}
}

// WithReportSaver saves each report before it is archived. A failing save
// aborts the export and nothing is archived.
func WithReportSaver(save ReportSaver) Option {
	return func(o *options) {
		o.save = save
	}
}

func newOptions(opts []Option) *options {
	o := &options{now: time.Now}
	for _, opt := range opts {
		opt(o)
	}
	return o
}
