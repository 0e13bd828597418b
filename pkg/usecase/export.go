package usecase

import (
	"bytes"
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/mouhcineelarfaoui0-afk/smart-qualiti-flow/pkg/domain/interfaces"
	"github.com/mouhcineelarfaoui0-afk/smart-qualiti-flow/pkg/domain/model"
	"github.com/mouhcineelarfaoui0-afk/smart-qualiti-flow/pkg/service/report"
	"github.com/mouhcineelarfaoui0-afk/smart-qualiti-flow/pkg/utils/async"
)

// ReportPathPrefix is the blob storage folder of archived reports
const ReportPathPrefix = "reports/"

// Export turns a rendered dashboard region into a paginated PDF report
type Export struct {
	rasterizer interfaces.Rasterizer
	config     model.ReportConfig
	loc        *time.Location
	now        func() time.Time
	storage    interfaces.BlobStorage
	notifier   interfaces.Notifier
	stats      DashboardUseCase
	save       ReportSaver

	inFlight atomic.Int32
	mu       sync.Mutex
	state    model.ExportState
}

var _ ExportUseCase = (*Export)(nil)

// NewExport creates an export use case
func NewExport(rasterizer interfaces.Rasterizer, config model.ReportConfig, opts ...Option) (*Export, error) {
	if rasterizer == nil {
		return nil, goerr.New("rasterizer is required")
	}
	if config.FilePrefix == "" {
		return nil, goerr.New("report file prefix is required", goerr.T(model.ErrTagValidation))
	}
	loc, err := config.Location()
	if err != nil {
		return nil, err
	}

	o := newOptions(opts)
	return &Export{
		rasterizer: rasterizer,
		config:     config,
		loc:        loc,
		now:        o.now,
		storage:    o.storage,
		notifier:   o.notifier,
		stats:      o.stats,
		save:       o.save,
		state:      model.ExportStateIdle,
	}, nil
}

// IsExporting reports whether any export is in flight
func (e *Export) IsExporting() bool {
	return e.inFlight.Load() > 0
}

// State returns the step of the most recently advanced export
func (e *Export) State() model.ExportState {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.state
}

func (e *Export) setState(ctx context.Context, s model.ExportState) {
	e.mu.Lock()
	prev := e.state
	e.state = s
	e.mu.Unlock()

	ctxlog.From(ctx).Debug("export state changed", "from", prev.String(), "to", s.String())
}

// ExportRegion captures the region, lays it out on A4 pages and renders the PDF.
// On failure the error is logged and returned and nothing is saved.
func (e *Export) ExportRegion(ctx context.Context, regionID string) (*model.ExportedReport, error) {
	e.inFlight.Add(1)
	defer e.inFlight.Add(-1)

	logger := ctxlog.From(ctx).With("region", regionID)
	ctx = ctxlog.With(ctx, logger)

	result, err := e.export(ctx, regionID)
	if err != nil {
		e.setState(ctx, model.ExportStateFailed)
		logger.Error("Failed to export report", "error", err)
		e.setState(ctx, model.ExportStateIdle)
		return nil, err
	}
	e.setState(ctx, model.ExportStateIdle)

	logger.Info("Report exported",
		"file", result.FileName,
		"pages", result.Pages,
		"size", len(result.Content),
		"url", result.URL,
	)

	if e.notifier != nil {
		async.Dispatch(ctx, func(ctx context.Context) error {
			return e.notify(ctx, result)
		})
	}

	return result, nil
}

func (e *Export) export(ctx context.Context, regionID string) (*model.ExportedReport, error) {
	generatedAt := e.now().In(e.loc)

	e.setState(ctx, model.ExportStateCapturing)
	img, err := e.rasterizer.Rasterize(ctx, regionID)
	if err != nil {
		if goerr.HasTag(err, model.ErrTagExportTargetMissing) || goerr.HasTag(err, model.ErrTagRasterization) {
			return nil, goerr.Wrap(err, "failed to capture region", goerr.V("region", regionID))
		}
		return nil, goerr.Wrap(err, "failed to capture region",
			goerr.V("region", regionID),
			goerr.T(model.ErrTagRasterization))
	}

	e.setState(ctx, model.ExportStatePaginating)
	bounds := img.Bounds()
	layout, err := report.Paginate(report.Header{
		Title:    e.config.Title,
		Subtitle: report.GeneratedAt(generatedAt),
	}, bounds.Dx(), bounds.Dy())
	if err != nil {
		return nil, goerr.Wrap(err, "failed to paginate capture",
			goerr.V("width", bounds.Dx()),
			goerr.V("height", bounds.Dy()),
			goerr.T(model.ErrTagRasterization))
	}
	layout = report.StampFooters(layout, report.PageFooter(e.config.Footer))

	e.setState(ctx, model.ExportStateSaving)
	content, err := report.Render(report.Document{
		Layout:      layout,
		Image:       img,
		Title:       e.config.Title,
		GeneratedAt: generatedAt,
	})
	if err != nil {
		return nil, goerr.Wrap(err, "failed to render report", goerr.T(model.ErrTagSave))
	}

	result := &model.ExportedReport{
		FileName:    report.FileName(e.config.FilePrefix, generatedAt),
		Content:     content,
		Pages:       layout.PageCount(),
		GeneratedAt: generatedAt,
	}

	if e.save != nil {
		if err := e.save(ctx, result); err != nil {
			return nil, goerr.Wrap(err, "failed to save report",
				goerr.V("file", result.FileName),
				goerr.T(model.ErrTagSave))
		}
	}

	if e.storage != nil {
		path := ReportPathPrefix + result.FileName
		if err := e.storage.Upload(ctx, path, bytes.NewReader(content), "application/pdf"); err != nil {
			return nil, goerr.Wrap(err, "failed to archive report",
				goerr.V("path", path),
				goerr.T(model.ErrTagSave))
		}
		result.URL = e.storage.PublicURL(path)
	}

	return result, nil
}

// notify announces the report. Summary figures are best effort.
func (e *Export) notify(ctx context.Context, result *model.ExportedReport) error {
	var summary *model.DashboardStats
	if e.stats != nil {
		s, err := e.stats.Stats(ctx)
		if err != nil {
			ctxlog.From(ctx).Warn("Failed to load stats for report notification", "error", err)
		} else {
			summary = s
		}
	}

	if err := e.notifier.NotifyReport(ctx, result, summary); err != nil {
		return goerr.Wrap(err, "failed to notify report", goerr.V("file", result.FileName))
	}
	return nil
}
