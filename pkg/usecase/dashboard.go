package usecase

import (
	"context"
	"time"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/mouhcineelarfaoui0-afk/smart-qualiti-flow/pkg/domain/interfaces"
	"github.com/mouhcineelarfaoui0-afk/smart-qualiti-flow/pkg/domain/model"
	"github.com/mouhcineelarfaoui0-afk/smart-qualiti-flow/pkg/service/cache"
	"github.com/mouhcineelarfaoui0-afk/smart-qualiti-flow/pkg/service/stats"
	"github.com/mouhcineelarfaoui0-afk/smart-qualiti-flow/pkg/utils/async"
)

// Chart dimensions, used to report records dropped from a chart
const (
	DimensionNCStatus     = "nc_status"
	DimensionNCPriority   = "nc_priority"
	DimensionAuditType    = "audit_type"
	DimensionActionStatus = "action_status"
)

// Dashboard aggregates the dashboard statistics
type Dashboard struct {
	repo   interfaces.Repository
	config *model.DashboardConfig
	loc    *time.Location
	cache  *cache.QueryCache
	now    func() time.Time
}

var _ DashboardUseCase = (*Dashboard)(nil)

// NewDashboard creates a dashboard use case. A nil config uses the defaults.
func NewDashboard(repo interfaces.Repository, config *model.DashboardConfig, opts ...Option) (*Dashboard, error) {
	if config == nil {
		config = model.DefaultDashboardConfig()
	}
	if err := config.Validate(); err != nil {
		return nil, goerr.Wrap(err, "invalid dashboard config", goerr.T(model.ErrTagValidation))
	}
	loc, err := config.Report.Location()
	if err != nil {
		return nil, err
	}

	o := newOptions(opts)
	return &Dashboard{
		repo:   repo,
		config: config,
		loc:    loc,
		cache:  o.cache,
		now:    o.now,
	}, nil
}

// Config returns the presentation configuration
func (d *Dashboard) Config() *model.DashboardConfig {
	return d.config
}

// dashboardData is the raw input of one aggregation
type dashboardData struct {
	ncs      []*model.NonConformity
	audits   []*model.Audit
	actions  []*model.Action
	docs     []*model.Document
	profiles []*model.UserProfile
}

// Stats reads the five collections concurrently and reduces them. Every read runs
// to completion; if any of them fails no statistics are returned.
func (d *Dashboard) Stats(ctx context.Context) (*model.DashboardStats, error) {
	asOf := d.now().In(d.loc)

	data, err := d.read(ctx)
	if err != nil {
		return nil, err
	}

	return d.reduce(ctx, asOf, data)
}

func (d *Dashboard) read(ctx context.Context) (*dashboardData, error) {
	var data dashboardData

	outcomes, err := async.Join(ctx,
		async.Task{
			Name: cache.KeyNonConformityStats,
			Run: func(ctx context.Context) (err error) {
				data.ncs, err = cache.Load(ctx, d.cache, cache.KeyNonConformityStats,
					func(ctx context.Context) ([]*model.NonConformity, error) {
						return d.repo.ListNonConformities(ctx, model.NonConformityQuery{})
					})
				return err
			},
		},
		async.Task{
			Name: cache.KeyAuditStats,
			Run: func(ctx context.Context) (err error) {
				data.audits, err = cache.Load(ctx, d.cache, cache.KeyAuditStats,
					func(ctx context.Context) ([]*model.Audit, error) {
						return d.repo.ListAudits(ctx, model.AuditQuery{})
					})
				return err
			},
		},
		async.Task{
			Name: cache.KeyActionStats,
			Run: func(ctx context.Context) (err error) {
				data.actions, err = cache.Load(ctx, d.cache, cache.KeyActionStats,
					func(ctx context.Context) ([]*model.Action, error) {
						return d.repo.ListActions(ctx, model.ActionQuery{})
					})
				return err
			},
		},
		async.Task{
			Name: cache.KeyDocumentStats,
			Run: func(ctx context.Context) (err error) {
				data.docs, err = cache.Load(ctx, d.cache, cache.KeyDocumentStats,
					func(ctx context.Context) ([]*model.Document, error) {
						return d.repo.ListDocuments(ctx, model.DocumentQuery{})
					})
				return err
			},
		},
		async.Task{
			Name: cache.KeyUserStats,
			Run: func(ctx context.Context) (err error) {
				data.profiles, err = cache.Load(ctx, d.cache, cache.KeyUserStats,
					func(ctx context.Context) ([]*model.UserProfile, error) {
						return d.repo.ListProfiles(ctx)
					})
				return err
			},
		},
	)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to read dashboard data", goerr.T(model.ErrTagRemoteRead))
	}

	for _, o := range outcomes {
		ctxlog.From(ctx).Debug("dashboard read done", "task", o.Name, "duration", o.Duration)
	}
	return &data, nil
}

func (d *Dashboard) reduce(ctx context.Context, asOf time.Time, data *dashboardData) (*model.DashboardStats, error) {
	charts := d.config.Charts
	policy := d.config.UnknownValues
	result := &model.DashboardStats{AsOf: asOf}

	ncStatus, err := stats.CountBuckets(data.ncs, func(nc *model.NonConformity) string { return nc.Status.String() }, charts.NCStatus, policy)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to count non-conformity statuses", goerr.V("dimension", DimensionNCStatus))
	}
	ncPriority, err := stats.CountBuckets(data.ncs, func(nc *model.NonConformity) string { return nc.Priority.String() }, charts.NCPriority, policy)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to count non-conformity priorities", goerr.V("dimension", DimensionNCPriority))
	}
	auditType, err := stats.CountBuckets(data.audits, func(a *model.Audit) string { return a.Type.String() }, charts.AuditType, policy)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to count audit types", goerr.V("dimension", DimensionAuditType))
	}
	actionStatus, err := stats.CountBuckets(data.actions, func(a *model.Action) string { return a.Status.String() }, charts.ActionStatus, policy)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to count action statuses", goerr.V("dimension", DimensionActionStatus))
	}

	result.NCStats = model.NonConformityStats{
		ComplianceSnapshot: stats.ComplianceSnapshot(data.ncs, d.config.RecentLimit),
		StatusData:         ncStatus.Series.NonZero(),
		PriorityData:       ncPriority.Series,
	}
	result.AuditStats = model.AuditStats{
		PlannedCount:   stats.MonthlyPlannedCount(data.audits, asOf),
		UpcomingAudits: stats.UpcomingAudits(data.audits, asOf, d.config.RecentLimit),
		TypeData:       auditType.Series.NonZero(),
	}
	result.ActionStats = model.ActionStats{
		ActiveCount: stats.ActiveActionCount(data.actions),
		StatusData:  actionStatus.Series.NonZero(),
	}
	result.DocumentStats = model.DocumentStats{ActiveCount: stats.ActiveDocumentCount(data.docs)}
	result.UserStats = model.UserStats{UserCount: len(data.profiles)}

	for _, dim := range []struct {
		name string
		res  *stats.Result
	}{
		{DimensionNCStatus, ncStatus},
		{DimensionNCPriority, ncPriority},
		{DimensionAuditType, auditType},
		{DimensionActionStatus, actionStatus},
	} {
		if dim.res.Unknown == 0 {
			continue
		}
		if result.UnknownValues == nil {
			result.UnknownValues = make(map[string]int)
		}
		result.UnknownValues[dim.name] = dim.res.Unknown
		if policy == model.UnknownValueWarn {
			ctxlog.From(ctx).Warn("records with unknown values left out of chart",
				"dimension", dim.name,
				"count", dim.res.Unknown,
				"values", dim.res.UnknownValues,
			)
		}
	}

	return result, nil
}
