package model_test

import (
	"testing"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gt"
	"github.com/mouhcineelarfaoui0-afk/smart-qualiti-flow/pkg/domain/model"
	"github.com/mouhcineelarfaoui0-afk/smart-qualiti-flow/pkg/domain/types"
)

func TestNewNonConformity(t *testing.T) {
	nc, err := model.NewNonConformity("Scratched housing", "Lot 42", types.NCPriorityHigh, "user-1")
	gt.NoError(t, err).Required()

	gt.NotEqual(t, "", nc.ID.String())
	gt.Equal(t, types.NCStatusOpen, nc.Status)
	gt.Equal(t, nc.CreatedAt, nc.UpdatedAt)
	gt.True(t, nc.ClosedAt == nil)

	_, err = model.NewNonConformity("", "", types.NCPriorityHigh, "user-1")
	gt.Error(t, err)
	gt.B(t, goerr.HasTag(err, model.ErrTagValidation)).True()

	_, err = model.NewNonConformity("title", "", types.NCPriority("urgent"), "user-1")
	gt.Error(t, err)
}

func TestNonConformitySetStatus(t *testing.T) {
	nc, err := model.NewNonConformity("Wrong torque", "", types.NCPriorityMedium, "user-1")
	gt.NoError(t, err).Required()

	at := time.Date(2025, 3, 4, 10, 0, 0, 0, time.UTC)
	gt.NoError(t, nc.SetStatus(types.NCStatusClosed, at))
	gt.Equal(t, types.NCStatusClosed, nc.Status)
	gt.True(t, nc.ClosedAt != nil)
	gt.Equal(t, at, *nc.ClosedAt)
	gt.Equal(t, at, nc.UpdatedAt)

	// same status is rejected
	gt.Error(t, nc.SetStatus(types.NCStatusClosed, at))
	gt.Error(t, nc.SetStatus(types.NCStatus("closed"), at))

	gt.NoError(t, nc.SetStatus(types.NCStatusInProgress, at.Add(time.Hour)))
	gt.True(t, nc.ClosedAt == nil)
}

func TestNewAudit(t *testing.T) {
	date := time.Date(2025, 6, 15, 18, 30, 0, 0, time.UTC)
	a, err := model.NewAudit("ISO 9001 surveillance", types.AuditTypeExternal, date, "auditor-1", "user-1")
	gt.NoError(t, err).Required()

	gt.Equal(t, types.AuditStatusPlanned, a.Status)
	gt.Equal(t, time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC), a.AuditDate)

	_, err = model.NewAudit("x", types.AuditType("internal"), date, "auditor-1", "user-1")
	gt.Error(t, err)
	_, err = model.NewAudit("x", types.AuditTypeInternal, time.Time{}, "auditor-1", "user-1")
	gt.Error(t, err)
}

func TestNewActionAndDocument(t *testing.T) {
	a, err := model.NewAction(types.ActionTypeCorrective, "Replace gauge", "user-2", time.Now(), "user-1")
	gt.NoError(t, err).Required()
	gt.Equal(t, types.ActionStatusPlanned, a.Status)
	gt.True(t, a.Status.IsActive())

	_, err = model.NewAction(types.ActionTypeCorrective, "", "user-2", time.Now(), "user-1")
	gt.Error(t, err)

	d, err := model.NewDocument("Procédure achats", "procedure", "1.0", "", "user-1")
	gt.NoError(t, err).Required()
	gt.True(t, d.IsActive)

	_, err = model.NewDocument("Procédure achats", "", "1.0", "", "user-1")
	gt.Error(t, err)
}

func TestUserProfile(t *testing.T) {
	p, err := model.NewUserProfile("jane@example.com", "Jane", "Doe")
	gt.NoError(t, err).Required()
	gt.Equal(t, "Jane Doe", p.DisplayName())

	p.FirstName, p.LastName = "", ""
	gt.Equal(t, "jane@example.com", p.DisplayName())

	_, err = model.NewUserProfile("not-an-email", "", "")
	gt.Error(t, err)
}

func TestQueries(t *testing.T) {
	open := &model.NonConformity{Status: types.NCStatusOpen}
	closed := &model.NonConformity{Status: types.NCStatusClosed}

	q := model.NonConformityQuery{Statuses: types.OpenNCStatuses()}
	gt.True(t, q.Match(open))
	gt.False(t, q.Match(closed))
	gt.True(t, model.NonConformityQuery{}.Match(closed))

	audit := &model.Audit{AuditDate: time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)}
	aq := model.AuditQuery{
		From: time.Date(2025, 6, 15, 23, 0, 0, 0, time.UTC),
		To:   time.Date(2025, 6, 30, 0, 0, 0, 0, time.UTC),
	}
	gt.True(t, aq.Match(audit))
	aq.From = time.Date(2025, 6, 16, 0, 0, 0, 0, time.UTC)
	gt.False(t, aq.Match(audit))

	gt.False(t, model.DocumentQuery{ActiveOnly: true}.Match(&model.Document{}))
	gt.True(t, model.DocumentQuery{}.Match(&model.Document{}))
}

func TestBucketSeries(t *testing.T) {
	s := model.BucketSeries{
		{Key: "basse", Count: 1},
		{Key: "moyenne", Count: 0},
		{Key: "haute", Count: 2},
	}
	gt.Equal(t, 3, s.Total())
	gt.Equal(t, 2, s.Count("haute"))
	gt.Equal(t, 0, s.Count("critique"))
	gt.Equal(t, 2, len(s.NonZero()))
	gt.Equal(t, 3, len(s))
}

func TestExportStateString(t *testing.T) {
	gt.Equal(t, "idle", model.ExportStateIdle.String())
	gt.Equal(t, "capturing", model.ExportStateCapturing.String())
	gt.Equal(t, "failed", model.ExportStateFailed.String())
	gt.Equal(t, "unknown", model.ExportState(99).String())
}
