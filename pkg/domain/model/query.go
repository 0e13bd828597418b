package model

import (
	"time"

	"github.com/mouhcineelarfaoui0-afk/smart-qualiti-flow/pkg/domain/types"
)

// NonConformityQuery filters non-conformities. Results are ordered newest first.
type NonConformityQuery struct {
	Statuses []types.NCStatus // empty means any status
	Limit    int              // 0 means no limit
}

// Match reports whether nc satisfies the filter part of the query
func (q NonConformityQuery) Match(nc *NonConformity) bool {
	if len(q.Statuses) == 0 {
		return true
	}
	for _, s := range q.Statuses {
		if nc.Status == s {
			return true
		}
	}
	return false
}

// AuditQuery filters audits by an inclusive date range. Results are ordered by audit date ascending.
type AuditQuery struct {
	From  time.Time // zero means unbounded
	To    time.Time // zero means unbounded
	Limit int
}

// Match reports whether a satisfies the filter part of the query
func (q AuditQuery) Match(a *Audit) bool {
	if !q.From.IsZero() && a.AuditDate.Before(DateOf(q.From)) {
		return false
	}
	if !q.To.IsZero() && a.AuditDate.After(DateOf(q.To)) {
		return false
	}
	return true
}

// ActionQuery filters actions. Results are ordered newest first.
type ActionQuery struct {
	Statuses []types.ActionStatus
	Limit    int
}

// Match reports whether a satisfies the filter part of the query
func (q ActionQuery) Match(a *Action) bool {
	if len(q.Statuses) == 0 {
		return true
	}
	for _, s := range q.Statuses {
		if a.Status == s {
			return true
		}
	}
	return false
}

// DocumentQuery filters documents. Results are ordered newest first.
type DocumentQuery struct {
	ActiveOnly bool
	Limit      int
}

// Match reports whether d satisfies the filter part of the query
func (q DocumentQuery) Match(d *Document) bool {
	return !q.ActiveOnly || d.IsActive
}
