// Package stats reduces quality records into dashboard view models.
// Every function is pure: inputs are never modified and equal inputs give equal outputs.
package stats

import (
	"math"
	"sort"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/mouhcineelarfaoui0-afk/smart-qualiti-flow/pkg/domain/model"
)

// ComplianceRate returns the share of closed-out records as a percentage rounded to one decimal.
// An empty population is fully compliant.
func ComplianceRate(open, total int) float64 {
	if total <= 0 {
		return 100
	}
	rate := float64(total-open) / float64(total) * 100
	return math.Floor(rate*10+0.5) / 10
}

// ComplianceSnapshot counts open non-conformities and picks the most recent ones
func ComplianceSnapshot(ncs []*model.NonConformity, limit int) model.ComplianceSnapshot {
	open := 0
	for _, nc := range ncs {
		if nc.Status.IsOpen() {
			open++
		}
	}

	recent := make([]*model.NonConformity, len(ncs))
	copy(recent, ncs)
	sort.SliceStable(recent, func(i, j int) bool {
		if !recent[i].CreatedAt.Equal(recent[j].CreatedAt) {
			return recent[i].CreatedAt.After(recent[j].CreatedAt)
		}
		return recent[i].ID < recent[j].ID
	})
	if limit >= 0 && len(recent) > limit {
		recent = recent[:limit]
	}

	return model.ComplianceSnapshot{
		OpenCount:      open,
		TotalCount:     len(ncs),
		ComplianceRate: ComplianceRate(open, len(ncs)),
		RecentTop5:     recent,
	}
}

// Result is the outcome of a bucket count
type Result struct {
	// Series holds every defined bucket in definition order, zero counts included
	Series model.BucketSeries
	// Unknown is the number of records whose value matched no bucket
	Unknown int
	// UnknownValues lists the distinct unmatched values in first-seen order
	UnknownValues []string
}

// CountBuckets counts records per category. Records with a value outside defs are
// excluded from every bucket; with UnknownValueReject they make the count fail.
func CountBuckets[T any](records []T, field func(T) string, defs []model.BucketDef, policy model.UnknownValuePolicy) (*Result, error) {
	result := &Result{
		Series: make(model.BucketSeries, len(defs)),
	}
	index := make(map[string]int, len(defs))
	for i, def := range defs {
		result.Series[i] = model.Bucket{Key: def.Key, Label: def.Label, Color: def.Color}
		index[def.Key] = i
	}

	seen := make(map[string]bool)
	for _, r := range records {
		value := field(r)
		if i, ok := index[value]; ok {
			result.Series[i].Count++
			continue
		}

		result.Unknown++
		if !seen[value] {
			seen[value] = true
			result.UnknownValues = append(result.UnknownValues, value)
		}
	}

	if result.Unknown > 0 && policy == model.UnknownValueReject {
		return nil, goerr.New("records with unknown category values",
			goerr.V("count", result.Unknown),
			goerr.V("values", result.UnknownValues))
	}

	return result, nil
}

// UpcomingAudits returns audits scheduled on or after the calendar date of asOf
// (evaluated in asOf's location), earliest first, at most limit items
func UpcomingAudits(audits []*model.Audit, asOf time.Time, limit int) []*model.Audit {
	today := model.DateOf(asOf)

	upcoming := make([]*model.Audit, 0, len(audits))
	for _, a := range audits {
		if !model.DateOf(a.AuditDate.UTC()).Before(today) {
			upcoming = append(upcoming, a)
		}
	}

	sort.SliceStable(upcoming, func(i, j int) bool {
		if !upcoming[i].AuditDate.Equal(upcoming[j].AuditDate) {
			return upcoming[i].AuditDate.Before(upcoming[j].AuditDate)
		}
		return upcoming[i].ID < upcoming[j].ID
	})
	if limit >= 0 && len(upcoming) > limit {
		upcoming = upcoming[:limit]
	}
	return upcoming
}

// MonthRange returns the first and last calendar day of the month containing asOf
func MonthRange(asOf time.Time) (time.Time, time.Time) {
	y, m, _ := asOf.Date()
	first := time.Date(y, m, 1, 0, 0, 0, 0, time.UTC)
	last := first.AddDate(0, 1, -1)
	return first, last
}

// MonthlyPlannedCount counts audits dated within the month containing asOf, bounds inclusive
func MonthlyPlannedCount(audits []*model.Audit, asOf time.Time) int {
	first, last := MonthRange(asOf)
	count := 0
	for _, a := range audits {
		d := model.DateOf(a.AuditDate.UTC())
		if !d.Before(first) && !d.After(last) {
			count++
		}
	}
	return count
}

// ActiveActionCount counts actions that are planned or in progress
func ActiveActionCount(actions []*model.Action) int {
	count := 0
	for _, a := range actions {
		if a.Status.IsActive() {
			count++
		}
	}
	return count
}

// ActiveDocumentCount counts documents in force
func ActiveDocumentCount(docs []*model.Document) int {
	count := 0
	for _, d := range docs {
		if d.IsActive {
			count++
		}
	}
	return count
}
