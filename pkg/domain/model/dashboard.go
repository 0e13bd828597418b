package model

import "time"

// Bucket is one category of a chart distribution
type Bucket struct {
	Key   string `json:"key"`
	Label string `json:"name"`
	Count int    `json:"value"`
	Color string `json:"fill"`
}

// BucketSeries is a fixed-category count distribution in display order
type BucketSeries []Bucket

// NonZero returns the buckets with a positive count, as used by pie charts
func (s BucketSeries) NonZero() BucketSeries {
	result := make(BucketSeries, 0, len(s))
	for _, b := range s {
		if b.Count > 0 {
			result = append(result, b)
		}
	}
	return result
}

// Total returns the sum of all bucket counts
func (s BucketSeries) Total() int {
	total := 0
	for _, b := range s {
		total += b.Count
	}
	return total
}

// Count returns the count of the bucket with the given key, or 0
func (s BucketSeries) Count(key string) int {
	for _, b := range s {
		if b.Key == key {
			return b.Count
		}
	}
	return 0
}

// ComplianceSnapshot summarises how many non-conformities are still open
type ComplianceSnapshot struct {
	OpenCount      int              `json:"open_count"`
	TotalCount     int              `json:"total_count"`
	ComplianceRate float64          `json:"compliance_rate"`
	RecentTop5     []*NonConformity `json:"recent_ncs"`
}

// NonConformityStats holds the non-conformity part of the dashboard
type NonConformityStats struct {
	ComplianceSnapshot
	StatusData   BucketSeries `json:"status_data"`   // pie, zero-filtered
	PriorityData BucketSeries `json:"priority_data"` // bar, unfiltered
}

// AuditStats holds the audit part of the dashboard
type AuditStats struct {
	PlannedCount   int          `json:"planned_count"`
	UpcomingAudits []*Audit     `json:"upcoming_audits"`
	TypeData       BucketSeries `json:"type_data"` // pie, zero-filtered
}

// ActionStats holds the CAPA part of the dashboard
type ActionStats struct {
	ActiveCount int          `json:"active_count"`
	StatusData  BucketSeries `json:"status_data"` // pie, zero-filtered
}

// DocumentStats holds the document part of the dashboard
type DocumentStats struct {
	ActiveCount int `json:"active_count"`
}

// UserStats holds the user part of the dashboard
type UserStats struct {
	UserCount int `json:"user_count"`
}

// DashboardStats is the complete, ephemeral view model of the dashboard
type DashboardStats struct {
	AsOf          time.Time          `json:"as_of"`
	NCStats       NonConformityStats `json:"nc_stats"`
	AuditStats    AuditStats         `json:"audit_stats"`
	ActionStats   ActionStats        `json:"action_stats"`
	DocumentStats DocumentStats      `json:"document_stats"`
	UserStats     UserStats          `json:"user_stats"`
	UnknownValues map[string]int     `json:"unknown_values,omitempty"` // chart dimension -> dropped records
}
