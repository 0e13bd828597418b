package model

import (
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/mouhcineelarfaoui0-afk/smart-qualiti-flow/pkg/domain/types"
)

// UnknownValuePolicy decides what happens to records whose enum field is outside
// the known set when building chart buckets
type UnknownValuePolicy string

const (
	UnknownValueIgnore UnknownValuePolicy = "ignore" // drop silently
	UnknownValueWarn   UnknownValuePolicy = "warn"   // drop and log
	UnknownValueReject UnknownValuePolicy = "reject" // fail the aggregation
)

// IsValid checks if the policy is valid
func (p UnknownValuePolicy) IsValid() bool {
	switch p {
	case UnknownValueIgnore, UnknownValueWarn, UnknownValueReject:
		return true
	default:
		return false
	}
}

// BucketDef describes one chart category
type BucketDef struct {
	Key   string `yaml:"key"`
	Label string `yaml:"label"`
	Color string `yaml:"color"`
}

// ChartsConfig holds the category definitions of every chart dimension
type ChartsConfig struct {
	NCStatus     []BucketDef `yaml:"nc_status"`
	NCPriority   []BucketDef `yaml:"nc_priority"`
	AuditType    []BucketDef `yaml:"audit_type"`
	ActionStatus []BucketDef `yaml:"action_status"`
}

// ReportConfig holds the presentation of exported PDF reports
type ReportConfig struct {
	Title      string `yaml:"title"`
	Footer     string `yaml:"footer"`
	FilePrefix string `yaml:"file_prefix"`
	Timezone   string `yaml:"timezone"` // IANA name, empty for the host zone
}

// Location returns the time zone used for report timestamps and date windows
func (r ReportConfig) Location() (*time.Location, error) {
	if r.Timezone == "" {
		return time.Local, nil
	}
	loc, err := time.LoadLocation(r.Timezone)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to load timezone", goerr.V("timezone", r.Timezone))
	}
	return loc, nil
}

// DashboardConfig represents the dashboard presentation configuration
type DashboardConfig struct {
	Charts        ChartsConfig       `yaml:"charts"`
	Report        ReportConfig       `yaml:"report"`
	UnknownValues UnknownValuePolicy `yaml:"unknown_values"`
	RecentLimit   int                `yaml:"recent_limit"`
}

// DefaultDashboardConfig returns the built-in configuration
func DefaultDashboardConfig() *DashboardConfig {
	return &DashboardConfig{
		Charts: ChartsConfig{
			NCStatus: []BucketDef{
				{Key: types.NCStatusOpen.String(), Label: "Ouverte", Color: "hsl(var(--chart-1))"},
				{Key: types.NCStatusInProgress.String(), Label: "En cours", Color: "hsl(var(--chart-2))"},
				{Key: types.NCStatusResolved.String(), Label: "Résolue", Color: "hsl(var(--chart-3))"},
				{Key: types.NCStatusClosed.String(), Label: "Clôturée", Color: "hsl(var(--chart-4))"},
				{Key: types.NCStatusRejected.String(), Label: "Rejetée", Color: "hsl(var(--chart-5))"},
			},
			NCPriority: []BucketDef{
				{Key: types.NCPriorityLow.String(), Label: "Basse", Color: "hsl(var(--chart-3))"},
				{Key: types.NCPriorityMedium.String(), Label: "Moyenne", Color: "hsl(var(--chart-2))"},
				{Key: types.NCPriorityHigh.String(), Label: "Haute", Color: "hsl(var(--chart-1))"},
				{Key: types.NCPriorityCritical.String(), Label: "Critique", Color: "hsl(var(--destructive))"},
			},
			AuditType: []BucketDef{
				{Key: types.AuditTypeInternal.String(), Label: "Interne", Color: "hsl(var(--chart-1))"},
				{Key: types.AuditTypeExternal.String(), Label: "Externe", Color: "hsl(var(--chart-2))"},
				{Key: types.AuditTypeSupplier.String(), Label: "Fournisseur", Color: "hsl(var(--chart-3))"},
				{Key: types.AuditTypeClient.String(), Label: "Client", Color: "hsl(var(--chart-4))"},
			},
			ActionStatus: []BucketDef{
				{Key: types.ActionStatusPlanned.String(), Label: "Planifiée", Color: "hsl(var(--chart-1))"},
				{Key: types.ActionStatusInProgress.String(), Label: "En cours", Color: "hsl(var(--chart-2))"},
				{Key: types.ActionStatusDone.String(), Label: "Terminée", Color: "hsl(var(--chart-3))"},
				{Key: types.ActionStatusVerified.String(), Label: "Vérifiée", Color: "hsl(var(--chart-4))"},
				{Key: types.ActionStatusIneffective.String(), Label: "Inefficace", Color: "hsl(var(--destructive))"},
			},
		},
		Report: ReportConfig{
			Title:      "SmartQuali - Tableau de Bord",
			Footer:     "SmartQuali - Système de Gestion de la Qualité",
			FilePrefix: "SmartQuali_Dashboard",
		},
		UnknownValues: UnknownValueWarn,
		RecentLimit:   5,
	}
}

// Validate validates the entire configuration
func (c *DashboardConfig) Validate() error {
	charts := []struct {
		name  string
		defs  []BucketDef
		valid func(string) bool
		size  int
	}{
		{"nc_status", c.Charts.NCStatus, func(k string) bool { return types.NCStatus(k).IsValid() }, len(types.AllNCStatuses())},
		{"nc_priority", c.Charts.NCPriority, func(k string) bool { return types.NCPriority(k).IsValid() }, len(types.AllNCPriorities())},
		{"audit_type", c.Charts.AuditType, func(k string) bool { return types.AuditType(k).IsValid() }, len(types.AllAuditTypes())},
		{"action_status", c.Charts.ActionStatus, func(k string) bool { return types.ActionStatus(k).IsValid() }, len(types.AllActionStatuses())},
	}

	for _, chart := range charts {
		if err := validateBucketDefs(chart.defs, chart.valid, chart.size); err != nil {
			return goerr.Wrap(err, "invalid chart", goerr.V("chart", chart.name))
		}
	}

	if !c.UnknownValues.IsValid() {
		return goerr.New("invalid unknown value policy", goerr.V("policy", c.UnknownValues))
	}
	if c.RecentLimit <= 0 {
		return goerr.New("recent limit must be positive", goerr.V("recent_limit", c.RecentLimit))
	}
	if c.Report.FilePrefix == "" {
		return goerr.New("report file prefix is required")
	}
	if _, err := c.Report.Location(); err != nil {
		return err
	}

	return nil
}

// validateBucketDefs checks that defs cover the closed enumeration exactly once
func validateBucketDefs(defs []BucketDef, valid func(string) bool, size int) error {
	seen := make(map[string]bool)
	for i, def := range defs {
		if !valid(def.Key) {
			return goerr.New("unknown bucket key", goerr.V("index", i), goerr.V("key", def.Key))
		}
		if def.Label == "" {
			return goerr.New("bucket label is required", goerr.V("key", def.Key))
		}
		if seen[def.Key] {
			return goerr.New("duplicate bucket key", goerr.V("key", def.Key))
		}
		seen[def.Key] = true
	}

	if len(seen) != size {
		return goerr.New("buckets must cover every value",
			goerr.V("expected", size),
			goerr.V("actual", len(seen)))
	}
	return nil
}
