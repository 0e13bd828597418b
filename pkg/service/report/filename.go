package report

import (
	"fmt"
	"time"
)

var frenchMonths = [...]string{
	"janvier", "février", "mars", "avril", "mai", "juin",
	"juillet", "août", "septembre", "octobre", "novembre", "décembre",
}

// FileName returns "<prefix>_<yyyy-MM-dd_HH-mm>.pdf" for the local time of t
func FileName(prefix string, t time.Time) string {
	return fmt.Sprintf("%s_%s.pdf", prefix, t.Format("2006-01-02_15-04"))
}

// GeneratedAt formats the report subtitle, e.g. "Rapport généré le 5 mars 2025 à 14:07"
func GeneratedAt(t time.Time) string {
	return fmt.Sprintf("Rapport généré le %d %s %d à %s",
		t.Day(), frenchMonths[t.Month()-1], t.Year(), t.Format("15:04"))
}
