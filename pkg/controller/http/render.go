package http

import (
	"fmt"
	"html/template"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/mouhcineelarfaoui0-afk/smart-qualiti-flow/frontend"
	"github.com/mouhcineelarfaoui0-afk/smart-qualiti-flow/pkg/domain/model"
	"github.com/mouhcineelarfaoui0-afk/smart-qualiti-flow/pkg/domain/types"
)

// DashboardRegionID is the id of the element captured by PDF export
const DashboardRegionID = "dashboard-content"

const fallbackColor = "hsl(var(--muted))"

var safeColor = regexp.MustCompile(`^[A-Za-z0-9#(),.%\- ]+$`)

// chartData is the input of the chart templates
type chartData struct {
	Title  string
	Series model.BucketSeries
}

// dashboardPage is the input of the dashboard template
type dashboardPage struct {
	Title     string
	RegionID  string
	Exporting bool
	Stats     *model.DashboardStats
}

func labelOf(defs []model.BucketDef, key string) string {
	for _, def := range defs {
		if def.Key == key {
			return def.Label
		}
	}
	return key
}

func cssColor(c string) template.CSS {
	if c == "" || !safeColor.MatchString(c) {
		return template.CSS(fallbackColor)
	}
	return template.CSS(c)
}

// conicGradient draws a pie chart as a CSS conic gradient, one slice per bucket
func conicGradient(series model.BucketSeries) template.CSS {
	total := series.Total()
	if total == 0 {
		return template.CSS(fallbackColor)
	}

	stops := make([]string, 0, len(series))
	acc := 0
	for _, b := range series {
		from := float64(acc) / float64(total) * 100
		acc += b.Count
		to := float64(acc) / float64(total) * 100
		stops = append(stops, fmt.Sprintf("%s %.2f%% %.2f%%", cssColor(b.Color), from, to))
	}
	return template.CSS("conic-gradient(" + strings.Join(stops, ", ") + ")")
}

func maxCount(series model.BucketSeries) int {
	m := 0
	for _, b := range series {
		if b.Count > m {
			m = b.Count
		}
	}
	return m
}

func barHeight(count, max int) template.CSS {
	if max <= 0 {
		return "0%"
	}
	return template.CSS(strconv.FormatFloat(float64(count)/float64(max)*100, 'f', 1, 64) + "%")
}

func formatRate(rate float64) string {
	return strconv.FormatFloat(rate, 'f', 1, 64) + "%"
}

func templateFuncs(cfg *model.DashboardConfig) template.FuncMap {
	return template.FuncMap{
		"rate": formatRate,
		"chart": func(title string, series model.BucketSeries) chartData {
			return chartData{Title: title, Series: series}
		},
		"conic":    conicGradient,
		"color":    cssColor,
		"maxCount": maxCount,
		"height":   barHeight,
		"day": func(t time.Time) string {
			return t.Format("02/01/2006")
		},
		"ncStatus": func(s types.NCStatus) string {
			return labelOf(cfg.Charts.NCStatus, s.String())
		},
		"auditType": func(t types.AuditType) string {
			return labelOf(cfg.Charts.AuditType, t.String())
		},
	}
}

func parseTemplates(cfg *model.DashboardConfig) (*template.Template, error) {
	tmpl, err := frontend.Templates(templateFuncs(cfg))
	if err != nil {
		return nil, goerr.Wrap(err, "failed to parse dashboard templates")
	}
	return tmpl, nil
}
