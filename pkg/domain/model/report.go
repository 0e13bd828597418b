package model

import "time"

// ExportState is the step an export run is currently in
type ExportState int

const (
	ExportStateIdle ExportState = iota
	ExportStateCapturing
	ExportStatePaginating
	ExportStateSaving
	ExportStateFailed
)

// String returns the string representation of the state
func (s ExportState) String() string {
	switch s {
	case ExportStateIdle:
		return "idle"
	case ExportStateCapturing:
		return "capturing"
	case ExportStatePaginating:
		return "paginating"
	case ExportStateSaving:
		return "saving"
	case ExportStateFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// ExportedReport is a generated PDF snapshot of a dashboard region
type ExportedReport struct {
	FileName    string    `json:"file_name"`
	Content     []byte    `json:"-"`
	Pages       int       `json:"pages"`
	GeneratedAt time.Time `json:"generated_at"`
	URL         string    `json:"url,omitempty"` // set when archived to blob storage
}
