package apperr

import (
	"context"
	"log/slog"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/mouhcineelarfaoui0-afk/smart-qualiti-flow/pkg/domain/model"
)

// KindInternal is the kind of an error without a known tag
const KindInternal = "internal"

var kinds = []struct {
	name string
	has  func(error) bool
}{
	{"export_target_missing", func(err error) bool { return goerr.HasTag(err, model.ErrTagExportTargetMissing) }},
	{"remote_read", func(err error) bool { return goerr.HasTag(err, model.ErrTagRemoteRead) }},
	{"rasterization", func(err error) bool { return goerr.HasTag(err, model.ErrTagRasterization) }},
	{"save", func(err error) bool { return goerr.HasTag(err, model.ErrTagSave) }},
	{"validation", func(err error) bool { return goerr.HasTag(err, model.ErrTagValidation) }},
	{"not_found", func(err error) bool { return goerr.HasTag(err, model.ErrTagNotFound) }},
}

// Kind returns the name of the first known tag carried by err
func Kind(err error) string {
	for _, k := range kinds {
		if k.has(err) {
			return k.name
		}
	}
	return KindInternal
}

// Handle logs an error that reached the top of an operation. Failures of remote
// dependencies are logged as warnings, everything else as errors.
func Handle(ctx context.Context, err error) {
	if err == nil {
		return
	}

	kind := Kind(err)
	level := slog.LevelError
	if kind == "remote_read" {
		level = slog.LevelWarn
	}
	ctxlog.From(ctx).Log(ctx, level, "application error", "kind", kind, "error", err)
}
