package model

import "github.com/m-mizutani/goerr/v2"

// Error tags used to classify failures across layers
var (
	ErrTagRemoteRead          = goerr.NewTag("remote_read")
	ErrTagExportTargetMissing = goerr.NewTag("export_target_missing")
	ErrTagRasterization       = goerr.NewTag("rasterization")
	ErrTagSave                = goerr.NewTag("save")
	ErrTagValidation          = goerr.NewTag("validation")
	ErrTagNotFound            = goerr.NewTag("not_found")
)

// Sentinel errors for domain operations
var (
	ErrRecordNotFound = goerr.New("record not found", goerr.T(ErrTagNotFound))
)
