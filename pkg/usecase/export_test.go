package usecase_test

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/color"
	"io"
	"sync"
	"testing"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gt"
	"github.com/mouhcineelarfaoui0-afk/smart-qualiti-flow/pkg/domain/interfaces/mocks"
	"github.com/mouhcineelarfaoui0-afk/smart-qualiti-flow/pkg/domain/model"
	"github.com/mouhcineelarfaoui0-afk/smart-qualiti-flow/pkg/usecase"
)

func newCapture(w, h int) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, color.RGBA{R: 30, G: 64, B: 175, A: 255})
		}
	}
	return img
}

func reportConfig() model.ReportConfig {
	cfg := utcConfig().Report
	return cfg
}

func TestExportRegion(t *testing.T) {
	ctx := context.Background()

	t.Run("renders a multi page report", func(t *testing.T) {
		raster := &mocks.RasterizerMock{
			RasterizeFunc: func(ctx context.Context, regionID string) (image.Image, error) {
				// 100 px wide scaled to 210 mm: 400 px tall is 840 mm, three pages
				return newCapture(100, 400), nil
			},
		}

		uc, err := usecase.NewExport(raster, reportConfig(), usecase.WithClock(fixedClock))
		gt.NoError(t, err).Required()

		report, err := uc.ExportRegion(ctx, "dashboard-content")
		gt.NoError(t, err).Required()
		gt.Equal(t, "SmartQuali_Dashboard_2025-03-15_10-30.pdf", report.FileName)
		gt.Equal(t, 3, report.Pages)
		gt.True(t, bytes.HasPrefix(report.Content, []byte("%PDF-")))
		gt.Equal(t, 3, bytes.Count(report.Content, []byte("/Type /Page\n")))
		gt.Equal(t, "", report.URL)

		gt.Equal(t, 1, len(raster.RasterizeCalls()))
		gt.Equal(t, "dashboard-content", raster.RasterizeCalls()[0].RegionID)
		gt.False(t, uc.IsExporting())
		gt.Equal(t, model.ExportStateIdle, uc.State())
	})

	t.Run("missing region fails without saving", func(t *testing.T) {
		raster := &mocks.RasterizerMock{
			RasterizeFunc: func(ctx context.Context, regionID string) (image.Image, error) {
				return nil, goerr.New("export target not found", goerr.T(model.ErrTagExportTargetMissing))
			},
		}
		storage := &mocks.BlobStorageMock{}

		uc, err := usecase.NewExport(raster, reportConfig(),
			usecase.WithClock(fixedClock),
			usecase.WithBlobStorage(storage))
		gt.NoError(t, err).Required()

		report, err := uc.ExportRegion(ctx, "nowhere")
		gt.Error(t, err)
		gt.True(t, report == nil)
		gt.True(t, goerr.HasTag(err, model.ErrTagExportTargetMissing))
		gt.Equal(t, 0, len(storage.UploadCalls()))
		gt.Equal(t, model.ExportStateIdle, uc.State())
	})

	t.Run("untagged capture failure is a rasterization error", func(t *testing.T) {
		raster := &mocks.RasterizerMock{
			RasterizeFunc: func(ctx context.Context, regionID string) (image.Image, error) {
				return nil, errors.New("browser crashed")
			},
		}
		uc, err := usecase.NewExport(raster, reportConfig())
		gt.NoError(t, err).Required()

		_, err = uc.ExportRegion(ctx, "dashboard-content")
		gt.True(t, goerr.HasTag(err, model.ErrTagRasterization))
	})

	t.Run("archives to blob storage", func(t *testing.T) {
		var uploaded []byte
		storage := &mocks.BlobStorageMock{
			UploadFunc: func(ctx context.Context, path string, r io.Reader, contentType string) error {
				data, err := io.ReadAll(r)
				uploaded = data
				return err
			},
			PublicURLFunc: func(path string) string {
				return "https://storage.example.com/" + path
			},
		}
		raster := &mocks.RasterizerMock{
			RasterizeFunc: func(ctx context.Context, regionID string) (image.Image, error) {
				return newCapture(100, 50), nil
			},
		}

		uc, err := usecase.NewExport(raster, reportConfig(),
			usecase.WithClock(fixedClock),
			usecase.WithBlobStorage(storage))
		gt.NoError(t, err).Required()

		report, err := uc.ExportRegion(ctx, "dashboard-content")
		gt.NoError(t, err).Required()
		gt.Equal(t, 1, report.Pages)
		gt.Equal(t, 1, len(storage.UploadCalls()))
		gt.Equal(t, "reports/SmartQuali_Dashboard_2025-03-15_10-30.pdf", storage.UploadCalls()[0].Path)
		gt.Equal(t, "application/pdf", storage.UploadCalls()[0].ContentType)
		gt.Equal(t, report.Content, uploaded)
		gt.Equal(t, "https://storage.example.com/reports/SmartQuali_Dashboard_2025-03-15_10-30.pdf", report.URL)
	})

	t.Run("storage failure is a save error", func(t *testing.T) {
		storage := &mocks.BlobStorageMock{
			UploadFunc: func(ctx context.Context, path string, r io.Reader, contentType string) error {
				return errors.New("quota exceeded")
			},
		}
		raster := &mocks.RasterizerMock{
			RasterizeFunc: func(ctx context.Context, regionID string) (image.Image, error) {
				return newCapture(100, 50), nil
			},
		}

		uc, err := usecase.NewExport(raster, reportConfig(), usecase.WithBlobStorage(storage))
		gt.NoError(t, err).Required()

		_, err = uc.ExportRegion(ctx, "dashboard-content")
		gt.Error(t, err)
		gt.True(t, goerr.HasTag(err, model.ErrTagSave))
	})
}

func TestExportSavesBeforeArchiving(t *testing.T) {
	ctx := context.Background()
	raster := &mocks.RasterizerMock{
		RasterizeFunc: func(ctx context.Context, regionID string) (image.Image, error) {
			return newCapture(100, 50), nil
		},
	}

	t.Run("local copy precedes upload", func(t *testing.T) {
		var steps []string
		storage := &mocks.BlobStorageMock{
			UploadFunc: func(ctx context.Context, path string, r io.Reader, contentType string) error {
				steps = append(steps, "upload")
				return nil
			},
			PublicURLFunc: func(path string) string { return path },
		}
		uc, err := usecase.NewExport(raster, reportConfig(),
			usecase.WithClock(fixedClock),
			usecase.WithBlobStorage(storage),
			usecase.WithReportSaver(func(ctx context.Context, result *model.ExportedReport) error {
				gt.True(t, bytes.HasPrefix(result.Content, []byte("%PDF")))
				steps = append(steps, "save")
				return nil
			}))
		gt.NoError(t, err).Required()

		_, err = uc.ExportRegion(ctx, "dashboard-content")
		gt.NoError(t, err).Required()
		gt.A(t, steps).Equal([]string{"save", "upload"})
	})

	t.Run("failed local copy archives nothing", func(t *testing.T) {
		storage := &mocks.BlobStorageMock{}
		uc, err := usecase.NewExport(raster, reportConfig(),
			usecase.WithBlobStorage(storage),
			usecase.WithReportSaver(func(ctx context.Context, result *model.ExportedReport) error {
				return errors.New("disk full")
			}))
		gt.NoError(t, err).Required()

		_, err = uc.ExportRegion(ctx, "dashboard-content")
		gt.True(t, goerr.HasTag(err, model.ErrTagSave))
		gt.Equal(t, 0, len(storage.UploadCalls()))
		gt.Equal(t, model.ExportStateIdle, uc.State())
	})
}

func TestExportIsExporting(t *testing.T) {
	release := make(chan struct{})
	started := make(chan struct{})
	raster := &mocks.RasterizerMock{
		RasterizeFunc: func(ctx context.Context, regionID string) (image.Image, error) {
			close(started)
			<-release
			return newCapture(10, 10), nil
		},
	}

	uc, err := usecase.NewExport(raster, reportConfig())
	gt.NoError(t, err).Required()
	gt.False(t, uc.IsExporting())

	done := make(chan error, 1)
	go func() {
		_, err := uc.ExportRegion(context.Background(), "dashboard-content")
		done <- err
	}()

	<-started
	gt.True(t, uc.IsExporting())
	gt.Equal(t, model.ExportStateCapturing, uc.State())

	close(release)
	gt.NoError(t, <-done)
	gt.False(t, uc.IsExporting())
}

func TestExportNotifies(t *testing.T) {
	var wg sync.WaitGroup
	wg.Add(1)

	var got *model.ExportedReport
	var gotStats *model.DashboardStats
	notifier := &mocks.NotifierMock{
		NotifyReportFunc: func(ctx context.Context, report *model.ExportedReport, stats *model.DashboardStats) error {
			defer wg.Done()
			got = report
			gotStats = stats
			return nil
		},
	}
	raster := &mocks.RasterizerMock{
		RasterizeFunc: func(ctx context.Context, regionID string) (image.Image, error) {
			return newCapture(100, 50), nil
		},
	}
	dashboard, err := usecase.NewDashboard(newEmptyRepoMock(), utcConfig(), usecase.WithClock(fixedClock))
	gt.NoError(t, err).Required()

	uc, err := usecase.NewExport(raster, reportConfig(),
		usecase.WithClock(fixedClock),
		usecase.WithNotifier(notifier),
		usecase.WithStatsSource(dashboard))
	gt.NoError(t, err).Required()

	report, err := uc.ExportRegion(context.Background(), "dashboard-content")
	gt.NoError(t, err).Required()

	waitTimeout(t, &wg, 2*time.Second)
	gt.Equal(t, report.FileName, got.FileName)
	gt.True(t, gotStats != nil)
	gt.Equal(t, 100.0, gotStats.NCStats.ComplianceRate)
}

func TestNewExportValidation(t *testing.T) {
	_, err := usecase.NewExport(nil, reportConfig())
	gt.Error(t, err)

	cfg := reportConfig()
	cfg.FilePrefix = ""
	_, err = usecase.NewExport(&mocks.RasterizerMock{}, cfg)
	gt.Error(t, err)
}

func waitTimeout(t *testing.T, wg *sync.WaitGroup, d time.Duration) {
	t.Helper()
	done := make(chan struct{})
	go func() {
		wg.Wait()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(d):
		t.Fatal("timed out waiting for async work")
	}
}
