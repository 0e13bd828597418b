// Package raster captures a region of the rendered dashboard page with a headless browser.
package raster

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"regexp"
	"strings"
	"sync"
	"time"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/mouhcineelarfaoui0-afk/smart-qualiti-flow/pkg/domain/interfaces"
	"github.com/mouhcineelarfaoui0-afk/smart-qualiti-flow/pkg/domain/model"
)

// Default capture settings
const (
	DefaultScaleFactor    = 2.0
	DefaultViewportWidth  = 1280
	DefaultViewportHeight = 900
	DefaultTimeout        = 30 * time.Second
)

var regionIDPattern = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9_-]*$`)

// Config configures the browser rasterizer
type Config struct {
	// PageURL is the URL of the rendered dashboard page
	PageURL string
	// ControlURL connects to an already running browser instead of launching one
	ControlURL string
	// BrowserBin is the browser executable; empty lets the launcher find or download one
	BrowserBin string
	NoSandbox  bool

	ViewportWidth  int
	ViewportHeight int
	ScaleFactor    float64
	Timeout        time.Duration
}

func (c Config) withDefaults() Config {
	if c.ViewportWidth <= 0 {
		c.ViewportWidth = DefaultViewportWidth
	}
	if c.ViewportHeight <= 0 {
		c.ViewportHeight = DefaultViewportHeight
	}
	if c.ScaleFactor <= 0 {
		c.ScaleFactor = DefaultScaleFactor
	}
	if c.Timeout <= 0 {
		c.Timeout = DefaultTimeout
	}
	return c
}

// Browser implements interfaces.Rasterizer with a lazily started headless browser.
// The browser is shared; every capture runs in its own page.
type Browser struct {
	cfg Config

	mu       sync.Mutex
	browser  *rod.Browser
	launcher *launcher.Launcher
}

var _ interfaces.Rasterizer = (*Browser)(nil)

// New creates a rasterizer. No browser is started until the first capture.
func New(cfg Config) *Browser {
	return &Browser{cfg: cfg.withDefaults()}
}

// ValidRegionID reports whether id can be used as an element id selector
func ValidRegionID(id string) bool {
	return regionIDPattern.MatchString(id)
}

func (b *Browser) ensureStarted(ctx context.Context) (*rod.Browser, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.browser != nil {
		if _, err := b.browser.Version(); err == nil {
			return b.browser, nil
		}
		ctxlog.From(ctx).Warn("Stale browser connection detected, reconnecting")
		_ = b.browser.Close()
		b.browser = nil
	}

	controlURL := b.cfg.ControlURL
	if controlURL == "" {
		l := launcher.New().Headless(true).NoSandbox(b.cfg.NoSandbox)
		if b.cfg.BrowserBin != "" {
			l = l.Bin(b.cfg.BrowserBin)
		}
		u, err := l.Launch()
		if err != nil {
			return nil, goerr.Wrap(err, "failed to launch browser",
				goerr.V("bin", b.cfg.BrowserBin),
				goerr.T(model.ErrTagRasterization))
		}
		controlURL = u
		b.launcher = l
	}

	// The browser outlives the request that started it
	browser := rod.New().ControlURL(controlURL)
	if err := browser.Connect(); err != nil {
		return nil, goerr.Wrap(err, "failed to connect to browser", goerr.T(model.ErrTagRasterization))
	}

	ctxlog.From(ctx).Info("Browser connected", "launched", b.launcher != nil)
	b.browser = browser
	return browser, nil
}

// Rasterize opens the dashboard page and captures the element with the given id.
// The result is flattened on a white background and has ScaleFactor pixels per CSS pixel.
func (b *Browser) Rasterize(ctx context.Context, regionID string) (image.Image, error) {
	if !ValidRegionID(regionID) {
		return nil, goerr.New("invalid export target id",
			goerr.V("region", regionID),
			goerr.T(model.ErrTagExportTargetMissing))
	}

	browser, err := b.ensureStarted(ctx)
	if err != nil {
		return nil, err
	}

	page, err := browser.Page(proto.TargetCreateTarget{URL: ""})
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create page", goerr.T(model.ErrTagRasterization))
	}
	defer func() {
		if err := page.Close(); err != nil {
			ctxlog.From(ctx).Warn("failed to close page", "error", err)
		}
	}()

	p := page.Context(ctx).Timeout(b.cfg.Timeout)

	if err := p.SetViewport(&proto.EmulationSetDeviceMetricsOverride{
		Width:             b.cfg.ViewportWidth,
		Height:            b.cfg.ViewportHeight,
		DeviceScaleFactor: b.cfg.ScaleFactor,
		Mobile:            false,
	}); err != nil {
		return nil, goerr.Wrap(err, "failed to set viewport", goerr.T(model.ErrTagRasterization))
	}

	opaque := 1.0
	if err := (proto.EmulationSetDefaultBackgroundColorOverride{
		Color: &proto.DOMRGBA{R: 255, G: 255, B: 255, A: &opaque},
	}).Call(p); err != nil {
		return nil, goerr.Wrap(err, "failed to set background", goerr.T(model.ErrTagRasterization))
	}

	if err := p.Navigate(b.cfg.PageURL); err != nil {
		return nil, goerr.Wrap(err, "failed to open dashboard page",
			goerr.V("url", b.cfg.PageURL),
			goerr.T(model.ErrTagRasterization))
	}
	if err := p.WaitLoad(); err != nil {
		return nil, goerr.Wrap(err, "failed to load dashboard page",
			goerr.V("url", b.cfg.PageURL),
			goerr.T(model.ErrTagRasterization))
	}

	found, el, err := p.Has("#" + regionID)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to query export target",
			goerr.V("region", regionID),
			goerr.T(model.ErrTagRasterization))
	}
	if !found {
		return nil, goerr.New("export target not found",
			goerr.V("region", regionID),
			goerr.T(model.ErrTagExportTargetMissing))
	}

	// Document coordinates, so regions taller than the viewport are captured whole
	res, err := el.Eval(`() => {
		const r = this.getBoundingClientRect();
		return {x: r.left + window.scrollX, y: r.top + window.scrollY, width: r.width, height: r.height};
	}`)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to measure export target",
			goerr.V("region", regionID),
			goerr.T(model.ErrTagRasterization))
	}
	clip := &proto.PageViewport{
		X:      res.Value.Get("x").Num(),
		Y:      res.Value.Get("y").Num(),
		Width:  res.Value.Get("width").Num(),
		Height: res.Value.Get("height").Num(),
		Scale:  1,
	}
	if clip.Width < 1 || clip.Height < 1 {
		return nil, goerr.New("export target is empty",
			goerr.V("region", regionID),
			goerr.V("width", clip.Width),
			goerr.V("height", clip.Height),
			goerr.T(model.ErrTagRasterization))
	}

	shot, err := proto.PageCaptureScreenshot{
		Format:                proto.PageCaptureScreenshotFormatPng,
		Clip:                  clip,
		FromSurface:           true,
		CaptureBeyondViewport: true,
	}.Call(p)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to capture export target",
			goerr.V("region", regionID),
			goerr.T(model.ErrTagRasterization))
	}

	img, err := png.Decode(bytes.NewReader(shot.Data))
	if err != nil {
		return nil, goerr.Wrap(err, "failed to decode capture", goerr.T(model.ErrTagRasterization))
	}

	ctxlog.From(ctx).Debug("Region captured",
		"region", regionID,
		"width", img.Bounds().Dx(),
		"height", img.Bounds().Dy(),
	)
	return Flatten(img), nil
}

// Close closes the browser and kills it when it was launched here
func (b *Browser) Close() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	var err error
	if b.browser != nil {
		err = b.browser.Close()
		b.browser = nil
	}
	if b.launcher != nil {
		b.launcher.Kill()
		b.launcher = nil
	}
	if err != nil && !strings.Contains(err.Error(), "closed") {
		return goerr.Wrap(err, "failed to close browser")
	}
	return nil
}

// Flatten composites img over an opaque white background
func Flatten(img image.Image) *image.RGBA {
	bounds := img.Bounds()
	out := image.NewRGBA(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
	draw.Draw(out, out.Bounds(), &image.Uniform{C: color.White}, image.Point{}, draw.Src)
	draw.Draw(out, out.Bounds(), img, bounds.Min, draw.Over)
	return out
}
