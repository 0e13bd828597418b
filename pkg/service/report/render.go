package report

import (
	"bytes"
	"image"
	"image/png"
	"time"

	"codeberg.org/go-pdf/fpdf"
	"github.com/m-mizutani/goerr/v2"
)

const (
	fontFamily   = "Helvetica"
	imageName    = "dashboard"
	creatorName  = "SmartQuali"
	titleSize    = 20
	subtitleSize = 10
	footerSize   = 8
)

// Document is everything Render needs to produce a PDF
type Document struct {
	Layout      *Layout
	Image       image.Image
	Title       string
	GeneratedAt time.Time
}

// Render writes the PDF for the document and returns its bytes
func Render(doc Document) ([]byte, error) {
	if doc.Layout == nil || len(doc.Layout.Pages) == 0 {
		return nil, goerr.New("layout has no pages")
	}
	if doc.Image == nil {
		return nil, goerr.New("image is nil")
	}

	var imgBuf bytes.Buffer
	if err := png.Encode(&imgBuf, doc.Image); err != nil {
		return nil, goerr.Wrap(err, "failed to encode image")
	}

	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetAutoPageBreak(false, 0)
	pdf.SetMargins(0, 0, 0)
	pdf.SetTitle(doc.Title, true)
	pdf.SetCreator(creatorName, true)
	if !doc.GeneratedAt.IsZero() {
		pdf.SetCreationDate(doc.GeneratedAt)
		pdf.SetModificationDate(doc.GeneratedAt)
	}

	// Core fonts are cp1252; accented French text needs translating
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	opts := fpdf.ImageOptions{ImageType: "PNG", AllowNegativePosition: true}
	pdf.RegisterImageOptionsReader(imageName, opts, &imgBuf)

	for _, page := range doc.Layout.Pages {
		pdf.AddPage()

		if page.Header != nil {
			drawHeader(pdf, tr, page.Header)
		}

		img := page.Image
		pdf.ImageOptions(imageName, img.X, img.Y, img.W, img.H, false, opts, 0, "")

		if page.Footer != "" {
			pdf.SetFont(fontFamily, "", footerSize)
			pdf.SetTextColor(150, 150, 150)
			centerText(pdf, FooterY, tr(page.Footer))
		}
	}

	if err := pdf.Error(); err != nil {
		return nil, goerr.Wrap(err, "failed to render pdf")
	}

	var out bytes.Buffer
	if err := pdf.Output(&out); err != nil {
		return nil, goerr.Wrap(err, "failed to write pdf")
	}
	return out.Bytes(), nil
}

func drawHeader(pdf *fpdf.Fpdf, tr func(string) string, h *Header) {
	pdf.SetFont(fontFamily, "", titleSize)
	pdf.SetTextColor(30, 64, 175)
	centerText(pdf, TitleY, tr(h.Title))

	pdf.SetFont(fontFamily, "", subtitleSize)
	pdf.SetTextColor(100, 100, 100)
	centerText(pdf, SubtitleY, tr(h.Subtitle))

	pdf.SetDrawColor(200, 200, 200)
	pdf.Line(SeparatorLeft, SeparatorY, SeparatorRight, SeparatorY)
}

func centerText(pdf *fpdf.Fpdf, y float64, s string) {
	x := PageWidth/2 - pdf.GetStringWidth(s)/2
	pdf.Text(x, y, s)
}
