// Package report lays out a captured dashboard image on A4 pages and renders it as PDF.
//
// Layout happens in two stages. Paginate places the header and slices the image over
// as many pages as its scaled height requires. StampFooters then numbers the pages,
// which is only possible once the page count is known.
package report

import (
	"fmt"
	"math"

	"github.com/m-mizutani/goerr/v2"
)

// A4 portrait geometry in millimetres
const (
	PageWidth  = 210.0
	PageHeight = 297.0

	// ContentTop is where the image starts on the first page, below the header
	ContentTop = 30.0

	TitleY     = 15.0
	SubtitleY  = 22.0
	SeparatorY = 26.0
	FooterY    = 290.0

	SeparatorLeft  = 20.0
	SeparatorRight = 190.0
)

// pageEpsilon absorbs floating point noise so an image of exactly N pages does not
// spill a blank page
const pageEpsilon = 1e-6

// Header is printed on the first page only
type Header struct {
	Title    string
	Subtitle string
}

// Placement is the rectangle, in millimetres, where the image is drawn on a page.
// Y is negative on continuation pages: the image is shifted up by the height
// already shown on previous pages.
type Placement struct {
	X, Y, W, H float64
}

// Page is one A4 page of the report
type Page struct {
	Number int
	Header *Header
	Image  Placement
	Footer string
}

// Layout is the full page plan of a report
type Layout struct {
	Pages []Page
	// ImageHeight is the height of the image scaled to page width, in millimetres
	ImageHeight float64
}

// PageCount returns the number of pages
func (l *Layout) PageCount() int {
	return len(l.Pages)
}

// Paginate plans the pages for an image of pxW x pxH pixels scaled to the page width
func Paginate(header Header, pxW, pxH int) (*Layout, error) {
	if pxW <= 0 || pxH <= 0 {
		return nil, goerr.New("invalid image size", goerr.V("width", pxW), goerr.V("height", pxH))
	}

	imgH := float64(pxH) * PageWidth / float64(pxW)
	layout := &Layout{ImageHeight: imgH}

	h := header
	layout.Pages = append(layout.Pages, Page{
		Number: 1,
		Header: &h,
		Image:  Placement{X: 0, Y: ContentTop, W: PageWidth, H: imgH},
	})

	heightLeft := imgH - (PageHeight - ContentTop)
	for heightLeft > pageEpsilon {
		position := heightLeft - imgH
		layout.Pages = append(layout.Pages, Page{
			Number: len(layout.Pages) + 1,
			Image:  Placement{X: 0, Y: position, W: PageWidth, H: imgH},
		})
		heightLeft -= PageHeight
	}

	return layout, nil
}

// expectedPageCount returns the number of pages Paginate produces for a scaled image height
func expectedPageCount(imageHeight float64) int {
	overflow := imageHeight - (PageHeight - ContentTop)
	if overflow <= pageEpsilon {
		return 1
	}
	return 1 + int(math.Ceil(overflow/PageHeight-pageEpsilon/PageHeight))
}

// FooterFormat builds the footer text of page i out of n
type FooterFormat func(i, n int) string

// PageFooter returns a FooterFormat printing "<label> | Page i/n"
func PageFooter(label string) FooterFormat {
	return func(i, n int) string {
		return fmt.Sprintf("%s | Page %d/%d", label, i, n)
	}
}

// StampFooters returns a copy of the layout with a footer on every page
func StampFooters(layout *Layout, format FooterFormat) *Layout {
	stamped := &Layout{
		ImageHeight: layout.ImageHeight,
		Pages:       make([]Page, len(layout.Pages)),
	}
	n := len(layout.Pages)
	for i, p := range layout.Pages {
		p.Footer = format(i+1, n)
		stamped.Pages[i] = p
	}
	return stamped
}
