// Package pdfcanvas draws single-page forms with absolute coordinates.
// Coordinates are in points with the origin at the bottom-left corner of
// the page, the convention every form layout in this repository uses.
package pdfcanvas

type PageSize struct {
	Name   string
	Width  float64 // in `pt` (1" = 72pts)
	Height float64 // in `pt`
}

var (
	A4     = PageSize{Name: "A4", Width: 595.2755905511812, Height: 841.8897637795277} // 210mm x 297mm
	Letter = PageSize{Name: "Letter", Width: 612, Height: 792}                          // 8.5" x 11"
)

// Font selects one of the PDF core fonts.
type Font struct {
	Family string
	Style  string // "", "B", "I" or "BI"
}

var (
	Helvetica        = Font{Family: "Helvetica"}
	HelveticaBold    = Font{Family: "Helvetica", Style: "B"}
	HelveticaOblique = Font{Family: "Helvetica", Style: "I"}
	ZapfDingbats     = Font{Family: "ZapfDingbats"}
)

// CheckMark is the ZapfDingbats glyph for a tick.
const CheckMark = "4"

// Canvas is the drawing surface of one page. Drawing calls do not return
// errors; the first failure is kept and reported by Err.
type Canvas interface {
	PageSize() PageSize

	SetFont(font Font, size float64)
	DrawString(x, y float64, text string)
	DrawCentredString(x, y float64, text string)
	// TextBlock draws lines top-down from (x, y) with a leading of 1.2 times
	// the current font size. Lines are neither wrapped nor clipped.
	TextBlock(x, y float64, lines []string)

	Line(x1, y1, x2, y2 float64)
	Rect(x, y, w, h float64)
	// DrawImage fits the image into the w x h box anchored at (x, y),
	// preserving its aspect ratio and centring it in the box.
	DrawImage(path string, x, y, w, h float64)

	Err() error
}

// Leading returns the line pitch used by TextBlock for a font size.
func Leading(size float64) float64 {
	return size * 1.2
}
