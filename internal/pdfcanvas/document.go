package pdfcanvas

import (
	"io"
	"time"

	"github.com/go-pdf/fpdf"
)

// Document is a Canvas backed by fpdf. fpdf measures y from the top edge,
// so every coordinate is flipped on the way in.
type Document struct {
	pdf      *fpdf.Fpdf
	size     PageSize
	fontSize float64
	tr       func(string) string
}

type Option func(*fpdf.Fpdf)

// WithCompression toggles content stream compression. Uncompressed output
// keeps drawn strings readable in the raw file.
func WithCompression(on bool) Option {
	return func(pdf *fpdf.Fpdf) {
		pdf.SetCompression(on)
	}
}

func WithTitle(title string) Option {
	return func(pdf *fpdf.Fpdf) {
		pdf.SetTitle(title, true)
	}
}

// WithCreationDate pins the document dates so identical input produces
// identical bytes.
func WithCreationDate(t time.Time) Option {
	return func(pdf *fpdf.Fpdf) {
		pdf.SetCreationDate(t)
		pdf.SetModificationDate(t)
	}
}

// New opens a document with a single portrait page of the given size.
func New(size PageSize, opts ...Option) *Document {
	pdf := fpdf.NewCustom(&fpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "pt",
		Size:           fpdf.SizeType{Wd: size.Width, Ht: size.Height},
	})
	pdf.SetCreator("staffPortal forms", true)
	pdf.SetMargins(0, 0, 0)
	pdf.SetAutoPageBreak(false, 0)
	for _, opt := range opts {
		opt(pdf)
	}
	pdf.AddPage()
	pdf.SetLineWidth(1)

	d := &Document{
		pdf:  pdf,
		size: size,
		tr:   pdf.UnicodeTranslatorFromDescriptor(""),
	}
	d.SetFont(Helvetica, 12)
	return d
}

func (d *Document) PageSize() PageSize {
	return d.size
}

func (d *Document) SetFont(font Font, size float64) {
	d.pdf.SetFont(font.Family, font.Style, size)
	d.fontSize = size
}

func (d *Document) DrawString(x, y float64, text string) {
	d.pdf.Text(x, d.flip(y), d.tr(text))
}

func (d *Document) DrawCentredString(x, y float64, text string) {
	text = d.tr(text)
	d.pdf.Text(x-d.pdf.GetStringWidth(text)/2, d.flip(y), text)
}

func (d *Document) TextBlock(x, y float64, lines []string) {
	leading := Leading(d.fontSize)
	for i, line := range lines {
		d.DrawString(x, y-float64(i)*leading, line)
	}
}

func (d *Document) Line(x1, y1, x2, y2 float64) {
	d.pdf.Line(x1, d.flip(y1), x2, d.flip(y2))
}

func (d *Document) Rect(x, y, w, h float64) {
	d.pdf.Rect(x, d.flip(y+h), w, h, "D")
}

func (d *Document) DrawImage(path string, x, y, w, h float64) {
	opts := fpdf.ImageOptions{ReadDpi: false}
	info := d.pdf.RegisterImageOptions(path, opts)
	if !d.pdf.Ok() || info == nil {
		return
	}

	dw, dh := fitBox(info.Width(), info.Height(), w, h)
	left := x + (w-dw)/2
	bottom := y + (h-dh)/2
	d.pdf.ImageOptions(path, left, d.flip(bottom+dh), dw, dh, false, opts, 0, "")
}

func (d *Document) Err() error {
	return d.pdf.Error()
}

// Output finalizes the page and writes the PDF to w. The document cannot
// be drawn on afterwards.
func (d *Document) Output(w io.Writer) error {
	return d.pdf.Output(w)
}

// Save finalizes the page and writes the PDF to path.
func (d *Document) Save(path string) error {
	return d.pdf.OutputFileAndClose(path)
}

func (d *Document) flip(y float64) float64 {
	return d.size.Height - y
}

// fitBox scales an iw x ih image to the largest size that fits in w x h.
func fitBox(iw, ih, w, h float64) (float64, float64) {
	if iw <= 0 || ih <= 0 {
		return w, h
	}
	scale := w / iw
	if s := h / ih; s < scale {
		scale = s
	}
	return iw * scale, ih * scale
}
