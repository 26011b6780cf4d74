// Package pdfcanvastest provides a Canvas that records draw calls instead of
// producing a PDF, for asserting form layouts in tests.
package pdfcanvastest

import (
	"github.com/OWENATOR-3000/staffPortal/internal/pdfcanvas"
)

type OpKind string

const (
	OpText      OpKind = "text"
	OpCentred   OpKind = "centred"
	OpTextBlock OpKind = "text_block"
	OpLine      OpKind = "line"
	OpRect      OpKind = "rect"
	OpImage     OpKind = "image"
)

type Op struct {
	Kind   OpKind
	X, Y   float64
	X2, Y2 float64 // line end
	W, H   float64 // rect and image box
	Text   string
	Lines  []string
	Path   string
	Font   pdfcanvas.Font
	Size   float64
}

type Recorder struct {
	Ops []Op

	size pdfcanvas.PageSize
	font pdfcanvas.Font
	pt   float64
	err  error
}

func NewRecorder(size pdfcanvas.PageSize) *Recorder {
	return &Recorder{size: size, font: pdfcanvas.Helvetica, pt: 12}
}

// Fail makes Err report err, as a real canvas would after a failed draw.
func (r *Recorder) Fail(err error) {
	r.err = err
}

func (r *Recorder) PageSize() pdfcanvas.PageSize { return r.size }

func (r *Recorder) SetFont(font pdfcanvas.Font, size float64) {
	r.font = font
	r.pt = size
}

func (r *Recorder) DrawString(x, y float64, text string) {
	r.add(Op{Kind: OpText, X: x, Y: y, Text: text})
}

func (r *Recorder) DrawCentredString(x, y float64, text string) {
	r.add(Op{Kind: OpCentred, X: x, Y: y, Text: text})
}

func (r *Recorder) TextBlock(x, y float64, lines []string) {
	r.add(Op{Kind: OpTextBlock, X: x, Y: y, Lines: append([]string(nil), lines...)})
}

func (r *Recorder) Line(x1, y1, x2, y2 float64) {
	r.add(Op{Kind: OpLine, X: x1, Y: y1, X2: x2, Y2: y2})
}

func (r *Recorder) Rect(x, y, w, h float64) {
	r.add(Op{Kind: OpRect, X: x, Y: y, W: w, H: h})
}

func (r *Recorder) DrawImage(path string, x, y, w, h float64) {
	r.add(Op{Kind: OpImage, X: x, Y: y, W: w, H: h, Path: path})
}

func (r *Recorder) Err() error { return r.err }

func (r *Recorder) add(op Op) {
	op.Font = r.font
	op.Size = r.pt
	r.Ops = append(r.Ops, op)
}

// FindText returns the first text or centred op drawing exactly text.
func (r *Recorder) FindText(text string) (Op, bool) {
	for _, op := range r.Ops {
		if (op.Kind == OpText || op.Kind == OpCentred) && op.Text == text {
			return op, true
		}
	}
	return Op{}, false
}

// Texts lists every single-line string drawn, in order.
func (r *Recorder) Texts() []string {
	var out []string
	for _, op := range r.Ops {
		if op.Kind == OpText || op.Kind == OpCentred {
			out = append(out, op.Text)
		}
	}
	return out
}

// Filter returns the ops of one kind, in order.
func (r *Recorder) Filter(kind OpKind) []Op {
	var out []Op
	for _, op := range r.Ops {
		if op.Kind == kind {
			out = append(out, op)
		}
	}
	return out
}

// HasLine reports whether a horizontal line from x1 to x2 was drawn at y.
func (r *Recorder) HasLine(x1, x2, y float64) bool {
	for _, op := range r.Filter(OpLine) {
		if approx(op.X, x1) && approx(op.X2, x2) && approx(op.Y, y) && approx(op.Y2, y) {
			return true
		}
	}
	return false
}

func approx(a, b float64) bool {
	d := a - b
	return d < 1e-6 && d > -1e-6
}
