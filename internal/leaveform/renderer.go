package leaveform

import (
	"os"

	"github.com/OWENATOR-3000/staffPortal/internal/pdfcanvas"
)

const (
	leaveFormTitle        = "Employee Leave Request Form"
	registrationFormTitle = "Employee Registration Form"

	// Underlines sit this far below the text baseline.
	baselineOffset = 2
	rightMargin    = 545
)

// Renderer draws the portal's forms. Every layout is a fixed sequence of
// absolute draw calls tuned for an A4 page.
type Renderer struct {
	// LogoPath is drawn in the header when the file exists.
	LogoPath string
}

func NewRenderer(logoPath string) Renderer {
	return Renderer{LogoPath: logoPath}
}

// drawLogo skips the logo silently when there is no file to draw.
func (r Renderer) drawLogo(c pdfcanvas.Canvas, x, y, w, h float64) {
	if r.LogoPath == "" {
		return
	}
	if info, err := os.Stat(r.LogoPath); err != nil || info.IsDir() {
		return
	}
	c.DrawImage(r.LogoPath, x, y, w, h)
}

func underline(c pdfcanvas.Canvas, x1, y, x2 float64) {
	c.Line(x1, y-baselineOffset, x2, y-baselineOffset)
}

// LeaveForm draws a filled leave request.
func (r Renderer) LeaveForm(c pdfcanvas.Canvas, req LeaveRequest) error {
	page := c.PageSize()
	width, height := page.Width, page.Height

	// header
	r.drawLogo(c, 230, height-80, 130, 60)
	c.SetFont(pdfcanvas.HelveticaBold, 16)
	c.DrawCentredString(width/2, height-110, leaveFormTitle)

	y := height - 150
	c.SetFont(pdfcanvas.Helvetica, 12)

	// employee
	c.DrawString(50, y, "Employee Name:")
	c.DrawString(160, y, text(req.EmployeeName))
	underline(c, 150, y, rightMargin)

	y -= 30
	c.DrawString(50, y, "Date Submitted:")
	c.DrawString(160, y, text(req.CreatedAt))
	underline(c, 150, y, 300)

	c.DrawString(320, y, "Department:")
	c.DrawString(410, y, req.departmentText())
	underline(c, 400, y, rightMargin)

	y -= 30
	c.DrawString(50, y, "Supervisor Name:")
	c.DrawString(160, y, text(req.SupervisorName))
	underline(c, 150, y, rightMargin)

	// reason
	y -= 40
	c.SetFont(pdfcanvas.HelveticaBold, 12)
	c.DrawString(50, y, "REASON FOR LEAVE")
	c.SetFont(pdfcanvas.Helvetica, 11)

	y -= 25
	c.DrawString(60, y, "Type: "+text(req.ReasonType))
	if details := req.detailsText(); details != "" {
		c.DrawString(200, y, "Details: "+details)
	}

	// leave requested
	y -= 40
	c.SetFont(pdfcanvas.HelveticaBold, 12)
	c.DrawString(50, y, "LEAVE REQUESTED")
	c.SetFont(pdfcanvas.Helvetica, 11)

	y -= 25
	c.DrawString(50, y, "From:")
	c.DrawString(100, y, text(req.StartDate))
	underline(c, 90, y, 250)

	c.DrawString(320, y, "To:")
	c.DrawString(350, y, text(req.EndDate))
	underline(c, 340, y, 500)

	y -= 30
	c.DrawString(50, y, "Number of Hours:")
	c.DrawString(160, y, req.hoursText())
	underline(c, 150, y, 300)

	// comments, unwrapped; a long block runs into the signatures
	y -= 40
	c.SetFont(pdfcanvas.HelveticaBold, 12)
	c.DrawString(50, y, "Comment(s):")

	y -= 20
	c.SetFont(pdfcanvas.Helvetica, 10)
	c.TextBlock(55, y, req.commentLines())

	// signatures are pinned near the bottom edge
	y = 120
	c.SetFont(pdfcanvas.Helvetica, 11)

	c.DrawString(50, y, "Employee Signature:")
	if sig := req.signature(); sig != "" {
		c.SetFont(pdfcanvas.HelveticaOblique, 11)
		c.DrawString(180, y, sig)
		c.SetFont(pdfcanvas.Helvetica, 11)
	}
	underline(c, 170, y, 350)

	y -= 40
	c.DrawString(50, y, "Supervisor Signature:")
	underline(c, 170, y, 350)

	return c.Err()
}
