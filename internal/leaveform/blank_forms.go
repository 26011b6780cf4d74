package leaveform

import (
	"github.com/OWENATOR-3000/staffPortal/internal/pdfcanvas"
)

const checkboxSize = 10

var registrationFields = []string{
	"Full Name:",
	"Employee Number:",
	"Department:",
	"Job Title:",
	"Start Date:",
	"Email:",
	"Phone Number:",
	"Emergency Contact:",
}

// LeaveReasons are the checkbox labels of the paper leave form.
var LeaveReasons = []string{
	"Vacation", "Leave of Absence", "Sick - Family",
	"Sick - Self", "Dr. Appointment", "Sick Family",
	"Funeral For", ReasonOther,
}

type reasonBox struct {
	label string
	x, y  float64
	// fillIn rows carry a line for free text after the label.
	fillIn bool
}

// reasonGrid places the reason checkboxes relative to the row y of the
// first line of the grid.
func reasonGrid(y float64) []reasonBox {
	positions := [][2]float64{
		{50, y}, {180, y}, {330, y},
		{50, y - 20}, {180, y - 20}, {50, y - 40},
		{50, y - 60}, {50, y - 80},
	}

	boxes := make([]reasonBox, len(LeaveReasons))
	for i, label := range LeaveReasons {
		boxes[i] = reasonBox{
			label:  label,
			x:      positions[i][0],
			y:      positions[i][1],
			fillIn: label == "Sick Family" || label == "Funeral For" || label == ReasonOther,
		}
	}
	return boxes
}

// RegistrationForm draws the blank employee registration form.
func (r Renderer) RegistrationForm(c pdfcanvas.Canvas) error {
	height := c.PageSize().Height

	r.drawLogo(c, 40, height-100, 100, 60)

	c.SetFont(pdfcanvas.HelveticaBold, 16)
	c.DrawString(160, height-80, registrationFormTitle)

	c.SetFont(pdfcanvas.Helvetica, 12)
	y := height - 140
	for _, label := range registrationFields {
		c.DrawString(50, y, label)
		underline(c, 180, y, 500)
		y -= 30
	}

	return c.Err()
}

// BlankLeaveForm draws the paper leave form with empty fields. The cursor
// arithmetic between sections is part of the layout and is kept as is.
func (r Renderer) BlankLeaveForm(c pdfcanvas.Canvas) error {
	return r.drawLeaveSheet(c, nil)
}

// leaveSheetValues fills the paper layout; a nil value draws it blank.
type leaveSheetValues struct {
	employeeName   string
	date           string
	supervisorName string
	reasonType     string
	reasonDetails  string
	from, to       string
	hours, days    string
	signature      string
	comments       []string
}

func (r Renderer) drawLeaveSheet(c pdfcanvas.Canvas, v *leaveSheetValues) error {
	page := c.PageSize()
	width, height := page.Width, page.Height

	value := func(x, y float64, text string) {
		if v == nil || text == "" {
			return
		}
		c.SetFont(pdfcanvas.HelveticaBold, 12)
		c.DrawString(x, y, text)
		c.SetFont(pdfcanvas.Helvetica, 12)
	}

	// header and logo
	r.drawLogo(c, 230, height-80, 130, 60)
	c.SetFont(pdfcanvas.HelveticaBold, 16)
	c.DrawCentredString(width/2, height-110, leaveFormTitle)

	c.SetFont(pdfcanvas.Helvetica, 12)
	y := height - 140

	// employee info
	c.DrawString(50, y, "Employee Name:")
	underline(c, 160, y, 500)
	if v != nil {
		value(162, y, v.employeeName)
	}

	y -= 25
	c.DrawString(50, y, "Date:")
	underline(c, 160, y, 300)
	if v != nil {
		value(162, y, v.date)
	}

	y -= 25
	c.DrawString(50, y, "Supervisor Name:")
	underline(c, 160, y, 500)
	if v != nil {
		value(162, y, v.supervisorName)
	}

	// reason
	y -= 40
	c.SetFont(pdfcanvas.HelveticaBold, 12)
	c.DrawString(50, y, "REASON FOR LEAVE")
	c.SetFont(pdfcanvas.Helvetica, 12)

	y -= 20
	for _, box := range reasonGrid(y) {
		checked := v != nil && v.reasonType == box.label

		c.Rect(box.x, box.y, checkboxSize, checkboxSize)
		if checked {
			c.SetFont(pdfcanvas.ZapfDingbats, 10)
			c.DrawString(box.x+1, box.y+1, pdfcanvas.CheckMark)
			c.SetFont(pdfcanvas.Helvetica, 12)
		}
		c.DrawString(box.x+15, box.y, box.label)

		if box.fillIn {
			c.Line(box.x+100, box.y+2, 500, box.y+2)
			if checked && v.reasonDetails != "" {
				c.SetFont(pdfcanvas.HelveticaBold, 10)
				c.DrawString(box.x+102, box.y, v.reasonDetails)
				c.SetFont(pdfcanvas.Helvetica, 12)
			}
		}
	}

	// leave requested
	y = y - 100
	c.SetFont(pdfcanvas.HelveticaBold, 12)
	c.DrawString(50, y, "LEAVE REQUESTED")
	c.SetFont(pdfcanvas.Helvetica, 12)

	y -= 20
	c.DrawString(50, y, "From:")
	underline(c, 100, y, 200)
	c.DrawString(250, y, "To:")
	underline(c, 280, y, 380)
	if v != nil {
		value(102, y, v.from)
		value(282, y, v.to)
	}

	y -= 25
	c.DrawString(50, y, "Number of Hours:")
	underline(c, 160, y, 260)
	c.DrawString(300, y, "Number of Days:")
	underline(c, 410, y, 500)
	if v != nil {
		value(162, y, v.hours)
		value(412, y, v.days)
	}

	// signatures
	y -= 40
	c.DrawString(50, y, "Employee Signature:")
	underline(c, 180, y, 300)
	c.DrawString(350, y, "Date:")
	underline(c, 390, y, 500)
	if v != nil {
		c.SetFont(pdfcanvas.HelveticaOblique, 11)
		c.DrawString(182, y, v.signature)
		c.SetFont(pdfcanvas.Helvetica, 12)
		value(392, y, v.date)
	}

	y -= 25
	c.DrawString(50, y, "Supervisor Signature:")
	underline(c, 180, y, 300)
	c.DrawString(350, y, "Date:")
	underline(c, 390, y, 500)

	// comments
	y -= 40
	c.DrawString(50, y, "Comment(s):")
	commentY := y - 13
	y -= 15
	for i := 0; i < 3; i++ {
		c.Line(50, y, 500, y)
		y -= 15
	}
	if v != nil && len(v.comments) > 0 {
		c.SetFont(pdfcanvas.HelveticaBold, 10)
		c.TextBlock(55, commentY, v.comments)
	}

	return c.Err()
}
