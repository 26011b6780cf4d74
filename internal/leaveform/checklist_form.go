package leaveform

import (
	"math"
	"strconv"
	"time"

	"github.com/OWENATOR-3000/staffPortal/internal/pdfcanvas"
)

const defaultSignature = "Digitally Signed"

var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// LeaveChecklist draws a leave request onto the paper form layout: the
// matching reason is ticked and values sit on the blank form's lines.
func (r Renderer) LeaveChecklist(c pdfcanvas.Canvas, req LeaveRequest) error {
	details := orDefault(req.ReasonDetails, "")

	var comments []string
	if req.Comments != nil && *req.Comments != "" {
		comments = req.commentLines()
	}

	signature := req.signature()
	if signature == "" {
		signature = defaultSignature
	}

	return r.drawLeaveSheet(c, &leaveSheetValues{
		employeeName:   text(req.EmployeeName),
		date:           displayDate(text(req.CreatedAt)),
		supervisorName: text(req.SupervisorName),
		reasonType:     text(req.ReasonType),
		reasonDetails:  details,
		from:           displayDate(text(req.StartDate)),
		to:             displayDate(text(req.EndDate)),
		hours:          req.hoursText(),
		days:           numberOfDays(text(req.StartDate), text(req.EndDate)),
		signature:      signature,
		comments:       comments,
	})
}

func parseDate(v string) (time.Time, bool) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, v); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// displayDate prints parseable dates as YYYY-MM-DD and anything else as
// given.
func displayDate(v string) string {
	t, ok := parseDate(v)
	if !ok {
		return v
	}
	return t.Format("2006-01-02")
}

// numberOfDays counts both ends of the range; partial days round up.
func numberOfDays(start, end string) string {
	s, ok := parseDate(start)
	if !ok {
		return placeholderNA
	}
	e, ok := parseDate(end)
	if !ok {
		return placeholderNA
	}

	diff := math.Abs(e.Sub(s).Hours() / 24)
	return strconv.Itoa(int(math.Ceil(diff)) + 1)
}
