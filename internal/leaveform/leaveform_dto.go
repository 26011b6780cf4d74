package leaveform

import (
	"strconv"
	"strings"
)

const (
	ReasonOther = "Other"

	placeholderNA         = "N/A"
	placeholderNoComments = "No comments."
)

// LeaveRequest is the data drawn onto a leave form. Dates and created_at
// are printed as supplied.
//
// Required fields are pointers so `required` checks that the key is present
// and not null; an empty string is a valid value.
type LeaveRequest struct {
	EmployeeName          *string  `json:"employee_name" binding:"required"`
	Department            *string  `json:"department"`
	SupervisorName        *string  `json:"supervisor_name" binding:"required"`
	StartDate             *string  `json:"start_date" binding:"required"`
	EndDate               *string  `json:"end_date" binding:"required"`
	ReasonType            *string  `json:"reason_type" binding:"required"`
	ReasonDetails         *string  `json:"reason_details"`
	NumberOfHours         *float64 `json:"number_of_hours" binding:"required"`
	Comments              *string  `json:"comments"`
	EmployeeSignatureName *string  `json:"employee_signature_name"`
	CreatedAt             *string  `json:"created_at" binding:"required"`
}

func (r LeaveRequest) departmentText() string {
	return orDefault(r.Department, placeholderNA)
}

// detailsText is non-empty only when the details belong on the form.
func (r LeaveRequest) detailsText() string {
	if text(r.ReasonType) != ReasonOther {
		return ""
	}
	return orDefault(r.ReasonDetails, "")
}

func (r LeaveRequest) commentLines() []string {
	return strings.Split(orDefault(r.Comments, placeholderNoComments), "\n")
}

func (r LeaveRequest) signature() string {
	return orDefault(r.EmployeeSignatureName, "")
}

func (r LeaveRequest) hoursText() string {
	if r.NumberOfHours == nil {
		return ""
	}
	return formatHours(*r.NumberOfHours)
}

// Filename is the download name of the filled leave form.
func (r LeaveRequest) Filename() string {
	return "Leave_Request_" + underscored(text(r.EmployeeName)) + ".pdf"
}

// ChecklistFilename is the download name of the checklist variant.
func (r LeaveRequest) ChecklistFilename() string {
	return "Leave_Checklist_" + underscored(text(r.EmployeeName)) + ".pdf"
}

func underscored(s string) string {
	return strings.ReplaceAll(s, " ", "_")
}

// text dereferences a required field; validation guarantees it is set.
func text(v *string) string {
	if v == nil {
		return ""
	}
	return *v
}

func orDefault(v *string, def string) string {
	if v == nil || *v == "" {
		return def
	}
	return *v
}

// formatHours prints v the way the portal's Python services print floats:
// positional with at least one decimal (8 -> "8.0", 7.5 -> "7.5") while the
// decimal exponent is in [-4, 16), scientific otherwise (1e21 -> "1e+21").
func formatHours(v float64) string {
	sci := strconv.FormatFloat(v, 'e', -1, 64)
	exp, err := strconv.Atoi(sci[strings.IndexByte(sci, 'e')+1:])
	if err == nil && (exp < -4 || exp >= 16) {
		return sci
	}

	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}
