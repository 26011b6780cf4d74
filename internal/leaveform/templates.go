package leaveform

import (
	leaveformerrors "github.com/OWENATOR-3000/staffPortal/internal/leaveform/errors"
	"github.com/OWENATOR-3000/staffPortal/internal/pdfcanvas"
)

// Template names a blank form.
type Template string

const (
	TemplateRegistration Template = "registration"
	TemplateLeave        Template = "leave"
)

// Templates lists every blank form in output order.
var Templates = []Template{TemplateRegistration, TemplateLeave}

func ParseTemplate(name string) (Template, error) {
	for _, t := range Templates {
		if string(t) == name {
			return t, nil
		}
	}
	return "", leaveformerrors.ErrUnknownTemplate
}

// Filename is the fixed file name a blank form is written under.
func (t Template) Filename() string {
	switch t {
	case TemplateRegistration:
		return "employee_form.pdf"
	case TemplateLeave:
		return "employee_leave_form.pdf"
	default:
		return string(t) + ".pdf"
	}
}

func (t Template) title() string {
	switch t {
	case TemplateRegistration:
		return registrationFormTitle
	default:
		return leaveFormTitle
	}
}

// Draw renders the blank form t onto c.
func (r Renderer) Draw(c pdfcanvas.Canvas, t Template) error {
	switch t {
	case TemplateRegistration:
		return r.RegistrationForm(c)
	case TemplateLeave:
		return r.BlankLeaveForm(c)
	default:
		return leaveformerrors.ErrUnknownTemplate
	}
}
