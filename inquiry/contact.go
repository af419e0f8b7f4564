package inquiry

import (
	"github.com/peace-building-initiative/site/config"
	"github.com/rohanthewiz/serr"
)

const (
	FieldName    = "name"
	FieldEmail   = "email"
	FieldMessage = "message"
)

var ContactSubject = "Contact Form Submission — " + config.SiteName

// ContactSubmission is a visitor inquiry from the contact section.
type ContactSubmission struct {
	Name    string `form:"name"`
	Email   string `form:"email"`
	Message string `form:"message"`
}

func (s ContactSubmission) Validate() error {
	if err := validateRequired(FieldName, "Name", s.Name); err != nil {
		return err
	}
	if err := validateEmail(FieldEmail, s.Email); err != nil {
		return err
	}
	return validateRequired(FieldMessage, "Message", s.Message)
}

func (s ContactSubmission) Body() string {
	return "Name: " + s.Name + "\n" +
		"Email: " + s.Email + "\n\n" +
		"Message:\n" + s.Message
}

func (s ContactSubmission) MailtoURI(recipient string) string {
	return BuildMailtoURI(recipient, ContactSubject, s.Body())
}

// ContactForm holds the contact form's input between render and submit.
type ContactForm struct {
	values ContactSubmission
}

func NewContactForm(values ContactSubmission) *ContactForm {
	return &ContactForm{values: values}
}

// Set updates a single field.
func (f *ContactForm) Set(field, value string) error {
	switch field {
	case FieldName:
		f.values.Name = value
	case FieldEmail:
		f.values.Email = value
	case FieldMessage:
		f.values.Message = value
	default:
		return serr.New("unknown contact form field: " + field)
	}
	return nil
}

func (f *ContactForm) Values() ContactSubmission {
	return f.values
}

func (f *ContactForm) Reset() {
	f.values = ContactSubmission{}
}

// Submit validates the form, returns the mailto hand-off and clears the
// fields. A form that fails validation keeps its input.
func (f *ContactForm) Submit(recipient string) (string, error) {
	if err := f.values.Validate(); err != nil {
		return "", err
	}
	uri := f.values.MailtoURI(recipient)
	f.Reset()
	return uri, nil
}
