package inquiry

import (
	"strings"

	"github.com/peace-building-initiative/site/config"
	"github.com/rohanthewiz/serr"
)

const (
	FieldAmount       = "amount"
	FieldCustomAmount = "custom_amount"

	// CustomAmount is the amount option that defers to the free-text custom amount.
	CustomAmount = "custom"

	AmountNotSpecified = "Not specified"
	NoMessage          = "No additional message"
)

var DonationSubject = "Donation Inquiry — " + config.SiteName

// AmountOption is one entry of the amount selector.
type AmountOption struct {
	Value string
	Label string
}

var AmountOptions = []AmountOption{
	{Value: "$25", Label: "$25 - Support a student"},
	{Value: "$50", Label: "$50 - Fund supplies"},
	{Value: "$100", Label: "$100 - Enable a program"},
	{Value: "$250", Label: "$250 - Sponsor equipment"},
	{Value: "$500", Label: "$500 - Major contributor"},
	{Value: "$1000", Label: "$1,000 - Transform lives"},
	{Value: CustomAmount, Label: "Custom Amount"},
}

func isAmountOption(v string) bool {
	if v == "" {
		return true
	}
	for _, opt := range AmountOptions {
		if opt.Value == v {
			return true
		}
	}
	return false
}

// DonationInquiry is what the donation dialog hands off. Amount and Message
// may be empty.
type DonationInquiry struct {
	Name    string
	Email   string
	Amount  string
	Message string
}

func (d DonationInquiry) Validate() error {
	if err := validateRequired(FieldName, "Name", d.Name); err != nil {
		return err
	}
	return validateEmail(FieldEmail, d.Email)
}

func (d DonationInquiry) Body() string {
	amount := d.Amount
	if amount == "" {
		amount = AmountNotSpecified
	}
	message := d.Message
	if message == "" {
		message = NoMessage
	}

	return "DONATION INQUIRY\n\n" +
		"Name: " + d.Name + "\n" +
		"Email: " + d.Email + "\n" +
		"Intended Amount: " + amount + "\n\n" +
		"Message:\n" + message + "\n\n" +
		"---\n" +
		"Please respond with donation details and payment options."
}

func (d DonationInquiry) MailtoURI(recipient string) string {
	return BuildMailtoURI(recipient, DonationSubject, d.Body())
}

// DonationFormValues is the raw input of the donation dialog form.
type DonationFormValues struct {
	Name         string `form:"name"`
	Email        string `form:"email"`
	Amount       string `form:"amount"`
	CustomAmount string `form:"custom_amount"`
	Message      string `form:"message"`
}

// DonationForm holds the donation dialog's input.
type DonationForm struct {
	values DonationFormValues
}

func NewDonationForm(values DonationFormValues) *DonationForm {
	return &DonationForm{values: values}
}

func (f *DonationForm) Set(field, value string) error {
	switch field {
	case FieldName:
		f.values.Name = value
	case FieldEmail:
		f.values.Email = value
	case FieldAmount:
		f.values.Amount = value
	case FieldCustomAmount:
		f.values.CustomAmount = value
	case FieldMessage:
		f.values.Message = value
	default:
		return serr.New("unknown donation form field: " + field)
	}
	return nil
}

// Load replaces every field at once, as a form post does.
func (f *DonationForm) Load(values DonationFormValues) {
	f.values = values
}

func (f *DonationForm) Values() DonationFormValues {
	return f.values
}

// Inquiry resolves the selected amount option into the inquiry to send.
func (f *DonationForm) Inquiry() (DonationInquiry, error) {
	if !isAmountOption(f.values.Amount) {
		return DonationInquiry{}, &FieldError{Field: FieldAmount, Message: "Please choose one of the listed amounts"}
	}

	amount := f.values.Amount
	if amount == CustomAmount {
		amount = strings.TrimSpace(f.values.CustomAmount)
	}

	inq := DonationInquiry{
		Name:    f.values.Name,
		Email:   f.values.Email,
		Amount:  amount,
		Message: f.values.Message,
	}
	if err := inq.Validate(); err != nil {
		return DonationInquiry{}, err
	}
	return inq, nil
}

func (f *DonationForm) Reset() {
	f.values = DonationFormValues{}
}

// Submit returns the mailto hand-off and clears the form.
func (f *DonationForm) Submit(recipient string) (string, error) {
	inq, err := f.Inquiry()
	if err != nil {
		return "", err
	}
	uri := inq.MailtoURI(recipient)
	f.Reset()
	return uri, nil
}
