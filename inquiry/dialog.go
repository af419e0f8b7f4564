package inquiry

import "github.com/rohanthewiz/serr"

// DialogState is the visibility of the donation dialog.
type DialogState int

const (
	DialogClosed DialogState = iota
	DialogOpen
)

func (s DialogState) String() string {
	if s == DialogOpen {
		return "open"
	}
	return "closed"
}

// Trigger names the control that opened the dialog.
type Trigger string

const (
	TriggerNavbar      Trigger = "navbar"
	TriggerHero        Trigger = "hero"
	TriggerInvolvement Trigger = "involvement"
)

// Dismissal names how the dialog was closed.
type Dismissal string

const (
	DismissBackdrop Dismissal = "backdrop"
	DismissClose    Dismissal = "close"
	DismissCancel   Dismissal = "cancel"
	DismissSubmit   Dismissal = "submit"
)

var (
	triggers   = []Trigger{TriggerNavbar, TriggerHero, TriggerInvolvement}
	dismissals = []Dismissal{DismissBackdrop, DismissClose, DismissCancel, DismissSubmit}
)

func ParseTrigger(s string) (Trigger, bool) {
	for _, t := range triggers {
		if string(t) == s {
			return t, true
		}
	}
	return "", false
}

func ParseDismissal(s string) (Dismissal, bool) {
	for _, d := range dismissals {
		if string(d) == s {
			return d, true
		}
	}
	return "", false
}

// DonationDialog is the page-level donation modal: closed or open, with the
// form it carries while open.
type DonationDialog struct {
	state    DialogState
	openedBy Trigger
	closedBy Dismissal
	form     DonationForm
}

func NewDonationDialog() *DonationDialog {
	return &DonationDialog{}
}

func (d *DonationDialog) State() DialogState {
	return d.state
}

func (d *DonationDialog) IsOpen() bool {
	return d.state == DialogOpen
}

func (d *DonationDialog) OpenedBy() Trigger {
	return d.openedBy
}

func (d *DonationDialog) ClosedBy() Dismissal {
	return d.closedBy
}

func (d *DonationDialog) Form() *DonationForm {
	return &d.form
}

// Open shows the dialog. It reports whether the state changed; opening an
// open dialog is a no-op.
func (d *DonationDialog) Open(t Trigger) bool {
	if d.state == DialogOpen {
		return false
	}
	d.state = DialogOpen
	d.openedBy = t
	d.closedBy = ""
	return true
}

// Close hides the dialog and discards pending input.
func (d *DonationDialog) Close(via Dismissal) bool {
	if d.state == DialogClosed {
		return false
	}
	d.state = DialogClosed
	d.closedBy = via
	d.form.Reset()
	return true
}

// Submit hands off the inquiry and closes the dialog. On a validation error
// the dialog stays open with its input intact.
func (d *DonationDialog) Submit(recipient string) (string, error) {
	if d.state != DialogOpen {
		return "", serr.New("donation dialog is not open")
	}
	uri, err := d.form.Submit(recipient)
	if err != nil {
		return "", err
	}
	d.Close(DismissSubmit)
	return uri, nil
}
