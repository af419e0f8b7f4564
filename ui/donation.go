package ui

import (
	g "maragu.dev/gomponents"
	hx "maragu.dev/gomponents-htmx"
	. "maragu.dev/gomponents/html"

	"github.com/peace-building-initiative/site/inquiry"
)

const (
	DonationModalID  = "donation-modal"
	DonationFormID   = "donation-form"
	DonationResultID = "donation-result"
)

// dismiss returns the attributes that close the dialog. Without JavaScript
// the link goes back to the page with the dialog closed.
func dismiss(via inquiry.Dismissal) g.Node {
	return g.Group([]g.Node{
		Href("/"),
		hx.Get("/modal/donate/close?via=" + string(via)),
		hx.Target("#" + ModalRootID),
		hx.Swap("innerHTML"),
		Data("dismiss", string(via)),
	})
}

func amountOptions() []selectOption {
	opts := make([]selectOption, 0, len(inquiry.AmountOptions))
	for _, o := range inquiry.AmountOptions {
		opts = append(opts, selectOption{value: o.Value, label: o.Label})
	}
	return opts
}

func donationForm(d *inquiry.DonationDialog, result g.Node) g.Node {
	v := d.Form().Values()
	customClass := "hidden"
	if v.Amount == inquiry.CustomAmount {
		customClass = ""
	}

	return Form(
		ID(DonationFormID),
		Method("post"),
		Action("/api/donate"),
		hx.Post("/api/donate"),
		hx.Target("#"+ModalRootID),
		hx.Swap("innerHTML"),
		Class("p-6 space-y-5"),
		hiddenInput("trigger", string(d.OpenedBy())),
		formGroup("Your Name", "donate-name", true,
			textInput("donate-name", inquiry.FieldName, "text", v.Name, "John Doe", true)),
		formGroup("Email Address", "donate-email", true,
			textInput("donate-email", inquiry.FieldEmail, "email", v.Email, "john@example.com", true)),
		formGroup("Intended Donation Amount", "donate-amount", false,
			selectInput("donate-amount", inquiry.FieldAmount, v.Amount, "Select an amount (optional)", amountOptions())),
		Div(
			ID("donate-custom-amount-group"),
			Class(customClass),
			formGroup("Custom Amount", "donate-custom-amount", false,
				textInput("donate-custom-amount", inquiry.FieldCustomAmount, "text", v.CustomAmount, "Enter amount (e.g., $75)", false)),
		),
		formGroup("Message (Optional)", "donate-message", false,
			textArea("donate-message", inquiry.FieldMessage, v.Message, "Any specific program you'd like to support or questions?", "4", false)),
		Div(
			Class("bg-blue-50 border border-blue-100 rounded-lg p-4"),
			P(Class("text-sm text-neutral-700"),
				Strong(Class("text-primary"), g.Text("How it works: ")),
				g.Text("After submitting, your email client will open with a pre-filled message. We'll respond with donation details and payment options."),
			),
		),
		resultContainer(DonationResultID, result),
		Div(
			Class("flex gap-3 pt-2"),
			button(g.Text("Cancel"), asLink(), withVariant(variantOutline), withClass("flex-1"),
				withAttributes(dismiss(inquiry.DismissCancel))),
			button(
				g.Group([]g.Node{icon("heart", 20, "mr-2 invert"), g.Text("Submit Inquiry")}),
				withType("submit"), withClass("flex-1"),
			),
		),
	)
}

// DonationModal renders the donation dialog while it is open and nothing
// while it is closed.
func DonationModal(d *inquiry.DonationDialog, result g.Node) g.Node {
	if !d.IsOpen() {
		return nil
	}

	return Div(
		ID(DonationModalID),
		Role("dialog"),
		Aria("modal", "true"),
		Aria("labelledby", "donation-title"),
		Data("state", d.State().String()),
		Class("fixed inset-0 z-[100] flex items-center justify-center p-4"),
		A(
			Class("fx-fade-in absolute inset-0 bg-black/50 backdrop-blur-sm"),
			Aria("label", "Close donation dialog"),
			dismiss(inquiry.DismissBackdrop),
		),
		Div(
			Class("fx-scale-in relative w-full max-w-lg max-h-[90vh] overflow-y-auto bg-white rounded-2xl shadow-2xl"),
			Div(
				Class("sticky top-0 bg-gradient-to-r from-primary to-primary-dark text-white p-6 rounded-t-2xl"),
				A(
					Class("absolute top-4 right-4 p-2 hover:bg-white/20 rounded-full transition-colors"),
					Aria("label", "Close"),
					dismiss(inquiry.DismissClose),
					icon("x", 24, "invert"),
				),
				Div(
					Class("flex items-center space-x-3"),
					Div(Class("w-12 h-12 bg-white/20 rounded-full flex items-center justify-center"), icon("heart", 24, "invert")),
					Div(
						H2(ID("donation-title"), Class("text-2xl font-bold"), g.Text("Support Our Mission")),
						P(Class("text-white/90 text-sm"), g.Text("Help us empower more students")),
					),
				),
			),
			donationForm(d, result),
		),
	)
}
