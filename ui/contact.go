package ui

import (
	"strings"

	g "maragu.dev/gomponents"
	hx "maragu.dev/gomponents-htmx"
	. "maragu.dev/gomponents/html"

	"github.com/peace-building-initiative/site/content"
	"github.com/peace-building-initiative/site/inquiry"
	"github.com/peace-building-initiative/site/section"
)

const (
	ContactFormID   = "contact-form"
	ContactResultID = "contact-result"
)

func contactDetail(iconName, title string, value g.Node) g.Node {
	return Div(
		Class("flex items-start space-x-4"),
		iconTile(iconName, 24, "w-12 h-12 rounded-lg flex-shrink-0"),
		Div(
			H4(Class("font-semibold text-neutral-900 mb-1"), g.Text(title)),
			value,
		),
	)
}

func contactDetails(d content.ContactDetails) g.Node {
	return card("",
		H3(Class("text-2xl font-bold text-neutral-900 mb-6"), g.Text("Contact Information")),
		Div(
			Class("space-y-6"),
			contactDetail("map-pin", "Address", P(Class("text-neutral-600"), g.Text(d.Address))),
			contactDetail("mail", "Email",
				A(Href("mailto:"+d.Email), Class("text-primary hover:text-primary-dark transition-colors"), g.Text(d.Email)),
			),
			contactDetail("phone", "Phone",
				A(Href("tel:"+strings.ReplaceAll(d.Phone, " ", "")), Class("text-primary hover:text-primary-dark transition-colors"), g.Text(d.Phone)),
			),
		),
	)
}

func contactMap(embedURL string) g.Node {
	if embedURL == "" {
		return nil
	}
	return Div(
		Class("rounded-xl overflow-hidden shadow-lg h-64 bg-neutral-200"),
		IFrame(
			Src(embedURL),
			Width("100%"),
			Height("100%"),
			Style("border: 0"),
			Title("Location map"),
			g.Attr("allowfullscreen"),
			g.Attr("loading", "lazy"),
			g.Attr("referrerpolicy", "no-referrer-when-downgrade"),
		),
	)
}

// ContactForm renders the contact form with the visitor's current input.
// result is shown under the submit button: a validation error or the mail
// hand-off. The form swaps itself on submit.
func ContactForm(form *inquiry.ContactForm, result g.Node) g.Node {
	v := form.Values()
	return Form(
		ID(ContactFormID),
		Method("post"),
		Action("/api/contact"),
		hx.Post("/api/contact"),
		hx.Target("this"),
		hx.Swap("outerHTML"),
		Class("space-y-6"),
		formGroup("Your Name", "contact-name", true,
			textInput("contact-name", inquiry.FieldName, "text", v.Name, "John Doe", true)),
		formGroup("Email Address", "contact-email", true,
			textInput("contact-email", inquiry.FieldEmail, "email", v.Email, "john@example.com", true)),
		formGroup("Message", "contact-message", true,
			textArea("contact-message", inquiry.FieldMessage, v.Message, "Tell us how you'd like to get involved...", "6", true)),
		button(
			g.Group([]g.Node{g.Text("Send Message"), icon("send", 20, "ml-2 invert")}),
			withType("submit"), withSize(sizeLg), withClass("w-full"),
		),
		resultContainer(ContactResultID, result),
	)
}

func Contact(site content.Site, form *inquiry.ContactForm) g.Node {
	return Section(
		ID(string(section.Contact)),
		Class("py-20 bg-gradient-to-b from-white to-blue-50/30"),
		container(
			sectionHeading("Get In Touch", "Have questions or want to learn more? We'd love to hear from you"),
			Div(
				Class("grid lg:grid-cols-2 gap-12"),
				decorate(fadeIn, 0,
					Div(
						Class("space-y-8"),
						contactDetails(site.Contact),
						contactMap(site.MapEmbedURL),
					),
				),
				decorate(fadeIn, 2,
					card("", ContactForm(form, nil)),
				),
			),
		),
	)
}
