package ui

import (
	"encoding/json"
	"fmt"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

// ---- Layout Components ----

func container(children ...g.Node) g.Node {
	return Div(
		Class("container mx-auto px-4 sm:px-6 lg:px-8 relative z-10"),
		g.Group(children),
	)
}

func sectionHeading(title, subtitle string) g.Node {
	return Div(
		Class("mb-12 text-center"),
		H2(Class("text-3xl md:text-4xl font-bold text-neutral-900 mb-4"), g.Text(title)),
		g.If(subtitle != "",
			P(Class("text-lg text-neutral-600 max-w-3xl mx-auto"), g.Text(subtitle)),
		),
	)
}

func card(class string, children ...g.Node) g.Node {
	return Div(
		Class("bg-white rounded-xl shadow-lg p-6 transition-all duration-300 hover:shadow-xl "+class),
		g.Group(children),
	)
}

// backgroundBlobs is the blurred circle decoration several sections share.
func backgroundBlobs(opacity, first, second string) g.Node {
	return Div(
		Class("absolute inset-0 pointer-events-none "+opacity),
		Div(Class("absolute w-96 h-96 bg-primary rounded-full blur-3xl "+first)),
		Div(Class("absolute w-96 h-96 bg-primary-dark rounded-full blur-3xl "+second)),
	)
}

// ---- Message Components ----

func ValidationError(message string) g.Node {
	return Div(
		Role("alert"),
		Class("bg-red-100 border border-red-400 text-red-700 px-4 py-3 rounded-lg text-sm"),
		g.Text(message),
	)
}

// MailtoHandOff sends the browser to uri, which opens the visitor's mail
// client with the message filled in.
func MailtoHandOff(uri string) g.Node {
	target, _ := json.Marshal(uri)
	return Div(
		ID("mailto-handoff"),
		Data("mailto", uri),
		Class("bg-green-100 border border-green-400 text-green-700 px-4 py-3 rounded-lg text-sm"),
		g.Text("Opening your email app to send your message... "),
		A(Href(uri), Class("underline font-medium"), g.Text("Open it manually")),
		Script(g.Raw("window.location.href = "+string(target)+";")),
	)
}

func resultContainer(id string, result g.Node) g.Node {
	return Div(
		ID(id),
		Aria("live", "polite"),
		Class("mt-4"),
		result,
	)
}

// EmptyResponse returns an empty fragment for htmx swaps that clear a target.
func EmptyResponse() g.Node {
	return g.Text("")
}

func ErrorPage(code int, message string) g.Node {
	return errorShell(
		fmt.Sprintf("Error %d", code),
		Main(
			Class("min-h-screen flex items-center justify-center bg-gradient-to-br from-blue-50 via-white to-blue-100 px-4"),
			Div(
				Class("text-center max-w-lg"),
				logo(logoMd, true, logoDark),
				H1(Class("text-4xl font-bold text-neutral-900 mt-8 mb-4"), g.Textf("Error %d", code)),
				P(Class("text-neutral-600 mb-8"), g.Text(message)),
				button(g.Text("Back to home"), asLink(), withAttributes(Href("/"))),
			),
		),
	)
}
