package ui

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

// ---- Form Components ----

const inputClass = "w-full px-4 py-3 border border-neutral-300 rounded-lg focus:ring-2 focus:ring-primary focus:border-transparent outline-none transition-all"

func formGroup(labelText, fieldID string, required bool, input g.Node) g.Node {
	return Div(
		Label(
			For(fieldID),
			Class("block text-sm font-medium text-neutral-700 mb-2"),
			g.Text(labelText),
			g.If(required, Span(Class("text-red-500"), g.Text(" *"))),
		),
		input,
	)
}

func textInput(id, name, inputType, value, placeholder string, required bool) g.Node {
	return Input(
		Type(inputType),
		ID(id),
		Name(name),
		Value(value),
		Placeholder(placeholder),
		g.If(required, Required()),
		Class(inputClass),
	)
}

func textArea(id, name, value, placeholder string, rows string, required bool) g.Node {
	return Textarea(
		ID(id),
		Name(name),
		Rows(rows),
		Placeholder(placeholder),
		g.If(required, Required()),
		Class(inputClass+" resize-none"),
		g.Text(value),
	)
}

type selectOption struct {
	value string
	label string
}

func selectInput(id, name, selected, placeholder string, options []selectOption) g.Node {
	opts := []g.Node{Option(Value(""), g.Text(placeholder))}
	for _, o := range options {
		opts = append(opts, Option(Value(o.value), g.If(o.value == selected, Selected()), g.Text(o.label)))
	}
	return Select(
		ID(id),
		Name(name),
		Class(inputClass),
		g.Group(opts),
	)
}

func hiddenInput(name, value string) g.Node {
	return Input(Type("hidden"), Name(name), Value(value))
}
