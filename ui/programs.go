package ui

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/peace-building-initiative/site/content"
	"github.com/peace-building-initiative/site/section"
)

func programCard(i int, p content.Program) g.Node {
	return decorate(fadeUp, i*2,
		decorate(hoverLift, 0,
			card("h-full group",
				iconTile(p.Icon, 32, "w-16 h-16 mb-6 group-hover:scale-110 transition-transform duration-300"),
				H3(Class("text-xl font-bold text-neutral-900 mb-3"), g.Text(p.Title)),
				P(Class("text-neutral-600 leading-relaxed"), g.Text(p.Description)),
			),
		),
	)
}

func Programs(programs []content.Program) g.Node {
	var cards []g.Node
	for i, p := range programs {
		cards = append(cards, programCard(i, p))
	}

	return Section(
		ID(string(section.Programs)),
		Class("py-20 bg-gradient-to-b from-blue-50/30 to-white relative overflow-hidden"),
		backgroundBlobs("opacity-5", "top-0 left-0", "bottom-0 right-0"),
		container(
			sectionHeading("Our Programs", "Comprehensive initiatives designed to empower and transform our community"),
			Div(Class("grid md:grid-cols-2 lg:grid-cols-3 gap-8"), g.Group(cards)),
		),
	)
}
