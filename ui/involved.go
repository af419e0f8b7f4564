package ui

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/peace-building-initiative/site/content"
	"github.com/peace-building-initiative/site/inquiry"
	"github.com/peace-building-initiative/site/section"
)

func involvementCard(sections *section.Registry, i int, opt content.InvolvementOption) g.Node {
	return decorate(scaleIn, i*2,
		decorate(hoverLift, 0,
			card("h-full flex flex-col text-center",
				Div(Class("flex justify-center mb-6"),
					iconTile(opt.Icon, 40, "w-20 h-20 rounded-full"),
				),
				H3(Class("text-2xl font-bold text-neutral-900 mb-4"), g.Text(opt.Title)),
				P(Class("text-neutral-600 mb-6 flex-grow"), g.Text(opt.Description)),
				button(g.Text(opt.Button.Label), asLink(), withClass("w-full cursor-pointer"),
					withAttributes(ctaAction(sections, opt.Button, inquiry.TriggerInvolvement))),
			),
		),
	)
}

func GetInvolved(options []content.InvolvementOption, sections *section.Registry) g.Node {
	var cards []g.Node
	for i, opt := range options {
		cards = append(cards, involvementCard(sections, i, opt))
	}

	return Section(
		ID(string(section.GetInvolved)),
		Class("py-20 bg-gradient-to-br from-primary/5 via-white to-primary/10 relative overflow-hidden"),
		backgroundBlobs("opacity-10", "top-1/4 right-0", "bottom-1/4 left-0"),
		container(
			sectionHeading("Get Involved", "Join us in making a lasting difference in our community"),
			Div(Class("grid md:grid-cols-3 gap-8"), g.Group(cards)),
		),
	)
}
