package ui

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/peace-building-initiative/site/content"
	"github.com/peace-building-initiative/site/section"
)

func valueCard(i int, v content.Value) g.Node {
	return decorate(fadeUp, i,
		Div(
			Class("fx-hover-lift bg-white p-8 rounded-2xl border border-blue-100 shadow-md transition-all h-full"),
			iconTile(v.Icon, 32, "w-16 h-16 mb-4"),
			H3(Class("text-xl font-bold text-neutral-900 mb-3"), g.Text(v.Title)),
			P(Class("text-neutral-600"), g.Text(v.Description)),
		),
	)
}

func About(about content.About) g.Node {
	var values []g.Node
	for i, v := range about.Values {
		values = append(values, valueCard(i, v))
	}

	return Section(
		ID(string(section.About)),
		Class("py-20 bg-gradient-to-b from-white to-blue-50/30"),
		container(
			sectionHeading(about.Title, about.Subtitle),
			Div(
				Class("grid lg:grid-cols-2 gap-12 items-center mb-16"),
				decorate(fadeIn, 0,
					Div(
						Class("relative h-[400px] rounded-2xl overflow-hidden shadow-2xl"),
						picture("/images/diverse-group-employees-working-their-computers.jpg", "Students working on computers", "absolute inset-0 w-full h-full object-cover", true),
						Div(Class("absolute inset-0 bg-gradient-to-t from-black/50 to-transparent")),
						Div(
							Class("absolute bottom-6 left-6 right-6"),
							decorate(fadeUp, 3,
								Div(
									Class("bg-white/95 backdrop-blur-sm rounded-lg p-4 shadow-lg"),
									P(Class("text-sm font-semibold text-primary"), g.Text(about.ImageCaption.Title)),
									P(Class("text-xs text-neutral-600 mt-1"), g.Text(about.ImageCaption.Text)),
								),
							),
						),
					),
				),
				decorate(fadeIn, 0,
					P(Class("text-lg text-neutral-700 leading-relaxed mb-6"), g.Text(about.MissionText)),
					Div(
						Class("flex items-center gap-4 p-4 bg-blue-50 rounded-lg border border-blue-100"),
						Div(Class("relative w-16 h-16 flex-shrink-0"),
							picture("/images/peace-symbol.png", "Peace symbol", "w-16 h-16 object-contain", true),
						),
						Div(
							P(Class("text-sm font-semibold text-neutral-900"), g.Text(about.Callout.Title)),
							P(Class("text-xs text-neutral-600"), g.Text(about.Callout.Text)),
						),
					),
				),
			),
			Div(Class("grid md:grid-cols-3 gap-8"), g.Group(values)),
		),
	)
}
