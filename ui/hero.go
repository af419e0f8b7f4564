package ui

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/peace-building-initiative/site/content"
	"github.com/peace-building-initiative/site/inquiry"
	"github.com/peace-building-initiative/site/section"
)

func heroStat(i int, stat content.Stat) g.Node {
	return decorate(scaleIn, 5+i,
		Div(
			Class("bg-white/80 backdrop-blur-sm rounded-lg p-4 border border-primary/20 shadow-lg hover:shadow-xl transition-shadow"),
			icon(stat.Icon, 24, "mb-2"),
			Div(Class("text-2xl font-bold text-neutral-900"), g.Text(stat.Value)),
			Div(Class("text-xs text-neutral-600"), g.Text(stat.Label)),
		),
	)
}

func heroCTA(sections *section.Registry, i int, cta content.CTA) g.Node {
	opts := []buttonOption{asLink(), withSize(sizeLg), withAttributes(ctaAction(sections, cta, inquiry.TriggerHero))}
	label := g.Text(cta.Label)
	if i == 0 {
		opts = append(opts, withClass("group"))
		label = g.Group([]g.Node{label, icon("arrow-right", 20, "ml-2 group-hover:translate-x-1 transition-transform")})
	} else {
		opts = append(opts, withVariant(variantOutline))
	}
	return button(label, append(opts, withClass("cursor-pointer"))...)
}

func heroCollage() g.Node {
	return decorate(scaleIn, 3,
		Div(
			Class("hidden lg:block relative h-[500px]"),
			Div(
				Class("grid grid-cols-2 gap-4 h-full"),
				Div(
					Class("fx-hover-tilt relative rounded-2xl overflow-hidden shadow-2xl"),
					picture("/images/community-learning.jpeg", "Community Learning", "absolute inset-0 w-full h-full object-cover", false),
				),
				Div(
					Class("flex flex-col gap-4"),
					Div(
						Class("fx-hover-tilt relative h-[240px] rounded-2xl overflow-hidden shadow-2xl"),
						picture("/images/team-working.jpeg", "Team Working", "absolute inset-0 w-full h-full object-cover", false),
					),
					Div(
						Class("fx-hover-tilt relative h-[240px] rounded-2xl overflow-hidden shadow-2xl bg-gradient-to-br from-primary to-primary-dark flex items-center justify-center"),
						Div(Class("relative w-40 h-40 flex items-center justify-center"), logo(logoLg, false, logoLight)),
					),
				),
			),
		),
	)
}

func Hero(hero content.Hero, sections *section.Registry) g.Node {
	var ctas, stats []g.Node
	for i, cta := range hero.CTAs {
		ctas = append(ctas, heroCTA(sections, i, cta))
	}
	for i, stat := range hero.Stats {
		stats = append(stats, heroStat(i, stat))
	}

	return Section(
		ID(string(section.Home)),
		Class("relative min-h-screen flex items-center overflow-hidden pt-20"),
		Div(
			Class("absolute inset-0"),
			picture("/images/study-group-african-people.jpg", "Students learning together", "absolute inset-0 w-full h-full object-cover opacity-10", false),
			Div(Class("absolute inset-0 bg-gradient-to-br from-blue-50/95 via-white/95 to-blue-100/95")),
		),
		Div(
			Class("absolute inset-0 overflow-hidden pointer-events-none"),
			decorate(pulsing, 0, Div(Class("absolute -top-24 -right-24 w-96 h-96 bg-primary/20 rounded-full blur-3xl"))),
			decorate(pulsing, 2, Div(Class("absolute -bottom-24 -left-24 w-96 h-96 bg-primary/20 rounded-full blur-3xl"))),
			decorate(floating, 0,
				Div(
					Class("absolute top-20 right-20 opacity-20 hidden lg:block"),
					picture("/images/hero-dove.png", "Peace dove", "w-[150px] h-[150px] object-contain", false),
				),
			),
		),
		container(
			Div(
				Class("grid lg:grid-cols-2 gap-12 items-center"),
				decorate(fadeUp, 0,
					Div(
						Class("text-center lg:text-left"),
						decorate(scaleIn, 2,
							Div(
								Class("inline-flex items-center space-x-2 bg-primary/10 text-primary px-4 py-2 rounded-full mb-6"),
								icon("sparkles", 16),
								Span(Class("text-sm font-medium"), g.Text(hero.Badge)),
							),
						),
						H1(Class("text-4xl sm:text-5xl lg:text-6xl font-bold text-neutral-900 mb-6 leading-tight"), g.Text(hero.Title)),
						P(Class("text-lg sm:text-xl text-neutral-600 mb-8 max-w-2xl mx-auto lg:mx-0"), g.Text(hero.Subtitle)),
						Div(Class("flex flex-col sm:flex-row gap-4 justify-center lg:justify-start"), g.Group(ctas)),
						Div(Class("grid grid-cols-3 gap-4 mt-8"), g.Group(stats)),
					),
				),
				heroCollage(),
			),
			Div(
				Class("absolute bottom-8 left-1/2 transform -translate-x-1/2"),
				decorate(floating, 10,
					Div(
						Class("w-6 h-10 border-2 border-neutral-400 rounded-full flex justify-center"),
						Div(Class("w-1.5 h-1.5 bg-neutral-400 rounded-full mt-2")),
					),
				),
			),
		),
	)
}
