package ui

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/peace-building-initiative/site/config"
	"github.com/peace-building-initiative/site/content"
	"github.com/peace-building-initiative/site/section"
)

func socialLink(s content.SocialLink) g.Node {
	attrs := []g.Node{
		Href(s.URL),
		Class("w-10 h-10 bg-neutral-800 hover:bg-primary rounded-full flex items-center justify-center transition-colors duration-200"),
		Aria("label", s.Platform),
	}
	if s.Platform != "email" {
		attrs = append(attrs, Target("_blank"), Rel("noopener noreferrer"))
	}
	return A(append(attrs, icon(s.Platform, 20, "invert"))...)
}

// SiteFooter is the page footer.
func SiteFooter(site content.Site, sections *section.Registry) g.Node {
	var links, social []g.Node
	for _, item := range site.Nav {
		links = append(links, Li(
			A(
				Class("text-neutral-400 hover:text-primary transition-colors duration-200 cursor-pointer"),
				scrollTo(sections, item.Target),
				g.Text(item.Label),
			),
		))
	}
	for _, s := range site.Social {
		social = append(social, socialLink(s))
	}

	return Footer(
		Class("bg-neutral-900 text-white"),
		container(
			Div(
				Class("py-12 grid md:grid-cols-3 gap-8"),
				Div(
					logo(logoMd, true, logoLight),
					P(Class("text-neutral-400 text-sm mt-4"), g.Text(site.Footer.Description)),
				),
				Div(
					H3(Class("text-lg font-semibold mb-4"), g.Text("Quick Links")),
					Ul(Class("space-y-2"), g.Group(links)),
				),
				Div(
					H3(Class("text-lg font-semibold mb-4"), g.Text("Connect With Us")),
					Div(Class("flex space-x-4"), g.Group(social)),
					P(Class("text-neutral-400 text-sm mt-4"), g.Text(site.Contact.Email)),
				),
			),
			Div(
				Class("border-t border-neutral-800 py-6 text-center"),
				P(Class("text-neutral-400 text-sm"), g.Text("© "+site.Footer.Copyright)),
				P(Class("text-neutral-500 text-xs mt-2"), g.Text(config.SiteTagline)),
			),
		),
	)
}
