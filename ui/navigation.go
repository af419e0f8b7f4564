package ui

import (
	"strconv"

	g "maragu.dev/gomponents"
	hx "maragu.dev/gomponents-htmx"
	. "maragu.dev/gomponents/html"

	"github.com/peace-building-initiative/site/config"
	"github.com/peace-building-initiative/site/content"
	"github.com/peace-building-initiative/site/inquiry"
	"github.com/peace-building-initiative/site/section"
)

// ModalRootID is the element the donation dialog is swapped into.
const ModalRootID = "modal-root"

// scrollTo returns the attributes that smooth-scroll to target. An
// unregistered target gets none, leaving an inert element.
func scrollTo(sections *section.Registry, target section.ID) g.Node {
	a, ok := sections.Lookup(string(target))
	if !ok {
		return g.Group(nil)
	}
	return g.Group([]g.Node{
		Href(a.Href()),
		Data("scroll-target", string(a.ID)),
	})
}

// donateTrigger returns the attributes that open the donation dialog. Without
// JavaScript the link reloads the page with the dialog open.
func donateTrigger(t inquiry.Trigger) g.Node {
	return g.Group([]g.Node{
		Href("/?donate=" + string(t)),
		hx.Get("/modal/donate?trigger=" + string(t)),
		hx.Target("#" + ModalRootID),
		hx.Swap("innerHTML"),
		Data("donate-trigger", string(t)),
	})
}

// ctaAction wires a content call-to-action to scrolling or the donation dialog.
func ctaAction(sections *section.Registry, cta content.CTA, t inquiry.Trigger) g.Node {
	if cta.Action == content.ActionDonate {
		return donateTrigger(t)
	}
	return scrollTo(sections, cta.Target)
}

func navLink(sections *section.Registry, item content.NavItem, class string) g.Node {
	return A(
		Class(class),
		scrollTo(sections, item.Target),
		g.Text(item.Label),
	)
}

func Navbar(site content.Site, sections *section.Registry) g.Node {
	var desktop, mobile []g.Node
	for i, item := range site.Nav {
		desktop = append(desktop, decorate(slideDown, i,
			navLink(sections, item, "text-neutral-700 hover:text-primary font-medium transition-colors duration-200 cursor-pointer"),
		))
		mobile = append(mobile,
			navLink(sections, item, "block w-full text-left px-4 py-2 text-neutral-700 hover:bg-neutral-50 hover:text-primary font-medium transition-colors rounded-md cursor-pointer"),
		)
	}

	return Nav(
		ID("navbar"),
		Class("fixed top-0 left-0 right-0 z-50 transition-all duration-300 bg-white"),
		Data("scroll-threshold", strconv.Itoa(config.NavbarScrollThreshold)),
		container(
			Div(
				Class("flex items-center justify-between h-16 lg:h-20"),
				A(scrollTo(sections, section.Home), logo(logoSm, true, logoDark)),
				Div(
					Class("hidden lg:flex items-center space-x-8"),
					g.Group(desktop),
					decorate(scaleIn, 5,
						button(g.Text("Donate"), asLink(), withClass("shadow-lg hover:shadow-xl"),
							withAttributes(donateTrigger(inquiry.TriggerNavbar))),
					),
				),
				Button(
					Type("button"),
					ID("menu-toggle"),
					Class("lg:hidden p-2 rounded-md text-neutral-700 hover:bg-neutral-100"),
					Aria("label", "Toggle menu"),
					Aria("controls", "mobile-menu"),
					Aria("expanded", "false"),
					icon("menu", 24),
				),
			),
			Div(
				ID("mobile-menu"),
				Class("lg:hidden hidden overflow-hidden"),
				Div(
					Class("py-4 space-y-4"),
					g.Group(mobile),
					Div(
						Class("px-4 pt-2"),
						button(g.Text("Donate"), asLink(), withClass("w-full"),
							withAttributes(donateTrigger(inquiry.TriggerNavbar))),
					),
				),
			),
		),
	)
}
