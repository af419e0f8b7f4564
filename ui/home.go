package ui

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/peace-building-initiative/site/content"
	"github.com/peace-building-initiative/site/inquiry"
	"github.com/peace-building-initiative/site/section"
)

// HomeView is everything the single page needs to render.
type HomeView struct {
	Site         content.Site
	Sections     *section.Registry
	Contact      *inquiry.ContactForm
	Dialog       *inquiry.DonationDialog
	AssetVersion string
	// HandOff is a mailto URI to open once the page loads, after a form
	// posted without htmx.
	HandOff string
}

// ModalRoot is the container the donation dialog renders into.
func ModalRoot(children ...g.Node) g.Node {
	return Div(ID(ModalRootID), g.Group(children))
}

// SectionView renders one section by id, or nil for an unknown id.
func SectionView(v HomeView, id section.ID) g.Node {
	switch id {
	case section.Home:
		return Hero(v.Site.Hero, v.Sections)
	case section.About:
		return About(v.Site.About)
	case section.Programs:
		return Programs(v.Site.Programs)
	case section.GetInvolved:
		return GetInvolved(v.Site.Involvement, v.Sections)
	case section.Contact:
		return Contact(v.Site, v.Contact)
	default:
		return nil
	}
}

// HomePage renders the page with every registered section in order.
func HomePage(v HomeView) g.Node {
	var sections []g.Node
	for _, a := range v.Sections.Anchors() {
		sections = append(sections, SectionView(v, a.ID))
	}

	return Page(v.Site, v.AssetVersion,
		Navbar(v.Site, v.Sections),
		Main(
			ID("main"),
			Class("min-h-screen"),
			g.Group(sections),
		),
		SiteFooter(v.Site, v.Sections),
		ModalRoot(
			DonationModal(v.Dialog, nil),
			g.If(v.HandOff != "", MailtoHandOff(v.HandOff)),
		),
	)
}
