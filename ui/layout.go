package ui

import (
	"strings"

	g "maragu.dev/gomponents"
	"maragu.dev/gomponents/components"
	. "maragu.dev/gomponents/html"

	"github.com/peace-building-initiative/site/assets"
	"github.com/peace-building-initiative/site/config"
	"github.com/peace-building-initiative/site/content"
)

// ---- Page Layout ----

const tailwindTheme = `tailwind.config = {theme: {extend: {colors: {primary: {DEFAULT: '#4AA8E0', dark: '#2B7FB8'}}, fontFamily: {sans: ['Inter', 'sans-serif']}}}}`

func headAssets(assetVersion string) []g.Node {
	return []g.Node{
		Link(Rel("icon"), Type("image/png"), Href("/favicon.png")),
		Link(Rel("apple-touch-icon"), Href("/favicon.png")),
		Link(Rel("preconnect"), Href("https://fonts.googleapis.com")),
		Link(Rel("stylesheet"), Href("https://fonts.googleapis.com/css2?family=Inter:wght@400;500;600;700&display=swap")),
		Script(Src(config.TailwindCSSURL)),
		Script(g.Raw(tailwindTheme)),
		Link(Rel("stylesheet"), Href(assets.URL(assets.StylesheetPath, assetVersion))),
		Script(Type("text/javascript"), Src(config.HTMXURL), Defer()),
		Script(Type("text/javascript"), Src(assets.URL(assets.ScriptPath, assetVersion)), Defer()),
	}
}

// Page is the document shell for the site.
func Page(site content.Site, assetVersion string, body ...g.Node) g.Node {
	head := []g.Node{
		Meta(Name("keywords"), Content(strings.Join(site.Meta.Keywords, ", "))),
		Meta(Name("author"), Content(config.SiteName)),
		Meta(g.Attr("property", "og:title"), Content(site.Meta.OGTitle)),
		Meta(g.Attr("property", "og:description"), Content(site.Meta.OGSummary)),
		Meta(g.Attr("property", "og:type"), Content("website")),
		Meta(g.Attr("property", "og:locale"), Content("en_US")),
		Meta(g.Attr("property", "og:image"), Content(config.BaseURL+"/favicon.png")),
		Link(Rel("canonical"), Href(config.BaseURL+"/")),
	}

	return components.HTML5(components.HTML5Props{
		Title:       site.Meta.Title,
		Description: site.Meta.Description,
		Language:    "en",
		Head:        append(head, headAssets(assetVersion)...),
		Body: []g.Node{
			Class("antialiased font-sans"),
			g.Group(body),
		},
	})
}

func errorShell(title string, body ...g.Node) g.Node {
	return components.HTML5(components.HTML5Props{
		Title:    title + " | " + config.SiteName,
		Language: "en",
		Head:     headAssets(""),
		Body:     body,
	})
}
