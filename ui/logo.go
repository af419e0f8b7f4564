package ui

import (
	"strconv"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/peace-building-initiative/site/config"
)

type logoSize int

const (
	logoSm logoSize = 40
	logoMd logoSize = 48
	logoLg logoSize = 200
)

type logoVariant int

const (
	logoDark logoVariant = iota
	logoLight
)

func logo(size logoSize, showText bool, variant logoVariant) g.Node {
	px := strconv.Itoa(int(size))

	nameClass, taglineClass := "text-neutral-900", "text-neutral-600"
	if variant == logoLight {
		nameClass, taglineClass = "text-white", "text-neutral-300"
	}

	return Div(
		Class("flex items-center space-x-3"),
		Img(
			Src("/favicon.png"),
			Alt(config.SiteName+" Logo"),
			Width(px),
			Height(px),
			Class("object-contain"),
		),
		g.If(showText,
			Div(
				Class("flex flex-col"),
				Span(Class("text-xl font-bold leading-tight "+nameClass), g.Text(config.SiteName)),
				g.If(size != logoSm,
					Span(Class("text-xs "+taglineClass), g.Text(config.SiteTagline)),
				),
			),
		),
	)
}
