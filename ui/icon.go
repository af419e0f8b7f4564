package ui

import (
	"strconv"
	"strings"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

// ---- Icon Components ----

const iconDir = "/images/icons/"

// icon renders one of the line icons under /images/icons. Icons are
// decorative, so alt is empty unless a label is given.
func icon(name string, size int, classes ...string) g.Node {
	px := strconv.Itoa(size)
	return Img(
		Src(iconDir+name+".svg"),
		Alt(""),
		Width(px),
		Height(px),
		Class(strings.Join(append([]string{"inline-block"}, classes...), " ")),
		Aria("hidden", "true"),
	)
}

// iconTile is the rounded gradient square the cards use behind an icon.
func iconTile(name string, iconSize int, tileClass string) g.Node {
	return Div(
		Class("bg-gradient-to-br from-primary to-primary-dark rounded-2xl flex items-center justify-center text-white shadow-lg "+tileClass),
		icon(name, iconSize, "invert"),
	)
}

// picture serves the optimised WebP next to the original image.
func picture(src, alt, class string, lazy bool) g.Node {
	img := []g.Node{Src(src), Alt(alt), Class(class)}
	if lazy {
		img = append(img, g.Attr("loading", "lazy"))
	}
	return g.El("picture",
		g.El("source", Type("image/webp"), g.Attr("srcset", webpPath(src))),
		Img(img...),
	)
}

func webpPath(src string) string {
	if i := strings.LastIndex(src, "."); i > strings.LastIndex(src, "/") {
		return src[:i] + ".webp"
	}
	return src + ".webp"
}
