package ui

import (
	"fmt"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

// effect is a CSS-only animation defined in /css/site.css as .fx-<name>.
type effect string

const (
	fadeUp    effect = "fade-up"
	fadeIn    effect = "fade-in"
	scaleIn   effect = "scale-in"
	slideDown effect = "slide-down"
	hoverLift effect = "hover-lift"
	floating  effect = "float"
	pulsing   effect = "pulse"
)

// decorate wraps children in an animation. step staggers the start by 100ms
// per step. Content renders the same with or without it.
func decorate(e effect, step int, children ...g.Node) g.Node {
	attrs := []g.Node{Class("fx-" + string(e))}
	if step > 0 {
		attrs = append(attrs, Style(fmt.Sprintf("animation-delay: %dms", step*100)))
	}
	return Div(append(attrs, children...)...)
}
