package ui

import (
	"strings"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

// ---- Button Components ----

type buttonVariant string

const (
	variantPrimary   buttonVariant = "primary"
	variantSecondary buttonVariant = "secondary"
	variantOutline   buttonVariant = "outline"
)

type buttonSize string

const (
	sizeSm buttonSize = "sm"
	sizeMd buttonSize = "md"
	sizeLg buttonSize = "lg"
)

const buttonBase = "inline-flex items-center justify-center rounded-lg font-medium transition-all duration-200 focus:outline-none focus:ring-2 focus:ring-offset-2"

var variantClasses = map[buttonVariant]string{
	variantPrimary:   "bg-primary text-white hover:bg-primary-dark focus:ring-primary shadow-md hover:shadow-lg",
	variantSecondary: "bg-neutral-100 text-neutral-900 hover:bg-neutral-200 focus:ring-neutral-400",
	variantOutline:   "border-2 border-primary text-primary hover:bg-primary hover:text-white focus:ring-primary",
}

var sizeClasses = map[buttonSize]string{
	sizeSm: "text-sm px-4 py-2",
	sizeMd: "text-base px-6 py-3",
	sizeLg: "text-lg px-8 py-4",
}

// buttonOption represents configuration options for buttons
type buttonOption func(*buttonConfig)

type buttonConfig struct {
	variant    buttonVariant
	size       buttonSize
	link       bool
	buttonType string
	class      string
	attributes []g.Node
}

func withVariant(v buttonVariant) buttonOption {
	return func(c *buttonConfig) {
		c.variant = v
	}
}

func withSize(s buttonSize) buttonOption {
	return func(c *buttonConfig) {
		c.size = s
	}
}

// asLink renders an <a> instead of a <button>; the caller supplies href.
func asLink() buttonOption {
	return func(c *buttonConfig) {
		c.link = true
	}
}

// withType sets the button type (button, submit, etc.)
func withType(buttonType string) buttonOption {
	return func(c *buttonConfig) {
		c.buttonType = buttonType
	}
}

// withClass adds additional CSS classes
func withClass(class string) buttonOption {
	return func(c *buttonConfig) {
		c.class = strings.TrimSpace(c.class + " " + class)
	}
}

// withAttributes adds additional g.Node attributes
func withAttributes(attrs ...g.Node) buttonOption {
	return func(c *buttonConfig) {
		c.attributes = append(c.attributes, attrs...)
	}
}

func buttonClass(cfg *buttonConfig) string {
	class := buttonBase + " " + variantClasses[cfg.variant] + " " + sizeClasses[cfg.size]
	if cfg.class != "" {
		class += " " + cfg.class
	}
	return class
}

// button renders a styled button, primary/md unless options say otherwise.
func button(children g.Node, options ...buttonOption) g.Node {
	cfg := &buttonConfig{variant: variantPrimary, size: sizeMd}
	for _, option := range options {
		option(cfg)
	}

	attrs := []g.Node{Class(buttonClass(cfg))}
	attrs = append(attrs, cfg.attributes...)
	attrs = append(attrs, children)

	if cfg.link {
		return A(attrs...)
	}
	if cfg.buttonType == "" {
		cfg.buttonType = "button"
	}
	return Button(append([]g.Node{Type(cfg.buttonType)}, attrs...)...)
}
