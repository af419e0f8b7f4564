// Package section maps in-page section identifiers to their anchors. Views
// that scroll receive a Registry instead of looking sections up themselves.
package section

import "strings"

type ID string

const (
	Home        ID = "home"
	About       ID = "about"
	Programs    ID = "programs"
	GetInvolved ID = "get-involved"
	Contact     ID = "contact"
)

// Anchor is a rendered section the page can scroll to.
type Anchor struct {
	ID    ID
	Title string
}

func (a Anchor) Href() string {
	return "#" + string(a.ID)
}

type Registry struct {
	anchors map[ID]Anchor
	order   []ID
}

func NewRegistry(anchors ...Anchor) *Registry {
	r := &Registry{anchors: make(map[ID]Anchor, len(anchors))}
	for _, a := range anchors {
		r.Register(a)
	}
	return r
}

// DefaultRegistry holds the sections of the home page.
func DefaultRegistry() *Registry {
	return NewRegistry(
		Anchor{ID: Home, Title: "Home"},
		Anchor{ID: About, Title: "About"},
		Anchor{ID: Programs, Title: "Programs"},
		Anchor{ID: GetInvolved, Title: "Get Involved"},
		Anchor{ID: Contact, Title: "Contact"},
	)
}

// Register adds or replaces an anchor.
func (r *Registry) Register(a Anchor) {
	if _, exists := r.anchors[a.ID]; !exists {
		r.order = append(r.order, a.ID)
	}
	r.anchors[a.ID] = a
}

// Lookup accepts "contact" or "#contact".
func (r *Registry) Lookup(target string) (Anchor, bool) {
	a, ok := r.anchors[ID(strings.TrimPrefix(target, "#"))]
	return a, ok
}

func (r *Registry) Anchors() []Anchor {
	anchors := make([]Anchor, 0, len(r.order))
	for _, id := range r.order {
		anchors = append(anchors, r.anchors[id])
	}
	return anchors
}

// Location is the URL that brings target into view. Unknown targets land on
// the top of the page.
func (r *Registry) Location(target string) string {
	if a, ok := r.Lookup(target); ok {
		return "/" + a.Href()
	}
	return "/"
}
