package ui

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/peace-building-initiative/site/content"
	"github.com/peace-building-initiative/site/inquiry"
	"github.com/peace-building-initiative/site/section"
)

func renderString(t *testing.T, n g.Node) string {
	t.Helper()
	var b strings.Builder
	require.NoError(t, n.Render(&b))
	return b.String()
}

func testView() HomeView {
	return HomeView{
		Site:         content.Default(),
		Sections:     section.DefaultRegistry(),
		Contact:      inquiry.NewContactForm(inquiry.ContactSubmission{}),
		Dialog:       inquiry.NewDonationDialog(),
		AssetVersion: "v1",
	}
}

func TestScrollTo(t *testing.T) {
	reg := section.DefaultRegistry()

	tests := []struct {
		name     string
		target   section.ID
		expected string
	}{
		{name: "known section", target: section.Contact, expected: `<a href="#contact" data-scroll-target="contact">Go</a>`},
		{name: "hyphenated section", target: section.GetInvolved, expected: `<a href="#get-involved" data-scroll-target="get-involved">Go</a>`},
		{name: "unknown section is inert", target: "donate", expected: `<a>Go</a>`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, renderString(t, A(scrollTo(reg, tt.target), g.Text("Go"))))
		})
	}
}

func TestCTAAction(t *testing.T) {
	reg := section.DefaultRegistry()

	donate := renderString(t, A(ctaAction(reg, content.CTA{Label: "Support Us", Action: content.ActionDonate}, inquiry.TriggerHero)))
	assert.Contains(t, donate, `href="/?donate=hero"`)
	assert.Contains(t, donate, `hx-get="/modal/donate?trigger=hero"`)
	assert.Contains(t, donate, `hx-target="#modal-root"`)

	scroll := renderString(t, A(ctaAction(reg, content.CTA{Action: content.ActionScroll, Target: section.About}, inquiry.TriggerHero)))
	assert.Equal(t, `<a href="#about" data-scroll-target="about"></a>`, scroll)
}

func TestHomePage(t *testing.T) {
	out := renderString(t, HomePage(testView()))

	// Sections render once each, in registry order
	last := -1
	for _, a := range section.DefaultRegistry().Anchors() {
		marker := `id="` + string(a.ID) + `"`
		assert.Equal(t, 1, strings.Count(out, marker), marker)
		i := strings.Index(out, marker)
		assert.Greater(t, i, last, "section %s out of order", a.ID)
		last = i
	}

	assert.Contains(t, out, "<!doctype html>")
	assert.Contains(t, out, `id="navbar"`)
	assert.Contains(t, out, `data-scroll-threshold="10"`)
	assert.Contains(t, out, `<div id="modal-root"></div>`)
	assert.Contains(t, out, "/css/site.css?v=v1")
	assert.Contains(t, out, `property="og:title"`)
	assert.Contains(t, out, `<iframe src="https://www.google.com/maps/embed?`)
	assert.Contains(t, out, "© 2025 Peace Building Initiative. All rights reserved.")

	for _, trigger := range []inquiry.Trigger{inquiry.TriggerNavbar, inquiry.TriggerHero, inquiry.TriggerInvolvement} {
		assert.Contains(t, out, `data-donate-trigger="`+string(trigger)+`"`)
	}
}

func TestHomePageHandOff(t *testing.T) {
	v := testView()
	v.HandOff = inquiry.BuildMailtoURI("info@example.org", "Hi", "Body")
	out := renderString(t, HomePage(v))

	assert.Contains(t, out, `<div id="modal-root"><div id="mailto-handoff"`)
	assert.NotContains(t, out, `id="donation-modal"`)
}

func TestHomePageRegistryDecidesSections(t *testing.T) {
	v := testView()
	v.Sections = section.NewRegistry(
		section.Anchor{ID: section.Home, Title: "Home"},
		section.Anchor{ID: section.Contact, Title: "Contact"},
	)
	out := renderString(t, HomePage(v))

	assert.Contains(t, out, `id="contact"`)
	assert.NotContains(t, out, `id="programs"`)
	// Nav items pointing at unregistered sections stay inert
	assert.NotContains(t, out, `href="#programs"`)
}

func TestDonationModal(t *testing.T) {
	d := inquiry.NewDonationDialog()
	assert.Nil(t, DonationModal(d, nil))

	d.Open(inquiry.TriggerInvolvement)
	out := renderString(t, DonationModal(d, nil))
	assert.Contains(t, out, `id="donation-modal"`)
	assert.Contains(t, out, `role="dialog"`)
	assert.Contains(t, out, `data-state="open"`)
	assert.Contains(t, out, `name="trigger" value="involvement"`)
	for _, via := range []inquiry.Dismissal{inquiry.DismissBackdrop, inquiry.DismissClose, inquiry.DismissCancel} {
		assert.Contains(t, out, `hx-get="/modal/donate/close?via=`+string(via)+`"`)
	}
	assert.Contains(t, out, `id="donate-custom-amount-group" class="hidden"`)

	require.NoError(t, d.Form().Set(inquiry.FieldAmount, inquiry.CustomAmount))
	require.NoError(t, d.Form().Set(inquiry.FieldName, "Jane Doe"))
	out = renderString(t, DonationModal(d, ValidationError("Email address is required")))
	assert.NotContains(t, out, `id="donate-custom-amount-group" class="hidden"`)
	assert.Contains(t, out, `<option value="custom" selected>Custom Amount</option>`)
	assert.Contains(t, out, `value="Jane Doe"`)
	assert.Contains(t, out, "Email address is required")
}

func TestContactForm(t *testing.T) {
	form := inquiry.NewContactForm(inquiry.ContactSubmission{Name: "Jane Doe", Email: "jane@example.com", Message: "Hello <there>"})
	out := renderString(t, ContactForm(form, nil))

	assert.Contains(t, out, `<form id="contact-form" method="post" action="/api/contact" hx-post="/api/contact"`)
	assert.Contains(t, out, `value="Jane Doe"`)
	assert.Contains(t, out, "Hello &lt;there&gt;</textarea>")
	assert.Equal(t, 3, strings.Count(out, " required"))
}

func TestMailtoHandOff(t *testing.T) {
	uri := inquiry.BuildMailtoURI("info@example.org", "Hi", "Line one\nLine \"two\"")
	out := renderString(t, MailtoHandOff(uri))

	assert.Contains(t, out, `data-mailto="mailto:info@example.org?subject=Hi&amp;body=Line%20one%0ALine%20%22two%22"`)
	assert.Contains(t, out, `<a href="mailto:info@example.org?subject=Hi&amp;body=Line%20one%0ALine%20%22two%22"`)
	assert.Contains(t, out, `window.location.href = "mailto:info@example.org?subject=Hi\u0026body=Line%20one%0ALine%20%22two%22";`)
}

func TestButton(t *testing.T) {
	tests := []struct {
		name     string
		options  []buttonOption
		contains []string
	}{
		{
			name:     "defaults",
			contains: []string{`<button type="button"`, "bg-primary", "px-6 py-3"},
		},
		{
			name:     "outline link",
			options:  []buttonOption{asLink(), withVariant(variantOutline), withAttributes(Href("/x"))},
			contains: []string{`<a class=`, "border-2 border-primary", `href="/x"`},
		},
		{
			name:     "submit large",
			options:  []buttonOption{withType("submit"), withSize(sizeLg)},
			contains: []string{`type="submit"`, "px-8 py-4"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := renderString(t, button(g.Text("Go"), tt.options...))
			for _, s := range tt.contains {
				assert.Contains(t, out, s)
			}
		})
	}
}

func TestDecorate(t *testing.T) {
	assert.Equal(t, `<div class="fx-fade-up"><p>x</p></div>`, renderString(t, decorate(fadeUp, 0, P(g.Text("x")))))
	assert.Equal(t, `<div class="fx-scale-in" style="animation-delay: 300ms"><p>x</p></div>`, renderString(t, decorate(scaleIn, 3, P(g.Text("x")))))
}

func TestWebpPath(t *testing.T) {
	tests := []struct {
		src      string
		expected string
	}{
		{src: "/images/hero-dove.png", expected: "/images/hero-dove.webp"},
		{src: "/images/team-working.jpeg", expected: "/images/team-working.webp"},
		{src: "/images.d/photo", expected: "/images.d/photo.webp"},
	}
	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			assert.Equal(t, tt.expected, webpPath(tt.src))
		})
	}
}

func TestLogo(t *testing.T) {
	small := renderString(t, logo(logoSm, true, logoDark))
	assert.Contains(t, small, `width="40"`)
	assert.NotContains(t, small, "Tarime, Musoma, Tanzania")

	large := renderString(t, logo(logoLg, true, logoLight))
	assert.Contains(t, large, `width="200"`)
	assert.Contains(t, large, "Tarime, Musoma, Tanzania")
	assert.Contains(t, large, "text-white")

	bare := renderString(t, logo(logoMd, false, logoDark))
	assert.NotContains(t, bare, "<span")
}

func TestSiteFooterSocialLinks(t *testing.T) {
	out := renderString(t, SiteFooter(content.Default(), section.DefaultRegistry()))
	assert.Contains(t, out, `href="https://facebook.com/pbi"`)
	assert.Contains(t, out, `target="_blank" rel="noopener noreferrer"`)
	// the mail link opens the mail client, not a tab
	assert.Equal(t, 3, strings.Count(out, `target="_blank"`))
}
