package handlers

import (
	"encoding/xml"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/peace-building-initiative/site/config"
)

type SitemapURL struct {
	Loc        string    `xml:"loc"`
	LastMod    time.Time `xml:"lastmod"`
	ChangeFreq string    `xml:"changefreq"`
	Priority   string    `xml:"priority"`
}

type Sitemap struct {
	XMLName xml.Name     `xml:"urlset"`
	Xmlns   string       `xml:"xmlns,attr"`
	URLs    []SitemapURL `xml:"url"`
}

// started stands in for the last modification; content only changes on deploy.
var started = time.Now().UTC().Truncate(time.Second)

// HandleSitemap lists the single page. Sections are fragments and are not
// listed separately.
func HandleSitemap(c *fiber.Ctx) error {
	sitemap := Sitemap{
		Xmlns: "http://www.sitemaps.org/schemas/sitemap/0.9",
		URLs: []SitemapURL{
			{
				Loc:        config.BaseURL + "/",
				LastMod:    started,
				ChangeFreq: "monthly",
				Priority:   "1.0",
			},
		},
	}

	return c.XML(sitemap)
}

func HandleRobots(c *fiber.Ctx) error {
	c.Set(fiber.HeaderContentType, fiber.MIMETextPlainCharsetUTF8)
	return c.SendString("User-agent: *\nAllow: /\n\nSitemap: " + config.BaseURL + "/sitemap.xml\n")
}
