package content

import (
	"fmt"

	"github.com/peace-building-initiative/site/section"
)

// Action is what a call-to-action does when clicked.
type Action string

const (
	ActionScroll Action = "scroll"
	ActionDonate Action = "donate"
)

type Meta struct {
	Title       string   `yaml:"title"`
	Description string   `yaml:"description"`
	Keywords    []string `yaml:"keywords"`
	OGTitle     string   `yaml:"og_title"`
	OGSummary   string   `yaml:"og_summary"`
}

type NavItem struct {
	Label  string     `yaml:"label"`
	Target section.ID `yaml:"target"`
}

type CTA struct {
	Label  string     `yaml:"label"`
	Action Action     `yaml:"action"`
	Target section.ID `yaml:"target"`
}

type Stat struct {
	Icon  string `yaml:"icon"`
	Value string `yaml:"value"`
	Label string `yaml:"label"`
}

type Hero struct {
	Badge    string `yaml:"badge"`
	Title    string `yaml:"title"`
	Subtitle string `yaml:"subtitle"`
	CTAs     []CTA  `yaml:"ctas"`
	Stats    []Stat `yaml:"stats"`
}

type Value struct {
	Icon        string `yaml:"icon"`
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
}

type Callout struct {
	Title string `yaml:"title"`
	Text  string `yaml:"text"`
}

type About struct {
	Title        string  `yaml:"title"`
	Subtitle     string  `yaml:"subtitle"`
	MissionText  string  `yaml:"mission_text"`
	ImageCaption Callout `yaml:"image_caption"`
	Callout      Callout `yaml:"callout"`
	Values       []Value `yaml:"values"`
}

type Program struct {
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
	Icon        string `yaml:"icon"`
}

type InvolvementOption struct {
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
	Icon        string `yaml:"icon"`
	Button      CTA    `yaml:"button"`
}

type ContactDetails struct {
	Address string `yaml:"address"`
	Email   string `yaml:"email"`
	Phone   string `yaml:"phone"`
}

type SocialLink struct {
	Platform string `yaml:"platform"`
	URL      string `yaml:"url"`
}

type Footer struct {
	Description string `yaml:"description"`
	Copyright   string `yaml:"copyright"`
}

// Site is everything the home page shows.
type Site struct {
	Meta        Meta                `yaml:"meta"`
	Nav         []NavItem           `yaml:"nav"`
	Hero        Hero                `yaml:"hero"`
	About       About               `yaml:"about"`
	Programs    []Program           `yaml:"programs"`
	Involvement []InvolvementOption `yaml:"involvement"`
	Contact     ContactDetails      `yaml:"contact"`
	MapEmbedURL string              `yaml:"map_embed_url"`
	Social      []SocialLink        `yaml:"social"`
	Footer      Footer              `yaml:"footer"`
}

// Validate checks that every scroll target names a registered section.
func (s Site) Validate(reg *section.Registry) error {
	check := func(where string, target section.ID) error {
		if _, ok := reg.Lookup(string(target)); !ok {
			return fmt.Errorf("%s: unknown section %q", where, target)
		}
		return nil
	}
	checkCTA := func(where string, cta CTA) error {
		switch cta.Action {
		case ActionDonate:
			return nil
		case ActionScroll:
			return check(where, cta.Target)
		default:
			return fmt.Errorf("%s: unknown action %q", where, cta.Action)
		}
	}

	for _, item := range s.Nav {
		if err := check("nav "+item.Label, item.Target); err != nil {
			return err
		}
	}
	for _, cta := range s.Hero.CTAs {
		if err := checkCTA("hero "+cta.Label, cta); err != nil {
			return err
		}
	}
	for _, opt := range s.Involvement {
		if err := checkCTA("involvement "+opt.Title, opt.Button); err != nil {
			return err
		}
	}
	return nil
}
