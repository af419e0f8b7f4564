package content

import "github.com/peace-building-initiative/site/section"

// Default returns the content the site ships with.
func Default() Site {
	return Site{
		Meta: Meta{
			Title:       "Peace Building Initiative - Empowering Communities in Tarime, Musoma",
			Description: "Peace Building Initiative is a nonprofit computer-assisted learning center in Tarime, Musoma, Tanzania. We empower communities through digital education and peace-building programs.",
			Keywords: []string{
				"Peace Building", "Tanzania", "Tarime", "Musoma",
				"Digital Learning", "Education", "Computer Learning", "Youth Empowerment",
			},
			OGTitle:   "Peace Building Initiative",
			OGSummary: "Empowering communities through education and technology in Tanzania",
		},
		Nav: []NavItem{
			{Label: "Home", Target: section.Home},
			{Label: "About", Target: section.About},
			{Label: "Programs", Target: section.Programs},
			{Label: "Get Involved", Target: section.GetInvolved},
			{Label: "Contact", Target: section.Contact},
		},
		Hero: Hero{
			Badge:    "Building a Better Tomorrow",
			Title:    "Peace Building Initiative",
			Subtitle: "Empowering communities in Tarime, Musoma through computer-assisted learning and peace education. Together, we're building a brighter, more connected future for Tanzania's youth.",
			CTAs: []CTA{
				{Label: "Join Our Mission", Action: ActionScroll, Target: section.Contact},
				{Label: "Learn More", Action: ActionScroll, Target: section.About},
				{Label: "Support Us", Action: ActionDonate},
			},
			Stats: []Stat{
				{Icon: "users", Value: "50", Label: "Students Enrolled"},
				{Icon: "book-open", Value: "5", Label: "Active Programs"},
				{Icon: "heart", Value: "100%", Label: "Community Impact"},
			},
		},
		About: About{
			Title:       "About Peace Building Initiative",
			Subtitle:    "Transforming lives through education and technology",
			MissionText: "At Peace Building Initiative, we believe that education and technology are powerful tools for transformation. Our mission is to provide accessible computer-assisted learning opportunities to students in Tarime, Musoma, while fostering a culture of peace and understanding in our community. Through our comprehensive programs, we're not just teaching digital skills. We're building bridges, creating opportunities, and empowering the next generation of leaders who will shape Tanzania's future.",
			ImageCaption: Callout{
				Title: "Empowering Youth",
				Text:  "Building digital skills for Tanzania's future leaders",
			},
			Callout: Callout{
				Title: "Peace Through Education",
				Text:  "Creating lasting change in Tarime, Musoma",
			},
			Values: []Value{
				{Icon: "target", Title: "Our Mission", Description: "To provide accessible computer-assisted learning and foster peace in our community."},
				{Icon: "eye", Title: "Our Vision", Description: "A future where every young person has the digital skills to succeed and thrive."},
				{Icon: "heart", Title: "Our Values", Description: "Education, peace, inclusivity, and community empowerment guide everything we do."},
			},
		},
		Programs: []Program{
			{
				Title:       "Digital Learning",
				Description: "Providing computer-assisted learning opportunities to students in Tarime, bridging the digital divide through hands-on technology education.",
				Icon:        "monitor",
			},
			{
				Title:       "Community Peace Clubs",
				Description: "Building peaceful communities through dialogue, conflict resolution training, and youth engagement programs that promote understanding and cooperation.",
				Icon:        "users",
			},
			{
				Title:       "Digital Literacy for Youth",
				Description: "Empowering young people with essential digital skills for the 21st century, including coding, digital citizenship, and online safety.",
				Icon:        "graduation-cap",
			},
		},
		Involvement: []InvolvementOption{
			{
				Title:       "Volunteer",
				Description: "Share your skills and time to help empower our community. Whether teaching, mentoring, or supporting our programs, your contribution matters.",
				Icon:        "heart",
				Button:      CTA{Label: "Become a Volunteer", Action: ActionScroll, Target: section.Contact},
			},
			{
				Title:       "Partner With Us",
				Description: "Collaborate with PBI to expand our impact. We welcome partnerships with organizations that share our vision for education and peace.",
				Icon:        "handshake",
				Button:      CTA{Label: "Explore Partnerships", Action: ActionScroll, Target: section.Contact},
			},
			{
				Title:       "Donate",
				Description: "Support our mission with a financial contribution. Every donation helps us provide better learning resources and reach more students.",
				Icon:        "dollar-sign",
				Button:      CTA{Label: "Make a Donation", Action: ActionDonate},
			},
		},
		Contact: ContactDetails{
			Address: "Tarime, Musoma, Tanzania",
			Email:   "info@peacebuildinginitiative.org",
			Phone:   "+255 XXX XXX XXX",
		},
		MapEmbedURL: "https://www.google.com/maps/embed?pb=!1m18!1m12!1m3!1d127422.69954088876!2d34.07!3d-1.35!2m3!1f0!2f0!3f0!3m2!1i1024!2i768!4f13.1!3m3!1m2!1s0x182ae8f0c0000001%3A0x1!2sTarime%2C%20Tanzania!5e0!3m2!1sen!2sus!4v1234567890",
		Social: []SocialLink{
			{Platform: "facebook", URL: "https://facebook.com/pbi"},
			{Platform: "twitter", URL: "https://twitter.com/pbi"},
			{Platform: "instagram", URL: "https://instagram.com/pbi"},
			{Platform: "email", URL: "mailto:info@peacebuildinginitiative.org"},
		},
		Footer: Footer{
			Description: "Empowering communities in Tarime, Musoma through computer-assisted learning and peace education.",
			Copyright:   "2025 Peace Building Initiative. All rights reserved.",
		},
	}
}
