// Package render turns a landing page record into the public HTML document.
package render

import (
	"salespage/internal/model"
	"salespage/internal/sections"
)

// Block is one unit of the rendered page. Section blocks are named after their
// section id; Hero and CTA are fixed around them.
type Block string

const (
	Hero Block = "hero"
	CTA  Block = "cta"
)

// Plan lists the blocks to render, in order: the hero, every enabled section
// that has content, then the call to action.
func Plan(order sections.Order, page *model.LandingPage) []Block {
	order = order.Normalized()
	out := make([]Block, 0, len(order)+2)
	out = append(out, Hero)
	for _, e := range order {
		if !e.Enabled || !HasContent(e.ID, page) {
			continue
		}
		out = append(out, Block(e.ID))
	}
	return append(out, CTA)
}

// HasContent reports whether the data behind a section is non-empty.
func HasContent(id sections.ID, page *model.LandingPage) bool {
	switch id {
	case sections.Pricing:
		return len(page.PricingPlans) > 0
	case sections.WhyBuy:
		return len(page.WhyBuyItems) > 0
	case sections.HowTo:
		return len(page.HowToSteps) > 0
	case sections.Benefits:
		return len(page.BenefitsReceive) > 0
	case sections.Security:
		return len(page.SecurityItems) > 0
	case sections.About:
		return page.AboutName != ""
	case sections.Testimonials:
		return len(page.Testimonials) > 0
	case sections.FAQ:
		return len(page.FAQItems) > 0
	case sections.Pix:
		return page.PixEnabled && page.PixKey != ""
	}
	return false
}
