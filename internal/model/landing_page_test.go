package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"salespage/internal/content"
	"salespage/internal/sections"
)

func TestNewDefaultPage(t *testing.T) {
	p := NewDefaultPage()

	assert.Empty(t, p.ID)
	assert.Empty(t, p.Slug)
	assert.True(t, p.IsPublished)
	assert.Len(t, p.PricingPlans, 10)
	assert.Equal(t, sections.Default(), p.SectionOrder)

	before := p
	p.Sanitize()
	assert.Equal(t, before, p, "defaults are already valid")
}

func TestLandingPage_Sanitize(t *testing.T) {
	p := LandingPage{
		FAQItems:        []content.FAQItem{{Question: "Q", Answer: "A"}, {Question: "Q"}},
		Testimonials:    []content.Testimonial{{Name: "Ana", Content: "Top"}},
		HowToSteps:      []content.HowToStep{{Title: "a"}, {Title: "b"}},
		BenefitsReceive: []string{"", " x "},
		SectionOrder:    sections.Order{{ID: sections.FAQ, Enabled: false}},
	}

	p.Sanitize()

	assert.Len(t, p.FAQItems, 1)
	assert.Equal(t, 5, p.Testimonials[0].Rating)
	assert.Equal(t, 2, p.HowToSteps[1].Step)
	assert.Equal(t, []string{"x"}, p.BenefitsReceive)
	assert.Empty(t, p.PricingPlans)
	require.Len(t, p.SectionOrder, len(sections.IDs()))
	assert.Equal(t, sections.FAQ, p.SectionOrder[0].ID)
	assert.False(t, p.SectionOrder[0].Enabled)
}

func TestLandingPage_JSONAcceptsLegacySectionOrder(t *testing.T) {
	var p LandingPage
	require.NoError(t, json.Unmarshal([]byte(`{"slug":"x","section_order":["faq","pix"],"pricing_plans":[{"credits":100,"price":97}]}`), &p))

	assert.Equal(t, sections.FAQ, p.SectionOrder[0].ID)
	assert.Len(t, p.SectionOrder, len(sections.IDs()))
	assert.Equal(t, content.Text("100"), p.PricingPlans[0].Credits)
}

func TestLandingPage_Summary(t *testing.T) {
	p := LandingPage{ID: "1", UserID: "u", Slug: "s", HeroTitle: "T", IsPublished: true}

	assert.Equal(t, PageSummary{ID: "1", UserID: "u", Slug: "s", HeroTitle: "T", IsPublished: true}, p.Summary())
}
