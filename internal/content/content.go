// Package content defines the typed items stored in a landing page's JSON
// columns and the lenient decoders used when reading them back.
//
// Stored blobs are loosely shaped. Decoders never fail: malformed blobs yield
// an empty list and items that do not pass validation are dropped, so the
// renderer only ever sees well-formed values.
package content

import (
	"bytes"
	"encoding/json"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// Text is a string that also accepts JSON numbers, since older records store
// prices and credit amounts as numbers.
type Text string

func (t *Text) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*t = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*t = Text(strings.TrimSpace(s))
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*t = Text(n.String())
	return nil
}

func (t Text) String() string { return string(t) }

// PricingPlan is one credit package offered for sale.
type PricingPlan struct {
	Credits Text `json:"credits" validate:"required"`
	Price   Text `json:"price" validate:"required"`
	Bonus   Text `json:"bonus,omitempty"`
}

// Testimonial is a customer quote. Rating defaults to 5 when absent.
type Testimonial struct {
	Name    string `json:"name" validate:"required"`
	Role    string `json:"role,omitempty"`
	Rating  int    `json:"rating" validate:"min=1,max=5"`
	Content string `json:"content" validate:"required"`
}

type FAQItem struct {
	Question string `json:"question" validate:"required"`
	Answer   string `json:"answer" validate:"required"`
}

type WhyBuyItem struct {
	Icon  string `json:"icon,omitempty"`
	Title string `json:"title" validate:"required"`
}

// HowToStep is a numbered instruction. Missing step numbers follow list position.
type HowToStep struct {
	Step  int    `json:"step" validate:"min=1"`
	Title string `json:"title" validate:"required"`
}

type AboutHighlight struct {
	Title       string `json:"title" validate:"required"`
	Description string `json:"description,omitempty"`
}

// Valid reports whether v passes its struct validation tags.
func Valid(v any) bool {
	return validate.Struct(v) == nil
}

// Filter returns the items of in that pass validation, after fix has been
// applied to each one with its position. fix may be nil.
func Filter[T any](in []T, fix func(i int, v *T)) []T {
	out := make([]T, 0, len(in))
	for i := range in {
		v := in[i]
		if fix != nil {
			fix(i, &v)
		}
		if Valid(&v) {
			out = append(out, v)
		}
	}
	return out
}

// decodeList decodes each element of a JSON array independently so one bad
// element does not discard its neighbours.
func decodeList[T any](raw []byte, fix func(i int, v *T)) []T {
	var items []json.RawMessage
	if err := json.Unmarshal(raw, &items); err != nil {
		return []T{}
	}
	out := make([]T, 0, len(items))
	for _, item := range items {
		var v T
		if err := json.Unmarshal(item, &v); err != nil {
			continue
		}
		out = append(out, v)
	}
	return Filter(out, fix)
}

func trimAll(fields ...*string) {
	for _, f := range fields {
		*f = strings.TrimSpace(*f)
	}
}

// FixTestimonial trims fields and defaults an absent rating to 5.
func FixTestimonial(_ int, t *Testimonial) {
	trimAll(&t.Name, &t.Role, &t.Content)
	if t.Rating == 0 {
		t.Rating = 5
	}
}

func FixFAQItem(_ int, f *FAQItem) { trimAll(&f.Question, &f.Answer) }

func FixWhyBuyItem(_ int, w *WhyBuyItem) { trimAll(&w.Icon, &w.Title) }

// FixHowToStep numbers steps by position when the stored number is missing.
func FixHowToStep(i int, s *HowToStep) {
	trimAll(&s.Title)
	if s.Step <= 0 {
		s.Step = i + 1
	}
}

func FixAboutHighlight(_ int, h *AboutHighlight) { trimAll(&h.Title, &h.Description) }

func DecodePricingPlans(raw []byte) []PricingPlan {
	return decodeList[PricingPlan](raw, nil)
}

func DecodeTestimonials(raw []byte) []Testimonial {
	return decodeList(raw, FixTestimonial)
}

func DecodeFAQItems(raw []byte) []FAQItem {
	return decodeList(raw, FixFAQItem)
}

func DecodeWhyBuyItems(raw []byte) []WhyBuyItem {
	return decodeList(raw, FixWhyBuyItem)
}

func DecodeHowToSteps(raw []byte) []HowToStep {
	return decodeList(raw, FixHowToStep)
}

func DecodeAboutHighlights(raw []byte) []AboutHighlight {
	return decodeList(raw, FixAboutHighlight)
}

// DecodeStrings decodes a list of plain strings, dropping blanks and
// non-string elements. Numbers are kept in their textual form.
func DecodeStrings(raw []byte) []string {
	var items []json.RawMessage
	if err := json.Unmarshal(raw, &items); err != nil {
		return []string{}
	}
	out := make([]string, 0, len(items))
	for _, item := range items {
		var s string
		if err := json.Unmarshal(item, &s); err != nil {
			var n json.Number
			if json.Unmarshal(item, &n) != nil {
				continue
			}
			s = n.String()
		}
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}

// CleanStrings trims and drops blank entries.
func CleanStrings(in []string) []string {
	out := make([]string, 0, len(in))
	for _, s := range in {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}

// Digits keeps only ASCII digits, as used in phone-based deep links.
func Digits(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// Stars returns a slice of length rating for templates to range over.
func Stars(rating int) []int {
	if rating < 1 {
		rating = 5
	}
	if rating > 5 {
		rating = 5
	}
	out := make([]int, rating)
	for i := range out {
		out[i] = i + 1
	}
	return out
}
