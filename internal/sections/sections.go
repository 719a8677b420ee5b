// Package sections models the reorderable list of content sections shown on a
// landing page.
//
// An Order always contains every known section exactly once. Persisted values
// of any shape (absent, malformed, the legacy flat list of ids, or the current
// list of {id, enabled} objects) are brought back to that form by Normalize.
package sections

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
)

// ID identifies a section. The set of valid ids is closed.
type ID string

const (
	Pricing      ID = "pricing"
	WhyBuy       ID = "why_buy"
	HowTo        ID = "how_to"
	Benefits     ID = "benefits"
	Security     ID = "security"
	About        ID = "about"
	Testimonials ID = "testimonials"
	FAQ          ID = "faq"
	Pix          ID = "pix"
)

// canonical is the default order; missing ids are appended in this order.
var canonical = []ID{Pricing, WhyBuy, HowTo, Benefits, Security, About, Testimonials, FAQ, Pix}

var labels = map[ID]string{
	Pricing:      "Tabela de Preços",
	WhyBuy:       "Por Que Comprar de Mim?",
	HowTo:        "Como Solicitar",
	Benefits:     "O Que Você Recebe",
	Security:     "Segurança",
	About:        "Sobre Mim",
	Testimonials: "Depoimentos",
	FAQ:          "FAQ",
	Pix:          "Doações PIX",
}

var (
	ErrUnknownSection  = errors.New("unknown section")
	ErrIndexOutOfRange = errors.New("section index out of range")
)

// IDs returns the canonical section ids.
func IDs() []ID {
	out := make([]ID, len(canonical))
	copy(out, canonical)
	return out
}

// Valid reports whether id belongs to the closed set.
func (id ID) Valid() bool {
	_, ok := labels[id]
	return ok
}

// Label returns the editor label for the section, or the raw id when unknown.
func Label(id ID) string {
	if l, ok := labels[id]; ok {
		return l
	}
	return string(id)
}

// Entry is one position in an Order.
type Entry struct {
	ID      ID   `json:"id"`
	Enabled bool `json:"enabled"`
}

// Order is the user-controlled sequence of sections.
type Order []Entry

// Default returns the canonical order with every section enabled.
func Default() Order {
	out := make(Order, 0, len(canonical))
	for _, id := range canonical {
		out = append(out, Entry{ID: id, Enabled: true})
	}
	return out
}

// rawEntry mirrors the object form of a persisted entry. Enabled is kept raw
// because only a literal false disables a section.
type rawEntry struct {
	ID      *string         `json:"id"`
	Enabled json.RawMessage `json:"enabled"`
}

// Normalize turns a persisted section order of unknown shape into a complete Order.
//
// Input order is preserved. Bare string ids are enabled; object entries are
// enabled unless "enabled" is exactly false. Unknown ids and repeats are dropped.
// Known ids that were not present are appended, enabled, in canonical order.
func Normalize(raw []byte) Order {
	var items []json.RawMessage
	if err := json.Unmarshal(raw, &items); err != nil {
		return Default()
	}

	out := make(Order, 0, len(canonical))
	seen := make(map[ID]bool, len(canonical))
	add := func(id ID, enabled bool) {
		if !id.Valid() || seen[id] {
			return
		}
		seen[id] = true
		out = append(out, Entry{ID: id, Enabled: enabled})
	}

	for _, item := range items {
		item = bytes.TrimSpace(item)
		if len(item) == 0 {
			continue
		}
		switch item[0] {
		case '"':
			var s string
			if json.Unmarshal(item, &s) == nil {
				add(ID(s), true)
			}
		case '{':
			var e rawEntry
			if json.Unmarshal(item, &e) != nil || e.ID == nil || *e.ID == "" {
				continue
			}
			add(ID(*e.ID), !bytes.Equal(bytes.TrimSpace(e.Enabled), []byte("false")))
		}
	}

	return out.complete(seen)
}

func (o Order) complete(seen map[ID]bool) Order {
	for _, id := range canonical {
		if !seen[id] {
			o = append(o, Entry{ID: id, Enabled: true})
		}
	}
	return o
}

// Normalized returns a complete copy of o, applying the same rules as Normalize.
func (o Order) Normalized() Order {
	out := make(Order, 0, len(canonical))
	seen := make(map[ID]bool, len(canonical))
	for _, e := range o {
		if !e.ID.Valid() || seen[e.ID] {
			continue
		}
		seen[e.ID] = true
		out = append(out, e)
	}
	return out.complete(seen)
}

// UnmarshalJSON accepts any persisted shape and normalizes it.
func (o *Order) UnmarshalJSON(data []byte) error {
	*o = Normalize(data)
	return nil
}

// MarshalJSON always writes the object form. A nil Order is written as the default.
func (o Order) MarshalJSON() ([]byte, error) {
	return json.Marshal([]Entry(o.Normalized()))
}

// Index returns the position of id, or -1.
func (o Order) Index(id ID) int {
	for i, e := range o {
		if e.ID == id {
			return i
		}
	}
	return -1
}

// Enabled reports whether id is present and enabled.
func (o Order) Enabled(id ID) bool {
	i := o.Index(id)
	return i >= 0 && o[i].Enabled
}

// Move relocates the entry at index from to index to, shifting the others.
func (o Order) Move(from, to int) (Order, error) {
	n := o.Normalized()
	if from < 0 || from >= len(n) || to < 0 || to >= len(n) {
		return nil, fmt.Errorf("%w: move %d -> %d", ErrIndexOutOfRange, from, to)
	}
	e := n[from]
	n = append(n[:from], n[from+1:]...)
	n = append(n[:to], append(Order{e}, n[to:]...)...)
	return n, nil
}

// Shift moves the section id by delta positions, clamped to the list bounds.
func (o Order) Shift(id ID, delta int) (Order, error) {
	n := o.Normalized()
	from := n.Index(id)
	if from < 0 {
		return nil, fmt.Errorf("%w: %q", ErrUnknownSection, id)
	}
	to := from + delta
	if to < 0 {
		to = 0
	}
	if to >= len(n) {
		to = len(n) - 1
	}
	return n.Move(from, to)
}

// Toggle sets the enabled flag of id without changing its position.
func (o Order) Toggle(id ID, enabled bool) (Order, error) {
	n := o.Normalized()
	i := n.Index(id)
	if i < 0 {
		return nil, fmt.Errorf("%w: %q", ErrUnknownSection, id)
	}
	n[i].Enabled = enabled
	return n, nil
}
