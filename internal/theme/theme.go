// Package theme holds the color presets a page can choose from.
package theme

// Preset is a named palette. Colors are HSL triplets ("H S% L%") used as CSS
// custom property values.
type Preset struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Primary string `json:"primary"`
	Accent  string `json:"accent"`
}

// DefaultID is used for empty or unknown preset ids.
const DefaultID = "red"

var presets = []Preset{
	{ID: "red", Name: "Vermelho", Primary: "0 84% 60%", Accent: "45 100% 55%"},
	{ID: "green", Name: "Verde", Primary: "142 71% 45%", Accent: "45 100% 55%"},
	{ID: "blue", Name: "Azul", Primary: "217 91% 60%", Accent: "45 100% 55%"},
	{ID: "purple", Name: "Roxo", Primary: "270 70% 60%", Accent: "45 100% 55%"},
	{ID: "orange", Name: "Laranja", Primary: "25 95% 53%", Accent: "45 100% 55%"},
	{ID: "pink", Name: "Rosa", Primary: "330 80% 60%", Accent: "45 100% 55%"},
	{ID: "teal", Name: "Teal", Primary: "175 70% 45%", Accent: "45 100% 55%"},
	{ID: "yellow", Name: "Amarelo", Primary: "45 93% 47%", Accent: "0 84% 60%"},
}

// All returns every preset in display order.
func All() []Preset {
	out := make([]Preset, len(presets))
	copy(out, presets)
	return out
}

// Lookup returns the preset with the given id.
func Lookup(id string) (Preset, bool) {
	for _, p := range presets {
		if p.ID == id {
			return p, true
		}
	}
	return Preset{}, false
}

// Resolve returns the preset for id, falling back to the default preset.
func Resolve(id string) Preset {
	if p, ok := Lookup(id); ok {
		return p
	}
	p, _ := Lookup(DefaultID)
	return p
}

// Valid reports whether id is empty or names a known preset.
func Valid(id string) bool {
	if id == "" {
		return true
	}
	_, ok := Lookup(id)
	return ok
}
