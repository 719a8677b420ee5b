package render

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io"

	"salespage/internal/content"
	"salespage/internal/model"
	"salespage/internal/theme"
)

//go:embed templates/*.html
var templateFS embed.FS

const (
	defaultCTA      = "Falar no WhatsApp"
	defaultBuyCTA   = "Comprar Agora"
	defaultChannel  = "Ver Canal"
	defaultDonation = "Apoie meu trabalho"
	fallbackIcon    = "✨"
)

var icons = map[string]string{
	"users":      "👥",
	"book":       "📖",
	"clock":      "⏰",
	"message":    "💬",
	"star":       "⭐",
	"shield":     "🛡️",
	"zap":        "⚡",
	"credit":     "💳",
	"headphones": "🎧",
	"heart":      "❤️",
	"award":      "🏆",
	"check":      "✅",
	"lock":       "🔒",
	"trending":   "📈",
}

// icon maps a stored icon name to an emoji. Stored emoji pass through.
func icon(name string) string {
	if e, ok := icons[name]; ok {
		return e
	}
	if name == "" {
		return fallbackIcon
	}
	return name
}

var funcs = template.FuncMap{
	"icon":  icon,
	"stars": content.Stars,
	"css":   func(s string) template.CSS { return template.CSS(s) },
}

// Renderer executes the embedded page templates.
type Renderer struct {
	tmpl *template.Template
}

// New parses the embedded templates.
func New() (*Renderer, error) {
	tmpl, err := template.New("page").Funcs(funcs).ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parse page templates: %w", err)
	}
	return &Renderer{tmpl: tmpl}, nil
}

type planView struct {
	content.PricingPlan
	BuyURL string
}

type view struct {
	Page        *model.LandingPage
	Title       string
	Description string
	Theme       theme.Preset
	PixTheme    theme.Preset
	WhatsAppURL string
	CTAText     string
	BuyText     string
	ChannelURL  string
	ChannelName string
	Donation    string
	Plans       []planView
	Blocks      []template.HTML
}

func newView(page *model.LandingPage) *view {
	v := &view{
		Page:        page,
		Title:       firstNonEmpty(page.MetaTitle, page.HeroTitle),
		Description: firstNonEmpty(page.MetaDescription, page.HeroSubtitle),
		Theme:       theme.Resolve(page.ThemeColor),
		WhatsAppURL: WhatsAppLink(page.WhatsAppNumber, ""),
		CTAText:     firstNonEmpty(page.CTAText, defaultCTA),
		BuyText:     firstNonEmpty(page.CTAText, defaultBuyCTA),
		ChannelURL:  ExternalURL(page.ChannelURL),
		ChannelName: firstNonEmpty(page.ChannelName, defaultChannel),
		Donation:    firstNonEmpty(page.DonationTitle, defaultDonation),
	}
	v.PixTheme = v.Theme
	if page.PixColor != "" {
		v.PixTheme = theme.Resolve(page.PixColor)
	}
	for _, p := range page.PricingPlans {
		v.Plans = append(v.Plans, planView{
			PricingPlan: p,
			BuyURL:      WhatsAppLink(page.WhatsAppNumber, PlanMessage(p.Credits.String())),
		})
	}
	return v
}

// Render writes the full HTML document for page, following its section order.
func (r *Renderer) Render(w io.Writer, page *model.LandingPage) error {
	v := newView(page)

	for _, b := range Plan(page.SectionOrder, page) {
		var buf bytes.Buffer
		if err := r.tmpl.ExecuteTemplate(&buf, string(b), v); err != nil {
			return fmt.Errorf("render block %s: %w", b, err)
		}
		v.Blocks = append(v.Blocks, template.HTML(buf.String()))
	}

	if err := r.tmpl.ExecuteTemplate(w, "layout", v); err != nil {
		return fmt.Errorf("render layout: %w", err)
	}
	return nil
}

// RenderBytes renders page into memory.
func (r *Renderer) RenderBytes(page *model.LandingPage) ([]byte, error) {
	var buf bytes.Buffer
	if err := r.Render(&buf, page); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
