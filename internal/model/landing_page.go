package model

import (
	"time"

	"salespage/internal/content"
	"salespage/internal/sections"
)

// LandingPage is the editable sales page owned by one user and served publicly by Slug.
// Optional text fields are empty strings rather than nulls.
type LandingPage struct {
	ID     string `json:"id"`
	UserID string `json:"user_id"`
	Slug   string `json:"slug"`

	HeroTitle    string `json:"hero_title"`
	HeroSubtitle string `json:"hero_subtitle"`
	HeroBadge    string `json:"hero_badge"`
	HeroImageURL string `json:"hero_image_url"`

	OfferText      string `json:"offer_text"`
	BonusText      string `json:"bonus_text"`
	DeliveryTime   string `json:"delivery_time"`
	CTAText        string `json:"cta_text"`
	WhatsAppNumber string `json:"whatsapp_number"`
	ChannelURL     string `json:"channel_url"`
	ChannelName    string `json:"channel_name"`

	IsPublished     bool   `json:"is_published"`
	MetaTitle       string `json:"meta_title"`
	MetaDescription string `json:"meta_description"`

	AboutName        string                   `json:"about_name"`
	AboutTitle       string                   `json:"about_title"`
	AboutDescription string                   `json:"about_description"`
	AboutImageURL    string                   `json:"about_image_url"`
	AboutHighlights  []content.AboutHighlight `json:"about_highlights"`

	WhyBuyItems     []content.WhyBuyItem  `json:"why_buy_items"`
	HowToSteps      []content.HowToStep   `json:"how_to_steps"`
	BenefitsReceive []string              `json:"benefits_receive"`
	SecurityItems   []string              `json:"security_items"`
	PricingPlans    []content.PricingPlan `json:"pricing_plans"`
	Testimonials    []content.Testimonial `json:"testimonials"`
	FAQItems        []content.FAQItem     `json:"faq_items"`

	PixEnabled    bool   `json:"pix_enabled"`
	PixKey        string `json:"pix_key"`
	PixName       string `json:"pix_name"`
	PixColor      string `json:"pix_color"`
	DonationTitle string `json:"donation_title"`

	ThemeColor   string         `json:"theme_color"`
	SectionOrder sections.Order `json:"section_order"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Sanitize drops invalid content items and completes the section order in place.
func (p *LandingPage) Sanitize() {
	p.AboutHighlights = content.Filter(p.AboutHighlights, content.FixAboutHighlight)
	p.WhyBuyItems = content.Filter(p.WhyBuyItems, content.FixWhyBuyItem)
	p.HowToSteps = content.Filter(p.HowToSteps, content.FixHowToStep)
	p.BenefitsReceive = content.CleanStrings(p.BenefitsReceive)
	p.SecurityItems = content.CleanStrings(p.SecurityItems)
	p.PricingPlans = content.Filter(p.PricingPlans, nil)
	p.Testimonials = content.Filter(p.Testimonials, content.FixTestimonial)
	p.FAQItems = content.Filter(p.FAQItems, content.FixFAQItem)
	p.SectionOrder = p.SectionOrder.Normalized()
}

// PageSummary is the listing view of a page.
type PageSummary struct {
	ID          string    `json:"id"`
	UserID      string    `json:"user_id"`
	Slug        string    `json:"slug"`
	HeroTitle   string    `json:"hero_title"`
	IsPublished bool      `json:"is_published"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Summary returns the listing view of p.
func (p *LandingPage) Summary() PageSummary {
	return PageSummary{
		ID:          p.ID,
		UserID:      p.UserID,
		Slug:        p.Slug,
		HeroTitle:   p.HeroTitle,
		IsPublished: p.IsPublished,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

// NewDefaultPage returns the content a new page starts with in the editor.
func NewDefaultPage() LandingPage {
	return LandingPage{
		HeroTitle:        "CRÉDITOS LOVABLE COM BÔNUS EXCLUSIVO",
		HeroSubtitle:     "ENTREGA GARANTIDA",
		HeroBadge:        "Mestre do Lovable",
		OfferText:        "🔥 Oferta Limitada: Até 40% de desconto em créditos Lovable!",
		BonusText:        "+50 CRÉDITOS BÔNUS EM TODOS OS PLANOS",
		DeliveryTime:     "45 a 120 minutos",
		CTAText:          "Falar no WhatsApp",
		IsPublished:      true,
		AboutName:        "Wallas",
		AboutTitle:       "Especialista em Lovable",
		AboutDescription: "Com anos de experiência em desenvolvimento no-code e IA, me tornei referência na comunidade brasileira de Lovable.",
		AboutHighlights: []content.AboutHighlight{
			{Title: "Criador da Bíblia do Lovable", Description: "O guia definitivo com todas as melhores práticas"},
			{Title: "Canal Mestre do Lovable", Description: "Tutoriais e estratégias exclusivas"},
			{Title: "Comunidade com +900 Membros", Description: "Líder da maior comunidade brasileira"},
			{Title: "Serviço Confiável", Description: "Centenas de clientes satisfeitos"},
		},
		WhyBuyItems: []content.WhyBuyItem{
			{Icon: "users", Title: "900+ membros satisfeitos"},
			{Icon: "book", Title: "Criador da Bíblia do Lovable"},
			{Icon: "clock", Title: "Entrega rápida (45-120 min)"},
			{Icon: "message", Title: "Suporte direto via WhatsApp"},
		},
		HowToSteps: []content.HowToStep{
			{Step: 1, Title: "Entre na sua conta Lovable.dev"},
			{Step: 2, Title: "Acesse o menu e copie seu Invite Link 🔗"},
			{Step: 3, Title: "Escolha o pacote de créditos desejado"},
			{Step: 4, Title: "Envie seu link no privado do adm pelo WhatsApp"},
			{Step: 5, Title: "Aguarde a confirmação da recarga"},
		},
		BenefitsReceive: []string{
			"Créditos válidos diretamente na sua conta Lovable.dev",
			"Processamento seguro dentro das normas da plataforma",
			"Serviço 100% digital e instantâneo",
			"Suporte humano para dúvidas, ajustes e orientações",
		},
		SecurityItems: []string{
			"Nenhum dado sensível da sua conta é solicitado",
			"Seu Invite Link é usado somente para liberação dos créditos",
			"Processamento 100% seguro e dentro das políticas da plataforma",
		},
		PricingPlans: []content.PricingPlan{
			{Credits: "100", Price: "97", Bonus: "50"},
			{Credits: "150", Price: "127", Bonus: "50"},
			{Credits: "200", Price: "157", Bonus: "50"},
			{Credits: "250", Price: "177", Bonus: "50"},
			{Credits: "300", Price: "197", Bonus: "50"},
			{Credits: "400", Price: "297", Bonus: "50"},
			{Credits: "500", Price: "347", Bonus: "50"},
			{Credits: "1000", Price: "597", Bonus: "50"},
			{Credits: "1500", Price: "697", Bonus: "50"},
			{Credits: "2000", Price: "847", Bonus: "50"},
		},
		Testimonials: []content.Testimonial{
			{Name: "Carlos Silva", Role: "Desenvolvedor", Rating: 5, Content: "Excelente serviço! Recebi os créditos rapidamente."},
			{Name: "Marina Costa", Role: "Empreendedora", Rating: 5, Content: "Muito bom! Processo simples e rápido."},
		},
		FAQItems: []content.FAQItem{
			{Question: "Como funcionam os créditos Lovable?", Answer: "Os créditos Lovable são adicionados diretamente na sua conta após a confirmação do pagamento."},
			{Question: "Quanto tempo leva para receber os créditos?", Answer: "O processamento leva entre 45 a 120 minutos após a confirmação do pagamento."},
			{Question: "Os créditos têm prazo de validade?", Answer: "Os créditos não expiram e ficam disponíveis na sua conta."},
			{Question: "É seguro fornecer meu Invite Link?", Answer: "Sim, o Invite Link não dá acesso à sua conta, apenas permite adicionar créditos."},
			{Question: "Posso escolher qualquer pacote?", Answer: "Sim, você pode escolher o pacote que melhor atende suas necessidades."},
		},
		DonationTitle: "Apoie meu trabalho",
		ThemeColor:    "red",
		SectionOrder:  sections.Default(),
	}
}
