package render

import (
	"net/url"
	"strings"

	"salespage/internal/content"
)

// WhatsAppLink builds a wa.me deep link for number, optionally prefilled with
// text. It returns "" when number holds no digits.
func WhatsAppLink(number, text string) string {
	digits := content.Digits(number)
	if digits == "" {
		return ""
	}
	link := "https://wa.me/" + digits
	if text != "" {
		link += "?text=" + strings.ReplaceAll(url.QueryEscape(text), "+", "%20")
	}
	return link
}

// PlanMessage is the prefilled message for buying a pricing plan.
func PlanMessage(credits string) string {
	return "Olá! Gostaria de comprar o pacote de " + credits + " créditos"
}

// ExternalURL returns raw when it is an absolute http or https URL, else "".
func ExternalURL(raw string) string {
	raw = strings.TrimSpace(raw)
	u, err := url.Parse(raw)
	if err != nil || u.Host == "" {
		return ""
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return ""
	}
	return u.String()
}
