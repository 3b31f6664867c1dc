package pkg

import (
	"net/url"
	"strings"
)

// BuildWhatsAppLink formats a wa.me deep link for a customer phone number and a
// prefilled message. It is pure string formatting; no network call is made.
//
// Phone numbers are normalized to digits only, with a leading "0" rewritten to
// the Malaysian country code ("60"), matching how the factory stores numbers.
func BuildWhatsAppLink(phone, message string) string {
	digits := normalizePhone(phone)
	if digits == "" {
		return ""
	}
	link := "https://wa.me/" + digits
	if strings.TrimSpace(message) != "" {
		link += "?text=" + url.QueryEscape(message)
	}
	return link
}

func normalizePhone(phone string) string {
	var b strings.Builder
	for _, r := range phone {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	digits := b.String()
	if digits == "" {
		return ""
	}
	if strings.HasPrefix(digits, "0") {
		digits = "60" + digits[1:]
	}
	return digits
}
