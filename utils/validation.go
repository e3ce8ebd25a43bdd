// utils/validation.go
package utils

import (
	"regexp"
	"strings"
)

var (
	phoneRe    = regexp.MustCompile(`^\+?[1-9]\d{1,14}$`)
	nonDigitRe = regexp.MustCompile(`[^\d]`)
	// Argentine mobile prefix "15" appears right after a 2-4 digit area code.
	localPrefixRe = regexp.MustCompile(`^(\d{2,4})15`)
)

// ValidatePhone checks if a phone number is in a valid international format
func ValidatePhone(phone string) bool {
	cleaned := strings.ReplaceAll(phone, " ", "")
	cleaned = strings.ReplaceAll(cleaned, "-", "")
	cleaned = strings.ReplaceAll(cleaned, "(", "")
	cleaned = strings.ReplaceAll(cleaned, ")", "")

	return phoneRe.MatchString(cleaned)
}

// NormalizePhoneForWhatsApp converts a raw phone number to the digits-only
// form WhatsApp expects. Numbers without a country code are treated as
// Argentine: leading zeros are stripped, the local "15" mobile prefix is
// removed, and the WhatsApp mobile "9" is inserted after the 54 country
// code when missing.
func NormalizePhoneForWhatsApp(rawPhone string) string {
	trimmed := strings.TrimSpace(rawPhone)
	if trimmed == "" {
		return ""
	}
	digits := nonDigitRe.ReplaceAllString(trimmed, "")

	if strings.HasPrefix(trimmed, "+") {
		if !strings.HasPrefix(trimmed, "+54") {
			// Other countries pass through as bare digits.
			return digits
		}
		return "54" + normalizeArgentineRest(strings.TrimPrefix(digits, "54"))
	}

	return "54" + normalizeArgentineRest(digits)
}

func normalizeArgentineRest(rest string) string {
	rest = strings.TrimLeft(rest, "0")
	rest = localPrefixRe.ReplaceAllString(rest, "$1")
	if !strings.HasPrefix(rest, "9") {
		rest = "9" + rest
	}
	return rest
}
