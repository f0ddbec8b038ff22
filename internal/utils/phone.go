package utils

import (
	"errors"
	"regexp"
	"strings"
)

// Country describes a supported phone country: its dialing code and the
// display mask applied while typing ('9' consumes one digit).
type Country struct {
	Code      string
	Name      string
	PhoneCode string
	Mask      string
}

// Countries supported by the contact form.
var Countries = []Country{
	{Code: "BR", Name: "Brasil", PhoneCode: "+55", Mask: "+55 (99) 99999-9999"},
	{Code: "US", Name: "Estados Unidos", PhoneCode: "+1", Mask: "+1 (999) 999-9999"},
	{Code: "PT", Name: "Portugal", PhoneCode: "+351", Mask: "+351 999 999 999"},
	{Code: "ES", Name: "Espanha", PhoneCode: "+34", Mask: "+34 999 999 999"},
	{Code: "FR", Name: "França", PhoneCode: "+33", Mask: "+33 9 99 99 99 99"},
	{Code: "DE", Name: "Alemanha", PhoneCode: "+49", Mask: "+49 999 9999999"},
	{Code: "IT", Name: "Itália", PhoneCode: "+39", Mask: "+39 999 999 9999"},
	{Code: "UK", Name: "Reino Unido", PhoneCode: "+44", Mask: "+44 9999 999999"},
	{Code: "MX", Name: "México", PhoneCode: "+52", Mask: "+52 999 999 9999"},
	{Code: "AR", Name: "Argentina", PhoneCode: "+54", Mask: "+54 9 99 9999-9999"},
	{Code: "CL", Name: "Chile", PhoneCode: "+56", Mask: "+56 9 9999 9999"},
	{Code: "CO", Name: "Colômbia", PhoneCode: "+57", Mask: "+57 999 9999999"},
	{Code: "PE", Name: "Peru", PhoneCode: "+51", Mask: "+51 999 999 999"},
}

// CountryByCode returns the country for an ISO code, or false.
func CountryByCode(code string) (Country, bool) {
	for _, c := range Countries {
		if c.Code == code {
			return c, true
		}
	}
	return Country{}, false
}

var (
	ErrPhoneMissingCountryCode = errors.New("phone number must start with a country code (+)")
	ErrPhoneTooShort           = errors.New("phone number has too few digits for its country code")
	ErrPhoneInvalidFormat      = errors.New("phone number is not in a valid WhatsApp format")
)

var e164Pattern = regexp.MustCompile(`^\+[1-9]\d{1,14}$`)

var nonDigit = regexp.MustCompile(`\D`)

// NormalizePhone strips formatting characters, keeping the leading + and the
// digits. The result is the wire form sent to the WhatsApp API.
func NormalizePhone(phone string) string {
	digits := nonDigit.ReplaceAllString(phone, "")
	if strings.HasPrefix(strings.TrimSpace(phone), "+") {
		return "+" + digits
	}
	return digits
}

// minPhoneDigits returns the minimum digit count (country code included) for
// the number's dialing prefix.
func minPhoneDigits(normalized string) int {
	switch {
	case strings.HasPrefix(normalized, "+1"):
		return 11 // US/Canada: +1 + 10 digits
	case strings.HasPrefix(normalized, "+44"):
		return 12 // UK
	case strings.HasPrefix(normalized, "+33"):
		return 11 // France
	case strings.HasPrefix(normalized, "+49"):
		return 12 // Germany
	case strings.HasPrefix(normalized, "+55"):
		return 13 // Brazil: +55 + 11 digits
	default:
		return 8 // generic international
	}
}

// ValidatePhone checks a WhatsApp phone number: leading country code,
// E.164-like shape, and a country-specific minimum digit count. Formatting
// characters (spaces, parens, dashes) are ignored.
func ValidatePhone(phone string) error {
	if !strings.HasPrefix(strings.TrimSpace(phone), "+") {
		return ErrPhoneMissingCountryCode
	}

	normalized := NormalizePhone(phone)
	digitCount := len(normalized) - 1

	if digitCount < minPhoneDigits(normalized) {
		return ErrPhoneTooShort
	}

	if !e164Pattern.MatchString(normalized) {
		return ErrPhoneInvalidFormat
	}

	return nil
}

// FormatPhone applies the country's mask to the input digits progressively:
// partial input yields a partially filled mask. Digits beyond the mask are
// dropped. The country code digits are taken from the mask itself, so the
// input may or may not repeat them.
func FormatPhone(input, countryCode string) string {
	country, ok := CountryByCode(countryCode)
	if !ok {
		return NormalizePhone(input)
	}

	digits := nonDigit.ReplaceAllString(input, "")
	codeDigits := nonDigit.ReplaceAllString(country.PhoneCode, "")
	digits = strings.TrimPrefix(digits, codeDigits)

	// The dialing code is emitted verbatim; only the mask remainder is
	// interpreted, so a 9 inside a code like +49 is not a digit slot.
	var b strings.Builder
	b.WriteString(country.PhoneCode)
	pos := 0
	for _, r := range strings.TrimPrefix(country.Mask, country.PhoneCode) {
		if r == '9' {
			if pos >= len(digits) {
				break
			}
			b.WriteByte(digits[pos])
			pos++
			continue
		}
		b.WriteRune(r)
	}

	return strings.TrimRight(b.String(), " (-")
}
