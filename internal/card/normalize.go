// Package card canonicalizes raw card input into the stored shape.
// Every transform is pure and idempotent; malformed input degrades to
// the empty string instead of failing.
package card

import (
	"strings"

	"github.com/cardvault-dev/cardvault/internal/model"
)

const (
	// MaxCardNumber is the canonical card number length.
	MaxCardNumber = 16
	// MaxCVV is the maximum CVV2 length.
	MaxCVV = 4
	// MaxIBANBody is the maximum IBAN length excluding the country prefix.
	MaxIBANBody = 24
	// IBANPrefix is the country prefix every stored IBAN carries.
	IBANPrefix = "IR"
)

// Raw holds unvalidated user input for a card record.
type Raw struct {
	BankName    string
	CustomTitle string
	CardNumber  string
	IBAN        string
	CVV         string
	ExpiryDate  string
	CustomColor string
}

// Normalize canonicalizes raw input into a Card value. Derived bank
// fields are left empty; enrichment is the bank directory's job.
func Normalize(raw Raw) model.Card {
	return model.Card{
		BankName:    strings.TrimSpace(raw.BankName),
		CustomTitle: strings.TrimSpace(raw.CustomTitle),
		CardNumber:  Digits(raw.CardNumber, MaxCardNumber),
		IBAN:        IBAN(raw.IBAN),
		CVV:         Digits(raw.CVV, MaxCVV),
		ExpiryDate:  Expiry(raw.ExpiryDate),
		CustomColor: strings.TrimSpace(raw.CustomColor),
	}
}

// Digits strips every non-digit character and truncates to max.
// Truncation, not rejection, is the overflow policy.
func Digits(s string, max int) string {
	var b strings.Builder
	for _, r := range s {
		if r < '0' || r > '9' {
			continue
		}
		b.WriteRune(r)
		if b.Len() == max {
			break
		}
	}
	return b.String()
}

// IBAN canonicalizes an IBAN: case-folds to upper case, strips every
// character outside [A-Z0-9], truncates the body to MaxIBANBody, and
// prefixes IR when absent. Re-applying to an already-prefixed value
// does not double-prefix.
func IBAN(s string) string {
	var b strings.Builder
	for _, r := range strings.ToUpper(s) {
		if (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
	}
	body := strings.TrimPrefix(b.String(), IBANPrefix)
	if len(body) > MaxIBANBody {
		body = body[:MaxIBANBody]
	}
	if body == "" {
		return ""
	}
	return IBANPrefix + body
}

// Expiry shapes an expiry date as YY/MM: strips non-digits, keeps at
// most four, and inserts the separator after the second digit.
func Expiry(s string) string {
	digits := Digits(s, 4)
	if len(digits) <= 2 {
		return digits
	}
	return digits[:2] + "/" + digits[2:]
}
