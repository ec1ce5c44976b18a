package card

import "github.com/cardvault-dev/cardvault/internal/model"

// ValidationError reports a required field that is empty after
// normalization. Submissions failing validation never reach the store.
type ValidationError struct {
	Field string
}

func (e *ValidationError) Error() string {
	return e.Field + " is required"
}

// Validate checks the required fields of a normalized card. Custom
// title and custom color are optional.
func Validate(c model.Card) error {
	required := []struct {
		name  string
		value string
	}{
		{"bank name", c.BankName},
		{"card number", c.CardNumber},
		{"iban", c.IBAN},
		{"cvv", c.CVV},
		{"expiry date", c.ExpiryDate},
	}
	for _, f := range required {
		if f.value == "" {
			return &ValidationError{Field: f.name}
		}
	}
	return nil
}
