package remote

import (
	"encoding/json"

	"github.com/google/uuid"

	"github.com/cardvault-dev/cardvault/internal/bankdir"
	"github.com/cardvault-dev/cardvault/internal/card"
	"github.com/cardvault-dev/cardvault/internal/model"
)

// statusSuccess is the only response status that is not a failure.
const statusSuccess = "success"

// pushRequest is the save-to-server body: a full replace of the user's
// remote collection.
type pushRequest struct {
	Cards []pushCard `json:"cards"`
}

// pushCard is the outgoing wire shape. Derived local fields are
// stripped; bankColor carries the effective display color.
type pushCard struct {
	BankName    string `json:"bankName"`
	CustomTitle string `json:"customTitle"`
	CardNumber  string `json:"cardNumber"`
	IBAN        string `json:"iban"`
	CVV         string `json:"cvv"`
	ExpiryDate  string `json:"expiryDate"`
	BankColor   string `json:"bankColor"`
}

// pushResponse acknowledges a push.
type pushResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// pullResponse is the load-from-server body.
type pullResponse struct {
	Status  string       `json:"status"`
	Message string       `json:"message"`
	Cards   []pullRecord `json:"cards"`
}

// pullRecord is the incoming wire shape. The remote store assigns
// numeric identifiers and uses its own field names.
type pullRecord struct {
	ID          json.Number `json:"id"`
	BankName    string      `json:"bank_name"`
	CardName    string      `json:"card_name"`
	CardNumber  string      `json:"card_number"`
	ShabaNumber string      `json:"shaba_number"`
	CVV         string      `json:"cvv"`
	ExpireDate  string      `json:"expire_date"`
	BankColor   string      `json:"bankColor"`
}

// toWire maps a local card to the push shape. The user's custom color
// wins over the derived bank color.
func toWire(c model.Card) pushCard {
	return pushCard{
		BankName:    c.BankName,
		CustomTitle: c.CustomTitle,
		CardNumber:  c.CardNumber,
		IBAN:        c.IBAN,
		CVV:         c.CVV,
		ExpiryDate:  c.ExpiryDate,
		BankColor:   c.DisplayColor(),
	}
}

// fromWire maps one remote record to the local card shape. The mapping
// is total: absent fields decode to empty strings, every value is
// re-normalized, and the derived bank fields are recomputed locally
// rather than trusted from the wire. The wire color becomes a custom
// color only when it differs from the directory color, so a card whose
// color was never overridden stays un-pinned after a round trip.
func fromWire(r pullRecord) model.Card {
	c := card.Normalize(card.Raw{
		BankName:    r.BankName,
		CustomTitle: r.CardName,
		CardNumber:  r.CardNumber,
		IBAN:        r.ShabaNumber,
		CVV:         r.CVV,
		ExpiryDate:  r.ExpireDate,
	})
	c.ID = r.ID.String()
	if c.ID == "" {
		// A record the remote never identified still needs a unique id.
		c.ID = uuid.NewString()
	}
	bankdir.Enrich(&c)
	if r.BankColor != "" && r.BankColor != c.BankColor {
		c.CustomColor = r.BankColor
	}
	return c
}
