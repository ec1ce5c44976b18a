// Package backup reads export documents back into the local card
// shape, the restore half of the bank-cards-backup.json contract.
package backup

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/cardvault-dev/cardvault/internal/bankdir"
	"github.com/cardvault-dev/cardvault/internal/card"
	"github.com/cardvault-dev/cardvault/internal/model"
)

// Read parses an export document. Each record is re-normalized and its
// derived bank fields recomputed, so a hand-edited or stale backup
// still canonicalizes on the way in. Unknown JSON fields are ignored;
// missing optional fields stay empty.
func Read(path string) ([]model.Card, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading backup: %w", err)
	}

	var raw []model.Card
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parsing backup %s: %w", path, err)
	}

	cards := make([]model.Card, len(raw))
	for i, r := range raw {
		c := card.Normalize(card.Raw{
			BankName:    r.BankName,
			CustomTitle: r.CustomTitle,
			CardNumber:  r.CardNumber,
			IBAN:        r.IBAN,
			CVV:         r.CVV,
			ExpiryDate:  r.ExpiryDate,
			CustomColor: r.CustomColor,
		})
		c.ID = r.ID
		bankdir.Enrich(&c)
		cards[i] = c
	}
	return cards, nil
}
