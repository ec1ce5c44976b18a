// Package bankdir is the built-in directory of Iranian banks, keyed by
// display name.
package bankdir

import "github.com/cardvault-dev/cardvault/internal/model"

// Bank describes one directory entry.
type Bank struct {
	Name   string // display name, as shown on the card
	NameEn string
	Color  string // brand color, hex
}

// Find looks up a bank by its exact display name. An empty name is a
// miss without scanning.
func Find(name string) (Bank, bool) {
	if name == "" {
		return Bank{}, false
	}
	b, ok := directory[name]
	return b, ok
}

// Enrich recomputes the derived bank fields on a card from its bank
// name. A directory miss clears both fields so stale values never
// survive a rename; the bank name itself is stored verbatim either way.
func Enrich(c *model.Card) {
	b, ok := Find(c.BankName)
	if !ok {
		c.BankColor = ""
		c.BankNameEn = ""
		return
	}
	c.BankColor = b.Color
	c.BankNameEn = b.NameEn
}

// All returns every directory entry, for listing in command help.
func All() []Bank {
	banks := make([]Bank, 0, len(directory))
	for _, name := range order {
		banks = append(banks, directory[name])
	}
	return banks
}
