// Package store holds the device's card collection: an ordered,
// file-backed list that is the single source of truth for every other
// component.
package store

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/cardvault-dev/cardvault/internal/bankdir"
	"github.com/cardvault-dev/cardvault/internal/model"
)

// fileName is the persisted collection inside the vault directory.
const fileName = "cards.json"

// Store is the authoritative card collection for one vault. Insertion
// order is display order; no sort is imposed.
type Store struct {
	dir   string
	cards []model.Card
}

// Open loads the store from a vault directory. A missing cards.json is
// an empty store, not an error.
func Open(dir string) (*Store, error) {
	s := &Store{dir: dir}
	path := filepath.Join(dir, fileName)
	f, err := os.Open(path)
	if os.IsNotExist(err) {
		return s, nil
	}
	if err != nil {
		return nil, fmt.Errorf("opening card store: %w", err)
	}
	defer f.Close()

	cards, err := readCards(f)
	if err != nil {
		return nil, fmt.Errorf("reading card store %s: %w", path, err)
	}
	s.cards = cards
	return s, nil
}

// Save writes the collection to cards.json via a temp file and rename,
// so a crash mid-write never leaves a truncated store.
func (s *Store) Save() error {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("creating vault dir: %w", err)
	}

	tmp, err := os.CreateTemp(s.dir, fileName+".tmp-*")
	if err != nil {
		return fmt.Errorf("creating temp store: %w", err)
	}
	defer os.Remove(tmp.Name())

	if err := writeCards(tmp, s.cards); err != nil {
		tmp.Close()
		return fmt.Errorf("writing card store: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("closing temp store: %w", err)
	}
	if err := os.Rename(tmp.Name(), filepath.Join(s.dir, fileName)); err != nil {
		return fmt.Errorf("replacing card store: %w", err)
	}
	return nil
}

// Len returns the number of cards.
func (s *Store) Len() int {
	return len(s.cards)
}

// All returns a copy of the collection in insertion order.
func (s *Store) All() []model.Card {
	out := make([]model.Card, len(s.cards))
	copy(out, s.cards)
	return out
}

// Get returns a card by id.
func (s *Store) Get(id string) (model.Card, bool) {
	for _, c := range s.cards {
		if c.ID == id {
			return c, true
		}
	}
	return model.Card{}, false
}

// Add appends a card, assigning a fresh id when none is set and
// recomputing the derived bank fields. Returns the stored card.
func (s *Store) Add(c model.Card) model.Card {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	bankdir.Enrich(&c)
	s.cards = append(s.cards, c)
	return c
}

// Update replaces the card with the given id in place, recomputing the
// derived bank fields. An unknown id is a no-op: a sync pull can race a
// pending edit, so the store must not fail hard. Reports whether the id
// existed.
func (s *Store) Update(id string, c model.Card) bool {
	for i := range s.cards {
		if s.cards[i].ID == id {
			c.ID = id
			bankdir.Enrich(&c)
			s.cards[i] = c
			return true
		}
	}
	return false
}

// Remove deletes the card with the given id. An unknown id is a no-op.
// Reports whether the id existed.
func (s *Store) Remove(id string) bool {
	for i := range s.cards {
		if s.cards[i].ID == id {
			s.cards = append(s.cards[:i], s.cards[i+1:]...)
			return true
		}
	}
	return false
}

// Search returns the cards matching term: a case-insensitive substring
// match over the bank name, the custom title, and the card number with
// all whitespace stripped from both sides of the number comparison.
// Each call returns a fresh slice, so re-querying an unchanged store
// yields the same result.
func (s *Store) Search(term string) []model.Card {
	lower := strings.ToLower(term)
	numTerm := stripSpace(lower)

	var out []model.Card
	for _, c := range s.cards {
		switch {
		case strings.Contains(strings.ToLower(c.BankName), lower),
			c.CustomTitle != "" && strings.Contains(strings.ToLower(c.CustomTitle), lower),
			strings.Contains(stripSpace(c.CardNumber), numTerm):
			out = append(out, c)
		}
	}
	return out
}

// ReplaceAll swaps the entire collection, discarding every prior card.
// This is the replace import policy.
func (s *Store) ReplaceAll(cards []model.Card) {
	s.cards = make([]model.Card, len(cards))
	copy(s.cards, cards)
}

// Merge appends, in the given order, only cards whose card number is
// not already present (whitespace-stripped comparison). On conflict the
// existing local card is kept unchanged. Incoming cards that would
// collide on id get a fresh one; id uniqueness always holds. Returns
// the number of cards added.
func (s *Store) Merge(cards []model.Card) int {
	numbers := make(map[string]struct{}, len(s.cards))
	ids := make(map[string]struct{}, len(s.cards))
	for _, c := range s.cards {
		numbers[stripSpace(c.CardNumber)] = struct{}{}
		ids[c.ID] = struct{}{}
	}

	added := 0
	for _, c := range cards {
		key := stripSpace(c.CardNumber)
		if _, dup := numbers[key]; dup {
			continue
		}
		if _, taken := ids[c.ID]; taken || c.ID == "" {
			c.ID = uuid.NewString()
		}
		numbers[key] = struct{}{}
		ids[c.ID] = struct{}{}
		s.cards = append(s.cards, c)
		added++
	}
	return added
}

func stripSpace(s string) string {
	return strings.Map(func(r rune) rune {
		if r == ' ' || r == '\t' || r == '\n' || r == '\r' {
			return -1
		}
		return r
	}, s)
}
