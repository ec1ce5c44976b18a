package store

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/cardvault-dev/cardvault/internal/model"
)

// ExportFileName is the conventional name for an export document.
const ExportFileName = "bank-cards-backup.json"

// readCards decodes a JSON card array. The persisted store and the
// export document share this shape.
func readCards(r io.Reader) ([]model.Card, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	var cards []model.Card
	if err := json.Unmarshal(data, &cards); err != nil {
		return nil, fmt.Errorf("parsing card JSON: %w", err)
	}
	return cards, nil
}

// writeCards encodes cards as a two-space-indented JSON array followed
// by a trailing newline.
func writeCards(w io.Writer, cards []model.Card) error {
	if cards == nil {
		cards = []model.Card{}
	}
	data, err := json.MarshalIndent(cards, "", "  ")
	if err != nil {
		return err
	}
	data = append(data, '\n')
	_, err = w.Write(data)
	return err
}

// Export writes the full collection as the backup document. The field
// names and indentation are a stable external contract; merging an
// export back into an empty store reproduces the collection exactly.
func (s *Store) Export(w io.Writer) error {
	return writeCards(w, s.cards)
}

// ExportFile writes the backup document to path.
func (s *Store) ExportFile(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating export file: %w", err)
	}
	defer f.Close()

	if err := s.Export(f); err != nil {
		return fmt.Errorf("writing export file: %w", err)
	}
	return f.Close()
}
