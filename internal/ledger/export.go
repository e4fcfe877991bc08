package ledger

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

// ErrImportParse is returned when an import document cannot be parsed.
// Nothing is applied in that case.
var ErrImportParse = errors.New("import document could not be parsed")

// ExportDocument is the portable snapshot of all four collections.
type ExportDocument struct {
	Transactions []Transaction `json:"transactions"`
	Categories   Categories    `json:"categories"`
	Goals        []Goal        `json:"goals"`
	Settings     Settings      `json:"settings"`
	ExportDate   time.Time     `json:"exportDate"`
}

// importDocument mirrors ExportDocument with optional fields: only the
// fields present in the parsed input are applied.
type importDocument struct {
	Transactions *[]Transaction `json:"transactions"`
	Categories   *Categories    `json:"categories"`
	Goals        *[]Goal        `json:"goals"`
	Settings     *Settings      `json:"settings"`
}

// ExportData snapshots all four collections into one portable document.
// Reading the categories seeds the defaults if nothing is persisted yet, so
// an export always contains a usable category set.
func (s *Store) ExportData() (ExportDocument, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	transactions, err := s.transactions()
	if err != nil {
		return ExportDocument{}, err
	}

	categories, err := s.categories()
	if err != nil {
		return ExportDocument{}, err
	}

	goals, err := s.goals()
	if err != nil {
		return ExportDocument{}, err
	}

	settings, err := s.settings()
	if err != nil {
		return ExportDocument{}, err
	}

	return ExportDocument{
		Transactions: transactions,
		Categories:   categories,
		Goals:        goals,
		Settings:     settings,
		ExportDate:   s.now(),
	}, nil
}

// ImportData parses the document and overwrites each collection that is
// present in it; absent fields leave the corresponding collection
// untouched. This merge-by-presence contract is relied upon for selective
// restores. A parse failure applies nothing.
func (s *Store) ImportData(data []byte) error {
	var document importDocument
	if err := json.Unmarshal(data, &document); err != nil {
		return fmt.Errorf("%w: %v", ErrImportParse, err)
	}

	s.mu.Lock()

	var changed []string
	apply := func(key string, value any) error {
		if err := persist(s.kv, key, value); err != nil {
			return err
		}
		changed = append(changed, key)
		return nil
	}

	if document.Transactions != nil {
		if err := apply(KeyTransactions, *document.Transactions); err != nil {
			s.mu.Unlock()
			return err
		}
	}
	if document.Categories != nil {
		if err := apply(KeyCategories, *document.Categories); err != nil {
			s.mu.Unlock()
			return err
		}
	}
	if document.Goals != nil {
		if err := apply(KeyGoals, *document.Goals); err != nil {
			s.mu.Unlock()
			return err
		}
	}
	if document.Settings != nil {
		if err := apply(KeySettings, *document.Settings); err != nil {
			s.mu.Unlock()
			return err
		}
	}

	s.mu.Unlock()
	for _, key := range changed {
		s.notify(key)
	}

	return nil
}

// ClearAllData unconditionally removes all four persisted collections.
func (s *Store) ClearAllData() error {
	s.mu.Lock()

	keys := []string{KeyTransactions, KeyCategories, KeyGoals, KeySettings}
	for _, key := range keys {
		if err := s.kv.Remove(key); err != nil {
			s.mu.Unlock()
			return err
		}
	}

	s.mu.Unlock()
	for _, key := range keys {
		s.notify(key)
	}

	return nil
}
