package jsonfile

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"flashcards/internal/domain"
)

// document is the on-disk shape: two index-paired arrays
type document struct {
	Words        []string `json:"words"`
	Translations []string `json:"translations"`
}

// Repo implements repository.FlashcardRepository on top of a JSON file
type Repo struct {
	path string
}

// NewRepo creates a JSON file repository
func NewRepo(path string) *Repo {
	return &Repo{path: path}
}

// Path returns the backing file path
func (r *Repo) Path() string {
	return r.path
}

// Load reads all entries from the file.
// A missing file yields an error matching fs.ErrNotExist.
func (r *Repo) Load() ([]domain.Entry, error) {
	data, err := os.ReadFile(r.path)
	if err != nil {
		return nil, err
	}

	var doc document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", r.path, err)
	}

	if len(doc.Words) != len(doc.Translations) {
		return pair(doc), &MismatchError{Words: len(doc.Words), Translations: len(doc.Translations)}
	}

	return pair(doc), nil
}

// Save writes all entries, replacing the file in one rename
func (r *Repo) Save(entries []domain.Entry) error {
	doc := document{
		Words:        make([]string, 0, len(entries)),
		Translations: make([]string, 0, len(entries)),
	}
	for _, e := range entries {
		doc.Words = append(doc.Words, e.Word)
		doc.Translations = append(doc.Translations, e.Translation)
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode flashcards: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(r.path), filepath.Base(r.path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write %s: %w", tmp.Name(), err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to close %s: %w", tmp.Name(), err)
	}

	if err := os.Rename(tmp.Name(), r.path); err != nil {
		return fmt.Errorf("failed to replace %s: %w", r.path, err)
	}
	return nil
}

// MismatchError reports arrays of different length in the file.
// Load still returns the entries paired up to the shorter array.
type MismatchError struct {
	Words        int
	Translations int
}

func (e *MismatchError) Error() string {
	return fmt.Sprintf("words (%d) and translations (%d) differ in length", e.Words, e.Translations)
}

func pair(doc document) []domain.Entry {
	n := min(len(doc.Words), len(doc.Translations))
	entries := make([]domain.Entry, 0, n)
	for i := 0; i < n; i++ {
		entries = append(entries, domain.Entry{Word: doc.Words[i], Translation: doc.Translations[i]})
	}
	return entries
}
