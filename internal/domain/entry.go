package domain

import "strings"

// Entry is a single word-translation pair
type Entry struct {
	Word        string
	Translation string
}

// NewEntry builds an entry from raw user input, trimming both sides
func NewEntry(word, translation string) (Entry, error) {
	e := Entry{
		Word:        strings.TrimSpace(word),
		Translation: strings.TrimSpace(translation),
	}
	if e.Word == "" || e.Translation == "" {
		return Entry{}, ErrInvalidInput
	}
	return e, nil
}

// Matches reports whether the entry word equals query ignoring case
func (e Entry) Matches(query string) bool {
	return strings.ToLower(e.Word) == strings.ToLower(strings.TrimSpace(query))
}
