package repository

import (
	"flashcards/internal/domain"
)

// FlashcardRepository persists the whole ordered flashcard collection
type FlashcardRepository interface {
	Load() ([]domain.Entry, error)
	Save(entries []domain.Entry) error
}
