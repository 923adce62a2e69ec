package testutil

import (
	"flashcards/internal/domain"

	"github.com/stretchr/testify/mock"
)

// MockFlashcardRepository is a mock for FlashcardRepository
type MockFlashcardRepository struct {
	mock.Mock
}

func (m *MockFlashcardRepository) Load() ([]domain.Entry, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Entry), args.Error(1)
}

func (m *MockFlashcardRepository) Save(entries []domain.Entry) error {
	args := m.Called(entries)
	return args.Error(0)
}
