package service

import (
	"errors"
	"io/fs"
	"strings"
	"sync"

	"flashcards/internal/domain"
	"flashcards/internal/repository"

	"github.com/samber/lo"
	"go.uber.org/zap"
)

// EmptyListMessage is shown in place of an empty flashcard list
const EmptyListMessage = "No flashcards available. Add flashcards first."

// FlashcardService is the flashcard store: an ordered in-memory
// collection mirrored to a repository after every change
type FlashcardService struct {
	repo   repository.FlashcardRepository
	logger *zap.Logger

	mu      sync.RWMutex
	entries []domain.Entry
}

// NewFlashcardService creates an empty flashcard store
func NewFlashcardService(repo repository.FlashcardRepository, logger *zap.Logger) *FlashcardService {
	return &FlashcardService{
		repo:   repo,
		logger: logger,
	}
}

// Load replaces the in-memory entries with the persisted ones.
// Any failure leaves the store empty.
func (s *FlashcardService) Load() {
	entries, err := s.repo.Load()

	s.mu.Lock()
	defer s.mu.Unlock()

	switch {
	case err == nil:
	case errors.Is(err, fs.ErrNotExist):
		s.logger.Info("No saved flashcards yet, starting empty")
		entries = nil
	case len(entries) > 0:
		// partially readable data is still usable
		s.logger.Warn("Loaded flashcards with problems", zap.Error(err))
	default:
		s.logger.Warn("Failed to load flashcards, starting empty", zap.Error(err))
		entries = nil
	}

	s.entries = entries
	s.logger.Info("Flashcards loaded", zap.Int("count", len(s.entries)))
}

// Add stores a new word-translation pair and persists the store
func (s *FlashcardService) Add(word, translation string) error {
	entry, err := domain.NewEntry(word, translation)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.contains(entry.Word) {
		return domain.ErrDuplicateWord
	}

	s.entries = append(s.entries, entry)
	s.logger.Info("Flashcard added",
		zap.String("word", entry.Word),
		zap.String("translation", entry.Translation),
	)

	s.persist()
	return nil
}

// Import adds every valid entry whose word is not stored yet and
// persists once. It returns how many entries were added.
func (s *FlashcardService) Import(entries []domain.Entry) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	added := 0
	for _, e := range entries {
		entry, err := domain.NewEntry(e.Word, e.Translation)
		if err != nil {
			s.logger.Warn("Skipping invalid flashcard", zap.String("word", e.Word))
			continue
		}
		if s.contains(entry.Word) {
			s.logger.Debug("Skipping duplicate flashcard", zap.String("word", entry.Word))
			continue
		}
		s.entries = append(s.entries, entry)
		added++
	}

	if added > 0 {
		s.persist()
	}
	return added
}

// Search returns the translation of the first word matching case-insensitively
func (s *FlashcardService) Search(word string) (string, error) {
	query := strings.ToLower(strings.TrimSpace(word))
	if query == "" {
		return "", domain.ErrInvalidInput
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	entry, found := lo.Find(s.entries, func(e domain.Entry) bool { return e.Matches(query) })
	if !found {
		return "", domain.ErrWordNotFound
	}
	return entry.Translation, nil
}

// List returns a copy of all entries in insertion order
func (s *FlashcardService) List() []domain.Entry {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return append([]domain.Entry(nil), s.entries...)
}

// Count returns the number of stored entries
func (s *FlashcardService) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.entries)
}

// Sample returns n distinct entries in random order
func (s *FlashcardService) Sample(n int) ([]domain.Entry, error) {
	shuffled := s.List()
	if n <= 0 || n > len(shuffled) {
		return nil, &domain.RangeError{Requested: n, Max: len(shuffled)}
	}

	return lo.Shuffle(shuffled)[:n], nil
}

// contains reports an exact, case-sensitive word match.
// Callers must hold s.mu.
func (s *FlashcardService) contains(word string) bool {
	return lo.ContainsBy(s.entries, func(e domain.Entry) bool { return e.Word == word })
}

// persist writes the current entries; failures are logged only.
// Callers must hold s.mu.
func (s *FlashcardService) persist() {
	if err := s.repo.Save(append([]domain.Entry(nil), s.entries...)); err != nil {
		s.logger.Error("Failed to persist flashcards",
			zap.Int("count", len(s.entries)),
			zap.Error(err),
		)
	}
}

// FormatEntries renders entries as "Word:"/"Translation:" blocks,
// or EmptyListMessage when there are none
func FormatEntries(entries []domain.Entry) string {
	if len(entries) == 0 {
		return EmptyListMessage
	}

	var b strings.Builder
	for _, e := range entries {
		b.WriteString("Word: " + e.Word + "\n")
		b.WriteString("Translation: " + e.Translation + "\n\n")
	}
	return b.String()
}
