package service

import (
	"strconv"
	"strings"

	"flashcards/internal/domain"
)

// QuizSession walks through one quiz: count, sampling, questions, score
type QuizSession struct {
	cards *FlashcardService

	state   domain.QuizState
	entries []domain.Entry
	next    int
	correct int
}

// NewQuizSession creates a session waiting for the quiz length
func NewQuizSession(cards *FlashcardService) *QuizSession {
	return &QuizSession{
		cards: cards,
		state: domain.QuizAwaitingCount,
	}
}

// State returns the current step
func (q *QuizSession) State() domain.QuizState {
	return q.state
}

// Begin parses the requested length and samples the questions.
// Input that is not a number fails with ErrInvalidInput; a number out of
// range fails with *domain.RangeError. Both move the session to QuizInvalid.
func (q *QuizSession) Begin(input string) error {
	if q.state != domain.QuizAwaitingCount {
		return domain.ErrInvalidInput
	}

	n, err := strconv.Atoi(strings.TrimSpace(input))
	if err != nil {
		q.state = domain.QuizInvalid
		return domain.ErrInvalidInput
	}

	entries, err := q.cards.Sample(n)
	if err != nil {
		q.state = domain.QuizInvalid
		return err
	}

	q.entries = entries
	q.state = domain.QuizAsking
	return nil
}

// Current returns the entry being asked
func (q *QuizSession) Current() (domain.Entry, bool) {
	if q.state != domain.QuizAsking {
		return domain.Entry{}, false
	}
	return q.entries[q.next], true
}

// Answer scores an answer for the current entry and moves on.
// It reports whether the answer was correct along with the expected translation.
func (q *QuizSession) Answer(answer string) (bool, string) {
	entry, ok := q.Current()
	if !ok {
		return false, ""
	}

	correct := strings.EqualFold(strings.TrimSpace(answer), entry.Translation)
	if correct {
		q.correct++
	}
	q.advance()

	return correct, entry.Translation
}

// Skip moves past the current entry without scoring it
func (q *QuizSession) Skip() {
	if q.state == domain.QuizAsking {
		q.advance()
	}
}

// Score returns correct answers out of the quiz length
func (q *QuizSession) Score() domain.Score {
	return domain.Score{Correct: q.correct, Total: len(q.entries)}
}

func (q *QuizSession) advance() {
	q.next++
	if q.next >= len(q.entries) {
		q.state = domain.QuizCompleted
	}
}
