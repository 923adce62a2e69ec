package domain

import "fmt"

// QuizState is the step a quiz session is in
type QuizState string

const (
	QuizAwaitingCount QuizState = "awaiting_count"
	QuizAsking        QuizState = "asking"
	QuizCompleted     QuizState = "completed"
	QuizInvalid       QuizState = "invalid"
)

// Score is the outcome of a quiz session
type Score struct {
	Correct int
	Total   int
}

// String returns score as "correct/total"
func (s Score) String() string {
	return fmt.Sprintf("%d/%d", s.Correct, s.Total)
}
