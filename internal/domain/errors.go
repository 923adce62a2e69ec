package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidInput is returned for empty or malformed user input
	ErrInvalidInput = errors.New("invalid input")
	// ErrDuplicateWord is returned when adding a word that is already stored
	ErrDuplicateWord = errors.New("word already exists")
	// ErrWordNotFound is returned when a search has no match
	ErrWordNotFound = errors.New("word not found")
)

// RangeError reports a requested count outside 1..Max
type RangeError struct {
	Requested int
	Max       int
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("count %d out of range 1..%d", e.Requested, e.Max)
}

// Unwrap makes RangeError match ErrInvalidInput
func (e *RangeError) Unwrap() error {
	return ErrInvalidInput
}
