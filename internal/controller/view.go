package controller

import "flashcards/internal/domain"

// View is a surface the controller talks to.
// Prompt and message calls continue the flow through their callbacks, so a
// view may show them modally and call back later. ok is false on cancel.
type View interface {
	Prompt(message string, done func(input string, ok bool))
	Inform(title, message string, done func())
	Warn(title, message string, done func())
	ShowEntries(text string)
	ShowLastAdded(entry domain.Entry)
}
