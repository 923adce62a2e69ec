package testutil

import (
	"flashcards/internal/domain"

	"go.uber.org/zap"
)

// NewTestLogger creates a no-op logger for tests
func NewTestLogger() *zap.Logger {
	return zap.NewNop()
}

// NewTestEntry creates a test entry
func NewTestEntry(word, translation string) domain.Entry {
	return domain.Entry{
		Word:        word,
		Translation: translation,
	}
}

// MessageKind tells informational and warning messages apart
type MessageKind string

const (
	KindInfo MessageKind = "info"
	KindWarn MessageKind = "warn"
)

// Message is one message shown through a ScriptedView
type Message struct {
	Kind  MessageKind
	Title string
	Text  string
}

// Reply is a scripted prompt response; OK false means cancel
type Reply struct {
	Input string
	OK    bool
}

// Answer is a shorthand for a confirmed reply
func Answer(input string) Reply {
	return Reply{Input: input, OK: true}
}

// Cancel is a shorthand for a cancelled prompt
func Cancel() Reply {
	return Reply{}
}

// ScriptedView answers prompts synchronously from a script and records output.
// Replies keyed by prompt text win over the ordered queue; an exhausted
// queue cancels.
type ScriptedView struct {
	ByPrompt map[string]Reply
	Replies  []Reply

	Prompts   []string
	Messages  []Message
	Entries   string
	LastAdded *domain.Entry
}

func (v *ScriptedView) Prompt(message string, done func(input string, ok bool)) {
	v.Prompts = append(v.Prompts, message)

	if r, ok := v.ByPrompt[message]; ok {
		done(r.Input, r.OK)
		return
	}
	if len(v.Replies) == 0 {
		done("", false)
		return
	}

	r := v.Replies[0]
	v.Replies = v.Replies[1:]
	done(r.Input, r.OK)
}

func (v *ScriptedView) Inform(title, message string, done func()) {
	v.Messages = append(v.Messages, Message{Kind: KindInfo, Title: title, Text: message})
	done()
}

func (v *ScriptedView) Warn(title, message string, done func()) {
	v.Messages = append(v.Messages, Message{Kind: KindWarn, Title: title, Text: message})
	done()
}

func (v *ScriptedView) ShowEntries(text string) {
	v.Entries = text
}

func (v *ScriptedView) ShowLastAdded(entry domain.Entry) {
	v.LastAdded = &entry
}

// LastMessage returns the most recent message or a zero value
func (v *ScriptedView) LastMessage() Message {
	if len(v.Messages) == 0 {
		return Message{}
	}
	return v.Messages[len(v.Messages)-1]
}
