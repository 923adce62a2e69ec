package handler

import (
	"strings"
	"sync"
	"unicode/utf8"

	"flashcards/internal/domain"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// Telegram rejects longer messages
const maxMessageLength = 4096

// chatView is the controller's view of one chat.
// A prompt stays pending until the next text message or Cancel resumes it.
type chatView struct {
	logger *zap.Logger

	mu      sync.Mutex
	ctx     tele.Context
	pending func(input string, ok bool)
}

func newChatView(logger *zap.Logger) *chatView {
	return &chatView{logger: logger}
}

// bind routes messages through the update being handled
func (v *chatView) bind(c tele.Context) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.ctx = c
}

// resume hands input to the pending prompt, reporting whether there was one
func (v *chatView) resume(input string, ok bool) bool {
	v.mu.Lock()
	done := v.pending
	v.pending = nil
	v.mu.Unlock()

	if done == nil {
		return false
	}
	done(input, ok)
	return true
}

// reset forgets the pending prompt
func (v *chatView) reset() {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.pending = nil
}

func (v *chatView) waiting() bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.pending != nil
}

func (v *chatView) Prompt(message string, done func(input string, ok bool)) {
	v.mu.Lock()
	v.pending = done
	v.mu.Unlock()

	v.send(message, cancelMarkup())
}

func (v *chatView) Inform(title, message string, done func()) {
	v.send("ℹ️ " + message)
	done()
}

func (v *chatView) Warn(title, message string, done func()) {
	v.send("⚠️ " + message)
	done()
}

func (v *chatView) ShowEntries(text string) {
	for _, chunk := range splitMessage(text, maxMessageLength) {
		v.send(chunk)
	}
}

// ShowLastAdded is covered by the "added" message in chats
func (v *chatView) ShowLastAdded(entry domain.Entry) {}

func (v *chatView) send(text string, opts ...interface{}) {
	v.mu.Lock()
	c := v.ctx
	v.mu.Unlock()

	if c == nil {
		v.logger.Warn("No update bound to chat, dropping message")
		return
	}
	if err := c.Send(text, opts...); err != nil {
		v.logger.Error("Failed to send message", zap.Error(err))
	}
}

// splitMessage cuts text at blank lines so no part exceeds limit bytes.
// A single block longer than limit is cut at the limit.
func splitMessage(text string, limit int) []string {
	if len(text) <= limit {
		return []string{text}
	}

	var parts []string
	var current strings.Builder

	for _, block := range strings.SplitAfter(text, "\n\n") {
		if current.Len()+len(block) > limit && current.Len() > 0 {
			parts = append(parts, current.String())
			current.Reset()
		}
		for len(block) > limit {
			cut := limit
			for cut > 0 && !utf8.RuneStart(block[cut]) {
				cut--
			}
			parts = append(parts, block[:cut])
			block = block[cut:]
		}
		current.WriteString(block)
	}
	if current.Len() > 0 {
		parts = append(parts, current.String())
	}

	return parts
}
