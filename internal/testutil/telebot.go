package testutil

import (
	tele "gopkg.in/telebot.v3"
)

// FakeContext is a telebot context for a single update.
// Only the methods used by handlers are implemented.
type FakeContext struct {
	tele.Context

	User     *tele.User
	ChatInfo *tele.Chat
	Body     string
	Cb       *tele.Callback

	Sent      []string
	Markups   []*tele.ReplyMarkup
	Responses []*tele.CallbackResponse
}

// NewFakeContext creates a text update from userID in a private chat
func NewFakeContext(userID int64, text string) *FakeContext {
	return &FakeContext{
		User:     &tele.User{ID: userID},
		ChatInfo: &tele.Chat{ID: userID},
		Body:     text,
	}
}

// NewFakeCallback creates a button press from userID
func NewFakeCallback(userID int64, unique string) *FakeContext {
	c := NewFakeContext(userID, "")
	c.Cb = &tele.Callback{ID: "cb", Unique: unique}
	return c
}

func (c *FakeContext) Sender() *tele.User       { return c.User }
func (c *FakeContext) Chat() *tele.Chat         { return c.ChatInfo }
func (c *FakeContext) Text() string             { return c.Body }
func (c *FakeContext) Callback() *tele.Callback { return c.Cb }

func (c *FakeContext) Send(what interface{}, opts ...interface{}) error {
	text, _ := what.(string)
	c.Sent = append(c.Sent, text)

	var markup *tele.ReplyMarkup
	for _, opt := range opts {
		if m, ok := opt.(*tele.ReplyMarkup); ok {
			markup = m
		}
	}
	c.Markups = append(c.Markups, markup)
	return nil
}

func (c *FakeContext) Respond(resp ...*tele.CallbackResponse) error {
	if len(resp) > 0 {
		c.Responses = append(c.Responses, resp[0])
	} else {
		c.Responses = append(c.Responses, nil)
	}
	return nil
}

// LastSent returns the text of the latest sent message
func (c *FakeContext) LastSent() string {
	if len(c.Sent) == 0 {
		return ""
	}
	return c.Sent[len(c.Sent)-1]
}
