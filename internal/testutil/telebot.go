package testutil

import (
	tele "gopkg.in/telebot.v3"
)

// FakeContext is a telebot context that records what handlers send.
// Methods it does not override panic.
type FakeContext struct {
	tele.Context

	User          *tele.User
	Msg           *tele.Message
	CallbackQuery *tele.Callback
	Sent          []interface{}
	Edited        []interface{}
	Answered      []*tele.CallbackResponse
	EditErr       error
}

// NewFakeContext creates a context for a text message from userID
func NewFakeContext(userID int64, text string) *FakeContext {
	user := &tele.User{ID: userID, LanguageCode: "en"}
	return &FakeContext{
		User: user,
		Msg:  &tele.Message{Sender: user, Text: text},
	}
}

// NewFakeCallback creates a context for an inline button press
func NewFakeCallback(userID int64, unique, data string) *FakeContext {
	user := &tele.User{ID: userID, LanguageCode: "en"}
	return &FakeContext{
		User:          user,
		Msg:           &tele.Message{Sender: user},
		CallbackQuery: &tele.Callback{ID: "cb", Sender: user, Unique: unique, Data: data},
	}
}

// WithPayload sets the command payload of the message
func (c *FakeContext) WithPayload(payload string) *FakeContext {
	c.Msg.Payload = payload
	return c
}

func (c *FakeContext) Sender() *tele.User       { return c.User }
func (c *FakeContext) Message() *tele.Message   { return c.Msg }
func (c *FakeContext) Callback() *tele.Callback { return c.CallbackQuery }
func (c *FakeContext) Text() string             { return c.Msg.Text }

func (c *FakeContext) Send(what interface{}, opts ...interface{}) error {
	c.Sent = append(c.Sent, what)
	return nil
}

func (c *FakeContext) Edit(what interface{}, opts ...interface{}) error {
	if c.EditErr != nil {
		return c.EditErr
	}
	c.Edited = append(c.Edited, what)
	return nil
}

func (c *FakeContext) Respond(resp ...*tele.CallbackResponse) error {
	c.Answered = append(c.Answered, resp...)
	if len(resp) == 0 {
		c.Answered = append(c.Answered, nil)
	}
	return nil
}

// LastText returns the last sent or edited text message
func (c *FakeContext) LastText() string {
	all := append(append([]interface{}{}, c.Sent...), c.Edited...)
	for i := len(all) - 1; i >= 0; i-- {
		if text, ok := all[i].(string); ok {
			return text
		}
	}
	return ""
}

// SentDocument returns the first document that was sent
func (c *FakeContext) SentDocument() *tele.Document {
	for _, what := range c.Sent {
		if doc, ok := what.(*tele.Document); ok {
			return doc
		}
	}
	return nil
}
