package middleware

import (
	"strings"

	"gopkg.in/telebot.v3"
)

// EditOrSend edits the message behind a callback, or sends a new one
// when there is nothing to edit. "message is not modified" is not an error.
func EditOrSend(c telebot.Context, text string, opts ...interface{}) error {
	if c.Callback() != nil {
		err := c.Edit(text, opts...)
		if err == nil || strings.Contains(err.Error(), "not modified") {
			return nil
		}
	}
	return c.Send(text, opts...)
}
