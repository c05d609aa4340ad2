package middleware

import (
	"github.com/sirupsen/logrus"
	"gopkg.in/telebot.v3"

	"planning-bot/internal/app/service"
)

// Serialize runs every handler on the async service so that updates are
// applied one at a time, in arrival order.
func Serialize(async *service.AsyncService) telebot.MiddlewareFunc {
	return func(next telebot.HandlerFunc) telebot.HandlerFunc {
		return func(c telebot.Context) error {
			return async.Do(func() error { return next(c) })
		}
	}
}

// LogErrors logs handler errors with the chat they came from.
func LogErrors(next telebot.HandlerFunc) telebot.HandlerFunc {
	return func(c telebot.Context) error {
		err := next(c)
		if err != nil {
			fields := logrus.Fields{}
			if chat := c.Chat(); chat != nil {
				fields["chat"] = chat.ID
			}
			logrus.WithFields(fields).WithError(err).Error("handler failed")
		}
		return err
	}
}
