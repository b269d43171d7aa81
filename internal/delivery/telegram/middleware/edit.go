package middleware

import (
	"errors"

	"gopkg.in/telebot.v3"
)

// EditOrSend replaces the message a callback came from, or sends a new one when
// there is nothing to edit. Tapping the same button twice leaves the message as is.
func EditOrSend(c telebot.Context, text string, markup *telebot.ReplyMarkup) error {
	opts := []interface{}{}
	if markup != nil {
		opts = append(opts, markup)
	}
	if c.Callback() == nil {
		return c.Send(text, opts...)
	}

	err := c.Edit(text, opts...)
	switch {
	case err == nil, errors.Is(err, telebot.ErrSameMessageContent):
		return nil
	default:
		return c.Send(text, opts...)
	}
}
