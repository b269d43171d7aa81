package telegram

import (
	"time"

	"gopkg.in/telebot.v3"
)

// NewBot creates a long-polling bot. It does not start polling.
func NewBot(token string) (*telebot.Bot, error) {
	return telebot.NewBot(telebot.Settings{
		Token:  token,
		Poller: &telebot.LongPoller{Timeout: 10 * time.Second},
	})
}
