package router

import (
	"strings"

	"go.uber.org/zap"
	"gopkg.in/telebot.v3"
)

type HandlerFunc func(c telebot.Context, payload string) error

// CallbackRouter dispatches inline button callbacks by their unique key.
type CallbackRouter struct {
	handlers map[string]HandlerFunc
	log      *zap.Logger
}

func New(log *zap.Logger) *CallbackRouter {
	return &CallbackRouter{handlers: make(map[string]HandlerFunc), log: log}
}

func (r *CallbackRouter) Register(key string, h HandlerFunc) {
	r.handlers[key] = h
}

func (r *CallbackRouter) Attach(bot *telebot.Bot) {
	bot.Handle(telebot.OnCallback, func(c telebot.Context) error {
		_, err := r.Dispatch(c)
		return err
	})
}

// ParseCallback splits raw callback data "\fkey|payload" into its parts.
func ParseCallback(raw string) (key, payload string) {
	raw = strings.TrimPrefix(raw, "\f")
	key, payload, _ = strings.Cut(raw, "|")
	return key, payload
}

// Dispatch runs the handler registered for the callback and reports whether one existed.
func (r *CallbackRouter) Dispatch(c telebot.Context) (bool, error) {
	key, payload := ParseCallback(c.Data())
	r.log.Debug("callback", zap.String("key", key), zap.String("payload", payload))
	_ = c.Respond()

	h, ok := r.handlers[key]
	if !ok {
		return false, nil
	}
	return true, h(c, payload)
}
