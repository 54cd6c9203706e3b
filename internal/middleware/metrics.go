// Package middleware carries router middlewares shared across handler
// registrations.
package middleware

import (
	"strings"
	"time"

	telebot "gopkg.in/telebot.v3"

	"github.com/azkar-labs/azkar-bot/internal/bot/handlers"
	"github.com/azkar-labs/azkar-bot/internal/menu"
	"github.com/azkar-labs/azkar-bot/pkg/metrics"
)

// Metrics measures execution time and status for bot handlers, reporting them to Prometheus.
func Metrics(next handlers.Handler) handlers.Handler {
	if next == nil {
		return nil
	}

	return func(c telebot.Context) error {
		start := time.Now()
		err := next(c)

		status := "ok"
		if err != nil {
			status = "error"
		}

		if c != nil {
			if cb := c.Callback(); cb != nil {
				verb := "unknown"
				if action, parseErr := menu.ParseAction(cb.Data); parseErr == nil {
					verb = action.Verb
				}
				metrics.RecordCallbackAction(verb, status)
				return err
			}
		}

		metrics.RecordCommand(commandName(c), status, time.Since(start))

		return err
	}
}

// commandName reduces update text to a stable metric label: the bare
// command for slash commands, "text" for everything else.
func commandName(c telebot.Context) string {
	if c == nil {
		return "unknown"
	}

	text := c.Text()
	if strings.HasPrefix(text, "/") {
		if idx := strings.IndexAny(text, " @"); idx > 0 {
			return text[:idx]
		}
		return text
	}

	if text == "" {
		return "unknown"
	}

	return "text"
}
