package handlers

import (
	"log/slog"

	telebot "gopkg.in/telebot.v3"

	"github.com/azkar-labs/azkar-bot/internal/menu"
)

// NewSettingsHandler opens the group control panel for /settings. The
// command only makes sense inside a group; private chats get redirected.
func NewSettingsHandler(protocol *menu.Protocol, gate AdminGate, log *slog.Logger) Handler {
	if log == nil {
		log = slog.Default()
	}

	return func(c telebot.Context) error {
		if c == nil || c.Chat() == nil {
			log.Warn("settings handler invoked without chat context")
			return nil
		}

		if c.Chat().Type == telebot.ChatPrivate {
			return c.Send(groupOnlyText)
		}

		return openControlPanel(c, protocol, gate, log)
	}
}
