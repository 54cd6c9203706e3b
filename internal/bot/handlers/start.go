package handlers

import (
	"log/slog"

	telebot "gopkg.in/telebot.v3"

	"github.com/azkar-labs/azkar-bot/internal/bot/keyboard"
	"github.com/azkar-labs/azkar-bot/internal/menu"
)

// NewStartHandler greets private chats with the add-to-group keyboard and
// opens the control panel when /start is issued inside a group by an admin.
func NewStartHandler(protocol *menu.Protocol, gate AdminGate, log *slog.Logger) Handler {
	if log == nil {
		log = slog.Default()
	}

	return func(c telebot.Context) error {
		if c == nil || c.Chat() == nil {
			log.Warn("start handler invoked without chat context")
			return nil
		}

		if c.Chat().Type == telebot.ChatPrivate {
			username := ""
			if c.Bot() != nil && c.Bot().Me != nil {
				username = c.Bot().Me.Username
			}
			return c.Send(welcomeText, keyboard.StartMenu(username))
		}

		return openControlPanel(c, protocol, gate, log)
	}
}

// NewHelpHandler answers the help button pressed on the /start keyboard.
func NewHelpHandler() CallbackHandler {
	return func(c telebot.Context) error {
		if c == nil {
			return nil
		}

		if err := c.Send(helpText); err != nil {
			return err
		}

		return c.Respond()
	}
}
