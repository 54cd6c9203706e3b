package handlers

import (
	"context"
	"log/slog"

	telebot "gopkg.in/telebot.v3"

	"github.com/azkar-labs/azkar-bot/internal/bot/keyboard"
	apperrors "github.com/azkar-labs/azkar-bot/internal/errors"
	"github.com/azkar-labs/azkar-bot/internal/menu"
)

// openControlPanel verifies the sender administers the current group and
// delivers the root settings menu to their private chat. When the private
// send fails (the admin never started the bot), a fallback instruction is
// posted in the group instead.
func openControlPanel(c telebot.Context, protocol *menu.Protocol, gate AdminGate, log *slog.Logger) error {
	chat := c.Chat()
	sender := c.Sender()
	if chat == nil || sender == nil {
		return nil
	}

	ok, err := gate.IsAdmin(sender.ID, chat.ID)
	if err != nil {
		return err
	}
	if !ok {
		return apperrors.NewPermissionError()
	}

	page, err := protocol.OpenRoot(context.Background(), chat.ID)
	if err != nil {
		return err
	}

	if _, err := c.Bot().Send(sender, page.Title, keyboard.FromMenu(page)); err != nil {
		log.Warn("private panel delivery failed",
			slog.Int64("user_id", sender.ID),
			slog.Int64("group_id", chat.ID),
			slog.Any("error", err),
		)
		return c.Send(privateFallbackText)
	}

	return c.Send(panelSentText)
}
