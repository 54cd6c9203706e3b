package handlers

import (
	"context"
	"log/slog"

	telebot "gopkg.in/telebot.v3"

	"github.com/azkar-labs/azkar-bot/internal/state"
)

// NewCancelHandler aborts any pending time-entry dialog.
func NewCancelHandler(fsm state.StateMachine, log *slog.Logger) Handler {
	if log == nil {
		log = slog.Default()
	}

	return func(c telebot.Context) error {
		if c == nil || c.Sender() == nil {
			log.Warn("cancel handler invoked without sender context")
			return nil
		}

		if fsm == nil {
			log.Error("state machine is not configured for cancel handler")
			return nil
		}

		ctx := context.Background()
		userID := c.Sender().ID

		if err := fsm.ClearState(ctx, userID); err != nil {
			log.Error("failed to clear dialog state", slog.Int64("user_id", userID), slog.Any("error", err))
			return err
		}

		return c.Send(cancelledText)
	}
}
