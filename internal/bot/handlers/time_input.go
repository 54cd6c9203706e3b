package handlers

import (
	"context"
	"errors"
	"log/slog"

	telebot "gopkg.in/telebot.v3"

	"github.com/azkar-labs/azkar-bot/internal/bot/keyboard"
	"github.com/azkar-labs/azkar-bot/internal/domain"
	"github.com/azkar-labs/azkar-bot/internal/menu"
	"github.com/azkar-labs/azkar-bot/internal/state"
)

// NewTimeInputHandler completes an awaiting-time dialog: the next text
// message carries the new "HH:MM" trigger value. Invalid input re-prompts
// and keeps the dialog open.
func NewTimeInputHandler(protocol *menu.Protocol, fsm state.StateMachine, log *slog.Logger) Handler {
	if log == nil {
		log = slog.Default()
	}

	return func(c telebot.Context) error {
		if c == nil || c.Sender() == nil {
			return nil
		}

		ctx := context.Background()
		userID := c.Sender().ID

		userState, err := fsm.GetState(ctx, userID)
		if err != nil {
			if errors.Is(err, state.ErrStateNotFound) {
				return nil
			}
			return err
		}

		groupID, feature, ok := state.TimeEditTarget(userState)
		if !ok {
			log.Warn("awaiting-time state without usable target", slog.Int64("user_id", userID))
			return fsm.ClearState(ctx, userID)
		}

		result, err := protocol.SetTriggerTime(ctx, groupID, feature, c.Text())
		if err != nil {
			if errors.Is(err, domain.ErrBadClock) {
				return c.Send(invalidTimeText)
			}
			return err
		}

		if err := fsm.ClearState(ctx, userID); err != nil {
			log.Error("failed to clear dialog state", slog.Int64("user_id", userID), slog.Any("error", err))
		}

		if result.Menu != nil {
			return c.Send(result.Ack, keyboard.FromMenu(*result.Menu))
		}

		return c.Send(result.Ack)
	}
}
