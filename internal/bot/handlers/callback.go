package handlers

import (
	"context"
	"errors"
	"log/slog"

	telebot "gopkg.in/telebot.v3"

	"github.com/azkar-labs/azkar-bot/internal/bot/keyboard"
	apperrors "github.com/azkar-labs/azkar-bot/internal/errors"
	"github.com/azkar-labs/azkar-bot/internal/menu"
	"github.com/azkar-labs/azkar-bot/internal/state"
)

// NewMenuCallbackHandler bridges inline button presses into the menu
// protocol. Every press is acknowledged, even when nothing changes; the
// target group is admin-checked before the protocol runs.
func NewMenuCallbackHandler(protocol *menu.Protocol, fsm state.StateMachine, gate AdminGate, log *slog.Logger) CallbackHandler {
	if log == nil {
		log = slog.Default()
	}

	return func(c telebot.Context) error {
		if c == nil || c.Callback() == nil || c.Sender() == nil {
			return nil
		}

		ctx := context.Background()
		data := c.Callback().Data

		action, err := menu.ParseAction(data)
		if err != nil {
			log.Debug("unparseable callback data", slog.String("data", data))
			return c.Respond()
		}

		ok, err := gate.IsAdmin(c.Sender().ID, action.GroupID)
		if err != nil {
			_ = c.Respond()
			return err
		}
		if !ok {
			log.Warn("settings press by non-admin",
				slog.Int64("user_id", c.Sender().ID),
				slog.Int64("group_id", action.GroupID),
			)
			perm := apperrors.NewPermissionError()
			return c.Respond(&telebot.CallbackResponse{Text: perm.UserMessage, ShowAlert: true})
		}

		result, err := protocol.HandleAction(ctx, data)
		if err != nil {
			_ = c.Respond()
			return err
		}

		if result.TimeEditFeature != "" {
			dialogCtx := state.TimeEditContext(result.GroupID, result.TimeEditFeature)
			if err := fsm.SetState(ctx, c.Sender().ID, state.StateAwaitingTime, dialogCtx); err != nil {
				_ = c.Respond()
				return err
			}
			return c.Respond(&telebot.CallbackResponse{Text: result.Ack})
		}

		if result.Menu != nil {
			err := c.Edit(result.Menu.Title, keyboard.FromMenu(*result.Menu))
			if err != nil && !errors.Is(err, telebot.ErrSameMessageContent) {
				_ = c.Respond()
				return apperrors.NewTransportError("edit settings menu", err)
			}
		}

		return c.Respond(&telebot.CallbackResponse{Text: result.Ack, ShowAlert: result.AckAlert})
	}
}
