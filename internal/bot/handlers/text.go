package handlers

import (
	"context"
	"log/slog"

	telebot "gopkg.in/telebot.v3"

	"github.com/azkar-labs/azkar-bot/internal/ai"
	"github.com/azkar-labs/azkar-bot/internal/ratelimit"
	"github.com/azkar-labs/azkar-bot/internal/settings"
)

// NewGroupTextHandler answers religious questions in groups where the
// feature is enabled. A message qualifies when it addresses the bot by
// trigger word or replies to one of the bot's own messages.
func NewGroupTextHandler(store settings.Store, responder *ai.Responder, limiter ratelimit.Limiter, log *slog.Logger) Handler {
	if log == nil {
		log = slog.Default()
	}

	return func(c telebot.Context) error {
		if c == nil || c.Chat() == nil {
			return nil
		}

		chat := c.Chat()
		if chat.Type != telebot.ChatGroup && chat.Type != telebot.ChatSuperGroup {
			return nil
		}

		text := c.Text()
		if text == "" {
			return nil
		}

		addressed := responder.ShouldRespond(text)
		if !addressed {
			msg := c.Message()
			if msg != nil && msg.ReplyTo != nil && msg.ReplyTo.Sender != nil &&
				c.Bot() != nil && c.Bot().Me != nil {
				addressed = msg.ReplyTo.Sender.ID == c.Bot().Me.ID
			}
		}
		if !addressed {
			return nil
		}

		record, err := store.Get(context.Background(), chat.ID)
		if err != nil {
			return err
		}
		if !record.AIResponses.Enabled {
			return nil
		}

		allowed, err := ratelimit.AllowAnswer(context.Background(), limiter, chat.ID)
		if err != nil {
			log.Warn("answer throttle unavailable, answering anyway", slog.Any("error", err))
		}
		if !allowed {
			log.Debug("answer suppressed by throttle", slog.Int64("group_id", chat.ID))
			return nil
		}

		log.Debug("answering group question", slog.Int64("group_id", chat.ID))
		return c.Reply(responder.Respond(text))
	}
}
