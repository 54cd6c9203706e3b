package bot

import (
	"context"

	telebot "gopkg.in/telebot.v3"

	apperrors "github.com/azkar-labs/azkar-bot/internal/errors"
)

// sendAPI is the slice of telebot the Sender needs; *telebot.Bot
// satisfies it.
type sendAPI interface {
	Send(to telebot.Recipient, what interface{}, opts ...interface{}) (*telebot.Message, error)
}

// Sender delivers scheduler traffic to groups over the bot API. Reminder
// texts carry Markdown emphasis, so everything goes out with the Markdown
// parse mode.
type Sender struct {
	api sendAPI
}

// NewSender builds a Sender over a connected bot API.
func NewSender(api sendAPI) *Sender {
	return &Sender{api: api}
}

// SendMessage posts text to the group.
func (s *Sender) SendMessage(ctx context.Context, groupID int64, text string) error {
	return s.send(ctx, "send message", groupID, text)
}

// SendDocument posts a document by URL with a caption.
func (s *Sender) SendDocument(ctx context.Context, groupID int64, url, caption string) error {
	return s.send(ctx, "send document", groupID, &telebot.Document{
		File:    telebot.FromURL(url),
		Caption: caption,
	})
}

// SendAudio posts an audio file by URL with a caption.
func (s *Sender) SendAudio(ctx context.Context, groupID int64, url, caption string) error {
	return s.send(ctx, "send audio", groupID, &telebot.Audio{
		File:    telebot.FromURL(url),
		Caption: caption,
	})
}

// send runs the API call in its own goroutine so a stalled call cannot
// outlive the sweep deadline the scheduler put on ctx. The goroutine
// drains through the buffered channel once the call finally returns.
func (s *Sender) send(ctx context.Context, op string, groupID int64, what interface{}) error {
	done := make(chan error, 1)
	go func() {
		_, err := s.api.Send(&telebot.Chat{ID: groupID}, what, &telebot.SendOptions{
			ParseMode: telebot.ModeMarkdown,
		})
		done <- err
	}()

	select {
	case <-ctx.Done():
		return apperrors.NewTransportError(op, ctx.Err())
	case err := <-done:
		if err != nil {
			return apperrors.NewTransportError(op, err)
		}
		return nil
	}
}
