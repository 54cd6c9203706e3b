package bot

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	telebot "gopkg.in/telebot.v3"
)

type recordedSend struct {
	to   telebot.Recipient
	what interface{}
	opts []interface{}
}

type fakeAPI struct {
	sends []recordedSend
	err   error
	block chan struct{} // when non-nil, Send waits for it before returning
}

func (f *fakeAPI) Send(to telebot.Recipient, what interface{}, opts ...interface{}) (*telebot.Message, error) {
	if f.block != nil {
		<-f.block
	}
	f.sends = append(f.sends, recordedSend{to: to, what: what, opts: opts})
	if f.err != nil {
		return nil, f.err
	}
	return &telebot.Message{}, nil
}

func TestSenderUsesMarkdownParseMode(t *testing.T) {
	api := &fakeAPI{}
	s := NewSender(api)

	require.NoError(t, s.SendMessage(context.Background(), -42, "🌙 *أذكار المساء*"))
	require.Len(t, api.sends, 1)

	require.Len(t, api.sends[0].opts, 1)
	sendOpts, ok := api.sends[0].opts[0].(*telebot.SendOptions)
	require.True(t, ok)
	assert.Equal(t, telebot.ModeMarkdown, sendOpts.ParseMode)

	chat, ok := api.sends[0].to.(*telebot.Chat)
	require.True(t, ok)
	assert.Equal(t, int64(-42), chat.ID)
}

func TestSenderHonorsContextDeadline(t *testing.T) {
	api := &fakeAPI{block: make(chan struct{})}
	defer close(api.block)
	s := NewSender(api)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	err := s.SendMessage(ctx, -42, "text")
	require.Error(t, err)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestSenderWrapsAPIFailure(t *testing.T) {
	api := &fakeAPI{err: errors.New("bad request")}
	s := NewSender(api)

	err := s.SendDocument(context.Background(), -42, "https://example.com/kahf.pdf", "سورة الكهف")
	require.Error(t, err)
	assert.ErrorIs(t, err, api.err)

	doc, ok := api.sends[0].what.(*telebot.Document)
	require.True(t, ok)
	assert.Equal(t, "سورة الكهف", doc.Caption)
}
