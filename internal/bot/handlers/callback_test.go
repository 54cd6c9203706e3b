package handlers

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	telebot "gopkg.in/telebot.v3"

	"github.com/azkar-labs/azkar-bot/internal/domain"
	apperrors "github.com/azkar-labs/azkar-bot/internal/errors"
	"github.com/azkar-labs/azkar-bot/internal/menu"
	"github.com/azkar-labs/azkar-bot/internal/settings"
	"github.com/azkar-labs/azkar-bot/internal/state"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type stubGate struct {
	admin bool
	err   error
}

func (g stubGate) IsAdmin(userID, groupID int64) (bool, error) {
	return g.admin, g.err
}

// pressContext overrides the methods the callback handler touches.
type pressContext struct {
	telebot.Context
	data      string
	user      *telebot.User
	responses []*telebot.CallbackResponse
	edits     int
}

func (c *pressContext) Callback() *telebot.Callback { return &telebot.Callback{Data: c.data} }
func (c *pressContext) Sender() *telebot.User       { return c.user }

func (c *pressContext) Respond(resp ...*telebot.CallbackResponse) error {
	if len(resp) == 0 {
		resp = []*telebot.CallbackResponse{{}}
	}
	c.responses = append(c.responses, resp[0])
	return nil
}

func (c *pressContext) Edit(_ interface{}, _ ...interface{}) error {
	c.edits++
	return nil
}

func newCallbackFixture(gate AdminGate) (CallbackHandler, *settings.MemoryStore) {
	store := settings.NewMemoryStore()
	protocol := menu.NewProtocol(store, testLogger())
	fsm := state.NewStateMachine(state.NewMemoryStorage(), testLogger(), nil)
	return NewMenuCallbackHandler(protocol, fsm, gate, testLogger()), store
}

func TestMenuCallbackRefusesNonAdmin(t *testing.T) {
	handler, store := newCallbackFixture(stubGate{admin: false})

	press := &pressContext{data: "toggle_morning:-42", user: &telebot.User{ID: 7}}
	require.NoError(t, handler(press))

	require.Len(t, press.responses, 1)
	assert.Equal(t, apperrors.NewPermissionError().UserMessage, press.responses[0].Text)
	assert.True(t, press.responses[0].ShowAlert)
	assert.Zero(t, press.edits, "the menu must not re-render for a refused press")

	record, err := store.Get(context.Background(), -42)
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultGroupSettings().MorningAzkar.Enabled, record.MorningAzkar.Enabled,
		"a refused press must not mutate group settings")
}

func TestMenuCallbackAppliesAdminToggle(t *testing.T) {
	handler, store := newCallbackFixture(stubGate{admin: true})

	wasEnabled := domain.DefaultGroupSettings().MorningAzkar.Enabled
	press := &pressContext{data: "toggle_morning:-42", user: &telebot.User{ID: 7}}
	require.NoError(t, handler(press))

	record, err := store.Get(context.Background(), -42)
	require.NoError(t, err)
	assert.Equal(t, !wasEnabled, record.MorningAzkar.Enabled)

	assert.Equal(t, 1, press.edits)
	require.Len(t, press.responses, 1)
	assert.NotEmpty(t, press.responses[0].Text)
}

func TestMenuCallbackAcksWhenGateFails(t *testing.T) {
	handler, _ := newCallbackFixture(stubGate{err: errors.New("member lookup failed")})

	press := &pressContext{data: "toggle_morning:-42", user: &telebot.User{ID: 7}}
	err := handler(press)

	require.Error(t, err)
	assert.Len(t, press.responses, 1, "the press must be acknowledged even when the gate fails")
}
