// Package bot is the Telegram transport layer: it routes inbound updates
// to handlers and carries outbound reminder traffic for the scheduler.
package bot

import (
	"fmt"
	"log/slog"
	"net/http"
	"time"

	telebot "gopkg.in/telebot.v3"

	"github.com/azkar-labs/azkar-bot/internal/ai"
	"github.com/azkar-labs/azkar-bot/internal/bot/handlers"
	apperrors "github.com/azkar-labs/azkar-bot/internal/errors"
	"github.com/azkar-labs/azkar-bot/internal/menu"
	"github.com/azkar-labs/azkar-bot/internal/middleware"
	"github.com/azkar-labs/azkar-bot/internal/ratelimit"
	"github.com/azkar-labs/azkar-bot/internal/settings"
	"github.com/azkar-labs/azkar-bot/internal/state"
	"github.com/azkar-labs/azkar-bot/pkg/config"
)

// apiCallTimeout bounds a single Bot API round trip. getUpdates long
// polling rides the same HTTP client, so the ceiling is stacked on top of
// the poll timeout; without it a hung call would block its caller forever.
const apiCallTimeout = 30 * time.Second

// Bot wraps telebot.Bot with the application dependencies required for
// handling updates.
type Bot struct {
	telebot    *telebot.Bot
	log        *slog.Logger
	cfg        config.Config
	fsm        state.StateMachine
	store      settings.Store
	protocol   *menu.Protocol
	responder  *ai.Responder
	limiter    ratelimit.Limiter
	router     *Router
	errHandler *apperrors.Handler
}

// New builds a telegram bot instance configured according to the
// application settings.
func New(
	cfg config.Config,
	log *slog.Logger,
	store settings.Store,
	fsm state.StateMachine,
	protocol *menu.Protocol,
	responder *ai.Responder,
	limiter ratelimit.Limiter,
) (*Bot, error) {
	tb, err := telebot.NewBot(telebot.Settings{
		Token:  cfg.Bot.Token,
		Poller: &telebot.LongPoller{Timeout: cfg.Bot.LongPollTimeout},
		Client: &http.Client{Timeout: cfg.Bot.LongPollTimeout + apiCallTimeout},
	})
	if err != nil {
		return nil, fmt.Errorf("initialize telebot: %w", err)
	}

	router := NewRouter(fsm, log)
	errHandler := apperrors.NewHandler(log, cfg.Sentry.Enabled())

	b := &Bot{
		telebot:    tb,
		log:        log,
		cfg:        cfg,
		fsm:        fsm,
		store:      store,
		protocol:   protocol,
		responder:  responder,
		limiter:    limiter,
		router:     router,
		errHandler: errHandler,
	}

	b.setupRouter()
	b.registerTelebotHandlers()

	return b, nil
}

// Start runs the telegram bot event loop.
func (b *Bot) Start() {
	if b.telebot != nil {
		b.telebot.Start()
	}
}

// Stop gracefully stops the telegram bot.
func (b *Bot) Stop() {
	if b.telebot == nil {
		return
	}

	if b.log != nil {
		b.log.Info("stopping telegram bot...")
	}

	b.telebot.Stop()
}

// Telebot exposes the underlying telebot.Bot instance for integrations
// such as health checks.
func (b *Bot) Telebot() *telebot.Bot {
	return b.telebot
}

// Sender returns the scheduler-facing outbound transport backed by this bot.
func (b *Bot) Sender() *Sender {
	return NewSender(b.telebot)
}

func (b *Bot) setupRouter() {
	if b.router == nil {
		return
	}

	b.router.Use(RecoveryMiddleware(b.log, b.errHandler))
	b.router.Use(ErrorHandlingMiddleware(b.errHandler))
	b.router.Use(LoggingMiddleware(b.log))
	b.router.Use(middleware.Metrics)

	gate := newAdminGate(b.telebot)

	b.router.HandleCommand(CommandStart, handlers.NewStartHandler(b.protocol, gate, b.log))
	b.router.HandleCommand(CommandSettings, handlers.NewSettingsHandler(b.protocol, gate, b.log))
	b.router.HandleCommand(CommandCancel, handlers.NewCancelHandler(b.fsm, b.log))

	menuCallback := handlers.NewMenuCallbackHandler(b.protocol, b.fsm, gate, b.log)
	for _, prefix := range []string{
		CallbackOpen,
		CallbackToggle,
		CallbackTime,
		CallbackSetTimezone,
		CallbackInterval,
		CallbackBackToSettings,
	} {
		b.router.HandleAction(prefix, menuCallback)
	}
	b.router.HandleAction(CallbackHelp, handlers.NewHelpHandler())

	b.router.HandleDialog(state.StateAwaitingTime, handlers.NewTimeInputHandler(b.protocol, b.fsm, b.log))

	b.router.SetFallback(handlers.NewGroupTextHandler(b.store, b.responder, b.limiter, b.log))
}

func (b *Bot) registerTelebotHandlers() {
	if b.telebot == nil || b.router == nil {
		return
	}

	b.telebot.Handle(telebot.OnText, b.router.Route)
	b.telebot.Handle(telebot.OnCallback, b.router.Route)
}

// adminGate resolves group admin rights through the bot API.
type adminGate struct {
	tb *telebot.Bot
}

func newAdminGate(tb *telebot.Bot) *adminGate {
	return &adminGate{tb: tb}
}

// IsAdmin reports whether the user is the creator or an administrator of
// the group.
func (g *adminGate) IsAdmin(userID, groupID int64) (bool, error) {
	if g == nil || g.tb == nil {
		return false, apperrors.NewInternalError(fmt.Errorf("admin gate has no bot instance"))
	}

	member, err := g.tb.ChatMemberOf(&telebot.Chat{ID: groupID}, &telebot.User{ID: userID})
	if err != nil {
		return false, apperrors.NewTransportError("chat member lookup", err)
	}

	return member.Role == telebot.Creator || member.Role == telebot.Administrator, nil
}
