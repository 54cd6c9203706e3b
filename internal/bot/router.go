package bot

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	telebot "gopkg.in/telebot.v3"

	"github.com/azkar-labs/azkar-bot/internal/bot/handlers"
	"github.com/azkar-labs/azkar-bot/internal/state"
)

// Router matches inbound updates against the bot's three surfaces: slash
// commands, menu callback actions and the group text fallback. A user who
// is mid dialog (entering a trigger time) is served by the dialog handler
// before the fallback gets a chance.
//
// All registration happens while the bot is being built, before polling
// starts, so the registries are read without locking.
type Router struct {
	fsm      state.StateMachine
	commands map[string]handlers.Handler
	actions  []actionRoute
	dialogs  map[state.State]handlers.Handler
	fallback handlers.Handler
	chain    []handlers.Middleware
	log      *slog.Logger
}

// actionRoute binds a callback verb prefix to its handler.
type actionRoute struct {
	prefix  string
	handler handlers.CallbackHandler
}

// NewRouter builds a Router with empty registries.
func NewRouter(fsm state.StateMachine, log *slog.Logger) *Router {
	if log == nil {
		log = slog.Default()
	}

	return &Router{
		fsm:      fsm,
		commands: make(map[string]handlers.Handler),
		dialogs:  make(map[state.State]handlers.Handler),
		log:      log,
	}
}

// Use appends a middleware; the chain runs outermost-first in the order
// middlewares were added.
func (r *Router) Use(mw handlers.Middleware) {
	r.chain = append(r.chain, mw)
}

// HandleCommand registers a handler for a slash command.
func (r *Router) HandleCommand(cmd string, h handlers.Handler) {
	r.commands[cmd] = h
}

// HandleAction registers a handler for callback data starting with prefix.
func (r *Router) HandleAction(prefix string, h handlers.CallbackHandler) {
	r.actions = append(r.actions, actionRoute{prefix: prefix, handler: h})
}

// HandleDialog registers a handler that owns messages from users in s.
func (r *Router) HandleDialog(s state.State, h handlers.Handler) {
	r.dialogs[s] = h
}

// SetFallback sets the handler for plain text that matched nothing else.
func (r *Router) SetFallback(h handlers.Handler) {
	r.fallback = h
}

// Route directs one inbound update to its handler.
func (r *Router) Route(c telebot.Context) error {
	if c == nil {
		return nil
	}

	if cb := c.Callback(); cb != nil {
		return r.routeCallback(c, cb.Data)
	}

	return r.routeMessage(c)
}

func (r *Router) routeCallback(c telebot.Context, data string) error {
	for _, route := range r.actions {
		if strings.HasPrefix(data, route.prefix) {
			return r.run(handlers.Handler(route.handler), c)
		}
	}

	// Buttons from menus rendered by older builds can carry verbs nothing
	// routes anymore; the press still has to be acknowledged or the
	// presser's client spins until the callback expires.
	r.log.Debug("acknowledging unroutable callback", slog.String("data", data))
	return c.Respond()
}

func (r *Router) routeMessage(c telebot.Context) error {
	text := c.Text()

	if strings.HasPrefix(text, "/") {
		if h, ok := r.commands[commandKey(text)]; ok {
			return r.run(h, c)
		}
	}

	dialog, err := r.dialogHandler(c)
	if err != nil {
		return err
	}
	if dialog != nil {
		return r.run(dialog, c)
	}

	if r.fallback != nil {
		return r.run(r.fallback, c)
	}

	return nil
}

// commandKey reduces "/settings@azkar_bot 123" to "/settings". Telegram
// clients append the bot mention when completing commands in groups, and
// users may pass arguments.
func commandKey(text string) string {
	if i := strings.IndexByte(text, ' '); i > 0 {
		text = text[:i]
	}
	if i := strings.IndexByte(text, '@'); i > 0 {
		text = text[:i]
	}
	return text
}

// dialogHandler resolves the sender's dialog state to a registered
// handler. Idle users (and users with no stored state) have none.
func (r *Router) dialogHandler(c telebot.Context) (handlers.Handler, error) {
	if r.fsm == nil || c.Sender() == nil || len(r.dialogs) == 0 {
		return nil, nil
	}

	current := state.StateIdle
	stored, err := r.fsm.GetState(context.Background(), c.Sender().ID)
	if err != nil {
		if !errors.Is(err, state.ErrStateNotFound) {
			return nil, err
		}
	} else if stored != nil {
		current = stored.CurrentState
	}

	return r.dialogs[current], nil
}

func (r *Router) run(h handlers.Handler, c telebot.Context) error {
	for i := len(r.chain) - 1; i >= 0; i-- {
		h = r.chain[i](h)
	}
	return h(c)
}
