package handlers

import (
	telebot "gopkg.in/telebot.v3"
)

// Handler serves one inbound message update.
type Handler func(c telebot.Context) error

// CallbackHandler serves one inline button press.
type CallbackHandler func(c telebot.Context) error

// Middleware wraps a handler with cross-cutting behavior; chains apply
// outermost-first.
type Middleware func(Handler) Handler
