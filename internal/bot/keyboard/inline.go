package keyboard

import (
	telebot "gopkg.in/telebot.v3"
)

// Button is one inline key. Data carries an encoded menu action; a
// non-empty URL makes the key a link instead.
type Button struct {
	Text string
	Data string
	URL  string
}

// Builder accumulates rows of buttons before rendering telebot markup.
type Builder struct {
	rows [][]Button
}

// NewBuilder returns an empty inline keyboard builder.
func NewBuilder() *Builder {
	return &Builder{}
}

// Row appends one row of buttons; empty rows are dropped.
func (b *Builder) Row(buttons ...Button) *Builder {
	if len(buttons) == 0 {
		return b
	}

	row := make([]Button, len(buttons))
	copy(row, buttons)
	b.rows = append(b.rows, row)
	return b
}

// Markup renders the accumulated rows as telebot inline markup.
func (b *Builder) Markup() *telebot.ReplyMarkup {
	keyboard := make([][]telebot.InlineButton, len(b.rows))
	for i, row := range b.rows {
		keyboard[i] = make([]telebot.InlineButton, len(row))
		for j, btn := range row {
			keyboard[i][j] = telebot.InlineButton{
				Text: btn.Text,
				Data: btn.Data,
				URL:  btn.URL,
			}
		}
	}

	return &telebot.ReplyMarkup{InlineKeyboard: keyboard}
}
