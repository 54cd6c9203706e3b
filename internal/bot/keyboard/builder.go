// Package keyboard renders telebot inline markup for the bot's menus.
package keyboard

import (
	"fmt"

	telebot "gopkg.in/telebot.v3"

	"github.com/azkar-labs/azkar-bot/internal/menu"
)

// FromMenu converts a rendered settings page into telebot inline markup.
// Button actions are already encoded callback data.
func FromMenu(m menu.Menu) *telebot.ReplyMarkup {
	b := NewBuilder()

	for _, row := range m.Rows {
		buttons := make([]Button, 0, len(row))
		for _, btn := range row {
			buttons = append(buttons, Button{Text: btn.Text, Data: btn.Action})
		}
		b.Row(buttons...)
	}

	return b.Markup()
}

// StartMenu builds the private /start keyboard with the add-to-group
// deep link.
func StartMenu(botUsername string) *telebot.ReplyMarkup {
	return NewBuilder().
		Row(Button{
			Text: "➕ أضف البوت إلى مجموعتك",
			URL:  fmt.Sprintf("https://t.me/%s?startgroup=true", botUsername),
		}).
		Row(Button{
			Text: "📖 طريقة الاستخدام",
			Data: "help",
		}).
		Markup()
}
