package provider

import (
	"fmt"
	"strings"
)

// maxReminderItems bounds how many items go into one message, keeping the
// rendered text inside Telegram's message size limit.
const maxReminderItems = 10

// FormatMessage renders a titled reminder list the way the bot posts it to
// groups: numbered items, repeat counts where above one, and the Hisn
// al-Muslim attribution footer.
func FormatMessage(title string, reminders []Reminder) string {
	var b strings.Builder

	fmt.Fprintf(&b, "🌙 *%s* 🌙\n\n", title)

	for i, reminder := range reminders {
		if i == maxReminderItems {
			break
		}

		fmt.Fprintf(&b, "%d. %s\n", i+1, reminder.Text)
		if reminder.Repeat > 1 {
			fmt.Fprintf(&b, "   🔢 التكرار: %d مرة\n", reminder.Repeat)
		}
		b.WriteString("\n")
	}

	b.WriteString("\n📿 حصن المسلم")
	return b.String()
}
