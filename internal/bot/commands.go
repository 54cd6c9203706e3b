package bot

// Command constants for Telegram bot commands.
const (
	CommandStart    = "/start"
	CommandSettings = "/settings"
	CommandCancel   = "/cancel"
)

// Callback data prefixes handled by the settings menu. All of them carry
// the target group ID after the verb.
const (
	CallbackOpen           = "open_"
	CallbackToggle         = "toggle_"
	CallbackTime           = "time_"
	CallbackSetTimezone    = "set_tz_"
	CallbackInterval       = "interval_"
	CallbackBackToSettings = "back_to_settings"
	CallbackHelp           = "help"
)
