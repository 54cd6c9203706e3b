package keyboard

import (
	"strings"
	"testing"

	"github.com/azkar-labs/azkar-bot/internal/menu"
)

func TestBuilderKeepsRowLayout(t *testing.T) {
	markup := NewBuilder().
		Row(
			Button{Text: "واحد", Data: "one:1"},
			Button{Text: "اثنان", Data: "two:1"},
		).
		Row(Button{Text: "ثلاثة", Data: "three:1"}).
		Row().
		Markup()

	if len(markup.InlineKeyboard) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(markup.InlineKeyboard))
	}

	if markup.InlineKeyboard[0][1].Data != "two:1" {
		t.Errorf("unexpected callback data: %q", markup.InlineKeyboard[0][1].Data)
	}
}

func TestFromMenuPreservesLayout(t *testing.T) {
	page := menu.Menu{
		Title: "عنوان",
		Rows: [][]menu.Button{
			{{Text: "زر أول", Action: "open_daily:-5"}, {Text: "زر ثان", Action: "open_friday:-5"}},
			{{Text: "رجوع", Action: "back_to_settings:-5"}},
		},
	}

	markup := FromMenu(page)

	if len(markup.InlineKeyboard) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(markup.InlineKeyboard))
	}

	if got := markup.InlineKeyboard[0][0].Data; got != "open_daily:-5" {
		t.Errorf("action not carried into callback data: %q", got)
	}

	if got := markup.InlineKeyboard[1][0].Text; got != "رجوع" {
		t.Errorf("unexpected back button text: %q", got)
	}
}

func TestStartMenuDeepLink(t *testing.T) {
	markup := StartMenu("azkar_test_bot")

	if len(markup.InlineKeyboard) == 0 || len(markup.InlineKeyboard[0]) == 0 {
		t.Fatal("expected at least one button")
	}

	url := markup.InlineKeyboard[0][0].URL
	if !strings.Contains(url, "azkar_test_bot") || !strings.Contains(url, "startgroup") {
		t.Errorf("deep link does not target the bot: %q", url)
	}

	if markup.InlineKeyboard[1][0].Data != "help" {
		t.Errorf("help button data: %q", markup.InlineKeyboard[1][0].Data)
	}
}
