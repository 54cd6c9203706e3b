package menu

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/azkar-labs/azkar-bot/internal/domain"
	apperrors "github.com/azkar-labs/azkar-bot/internal/errors"
	"github.com/azkar-labs/azkar-bot/internal/settings"
)

func newProtocol() (*Protocol, settings.Store) {
	store := settings.NewMemoryStore()
	return NewProtocol(store, nil), store
}

func TestToggleIsItsOwnInverse(t *testing.T) {
	ctx := context.Background()
	p, store := newProtocol()
	data, _ := EncodeAction("toggle_morning", -5)

	before, _ := store.Get(ctx, -5)

	if _, err := p.HandleAction(ctx, data); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	mid, _ := store.Get(ctx, -5)
	if mid.MorningAzkar.Enabled == before.MorningAzkar.Enabled {
		t.Fatal("first toggle did not flip the flag")
	}

	if _, err := p.HandleAction(ctx, data); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	after, _ := store.Get(ctx, -5)
	if after.MorningAzkar.Enabled != before.MorningAzkar.Enabled {
		t.Fatal("double toggle did not restore the flag")
	}
}

func TestToggleRerendersParentMenu(t *testing.T) {
	ctx := context.Background()
	p, _ := newProtocol()
	data, _ := EncodeAction("toggle_qadr", -5)

	res, err := p.HandleAction(ctx, data)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if res.Menu == nil {
		t.Fatal("expected a menu to render")
	}
	if !strings.Contains(res.Menu.Title, "رمضان") {
		t.Fatalf("expected ramadan menu after toggling qadr, got title %q", res.Menu.Title)
	}
	if res.Ack == "" {
		t.Fatal("toggle must acknowledge with enabled/disabled text")
	}
}

func TestIntervalAdjustRoundTrip(t *testing.T) {
	ctx := context.Background()
	p, store := newProtocol()

	inc, _ := EncodeAction("interval_increase", -9)
	dec, _ := EncodeAction("interval_decrease", -9)

	if _, err := p.HandleAction(ctx, inc); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := p.HandleAction(ctx, dec); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got, _ := store.Get(ctx, -9)
	if got.PeriodicAzkar.IntervalMinutes != 120 {
		t.Fatalf("expected interval back at 120, got %d", got.PeriodicAzkar.IntervalMinutes)
	}
}

func TestIntervalIncreaseThreeTimes(t *testing.T) {
	ctx := context.Background()
	p, store := newProtocol()
	data, _ := EncodeAction("interval_increase", -77)

	var last Result
	for i := 0; i < 3; i++ {
		res, err := p.HandleAction(ctx, data)
		if err != nil {
			t.Fatalf("unexpected error on press %d: %v", i+1, err)
		}
		last = res
	}

	got, _ := store.Get(ctx, -77)
	if got.PeriodicAzkar.IntervalMinutes != 210 {
		t.Fatalf("expected interval 210 after three presses, got %d", got.PeriodicAzkar.IntervalMinutes)
	}
	if !strings.Contains(last.Ack, "210") {
		t.Fatalf("third ack must contain the new value, got %q", last.Ack)
	}
}

func TestIntervalDecreaseAtFloor(t *testing.T) {
	ctx := context.Background()
	p, store := newProtocol()

	_, _ = store.Update(ctx, -3, func(s *domain.GroupSettings) {
		s.PeriodicAzkar.IntervalMinutes = domain.IntervalFloorMinutes
	})

	data, _ := EncodeAction("interval_decrease", -3)
	res, err := p.HandleAction(ctx, data)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got, _ := store.Get(ctx, -3)
	if got.PeriodicAzkar.IntervalMinutes != domain.IntervalFloorMinutes {
		t.Fatalf("floor violated: %d", got.PeriodicAzkar.IntervalMinutes)
	}
	if !res.AckAlert {
		t.Fatal("floor rejection must be an alert")
	}
	if !strings.Contains(res.Ack, "30") {
		t.Fatalf("floor warning should name the minimum, got %q", res.Ack)
	}
}

func TestUnknownActionIsSilent(t *testing.T) {
	ctx := context.Background()
	p, store := newProtocol()

	for _, data := range []string{"bogus_verb:5", "toggle_nonsense:5", "open_nowhere:5", "set_tz_atlantis:5", "garbage"} {
		_, err := p.HandleAction(ctx, data)
		if err == nil {
			t.Fatalf("expected unknown-action error for %q", data)
		}

		var appErr *apperrors.AppError
		if !errors.As(err, &appErr) || appErr.Code != "E500" {
			t.Fatalf("expected unknown-action code for %q, got %v", data, err)
		}
		if appErr.UserMessage != "" {
			t.Fatalf("unknown actions must stay silent, got %q", appErr.UserMessage)
		}
	}

	// No records should have been created or mutated along the way.
	ids, _ := store.GroupIDs(ctx)
	if len(ids) != 0 {
		t.Fatalf("unknown actions must not touch the store, got ids %v", ids)
	}
}

func TestBackToSettingsRendersRoot(t *testing.T) {
	ctx := context.Background()
	p, _ := newProtocol()
	data, _ := EncodeAction("back_to_settings", -4)

	res, err := p.HandleAction(ctx, data)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if res.Menu == nil || !strings.Contains(res.Menu.Title, "لوحة التحكم") {
		t.Fatalf("expected root menu, got %+v", res.Menu)
	}
	if res.GroupID != -4 {
		t.Fatalf("expected target group -4, got %d", res.GroupID)
	}
}

func TestSetTimezone(t *testing.T) {
	ctx := context.Background()
	p, store := newProtocol()
	data, _ := EncodeAction("set_tz_cairo", -8)

	res, err := p.HandleAction(ctx, data)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got, _ := store.Get(ctx, -8)
	if got.Timezone != "Africa/Cairo" {
		t.Fatalf("expected Africa/Cairo, got %q", got.Timezone)
	}
	if !strings.Contains(res.Ack, "Africa/Cairo") {
		t.Fatalf("ack should name the zone, got %q", res.Ack)
	}
}

func TestTimeEditStartsDialog(t *testing.T) {
	ctx := context.Background()
	p, _ := newProtocol()
	data, _ := EncodeAction("time_evening", -2)

	res, err := p.HandleAction(ctx, data)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if res.TimeEditFeature != domain.FeatureEvening {
		t.Fatalf("expected evening time-edit dialog, got %q", res.TimeEditFeature)
	}
	if res.Menu != nil {
		t.Fatal("time edit must not replace the menu")
	}
	if res.Ack == "" {
		t.Fatal("time edit must prompt via the ack channel")
	}
}

func TestSetTriggerTime(t *testing.T) {
	ctx := context.Background()
	p, store := newProtocol()

	res, err := p.SetTriggerTime(ctx, -2, domain.FeatureMorning, "5:45")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got, _ := store.Get(ctx, -2)
	if got.MorningAzkar.Time != "05:45" {
		t.Fatalf("expected normalized 05:45, got %q", got.MorningAzkar.Time)
	}
	if res.Menu == nil {
		t.Fatal("expected the daily menu to re-render")
	}

	if _, err := p.SetTriggerTime(ctx, -2, domain.FeatureMorning, "25:99"); err == nil {
		t.Fatal("expected error for invalid clock value")
	}
}

func TestOpenMenusForEveryCategory(t *testing.T) {
	ctx := context.Background()
	p, _ := newProtocol()

	for _, category := range []Category{
		CategoryDaily, CategoryPeriodic, CategoryFriday, CategoryRamadan,
		CategoryOccasions, CategoryAudio, CategoryAI, CategoryTimezone,
	} {
		data, _ := EncodeAction(fmt.Sprintf("open_%s", category), -6)
		res, err := p.HandleAction(ctx, data)
		if err != nil {
			t.Fatalf("open_%s failed: %v", category, err)
		}
		if res.Menu == nil || len(res.Menu.Rows) == 0 {
			t.Fatalf("open_%s rendered no menu", category)
		}
	}
}
