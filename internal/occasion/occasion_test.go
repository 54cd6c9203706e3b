package occasion

import (
	"testing"
	"time"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 12, 0, 0, 0, time.UTC)
}

func TestActiveRamadan(t *testing.T) {
	// Umm al-Qura: 1 Ramadan 1447 falls on 2026-02-19.
	set, err := Active(date(2026, time.February, 19))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !set.Has(FlagRamadan) {
		t.Fatal("expected ramadan active on 2026-02-19")
	}
	if set.Has(FlagLastTenDays) {
		t.Fatal("last ten days must not be active on Ramadan 1st")
	}
}

func TestActiveLastTenDays(t *testing.T) {
	// Ramadan day 20 of 1447 = 2026-03-10.
	set, err := Active(date(2026, time.March, 10))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !set.Has(FlagRamadan) || !set.Has(FlagLastTenDays) {
		t.Fatalf("expected ramadan + last ten days, got %v", set)
	}
}

func TestActiveArafat(t *testing.T) {
	// 9 Dhul-Hijjah 1446 = 2025-06-05.
	set, err := Active(date(2025, time.June, 5))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !set.Has(FlagArafatDay) {
		t.Fatalf("expected arafat day active, got %v", set)
	}
	if !set.Has(FlagEidTakbeer) {
		t.Fatalf("expected takbeer days active on arafat, got %v", set)
	}
}

func TestActiveOrdinaryDay(t *testing.T) {
	set, err := Active(date(2026, time.January, 15))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(set) != 0 {
		t.Fatalf("expected no active occasions, got %v", set)
	}
}

func TestActiveDeterministic(t *testing.T) {
	day := date(2026, time.March, 10)

	first, err := Active(day)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := Active(day)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(first) != len(second) {
		t.Fatalf("oracle not deterministic: %v vs %v", first, second)
	}
	for flag := range first {
		if !second.Has(flag) {
			t.Fatalf("oracle not deterministic for %s", flag)
		}
	}
}
