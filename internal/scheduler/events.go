package scheduler

import (
	"time"

	"github.com/azkar-labs/azkar-bot/internal/domain"
	"github.com/azkar-labs/azkar-bot/internal/occasion"
	"github.com/azkar-labs/azkar-bot/internal/provider"
)

type eventKind int

const (
	kindFetched eventKind = iota // content pulled from the provider
	kindStatic                   // canned text
	kindFriday                   // text plus Surah Al-Kahf attachments
)

// event is one reminder due for a group at a given tick.
type event struct {
	name     string // metrics category label
	kind     eventKind
	category provider.Category // kindFetched only
	title    string            // kindFetched only
	text     string            // kindStatic only
	periodic bool              // records the firing time after delivery
}

// dueEvents decides which reminders fire for a group. local is the current
// instant already shifted to the group timezone; active holds the occasion
// flags for local's calendar day. The decision is pure so it can be tested
// against pinned clocks.
func dueEvents(s domain.GroupSettings, local time.Time, active occasion.Set) []event {
	clock := local.Format("15:04")
	friday := local.Weekday() == time.Friday

	var due []event

	if s.MorningAzkar.Enabled && s.MorningAzkar.Time == clock {
		due = append(due, event{
			name:     "morning",
			kind:     kindFetched,
			category: provider.CategoryMorning,
			title:    titleMorning,
		})
	}

	if s.EveningAzkar.Enabled && s.EveningAzkar.Time == clock {
		due = append(due, event{
			name:     "evening",
			kind:     kindFetched,
			category: provider.CategoryEvening,
			title:    titleEvening,
		})
	}

	if friday && s.FridayReminder.Enabled && s.FridayReminder.Time == clock {
		due = append(due, event{name: "friday", kind: kindFriday, text: textFriday})
	}

	if friday && s.IstijabahHour.Enabled && clock == clockIstijabah {
		due = append(due, event{name: "istijabah", kind: kindStatic, text: textIstijabah})
	}

	if s.PeriodicAzkar.Enabled && periodicDue(s, local) {
		due = append(due, event{
			name:     "periodic",
			kind:     kindFetched,
			category: provider.CategoryPostPrayer,
			title:    titlePeriodic,
			periodic: true,
		})
	}

	due = append(due, occasionEvents(s, clock, active)...)

	return due
}

// periodicDue reports whether the interval has elapsed since the previous
// periodic send. A group that has never fired is due immediately.
func periodicDue(s domain.GroupSettings, now time.Time) bool {
	if s.LastPeriodicSentAt == nil {
		return true
	}

	elapsed := now.Sub(*s.LastPeriodicSentAt)
	return elapsed >= time.Duration(s.PeriodicAzkar.IntervalMinutes)*time.Minute
}

// occasionRules pairs each occasion feature with its calendar flag, its
// fixed group-local clock and the canned text.
var occasionRules = []struct {
	feature domain.Feature
	flag    occasion.Flag
	clock   string
	name    string
	text    string
}{
	{domain.FeatureRamadan, occasion.FlagRamadan, clockRamadan, "ramadan", textRamadan},
	{domain.FeatureQadr, occasion.FlagLailatulQadr, clockQadr, "qadr", textQadr},
	{domain.FeatureLastTen, occasion.FlagLastTenDays, clockLastTen, "lastten", textLastTen},
	{domain.FeatureArafat, occasion.FlagArafatDay, clockOccasion, "arafat", textArafat},
	{domain.FeatureEid, occasion.FlagEid, clockOccasion, "eid", textEid},
	{domain.FeatureAshura, occasion.FlagAshura, clockOccasion, "ashura", textAshura},
	{domain.FeatureTakbeer, occasion.FlagEidTakbeer, clockTakbeer, "takbeer", textTakbeer},
}

func occasionEvents(s domain.GroupSettings, clock string, active occasion.Set) []event {
	var due []event

	for _, rule := range occasionRules {
		enabled, err := domain.FeatureEnabled(s, rule.feature)
		if err != nil || !enabled {
			continue
		}
		if active.Has(rule.flag) && clock == rule.clock {
			due = append(due, event{name: rule.name, kind: kindStatic, text: rule.text})
		}
	}

	return due
}
