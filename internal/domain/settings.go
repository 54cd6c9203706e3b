// Package domain defines the group settings record and the feature registry.
package domain

import "time"

// DefaultTimezone is applied to newly registered groups. All "HH:MM"
// trigger times are interpreted in the group's timezone.
const DefaultTimezone = "Asia/Riyadh"

// IntervalStepMinutes is the granularity of periodic-interval adjustments.
// IntervalFloorMinutes is the smallest allowed periodic interval.
const (
	IntervalStepMinutes  = 30
	IntervalFloorMinutes = 30
)

// TimedTrigger is a daily or weekly trigger fired at a fixed local time.
type TimedTrigger struct {
	Enabled bool   `json:"enabled"`
	Time    string `json:"time"` // "HH:MM" in the group timezone
}

// PeriodicTrigger fires once the configured number of minutes has elapsed
// since the previous firing.
type PeriodicTrigger struct {
	Enabled         bool `json:"enabled"`
	IntervalMinutes int  `json:"interval_minutes"`
}

// Toggle is a plain on/off feature switch.
type Toggle struct {
	Enabled bool `json:"enabled"`
}

// GroupSettings holds every administrator-controlled knob for one group.
// A record is created fully populated and is never partially written.
type GroupSettings struct {
	MorningAzkar   TimedTrigger    `json:"morning_azkar"`
	EveningAzkar   TimedTrigger    `json:"evening_azkar"`
	PeriodicAzkar  PeriodicTrigger `json:"periodic_azkar"`
	FridayReminder TimedTrigger    `json:"friday_reminder"`

	IstijabahHour   Toggle `json:"istijabah_hour"`
	RamadanAzkar    Toggle `json:"ramadan_azkar"`
	ArafatDay       Toggle `json:"arafat_day"`
	EidReminders    Toggle `json:"eid_reminders"`
	AshuraReminders Toggle `json:"ashura_reminders"`
	LailatulQadr    Toggle `json:"lailatul_qadr"`
	LastTenDays     Toggle `json:"last_ten_days"`
	EidTakbeer      Toggle `json:"eid_takbeer"`

	QuranAudio  Toggle `json:"quran_audio"`
	AzkarAudio  Toggle `json:"azkar_audio"`
	AIResponses Toggle `json:"ai_responses"`

	LastPeriodicSentAt *time.Time `json:"last_periodic_sent_at,omitempty"`
	Timezone           string     `json:"timezone"`
}

// DefaultGroupSettings returns the record assigned to a group on first access.
func DefaultGroupSettings() GroupSettings {
	return GroupSettings{
		MorningAzkar:   TimedTrigger{Enabled: true, Time: "06:00"},
		EveningAzkar:   TimedTrigger{Enabled: true, Time: "17:00"},
		PeriodicAzkar:  PeriodicTrigger{Enabled: true, IntervalMinutes: 120},
		FridayReminder: TimedTrigger{Enabled: true, Time: "11:00"},

		IstijabahHour:   Toggle{Enabled: true},
		RamadanAzkar:    Toggle{Enabled: true},
		ArafatDay:       Toggle{Enabled: true},
		EidReminders:    Toggle{Enabled: true},
		AshuraReminders: Toggle{Enabled: true},
		LailatulQadr:    Toggle{Enabled: true},
		LastTenDays:     Toggle{Enabled: true},
		EidTakbeer:      Toggle{Enabled: true},

		QuranAudio:  Toggle{Enabled: true},
		AzkarAudio:  Toggle{Enabled: true},
		AIResponses: Toggle{Enabled: true},

		Timezone: DefaultTimezone,
	}
}
