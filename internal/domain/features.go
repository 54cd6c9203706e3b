package domain

import "fmt"

// Feature identifies a toggleable capability as it appears in callback verbs.
type Feature string

const (
	FeatureMorning    Feature = "morning"
	FeatureEvening    Feature = "evening"
	FeaturePeriodic   Feature = "periodic"
	FeatureFriday     Feature = "friday"
	FeatureIstijabah  Feature = "istijabah"
	FeatureRamadan    Feature = "ramadan"
	FeatureQadr       Feature = "qadr"
	FeatureLastTen    Feature = "lastten"
	FeatureArafat     Feature = "arafat"
	FeatureEid        Feature = "eid"
	FeatureAshura     Feature = "ashura"
	FeatureTakbeer    Feature = "takbeer"
	FeatureQuranAudio Feature = "quran_audio"
	FeatureAzkarAudio Feature = "azkar_audio"
	FeatureAI         Feature = "ai"
)

// ErrUnknownFeature reports a feature key that is not in the registry.
type ErrUnknownFeature struct {
	Feature Feature
}

func (e *ErrUnknownFeature) Error() string {
	return fmt.Sprintf("unknown feature %q", string(e.Feature))
}

// flagOf maps a feature key to the Enabled flag inside the record.
func flagOf(s *GroupSettings, f Feature) *bool {
	switch f {
	case FeatureMorning:
		return &s.MorningAzkar.Enabled
	case FeatureEvening:
		return &s.EveningAzkar.Enabled
	case FeaturePeriodic:
		return &s.PeriodicAzkar.Enabled
	case FeatureFriday:
		return &s.FridayReminder.Enabled
	case FeatureIstijabah:
		return &s.IstijabahHour.Enabled
	case FeatureRamadan:
		return &s.RamadanAzkar.Enabled
	case FeatureQadr:
		return &s.LailatulQadr.Enabled
	case FeatureLastTen:
		return &s.LastTenDays.Enabled
	case FeatureArafat:
		return &s.ArafatDay.Enabled
	case FeatureEid:
		return &s.EidReminders.Enabled
	case FeatureAshura:
		return &s.AshuraReminders.Enabled
	case FeatureTakbeer:
		return &s.EidTakbeer.Enabled
	case FeatureQuranAudio:
		return &s.QuranAudio.Enabled
	case FeatureAzkarAudio:
		return &s.AzkarAudio.Enabled
	case FeatureAI:
		return &s.AIResponses.Enabled
	default:
		return nil
	}
}

// IsKnownFeature reports whether f is a registered feature key.
func IsKnownFeature(f Feature) bool {
	var s GroupSettings
	return flagOf(&s, f) != nil
}

// ToggleFeature flips the Enabled flag of the named feature and returns the
// resulting state.
func ToggleFeature(s *GroupSettings, f Feature) (bool, error) {
	flag := flagOf(s, f)
	if flag == nil {
		return false, &ErrUnknownFeature{Feature: f}
	}

	*flag = !*flag
	return *flag, nil
}

// FeatureEnabled reads the Enabled flag of the named feature.
func FeatureEnabled(s GroupSettings, f Feature) (bool, error) {
	flag := flagOf(&s, f)
	if flag == nil {
		return false, &ErrUnknownFeature{Feature: f}
	}

	return *flag, nil
}
