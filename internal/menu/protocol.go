package menu

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/azkar-labs/azkar-bot/internal/domain"
	apperrors "github.com/azkar-labs/azkar-bot/internal/errors"
	"github.com/azkar-labs/azkar-bot/internal/settings"
)

// Result is the protocol's answer to one button press. Ack is always
// delivered to clear the pressing user's loading indicator; Menu is nil
// when the current message should stay as-is. TimeEditFeature is set when
// the press starts a time-entry dialog that the transport layer owns.
type Result struct {
	GroupID         int64
	Menu            *Menu
	Ack             string
	AckAlert        bool
	TimeEditFeature domain.Feature
}

// Protocol translates inbound actions into settings mutations and menus.
// It does not verify admin rights; the transport layer gates access to the
// target group before calling in.
type Protocol struct {
	store settings.Store
	log   *slog.Logger
}

// NewProtocol builds a Protocol over the given settings store.
func NewProtocol(store settings.Store, log *slog.Logger) *Protocol {
	if log == nil {
		log = slog.Default()
	}

	return &Protocol{store: store, log: log}
}

// HandleAction processes one button press. Unknown or malformed actions
// return an unknown-action error; callers acknowledge those silently.
func (p *Protocol) HandleAction(ctx context.Context, data string) (Result, error) {
	action, err := ParseAction(data)
	if err != nil {
		return Result{}, apperrors.NewUnknownActionError(data)
	}

	switch {
	case action.Verb == verbBackToSettings:
		return p.open(ctx, CategoryRoot, action.GroupID)

	case strings.HasPrefix(action.Verb, verbOpenPrefix):
		category := Category(strings.TrimPrefix(action.Verb, verbOpenPrefix))
		if !knownCategory(category) {
			return Result{}, apperrors.NewUnknownActionError(data)
		}
		return p.open(ctx, category, action.GroupID)

	case strings.HasPrefix(action.Verb, verbTogglePrefix):
		feature := domain.Feature(strings.TrimPrefix(action.Verb, verbTogglePrefix))
		if !domain.IsKnownFeature(feature) {
			return Result{}, apperrors.NewUnknownActionError(data)
		}
		return p.toggle(ctx, feature, action.GroupID)

	case action.Verb == verbIntervalInc:
		return p.adjustInterval(ctx, action.GroupID, domain.IntervalStepMinutes)

	case action.Verb == verbIntervalDec:
		return p.adjustInterval(ctx, action.GroupID, -domain.IntervalStepMinutes)

	case strings.HasPrefix(action.Verb, verbTimePrefix):
		feature := domain.Feature(strings.TrimPrefix(action.Verb, verbTimePrefix))
		if feature != domain.FeatureMorning && feature != domain.FeatureEvening && feature != domain.FeatureFriday {
			return Result{}, apperrors.NewUnknownActionError(data)
		}
		return Result{
			GroupID:         action.GroupID,
			Ack:             ackTimePrompt,
			TimeEditFeature: feature,
		}, nil

	case strings.HasPrefix(action.Verb, verbSetTZPrefix):
		key := strings.TrimPrefix(action.Verb, verbSetTZPrefix)
		zone, ok := zoneForPresetKey(key)
		if !ok {
			return Result{}, apperrors.NewUnknownActionError(data)
		}
		return p.setTimezone(ctx, action.GroupID, zone)

	default:
		return Result{}, apperrors.NewUnknownActionError(data)
	}
}

// OpenRoot renders the root settings page for a group, used by /settings.
func (p *Protocol) OpenRoot(ctx context.Context, groupID int64) (Menu, error) {
	record, err := p.store.Get(ctx, groupID)
	if err != nil {
		return Menu{}, err
	}

	return Render(CategoryRoot, groupID, record), nil
}

// SetTriggerTime updates the named trigger's "HH:MM" value, completing a
// time-entry dialog started by a time_* button.
func (p *Protocol) SetTriggerTime(ctx context.Context, groupID int64, feature domain.Feature, value string) (Result, error) {
	normalized, err := domain.NormalizeClock(value)
	if err != nil {
		return Result{}, err
	}

	record, err := p.store.Update(ctx, groupID, func(s *domain.GroupSettings) {
		switch feature {
		case domain.FeatureMorning:
			s.MorningAzkar.Time = normalized
		case domain.FeatureEvening:
			s.EveningAzkar.Time = normalized
		case domain.FeatureFriday:
			s.FridayReminder.Time = normalized
		}
	})
	if err != nil {
		return Result{}, err
	}

	rendered := Render(parentCategory(feature), groupID, record)
	return Result{
		GroupID: groupID,
		Menu:    &rendered,
		Ack:     fmt.Sprintf("✅ تم ضبط الوقت: %s", normalized),
	}, nil
}

func (p *Protocol) open(ctx context.Context, category Category, groupID int64) (Result, error) {
	record, err := p.store.Get(ctx, groupID)
	if err != nil {
		return Result{}, err
	}

	rendered := Render(category, groupID, record)
	return Result{GroupID: groupID, Menu: &rendered}, nil
}

func (p *Protocol) toggle(ctx context.Context, feature domain.Feature, groupID int64) (Result, error) {
	var enabled bool
	record, err := p.store.Update(ctx, groupID, func(s *domain.GroupSettings) {
		enabled, _ = domain.ToggleFeature(s, feature)
	})
	if err != nil {
		return Result{}, err
	}

	ack := ackDisabled
	if enabled {
		ack = ackEnabled
	}

	rendered := Render(parentCategory(feature), groupID, record)
	return Result{GroupID: groupID, Menu: &rendered, Ack: ack}, nil
}

func (p *Protocol) adjustInterval(ctx context.Context, groupID int64, delta int) (Result, error) {
	adjusted := false
	record, err := p.store.Update(ctx, groupID, func(s *domain.GroupSettings) {
		next := s.PeriodicAzkar.IntervalMinutes + delta
		if next < domain.IntervalFloorMinutes {
			return
		}
		s.PeriodicAzkar.IntervalMinutes = next
		adjusted = true
	})
	if err != nil {
		return Result{}, err
	}

	rendered := Render(CategoryPeriodic, groupID, record)

	if !adjusted {
		floorErr := apperrors.NewAdjustmentError(
			fmt.Sprintf("interval below %d minutes rejected", domain.IntervalFloorMinutes),
		)
		p.log.Debug("interval adjustment rejected",
			slog.Int64("group_id", groupID),
			slog.String("reason", floorErr.Message),
		)
		return Result{
			GroupID:  groupID,
			Menu:     &rendered,
			Ack:      floorErr.UserMessage,
			AckAlert: true,
		}, nil
	}

	format := ackIntervalUp
	if delta < 0 {
		format = ackIntervalDown
	}

	return Result{
		GroupID: groupID,
		Menu:    &rendered,
		Ack:     fmt.Sprintf(format, record.PeriodicAzkar.IntervalMinutes),
	}, nil
}

func (p *Protocol) setTimezone(ctx context.Context, groupID int64, zone string) (Result, error) {
	record, err := p.store.Update(ctx, groupID, func(s *domain.GroupSettings) {
		s.Timezone = zone
	})
	if err != nil {
		return Result{}, err
	}

	rendered := Render(CategoryTimezone, groupID, record)
	return Result{
		GroupID: groupID,
		Menu:    &rendered,
		Ack:     fmt.Sprintf(ackTimezoneSet, zone),
	}, nil
}

func knownCategory(category Category) bool {
	switch category {
	case CategoryRoot, CategoryDaily, CategoryPeriodic, CategoryFriday,
		CategoryRamadan, CategoryOccasions, CategoryAudio, CategoryAI, CategoryTimezone:
		return true
	default:
		return false
	}
}
