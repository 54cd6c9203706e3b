package state

import (
	"strconv"
	"time"

	"github.com/azkar-labs/azkar-bot/internal/domain"
)

// State represents a finite-state machine state.
type State string

const (
	// StateIdle indicates that the bot is waiting for the next command.
	StateIdle State = "idle"
	// StateAwaitingTime indicates that the user was asked for an "HH:MM"
	// value and the next text message completes the dialog.
	StateAwaitingTime State = "awaiting_time"
	// StateError indicates that the dialog broke and requires recovery.
	StateError State = "error"
)

// UserState captures the current dialog state for one user.
type UserState struct {
	UserID       int64                  `json:"user_id"`
	CurrentState State                  `json:"current_state"`
	Context      map[string]interface{} `json:"context"`
	UpdatedAt    time.Time              `json:"updated_at"`
}

// Context keys for the awaiting-time dialog. The group ID is stored as a
// string so it survives a JSON round trip intact.
const (
	contextKeyGroupID = "group_id"
	contextKeyFeature = "feature"
)

// TimeEditContext builds the dialog context for an awaiting-time state.
func TimeEditContext(groupID int64, feature domain.Feature) map[string]interface{} {
	return map[string]interface{}{
		contextKeyGroupID: strconv.FormatInt(groupID, 10),
		contextKeyFeature: string(feature),
	}
}

// TimeEditTarget extracts the target group and trigger from an
// awaiting-time state. ok is false when the state carries no usable target.
func TimeEditTarget(s *UserState) (groupID int64, feature domain.Feature, ok bool) {
	if s == nil || s.CurrentState != StateAwaitingTime || s.Context == nil {
		return 0, "", false
	}

	rawGroup, _ := s.Context[contextKeyGroupID].(string)
	groupID, err := strconv.ParseInt(rawGroup, 10, 64)
	if err != nil {
		return 0, "", false
	}

	rawFeature, _ := s.Context[contextKeyFeature].(string)
	feature = domain.Feature(rawFeature)
	if !domain.IsKnownFeature(feature) {
		return 0, "", false
	}

	return groupID, feature, true
}
