// Package menu implements the settings-menu protocol: it parses inbound
// button actions, applies the corresponding settings mutation, and renders
// the next menu to show.
package menu

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Callback data travels through Telegram's 64-byte callback field, so the
// encoded action must stay inside that limit.
const (
	actionSeparator  = ":"
	actionLimitBytes = 64
)

// Verbs understood by the protocol. Open verbs carry the category suffix;
// toggle verbs carry the feature key; set_tz verbs carry the zone key.
const (
	verbOpenPrefix     = "open_"
	verbTogglePrefix   = "toggle_"
	verbTimePrefix     = "time_"
	verbSetTZPrefix    = "set_tz_"
	verbBackToSettings = "back_to_settings"
	verbIntervalInc    = "interval_increase"
	verbIntervalDec    = "interval_decrease"
)

// Action is one decoded button press: what to do and which group it targets.
// The target group is always explicit because admins drive the menu from a
// private chat while configuring a group they administer.
type Action struct {
	Verb    string
	GroupID int64
}

// ErrBadAction reports callback data the protocol cannot decode.
var ErrBadAction = errors.New("malformed action data")

// EncodeAction packs a verb and target group into callback data.
func EncodeAction(verb string, groupID int64) (string, error) {
	if verb == "" || strings.Contains(verb, actionSeparator) {
		return "", ErrBadAction
	}

	data := verb + actionSeparator + strconv.FormatInt(groupID, 10)
	if len(data) > actionLimitBytes {
		return "", fmt.Errorf("action data exceeds %d byte limit: got %d", actionLimitBytes, len(data))
	}

	return data, nil
}

// ParseAction recovers the verb and target group from callback data.
func ParseAction(data string) (Action, error) {
	if data == "" || len(data) > actionLimitBytes {
		return Action{}, ErrBadAction
	}

	idx := strings.LastIndex(data, actionSeparator)
	if idx <= 0 || idx == len(data)-1 {
		return Action{}, ErrBadAction
	}

	groupID, err := strconv.ParseInt(data[idx+1:], 10, 64)
	if err != nil {
		return Action{}, ErrBadAction
	}

	return Action{Verb: data[:idx], GroupID: groupID}, nil
}
