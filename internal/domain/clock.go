package domain

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrBadClock reports an unparseable "HH:MM" value.
var ErrBadClock = errors.New("clock value must be HH:MM")

// ParseClock validates and splits a "HH:MM" trigger time.
func ParseClock(value string) (hour, minute int, err error) {
	parts := strings.SplitN(strings.TrimSpace(value), ":", 2)
	if len(parts) != 2 || len(parts[0]) != 2 || len(parts[1]) != 2 {
		return 0, 0, ErrBadClock
	}

	hour, err = strconv.Atoi(parts[0])
	if err != nil {
		return 0, 0, ErrBadClock
	}

	minute, err = strconv.Atoi(parts[1])
	if err != nil {
		return 0, 0, ErrBadClock
	}

	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return 0, 0, ErrBadClock
	}

	return hour, minute, nil
}

// NormalizeClock parses value and renders it back in canonical "HH:MM" form,
// accepting single-digit hours such as "6:30".
func NormalizeClock(value string) (string, error) {
	trimmed := strings.TrimSpace(value)
	parts := strings.SplitN(trimmed, ":", 2)
	if len(parts) != 2 {
		return "", ErrBadClock
	}

	hour, err := strconv.Atoi(parts[0])
	if err != nil {
		return "", ErrBadClock
	}

	minute, err := strconv.Atoi(parts[1])
	if err != nil {
		return "", ErrBadClock
	}

	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return "", ErrBadClock
	}

	return fmt.Sprintf("%02d:%02d", hour, minute), nil
}
