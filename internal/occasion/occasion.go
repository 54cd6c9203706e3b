// Package occasion reports which Islamic-calendar occasions are active on a
// given civil date. Dates are converted with the Umm al-Qura calendar, not
// an arithmetic approximation.
package occasion

import (
	"fmt"
	"time"

	hijri "github.com/hablullah/go-hijri"
)

// Flag identifies one special-occasion period.
type Flag string

const (
	FlagRamadan      Flag = "ramadan"
	FlagLastTenDays  Flag = "last_ten_days"
	FlagLailatulQadr Flag = "lailatul_qadr"
	FlagArafatDay    Flag = "arafat_day"
	FlagEid          Flag = "eid"
	FlagAshura       Flag = "ashura"
	FlagEidTakbeer   Flag = "eid_takbeer"
)

// Hijri month numbers used by the gating rules.
const (
	monthMuharram  = 1
	monthRamadan   = 9
	monthShawwal   = 10
	monthDhulHijja = 12
)

// Set is the collection of flags active on one date.
type Set map[Flag]bool

// Has reports whether flag is active.
func (s Set) Has(flag Flag) bool {
	return s[flag]
}

// Oracle converts a date to the set of active occasion flags. It must be
// deterministic for a given date.
type Oracle func(date time.Time) (Set, error)

// Active reports the occasions in effect on date. The calendar day is taken
// from date's own location, so callers pass time already shifted to the
// group timezone. Takbeer days span Dhul-Hijjah 9-13 plus Eid al-Fitr;
// Lailatul Qadr is observed on Ramadan 27.
func Active(date time.Time) (Set, error) {
	d, err := hijri.CreateUmmAlQuraDate(date)
	if err != nil {
		return nil, fmt.Errorf("convert %s to umm al-qura date: %w", date.Format("2006-01-02"), err)
	}

	set := make(Set)

	if d.Month == monthRamadan {
		set[FlagRamadan] = true
		if d.Day >= 20 {
			set[FlagLastTenDays] = true
		}
		if d.Day == 27 {
			set[FlagLailatulQadr] = true
		}
	}

	if d.Month == monthDhulHijja && d.Day == 9 {
		set[FlagArafatDay] = true
	}

	if (d.Month == monthShawwal && d.Day == 1) || (d.Month == monthDhulHijja && d.Day == 10) {
		set[FlagEid] = true
	}

	if d.Month == monthMuharram && d.Day == 10 {
		set[FlagAshura] = true
	}

	if (d.Month == monthDhulHijja && d.Day >= 9 && d.Day <= 13) ||
		(d.Month == monthShawwal && d.Day == 1) {
		set[FlagEidTakbeer] = true
	}

	return set, nil
}
