package types

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// TimeLabel is a named time-of-day slot label in 12-hour clock form, e.g.
// "09:00 AM" or "01:00 PM". Labels are stored and compared as strings; this
// type exists to validate owner-declared labels and to order slot listings
// chronologically rather than lexicographically.
type TimeLabel string

// labelFormat is the 12-hour wall-clock layout used by slot labels.
const labelFormat = "03:04 PM"

// ErrInvalidTimeLabel is returned for strings that do not parse as
// "hh:mm AM" / "hh:mm PM".
var ErrInvalidTimeLabel = errors.New("invalid time label, expected hh:mm AM/PM")

// ParseTimeLabel validates s and returns it as a TimeLabel.
func ParseTimeLabel(s string) (TimeLabel, error) {
	trimmed := strings.TrimSpace(s)
	t, err := time.Parse(labelFormat, strings.ToUpper(trimmed))
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrInvalidTimeLabel, s)
	}
	return TimeLabel(t.Format(labelFormat)), nil
}

// NewTimeLabel formats t's time-of-day as a TimeLabel.
func NewTimeLabel(t time.Time) TimeLabel {
	return TimeLabel(t.Format(labelFormat))
}

func (l TimeLabel) String() string {
	return string(l)
}

// IsZero reports whether the label is empty.
func (l TimeLabel) IsZero() bool {
	return l == ""
}

// Minutes returns the minutes elapsed since midnight, or -1 for labels that
// do not parse.
func (l TimeLabel) Minutes() int {
	t, err := time.Parse(labelFormat, string(l))
	if err != nil {
		return -1
	}
	return t.Hour()*60 + t.Minute()
}

// Before orders labels chronologically. Unparseable labels sort last, by
// string, so output remains deterministic.
func (l TimeLabel) Before(other TimeLabel) bool {
	lm, om := l.Minutes(), other.Minutes()
	if lm == -1 && om == -1 {
		return l < other
	}
	if lm == -1 || om == -1 {
		return om == -1
	}
	return lm < om
}
