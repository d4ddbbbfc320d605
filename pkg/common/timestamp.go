package common

import (
	"time"
)

// CommitTimeLayout is the rendering used in commit records and log output.
const CommitTimeLayout = "Mon Jan 02 15:04:05 2006 -0700"

// Clock supplies the creation time of new commits. Tests inject FixedClock
// so commit ids are reproducible.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the wall clock.
type SystemClock struct{}

func (SystemClock) Now() time.Time { return time.Now() }

// FixedClock always returns T. Advance moves it forward by d.
type FixedClock struct {
	T time.Time
}

func (c *FixedClock) Now() time.Time { return c.T }

// Advance moves the clock forward.
func (c *FixedClock) Advance(d time.Duration) { c.T = c.T.Add(d) }

// FormatCommitTime renders t in CommitTimeLayout, keeping its zone.
func FormatCommitTime(t time.Time) string {
	return t.Format(CommitTimeLayout)
}

// ParseCommitTime is the inverse of FormatCommitTime.
func ParseCommitTime(s string) (time.Time, error) {
	return time.Parse(CommitTimeLayout, s)
}

// EpochTimestamp is the timestamp carried by every repository's initial
// commit: the Unix epoch rendered in UTC.
func EpochTimestamp() string {
	return FormatCommitTime(time.Unix(0, 0).UTC())
}
