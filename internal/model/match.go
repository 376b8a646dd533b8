package model

import (
	"strconv"
	"strings"
	"time"
)

// Venue is which side's ground nominally hosts a match.
type Venue string

const (
	VenueHome Venue = "home"
	VenueAway Venue = "away"
)

// Result is the outcome of a match from our side's point of view.
type Result string

const (
	ResultWin       Result = "W"
	ResultLoss      Result = "L"
	ResultDraw      Result = "D"
	ResultUndecided Result = " "
)

// Match is a single scheduled or played fixture. Date and StartTime hold the
// schedule as originally entered and never change; reschedules live in
// NewDate/NewTime so the original values stay available for identity.
type Match struct {
	Venue      Venue
	OpponentID string // key into the Directory

	Date      time.Time // original scheduled date
	StartTime ClockTime // original scheduled start

	// 0-0 is the unplayed sentinel; a genuine 0-0 result is not possible in
	// bowls. Scores may be fractional where league rules split points.
	OurScore float64
	OppScore float64

	NewDate    *time.Time // reschedule override, nil when not moved
	NewDateTBD bool       // moved, but the new date is not yet decided
	NewTime    *ClockTime

	SubTeam        string // e.g. "A", "B" for multi-side clubs
	Label          string // cup round, note
	NeutralVenueID string // directory ID whose ground is used instead
}

// Played reports whether the match has been played.
func (m Match) Played() bool {
	return !(m.OurScore == 0 && m.OppScore == 0)
}

// Result returns the match outcome, ResultUndecided for unplayed matches.
func (m Match) Result() Result {
	if !m.Played() {
		return ResultUndecided
	}
	switch {
	case m.OurScore > m.OppScore:
		return ResultWin
	case m.OurScore < m.OppScore:
		return ResultLoss
	default:
		return ResultDraw
	}
}

func (m Match) IsHome() bool {
	return m.Venue == VenueHome
}

// ClubInternal reports whether this fixture is a club-internal competition
// rather than a game against an external opponent.
func (m Match) ClubInternal() bool {
	return strings.HasPrefix(m.OpponentID, clubPrefix)
}

// EffectiveDate is the date the match will actually be played. The second
// return is false when a reschedule is pending with no date decided yet.
func (m Match) EffectiveDate() (time.Time, bool) {
	if m.NewDateTBD {
		return time.Time{}, false
	}
	if m.NewDate != nil {
		return *m.NewDate, true
	}
	return m.Date, true
}

// EffectiveTime is the start time the match will actually use.
func (m Match) EffectiveTime() ClockTime {
	if m.NewTime != nil {
		return *m.NewTime
	}
	return m.StartTime
}

// ScheduledAt combines EffectiveDate and EffectiveTime. The second return is
// false for matches with no confirmed date; callers skip those rather than
// scheduling anything.
func (m Match) ScheduledAt() (time.Time, bool) {
	date, ok := m.EffectiveDate()
	if !ok {
		return time.Time{}, false
	}
	return m.EffectiveTime().On(date), true
}

// OriginalAt is the original date+time regardless of any reschedule. Calendar
// UIDs are derived from it so a moved match keeps its identity.
func (m Match) OriginalAt() time.Time {
	return m.StartTime.On(m.Date)
}

// ScoreDisplay returns the two scores formatted for output, or empty strings
// when the match is unplayed. Whole numbers drop the trailing ".0".
func (m Match) ScoreDisplay() (string, string) {
	if !m.Played() {
		return "", ""
	}
	return formatScore(m.OurScore), formatScore(m.OppScore)
}

// Notes returns any label text attached to the match.
func (m Match) Notes() string {
	return m.Label
}

func formatScore(score float64) string {
	return strconv.FormatFloat(score, 'f', -1, 64)
}
