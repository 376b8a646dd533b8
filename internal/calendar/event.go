package calendar

import (
	"fmt"
	"strings"
	"time"

	"github.com/jonboulle/clockwork"

	appLog "bowlscal/internal/log"
	"bowlscal/internal/model"
)

const (
	calendarDomain = "mc-williams.co.uk"

	// Players are expected to arrive a little before the start.
	preStartBuffer = 10 * time.Minute
	alarmOffset    = -time.Hour
)

const uidTimeLayout = "200601021504"

// Alarm is the single reminder attached to every event.
type Alarm struct {
	Action      string
	Description string
	Trigger     time.Duration
}

// Event is one calendar entry for a scheduled match, ready for serialization.
// It is recomputed every run; the UID is its only persistent identity.
type Event struct {
	UID         string
	Location    string
	Summary     string
	Description string
	Start       time.Time
	End         time.Time
	Stamp       time.Time
	Alarm       Alarm
}

// BuildEvent derives the calendar event for one match. The second return is
// false for matches with no confirmed date; those stay out of the calendar
// (but still appear in the results table).
func BuildEvent(m model.Match, league *model.League, dir *model.Directory, now time.Time) (Event, bool) {
	matchAt, ok := m.ScheduledAt()
	if !ok {
		return Event{}, false
	}

	oppName, _ := dir.OpponentName(m)
	myTeam := dir.Get(league.MyTeamID)

	event := Event{
		UID:         eventUID(m, league.MyTeamID),
		Location:    eventLocation(m, dir, myTeam),
		Summary:     eventSummary(m, myTeam.Name, oppName),
		Description: eventDescription(m, oppName),
		Start:       matchAt.Add(-preStartBuffer),
		End:         matchAt.Add(league.Duration),
		Stamp:       now,
		Alarm: Alarm{
			Action:      "DISPLAY",
			Description: "Reminder",
			Trigger:     alarmOffset,
		},
	}
	appLog.Debug("built event", "uid", event.UID, "summary", event.Summary)
	return event, true
}

// BuildEvents derives events for every schedulable match in the league, in
// season-file order.
func BuildEvents(league *model.League, dir *model.Directory, clock clockwork.Clock) []Event {
	if len(league.Matches) == 0 {
		appLog.Info("no matches found, calendar will be empty")
	}

	now := clock.Now().UTC()
	events := make([]Event, 0, len(league.Matches))
	for _, m := range league.Matches {
		event, ok := BuildEvent(m, league, dir, now)
		if !ok {
			appLog.Debug("skipping unscheduled match", "opponent", m.OpponentID)
			continue
		}
		events = append(events, event)
	}
	return events
}

// eventUID builds a stable unique ID for a match. It uses the original
// date/time, never the rescheduled one, so moving a match updates the
// existing calendar entry instead of duplicating it. The label disambiguates
// two fixtures sharing an original date, e.g. a league and cup double-header.
func eventUID(m model.Match, myTeamID string) string {
	team := strings.ReplaceAll(myTeamID, " ", "")
	label := strings.ReplaceAll(m.Label, " ", "")
	return fmt.Sprintf("%s-%s%s@%s", team, m.OriginalAt().Format(uidTimeLayout), label, calendarDomain)
}

func eventLocation(m model.Match, dir *model.Directory, myTeam model.Team) string {
	if m.NeutralVenueID != "" {
		return dir.Get(m.NeutralVenueID).Location
	}
	if m.IsHome() {
		return myTeam.Location
	}
	return dir.Get(m.OpponentID).Location
}

func eventSummary(m model.Match, myName, oppName string) string {
	// Internal comps have no opposing side to phrase as "v".
	if m.ClubInternal() {
		return m.OpponentID
	}

	home, away := myName, "("+oppName+")"
	if !m.IsHome() {
		home, away = "("+oppName+")", myName
	}
	names := home + " v " + away

	if !m.Played() {
		return strings.TrimRight(names+" "+m.Label, " ")
	}
	our, their := m.ScoreDisplay()
	return strings.TrimRight(fmt.Sprintf("%s %s (%s-%s) %s", names, m.Result(), our, their, m.Label), " ")
}

func eventDescription(m model.Match, oppName string) string {
	venueLabel := string(m.Venue)
	if m.NeutralVenueID != "" {
		venueLabel = "neutral"
	}
	return strings.TrimSpace(fmt.Sprintf("%s %s (%s)", m.Result(), venueLabel, oppName))
}
