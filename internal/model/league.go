package model

import (
	"time"

	"github.com/cockroachdb/errors"

	"bowlscal/internal/config"
)

// tbdSentinel is the newdate value meaning "rescheduled, date not yet known".
const tbdSentinel = "tbd"

const dateLayout = "2006-01-02"

// League is all the data for a single team's season: the shared defaults and
// the ordered list of matches. Built once per run, read-only afterward.
type League struct {
	MyTeamID    string
	Duration    time.Duration // default event length
	DefaultDay  string        // e.g. "Tue"; non-standard days are highlighted
	DefaultTime ClockTime     // fallback start for matches without their own
	Matches     []Match
}

// LeagueFromConfig builds a League from the parsed games file. Any malformed
// entry fails the whole season; no partial League is produced.
func LeagueFromConfig(cfg *config.Games) (*League, error) {
	if cfg.Me == "" {
		return nil, errors.New("games file: missing me")
	}
	if cfg.Duration <= 0 {
		return nil, errors.New("games file: missing or invalid duration")
	}
	if cfg.Day == "" {
		return nil, errors.New("games file: missing day")
	}
	defaultTime, err := ParseClockTime(cfg.StartTime)
	if err != nil {
		return nil, errors.Wrap(err, "games file: start_time")
	}

	matches := make([]Match, 0, len(cfg.Matches))
	for i, entry := range cfg.Matches {
		match, err := matchFromEntry(entry, defaultTime)
		if err != nil {
			return nil, errors.Wrapf(err, "match %d", i)
		}
		matches = append(matches, match)
	}

	return &League{
		MyTeamID:    cfg.Me,
		Duration:    time.Duration(cfg.Duration * float64(time.Hour)),
		DefaultDay:  cfg.Day,
		DefaultTime: defaultTime,
		Matches:     matches,
	}, nil
}

func matchFromEntry(entry config.MatchEntry, defaultTime ClockTime) (Match, error) {
	var venue Venue
	var oppID string
	switch {
	case entry.Home != "" && entry.Away != "":
		return Match{}, errors.New("both home and away set")
	case entry.Home != "":
		venue, oppID = VenueHome, entry.Home
	case entry.Away != "":
		venue, oppID = VenueAway, entry.Away
	default:
		return Match{}, errors.New("neither home nor away set")
	}

	if entry.Date == "" {
		return Match{}, errors.New("missing date")
	}
	date, err := time.Parse(dateLayout, entry.Date)
	if err != nil {
		return Match{}, errors.Wrap(err, "date")
	}

	// Per-match start_time overrides the league default; a team-level default
	// start time is deliberately not consulted.
	startTime := defaultTime
	if entry.StartTime != "" {
		startTime, err = ParseClockTime(entry.StartTime)
		if err != nil {
			return Match{}, errors.Wrap(err, "start_time")
		}
	}

	match := Match{
		Venue:          venue,
		OpponentID:     oppID,
		Date:           date,
		StartTime:      startTime,
		OurScore:       entry.OurScore,
		OppScore:       entry.OppScore,
		SubTeam:        entry.Team,
		Label:          entry.Label,
		NeutralVenueID: entry.Location,
	}

	switch entry.NewDate {
	case "":
	case tbdSentinel:
		match.NewDateTBD = true
	default:
		newDate, err := time.Parse(dateLayout, entry.NewDate)
		if err != nil {
			return Match{}, errors.Wrap(err, "newdate")
		}
		match.NewDate = &newDate
	}

	if entry.NewTime != "" {
		newTime, err := ParseClockTime(entry.NewTime)
		if err != nil {
			return Match{}, errors.Wrap(err, "newtime")
		}
		match.NewTime = &newTime
	}

	return match, nil
}
