package model

import (
	"strings"

	"github.com/cockroachdb/errors"

	"bowlscal/internal/config"
)

const (
	// clubPrefix marks club-internal competitions; every such ID resolves to
	// the single clubCompID directory entry.
	clubPrefix = "Club"
	clubCompID = "CLUBCOMP"

	// placeholderLocation is the location given to teams we know nothing about.
	placeholderLocation = "TBD"
)

// Team is one club side and its home ground.
type Team struct {
	ID       string
	Name     string
	Location string
}

// Placeholder reports whether this team was synthesized for an ID missing
// from the directory.
func (t Team) Placeholder() bool {
	return strings.HasPrefix(t.Name, "***")
}

// Directory looks up teams by ID, built once per run from the teams YAML file.
type Directory struct {
	teams map[string]Team
}

// DirectoryFromConfig builds a Directory from the parsed teams file. Every
// entry must carry both a name and a location.
func DirectoryFromConfig(data map[string]config.TeamEntry) (*Directory, error) {
	teams := make(map[string]Team, len(data))
	for id, entry := range data {
		if entry.Name == "" {
			return nil, errors.Newf("team %q: missing name", id)
		}
		if entry.Location == "" {
			return nil, errors.Newf("team %q: missing location", id)
		}
		teams[id] = Team{ID: id, Name: entry.Name, Location: entry.Location}
	}
	return &Directory{teams: teams}, nil
}

// Get returns the Team for teamID. Lookups are total: club-internal
// competitions are normalised to the single CLUBCOMP entry first, and an ID
// with no entry yields a placeholder team so a season file can be processed
// before all its opponents are known.
func (d *Directory) Get(teamID string) Team {
	lookupID := teamID
	if strings.HasPrefix(teamID, clubPrefix) {
		lookupID = clubCompID
	}
	if team, ok := d.teams[lookupID]; ok {
		return team
	}
	return Team{ID: teamID, Name: "***" + teamID + "***", Location: placeholderLocation}
}

// OpponentName resolves the display name for a match's opponent, shared by
// the calendar and table output. The second return is true when the opponent
// is unknown to the directory, so callers can highlight it.
func (d *Directory) OpponentName(m Match) (string, bool) {
	team := d.Get(m.OpponentID)
	if team.Placeholder() {
		// Marker stripped; the raw ID is the only name we have.
		return m.OpponentID, true
	}
	if m.ClubInternal() {
		// Internal comps have no real opponent; the competition name is the content.
		return m.OpponentID, false
	}
	if m.SubTeam != "" {
		return team.Name + " " + m.SubTeam, false
	}
	return team.Name, false
}
