package config

import (
	"os"

	"github.com/cockroachdb/errors"
	"gopkg.in/yaml.v3"
)

// TeamEntry is one team in the teams YAML file.
//
// Teams carry no default start time of their own; match start times come
// from the games file only.
type TeamEntry struct {
	Name     string `yaml:"name"`
	Location string `yaml:"location"`
}

// MatchEntry is one fixture in the games YAML file. Exactly one of Home/Away
// must be set; it names the opponent and fixes which side hosts.
type MatchEntry struct {
	Home      string  `yaml:"home"`
	Away      string  `yaml:"away"`
	Date      string  `yaml:"date"`
	StartTime string  `yaml:"start_time"` // overrides the league default
	OurScore  float64 `yaml:"our_score"`
	OppScore  float64 `yaml:"opp_score"`
	NewDate   string  `yaml:"newdate"` // rescheduled date, or "tbd"
	NewTime   string  `yaml:"newtime"`
	Team      string  `yaml:"team"`     // opponent's sub-team, e.g. "A"
	Label     string  `yaml:"label"`    // cup round, note
	Location  string  `yaml:"location"` // neutral venue team ID
}

// Games is the top-level games YAML file: one team's season in one league.
type Games struct {
	Me        string       `yaml:"me"`
	Duration  float64      `yaml:"duration"` // hours
	Day       string       `yaml:"day"`      // usual match day, e.g. "Tue"
	StartTime string       `yaml:"start_time"`
	Matches   []MatchEntry `yaml:"matches"`
}

// LoadGames loads and parses a games YAML file.
func LoadGames(path string) (*Games, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "read games file")
	}
	var games Games
	if err := yaml.Unmarshal(data, &games); err != nil {
		return nil, errors.Wrapf(err, "parse games file %s", path)
	}
	return &games, nil
}

// LoadTeams loads and parses a teams YAML file.
func LoadTeams(path string) (map[string]TeamEntry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "read teams file")
	}
	teams := make(map[string]TeamEntry)
	if err := yaml.Unmarshal(data, &teams); err != nil {
		return nil, errors.Wrapf(err, "parse teams file %s", path)
	}
	return teams, nil
}
