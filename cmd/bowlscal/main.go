package main

import (
	"flag"
	"os"

	"github.com/jonboulle/clockwork"

	"bowlscal/internal/calendar"
	"bowlscal/internal/config"
	"bowlscal/internal/display"
	appLog "bowlscal/internal/log"
	"bowlscal/internal/model"
)

// flagConfig holds CLI flag values.
type flagConfig struct {
	team     string
	year     string
	teamData string
	verbose  bool
}

func main() {
	flags := parseFlags()
	if flags.verbose {
		appLog.SetLevel(appLog.LevelDebug)
	}

	team := flags.team
	if team == "" {
		team = os.Getenv("ICAL_TEAM")
	}
	year := flags.year
	if year == "" {
		year = os.Getenv("ICAL_YEAR")
	}
	if team == "" || year == "" {
		appLog.Error("team and year are required", nil,
			"hint", "pass -team/-year or set ICAL_TEAM/ICAL_YEAR")
		os.Exit(1)
	}
	// Some clubs share one teams file across several leagues.
	teamData := flags.teamData
	if teamData == "" {
		teamData = team
	}

	appLog.Info("generating calendar", "team", team, "year", year, "team_data", teamData)

	paths, err := config.LoadPaths()
	if err != nil {
		appLog.Error("failed to resolve data paths", err)
		os.Exit(1)
	}

	teamsData, err := config.LoadTeams(paths.TeamsFile(teamData))
	if err != nil {
		appLog.Error("failed to load teams file", err, "path", paths.TeamsFile(teamData))
		os.Exit(1)
	}
	gamesData, err := config.LoadGames(paths.GamesFile(team, year))
	if err != nil {
		appLog.Error("failed to load games file", err, "path", paths.GamesFile(team, year))
		os.Exit(1)
	}

	dir, err := model.DirectoryFromConfig(teamsData)
	if err != nil {
		appLog.Error("invalid teams file", err)
		os.Exit(1)
	}
	league, err := model.LeagueFromConfig(gamesData)
	if err != nil {
		appLog.Error("invalid games file", err)
		os.Exit(1)
	}

	display.Render(os.Stdout, league, dir)

	events := calendar.BuildEvents(league, dir, clockwork.NewRealClock())
	outPath := paths.OutputFile(team, year)
	if err := config.WriteOutput(outPath, []byte(calendar.Serialize(events))); err != nil {
		appLog.Error("failed to write calendar", err, "path", outPath)
		os.Exit(1)
	}

	appLog.Info("calendar written", "path", outPath, "events", len(events))
}

func parseFlags() flagConfig {
	var cfg flagConfig

	flag.StringVar(&cfg.team, "team", "", "Team name used to locate the games file (falls back to ICAL_TEAM)")
	flag.StringVar(&cfg.year, "year", "", "Season year, e.g. 2024 (falls back to ICAL_YEAR)")
	flag.StringVar(&cfg.teamData, "teamdata", "", "Club name used to locate the teams file (defaults to -team)")
	flag.BoolVar(&cfg.verbose, "v", false, "Enable debug logging")

	flag.Parse()

	return cfg
}
