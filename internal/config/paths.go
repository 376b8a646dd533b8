package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/cockroachdb/errors"
	"github.com/joho/godotenv"
)

// Paths locates the season data files and the calendar output directory.
type Paths struct {
	// DataDir is the base directory holding one subdirectory per club.
	DataDir string
	// OutputDir is where generated .ics files are written.
	OutputDir string
}

// LoadPaths resolves Paths from the environment. A .env file in the working
// directory is read first if present, so local runs need no exported
// variables. ICAL_DATAPATH is required; ICAL_OUTPUT defaults to an "ics"
// directory under the data path.
func LoadPaths() (*Paths, error) {
	// Missing .env is fine; explicit env vars still apply.
	_ = godotenv.Load()

	dataDir := os.Getenv("ICAL_DATAPATH")
	if dataDir == "" {
		return nil, errors.New("ICAL_DATAPATH is not set")
	}

	outputDir := os.Getenv("ICAL_OUTPUT")
	if outputDir == "" {
		outputDir = filepath.Join(dataDir, "ics")
	}

	return &Paths{DataDir: dataDir, OutputDir: outputDir}, nil
}

// TeamsFile is the path of the teams file for a club.
func (p *Paths) TeamsFile(club string) string {
	return filepath.Join(p.DataDir, club, fmt.Sprintf("%s_teams.yml", club))
}

// GamesFile is the path of the games file for a club and season year.
func (p *Paths) GamesFile(club, year string) string {
	return filepath.Join(p.DataDir, club, fmt.Sprintf("%s_games_%s.yml", club, year))
}

// OutputFile is the path the generated calendar is written to.
func (p *Paths) OutputFile(club, year string) string {
	return filepath.Join(p.OutputDir, fmt.Sprintf("%s_games_%s.ics", club, year))
}

// WriteOutput writes data to path, creating the parent directory if needed.
// The write goes through a temp file and rename so a failed run never leaves
// a truncated calendar behind.
func WriteOutput(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return errors.Wrap(err, "create output dir")
	}

	tmp, err := os.CreateTemp(dir, ".bowlscal-*.tmp")
	if err != nil {
		return errors.Wrap(err, "create temp file")
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return errors.Wrap(err, "write temp file")
	}
	if err := tmp.Close(); err != nil {
		return errors.Wrap(err, "close temp file")
	}
	if err := os.Chmod(tmpName, 0o644); err != nil {
		return errors.Wrap(err, "chmod temp file")
	}
	if err := os.Rename(tmpName, path); err != nil {
		return errors.Wrap(err, "rename temp file")
	}
	return nil
}
