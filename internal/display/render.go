package display

import (
	"fmt"
	"io"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"bowlscal/internal/model"
)

// Render writes the full results table to w. All suppression and formatting
// logic lives in the plain rows; this only adds layout and color.
func Render(w io.Writer, league *model.League, dir *model.Directory) {
	if len(league.Matches) == 0 {
		fmt.Fprintln(w, "No results found.")
		return
	}

	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.Style().Color.Header = text.Colors{text.Bold, text.FgMagenta}
	t.Style().Format.Header = text.FormatDefault

	dateHeader := "Date       " + strings.Replace(league.DefaultTime.String(), ":", "-", 1)
	t.AppendHeader(table.Row{"R", "Venue", "Us", "Opp", "Opponent", dateHeader, "Note"})

	for _, m := range league.Matches {
		row := FormatRow(m, league, dir)
		t.AppendRow(table.Row{
			styleResult(row.Result),
			styleVenue(row.Venue),
			row.OurScore,
			row.OppScore,
			styleOpponent(row.Opponent, m, dir),
			row.Date,
			row.Notes,
		})
	}

	t.Render()
}

func styleResult(result string) string {
	switch result {
	case string(model.ResultWin):
		return text.FgGreen.Sprint("W ✔")
	case string(model.ResultLoss):
		return text.FgRed.Sprint("L")
	default:
		return result
	}
}

func styleVenue(venue string) string {
	if venue == string(model.VenueHome) {
		return text.FgRed.Sprint(venue)
	}
	return text.FgBlue.Sprint(venue)
}

func styleOpponent(name string, m model.Match, dir *model.Directory) string {
	if _, unknown := dir.OpponentName(m); unknown {
		return text.FgRed.Sprint(name)
	}
	return name
}
