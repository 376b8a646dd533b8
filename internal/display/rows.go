package display

import (
	"bowlscal/internal/model"
)

// TBDDisplay is shown in the date column for matches awaiting a new date.
const TBDDisplay = "-date-TBD-"

// Row is one match formatted as plain table cells. Styling is the renderer's
// concern; these strings carry no markup.
type Row struct {
	Result   string
	Venue    string
	OurScore string
	OppScore string
	Opponent string
	Date     string
	Notes    string
}

// FormatRow formats one match for the results table.
func FormatRow(m model.Match, league *model.League, dir *model.Directory) Row {
	oppName, _ := dir.OpponentName(m)
	our, their := m.ScoreDisplay()

	return Row{
		Result:   string(m.Result()),
		Venue:    string(m.Venue),
		OurScore: our,
		OppScore: their,
		Opponent: oppName,
		Date:     formatDate(m, league),
		Notes:    m.Notes(),
	}
}

// Rows formats every match in the league, in season-file order.
func Rows(league *model.League, dir *model.Directory) []Row {
	rows := make([]Row, 0, len(league.Matches))
	for _, m := range league.Matches {
		rows = append(rows, FormatRow(m, league, dir))
	}
	return rows
}

// formatDate builds the date cell. Unscheduled matches get the TBD marker.
// The weekday appears only when it differs from the league's usual day,
// blank-padded otherwise so the column stays aligned; the time appears only
// when it differs from the league's default start.
func formatDate(m model.Match, league *model.League) string {
	at, ok := m.ScheduledAt()
	if !ok {
		return TBDDisplay
	}

	day := "   "
	if at.Format("Mon") != league.DefaultDay {
		day = at.Format("Mon")
	}
	cell := day + " " + at.Format("02-Jan")
	if m.EffectiveTime() != league.DefaultTime {
		cell += " " + m.EffectiveTime().String()
	}
	return cell
}
