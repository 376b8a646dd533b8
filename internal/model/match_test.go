package model

import (
	"strconv"
	"testing"
	"time"
)

func mustDate(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func TestPlayed(t *testing.T) {
	tests := []struct {
		name     string
		our, opp float64
		want     bool
	}{
		{"no scores", 0, 0, false},
		{"both played", 5, 2, true},
		{"we scored nothing", 0, 5, true},
		{"they scored nothing", 5, 0, true},
		{"fractional scores", 7.5, 6.5, true},
		{"fractional zero-zero is unplayed", 0.0, 0.0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := Match{OurScore: tt.our, OppScore: tt.opp}
			if got := m.Played(); got != tt.want {
				t.Errorf("Played() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestResult(t *testing.T) {
	tests := []struct {
		name     string
		our, opp float64
		want     Result
	}{
		{"unplayed", 0, 0, ResultUndecided},
		{"win", 5, 2, ResultWin},
		{"loss", 2, 5, ResultLoss},
		{"draw", 3, 3, ResultDraw},
		{"fractional win", 7.5, 6.5, ResultWin},
		{"fractional draw", 6.5, 6.5, ResultDraw},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := Match{OurScore: tt.our, OppScore: tt.opp}
			if got := m.Result(); got != tt.want {
				t.Errorf("Result() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestResultAntisymmetric(t *testing.T) {
	swapped := map[Result]Result{
		ResultWin:  ResultLoss,
		ResultLoss: ResultWin,
		ResultDraw: ResultDraw,
	}
	pairs := [][2]float64{{5, 2}, {2, 5}, {3, 3}, {7.5, 6.5}, {0.5, 0}}
	for _, p := range pairs {
		m := Match{OurScore: p[0], OppScore: p[1]}
		rev := Match{OurScore: p[1], OppScore: p[0]}
		if rev.Result() != swapped[m.Result()] {
			t.Errorf("scores %v-%v: %q reversed to %q", p[0], p[1], m.Result(), rev.Result())
		}
	}
}

func TestEffectiveDateAndTime(t *testing.T) {
	original := mustDate("2024-05-14")
	moved := mustDate("2024-06-01")
	originalTime := ClockTime{Hour: 18}
	movedTime := ClockTime{Hour: 19, Minute: 30}

	t.Run("no reschedule", func(t *testing.T) {
		m := Match{Date: original, StartTime: originalTime}
		date, ok := m.EffectiveDate()
		if !ok || !date.Equal(original) {
			t.Errorf("EffectiveDate() = %v, %v", date, ok)
		}
		if m.EffectiveTime() != originalTime {
			t.Errorf("EffectiveTime() = %v", m.EffectiveTime())
		}
	})

	t.Run("rescheduled date and time", func(t *testing.T) {
		m := Match{Date: original, StartTime: originalTime, NewDate: &moved, NewTime: &movedTime}
		date, ok := m.EffectiveDate()
		if !ok || !date.Equal(moved) {
			t.Errorf("EffectiveDate() = %v, %v", date, ok)
		}
		if m.EffectiveTime() != movedTime {
			t.Errorf("EffectiveTime() = %v", m.EffectiveTime())
		}
		at, ok := m.ScheduledAt()
		if !ok || !at.Equal(movedTime.On(moved)) {
			t.Errorf("ScheduledAt() = %v, %v", at, ok)
		}
	})

	t.Run("tbd reschedule", func(t *testing.T) {
		m := Match{Date: original, StartTime: originalTime, NewDateTBD: true}
		if _, ok := m.EffectiveDate(); ok {
			t.Error("EffectiveDate() ok for TBD match")
		}
		if _, ok := m.ScheduledAt(); ok {
			t.Error("ScheduledAt() ok for TBD match")
		}
	})
}

func TestOriginalAtIgnoresReschedule(t *testing.T) {
	original := mustDate("2024-05-14")
	moved := mustDate("2024-06-01")
	movedTime := ClockTime{Hour: 19, Minute: 30}

	base := Match{Date: original, StartTime: ClockTime{Hour: 18}}
	want := base.OriginalAt()

	variants := []Match{
		{Date: original, StartTime: ClockTime{Hour: 18}, NewDate: &moved},
		{Date: original, StartTime: ClockTime{Hour: 18}, NewDate: &moved, NewTime: &movedTime},
		{Date: original, StartTime: ClockTime{Hour: 18}, NewDateTBD: true},
	}
	for _, m := range variants {
		if !m.OriginalAt().Equal(want) {
			t.Errorf("OriginalAt() = %v, want %v", m.OriginalAt(), want)
		}
	}
	if !want.Equal(time.Date(2024, 5, 14, 18, 0, 0, 0, time.UTC)) {
		t.Errorf("OriginalAt() = %v", want)
	}
}

func TestScoreDisplay(t *testing.T) {
	tests := []struct {
		name               string
		our, opp           float64
		wantOur, wantTheir string
	}{
		{"unplayed is blank", 0, 0, "", ""},
		{"whole numbers drop decimals", 5, 2, "5", "2"},
		{"fractions kept", 7.5, 0.5, "7.5", "0.5"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := Match{OurScore: tt.our, OppScore: tt.opp}
			our, their := m.ScoreDisplay()
			if our != tt.wantOur || their != tt.wantTheir {
				t.Errorf("ScoreDisplay() = %q, %q; want %q, %q", our, their, tt.wantOur, tt.wantTheir)
			}
		})
	}
}

func TestScoreDisplayRoundTrip(t *testing.T) {
	for _, score := range []float64{5, 2, 0.5, 7.5, 12, 100.25} {
		m := Match{OurScore: score, OppScore: 1}
		formatted, _ := m.ScoreDisplay()
		parsed, err := strconv.ParseFloat(formatted, 64)
		if err != nil {
			t.Fatalf("parse %q: %v", formatted, err)
		}
		if parsed != score {
			t.Errorf("round trip %v -> %q -> %v", score, formatted, parsed)
		}
	}
}

func TestParseClockTime(t *testing.T) {
	tests := []struct {
		in      string
		want    ClockTime
		wantErr bool
	}{
		{in: "18:00", want: ClockTime{Hour: 18}},
		{in: "9:30", want: ClockTime{Hour: 9, Minute: 30}},
		{in: "00:00", want: ClockTime{}},
		{in: "18:00:00", want: ClockTime{Hour: 18}},
		{in: "9:30:15", want: ClockTime{Hour: 9, Minute: 30}},
		{in: "18:00:61", wantErr: true},
		{in: "18:00:00:00", wantErr: true},
		{in: "24:00", wantErr: true},
		{in: "18:60", wantErr: true},
		{in: "1800", wantErr: true},
		{in: "six pm", wantErr: true},
	}
	for _, tt := range tests {
		got, err := ParseClockTime(tt.in)
		if tt.wantErr {
			if err == nil {
				t.Errorf("ParseClockTime(%q): expected error", tt.in)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseClockTime(%q): %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseClockTime(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
