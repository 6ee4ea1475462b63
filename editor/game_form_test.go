package editor

import (
	"errors"
	"testing"
	"time"

	"github.com/Dosada05/scouting-system/models"
)

var cup = models.Tournament{ID: "t1", Start: "2024-06-01", End: "2024-06-03"}

func TestGameFormRequestKickoffRange(t *testing.T) {
	tests := []struct {
		name    string
		date    string
		wantErr error
	}{
		{"before start", "2024-05-31", ErrKickoffOutOfRange},
		{"first day", "2024-06-01", nil},
		{"middle", "2024-06-02", nil},
		{"last day", "2024-06-03", nil},
		{"after end", "2024-06-05", ErrKickoffOutOfRange},
		{"not a date", "06/02/2024", ErrInvalidKickoff},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := GameForm{TeamAID: "a", Date: tt.date, Time: "12:00"}
			_, err := f.Request(cup, time.UTC)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("err=%v want %v", err, tt.wantErr)
			}
		})
	}
}

func TestGameFormRequestBody(t *testing.T) {
	f := GameForm{TeamAID: "a", Date: "2024-06-02", Time: "14:30", Note: " "}
	req, err := f.Request(cup, time.UTC)
	if err != nil {
		t.Fatal(err)
	}
	if req.Kickoff == nil || *req.Kickoff != "2024-06-02T14:30:00Z" {
		t.Errorf("kickoff=%v", req.Kickoff)
	}
	if req.TeamBID != nil || req.Note != nil || req.PitchID != nil {
		t.Errorf("blank fields must be null: %+v", req)
	}

	f.Time = ""
	req, _ = f.Request(cup, time.UTC)
	if *req.Kickoff != "2024-06-02T00:00:00Z" {
		t.Errorf("empty time kickoff=%s", *req.Kickoff)
	}

	f.Date = ""
	req, _ = f.Request(cup, time.UTC)
	if req.Kickoff != nil {
		t.Errorf("no date must mean no kickoff, got %s", *req.Kickoff)
	}
}

func TestGameFormRequiresTeamA(t *testing.T) {
	_, err := GameForm{Date: "2024-06-02"}.Request(cup, time.UTC)
	if !errors.Is(err, ErrTeamARequired) {
		t.Errorf("err=%v", err)
	}
}

func TestGameFormRoundTripInZone(t *testing.T) {
	berlin := time.FixedZone("CEST", 2*60*60)
	f := GameForm{TeamAID: "a", TeamBID: "b", Date: "2024-06-01", Time: "01:30"}
	req, err := f.Request(cup, berlin)
	if err != nil {
		t.Fatal(err)
	}
	if *req.Kickoff != "2024-05-31T23:30:00Z" {
		t.Fatalf("kickoff=%s", *req.Kickoff)
	}

	g := models.Game{ID: "g1", TeamAID: "a", TeamBID: req.TeamBID, Kickoff: req.Kickoff}
	back := GameFormFromGame(g, cup, berlin)
	if back.Date != "2024-06-01" || back.Time != "01:30" || back.TeamBID != "b" || !back.Editing() {
		t.Errorf("round trip=%+v", back)
	}
}

func TestNewGameFormDefaults(t *testing.T) {
	f := NewGameForm(cup)
	if f.Date != "2024-06-01" || f.Time != DefaultKickoffTime || f.Editing() {
		t.Errorf("form=%+v", f)
	}
}

func TestParseKickoffNaive(t *testing.T) {
	k, err := ParseKickoff("2024-06-02T10:00:00")
	if err != nil {
		t.Fatal(err)
	}
	if !k.Equal(time.Date(2024, 6, 2, 10, 0, 0, 0, time.UTC)) {
		t.Errorf("k=%v", k)
	}
}
