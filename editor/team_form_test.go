package editor

import (
	"errors"
	"strconv"
	"testing"

	"github.com/Dosada05/scouting-system/models"
)

func TestNextFreeNumber(t *testing.T) {
	tests := []struct {
		name    string
		numbers []string
		want    string
	}{
		{"empty", nil, "2"},
		{"gap", []string{"2", "3", "5"}, "4"},
		{"contiguous", []string{"2", "3", "4"}, "5"},
		{"one is not special", []string{"1"}, "2"},
		{"garbage ignored", []string{"x", "", " 2 "}, "3"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NextFreeNumber(tt.numbers); got != tt.want {
				t.Errorf("NextFreeNumber(%v)=%s want %s", tt.numbers, got, tt.want)
			}
		})
	}
}

func TestNextFreeNumberCapped(t *testing.T) {
	var all []string
	for i := 2; i <= 150; i++ {
		all = append(all, strconv.Itoa(i))
	}
	if got := NextFreeNumber(all); got != "100" {
		t.Errorf("got %s want 100", got)
	}
}

func TestTeamFormRows(t *testing.T) {
	f := NewTeamForm()
	if f.KitColor != DefaultKitColor {
		t.Fatalf("kit=%s", f.KitColor)
	}
	f.AddRow()
	f.AddRow()
	f.AddRow()
	if got := f.Numbers(); got[0] != "2" || got[1] != "3" || got[2] != "4" {
		t.Fatalf("numbers=%v", got)
	}
	if err := f.RemoveRow(1); err != nil {
		t.Fatal(err)
	}
	f.AddRow()
	if got := f.Rows[2].Number; got != "3" {
		t.Errorf("reused number=%s want 3", got)
	}
	if err := f.RemoveRow(7); !errors.Is(err, ErrRowOutOfRange) {
		t.Errorf("err=%v", err)
	}
}

func TestSetRowSearchExactMatch(t *testing.T) {
	participants := []models.Player{
		{ID: "p1", FirstName: "Jonas", LastName: "Weber"},
		{ID: "p2", FirstName: "Jonas", LastName: "Webers"},
	}
	f := NewTeamForm()
	f.AddRow()

	if err := f.SetRowSearch(0, "jonas web", participants); err != nil {
		t.Fatal(err)
	}
	if f.Rows[0].PlayerID != "" {
		t.Errorf("partial match resolved to %s", f.Rows[0].PlayerID)
	}
	_ = f.SetRowSearch(0, "  JONAS WEBER ", participants)
	if f.Rows[0].PlayerID != "p1" {
		t.Errorf("playerId=%q want p1", f.Rows[0].PlayerID)
	}
}

func TestTeamFormTeam(t *testing.T) {
	f := TeamForm{
		Name: "  Red  ",
		Rows: []RosterRow{
			{Search: "a", PlayerID: "p1", Number: "7"},
			{Search: "unknown", Number: "8"},
		},
	}
	team := f.Team()
	if team.Name != "Red" || team.KitColor != DefaultKitColor {
		t.Errorf("team=%+v", team)
	}
	if len(team.Roster) != 1 || team.Roster[0] != (models.RosterEntry{PlayerID: "p1", Number: "7"}) {
		t.Errorf("roster=%+v", team.Roster)
	}
}

func TestTeamFormValidate(t *testing.T) {
	players := []models.Player{{ID: "p1"}}
	if err := (TeamForm{Name: " "}).Validate(players); !errors.Is(err, ErrTeamNameRequired) {
		t.Errorf("blank name: %v", err)
	}
	if err := (TeamForm{Name: "A"}).Validate(nil); !errors.Is(err, ErrNoParticipants) {
		t.Errorf("no participants: %v", err)
	}
	if err := (TeamForm{Name: "A"}).Validate(players); err != nil {
		t.Errorf("valid: %v", err)
	}
}
