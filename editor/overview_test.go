package editor

import (
	"strings"
	"testing"
	"time"

	"github.com/Dosada05/scouting-system/models"
)

func TestBuildOverview(t *testing.T) {
	tour := models.Tournament{
		ID:           "t1",
		Participants: []string{"p2", "p1", "ghost"},
		Teams: []models.Team{{
			ID:   "red",
			Name: "Red",
			Roster: []models.RosterEntry{
				{PlayerID: "p1", Number: "2"},
				{PlayerID: "gone", Number: "3"},
			},
		}},
	}
	players := []models.Player{
		{ID: "p1", FirstName: "Lena", LastName: "Kurz"},
		{ID: "p2", FirstName: "Ole", LastName: "Brandt"},
	}
	evals := map[string][]models.Evaluation{
		"p1": {
			{EventID: "t1", RatingTechnique: 5, RatingPhysical: 5, RatingIntelligence: 5, RatingMentality: 5, RatingImpact: 5},
			{EventID: "t1", RatingTechnique: 3, RatingPhysical: 3, RatingIntelligence: 3, RatingMentality: 3, RatingImpact: 3},
			{EventID: "other", RatingTechnique: 1, RatingPhysical: 1, RatingIntelligence: 1, RatingMentality: 1, RatingImpact: 1},
		},
	}

	ov := BuildOverview(tour, players, evals)

	if len(ov.Participants) != 2 || ov.Participants[0].Player.ID != "p1" {
		t.Fatalf("participants=%+v", ov.Participants)
	}
	lena := ov.Participants[0]
	if lena.Evaluations != 3 || lena.Average != 3 {
		t.Errorf("lena=%+v", lena)
	}
	if ov.Participants[1].Evaluations != 0 {
		t.Errorf("ole=%+v", ov.Participants[1])
	}
	if ov.Evaluations != 3 {
		t.Errorf("evaluations=%d", ov.Evaluations)
	}
	members := ov.Teams[0].Members
	if !members[0].Known || members[0].Name != "Lena Kurz" {
		t.Errorf("member0=%+v", members[0])
	}
	if members[1].Known || members[1].Name != "gone" {
		t.Errorf("member1=%+v", members[1])
	}
}

func TestParseTab(t *testing.T) {
	if ParseTab("games") != TabGames || ParseTab("nope") != TabOverview {
		t.Error("ParseTab")
	}
	if got := TabTeams.Path("t1"); got != "/tournaments/t1/teams" {
		t.Errorf("path=%s", got)
	}
	if got := TabOverview.Path("t1"); got != "/tournaments/t1" {
		t.Errorf("path=%s", got)
	}
}

func TestDescribeGame(t *testing.T) {
	pitch := "p1"
	kickoff := "2024-06-02T10:00:00Z"
	teamB := "blue"
	tour := models.Tournament{
		Teams: []models.Team{{ID: "red", Name: "Red"}, {ID: "blue", Name: "Blue"}},
		Venue: &models.Venue{Pitches: []models.Pitch{{ID: "p1", Label: "Main"}}},
	}

	training := DescribeGame(models.Game{TeamAID: "red"}, tour, time.UTC)
	if !training.Training || training.TeamA != "Red" || training.TeamB != "" || training.Kickoff != "" {
		t.Errorf("training=%+v", training)
	}

	game := DescribeGame(models.Game{TeamAID: "red", TeamBID: &teamB, Kickoff: &kickoff, PitchID: &pitch}, tour, time.FixedZone("X", 3600))
	if game.Training || game.TeamB != "Blue" || game.Kickoff != "2024-06-02 11:00" || game.PitchLabel != "Main" {
		t.Errorf("game=%+v", game)
	}
}

func TestDescribeGamesOrdersByKickoff(t *testing.T) {
	late, early := "2024-06-03T09:00:00Z", "2024-06-01T09:00:00Z"
	tour := models.Tournament{
		Teams: []models.Team{{ID: "red", Name: "Red"}},
		Games: []models.Game{
			{ID: "g-late", TeamAID: "red", Kickoff: &late},
			{ID: "g-early", TeamAID: "red", Kickoff: &early},
			{ID: "g-open", TeamAID: "red"},
		},
	}

	got := DescribeGames(tour, time.UTC)
	var ids []string
	for _, s := range got {
		ids = append(ids, s.Game.ID)
	}
	if strings.Join(ids, ",") != "g-open,g-early,g-late" {
		t.Errorf("order=%v", ids)
	}
	if tour.Games[0].ID != "g-late" {
		t.Error("tournament games were reordered in place")
	}
}
