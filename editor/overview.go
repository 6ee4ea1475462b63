package editor

import (
	"github.com/Dosada05/scouting-system/models"
)

type RosterMember struct {
	PlayerID string
	Number   string
	Name     string
	Known    bool
}

type TeamSummary struct {
	Team    models.Team
	Members []RosterMember
}

type ParticipantSummary struct {
	Player      models.Player
	Evaluations int
	Average     float64
}

type Overview struct {
	Teams        []TeamSummary
	Participants []ParticipantSummary
	Evaluations  int
}

// Participants returns the players listed in the tournament, in player
// collection order. Participant ids without a known player are skipped.
func Participants(t models.Tournament, players []models.Player) []models.Player {
	want := make(map[string]bool, len(t.Participants))
	for _, id := range t.Participants {
		want[id] = true
	}
	out := make([]models.Player, 0, len(t.Participants))
	for _, p := range players {
		if want[p.ID] {
			out = append(out, p)
		}
	}
	return out
}

// BuildOverview summarizes teams and participants. Every evaluation of a
// participant counts, whichever event it was recorded at.
func BuildOverview(t models.Tournament, players []models.Player, evaluations map[string][]models.Evaluation) Overview {
	byID := indexPlayers(players)
	var ov Overview

	for _, team := range t.Teams {
		ts := TeamSummary{Team: team}
		for _, entry := range team.Roster {
			m := RosterMember{PlayerID: entry.PlayerID, Number: entry.Number, Name: entry.PlayerID}
			if p, ok := byID[entry.PlayerID]; ok {
				m.Name = p.FullName()
				m.Known = true
			}
			ts.Members = append(ts.Members, m)
		}
		ov.Teams = append(ov.Teams, ts)
	}

	for _, p := range Participants(t, players) {
		ps := ParticipantSummary{Player: p}
		var sum float64
		for _, e := range evaluations[p.ID] {
			ps.Evaluations++
			sum += e.Average()
		}
		if ps.Evaluations > 0 {
			ps.Average = sum / float64(ps.Evaluations)
		}
		ov.Evaluations += ps.Evaluations
		ov.Participants = append(ov.Participants, ps)
	}
	return ov
}

// TeamName returns the name of the team with id, or the id itself.
func TeamName(t models.Tournament, id string) string {
	if team, ok := t.Team(id); ok {
		return team.Name
	}
	return id
}

func indexPlayers(players []models.Player) map[string]models.Player {
	byID := make(map[string]models.Player, len(players))
	for _, p := range players {
		byID[p.ID] = p
	}
	return byID
}
