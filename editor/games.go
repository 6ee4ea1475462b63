package editor

import (
	"slices"
	"strings"
	"time"

	"github.com/Dosada05/scouting-system/models"
)

const kickoffDisplayLayout = "2006-01-02 15:04"

// GameSummary is a game with its references resolved for display.
type GameSummary struct {
	Game       models.Game `json:"game"`
	TeamA      string      `json:"teamA"`
	TeamB      string      `json:"teamB"`
	Training   bool        `json:"training"`
	Kickoff    string      `json:"kickoff"`
	PitchLabel string      `json:"pitchLabel"`
}

func DescribeGame(g models.Game, t models.Tournament, loc *time.Location) GameSummary {
	s := GameSummary{
		Game:     g,
		TeamA:    TeamName(t, g.TeamAID),
		Training: g.IsTraining(),
	}
	if !s.Training {
		s.TeamB = TeamName(t, *g.TeamBID)
	}
	if g.Kickoff != nil {
		if k, err := ParseKickoff(*g.Kickoff); err == nil {
			s.Kickoff = k.In(loc).Format(kickoffDisplayLayout)
		}
	}
	if g.PitchID != nil && *g.PitchID != "" {
		s.PitchLabel = t.Venue.PitchLabel(*g.PitchID)
	}
	return s
}

// DescribeGames summarizes the tournament's games ordered by kickoff.
// Games without a kickoff come first.
func DescribeGames(t models.Tournament, loc *time.Location) []GameSummary {
	games := slices.Clone(t.Games)
	slices.SortStableFunc(games, func(a, b models.Game) int {
		return strings.Compare(kickoffKey(a), kickoffKey(b))
	})
	out := make([]GameSummary, 0, len(games))
	for _, g := range games {
		out = append(out, DescribeGame(g, t, loc))
	}
	return out
}

func kickoffKey(g models.Game) string {
	if g.Kickoff == nil {
		return ""
	}
	return *g.Kickoff
}
