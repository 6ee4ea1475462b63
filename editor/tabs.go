// Package editor holds the form state of the tournament view: the team
// builder, the game scheduler and the evaluation form, plus the read-only
// overview. Everything here is plain data with explicit update functions;
// the services package wires it to the backend.
package editor

type Tab string

const (
	TabOverview   Tab = "overview"
	TabTeams      Tab = "teams"
	TabGames      Tab = "games"
	TabEvaluation Tab = "evaluation"
)

var Tabs = []Tab{TabOverview, TabTeams, TabGames, TabEvaluation}

// ParseTab maps a path segment to a tab; anything unknown is the overview.
func ParseTab(s string) Tab {
	switch Tab(s) {
	case TabTeams, TabGames, TabEvaluation:
		return Tab(s)
	}
	return TabOverview
}

func (t Tab) Label() string {
	switch t {
	case TabTeams:
		return "Teams"
	case TabGames:
		return "Games"
	case TabEvaluation:
		return "Evaluation"
	}
	return "Overview"
}

// Path returns the route of the tab below /tournaments/{id}.
func (t Tab) Path(tournamentID string) string {
	if t == TabOverview {
		return "/tournaments/" + tournamentID
	}
	return "/tournaments/" + tournamentID + "/" + string(t)
}
