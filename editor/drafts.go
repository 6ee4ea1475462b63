package editor

import "github.com/Dosada05/scouting-system/models"

// Drafts is the unsaved editor state of one tournament. It is persisted
// between requests so a half-filled form survives navigation.
type Drafts struct {
	Team         TeamForm       `json:"team"`
	TeamError    string         `json:"teamError,omitempty"`
	Game         GameForm       `json:"game"`
	ShowGameForm bool           `json:"showGameForm"`
	GameError    string         `json:"gameError,omitempty"`
	Evaluation   EvaluationForm `json:"evaluation"`
	EvalError    string         `json:"evalError,omitempty"`
	EvalNotice   string         `json:"evalNotice,omitempty"`
}

func NewDrafts(t models.Tournament, scoutName string) Drafts {
	return Drafts{
		Team:       NewTeamForm(),
		Game:       NewGameForm(t),
		Evaluation: NewEvaluationForm(scoutName),
	}
}

// ResetGame closes the game form and clears it.
func (d *Drafts) ResetGame(t models.Tournament) {
	d.Game = NewGameForm(t)
	d.ShowGameForm = false
	d.GameError = ""
}

// ResetTeam clears the team builder after a team was created.
func (d *Drafts) ResetTeam() {
	d.Team = NewTeamForm()
	d.TeamError = ""
}
