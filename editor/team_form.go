package editor

import (
	"strconv"
	"strings"

	"github.com/Dosada05/scouting-system/models"
)

const (
	DefaultKitColor = "#e10600"

	firstJerseyNumber = 2
	maxJerseyNumber   = 100
)

// RosterRow is one line of the roster builder. Search is what the user typed;
// PlayerID is only set once Search names a participant exactly.
type RosterRow struct {
	Search   string `json:"search"`
	PlayerID string `json:"playerId"`
	Number   string `json:"number"`
}

type TeamForm struct {
	Name     string      `json:"name"`
	KitColor string      `json:"kitColor"`
	Rows     []RosterRow `json:"rows"`
}

func NewTeamForm() TeamForm {
	return TeamForm{KitColor: DefaultKitColor, Rows: []RosterRow{}}
}

// NextFreeNumber suggests the lowest jersey number >= 2 that is not in use.
// Non-numeric entries are ignored. The search gives up at 100.
func NextFreeNumber(numbers []string) string {
	used := make(map[int]bool, len(numbers))
	for _, n := range numbers {
		if v, err := strconv.Atoi(strings.TrimSpace(n)); err == nil {
			used[v] = true
		}
	}
	n := firstJerseyNumber
	for used[n] && n < maxJerseyNumber {
		n++
	}
	return strconv.Itoa(n)
}

func (f TeamForm) Numbers() []string {
	out := make([]string, len(f.Rows))
	for i, r := range f.Rows {
		out[i] = r.Number
	}
	return out
}

func (f *TeamForm) AddRow() {
	f.Rows = append(f.Rows, RosterRow{Number: NextFreeNumber(f.Numbers())})
}

func (f *TeamForm) RemoveRow(i int) error {
	if i < 0 || i >= len(f.Rows) {
		return ErrRowOutOfRange
	}
	f.Rows = append(f.Rows[:i:i], f.Rows[i+1:]...)
	return nil
}

// SetRowSearch stores the typed text and resolves it against participants.
func (f *TeamForm) SetRowSearch(i int, search string, participants []models.Player) error {
	if i < 0 || i >= len(f.Rows) {
		return ErrRowOutOfRange
	}
	f.Rows[i].Search = search
	f.Rows[i].PlayerID = ""
	if p, ok := MatchParticipant(search, participants); ok {
		f.Rows[i].PlayerID = p.ID
	}
	return nil
}

func (f *TeamForm) SetRowNumber(i int, number string) error {
	if i < 0 || i >= len(f.Rows) {
		return ErrRowOutOfRange
	}
	f.Rows[i].Number = number
	return nil
}

// MatchParticipant finds the participant whose full name equals search,
// ignoring case and surrounding blanks.
func MatchParticipant(search string, participants []models.Player) (models.Player, bool) {
	want := strings.ToLower(strings.TrimSpace(search))
	if want == "" {
		return models.Player{}, false
	}
	for _, p := range participants {
		if strings.ToLower(p.FirstName+" "+p.LastName) == want {
			return p, true
		}
	}
	return models.Player{}, false
}

func (f TeamForm) Validate(participants []models.Player) error {
	if strings.TrimSpace(f.Name) == "" {
		return ErrTeamNameRequired
	}
	if len(participants) == 0 {
		return ErrNoParticipants
	}
	return nil
}

// Team builds the team to create. Rows without a resolved player are dropped.
func (f TeamForm) Team() models.Team {
	roster := make([]models.RosterEntry, 0, len(f.Rows))
	for _, r := range f.Rows {
		if r.PlayerID == "" {
			continue
		}
		roster = append(roster, models.RosterEntry{PlayerID: r.PlayerID, Number: strings.TrimSpace(r.Number)})
	}
	kit := f.KitColor
	if kit == "" {
		kit = DefaultKitColor
	}
	return models.Team{Name: strings.TrimSpace(f.Name), KitColor: kit, Roster: roster}
}
