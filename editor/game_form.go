package editor

import (
	"strings"
	"time"

	"github.com/Dosada05/scouting-system/models"
	"github.com/Dosada05/scouting-system/utils"
)

const DefaultKickoffTime = "12:00"

var (
	clockLayouts   = []string{"15:04", "15:04:05"}
	kickoffLayouts = []string{time.RFC3339Nano, "2006-01-02T15:04:05", "2006-01-02T15:04"}
)

// GameForm is the add/edit form of the games tab. ID is empty for a new game.
type GameForm struct {
	ID      string `json:"id,omitempty"`
	TeamAID string `json:"teamAId"`
	TeamBID string `json:"teamBId"`
	Date    string `json:"date"`
	Time    string `json:"time"`
	PitchID string `json:"pitchId"`
	Note    string `json:"note"`
}

func (f GameForm) Editing() bool { return f.ID != "" }

// NewGameForm starts a blank game on the tournament's first day at noon.
func NewGameForm(t models.Tournament) GameForm {
	return GameForm{Date: dateOnly(t.Start), Time: DefaultKickoffTime}
}

// GameFormFromGame fills the form from an existing game, splitting the kickoff
// into date and time in loc.
func GameFormFromGame(g models.Game, t models.Tournament, loc *time.Location) GameForm {
	f := GameForm{
		ID:      g.ID,
		TeamAID: g.TeamAID,
		Date:    dateOnly(t.Start),
		Time:    DefaultKickoffTime,
		Note:    g.Note,
	}
	if g.TeamBID != nil {
		f.TeamBID = *g.TeamBID
	}
	if g.PitchID != nil {
		f.PitchID = *g.PitchID
	}
	if g.Kickoff != nil {
		if k, err := ParseKickoff(*g.Kickoff); err == nil {
			k = k.In(loc)
			f.Date = k.Format(utils.DateLayout)
			f.Time = k.Format("15:04")
		}
	}
	return f
}

// ParseKickoff reads a backend timestamp. Timestamps without an offset are UTC.
func ParseKickoff(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range kickoffLayouts {
		if k, err := time.Parse(layout, s); err == nil {
			return k, nil
		}
	}
	return time.Time{}, ErrInvalidKickoff
}

// Kickoff combines date and time in loc. An empty date means no kickoff; an
// empty time means midnight.
func (f GameForm) Kickoff(loc *time.Location) (*time.Time, error) {
	date := strings.TrimSpace(f.Date)
	if date == "" {
		return nil, nil
	}
	clock := strings.TrimSpace(f.Time)
	if clock == "" {
		clock = "00:00"
	}
	day, err := time.ParseInLocation(utils.DateLayout, date, loc)
	if err != nil {
		return nil, ErrInvalidKickoff
	}
	for _, layout := range clockLayouts {
		c, err := time.Parse(layout, clock)
		if err != nil {
			continue
		}
		k := time.Date(day.Year(), day.Month(), day.Day(), c.Hour(), c.Minute(), c.Second(), 0, loc)
		return &k, nil
	}
	return nil, ErrInvalidKickoff
}

// Request validates the form against the tournament and builds the body sent
// to the backend. The kickoff date must fall within the tournament dates when
// both are set.
func (f GameForm) Request(t models.Tournament, loc *time.Location) (models.GameRequest, error) {
	if strings.TrimSpace(f.TeamAID) == "" {
		return models.GameRequest{}, ErrTeamARequired
	}
	kickoff, err := f.Kickoff(loc)
	if err != nil {
		return models.GameRequest{}, err
	}
	req := models.GameRequest{
		TeamAID: f.TeamAID,
		TeamBID: optional(f.TeamBID),
		Note:    optional(f.Note),
		PitchID: optional(f.PitchID),
	}
	if kickoff != nil {
		if !withinTournament(*kickoff, t) {
			return models.GameRequest{}, ErrKickoffOutOfRange
		}
		s := kickoff.UTC().Format(time.RFC3339)
		req.Kickoff = &s
	}
	return req, nil
}

func withinTournament(kickoff time.Time, t models.Tournament) bool {
	start, err := utils.ParseDate(t.Start)
	if err != nil {
		return true
	}
	end, err := utils.ParseDate(t.End)
	if err != nil {
		return true
	}
	day := time.Date(kickoff.Year(), kickoff.Month(), kickoff.Day(), 0, 0, 0, 0, time.UTC)
	return !day.Before(start) && !day.After(end)
}

func optional(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}

func dateOnly(s string) string {
	if len(s) >= len(utils.DateLayout) {
		return s[:len(utils.DateLayout)]
	}
	return s
}
