package models

// Tournament is the aggregate root edited by the tournament view: it owns its
// teams and games and references participating players by id.
type Tournament struct {
	ID           string   `json:"id,omitempty"`
	UniqueID     string   `json:"uniqueId,omitempty"`
	Name         string   `json:"name"`
	Country      string   `json:"country"`
	Start        string   `json:"start,omitempty"` // YYYY-MM-DD
	End          string   `json:"end,omitempty"`
	Note         string   `json:"note,omitempty"`
	Venue        *Venue   `json:"venue,omitempty"`
	VenueID      string   `json:"venueId,omitempty"`
	Participants []string `json:"participants"`
	Teams        []Team   `json:"teams"`
	Games        []Game   `json:"games"`
}

func (t Tournament) VenueName() string {
	if t.Venue == nil {
		return ""
	}
	return t.Venue.Name
}

func (t Tournament) HasParticipant(playerID string) bool {
	for _, id := range t.Participants {
		if id == playerID {
			return true
		}
	}
	return false
}

func (t Tournament) Team(teamID string) (Team, bool) {
	for _, team := range t.Teams {
		if team.ID == teamID {
			return team, true
		}
	}
	return Team{}, false
}

func (t Tournament) Game(gameID string) (Game, bool) {
	for _, g := range t.Games {
		if g.ID == gameID {
			return g, true
		}
	}
	return Game{}, false
}

// TournamentRequest is the create/update body for /tournaments.
type TournamentRequest struct {
	Name         string   `json:"name"`
	Country      string   `json:"country"`
	Start        *string  `json:"start"`
	End          *string  `json:"end"`
	Note         string   `json:"note"`
	VenueID      *string  `json:"venueId"`
	Participants []string `json:"participants,omitempty"`
}

type ParticipantsRequest struct {
	Participants []string `json:"participants"`
}
