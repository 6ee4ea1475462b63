package models

// Pitch is a playable surface at a venue.
type Pitch struct {
	ID      string `json:"id,omitempty"`
	Label   string `json:"label"`
	Surface string `json:"surface,omitempty"`
	Lights  bool   `json:"lights"`
}

type Venue struct {
	ID        string  `json:"id,omitempty"`
	Name      string  `json:"name"`
	Address   string  `json:"address"`
	HomeClub  string  `json:"homeClub"`
	Contact   string  `json:"contact"`
	Price     string  `json:"price"`
	Note      string  `json:"note"`
	PhotoData string  `json:"photoData,omitempty"`
	Pitches   []Pitch `json:"pitches"`
}

// PitchLabel returns the label of the pitch with the given id, or the id itself.
func (v *Venue) PitchLabel(pitchID string) string {
	if v == nil {
		return pitchID
	}
	for _, p := range v.Pitches {
		if p.ID == pitchID {
			return p.Label
		}
	}
	return pitchID
}
