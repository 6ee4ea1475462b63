package models

import "strings"

// Player is a scouted player as stored by the backend.
type Player struct {
	ID          string `json:"id,omitempty"`
	UniqueID    string `json:"uniqueId,omitempty"`
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	Birthdate   string `json:"birthdate"`
	Nation      string `json:"nation"`
	PlaysIn     string `json:"playsIn"`
	Position    string `json:"position,omitempty"`
	Club        string `json:"club"`
	Level       string `json:"level"`
	Height      string `json:"height"`
	Foot        string `json:"foot"`
	Note        string `json:"note"`
	PhotoData   string `json:"photoData,omitempty"` // data URI
	Shortlisted bool   `json:"shortlisted,omitempty"`
}

func (p Player) FullName() string {
	return strings.TrimSpace(p.FirstName + " " + p.LastName)
}

// Initials returns the upper-cased first letters of both names, or "?".
func (p Player) Initials() string {
	var b strings.Builder
	for _, name := range []string{p.FirstName, p.LastName} {
		for _, r := range name {
			b.WriteRune(r)
			break
		}
	}
	initials := strings.ToUpper(strings.TrimSpace(b.String()))
	if initials == "" {
		return "?"
	}
	return initials
}
