package models

// RosterEntry pairs a player with a jersey number inside a team.
// The number is free text; uniqueness is only suggested, never enforced.
type RosterEntry struct {
	PlayerID string `json:"playerId"`
	Number   string `json:"number"`
}

type RosterRequest struct {
	Roster []RosterEntry `json:"roster"`
}
