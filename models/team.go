package models

type Team struct {
	ID       string        `json:"id,omitempty"`
	Name     string        `json:"name"`
	KitColor string        `json:"kitColor"`
	Roster   []RosterEntry `json:"roster"`
}
