package models

type DashboardStats struct {
	PlayersTotal     int          `json:"players_total"`
	TournamentsTotal int          `json:"tournaments_total"`
	VenuesTotal      int          `json:"venues_total"`
	Upcoming         []Tournament `json:"upcoming"`
	Errors           []string     `json:"errors,omitempty"`
}
