package models

type SeedEntity string

const (
	SeedPlayers SeedEntity = "players"
	SeedVenues  SeedEntity = "venues"
)

type SeedRequest struct {
	Entity SeedEntity `json:"entity"`
	Count  int        `json:"count"`
}

type DedupeResult struct {
	Removed int `json:"removed"`
	Kept    int `json:"kept"`
}
