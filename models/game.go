package models

type VideoStatus string

const (
	VideoStatusNone       VideoStatus = "none"
	VideoStatusUploaded   VideoStatus = "uploaded"
	VideoStatusProcessing VideoStatus = "processing"
	VideoStatusDone       VideoStatus = "done"
	VideoStatusFailed     VideoStatus = "failed"
)

func (s VideoStatus) Valid() bool {
	switch s {
	case VideoStatusNone, VideoStatusUploaded, VideoStatusProcessing, VideoStatusDone, VideoStatusFailed:
		return true
	}
	return false
}

type Video struct {
	ID     string      `json:"id,omitempty"`
	Name   string      `json:"name"`
	Status VideoStatus `json:"status"`
}

type LineupEntry struct {
	PlayerID string `json:"playerId"`
	TeamID   string `json:"teamId"`
	Number   string `json:"number"`
	Kit      string `json:"kit,omitempty"`
	Position string `json:"position,omitempty"`
}

// Game is a scheduled game inside a tournament. A game without team B is a training.
type Game struct {
	ID      string        `json:"id,omitempty"`
	TeamAID string        `json:"teamAId"`
	TeamBID *string       `json:"teamBId,omitempty"`
	Kickoff *string       `json:"kickoff,omitempty"` // ISO timestamp
	KitA    string        `json:"kitA,omitempty"`
	KitB    string        `json:"kitB,omitempty"`
	Note    string        `json:"note,omitempty"`
	PitchID *string       `json:"pitchId,omitempty"`
	Lineup  []LineupEntry `json:"lineup,omitempty"`
	Videos  []Video       `json:"videos,omitempty"`
}

func (g Game) IsTraining() bool {
	return g.TeamBID == nil || *g.TeamBID == ""
}

// GameRequest is the create/update body for tournament games.
type GameRequest struct {
	TeamAID string  `json:"teamAId"`
	TeamBID *string `json:"teamBId"`
	Kickoff *string `json:"kickoff"`
	KitA    *string `json:"kitA"`
	KitB    *string `json:"kitB"`
	Note    *string `json:"note"`
	PitchID *string `json:"pitchId"`
}

type VideoReport struct {
	Name   string      `json:"name"`
	Status VideoStatus `json:"status"`
}
