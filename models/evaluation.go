package models

type Evaluation struct {
	ID                 string  `json:"id,omitempty"`
	EventID            string  `json:"eventId"`
	PlayerID           string  `json:"playerId"`
	ScoutName          string  `json:"scoutName"`
	RatingTechnique    int     `json:"ratingTechnique"`
	RatingPhysical     int     `json:"ratingPhysical"`
	RatingIntelligence int     `json:"ratingIntelligence"`
	RatingMentality    int     `json:"ratingMentality"`
	RatingImpact       int     `json:"ratingImpact"`
	Strengths          *string `json:"strengths,omitempty"`
	Weaknesses         *string `json:"weaknesses,omitempty"`
	Remarks            *string `json:"remarks,omitempty"`
	CreatedAt          string  `json:"createdAt,omitempty"`
}

func (e Evaluation) Average() float64 {
	sum := e.RatingTechnique + e.RatingPhysical + e.RatingIntelligence + e.RatingMentality + e.RatingImpact
	return float64(sum) / 5
}

type EvaluationRequest struct {
	EventID            string  `json:"eventId"`
	PlayerID           string  `json:"playerId"`
	ScoutName          string  `json:"scoutName"`
	RatingTechnique    int     `json:"ratingTechnique"`
	RatingPhysical     int     `json:"ratingPhysical"`
	RatingIntelligence int     `json:"ratingIntelligence"`
	RatingMentality    int     `json:"ratingMentality"`
	RatingImpact       int     `json:"ratingImpact"`
	Strengths          *string `json:"strengths"`
	Weaknesses         *string `json:"weaknesses"`
	Remarks            *string `json:"remarks"`
}
