package editor

import (
	"strings"

	"github.com/Dosada05/scouting-system/models"
)

const (
	DefaultRating    = 3
	MinRating        = 1
	MaxRating        = 5
	DefaultScoutName = "Scout"
)

type Ratings struct {
	Technique    int `json:"technique"`
	Physical     int `json:"physical"`
	Intelligence int `json:"intelligence"`
	Mentality    int `json:"mentality"`
	Impact       int `json:"impact"`
}

// RatingField names one rating for rendering and form parsing.
type RatingField struct {
	Key   string
	Label string
	Value int
}

func (r Ratings) Fields() []RatingField {
	return []RatingField{
		{Key: "technique", Label: "Technique", Value: r.Technique},
		{Key: "physical", Label: "Physical", Value: r.Physical},
		{Key: "intelligence", Label: "Intelligence", Value: r.Intelligence},
		{Key: "mentality", Label: "Mentality", Value: r.Mentality},
		{Key: "impact", Label: "Impact", Value: r.Impact},
	}
}

// Set assigns a rating by its field key. Unknown keys are ignored.
func (r *Ratings) Set(key string, v int) {
	switch key {
	case "technique":
		r.Technique = v
	case "physical":
		r.Physical = v
	case "intelligence":
		r.Intelligence = v
	case "mentality":
		r.Mentality = v
	case "impact":
		r.Impact = v
	}
}

type EvaluationForm struct {
	PlayerID   string  `json:"playerId"`
	ScoutName  string  `json:"scoutName"`
	Ratings    Ratings `json:"ratings"`
	Strengths  string  `json:"strengths"`
	Weaknesses string  `json:"weaknesses"`
	Remarks    string  `json:"remarks"`
}

func NewEvaluationForm(scoutName string) EvaluationForm {
	if strings.TrimSpace(scoutName) == "" {
		scoutName = DefaultScoutName
	}
	return EvaluationForm{
		ScoutName: scoutName,
		Ratings: Ratings{
			Technique:    DefaultRating,
			Physical:     DefaultRating,
			Intelligence: DefaultRating,
			Mentality:    DefaultRating,
			Impact:       DefaultRating,
		},
	}
}

func (f EvaluationForm) Validate(t models.Tournament) error {
	if f.PlayerID == "" {
		return ErrEvaluationPlayerRequired
	}
	if !t.HasParticipant(f.PlayerID) {
		return ErrNotParticipant
	}
	for _, field := range f.Ratings.Fields() {
		if field.Value < MinRating || field.Value > MaxRating {
			return ErrRatingOutOfRange
		}
	}
	return nil
}

// Request builds the evaluation body. Blank texts are sent as null.
func (f EvaluationForm) Request(tournamentID string) models.EvaluationRequest {
	scout := strings.TrimSpace(f.ScoutName)
	if scout == "" {
		scout = DefaultScoutName
	}
	return models.EvaluationRequest{
		EventID:            tournamentID,
		PlayerID:           f.PlayerID,
		ScoutName:          scout,
		RatingTechnique:    f.Ratings.Technique,
		RatingPhysical:     f.Ratings.Physical,
		RatingIntelligence: f.Ratings.Intelligence,
		RatingMentality:    f.Ratings.Mentality,
		RatingImpact:       f.Ratings.Impact,
		Strengths:          optional(f.Strengths),
		Weaknesses:         optional(f.Weaknesses),
		Remarks:            optional(f.Remarks),
	}
}

// ResetText clears the free texts after a successful submit. Player, scout
// and ratings stay so the next evaluation starts from them.
func (f *EvaluationForm) ResetText() {
	f.Strengths = ""
	f.Weaknesses = ""
	f.Remarks = ""
}
