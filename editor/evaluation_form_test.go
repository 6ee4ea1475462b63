package editor

import (
	"errors"
	"testing"

	"github.com/Dosada05/scouting-system/models"
)

func TestNewEvaluationForm(t *testing.T) {
	f := NewEvaluationForm("")
	if f.ScoutName != DefaultScoutName {
		t.Errorf("scout=%q", f.ScoutName)
	}
	for _, field := range f.Ratings.Fields() {
		if field.Value != DefaultRating {
			t.Errorf("%s=%d", field.Key, field.Value)
		}
	}
}

func TestEvaluationFormValidate(t *testing.T) {
	tour := models.Tournament{ID: "t1", Participants: []string{"p1"}}

	f := NewEvaluationForm("Anna")
	if err := f.Validate(tour); !errors.Is(err, ErrEvaluationPlayerRequired) {
		t.Errorf("no player: %v", err)
	}
	f.PlayerID = "p9"
	if err := f.Validate(tour); !errors.Is(err, ErrNotParticipant) {
		t.Errorf("outsider: %v", err)
	}
	f.PlayerID = "p1"
	f.Ratings.Set("impact", 6)
	if err := f.Validate(tour); !errors.Is(err, ErrRatingOutOfRange) {
		t.Errorf("rating 6: %v", err)
	}
	f.Ratings.Set("impact", 5)
	if err := f.Validate(tour); err != nil {
		t.Errorf("valid: %v", err)
	}
}

func TestEvaluationFormRequestAndReset(t *testing.T) {
	f := NewEvaluationForm("Anna")
	f.PlayerID = "p1"
	f.Ratings.Set("technique", 5)
	f.Strengths = "first touch"

	req := f.Request("t1")
	if req.EventID != "t1" || req.RatingTechnique != 5 || req.RatingPhysical != DefaultRating {
		t.Errorf("req=%+v", req)
	}
	if req.Strengths == nil || *req.Strengths != "first touch" {
		t.Errorf("strengths=%v", req.Strengths)
	}
	if req.Weaknesses != nil || req.Remarks != nil {
		t.Error("blank texts must be null")
	}

	f.ResetText()
	if f.Strengths != "" || f.PlayerID != "p1" || f.Ratings.Technique != 5 || f.ScoutName != "Anna" {
		t.Errorf("after reset=%+v", f)
	}
}
