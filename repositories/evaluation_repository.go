package repositories

import (
	"context"

	"github.com/Dosada05/scouting-system/models"
)

type EvaluationRepository interface {
	Create(ctx context.Context, req models.EvaluationRequest) (*models.Evaluation, error)
	ListByPlayer(ctx context.Context, playerID string) ([]models.Evaluation, error)
}

type apiEvaluationRepository struct {
	client *Client
}

func NewAPIEvaluationRepository(client *Client) EvaluationRepository {
	return &apiEvaluationRepository{client: client}
}

func (r *apiEvaluationRepository) Create(ctx context.Context, req models.EvaluationRequest) (*models.Evaluation, error) {
	var saved models.Evaluation
	if err := r.client.post(ctx, "/evaluations", req, &saved); err != nil {
		return nil, err
	}
	return &saved, nil
}

func (r *apiEvaluationRepository) ListByPlayer(ctx context.Context, playerID string) ([]models.Evaluation, error) {
	evaluations := make([]models.Evaluation, 0)
	if err := r.client.get(ctx, entityPath("players", playerID, "evaluations"), &evaluations); err != nil {
		return nil, err
	}
	if evaluations == nil {
		return []models.Evaluation{}, nil
	}
	return evaluations, nil
}
