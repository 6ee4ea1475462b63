package repositories

import (
	"context"

	"github.com/Dosada05/scouting-system/models"
)

// OpsRepository covers the fire-and-report maintenance endpoints.
type OpsRepository interface {
	Seed(ctx context.Context, req models.SeedRequest) error
	DedupePlayers(ctx context.Context) (*models.DedupeResult, error)
}

type apiOpsRepository struct {
	client *Client
}

func NewAPIOpsRepository(client *Client) OpsRepository {
	return &apiOpsRepository{client: client}
}

func (r *apiOpsRepository) Seed(ctx context.Context, req models.SeedRequest) error {
	return r.client.post(ctx, "/seed", req, nil)
}

func (r *apiOpsRepository) DedupePlayers(ctx context.Context) (*models.DedupeResult, error) {
	var result models.DedupeResult
	if err := r.client.post(ctx, "/ops/dedupe-players", nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}
