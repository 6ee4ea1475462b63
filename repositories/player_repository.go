package repositories

import (
	"context"

	"github.com/Dosada05/scouting-system/models"
)

type PlayerRepository interface {
	List(ctx context.Context) ([]models.Player, error)
	GetByID(ctx context.Context, id string) (*models.Player, error)
	Create(ctx context.Context, player *models.Player) (*models.Player, error)
	Update(ctx context.Context, player *models.Player) (*models.Player, error)
	Delete(ctx context.Context, id string) error
}

type apiPlayerRepository struct {
	client *Client
}

func NewAPIPlayerRepository(client *Client) PlayerRepository {
	return &apiPlayerRepository{client: client}
}

func (r *apiPlayerRepository) List(ctx context.Context) ([]models.Player, error) {
	players := make([]models.Player, 0)
	if err := r.client.get(ctx, "/players", &players); err != nil {
		return nil, err
	}
	if players == nil {
		return []models.Player{}, nil
	}
	return players, nil
}

func (r *apiPlayerRepository) GetByID(ctx context.Context, id string) (*models.Player, error) {
	var player models.Player
	if err := r.client.get(ctx, entityPath("players", id), &player); err != nil {
		return nil, err
	}
	if player.ID == "" {
		return nil, ErrNotFound
	}
	return &player, nil
}

func (r *apiPlayerRepository) Create(ctx context.Context, player *models.Player) (*models.Player, error) {
	var saved models.Player
	if err := r.client.post(ctx, "/players", player, &saved); err != nil {
		return nil, err
	}
	return &saved, nil
}

// Update sends the complete player; the backend replaces every field.
func (r *apiPlayerRepository) Update(ctx context.Context, player *models.Player) (*models.Player, error) {
	var saved models.Player
	if err := r.client.put(ctx, entityPath("players", player.ID), player, &saved); err != nil {
		return nil, err
	}
	if saved.ID == "" {
		saved = *player
	}
	return &saved, nil
}

func (r *apiPlayerRepository) Delete(ctx context.Context, id string) error {
	return r.client.delete(ctx, entityPath("players", id))
}
