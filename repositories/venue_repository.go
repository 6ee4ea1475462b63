package repositories

import (
	"context"

	"github.com/Dosada05/scouting-system/models"
)

type VenueRepository interface {
	List(ctx context.Context) ([]models.Venue, error)
	GetByID(ctx context.Context, id string) (*models.Venue, error)
	Create(ctx context.Context, venue *models.Venue) (*models.Venue, error)
	Update(ctx context.Context, venue *models.Venue) (*models.Venue, error)
	Delete(ctx context.Context, id string) error
}

type apiVenueRepository struct {
	client *Client
}

func NewAPIVenueRepository(client *Client) VenueRepository {
	return &apiVenueRepository{client: client}
}

func (r *apiVenueRepository) List(ctx context.Context) ([]models.Venue, error) {
	venues := make([]models.Venue, 0)
	if err := r.client.get(ctx, "/venues", &venues); err != nil {
		return nil, err
	}
	if venues == nil {
		return []models.Venue{}, nil
	}
	return venues, nil
}

func (r *apiVenueRepository) GetByID(ctx context.Context, id string) (*models.Venue, error) {
	var venue models.Venue
	if err := r.client.get(ctx, entityPath("venues", id), &venue); err != nil {
		return nil, err
	}
	if venue.ID == "" {
		return nil, ErrNotFound
	}
	return &venue, nil
}

func (r *apiVenueRepository) Create(ctx context.Context, venue *models.Venue) (*models.Venue, error) {
	var saved models.Venue
	if err := r.client.post(ctx, "/venues", venue, &saved); err != nil {
		return nil, err
	}
	return &saved, nil
}

func (r *apiVenueRepository) Update(ctx context.Context, venue *models.Venue) (*models.Venue, error) {
	var saved models.Venue
	if err := r.client.put(ctx, entityPath("venues", venue.ID), venue, &saved); err != nil {
		return nil, err
	}
	if saved.ID == "" {
		saved = *venue
	}
	return &saved, nil
}

func (r *apiVenueRepository) Delete(ctx context.Context, id string) error {
	return r.client.delete(ctx, entityPath("venues", id))
}
