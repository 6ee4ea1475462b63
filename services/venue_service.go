package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/Dosada05/scouting-system/listing"
	"github.com/Dosada05/scouting-system/live"
	"github.com/Dosada05/scouting-system/models"
	"github.com/Dosada05/scouting-system/repositories"
)

type VenueService interface {
	ListVenues(ctx context.Context, q listing.Query) (*VenueListView, error)
	GetVenue(ctx context.Context, id string) (*models.Venue, error)
	CreateVenue(ctx context.Context, input VenueInput) (*models.Venue, error)
	UpdateVenue(ctx context.Context, id string, input VenueInput) (*models.Venue, error)
	DeleteVenue(ctx context.Context, id string, confirmed bool) error
}

type PitchInput struct {
	ID      string `json:"id"`
	Label   string `json:"label"`
	Surface string `json:"surface"`
	Lights  bool   `json:"lights"`
}

type VenueInput struct {
	Name     string       `json:"name"`
	Address  string       `json:"address"`
	HomeClub string       `json:"homeClub"`
	Contact  string       `json:"contact"`
	Price    string       `json:"price"`
	Note     string       `json:"note"`
	Pitches  []PitchInput `json:"pitches"`
	Photo    *PhotoUpload `json:"photo"`
}

type VenueListView struct {
	listing.Result[models.Venue]
	Error string `json:"error,omitempty"`
}

type venueService struct {
	venueRepo repositories.VenueRepository
	venues    *Collection[models.Venue]
	notifier  Notifier
	logger    *slog.Logger
}

func NewVenueService(venueRepo repositories.VenueRepository, venues *Collection[models.Venue], notifier Notifier, logger *slog.Logger) VenueService {
	return &venueService{
		venueRepo: venueRepo,
		venues:    venues,
		notifier:  notifier,
		logger:    logger,
	}
}

func VenueListSpec() listing.Spec[models.Venue] {
	return listing.Spec[models.Venue]{
		Haystack: func(v models.Venue) string { return listing.Join(v.Name, v.Address, v.HomeClub) },
		Fields: map[string]listing.Field[models.Venue]{
			"name":     {Text: func(v models.Venue) string { return strings.ToLower(v.Name) }},
			"homeClub": {Text: func(v models.Venue) string { return strings.ToLower(v.HomeClub) }},
			"pitches":  {Number: func(v models.Venue) float64 { return float64(len(v.Pitches)) }},
		},
		DefaultField: "name",
	}
}

func (s *venueService) ListVenues(ctx context.Context, q listing.Query) (*VenueListView, error) {
	snap, _ := s.venues.Refresh(ctx)
	return &VenueListView{
		Result: listing.Apply(snap.Data, q, VenueListSpec()),
		Error:  snap.Error,
	}, nil
}

func (s *venueService) GetVenue(ctx context.Context, id string) (*models.Venue, error) {
	return lookupWithFallback(ctx, s.logger, "venue", id,
		s.venueRepo.GetByID, s.venueRepo.List,
		func(v models.Venue) string { return v.ID },
		ErrVenueNotFound)
}

// apply copies the form onto v. Pitch rows without a label are dropped; the
// remaining rows keep their order.
func (in VenueInput) apply(v *models.Venue) error {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return ErrVenueNameRequired
	}
	photo, err := photoDataURI(in.Photo)
	if err != nil {
		return err
	}

	pitches := make([]models.Pitch, 0, len(in.Pitches))
	for _, p := range in.Pitches {
		label := strings.TrimSpace(p.Label)
		if label == "" {
			continue
		}
		pitches = append(pitches, models.Pitch{
			ID:      strings.TrimSpace(p.ID),
			Label:   label,
			Surface: strings.TrimSpace(p.Surface),
			Lights:  p.Lights,
		})
	}

	v.Name = name
	v.Address = strings.TrimSpace(in.Address)
	v.HomeClub = strings.TrimSpace(in.HomeClub)
	v.Contact = strings.TrimSpace(in.Contact)
	v.Price = strings.TrimSpace(in.Price)
	v.Note = strings.TrimSpace(in.Note)
	v.Pitches = pitches
	if photo != "" {
		v.PhotoData = photo
	}
	return nil
}

func (s *venueService) CreateVenue(ctx context.Context, input VenueInput) (*models.Venue, error) {
	venue := &models.Venue{}
	if err := input.apply(venue); err != nil {
		return nil, err
	}
	saved, err := s.venueRepo.Create(ctx, venue)
	if err != nil {
		return nil, fmt.Errorf("failed to create venue: %w", err)
	}
	s.logger.InfoContext(ctx, "venue created", slog.String("venue_id", saved.ID))
	notify(s.notifier, live.RoomVenues, live.TypeVenuesChanged, saved.ID)
	return saved, nil
}

func (s *venueService) UpdateVenue(ctx context.Context, id string, input VenueInput) (*models.Venue, error) {
	existing, err := s.GetVenue(ctx, id)
	if err != nil {
		return nil, err
	}
	venue := *existing
	if err := input.apply(&venue); err != nil {
		return nil, err
	}
	saved, err := s.venueRepo.Update(ctx, &venue)
	if err != nil {
		return nil, fmt.Errorf("failed to update venue %s: %w", id, mapNotFound(err, ErrVenueNotFound))
	}
	notify(s.notifier, live.RoomVenues, live.TypeVenuesChanged, saved.ID)
	return saved, nil
}

func (s *venueService) DeleteVenue(ctx context.Context, id string, confirmed bool) error {
	if !confirmed {
		return ErrConfirmationRequired
	}
	if err := s.venueRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrVenueNotFound
		}
		return fmt.Errorf("failed to delete venue %s: %w", id, err)
	}
	s.logger.InfoContext(ctx, "venue deleted", slog.String("venue_id", id))
	s.venues.Refresh(ctx)
	notify(s.notifier, live.RoomVenues, live.TypeVenuesChanged, id)
	return nil
}
