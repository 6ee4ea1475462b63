package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/Dosada05/scouting-system/live"
	"github.com/Dosada05/scouting-system/models"
	"github.com/Dosada05/scouting-system/repositories"
)

const (
	MinSeedCount = 1
	MaxSeedCount = 500
)

// AdminService runs the maintenance operations of the admin panel.
type AdminService interface {
	Seed(ctx context.Context, input SeedInput) (string, error)
	DedupePlayers(ctx context.Context) (string, *models.DedupeResult, error)
}

type SeedInput struct {
	Entity models.SeedEntity `json:"entity"`
	Count  int               `json:"count"`
}

type adminService struct {
	opsRepo     repositories.OpsRepository
	collections *Collections
	notifier    Notifier
	logger      *slog.Logger
}

func NewAdminService(opsRepo repositories.OpsRepository, collections *Collections, notifier Notifier, logger *slog.Logger) AdminService {
	return &adminService{
		opsRepo:     opsRepo,
		collections: collections,
		notifier:    notifier,
		logger:      logger,
	}
}

func (s *adminService) Seed(ctx context.Context, input SeedInput) (string, error) {
	if input.Entity != models.SeedPlayers && input.Entity != models.SeedVenues {
		return "", ErrSeedEntityInvalid
	}
	if input.Count < MinSeedCount || input.Count > MaxSeedCount {
		return "", ErrSeedCountOutOfRange
	}

	if err := s.opsRepo.Seed(ctx, models.SeedRequest{Entity: input.Entity, Count: input.Count}); err != nil {
		return "", fmt.Errorf("seed %s failed: %w", input.Entity, err)
	}
	s.logger.InfoContext(ctx, "seed executed", slog.String("entity", string(input.Entity)), slog.Int("count", input.Count))

	if input.Entity == models.SeedPlayers {
		s.collections.Players.Refresh(ctx)
		notify(s.notifier, live.RoomPlayers, live.TypePlayersChanged, nil)
	} else {
		s.collections.Venues.Refresh(ctx)
		notify(s.notifier, live.RoomVenues, live.TypeVenuesChanged, nil)
	}
	return fmt.Sprintf("Seed for %s with %d records executed.", input.Entity, input.Count), nil
}

func (s *adminService) DedupePlayers(ctx context.Context) (string, *models.DedupeResult, error) {
	result, err := s.opsRepo.DedupePlayers(ctx)
	if err != nil {
		return "", nil, fmt.Errorf("dedupe players failed: %w", err)
	}
	s.logger.InfoContext(ctx, "players deduplicated", slog.Int("removed", result.Removed), slog.Int("kept", result.Kept))

	s.collections.Players.Refresh(ctx)
	notify(s.notifier, live.RoomPlayers, live.TypePlayersChanged, nil)
	return fmt.Sprintf("Cleaned: %d removed, %d kept.", result.Removed, result.Kept), result, nil
}
