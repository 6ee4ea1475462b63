package services

import (
	"context"

	"github.com/Dosada05/scouting-system/models"
)

// UpcomingLimit is the number of tournaments shown on the dashboard.
const UpcomingLimit = 4

type DashboardService interface {
	GetStats(ctx context.Context) (models.DashboardStats, error)
}

type dashboardService struct {
	collections *Collections
}

func NewDashboardService(collections *Collections) DashboardService {
	return &dashboardService{collections: collections}
}

// GetStats refreshes all collections and counts them. A collection that
// failed to load counts as empty and adds its message to Errors.
func (s *dashboardService) GetStats(ctx context.Context) (models.DashboardStats, error) {
	_ = s.collections.RefreshAll(ctx)

	players := s.collections.Players.Snapshot()
	tournaments := s.collections.Tournaments.Snapshot()
	venues := s.collections.Venues.Snapshot()

	stats := models.DashboardStats{
		PlayersTotal:     len(players.Data),
		TournamentsTotal: len(tournaments.Data),
		VenuesTotal:      len(venues.Data),
		Upcoming:         tournaments.Data[:min(UpcomingLimit, len(tournaments.Data))],
	}
	for _, msg := range []string{players.Error, tournaments.Error, venues.Error} {
		if msg != "" {
			stats.Errors = append(stats.Errors, msg)
		}
	}
	return stats, nil
}
