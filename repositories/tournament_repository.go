package repositories

import (
	"context"

	"github.com/Dosada05/scouting-system/models"
)

// TournamentRepository covers the tournament aggregate: the tournament itself
// plus its nested teams, games and video reports.
type TournamentRepository interface {
	List(ctx context.Context) ([]models.Tournament, error)
	GetByID(ctx context.Context, id string) (*models.Tournament, error)
	Create(ctx context.Context, req models.TournamentRequest) (*models.Tournament, error)
	Update(ctx context.Context, id string, req models.TournamentRequest) (*models.Tournament, error)
	UpdateParticipants(ctx context.Context, id string, participants []string) error
	Delete(ctx context.Context, id string) error

	CreateTeam(ctx context.Context, tournamentID string, team models.Team) (*models.Team, error)
	UpdateTeam(ctx context.Context, tournamentID string, team models.Team) error
	UpdateRoster(ctx context.Context, tournamentID, teamID string, roster []models.RosterEntry) error
	DeleteTeam(ctx context.Context, tournamentID, teamID string) error

	CreateGame(ctx context.Context, tournamentID string, req models.GameRequest) (*models.Game, error)
	UpdateGame(ctx context.Context, tournamentID, gameID string, req models.GameRequest) (*models.Game, error)
	DeleteGame(ctx context.Context, tournamentID, gameID string) error
	ReportVideo(ctx context.Context, tournamentID, gameID string, report models.VideoReport) error
}

type apiTournamentRepository struct {
	client *Client
}

func NewAPITournamentRepository(client *Client) TournamentRepository {
	return &apiTournamentRepository{client: client}
}

func (r *apiTournamentRepository) List(ctx context.Context) ([]models.Tournament, error) {
	tournaments := make([]models.Tournament, 0)
	if err := r.client.get(ctx, "/tournaments", &tournaments); err != nil {
		return nil, err
	}
	if tournaments == nil {
		return []models.Tournament{}, nil
	}
	return tournaments, nil
}

func (r *apiTournamentRepository) GetByID(ctx context.Context, id string) (*models.Tournament, error) {
	var t models.Tournament
	if err := r.client.get(ctx, entityPath("tournaments", id), &t); err != nil {
		return nil, err
	}
	if t.ID == "" {
		return nil, ErrNotFound
	}
	return &t, nil
}

func (r *apiTournamentRepository) Create(ctx context.Context, req models.TournamentRequest) (*models.Tournament, error) {
	var saved models.Tournament
	if err := r.client.post(ctx, "/tournaments", req, &saved); err != nil {
		return nil, err
	}
	return &saved, nil
}

func (r *apiTournamentRepository) Update(ctx context.Context, id string, req models.TournamentRequest) (*models.Tournament, error) {
	var saved models.Tournament
	if err := r.client.put(ctx, entityPath("tournaments", id), req, &saved); err != nil {
		return nil, err
	}
	if saved.ID == "" {
		saved.ID = id
	}
	return &saved, nil
}

func (r *apiTournamentRepository) UpdateParticipants(ctx context.Context, id string, participants []string) error {
	if participants == nil {
		participants = []string{}
	}
	return r.client.put(ctx, entityPath("tournaments", id, "participants"), models.ParticipantsRequest{Participants: participants}, nil)
}

func (r *apiTournamentRepository) Delete(ctx context.Context, id string) error {
	return r.client.delete(ctx, entityPath("tournaments", id))
}

func (r *apiTournamentRepository) CreateTeam(ctx context.Context, tournamentID string, team models.Team) (*models.Team, error) {
	if team.Roster == nil {
		team.Roster = []models.RosterEntry{}
	}
	team.ID = ""
	var saved models.Team
	if err := r.client.post(ctx, entityPath("tournaments", tournamentID, "teams"), team, &saved); err != nil {
		return nil, err
	}
	return &saved, nil
}

func (r *apiTournamentRepository) UpdateTeam(ctx context.Context, tournamentID string, team models.Team) error {
	body := struct {
		Name     string `json:"name"`
		KitColor string `json:"kitColor"`
	}{Name: team.Name, KitColor: team.KitColor}
	return r.client.put(ctx, entityPath("tournaments", tournamentID, "teams", team.ID), body, nil)
}

func (r *apiTournamentRepository) UpdateRoster(ctx context.Context, tournamentID, teamID string, roster []models.RosterEntry) error {
	if roster == nil {
		roster = []models.RosterEntry{}
	}
	return r.client.put(ctx, entityPath("tournaments", tournamentID, "teams", teamID, "roster"), models.RosterRequest{Roster: roster}, nil)
}

func (r *apiTournamentRepository) DeleteTeam(ctx context.Context, tournamentID, teamID string) error {
	return r.client.delete(ctx, entityPath("tournaments", tournamentID, "teams", teamID))
}

func (r *apiTournamentRepository) CreateGame(ctx context.Context, tournamentID string, req models.GameRequest) (*models.Game, error) {
	var saved models.Game
	if err := r.client.post(ctx, entityPath("tournaments", tournamentID, "games"), req, &saved); err != nil {
		return nil, err
	}
	return &saved, nil
}

func (r *apiTournamentRepository) UpdateGame(ctx context.Context, tournamentID, gameID string, req models.GameRequest) (*models.Game, error) {
	var saved models.Game
	if err := r.client.put(ctx, entityPath("tournaments", tournamentID, "games", gameID), req, &saved); err != nil {
		return nil, err
	}
	if saved.ID == "" {
		saved.ID = gameID
	}
	return &saved, nil
}

func (r *apiTournamentRepository) DeleteGame(ctx context.Context, tournamentID, gameID string) error {
	return r.client.delete(ctx, entityPath("tournaments", tournamentID, "games", gameID))
}

func (r *apiTournamentRepository) ReportVideo(ctx context.Context, tournamentID, gameID string, report models.VideoReport) error {
	return r.client.put(ctx, entityPath("tournaments", tournamentID, "games", gameID, "video"), report, nil)
}
