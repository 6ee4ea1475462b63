package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/Dosada05/scouting-system/listing"
	"github.com/Dosada05/scouting-system/live"
	"github.com/Dosada05/scouting-system/models"
	"github.com/Dosada05/scouting-system/repositories"
	"github.com/Dosada05/scouting-system/utils"
)

type PlayerService interface {
	ListPlayers(ctx context.Context, q listing.Query) (*PlayerListView, error)
	GetPlayer(ctx context.Context, id string) (*models.Player, error)
	GetPlayerDetail(ctx context.Context, id string) (*PlayerDetailView, error)
	CreatePlayer(ctx context.Context, input PlayerInput) (*models.Player, error)
	UpdatePlayer(ctx context.Context, id string, input PlayerInput) (*models.Player, error)
	DeletePlayer(ctx context.Context, id string, confirmed bool) error
}

// PlayerInput is the player form. Photo replaces the stored photo only when set.
type PlayerInput struct {
	FirstName   string       `json:"firstName"`
	LastName    string       `json:"lastName"`
	Birthdate   string       `json:"birthdate"`
	Nation      string       `json:"nation"`
	PlaysIn     string       `json:"playsIn"`
	Position    string       `json:"position"`
	Club        string       `json:"club"`
	Level       string       `json:"level"`
	Height      string       `json:"height"`
	Foot        string       `json:"foot"`
	Note        string       `json:"note"`
	Shortlisted bool         `json:"shortlisted"`
	Photo       *PhotoUpload `json:"photo"`
}

type PlayerRow struct {
	Player models.Player `json:"player"`
	Age    int           `json:"age"`
	HasAge bool          `json:"hasAge"`
}

type PlayerListView struct {
	listing.Result[PlayerRow]
	Error string `json:"error,omitempty"`
}

type PlayerDetailView struct {
	Player           models.Player       `json:"player"`
	Age              int                 `json:"age"`
	HasAge           bool                `json:"hasAge"`
	Evaluations      []models.Evaluation `json:"evaluations"`
	EvaluationsError string              `json:"evaluationsError,omitempty"`
}

type playerService struct {
	playerRepo     repositories.PlayerRepository
	evaluationRepo repositories.EvaluationRepository
	players        *Collection[models.Player]
	notifier       Notifier
	logger         *slog.Logger
	now            func() time.Time
}

func NewPlayerService(
	playerRepo repositories.PlayerRepository,
	evaluationRepo repositories.EvaluationRepository,
	players *Collection[models.Player],
	notifier Notifier,
	logger *slog.Logger,
) PlayerService {
	return &playerService{
		playerRepo:     playerRepo,
		evaluationRepo: evaluationRepo,
		players:        players,
		notifier:       notifier,
		logger:         logger,
		now:            time.Now,
	}
}

// PlayerListSpec searches and sorts player rows. Level and age sort
// numerically; an empty level or unknown age counts as 0.
func PlayerListSpec() listing.Spec[PlayerRow] {
	return listing.Spec[PlayerRow]{
		Haystack: func(r PlayerRow) string {
			p := r.Player
			return listing.Join(p.FirstName, p.LastName, p.Nation, p.Club, p.Level, p.PlaysIn, p.Foot)
		},
		Fields: map[string]listing.Field[PlayerRow]{
			"name":   {Text: func(r PlayerRow) string { return strings.ToLower(r.Player.FullName()) }},
			"club":   {Text: func(r PlayerRow) string { return strings.ToLower(r.Player.Club) }},
			"nation": {Text: func(r PlayerRow) string { return strings.ToLower(r.Player.Nation) }},
			"level": {Number: func(r PlayerRow) float64 {
				v, _ := strconv.ParseFloat(strings.TrimSpace(r.Player.Level), 64)
				return v
			}},
			"age": {Number: func(r PlayerRow) float64 { return float64(r.Age) }},
		},
		DefaultField: "name",
	}
}

func (s *playerService) ListPlayers(ctx context.Context, q listing.Query) (*PlayerListView, error) {
	snap, _ := s.players.Refresh(ctx)

	today := s.now()
	rows := make([]PlayerRow, len(snap.Data))
	for i, p := range snap.Data {
		age, ok := utils.ComputeAge(p.Birthdate, today)
		rows[i] = PlayerRow{Player: p, Age: age, HasAge: ok}
	}

	return &PlayerListView{
		Result: listing.Apply(rows, q, PlayerListSpec()),
		Error:  snap.Error,
	}, nil
}

func (s *playerService) GetPlayer(ctx context.Context, id string) (*models.Player, error) {
	return lookupWithFallback(ctx, s.logger, "player", id,
		s.playerRepo.GetByID, s.playerRepo.List,
		func(p models.Player) string { return p.ID },
		ErrPlayerNotFound)
}

func (s *playerService) GetPlayerDetail(ctx context.Context, id string) (*PlayerDetailView, error) {
	player, err := s.GetPlayer(ctx, id)
	if err != nil {
		return nil, err
	}
	view := &PlayerDetailView{Player: *player, Evaluations: []models.Evaluation{}}
	view.Age, view.HasAge = utils.ComputeAge(player.Birthdate, s.now())

	evaluations, err := s.evaluationRepo.ListByPlayer(ctx, player.ID)
	if err != nil {
		s.logger.WarnContext(ctx, "failed to load evaluations", slog.String("player_id", player.ID), slog.Any("error", err))
		view.EvaluationsError = UserMessage("Loading evaluations", err)
	} else {
		view.Evaluations = evaluations
	}
	return view, nil
}

func (in PlayerInput) apply(p *models.Player) error {
	in.FirstName = strings.TrimSpace(in.FirstName)
	in.LastName = strings.TrimSpace(in.LastName)
	in.Nation = strings.TrimSpace(in.Nation)
	if in.FirstName == "" || in.LastName == "" || strings.TrimSpace(in.Birthdate) == "" || in.Nation == "" {
		return ErrPlayerFieldsRequired
	}
	birthdate, err := utils.NormalizeDate(in.Birthdate)
	if err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidBirthdate, in.Birthdate)
	}
	photo, err := photoDataURI(in.Photo)
	if err != nil {
		return err
	}

	p.FirstName = in.FirstName
	p.LastName = in.LastName
	p.Birthdate = birthdate
	p.Nation = in.Nation
	p.PlaysIn = strings.TrimSpace(in.PlaysIn)
	p.Position = strings.TrimSpace(in.Position)
	p.Club = strings.TrimSpace(in.Club)
	p.Level = strings.TrimSpace(in.Level)
	p.Height = strings.TrimSpace(in.Height)
	p.Foot = strings.TrimSpace(in.Foot)
	p.Note = strings.TrimSpace(in.Note)
	p.Shortlisted = in.Shortlisted
	if photo != "" {
		p.PhotoData = photo
	}
	return nil
}

func (s *playerService) CreatePlayer(ctx context.Context, input PlayerInput) (*models.Player, error) {
	player := &models.Player{}
	if err := input.apply(player); err != nil {
		return nil, err
	}
	saved, err := s.playerRepo.Create(ctx, player)
	if err != nil {
		return nil, fmt.Errorf("failed to create player: %w", err)
	}
	s.logger.InfoContext(ctx, "player created", slog.String("player_id", saved.ID))
	notify(s.notifier, live.RoomPlayers, live.TypePlayersChanged, saved.ID)
	return saved, nil
}

func (s *playerService) UpdatePlayer(ctx context.Context, id string, input PlayerInput) (*models.Player, error) {
	existing, err := s.GetPlayer(ctx, id)
	if err != nil {
		return nil, err
	}
	player := *existing
	if err := input.apply(&player); err != nil {
		return nil, err
	}
	saved, err := s.playerRepo.Update(ctx, &player)
	if err != nil {
		return nil, fmt.Errorf("failed to update player %s: %w", id, mapNotFound(err, ErrPlayerNotFound))
	}
	notify(s.notifier, live.RoomPlayers, live.TypePlayersChanged, saved.ID)
	return saved, nil
}

func (s *playerService) DeletePlayer(ctx context.Context, id string, confirmed bool) error {
	if !confirmed {
		return ErrConfirmationRequired
	}
	if err := s.playerRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrPlayerNotFound
		}
		return fmt.Errorf("failed to delete player %s: %w", id, err)
	}
	s.logger.InfoContext(ctx, "player deleted", slog.String("player_id", id))
	s.players.Refresh(ctx)
	notify(s.notifier, live.RoomPlayers, live.TypePlayersChanged, id)
	return nil
}
