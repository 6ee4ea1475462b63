package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/Dosada05/scouting-system/listing"
	"github.com/Dosada05/scouting-system/live"
	"github.com/Dosada05/scouting-system/models"
	"github.com/Dosada05/scouting-system/repositories"
	"github.com/Dosada05/scouting-system/storage"
	"github.com/Dosada05/scouting-system/utils"
)

// SuggestionLimit caps venue and participant suggestions in the tournament form.
const SuggestionLimit = 5

type TournamentService interface {
	ListTournaments(ctx context.Context, q listing.Query) (*TournamentListView, error)
	GetTournament(ctx context.Context, id string) (*models.Tournament, error)
	CreateTournament(ctx context.Context, input TournamentInput) (*models.Tournament, error)
	UpdateTournament(ctx context.Context, id string, input TournamentInput) (*models.Tournament, error)
	DeleteTournament(ctx context.Context, id string, confirmed bool) error
	Suggest(ctx context.Context, q SuggestionQuery) (*TournamentSuggestions, error)
}

type TournamentInput struct {
	Name         string   `json:"name"`
	Country      string   `json:"country"`
	Start        string   `json:"start"`
	End          string   `json:"end"`
	Note         string   `json:"note"`
	VenueID      string   `json:"venueId"`
	Participants []string `json:"participants"`
}

type SuggestionQuery struct {
	VenueSearch  string   `json:"venueSearch"`
	PlayerSearch string   `json:"playerSearch"`
	Chosen       []string `json:"chosen"`
	VenueID      string   `json:"venueId"`
}

type TournamentSuggestions struct {
	Venues  []models.Venue  `json:"venues"`
	Players []models.Player `json:"players"`
	// Chosen resolves SuggestionQuery.Chosen to players, for rendering the picked list.
	Chosen []models.Player `json:"chosen"`
	// Venue resolves SuggestionQuery.VenueID.
	Venue *models.Venue `json:"venue,omitempty"`
	Error string        `json:"error,omitempty"`
}

type TournamentListView struct {
	listing.Result[models.Tournament]
	Error string `json:"error,omitempty"`
}

type tournamentService struct {
	tournamentRepo repositories.TournamentRepository
	collections    *Collections
	drafts         storage.DraftStore
	notifier       Notifier
	logger         *slog.Logger
}

func NewTournamentService(
	tournamentRepo repositories.TournamentRepository,
	collections *Collections,
	drafts storage.DraftStore,
	notifier Notifier,
	logger *slog.Logger,
) TournamentService {
	return &tournamentService{
		tournamentRepo: tournamentRepo,
		collections:    collections,
		drafts:         drafts,
		notifier:       notifier,
		logger:         logger,
	}
}

func TournamentListSpec() listing.Spec[models.Tournament] {
	return listing.Spec[models.Tournament]{
		Haystack: func(t models.Tournament) string { return listing.Join(t.Name, t.VenueName()) },
		Fields: map[string]listing.Field[models.Tournament]{
			"name":  {Text: func(t models.Tournament) string { return strings.ToLower(t.Name) }},
			"start": {Text: func(t models.Tournament) string { return t.Start }},
			"venue": {Text: func(t models.Tournament) string { return strings.ToLower(t.VenueName()) }},
		},
		DefaultField: "start",
	}
}

func (s *tournamentService) ListTournaments(ctx context.Context, q listing.Query) (*TournamentListView, error) {
	snap, _ := s.collections.Tournaments.Refresh(ctx)
	return &TournamentListView{
		Result: listing.Apply(snap.Data, q, TournamentListSpec()),
		Error:  snap.Error,
	}, nil
}

func (s *tournamentService) GetTournament(ctx context.Context, id string) (*models.Tournament, error) {
	return lookupWithFallback(ctx, s.logger, "tournament", id,
		s.tournamentRepo.GetByID, s.tournamentRepo.List,
		func(t models.Tournament) string { return t.ID },
		ErrTournamentNotFound)
}

func (in TournamentInput) request() (models.TournamentRequest, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return models.TournamentRequest{}, ErrTournamentNameRequired
	}
	start, err := optionalDate(in.Start)
	if err != nil {
		return models.TournamentRequest{}, err
	}
	end, err := optionalDate(in.End)
	if err != nil {
		return models.TournamentRequest{}, err
	}
	if start != nil && end != nil && *end < *start {
		return models.TournamentRequest{}, ErrTournamentInvalidDateRange
	}
	return models.TournamentRequest{
		Name:         name,
		Country:      strings.TrimSpace(in.Country),
		Start:        start,
		End:          end,
		Note:         strings.TrimSpace(in.Note),
		VenueID:      optionalString(in.VenueID),
		Participants: uniqueIDs(in.Participants),
	}, nil
}

func optionalDate(s string) (*string, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}
	d, err := utils.NormalizeDate(s)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrTournamentInvalidDate, s)
	}
	return &d, nil
}

func uniqueIDs(ids []string) []string {
	seen := make(map[string]bool, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		id = strings.TrimSpace(id)
		if id == "" || seen[id] {
			continue
		}
		seen[id] = true
		out = append(out, id)
	}
	return out
}

func (s *tournamentService) CreateTournament(ctx context.Context, input TournamentInput) (*models.Tournament, error) {
	req, err := input.request()
	if err != nil {
		return nil, err
	}
	saved, err := s.tournamentRepo.Create(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("failed to create tournament: %w", err)
	}
	s.logger.InfoContext(ctx, "tournament created", slog.String("tournament_id", saved.ID))
	notify(s.notifier, live.RoomTournaments, live.TypeTournamentsChanged, saved.ID)
	return saved, nil
}

// UpdateTournament replaces the tournament's fields and then its participant
// list, so an emptied list is stored too.
func (s *tournamentService) UpdateTournament(ctx context.Context, id string, input TournamentInput) (*models.Tournament, error) {
	req, err := input.request()
	if err != nil {
		return nil, err
	}
	saved, err := s.tournamentRepo.Update(ctx, id, req)
	if err != nil {
		return nil, fmt.Errorf("failed to update tournament %s: %w", id, mapNotFound(err, ErrTournamentNotFound))
	}
	if err := s.tournamentRepo.UpdateParticipants(ctx, id, req.Participants); err != nil {
		return nil, fmt.Errorf("failed to update participants of %s: %w", id, mapNotFound(err, ErrTournamentNotFound))
	}
	saved.Participants = req.Participants

	notify(s.notifier, live.RoomTournaments, live.TypeTournamentsChanged, id)
	notify(s.notifier, live.TournamentRoom(id), live.TypeTournamentUpdated, id)
	return saved, nil
}

func (s *tournamentService) DeleteTournament(ctx context.Context, id string, confirmed bool) error {
	if !confirmed {
		return ErrConfirmationRequired
	}
	if err := s.tournamentRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrTournamentNotFound
		}
		return fmt.Errorf("failed to delete tournament %s: %w", id, err)
	}
	s.logger.InfoContext(ctx, "tournament deleted", slog.String("tournament_id", id))
	if err := s.drafts.Delete(id); err != nil {
		s.logger.WarnContext(ctx, "failed to discard editor drafts", slog.String("tournament_id", id), slog.Any("error", err))
	}
	s.collections.Tournaments.Refresh(ctx)
	notify(s.notifier, live.RoomTournaments, live.TypeTournamentsChanged, id)
	return nil
}

func (s *tournamentService) Suggest(ctx context.Context, q SuggestionQuery) (*TournamentSuggestions, error) {
	g, gctx := errgroup.WithContext(ctx)
	var players Snapshot[models.Player]
	var venues Snapshot[models.Venue]
	g.Go(func() error { players, _ = s.collections.Players.Refresh(gctx); return nil })
	g.Go(func() error { venues, _ = s.collections.Venues.Refresh(gctx); return nil })
	_ = g.Wait()

	out := &TournamentSuggestions{
		Venues:  VenueSuggestions(venues.Data, q.VenueSearch),
		Players: ParticipantSuggestions(players.Data, q.PlayerSearch, q.Chosen),
		Chosen:  []models.Player{},
	}
	chosen := make(map[string]bool, len(q.Chosen))
	for _, id := range q.Chosen {
		chosen[id] = true
	}
	for _, p := range players.Data {
		if chosen[p.ID] {
			out.Chosen = append(out.Chosen, p)
		}
	}
	for i := range venues.Data {
		if q.VenueID != "" && venues.Data[i].ID == q.VenueID {
			out.Venue = &venues.Data[i]
			break
		}
	}
	out.Error = strings.TrimSpace(players.Error + " " + venues.Error)
	return out, nil
}

// VenueSuggestions returns up to SuggestionLimit venues whose name and
// address contain term. An empty term suggests nothing.
func VenueSuggestions(venues []models.Venue, term string) []models.Venue {
	term = strings.ToLower(strings.TrimSpace(term))
	out := []models.Venue{}
	if term == "" {
		return out
	}
	for _, v := range venues {
		if len(out) == SuggestionLimit {
			break
		}
		if strings.Contains(strings.ToLower(v.Name+" "+v.Address), term) {
			out = append(out, v)
		}
	}
	return out
}

// ParticipantSuggestions returns up to SuggestionLimit players whose full
// name contains term, leaving out the ones already chosen.
func ParticipantSuggestions(players []models.Player, term string, chosen []string) []models.Player {
	term = strings.ToLower(strings.TrimSpace(term))
	out := []models.Player{}
	if term == "" {
		return out
	}
	skip := make(map[string]bool, len(chosen))
	for _, id := range chosen {
		skip[id] = true
	}
	for _, p := range players {
		if len(out) == SuggestionLimit {
			break
		}
		if skip[p.ID] {
			continue
		}
		if strings.Contains(strings.ToLower(p.FirstName+" "+p.LastName), term) {
			out = append(out, p)
		}
	}
	return out
}
