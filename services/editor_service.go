package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/Dosada05/scouting-system/editor"
	"github.com/Dosada05/scouting-system/live"
	"github.com/Dosada05/scouting-system/models"
	"github.com/Dosada05/scouting-system/repositories"
	"github.com/Dosada05/scouting-system/storage"
)

// maxEvaluationLoads bounds the concurrent evaluation requests of the overview.
const maxEvaluationLoads = 4

// EditorService drives the tournament view: the overview and the three
// editing tabs, whose unsaved forms live in the draft store.
type EditorService interface {
	Load(ctx context.Context, tournamentID string, tab editor.Tab) (*EditorView, error)

	ApplyTeamForm(ctx context.Context, tournamentID string, form editor.TeamForm, action TeamAction) (*models.Team, error)
	UpdateTeam(ctx context.Context, tournamentID, teamID string, input TeamInput) (*models.Team, error)
	DeleteTeam(ctx context.Context, tournamentID, teamID string, confirmed bool) error

	OpenGameForm(ctx context.Context, tournamentID, gameID string) (*editor.GameForm, error)
	SubmitGame(ctx context.Context, tournamentID string, form editor.GameForm) (*models.Game, error)
	CancelGame(ctx context.Context, tournamentID string) error
	DeleteGame(ctx context.Context, tournamentID, gameID string, confirmed bool) error

	SelectEvaluationPlayer(ctx context.Context, tournamentID, playerID string) error
	SubmitEvaluation(ctx context.Context, tournamentID string, form editor.EvaluationForm) (*models.Evaluation, error)

	GetGame(ctx context.Context, tournamentID, gameID string) (*GameDetailView, error)
	UploadVideo(ctx context.Context, tournamentID, gameID string, upload VideoUpload) (*VideoUploadResult, error)
}

type TeamActionKind string

const (
	TeamActionSave      TeamActionKind = "save"
	TeamActionAddRow    TeamActionKind = "add-row"
	TeamActionRemoveRow TeamActionKind = "remove-row"
	TeamActionCreate    TeamActionKind = "create"
)

type TeamAction struct {
	Kind TeamActionKind
	Row  int
}

// ParseTeamAction reads a submit button value such as "add-row" or "remove-row:2".
func ParseTeamAction(s string) TeamAction {
	kind, row, _ := strings.Cut(s, ":")
	action := TeamAction{Kind: TeamActionKind(kind)}
	switch action.Kind {
	case TeamActionAddRow, TeamActionCreate:
	case TeamActionRemoveRow:
		action.Row, _ = strconv.Atoi(row)
	default:
		action.Kind = TeamActionSave
	}
	return action
}

type TeamInput struct {
	Name     string               `json:"name"`
	KitColor string               `json:"kitColor"`
	Roster   []models.RosterEntry `json:"roster"`
}

type VideoUpload struct {
	Filename    string
	ContentType string
	Body        io.Reader
}

type VideoUploadResult struct {
	Report   models.VideoReport `json:"report"`
	Key      string             `json:"key,omitempty"`
	Location string             `json:"location,omitempty"`
}

type EditorView struct {
	Tournament   models.Tournament    `json:"tournament"`
	Tab          editor.Tab           `json:"tab"`
	Participants []models.Player      `json:"participants"`
	Overview     *editor.Overview     `json:"overview,omitempty"`
	Games        []editor.GameSummary `json:"games,omitempty"`
	Drafts       editor.Drafts        `json:"drafts"`
	// Evaluations of the player picked in the evaluation form.
	Evaluations []models.Evaluation `json:"evaluations,omitempty"`
	Error       string              `json:"error,omitempty"`
}

type GameDetailView struct {
	Tournament   models.Tournament  `json:"tournament"`
	Summary      editor.GameSummary `json:"summary"`
	VideoStorage bool               `json:"videoStorage"`
}

type editorService struct {
	tournamentRepo repositories.TournamentRepository
	evaluationRepo repositories.EvaluationRepository
	players        *Collection[models.Player]
	drafts         storage.DraftStore
	uploader       storage.FileUploader
	notifier       Notifier
	logger         *slog.Logger
	location       *time.Location
	scoutName      string

	draftsMu sync.Mutex
}

type EditorOptions struct {
	Location  *time.Location
	ScoutName string
	// Uploader stores video files; nil reports videos by name only.
	Uploader storage.FileUploader
}

func NewEditorService(
	tournamentRepo repositories.TournamentRepository,
	evaluationRepo repositories.EvaluationRepository,
	players *Collection[models.Player],
	drafts storage.DraftStore,
	notifier Notifier,
	logger *slog.Logger,
	opts EditorOptions,
) EditorService {
	loc := opts.Location
	if loc == nil {
		loc = time.UTC
	}
	return &editorService{
		tournamentRepo: tournamentRepo,
		evaluationRepo: evaluationRepo,
		players:        players,
		drafts:         drafts,
		uploader:       opts.Uploader,
		notifier:       notifier,
		logger:         logger,
		location:       loc,
		scoutName:      opts.ScoutName,
	}
}

func (s *editorService) tournament(ctx context.Context, id string) (*models.Tournament, error) {
	return lookupWithFallback(ctx, s.logger, "tournament", id,
		s.tournamentRepo.GetByID, s.tournamentRepo.List,
		func(t models.Tournament) string { return t.ID },
		ErrTournamentNotFound)
}

func (s *editorService) loadDrafts(t models.Tournament) editor.Drafts {
	d, found, err := s.drafts.Get(t.ID)
	if err != nil {
		s.logger.Warn("failed to read editor drafts", slog.String("tournament_id", t.ID), slog.Any("error", err))
	}
	if err != nil || !found {
		return editor.NewDrafts(t, s.scoutName)
	}
	return d
}

// updateDrafts runs fn on the stored drafts and saves the result even when
// fn fails, so form errors are shown on the next render. fn's error is returned.
func (s *editorService) updateDrafts(t models.Tournament, fn func(*editor.Drafts) error) error {
	s.draftsMu.Lock()
	defer s.draftsMu.Unlock()

	d := s.loadDrafts(t)
	fnErr := fn(&d)
	if err := s.drafts.Put(t.ID, d); err != nil {
		return errors.Join(fnErr, fmt.Errorf("failed to save editor drafts: %w", err))
	}
	return fnErr
}

func (s *editorService) changed(tournamentID string) {
	notify(s.notifier, live.TournamentRoom(tournamentID), live.TypeTournamentUpdated, tournamentID)
}

func (s *editorService) Load(ctx context.Context, tournamentID string, tab editor.Tab) (*EditorView, error) {
	var (
		t       *models.Tournament
		players Snapshot[models.Player]
	)
	// plain group: a failed lookup must not cancel the shared players refresh
	var g errgroup.Group
	g.Go(func() error {
		var err error
		t, err = s.tournament(ctx, tournamentID)
		return err
	})
	g.Go(func() error {
		players, _ = s.players.Refresh(ctx)
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	view := &EditorView{
		Tournament:   *t,
		Tab:          tab,
		Participants: editor.Participants(*t, players.Data),
		Drafts:       s.loadDrafts(*t),
		Error:        players.Error,
	}

	switch tab {
	case editor.TabOverview:
		evaluations := s.participantEvaluations(ctx, view.Participants)
		ov := editor.BuildOverview(*t, players.Data, evaluations)
		view.Overview = &ov
	case editor.TabGames:
		view.Games = editor.DescribeGames(*t, s.location)
	case editor.TabEvaluation:
		if id := view.Drafts.Evaluation.PlayerID; id != "" {
			evaluations, err := s.evaluationRepo.ListByPlayer(ctx, id)
			if err != nil {
				view.Drafts.EvalError = UserMessage("Loading evaluations", err)
			}
			view.Evaluations = evaluations
		}
	}
	return view, nil
}

// participantEvaluations loads every participant's evaluations. A failed
// load leaves that participant without evaluations; failures are logged
// once with the number of players affected.
func (s *editorService) participantEvaluations(ctx context.Context, participants []models.Player) map[string][]models.Evaluation {
	out := make(map[string][]models.Evaluation, len(participants))
	var (
		mu     sync.Mutex
		failed int
		g      errgroup.Group
	)
	g.SetLimit(maxEvaluationLoads)
	for _, p := range participants {
		g.Go(func() error {
			evaluations, err := s.evaluationRepo.ListByPlayer(ctx, p.ID)
			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				failed++
				return fmt.Errorf("failed to load evaluations of player %s: %w", p.ID, err)
			}
			out[p.ID] = evaluations
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		s.logger.WarnContext(ctx, "overview evaluations incomplete", slog.Int("failed", failed), slog.Any("error", err))
	}
	return out
}

func (s *editorService) participants(ctx context.Context, t models.Tournament) []models.Player {
	snap, _ := s.players.Refresh(ctx)
	return editor.Participants(t, snap.Data)
}

func (s *editorService) ApplyTeamForm(ctx context.Context, tournamentID string, form editor.TeamForm, action TeamAction) (*models.Team, error) {
	t, err := s.tournament(ctx, tournamentID)
	if err != nil {
		return nil, err
	}
	participants := s.participants(ctx, *t)

	var created *models.Team
	err = s.updateDrafts(*t, func(d *editor.Drafts) error {
		d.Team = form
		d.TeamError = ""
		if d.Team.KitColor == "" {
			d.Team.KitColor = editor.DefaultKitColor
		}
		for i, row := range d.Team.Rows {
			d.Team.SetRowSearch(i, row.Search, participants)
		}

		var actionErr error
		switch action.Kind {
		case TeamActionAddRow:
			d.Team.AddRow()
		case TeamActionRemoveRow:
			actionErr = d.Team.RemoveRow(action.Row)
		case TeamActionCreate:
			created, actionErr = s.createTeam(ctx, *t, d.Team, participants)
			if actionErr == nil {
				d.ResetTeam()
			}
		}
		if actionErr != nil {
			d.TeamError = UserMessage("Saving the team", actionErr)
		}
		return actionErr
	})
	return created, err
}

func (s *editorService) createTeam(ctx context.Context, t models.Tournament, form editor.TeamForm, participants []models.Player) (*models.Team, error) {
	if err := form.Validate(participants); err != nil {
		return nil, err
	}
	team, err := s.tournamentRepo.CreateTeam(ctx, t.ID, form.Team())
	if err != nil {
		return nil, fmt.Errorf("failed to create team in %s: %w", t.ID, mapNotFound(err, ErrTournamentNotFound))
	}
	s.logger.InfoContext(ctx, "team created", slog.String("tournament_id", t.ID), slog.String("team_id", team.ID))
	s.changed(t.ID)
	return team, nil
}

func (s *editorService) UpdateTeam(ctx context.Context, tournamentID, teamID string, input TeamInput) (*models.Team, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, editor.ErrTeamNameRequired
	}
	t, err := s.tournament(ctx, tournamentID)
	if err != nil {
		return nil, err
	}
	team, ok := t.Team(teamID)
	if !ok {
		return nil, ErrTeamNotFound
	}
	team.Name = name
	if input.KitColor != "" {
		team.KitColor = input.KitColor
	}
	if input.Roster != nil {
		team.Roster = input.Roster
	}

	if err := s.tournamentRepo.UpdateTeam(ctx, tournamentID, team); err != nil {
		return nil, fmt.Errorf("failed to update team %s: %w", teamID, mapNotFound(err, ErrTeamNotFound))
	}
	if err := s.tournamentRepo.UpdateRoster(ctx, tournamentID, teamID, team.Roster); err != nil {
		return nil, fmt.Errorf("failed to update roster of team %s: %w", teamID, mapNotFound(err, ErrTeamNotFound))
	}
	s.changed(tournamentID)
	return &team, nil
}

func (s *editorService) DeleteTeam(ctx context.Context, tournamentID, teamID string, confirmed bool) error {
	if !confirmed {
		return ErrConfirmationRequired
	}
	if err := s.tournamentRepo.DeleteTeam(ctx, tournamentID, teamID); err != nil {
		return fmt.Errorf("failed to delete team %s: %w", teamID, mapNotFound(err, ErrTeamNotFound))
	}
	s.logger.InfoContext(ctx, "team deleted", slog.String("tournament_id", tournamentID), slog.String("team_id", teamID))
	s.changed(tournamentID)
	return nil
}

// OpenGameForm shows the game form, blank for an empty gameID or filled
// from the stored game.
func (s *editorService) OpenGameForm(ctx context.Context, tournamentID, gameID string) (*editor.GameForm, error) {
	t, err := s.tournament(ctx, tournamentID)
	if err != nil {
		return nil, err
	}
	form := editor.NewGameForm(*t)
	if gameID != "" {
		g, ok := t.Game(gameID)
		if !ok {
			return nil, ErrGameNotFound
		}
		form = editor.GameFormFromGame(g, *t, s.location)
	}
	err = s.updateDrafts(*t, func(d *editor.Drafts) error {
		d.Game = form
		d.ShowGameForm = true
		d.GameError = ""
		return nil
	})
	return &form, err
}

func (s *editorService) SubmitGame(ctx context.Context, tournamentID string, form editor.GameForm) (*models.Game, error) {
	t, err := s.tournament(ctx, tournamentID)
	if err != nil {
		return nil, err
	}

	var saved *models.Game
	err = s.updateDrafts(*t, func(d *editor.Drafts) error {
		d.Game = form
		d.ShowGameForm = true
		d.GameError = ""

		req, err := form.Request(*t, s.location)
		if err == nil {
			if form.Editing() {
				saved, err = s.tournamentRepo.UpdateGame(ctx, t.ID, form.ID, req)
				err = mapNotFound(err, ErrGameNotFound)
			} else {
				saved, err = s.tournamentRepo.CreateGame(ctx, t.ID, req)
			}
		}
		if err != nil {
			d.GameError = UserMessage("Saving the game", err)
			return err
		}
		d.ResetGame(*t)
		return nil
	})
	if err != nil {
		return nil, err
	}
	s.logger.InfoContext(ctx, "game saved", slog.String("tournament_id", t.ID), slog.String("game_id", saved.ID))
	s.changed(t.ID)
	return saved, nil
}

func (s *editorService) CancelGame(ctx context.Context, tournamentID string) error {
	t, err := s.tournament(ctx, tournamentID)
	if err != nil {
		return err
	}
	return s.updateDrafts(*t, func(d *editor.Drafts) error {
		d.ResetGame(*t)
		return nil
	})
}

// DeleteGame removes the game and closes the form if it was editing it.
func (s *editorService) DeleteGame(ctx context.Context, tournamentID, gameID string, confirmed bool) error {
	if !confirmed {
		return ErrConfirmationRequired
	}
	t, err := s.tournament(ctx, tournamentID)
	if err != nil {
		return err
	}
	if err := s.tournamentRepo.DeleteGame(ctx, tournamentID, gameID); err != nil {
		return fmt.Errorf("failed to delete game %s: %w", gameID, mapNotFound(err, ErrGameNotFound))
	}
	s.logger.InfoContext(ctx, "game deleted", slog.String("tournament_id", tournamentID), slog.String("game_id", gameID))
	s.changed(tournamentID)

	return s.updateDrafts(*t, func(d *editor.Drafts) error {
		if d.Game.ID == gameID {
			d.ResetGame(*t)
		}
		return nil
	})
}

func (s *editorService) SelectEvaluationPlayer(ctx context.Context, tournamentID, playerID string) error {
	t, err := s.tournament(ctx, tournamentID)
	if err != nil {
		return err
	}
	return s.updateDrafts(*t, func(d *editor.Drafts) error {
		d.EvalError = ""
		d.EvalNotice = ""
		if playerID != "" && !t.HasParticipant(playerID) {
			d.EvalError = UserMessage("Selecting the player", editor.ErrNotParticipant)
			return editor.ErrNotParticipant
		}
		d.Evaluation.PlayerID = playerID
		return nil
	})
}

// SubmitEvaluation records an evaluation. On success only the free texts
// of the form are cleared.
func (s *editorService) SubmitEvaluation(ctx context.Context, tournamentID string, form editor.EvaluationForm) (*models.Evaluation, error) {
	t, err := s.tournament(ctx, tournamentID)
	if err != nil {
		return nil, err
	}

	var saved *models.Evaluation
	err = s.updateDrafts(*t, func(d *editor.Drafts) error {
		d.Evaluation = form
		d.EvalError = ""
		d.EvalNotice = ""

		err := form.Validate(*t)
		if err == nil {
			saved, err = s.evaluationRepo.Create(ctx, form.Request(t.ID))
		}
		if err != nil {
			d.EvalError = UserMessage("Saving the evaluation", err)
			return err
		}
		d.Evaluation.ResetText()
		d.EvalNotice = "Evaluation saved."
		return nil
	})
	if err != nil {
		return nil, err
	}
	s.logger.InfoContext(ctx, "evaluation saved", slog.String("tournament_id", t.ID), slog.String("player_id", form.PlayerID))
	s.changed(t.ID)
	return saved, nil
}

func (s *editorService) GetGame(ctx context.Context, tournamentID, gameID string) (*GameDetailView, error) {
	t, err := s.tournament(ctx, tournamentID)
	if err != nil {
		return nil, err
	}
	g, ok := t.Game(gameID)
	if !ok {
		return nil, ErrGameNotFound
	}
	return &GameDetailView{
		Tournament:   *t,
		Summary:      editor.DescribeGame(g, *t, s.location),
		VideoStorage: s.uploader != nil,
	}, nil
}

// UploadVideo stores the file when object storage is configured and then
// reports it to the backend as uploaded. A stored file whose report fails
// is removed again.
func (s *editorService) UploadVideo(ctx context.Context, tournamentID, gameID string, upload VideoUpload) (*VideoUploadResult, error) {
	name := strings.TrimSpace(upload.Filename)
	if name == "" || upload.Body == nil {
		return nil, ErrVideoFileRequired
	}
	if _, err := s.GetGame(ctx, tournamentID, gameID); err != nil {
		return nil, err
	}

	result := &VideoUploadResult{Report: models.VideoReport{Name: name, Status: models.VideoStatusUploaded}}
	if s.uploader != nil {
		key := storage.VideoKey(tournamentID, gameID, name)
		stored, err := s.uploader.Upload(ctx, key, upload.ContentType, upload.Body)
		if err != nil {
			return nil, fmt.Errorf("failed to store video: %w", err)
		}
		result.Key = stored.Key
		result.Location = stored.Location
	}

	if err := s.tournamentRepo.ReportVideo(ctx, tournamentID, gameID, result.Report); err != nil {
		if result.Key != "" {
			if delErr := s.uploader.Delete(ctx, result.Key); delErr != nil {
				s.logger.WarnContext(ctx, "failed to remove orphaned video", slog.String("key", result.Key), slog.Any("error", delErr))
			}
		}
		return nil, fmt.Errorf("failed to report video for game %s: %w", gameID, mapNotFound(err, ErrGameNotFound))
	}
	s.logger.InfoContext(ctx, "video reported", slog.String("tournament_id", tournamentID), slog.String("game_id", gameID), slog.String("name", name))
	s.changed(tournamentID)
	return result, nil
}
