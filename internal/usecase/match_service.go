package usecase

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/aribowo/matchday-tracker/internal/domain/match"
	"github.com/aribowo/matchday-tracker/internal/domain/team"
	"github.com/aribowo/matchday-tracker/internal/platform/id"
	"github.com/aribowo/matchday-tracker/internal/platform/logging"
)

// MatchResult carries the outcome of one played fixture.
type MatchResult struct {
	ScoreFor      int
	ScoreAgainst  int
	PlayerGoals   int
	PlayerAssists int
	Rating        *float64
	ManOfTheMatch bool
	Scorers       []match.ScorerEntry
	VideoLinks    []string
	Notes         string
}

type statsInvalidator interface {
	InvalidateTeam(ctx context.Context, teamID string)
}

// MatchService manages the match record book around the pure stats core.
type MatchService struct {
	teamRepo  team.Repository
	matchRepo match.Repository
	idGen     id.Generator
	stats     statsInvalidator
	logger    *logging.Logger
	now       func() time.Time
}

func NewMatchService(
	teamRepo team.Repository,
	matchRepo match.Repository,
	idGen id.Generator,
	stats statsInvalidator,
	logger *logging.Logger,
) *MatchService {
	if logger == nil {
		logger = logging.Default()
	}
	return &MatchService{
		teamRepo:  teamRepo,
		matchRepo: matchRepo,
		idGen:     idGen,
		stats:     stats,
		logger:    logger,
		now:       time.Now,
	}
}

func (s *MatchService) ListByTeam(ctx context.Context, teamID string) ([]match.Record, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchService.ListByTeam")
	defer span.End()

	if err := s.ensureTeam(ctx, teamID); err != nil {
		return nil, err
	}

	records, err := s.matchRepo.ListByTeam(ctx, teamID)
	if err != nil {
		return nil, fmt.Errorf("list matches by team: %w", err)
	}

	sort.SliceStable(records, func(i, j int) bool {
		return records[i].Date.After(records[j].Date)
	})

	return records, nil
}

func (s *MatchService) Get(ctx context.Context, teamID, matchID string) (match.Record, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchService.Get")
	defer span.End()

	record, exists, err := s.matchRepo.GetByID(ctx, teamID, matchID)
	if err != nil {
		return match.Record{}, fmt.Errorf("get match: %w", err)
	}
	if !exists {
		return match.Record{}, fmt.Errorf("%w: match=%s", ErrNotFound, matchID)
	}

	return record, nil
}

// Create stores a new fixture. Scheduled fixtures carry no result yet;
// completed ones are validated like any played match.
func (s *MatchService) Create(ctx context.Context, record match.Record) (match.Record, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchService.Create")
	defer span.End()

	if err := s.ensureTeam(ctx, record.TeamID); err != nil {
		return match.Record{}, err
	}

	if record.ID == "" {
		generated, err := s.idGen.NewID()
		if err != nil {
			return match.Record{}, fmt.Errorf("generate match id: %w", err)
		}
		record.ID = generated
	}
	record.Status = match.NormalizeStatus(record.Status)
	record.Type = match.NormalizeType(record.Type)
	record.Opponent = strings.TrimSpace(record.Opponent)
	if record.Opponent == "" {
		return match.Record{}, fmt.Errorf("%w: opponent is required", ErrInvalidInput)
	}
	if err := record.Validate(); err != nil {
		return match.Record{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	now := s.now().UTC()
	record.CreatedAt = now
	record.UpdatedAt = now

	if err := s.matchRepo.Create(ctx, record); err != nil {
		return match.Record{}, fmt.Errorf("create match: %w", err)
	}

	s.invalidate(ctx, record.TeamID)
	s.logger.InfoContext(ctx, "match created",
		"match_id", record.ID,
		"team_id", record.TeamID,
		"status", record.Status,
	)

	return record, nil
}

// Update edits fields of an existing record. The status field is immutable
// here; RecordResult owns the scheduled to completed transition.
func (s *MatchService) Update(ctx context.Context, record match.Record) (match.Record, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchService.Update")
	defer span.End()

	current, err := s.Get(ctx, record.TeamID, record.ID)
	if err != nil {
		return match.Record{}, err
	}

	if record.Status != "" && match.NormalizeStatus(record.Status) != current.Status {
		return match.Record{}, fmt.Errorf("%w: status changes only through result recording", ErrStatusTransition)
	}
	record.Status = current.Status
	record.Type = match.NormalizeType(record.Type)
	record.CreatedAt = current.CreatedAt
	record.UpdatedAt = s.now().UTC()

	if err := record.Validate(); err != nil {
		return match.Record{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if err := s.matchRepo.Update(ctx, record); err != nil {
		return match.Record{}, fmt.Errorf("update match: %w", err)
	}

	s.invalidate(ctx, record.TeamID)

	return record, nil
}

// RecordResult moves a scheduled fixture to completed with its final result.
// The transition is one-way: completed matches never return to scheduled.
func (s *MatchService) RecordResult(ctx context.Context, teamID, matchID string, result MatchResult) (match.Record, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchService.RecordResult")
	defer span.End()

	record, err := s.Get(ctx, teamID, matchID)
	if err != nil {
		return match.Record{}, err
	}
	if record.IsCompleted() {
		return match.Record{}, fmt.Errorf("%w: match %s is already completed", ErrStatusTransition, matchID)
	}

	record.Status = match.StatusCompleted
	record.ScoreFor = result.ScoreFor
	record.ScoreAgainst = result.ScoreAgainst
	record.PlayerGoals = result.PlayerGoals
	record.PlayerAssists = result.PlayerAssists
	record.Rating = result.Rating
	record.ManOfTheMatch = result.ManOfTheMatch
	record.Scorers = result.Scorers
	record.VideoLinks = result.VideoLinks
	if result.Notes != "" {
		record.Notes = result.Notes
	}
	record.UpdatedAt = s.now().UTC()

	if err := record.Validate(); err != nil {
		return match.Record{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if err := s.matchRepo.Update(ctx, record); err != nil {
		return match.Record{}, fmt.Errorf("record match result: %w", err)
	}

	s.invalidate(ctx, teamID)
	s.logger.InfoContext(ctx, "match result recorded",
		"match_id", matchID,
		"team_id", teamID,
		"score", fmt.Sprintf("%d-%d", result.ScoreFor, result.ScoreAgainst),
	)

	return record, nil
}

func (s *MatchService) Delete(ctx context.Context, teamID, matchID string) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchService.Delete")
	defer span.End()

	if _, err := s.Get(ctx, teamID, matchID); err != nil {
		return err
	}

	if err := s.matchRepo.Delete(ctx, teamID, matchID); err != nil {
		return fmt.Errorf("delete match: %w", err)
	}

	s.invalidate(ctx, teamID)

	return nil
}

func (s *MatchService) ensureTeam(ctx context.Context, teamID string) error {
	teamID = strings.TrimSpace(teamID)
	if teamID == "" {
		return fmt.Errorf("%w: team id is required", ErrInvalidInput)
	}
	_, exists, err := s.teamRepo.GetByID(ctx, teamID)
	if err != nil {
		return fmt.Errorf("get team: %w", err)
	}
	if !exists {
		return fmt.Errorf("%w: team=%s", ErrNotFound, teamID)
	}
	return nil
}

func (s *MatchService) invalidate(ctx context.Context, teamID string) {
	if s.stats != nil {
		s.stats.InvalidateTeam(ctx, teamID)
	}
}
