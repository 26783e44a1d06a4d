package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/aribowo/matchday-tracker/internal/domain/team"
)

type TeamService struct {
	teamRepo team.Repository
}

func NewTeamService(teamRepo team.Repository) *TeamService {
	return &TeamService{teamRepo: teamRepo}
}

func (s *TeamService) List(ctx context.Context) ([]team.Profile, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TeamService.List")
	defer span.End()

	teams, err := s.teamRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list teams: %w", err)
	}

	return teams, nil
}

func (s *TeamService) Get(ctx context.Context, teamID string) (team.Profile, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TeamService.Get")
	defer span.End()

	teamID = strings.TrimSpace(teamID)
	if teamID == "" {
		return team.Profile{}, fmt.Errorf("%w: team id is required", ErrInvalidInput)
	}

	profile, exists, err := s.teamRepo.GetByID(ctx, teamID)
	if err != nil {
		return team.Profile{}, fmt.Errorf("get team: %w", err)
	}
	if !exists {
		return team.Profile{}, fmt.Errorf("%w: team=%s", ErrNotFound, teamID)
	}

	return profile, nil
}
