package memory

import (
	"context"
	"sync"

	"github.com/aribowo/matchday-tracker/internal/domain/team"
)

type TeamRepository struct {
	mu    sync.RWMutex
	order []string
	index map[string]team.Profile
}

func NewTeamRepository(teams []team.Profile) *TeamRepository {
	order := make([]string, 0, len(teams))
	index := make(map[string]team.Profile, len(teams))
	for _, profile := range teams {
		order = append(order, profile.ID)
		index[profile.ID] = profile
	}

	return &TeamRepository{order: order, index: index}
}

func (r *TeamRepository) List(_ context.Context) ([]team.Profile, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]team.Profile, 0, len(r.order))
	for _, teamID := range r.order {
		out = append(out, r.index[teamID])
	}

	return out, nil
}

func (r *TeamRepository) GetByID(_ context.Context, teamID string) (team.Profile, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	profile, ok := r.index[teamID]
	return profile, ok, nil
}
