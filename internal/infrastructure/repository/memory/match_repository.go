package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/aribowo/matchday-tracker/internal/domain/match"
)

type MatchRepository struct {
	mu            sync.RWMutex
	recordsByTeam map[string][]match.Record
}

func NewMatchRepository(records []match.Record) *MatchRepository {
	recordsByTeam := make(map[string][]match.Record)
	for _, record := range records {
		recordsByTeam[record.TeamID] = append(recordsByTeam[record.TeamID], record)
	}

	return &MatchRepository{recordsByTeam: recordsByTeam}
}

func (r *MatchRepository) List(_ context.Context) ([]match.Record, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]match.Record, 0)
	for _, records := range r.recordsByTeam {
		out = append(out, records...)
	}

	return out, nil
}

func (r *MatchRepository) ListByTeam(_ context.Context, teamID string) ([]match.Record, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	records := r.recordsByTeam[teamID]
	out := make([]match.Record, 0, len(records))
	out = append(out, records...)

	return out, nil
}

func (r *MatchRepository) GetByID(_ context.Context, teamID, matchID string) (match.Record, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, record := range r.recordsByTeam[teamID] {
		if record.ID == matchID {
			return record, true, nil
		}
	}

	return match.Record{}, false, nil
}

func (r *MatchRepository) Create(_ context.Context, record match.Record) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.recordsByTeam[record.TeamID] {
		if existing.ID == record.ID {
			return fmt.Errorf("match %s already exists", record.ID)
		}
	}
	r.recordsByTeam[record.TeamID] = append(r.recordsByTeam[record.TeamID], record)

	return nil
}

func (r *MatchRepository) Update(_ context.Context, record match.Record) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	records := r.recordsByTeam[record.TeamID]
	for idx := range records {
		if records[idx].ID == record.ID {
			records[idx] = record
			return nil
		}
	}

	return fmt.Errorf("match %s not found", record.ID)
}

func (r *MatchRepository) Delete(_ context.Context, teamID, matchID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	records := r.recordsByTeam[teamID]
	for idx := range records {
		if records[idx].ID == matchID {
			r.recordsByTeam[teamID] = append(records[:idx], records[idx+1:]...)
			return nil
		}
	}

	return fmt.Errorf("match %s not found", matchID)
}
