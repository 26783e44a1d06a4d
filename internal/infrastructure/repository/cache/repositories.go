// Package cache wraps the persistent repositories with read-through
// memoization. Match reads are what the stats derivations hammer, so
// those carry invalidation hooks on every write.
package cache

import (
	"context"

	"github.com/aribowo/matchday-tracker/internal/domain/match"
	"github.com/aribowo/matchday-tracker/internal/domain/team"
	basecache "github.com/aribowo/matchday-tracker/internal/platform/cache"
)

type TeamRepository struct {
	next  team.Repository
	cache *basecache.Store
}

func NewTeamRepository(next team.Repository, cache *basecache.Store) *TeamRepository {
	return &TeamRepository{next: next, cache: cache}
}

func (r *TeamRepository) List(ctx context.Context) ([]team.Profile, error) {
	v, err := r.cache.GetOrLoad(ctx, "team:list", func(ctx context.Context) (any, error) {
		items, err := r.next.List(ctx)
		if err != nil {
			return nil, err
		}
		return append([]team.Profile(nil), items...), nil
	})
	if err != nil {
		return nil, err
	}

	items, _ := v.([]team.Profile)
	return append([]team.Profile(nil), items...), nil
}

func (r *TeamRepository) GetByID(ctx context.Context, teamID string) (team.Profile, bool, error) {
	key := "team:id:" + teamID
	v, err := r.cache.GetOrLoad(ctx, key, func(ctx context.Context) (any, error) {
		item, exists, err := r.next.GetByID(ctx, teamID)
		if err != nil {
			return nil, err
		}
		return cachedTeamByID{value: item, exists: exists}, nil
	})
	if err != nil {
		return team.Profile{}, false, err
	}

	cached, _ := v.(cachedTeamByID)
	return cached.value, cached.exists, nil
}

type cachedTeamByID struct {
	value  team.Profile
	exists bool
}

type MatchRepository struct {
	next  match.Repository
	cache *basecache.Store
}

func NewMatchRepository(next match.Repository, cache *basecache.Store) *MatchRepository {
	return &MatchRepository{next: next, cache: cache}
}

func (r *MatchRepository) List(ctx context.Context) ([]match.Record, error) {
	v, err := r.cache.GetOrLoad(ctx, "match:list", func(ctx context.Context) (any, error) {
		items, err := r.next.List(ctx)
		if err != nil {
			return nil, err
		}
		return append([]match.Record(nil), items...), nil
	})
	if err != nil {
		return nil, err
	}

	items, _ := v.([]match.Record)
	return append([]match.Record(nil), items...), nil
}

func (r *MatchRepository) ListByTeam(ctx context.Context, teamID string) ([]match.Record, error) {
	key := "match:list:" + teamID
	v, err := r.cache.GetOrLoad(ctx, key, func(ctx context.Context) (any, error) {
		items, err := r.next.ListByTeam(ctx, teamID)
		if err != nil {
			return nil, err
		}
		return append([]match.Record(nil), items...), nil
	})
	if err != nil {
		return nil, err
	}

	items, _ := v.([]match.Record)
	return append([]match.Record(nil), items...), nil
}

func (r *MatchRepository) GetByID(ctx context.Context, teamID, matchID string) (match.Record, bool, error) {
	key := "match:id:" + teamID + ":" + matchID
	v, err := r.cache.GetOrLoad(ctx, key, func(ctx context.Context) (any, error) {
		item, exists, err := r.next.GetByID(ctx, teamID, matchID)
		if err != nil {
			return nil, err
		}
		return cachedMatchByID{value: item, exists: exists}, nil
	})
	if err != nil {
		return match.Record{}, false, err
	}

	cached, _ := v.(cachedMatchByID)
	return cached.value, cached.exists, nil
}

func (r *MatchRepository) Create(ctx context.Context, record match.Record) error {
	if err := r.next.Create(ctx, record); err != nil {
		return err
	}
	r.invalidate(ctx, record.TeamID)
	return nil
}

func (r *MatchRepository) Update(ctx context.Context, record match.Record) error {
	if err := r.next.Update(ctx, record); err != nil {
		return err
	}
	r.invalidate(ctx, record.TeamID)
	r.cache.Delete(ctx, "match:id:"+record.TeamID+":"+record.ID)
	return nil
}

func (r *MatchRepository) Delete(ctx context.Context, teamID, matchID string) error {
	if err := r.next.Delete(ctx, teamID, matchID); err != nil {
		return err
	}
	r.invalidate(ctx, teamID)
	r.cache.Delete(ctx, "match:id:"+teamID+":"+matchID)
	return nil
}

func (r *MatchRepository) invalidate(ctx context.Context, teamID string) {
	r.cache.Delete(ctx, "match:list")
	r.cache.Delete(ctx, "match:list:"+teamID)
}

type cachedMatchByID struct {
	value  match.Record
	exists bool
}
