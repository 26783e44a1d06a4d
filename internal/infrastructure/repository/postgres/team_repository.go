package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/aribowo/matchday-tracker/internal/domain/team"
	qb "github.com/aribowo/matchday-tracker/internal/platform/querybuilder"
)

type TeamRepository struct {
	db *sqlx.DB
}

func NewTeamRepository(db *sqlx.DB) *TeamRepository {
	return &TeamRepository{db: db}
}

func (r *TeamRepository) List(ctx context.Context) ([]team.Profile, error) {
	query, args, err := qb.Select("*").From("teams").
		Where(qb.IsNull("deleted_at")).
		OrderBy("name").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list teams query: %w", err)
	}

	var rows []teamTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list teams: %w", err)
	}

	out := make([]team.Profile, 0, len(rows))
	for _, row := range rows {
		profile, err := teamFromRow(row)
		if err != nil {
			return nil, err
		}
		out = append(out, profile)
	}

	return out, nil
}

func (r *TeamRepository) GetByID(ctx context.Context, teamID string) (team.Profile, bool, error) {
	query, args, err := qb.Select("*").From("teams").
		Where(qb.Eq("id", teamID), qb.IsNull("deleted_at")).
		ToSQL()
	if err != nil {
		return team.Profile{}, false, fmt.Errorf("build get team query: %w", err)
	}

	var row teamTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return team.Profile{}, false, nil
		}
		return team.Profile{}, false, fmt.Errorf("get team: %w", err)
	}

	profile, err := teamFromRow(row)
	if err != nil {
		return team.Profile{}, false, err
	}

	return profile, true, nil
}
