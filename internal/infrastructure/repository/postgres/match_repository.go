package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/aribowo/matchday-tracker/internal/domain/match"
	qb "github.com/aribowo/matchday-tracker/internal/platform/querybuilder"
)

type MatchRepository struct {
	db *sqlx.DB
}

func NewMatchRepository(db *sqlx.DB) *MatchRepository {
	return &MatchRepository{db: db}
}

func (r *MatchRepository) List(ctx context.Context) ([]match.Record, error) {
	query, args, err := matchBaseSelectBuilder().
		Where(qb.IsNull("deleted_at")).
		OrderBy("match_date").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list matches query: %w", err)
	}

	return r.selectRecords(ctx, query, args)
}

func (r *MatchRepository) ListByTeam(ctx context.Context, teamID string) ([]match.Record, error) {
	query, args, err := matchBaseSelectBuilder().
		Where(qb.Eq("team_id", teamID), qb.IsNull("deleted_at")).
		OrderBy("match_date").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list matches by team query: %w", err)
	}

	return r.selectRecords(ctx, query, args)
}

func (r *MatchRepository) GetByID(ctx context.Context, teamID, matchID string) (match.Record, bool, error) {
	query, args, err := matchBaseSelectBuilder().
		Where(qb.Eq("team_id", teamID), qb.Eq("id", matchID), qb.IsNull("deleted_at")).
		ToSQL()
	if err != nil {
		return match.Record{}, false, fmt.Errorf("build get match query: %w", err)
	}

	var row matchTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return match.Record{}, false, nil
		}
		return match.Record{}, false, fmt.Errorf("get match: %w", err)
	}

	record, err := matchFromRow(row)
	if err != nil {
		return match.Record{}, false, err
	}

	return record, true, nil
}

func (r *MatchRepository) Create(ctx context.Context, record match.Record) error {
	model, err := matchToWriteModel(record)
	if err != nil {
		return err
	}

	query, args, err := qb.InsertModel("matches", model, "")
	if err != nil {
		return fmt.Errorf("build insert match query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("insert match: %w", err)
	}

	return nil
}

func (r *MatchRepository) Update(ctx context.Context, record match.Record) error {
	model, err := matchToWriteModel(record)
	if err != nil {
		return err
	}

	query, args, err := qb.UpdateModel("matches", model,
		qb.Eq("id", record.ID),
		qb.Eq("team_id", record.TeamID),
		qb.IsNull("deleted_at"),
	)
	if err != nil {
		return fmt.Errorf("build update match query: %w", err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("update match: %w", err)
	}
	if affected, err := result.RowsAffected(); err == nil && affected == 0 {
		return fmt.Errorf("update match: no row for %s", record.ID)
	}

	return nil
}

// Delete marks the row deleted; reads filter on deleted_at.
func (r *MatchRepository) Delete(ctx context.Context, teamID, matchID string) error {
	query, args, err := qb.UpdateModel("matches",
		struct {
			DeletedAt time.Time `db:"deleted_at"`
		}{DeletedAt: time.Now().UTC()},
		qb.Eq("id", matchID),
		qb.Eq("team_id", teamID),
		qb.IsNull("deleted_at"),
	)
	if err != nil {
		return fmt.Errorf("build delete match query: %w", err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("delete match: %w", err)
	}
	if affected, err := result.RowsAffected(); err == nil && affected == 0 {
		return fmt.Errorf("delete match: no row for %s", matchID)
	}

	return nil
}

func (r *MatchRepository) selectRecords(ctx context.Context, query string, args []any) ([]match.Record, error) {
	var rows []matchTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select matches: %w", err)
	}

	out := make([]match.Record, 0, len(rows))
	for _, row := range rows {
		record, err := matchFromRow(row)
		if err != nil {
			return nil, err
		}
		out = append(out, record)
	}

	return out, nil
}

func matchBaseSelectBuilder() *qb.SelectBuilder {
	return qb.Select("*").From("matches")
}
