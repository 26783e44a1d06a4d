package postgres

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/bytedance/sonic"
	"github.com/lib/pq"

	"github.com/aribowo/matchday-tracker/internal/domain/match"
)

type matchTableModel struct {
	ID            string          `db:"id"`
	TeamID        string          `db:"team_id"`
	MatchDate     time.Time       `db:"match_date"`
	Status        string          `db:"status"`
	Opponent      string          `db:"opponent"`
	MatchType     string          `db:"match_type"`
	ScoreFor      int             `db:"score_for"`
	ScoreAgainst  int             `db:"score_against"`
	PlayerGoals   int             `db:"player_goals"`
	PlayerAssists int             `db:"player_assists"`
	Rating        sql.NullFloat64 `db:"rating"`
	ManOfTheMatch bool            `db:"man_of_the_match"`
	Scorers       []byte          `db:"scorers"`
	VideoLinks    pq.StringArray  `db:"video_links"`
	Notes         string          `db:"notes"`
	CreatedAt     time.Time       `db:"created_at"`
	UpdatedAt     time.Time       `db:"updated_at"`
	DeletedAt     *time.Time      `db:"deleted_at"`
}

type matchWriteModel struct {
	ID            string          `db:"id"`
	TeamID        string          `db:"team_id"`
	MatchDate     time.Time       `db:"match_date"`
	Status        string          `db:"status"`
	Opponent      string          `db:"opponent"`
	MatchType     string          `db:"match_type"`
	ScoreFor      int             `db:"score_for"`
	ScoreAgainst  int             `db:"score_against"`
	PlayerGoals   int             `db:"player_goals"`
	PlayerAssists int             `db:"player_assists"`
	Rating        sql.NullFloat64 `db:"rating"`
	ManOfTheMatch bool            `db:"man_of_the_match"`
	Scorers       []byte          `db:"scorers"`
	VideoLinks    pq.StringArray  `db:"video_links"`
	Notes         string          `db:"notes"`
}

type scorerJSON struct {
	PlayerID string `json:"player_id"`
	Goals    int    `json:"goals"`
}

func matchFromRow(row matchTableModel) (match.Record, error) {
	record := match.Record{
		ID:            row.ID,
		TeamID:        row.TeamID,
		Date:          row.MatchDate,
		Status:        row.Status,
		Opponent:      row.Opponent,
		Type:          row.MatchType,
		ScoreFor:      row.ScoreFor,
		ScoreAgainst:  row.ScoreAgainst,
		PlayerGoals:   row.PlayerGoals,
		PlayerAssists: row.PlayerAssists,
		ManOfTheMatch: row.ManOfTheMatch,
		VideoLinks:    append([]string(nil), row.VideoLinks...),
		Notes:         row.Notes,
		CreatedAt:     row.CreatedAt,
		UpdatedAt:     row.UpdatedAt,
	}

	if row.Rating.Valid {
		rating := row.Rating.Float64
		record.Rating = &rating
	}
	if len(row.Scorers) > 0 {
		var scorers []scorerJSON
		if err := sonic.Unmarshal(row.Scorers, &scorers); err != nil {
			return match.Record{}, fmt.Errorf("decode match scorers: %w", err)
		}
		record.Scorers = make([]match.ScorerEntry, 0, len(scorers))
		for _, scorer := range scorers {
			record.Scorers = append(record.Scorers, match.ScorerEntry{
				PlayerID: scorer.PlayerID,
				Goals:    scorer.Goals,
			})
		}
	}

	return record, nil
}

func matchToWriteModel(record match.Record) (matchWriteModel, error) {
	model := matchWriteModel{
		ID:            record.ID,
		TeamID:        record.TeamID,
		MatchDate:     record.Date,
		Status:        record.Status,
		Opponent:      record.Opponent,
		MatchType:     record.Type,
		ScoreFor:      record.ScoreFor,
		ScoreAgainst:  record.ScoreAgainst,
		PlayerGoals:   record.PlayerGoals,
		PlayerAssists: record.PlayerAssists,
		ManOfTheMatch: record.ManOfTheMatch,
		VideoLinks:    pq.StringArray(record.VideoLinks),
		Notes:         record.Notes,
	}

	if record.Rating != nil {
		model.Rating = sql.NullFloat64{Float64: *record.Rating, Valid: true}
	}
	if len(record.Scorers) > 0 {
		scorers := make([]scorerJSON, 0, len(record.Scorers))
		for _, scorer := range record.Scorers {
			scorers = append(scorers, scorerJSON{PlayerID: scorer.PlayerID, Goals: scorer.Goals})
		}
		encoded, err := sonic.Marshal(scorers)
		if err != nil {
			return matchWriteModel{}, fmt.Errorf("encode match scorers: %w", err)
		}
		model.Scorers = encoded
	}

	return model, nil
}
