package httpapi

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/aribowo/matchday-tracker/internal/domain/match"
	"github.com/aribowo/matchday-tracker/internal/domain/stats"
	"github.com/aribowo/matchday-tracker/internal/domain/team"
	"github.com/aribowo/matchday-tracker/internal/usecase"
)

const dateLayout = "2006-01-02"

type rosterPlayerDTO struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Number int    `json:"number"`
}

type teamDTO struct {
	ID         string            `json:"id"`
	Name       string            `json:"name"`
	Short      string            `json:"short,omitempty"`
	ThemeColor string            `json:"themeColor,omitempty"`
	Roster     []rosterPlayerDTO `json:"roster,omitempty"`
}

func teamToDTO(profile team.Profile) teamDTO {
	out := teamDTO{
		ID:         profile.ID,
		Name:       profile.Name,
		Short:      profile.Short,
		ThemeColor: profile.ThemeColor,
	}
	for _, player := range profile.Roster {
		out.Roster = append(out.Roster, rosterPlayerDTO{
			ID:     player.ID,
			Name:   player.Name,
			Number: player.Number,
		})
	}
	return out
}

type scorerDTO struct {
	PlayerID string `json:"playerId"`
	Goals    int    `json:"goals"`
}

type matchDTO struct {
	ID            string      `json:"id"`
	TeamID        string      `json:"teamId"`
	Date          string      `json:"date"`
	Status        string      `json:"status"`
	Opponent      string      `json:"opponent"`
	Type          string      `json:"type"`
	ScoreFor      int         `json:"scoreFor"`
	ScoreAgainst  int         `json:"scoreAgainst"`
	PlayerGoals   int         `json:"playerGoals"`
	PlayerAssists int         `json:"playerAssists"`
	Rating        *float64    `json:"rating,omitempty"`
	ManOfTheMatch bool        `json:"manOfTheMatch"`
	Scorers       []scorerDTO `json:"scorers,omitempty"`
	VideoLinks    []string    `json:"videoLinks,omitempty"`
	Notes         string      `json:"notes,omitempty"`
	CreatedAt     time.Time   `json:"createdAt,omitzero"`
	UpdatedAt     time.Time   `json:"updatedAt,omitzero"`
}

func matchToDTO(record match.Record) matchDTO {
	out := matchDTO{
		ID:            record.ID,
		TeamID:        record.TeamID,
		Date:          record.Date.Format(dateLayout),
		Status:        record.Status,
		Opponent:      record.Opponent,
		Type:          record.Type,
		ScoreFor:      record.ScoreFor,
		ScoreAgainst:  record.ScoreAgainst,
		PlayerGoals:   record.PlayerGoals,
		PlayerAssists: record.PlayerAssists,
		Rating:        record.Rating,
		ManOfTheMatch: record.ManOfTheMatch,
		VideoLinks:    record.VideoLinks,
		Notes:         record.Notes,
		CreatedAt:     record.CreatedAt,
		UpdatedAt:     record.UpdatedAt,
	}
	for _, scorer := range record.Scorers {
		out.Scorers = append(out.Scorers, scorerDTO{PlayerID: scorer.PlayerID, Goals: scorer.Goals})
	}
	return out
}

func matchesToDTO(records []match.Record) []matchDTO {
	out := make([]matchDTO, 0, len(records))
	for _, record := range records {
		out = append(out, matchToDTO(record))
	}
	return out
}

type summaryDTO struct {
	MatchesPlayed   int     `json:"matchesPlayed"`
	TotalGoals      int     `json:"totalGoals"`
	TotalAssists    int     `json:"totalAssists"`
	AvgRating       float64 `json:"avgRating"`
	TeamGoals       int     `json:"teamGoals"`
	ContributionPct int     `json:"contributionPct"`
}

func summaryToDTO(summary stats.Summary) summaryDTO {
	return summaryDTO{
		MatchesPlayed:   summary.MatchesPlayed,
		TotalGoals:      summary.TotalGoals,
		TotalAssists:    summary.TotalAssists,
		AvgRating:       summary.AvgRating,
		TeamGoals:       summary.TeamGoals,
		ContributionPct: summary.ContributionPct,
	}
}

type seriesPointDTO struct {
	Date    string  `json:"date"`
	Rating  float64 `json:"rating"`
	Goals   int     `json:"goals"`
	Assists int     `json:"assists"`
}

type badgeDTO struct {
	Metric        string `json:"metric"`
	Tier          string `json:"tier"`
	Value         int    `json:"value"`
	NextThreshold *int   `json:"nextThreshold,omitempty"`
	ProgressPct   int    `json:"progressPct"`
}

type overviewDTO struct {
	TeamID   string           `json:"teamId"`
	Summary  summaryDTO       `json:"summary"`
	Series   []seriesPointDTO `json:"series"`
	Badges   []badgeDTO       `json:"badges"`
	Level    int              `json:"level"`
	MaxLevel int              `json:"maxLevel"`
}

func overviewToDTO(overview usecase.Overview) overviewDTO {
	out := overviewDTO{
		TeamID:   overview.TeamID,
		Summary:  summaryToDTO(overview.Summary),
		Series:   make([]seriesPointDTO, 0, len(overview.Series)),
		Badges:   make([]badgeDTO, 0, len(overview.Badges)),
		Level:    overview.Level,
		MaxLevel: overview.MaxLevel,
	}
	for _, point := range overview.Series {
		out.Series = append(out.Series, seriesPointDTO{
			Date:    point.Date.Format(dateLayout),
			Rating:  point.Rating,
			Goals:   point.Goals,
			Assists: point.Assists,
		})
	}
	for _, badge := range overview.Badges {
		out.Badges = append(out.Badges, badgeDTO{
			Metric:        badge.Metric,
			Tier:          badge.Tier.String(),
			Value:         badge.Value,
			NextThreshold: badge.NextThreshold,
			ProgressPct:   badge.ProgressPct,
		})
	}
	return out
}

type monthGroupDTO struct {
	Key       string     `json:"key"`
	Wins      int        `json:"wins"`
	Draws     int        `json:"draws"`
	Losses    int        `json:"losses"`
	Goals     int        `json:"goals"`
	AvgRating float64    `json:"avgRating"`
	Matches   []matchDTO `json:"matches"`
}

func timelineToDTO(groups []stats.MonthGroup) []monthGroupDTO {
	out := make([]monthGroupDTO, 0, len(groups))
	for _, group := range groups {
		out = append(out, monthGroupDTO{
			Key:       group.Key,
			Wins:      group.Wins,
			Draws:     group.Draws,
			Losses:    group.Losses,
			Goals:     group.Goals,
			AvgRating: group.AvgRating,
			Matches:   matchesToDTO(group.Matches),
		})
	}
	return out
}

type headToHeadDTO struct {
	Opponent        string `json:"opponent"`
	Played          int    `json:"played"`
	Wins            int    `json:"wins"`
	Draws           int    `json:"draws"`
	Losses          int    `json:"losses"`
	TotalGoals      int    `json:"totalGoals"`
	TotalAssists    int    `json:"totalAssists"`
	TeamGoals       int    `json:"teamGoals"`
	ContributionPct int    `json:"contributionPct"`
	MOTMCount       int    `json:"motmCount"`
}

func headToHeadToDTO(record stats.HeadToHead) headToHeadDTO {
	return headToHeadDTO{
		Opponent:        record.Opponent,
		Played:          record.Played,
		Wins:            record.Wins,
		Draws:           record.Draws,
		Losses:          record.Losses,
		TotalGoals:      record.TotalGoals,
		TotalAssists:    record.TotalAssists,
		TeamGoals:       record.TeamGoals,
		ContributionPct: record.ContributionPct,
		MOTMCount:       record.MOTMCount,
	}
}

type windowDTO struct {
	Kind    string `json:"kind"`
	Year    int    `json:"year"`
	Quarter int    `json:"quarter,omitempty"`
	Month   int    `json:"month,omitempty"`
}

type filterOptionsDTO struct {
	Years   []int       `json:"years"`
	Seasons []windowDTO `json:"seasons"`
	Months  []windowDTO `json:"months"`
}

func filterOptionsToDTO(options stats.WindowOptions) filterOptionsDTO {
	out := filterOptionsDTO{
		Years:   options.Years,
		Seasons: make([]windowDTO, 0, len(options.Seasons)),
		Months:  make([]windowDTO, 0, len(options.Months)),
	}
	for _, season := range options.Seasons {
		out.Seasons = append(out.Seasons, windowDTO{Kind: season.Kind, Year: season.Year, Quarter: season.Quarter})
	}
	for _, month := range options.Months {
		out.Months = append(out.Months, windowDTO{Kind: month.Kind, Year: month.Year, Month: int(month.Month)})
	}
	return out
}

// parseStatsFilter reads the window selection off the query string:
// ?type=league&window=season&year=2026&quarter=2
func parseStatsFilter(r *http.Request) (stats.Filter, error) {
	query := r.URL.Query()

	filter := stats.Filter{
		MatchType: strings.TrimSpace(query.Get("type")),
		Window:    stats.TimeWindow{Kind: strings.TrimSpace(query.Get("window"))},
	}

	for _, field := range []struct {
		name string
		dest *int
	}{
		{"year", &filter.Window.Year},
		{"quarter", &filter.Window.Quarter},
	} {
		raw := strings.TrimSpace(query.Get(field.name))
		if raw == "" {
			continue
		}
		value, err := strconv.Atoi(raw)
		if err != nil {
			return stats.Filter{}, fmt.Errorf("%w: %s must be an integer", usecase.ErrInvalidInput, field.name)
		}
		*field.dest = value
	}

	if raw := strings.TrimSpace(query.Get("month")); raw != "" {
		value, err := strconv.Atoi(raw)
		if err != nil {
			return stats.Filter{}, fmt.Errorf("%w: month must be an integer", usecase.ErrInvalidInput)
		}
		filter.Window.Month = time.Month(value)
	}

	if err := filter.Window.Validate(); err != nil {
		return stats.Filter{}, fmt.Errorf("%w: %v", usecase.ErrInvalidInput, err)
	}

	return filter, nil
}

func parseDate(raw string) (time.Time, error) {
	date, err := time.Parse(dateLayout, strings.TrimSpace(raw))
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: date must be YYYY-MM-DD", usecase.ErrInvalidInput)
	}
	return date, nil
}
