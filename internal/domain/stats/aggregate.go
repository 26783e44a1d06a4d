package stats

import (
	"math"
	"time"

	"github.com/aribowo/matchday-tracker/internal/domain/match"
)

// SeriesLimit caps the chart series when the all-time window is active.
const SeriesLimit = 15

// Summary is the aggregate view over one filtered match set.
//
// AvgRating divides the rating sum by ALL completed matches in the set; an
// absent rating contributes 0 to the sum but the match still counts in the
// denominator.
type Summary struct {
	MatchesPlayed   int
	TotalGoals      int
	TotalAssists    int
	AvgRating       float64
	TeamGoals       int
	ContributionPct int
}

// SeriesPoint is one charted match.
type SeriesPoint struct {
	Date    time.Time
	Rating  float64
	Goals   int
	Assists int
}

// Summarize folds a filtered match set into totals and averages. Division by
// zero never raises: an empty set yields a zero summary and a team that
// scored nothing yields a zero contribution share.
func Summarize(records []match.Record) Summary {
	out := Summary{MatchesPlayed: len(records)}

	var ratingSum float64
	for _, record := range records {
		out.TotalGoals += record.PlayerGoals
		out.TotalAssists += record.PlayerAssists
		out.TeamGoals += record.ScoreFor
		if record.Rating != nil {
			ratingSum += *record.Rating
		}
	}

	if out.MatchesPlayed > 0 {
		out.AvgRating = ratingSum / float64(out.MatchesPlayed)
	}
	out.ContributionPct = contributionPct(out.TotalGoals+out.TotalAssists, out.TeamGoals)

	return out
}

// Series builds the chart series for a filtered set. With the all-time window
// active only the most recent SeriesLimit matches are charted, preserving
// chronological order.
func Series(records []match.Record, window TimeWindow) []SeriesPoint {
	charted := records
	if window.isAll() && len(charted) > SeriesLimit {
		charted = charted[len(charted)-SeriesLimit:]
	}

	out := make([]SeriesPoint, 0, len(charted))
	for _, record := range charted {
		point := SeriesPoint{
			Date:    record.Date,
			Goals:   record.PlayerGoals,
			Assists: record.PlayerAssists,
		}
		if record.Rating != nil {
			point.Rating = *record.Rating
		}
		out = append(out, point)
	}

	return out
}

func contributionPct(contributed, teamGoals int) int {
	if teamGoals <= 0 {
		return 0
	}
	return int(math.Round(100 * float64(contributed) / float64(teamGoals)))
}

func outcomeOf(record match.Record) (win, draw, loss bool) {
	switch {
	case record.ScoreFor > record.ScoreAgainst:
		return true, false, false
	case record.ScoreFor < record.ScoreAgainst:
		return false, false, true
	default:
		return false, true, false
	}
}
