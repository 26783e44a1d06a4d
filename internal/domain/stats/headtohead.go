package stats

import (
	"strings"

	"github.com/aribowo/matchday-tracker/internal/domain/match"
)

// HeadToHead is the record against a single opponent.
type HeadToHead struct {
	Opponent        string
	Played          int
	Wins            int
	Draws           int
	Losses          int
	TotalGoals      int
	TotalAssists    int
	TeamGoals       int
	ContributionPct int
	MOTMCount       int
}

// AgainstOpponent summarizes every completed match against the named
// opponent. Names match on trimmed, case-insensitive equality.
func AgainstOpponent(records []match.Record, opponent string) HeadToHead {
	wanted := strings.ToLower(strings.TrimSpace(opponent))
	out := HeadToHead{Opponent: strings.TrimSpace(opponent)}

	for _, record := range records {
		if !record.IsCompleted() {
			continue
		}
		if strings.ToLower(strings.TrimSpace(record.Opponent)) != wanted {
			continue
		}

		out.Played++
		win, draw, loss := outcomeOf(record)
		if win {
			out.Wins++
		}
		if draw {
			out.Draws++
		}
		if loss {
			out.Losses++
		}
		out.TotalGoals += record.PlayerGoals
		out.TotalAssists += record.PlayerAssists
		out.TeamGoals += record.ScoreFor
		if record.ManOfTheMatch {
			out.MOTMCount++
		}
	}

	out.ContributionPct = contributionPct(out.TotalGoals+out.TotalAssists, out.TeamGoals)

	return out
}
