package memory

import (
	"time"

	"github.com/aribowo/matchday-tracker/internal/domain/match"
	"github.com/aribowo/matchday-tracker/internal/domain/team"
)

const (
	TeamIDLionsU12  = "lions-u12"
	TeamIDRiverside = "riverside-fc"
)

func SeedTeams() []team.Profile {
	return []team.Profile{
		{
			ID:         TeamIDLionsU12,
			Name:       "Lions U12",
			Short:      "LIO",
			ThemeColor: "#d97706",
			Roster: []team.RosterPlayer{
				{ID: "lio-07", Name: "Mika Larsen", Number: 7},
				{ID: "lio-09", Name: "Sam Okafor", Number: 9},
				{ID: "lio-10", Name: "Jonas Brandt", Number: 10},
			},
		},
		{
			ID:         TeamIDRiverside,
			Name:       "Riverside FC",
			Short:      "RIV",
			ThemeColor: "#2563eb",
			Roster: []team.RosterPlayer{
				{ID: "riv-04", Name: "Theo Mensah", Number: 4},
				{ID: "riv-11", Name: "Luca Petrov", Number: 11},
			},
		},
	}
}

func SeedMatches() []match.Record {
	ratingOf := func(value float64) *float64 { return &value }
	dayOf := func(year int, month time.Month, day int) time.Time {
		return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	}

	return []match.Record{
		{
			ID:            "seed-lio-001",
			TeamID:        TeamIDLionsU12,
			Date:          dayOf(2026, time.March, 7),
			Status:        match.StatusCompleted,
			Opponent:      "Harbor United",
			Type:          match.TypeLeague,
			ScoreFor:      3,
			ScoreAgainst:  1,
			PlayerGoals:   2,
			PlayerAssists: 0,
			Rating:        ratingOf(8.5),
			ManOfTheMatch: true,
			Scorers:       []match.ScorerEntry{{PlayerID: "lio-09", Goals: 2}, {PlayerID: "lio-10", Goals: 1}},
		},
		{
			ID:            "seed-lio-002",
			TeamID:        TeamIDLionsU12,
			Date:          dayOf(2026, time.March, 21),
			Status:        match.StatusCompleted,
			Opponent:      "Red Star Juniors",
			Type:          match.TypeCup,
			ScoreFor:      1,
			ScoreAgainst:  1,
			PlayerGoals:   0,
			PlayerAssists: 1,
			Rating:        ratingOf(7),
		},
		{
			ID:            "seed-lio-003",
			TeamID:        TeamIDLionsU12,
			Date:          dayOf(2026, time.April, 4),
			Status:        match.StatusCompleted,
			Opponent:      "Harbor United",
			Type:          match.TypeLeague,
			ScoreFor:      0,
			ScoreAgainst:  2,
			PlayerGoals:   0,
			PlayerAssists: 0,
			Notes:         "Tough away game on a wet pitch.",
		},
		{
			ID:       "seed-lio-004",
			TeamID:   TeamIDLionsU12,
			Date:     dayOf(2026, time.September, 12),
			Status:   match.StatusScheduled,
			Opponent: "Westfield Rangers",
			Type:     match.TypeLeague,
		},
		{
			ID:            "seed-riv-001",
			TeamID:        TeamIDRiverside,
			Date:          dayOf(2026, time.February, 14),
			Status:        match.StatusCompleted,
			Opponent:      "Old Mill Athletic",
			Type:          match.TypeFriendly,
			ScoreFor:      2,
			ScoreAgainst:  2,
			PlayerGoals:   1,
			PlayerAssists: 1,
			Rating:        ratingOf(7.5),
		},
	}
}
