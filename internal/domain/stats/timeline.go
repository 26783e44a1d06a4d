package stats

import (
	"fmt"
	"sort"

	"github.com/aribowo/matchday-tracker/internal/domain/match"
)

// MonthGroup is one year-month bucket of the timeline view.
type MonthGroup struct {
	Key       string // "2006-01"
	Wins      int
	Draws     int
	Losses    int
	Goals     int
	AvgRating float64 // over rated matches only; 0 when none are rated
	Matches   []match.Record
}

func monthKey(record match.Record) string {
	return fmt.Sprintf("%04d-%02d", record.Date.Year(), int(record.Date.Month()))
}

// Timeline groups completed matches by year-month. Groups come newest-first
// and matches inside a group newest-first.
func Timeline(records []match.Record) []MonthGroup {
	buckets := make(map[string][]match.Record)
	for _, record := range records {
		if !record.IsCompleted() {
			continue
		}
		key := monthKey(record)
		buckets[key] = append(buckets[key], record)
	}

	out := make([]MonthGroup, 0, len(buckets))
	for key, grouped := range buckets {
		sort.SliceStable(grouped, func(i, j int) bool {
			return grouped[i].Date.After(grouped[j].Date)
		})

		group := MonthGroup{Key: key, Matches: grouped}
		var ratingSum float64
		var rated int
		for _, record := range grouped {
			win, draw, loss := outcomeOf(record)
			if win {
				group.Wins++
			}
			if draw {
				group.Draws++
			}
			if loss {
				group.Losses++
			}
			group.Goals += record.PlayerGoals
			if record.Rating != nil {
				ratingSum += *record.Rating
				rated++
			}
		}
		if rated > 0 {
			group.AvgRating = ratingSum / float64(rated)
		}
		out = append(out, group)
	}

	sort.Slice(out, func(i, j int) bool {
		return out[i].Key > out[j].Key
	})

	return out
}
