package stats

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/aribowo/matchday-tracker/internal/domain/match"
)

// FilterAll selects every team or every match type.
const FilterAll = "all"

const (
	WindowAll    = "all"
	WindowYear   = "year"
	WindowSeason = "season"
	WindowMonth  = "month"
)

// TimeWindow narrows aggregation to a calendar slice. Year is required for
// the year, season and month kinds; Quarter (1-4) only for season and Month
// (1-12) only for month.
type TimeWindow struct {
	Kind    string
	Year    int
	Quarter int
	Month   time.Month
}

// Filter is an immutable snapshot of the active team, match type and time
// window selection.
type Filter struct {
	TeamID    string
	MatchType string
	Window    TimeWindow
}

func AllTime() TimeWindow {
	return TimeWindow{Kind: WindowAll}
}

// QuarterOf maps a calendar month to its 1-indexed quarter, grouping months
// into 3-month blocks starting January.
func QuarterOf(m time.Month) int {
	return (int(m) - 1 + 3) / 3
}

func (w TimeWindow) Validate() error {
	switch w.Kind {
	case "", WindowAll:
		return nil
	case WindowYear:
		if w.Year <= 0 {
			return fmt.Errorf("year window requires a year")
		}
		return nil
	case WindowSeason:
		if w.Year <= 0 {
			return fmt.Errorf("season window requires a year")
		}
		if w.Quarter < 1 || w.Quarter > 4 {
			return fmt.Errorf("season window requires a quarter in [1,4]")
		}
		return nil
	case WindowMonth:
		if w.Year <= 0 {
			return fmt.Errorf("month window requires a year")
		}
		if w.Month < time.January || w.Month > time.December {
			return fmt.Errorf("month window requires a month in [1,12]")
		}
		return nil
	default:
		return fmt.Errorf("unknown time window kind: %s", w.Kind)
	}
}

func (w TimeWindow) contains(date time.Time) bool {
	switch w.Kind {
	case "", WindowAll:
		return true
	case WindowYear:
		return date.Year() == w.Year
	case WindowSeason:
		return date.Year() == w.Year && QuarterOf(date.Month()) == w.Quarter
	case WindowMonth:
		return date.Year() == w.Year && date.Month() == w.Month
	default:
		return false
	}
}

func (w TimeWindow) isAll() bool {
	return w.Kind == "" || w.Kind == WindowAll
}

// Apply reduces records to the completed matches selected by the filter,
// sorted ascending by date. Scheduled fixtures never count toward statistics.
func Apply(records []match.Record, filter Filter) []match.Record {
	teamID := strings.TrimSpace(filter.TeamID)
	matchType := strings.ToLower(strings.TrimSpace(filter.MatchType))

	out := make([]match.Record, 0, len(records))
	for _, record := range records {
		if !record.IsCompleted() {
			continue
		}
		if teamID != "" && teamID != FilterAll && record.TeamID != teamID {
			continue
		}
		if matchType != "" && matchType != FilterAll && match.NormalizeType(record.Type) != matchType {
			continue
		}
		if !filter.Window.contains(record.Date) {
			continue
		}
		out = append(out, record)
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Date.Before(out[j].Date)
	})

	return out
}

// WindowOptions lists the selectable year, season and month windows derived
// from the distinct dates of completed matches.
type WindowOptions struct {
	Years   []int
	Seasons []TimeWindow
	Months  []TimeWindow
}

func OptionsFor(records []match.Record) WindowOptions {
	years := make(map[int]struct{})
	seasons := make(map[[2]int]struct{})
	months := make(map[[2]int]struct{})

	for _, record := range records {
		if !record.IsCompleted() {
			continue
		}
		year := record.Date.Year()
		years[year] = struct{}{}
		seasons[[2]int{year, QuarterOf(record.Date.Month())}] = struct{}{}
		months[[2]int{year, int(record.Date.Month())}] = struct{}{}
	}

	out := WindowOptions{
		Years:   make([]int, 0, len(years)),
		Seasons: make([]TimeWindow, 0, len(seasons)),
		Months:  make([]TimeWindow, 0, len(months)),
	}
	for year := range years {
		out.Years = append(out.Years, year)
	}
	for key := range seasons {
		out.Seasons = append(out.Seasons, TimeWindow{Kind: WindowSeason, Year: key[0], Quarter: key[1]})
	}
	for key := range months {
		out.Months = append(out.Months, TimeWindow{Kind: WindowMonth, Year: key[0], Month: time.Month(key[1])})
	}

	sort.Sort(sort.Reverse(sort.IntSlice(out.Years)))
	sort.Slice(out.Seasons, func(i, j int) bool {
		if out.Seasons[i].Year != out.Seasons[j].Year {
			return out.Seasons[i].Year > out.Seasons[j].Year
		}
		return out.Seasons[i].Quarter > out.Seasons[j].Quarter
	})
	sort.Slice(out.Months, func(i, j int) bool {
		if out.Months[i].Year != out.Months[j].Year {
			return out.Months[i].Year > out.Months[j].Year
		}
		return out.Months[i].Month > out.Months[j].Month
	})

	return out
}
