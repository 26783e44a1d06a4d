package match

import (
	"fmt"
	"strings"
	"time"
)

const (
	StatusScheduled = "scheduled"
	StatusCompleted = "completed"
)

const (
	TypeLeague   = "league"
	TypeCup      = "cup"
	TypeFriendly = "friendly"
)

const (
	RatingMin = 0.0
	RatingMax = 10.0
)

// ScorerEntry attributes goals in a match to one roster player.
type ScorerEntry struct {
	PlayerID string
	Goals    int
}

// Record is one played or scheduled fixture of the tracked player's team.
type Record struct {
	ID            string
	TeamID        string
	Date          time.Time
	Status        string
	Opponent      string
	Type          string
	ScoreFor      int
	ScoreAgainst  int
	PlayerGoals   int
	PlayerAssists int
	Rating        *float64
	ManOfTheMatch bool
	Scorers       []ScorerEntry
	VideoLinks    []string
	Notes         string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func NormalizeStatus(value string) string {
	status := strings.ToLower(strings.TrimSpace(value))
	if status == "" {
		return StatusScheduled
	}
	return status
}

// NormalizeType maps an absent match type to league, which is how untyped
// legacy records are counted.
func NormalizeType(value string) string {
	matchType := strings.ToLower(strings.TrimSpace(value))
	if matchType == "" {
		return TypeLeague
	}
	return matchType
}

func IsValidStatus(status string) bool {
	switch NormalizeStatus(status) {
	case StatusScheduled, StatusCompleted:
		return true
	default:
		return false
	}
}

func IsValidType(matchType string) bool {
	switch NormalizeType(matchType) {
	case TypeLeague, TypeCup, TypeFriendly:
		return true
	default:
		return false
	}
}

func (r Record) Validate() error {
	if r.ID == "" {
		return fmt.Errorf("match id is required")
	}
	if r.TeamID == "" {
		return fmt.Errorf("match team id is required")
	}
	if r.Date.IsZero() {
		return fmt.Errorf("match date is required")
	}
	if !IsValidStatus(r.Status) {
		return fmt.Errorf("unknown match status: %s", r.Status)
	}
	if !IsValidType(r.Type) {
		return fmt.Errorf("unknown match type: %s", r.Type)
	}
	if r.ScoreFor < 0 || r.ScoreAgainst < 0 {
		return fmt.Errorf("scores must be non-negative")
	}
	if r.PlayerGoals < 0 || r.PlayerAssists < 0 {
		return fmt.Errorf("player goals and assists must be non-negative")
	}
	if r.Rating != nil && (*r.Rating < RatingMin || *r.Rating > RatingMax) {
		return fmt.Errorf("rating must be within [%v, %v]", RatingMin, RatingMax)
	}
	for _, scorer := range r.Scorers {
		if scorer.PlayerID == "" {
			return fmt.Errorf("scorer player id is required")
		}
		if scorer.Goals < 0 {
			return fmt.Errorf("scorer goals must be non-negative")
		}
	}
	return nil
}

func (r Record) IsCompleted() bool {
	return NormalizeStatus(r.Status) == StatusCompleted
}
