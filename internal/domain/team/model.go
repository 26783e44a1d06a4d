package team

import "fmt"

// RosterPlayer is one squad member on a team profile.
type RosterPlayer struct {
	ID     string
	Name   string
	Number int
}

// Profile is a squad the tracked player belongs to.
type Profile struct {
	ID         string
	Name       string
	Short      string
	ThemeColor string
	Roster     []RosterPlayer
}

func (p Profile) Validate() error {
	if p.ID == "" {
		return fmt.Errorf("team id is required")
	}
	if p.Name == "" {
		return fmt.Errorf("team name is required")
	}
	seen := make(map[string]struct{}, len(p.Roster))
	for _, player := range p.Roster {
		if player.ID == "" {
			return fmt.Errorf("roster player id is required")
		}
		if _, exists := seen[player.ID]; exists {
			return fmt.Errorf("duplicate roster player: %s", player.ID)
		}
		seen[player.ID] = struct{}{}
		if player.Number < 0 {
			return fmt.Errorf("shirt number must be non-negative: %s", player.ID)
		}
	}
	return nil
}

// PlayerByID looks a roster player up for scorer display.
func (p Profile) PlayerByID(playerID string) (RosterPlayer, bool) {
	for _, player := range p.Roster {
		if player.ID == playerID {
			return player, true
		}
	}
	return RosterPlayer{}, false
}
