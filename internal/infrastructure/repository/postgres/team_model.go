package postgres

import (
	"fmt"
	"time"

	"github.com/bytedance/sonic"

	"github.com/aribowo/matchday-tracker/internal/domain/team"
)

type teamTableModel struct {
	ID         string     `db:"id"`
	Name       string     `db:"name"`
	Short      string     `db:"short"`
	ThemeColor string     `db:"theme_color"`
	Roster     []byte     `db:"roster"`
	CreatedAt  time.Time  `db:"created_at"`
	UpdatedAt  time.Time  `db:"updated_at"`
	DeletedAt  *time.Time `db:"deleted_at"`
}

type rosterPlayerJSON struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Number int    `json:"number"`
}

func teamFromRow(row teamTableModel) (team.Profile, error) {
	profile := team.Profile{
		ID:         row.ID,
		Name:       row.Name,
		Short:      row.Short,
		ThemeColor: row.ThemeColor,
	}

	if len(row.Roster) > 0 {
		var roster []rosterPlayerJSON
		if err := sonic.Unmarshal(row.Roster, &roster); err != nil {
			return team.Profile{}, fmt.Errorf("decode team roster: %w", err)
		}
		profile.Roster = make([]team.RosterPlayer, 0, len(roster))
		for _, player := range roster {
			profile.Roster = append(profile.Roster, team.RosterPlayer{
				ID:     player.ID,
				Name:   player.Name,
				Number: player.Number,
			})
		}
	}

	return profile, nil
}
