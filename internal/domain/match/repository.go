package match

import "context"

// Repository describes match record persistence needs from use cases.
type Repository interface {
	List(ctx context.Context) ([]Record, error)
	ListByTeam(ctx context.Context, teamID string) ([]Record, error)
	GetByID(ctx context.Context, teamID, matchID string) (Record, bool, error)
	Create(ctx context.Context, record Record) error
	Update(ctx context.Context, record Record) error
	Delete(ctx context.Context, teamID, matchID string) error
}
