package team

import "context"

// Repository describes team profile persistence needs from use cases.
type Repository interface {
	List(ctx context.Context) ([]Profile, error)
	GetByID(ctx context.Context, teamID string) (Profile, bool, error)
}
