package competition

import "context"

// Repository describes the competition registry needs from use cases.
type Repository interface {
	List(ctx context.Context) ([]Competition, error)
	GetByID(ctx context.Context, competitionID int) (Competition, bool, error)
}
