package children

import "context"

type Repository interface {
	Create(ctx context.Context, c Child) error
	GetByID(ctx context.Context, id string) (Child, error)
	ListByOwner(ctx context.Context, ownerUserID string) ([]Child, error)
	Update(ctx context.Context, c Child) error
	Delete(ctx context.Context, id string) error
}
