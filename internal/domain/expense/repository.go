package expense

import (
	"context"

	"FinMate/internal/pkg"

	"github.com/oklog/ulid/v2"
)

type Repository interface {
	Create(ctx context.Context, expense *Expense) error
	GetById(ctx context.Context, id ulid.ULID) (*Expense, error)
	GetByUserId(ctx context.Context, userID ulid.ULID, pagination *pkg.PaginationParams) ([]*Expense, int64, error)
	GetAllByUser(ctx context.Context, userID ulid.ULID) ([]*Expense, error)
	GetTotalByUser(ctx context.Context, userID ulid.ULID) (float64, error)
	GetTotalsByUser(ctx context.Context, userID ulid.ULID) ([]float64, error)
}
