package goal

import (
	"context"

	"FinMate/internal/pkg"

	"github.com/oklog/ulid/v2"
)

type Repository interface {
	SavePlan(ctx context.Context, plan *Plan) error
	GetPlanByUser(ctx context.Context, userID ulid.ULID) (*Plan, error)

	Create(ctx context.Context, goal *Goal) error
	GetById(ctx context.Context, id ulid.ULID) (*Goal, error)
	GetByIdAndUser(ctx context.Context, id, userID ulid.ULID) (*Goal, error)
	GetByUserId(ctx context.Context, userID ulid.ULID, pagination *pkg.PaginationParams) ([]*Goal, int64, error)
	CountByUser(ctx context.Context, userID ulid.ULID) (int64, error)
	Delete(ctx context.Context, id ulid.ULID) error
	CheckGoalBelongsToUser(ctx context.Context, goalID, userID ulid.ULID) (bool, error)
}
