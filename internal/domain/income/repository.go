package income

import (
	"context"

	"github.com/oklog/ulid/v2"
)

type Repository interface {
	Create(ctx context.Context, income *Income) error
	GetLatestByUser(ctx context.Context, userID ulid.ULID) (*Income, error)
}
