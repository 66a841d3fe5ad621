package helpdesk

import (
	"context"

	"FinMate/internal/pkg"

	"github.com/oklog/ulid/v2"
)

type Repository interface {
	Create(ctx context.Context, ticket *Ticket) error
	GetById(ctx context.Context, id ulid.ULID) (*Ticket, error)
	GetByUserId(ctx context.Context, userID ulid.ULID, pagination *pkg.PaginationParams) ([]*Ticket, int64, error)
	UpdateStatus(ctx context.Context, id ulid.ULID, status TicketStatus) error
}

// Notifier repassa o chamado recem-aberto para a caixa de suporte.
type Notifier interface {
	SendTicketCreated(ctx context.Context, ticket *Ticket) error
}
