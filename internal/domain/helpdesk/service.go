package helpdesk

import (
	"context"
	"strings"
	"time"

	domaincontracts "FinMate/internal/domain/contracts"
	"FinMate/internal/domain/shared"
	appErrors "FinMate/internal/errors"
	"FinMate/internal/logger"
	"FinMate/internal/pkg"

	"github.com/oklog/ulid/v2"
)

type Service struct {
	Repository Repository
	Notifier   Notifier
	Users      shared.UserGetter
}

func NewService(repo Repository, notifier Notifier, users shared.UserGetter) *Service {
	return &Service{Repository: repo, Notifier: notifier, Users: users}
}

// CreateTicket abre um chamado de suporte. O chamado e persistido antes do
// aviso por email: falha no envio nao derruba a operacao, so fica no log.
func (s *Service) CreateTicket(ctx context.Context, request *domaincontracts.TicketCreateRequest) (*Ticket, error) {
	if err := validateTicket(request); err != nil {
		return nil, err
	}

	if err := s.Users.Exists(ctx, request.UserId); err != nil {
		return nil, err
	}

	now := time.Now()
	ticket := &Ticket{
		Id:          pkg.GenerateULIDObject(),
		UserId:      request.UserId,
		Name:        strings.TrimSpace(request.Name),
		Email:       strings.TrimSpace(request.Email),
		Title:       strings.TrimSpace(request.Title),
		Description: strings.TrimSpace(request.Description),
		Status:      StatusOpen,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.Repository.Create(ctx, ticket); err != nil {
		return nil, err
	}

	if s.Notifier != nil {
		if err := s.Notifier.SendTicketCreated(ctx, ticket); err != nil {
			logger.Warn().
				Err(err).
				Str("ticket_id", ticket.Id.String()).
				Msg("falha ao notificar suporte sobre novo chamado")
		}
	}

	return ticket, nil
}

func (s *Service) GetTicketsByUserID(ctx context.Context, userID ulid.ULID, pagination *pkg.PaginationParams) ([]*Ticket, int64, error) {
	return s.Repository.GetByUserId(ctx, userID, pagination)
}

func (s *Service) CloseTicket(ctx context.Context, ticketID, userID ulid.ULID) error {
	ticket, err := s.Repository.GetById(ctx, ticketID)
	if err != nil {
		return err
	}
	if ticket.UserId != userID {
		return appErrors.ErrResourceNotOwned
	}
	return s.Repository.UpdateStatus(ctx, ticketID, StatusClosed)
}

func validateTicket(request *domaincontracts.TicketCreateRequest) error {
	if strings.TrimSpace(request.Name) == "" {
		return appErrors.NewValidationError("name", "e obrigatorio")
	}
	email := strings.TrimSpace(request.Email)
	if email == "" {
		return appErrors.NewValidationError("email", "e obrigatorio")
	}
	if !strings.Contains(email, "@") {
		return appErrors.NewValidationError("email", "formato invalido")
	}
	if strings.TrimSpace(request.Title) == "" {
		return appErrors.NewValidationError("title", "e obrigatorio")
	}
	if strings.TrimSpace(request.Description) == "" {
		return appErrors.NewValidationError("description", "e obrigatorio")
	}
	return nil
}
