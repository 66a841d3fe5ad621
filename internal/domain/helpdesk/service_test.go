package helpdesk_test

import (
	"context"
	"errors"
	"testing"

	domaincontracts "FinMate/internal/domain/contracts"
	"FinMate/internal/domain/helpdesk"
	appErrors "FinMate/internal/errors"
	"FinMate/internal/pkg"

	"github.com/oklog/ulid/v2"
)

type fakeTicketRepository struct {
	createFn       func(ctx context.Context, ticket *helpdesk.Ticket) error
	getByIDFn      func(ctx context.Context, id ulid.ULID) (*helpdesk.Ticket, error)
	getByUserFn    func(ctx context.Context, userID ulid.ULID, pagination *pkg.PaginationParams) ([]*helpdesk.Ticket, int64, error)
	updateStatusFn func(ctx context.Context, id ulid.ULID, status helpdesk.TicketStatus) error
}

func (f *fakeTicketRepository) Create(ctx context.Context, ticket *helpdesk.Ticket) error {
	if f.createFn != nil {
		return f.createFn(ctx, ticket)
	}
	return nil
}

func (f *fakeTicketRepository) GetById(ctx context.Context, id ulid.ULID) (*helpdesk.Ticket, error) {
	if f.getByIDFn != nil {
		return f.getByIDFn(ctx, id)
	}
	return nil, appErrors.ErrTicketNotFound
}

func (f *fakeTicketRepository) GetByUserId(ctx context.Context, userID ulid.ULID, pagination *pkg.PaginationParams) ([]*helpdesk.Ticket, int64, error) {
	if f.getByUserFn != nil {
		return f.getByUserFn(ctx, userID, pagination)
	}
	return nil, 0, nil
}

func (f *fakeTicketRepository) UpdateStatus(ctx context.Context, id ulid.ULID, status helpdesk.TicketStatus) error {
	if f.updateStatusFn != nil {
		return f.updateStatusFn(ctx, id, status)
	}
	return nil
}

type fakeNotifier struct {
	sendFn func(ctx context.Context, ticket *helpdesk.Ticket) error
	sent   int
}

func (f *fakeNotifier) SendTicketCreated(ctx context.Context, ticket *helpdesk.Ticket) error {
	f.sent++
	if f.sendFn != nil {
		return f.sendFn(ctx, ticket)
	}
	return nil
}

type fakeUserGetter struct{}

func (f *fakeUserGetter) Exists(ctx context.Context, userID ulid.ULID) error { return nil }

func validRequest(userID ulid.ULID) domaincontracts.TicketCreateRequest {
	return domaincontracts.TicketCreateRequest{
		UserId:      userID,
		Name:        "Maria",
		Email:       "maria@example.com",
		Title:       "App nao abre",
		Description: "Depois da atualizacao o app fecha sozinho.",
	}
}

func TestServiceCreateTicketValidations(t *testing.T) {
	t.Parallel()

	userID := ulid.Make()
	ctx := context.Background()

	tests := []struct {
		name   string
		mutate func(r *domaincontracts.TicketCreateRequest)
	}{
		{name: "nome vazio", mutate: func(r *domaincontracts.TicketCreateRequest) { r.Name = "  " }},
		{name: "email vazio", mutate: func(r *domaincontracts.TicketCreateRequest) { r.Email = "" }},
		{name: "email sem arroba", mutate: func(r *domaincontracts.TicketCreateRequest) { r.Email = "maria.example.com" }},
		{name: "titulo vazio", mutate: func(r *domaincontracts.TicketCreateRequest) { r.Title = "" }},
		{name: "descricao vazia", mutate: func(r *domaincontracts.TicketCreateRequest) { r.Description = "" }},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			request := validRequest(userID)
			tt.mutate(&request)

			notifier := &fakeNotifier{}
			svc := helpdesk.NewService(&fakeTicketRepository{}, notifier, &fakeUserGetter{})

			_, err := svc.CreateTicket(ctx, &request)
			if err == nil {
				t.Fatalf("expected validation error")
			}
			appErr, ok := appErrors.AsAppError(err)
			if !ok || appErr.Code != "VALIDATION_ERROR" {
				t.Fatalf("expected VALIDATION_ERROR, got %v", err)
			}
			if notifier.sent != 0 {
				t.Fatalf("notifier should not run on rejection")
			}
		})
	}
}

func TestServiceCreateTicket(t *testing.T) {
	t.Parallel()

	userID := ulid.Make()
	request := validRequest(userID)

	var saved *helpdesk.Ticket
	repo := &fakeTicketRepository{
		createFn: func(ctx context.Context, ticket *helpdesk.Ticket) error {
			saved = ticket
			return nil
		},
	}
	notifier := &fakeNotifier{}
	svc := helpdesk.NewService(repo, notifier, &fakeUserGetter{})

	ticket, err := svc.CreateTicket(context.Background(), &request)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if saved == nil {
		t.Fatalf("ticket was not persisted")
	}
	if ticket.Status != helpdesk.StatusOpen {
		t.Fatalf("expected open status, got %s", ticket.Status)
	}
	if notifier.sent != 1 {
		t.Fatalf("expected one notification, got %d", notifier.sent)
	}
}

func TestServiceCreateTicketNotifierFailureIsNotFatal(t *testing.T) {
	t.Parallel()

	notifier := &fakeNotifier{
		sendFn: func(ctx context.Context, ticket *helpdesk.Ticket) error {
			return errors.New("smtp down")
		},
	}
	svc := helpdesk.NewService(&fakeTicketRepository{}, notifier, &fakeUserGetter{})

	request := validRequest(ulid.Make())
	if _, err := svc.CreateTicket(context.Background(), &request); err != nil {
		t.Fatalf("notification failure must not fail the operation: %v", err)
	}
}

func TestServiceCloseTicketOwnership(t *testing.T) {
	t.Parallel()

	owner := ulid.Make()
	intruder := ulid.Make()
	ticketID := ulid.Make()

	repo := &fakeTicketRepository{
		getByIDFn: func(ctx context.Context, id ulid.ULID) (*helpdesk.Ticket, error) {
			return &helpdesk.Ticket{Id: ticketID, UserId: owner, Status: helpdesk.StatusOpen}, nil
		},
	}
	svc := helpdesk.NewService(repo, &fakeNotifier{}, &fakeUserGetter{})

	if err := svc.CloseTicket(context.Background(), ticketID, owner); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	err := svc.CloseTicket(context.Background(), ticketID, intruder)
	appErr, ok := appErrors.AsAppError(err)
	if !ok || appErr.Code != appErrors.ErrResourceNotOwned.Code {
		t.Fatalf("expected %s, got %v", appErrors.ErrResourceNotOwned.Code, err)
	}
}
