package expense

import (
	"context"
	"strings"
	"time"

	domaincontracts "FinMate/internal/domain/contracts"
	"FinMate/internal/domain/feasibility"
	"FinMate/internal/domain/shared"
	"FinMate/internal/pkg"

	"github.com/oklog/ulid/v2"
)

type Service struct {
	Repository Repository
	Users      shared.UserGetter
}

func NewService(repo Repository, users shared.UserGetter) *Service {
	return &Service{Repository: repo, Users: users}
}

// CreateExpense registra um envio do formulario de despesas. Campos em branco
// ou nao numericos valem zero; envios completamente zerados sao rejeitados.
// Registros criados nunca sao editados depois.
func (s *Service) CreateExpense(ctx context.Context, request *domaincontracts.ExpenseCreateRequest) (*Expense, error) {
	if err := s.Users.Exists(ctx, request.UserId); err != nil {
		return nil, err
	}

	if err := feasibility.ValidateSubmission(request.Fixed, request.Others); err != nil {
		return nil, err
	}

	entity := &Expense{
		Id:             pkg.GenerateULIDObject(),
		UserId:         request.UserId,
		Food:           feasibility.ParseLenient(request.Fixed.Food),
		Medicines:      feasibility.ParseLenient(request.Fixed.Medicines),
		Entertainment:  feasibility.ParseLenient(request.Fixed.Entertainment),
		Transportation: feasibility.ParseLenient(request.Fixed.Transportation),
		Clothing:       feasibility.ParseLenient(request.Fixed.Clothing),
		TotalAmount:    feasibility.AggregateExpenseTotal(request.Fixed, request.Others),
		CreatedAt:      time.Now(),
	}

	for _, other := range request.Others {
		name := strings.TrimSpace(other.Name)
		if name == "" {
			name = "Other"
		}
		entity.Others = append(entity.Others, ExpenseOther{
			Id:        pkg.GenerateULIDObject(),
			ExpenseId: entity.Id,
			Name:      name,
			Amount:    feasibility.ParseLenient(other.Amount),
		})
	}

	if err := s.Repository.Create(ctx, entity); err != nil {
		return nil, err
	}
	return entity, nil
}

func (s *Service) GetExpensesByUserID(ctx context.Context, userID ulid.ULID, pagination *pkg.PaginationParams) ([]*Expense, int64, error) {
	return s.Repository.GetByUserId(ctx, userID, pagination)
}

func (s *Service) GetAllByUser(ctx context.Context, userID ulid.ULID) ([]*Expense, error) {
	return s.Repository.GetAllByUser(ctx, userID)
}

func (s *Service) GetTotalExpenses(ctx context.Context, userID ulid.ULID) (float64, error) {
	return s.Repository.GetTotalByUser(ctx, userID)
}

// GetDailyAverage calcula a media sobre os totais dos envios do usuario.
// Usuario sem envios recebe zero.
func (s *Service) GetDailyAverage(ctx context.Context, userID ulid.ULID) (float64, error) {
	totals, err := s.Repository.GetTotalsByUser(ctx, userID)
	if err != nil {
		return 0, err
	}
	return feasibility.ComputeDailyAverage(totals), nil
}
