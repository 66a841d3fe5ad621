package income

import (
	"context"
	"fmt"
	"time"

	domaincontracts "FinMate/internal/domain/contracts"
	"FinMate/internal/domain/feasibility"
	"FinMate/internal/domain/shared"
	appErrors "FinMate/internal/errors"
	"FinMate/internal/pkg"

	"github.com/oklog/ulid/v2"
)

// ExpenseTotalGetter fornece o total de despesas usado no alerta de renda.
type ExpenseTotalGetter interface {
	GetTotalByUser(ctx context.Context, userID ulid.ULID) (float64, error)
}

type Service struct {
	Repository   Repository
	Users        shared.UserGetter
	ExpenseTotal ExpenseTotalGetter
}

func NewService(repo Repository, users shared.UserGetter, expenseTotal ExpenseTotalGetter) *Service {
	return &Service{Repository: repo, Users: users, ExpenseTotal: expenseTotal}
}

// Status descreve se o usuario pode enviar renda agora e, quando bloqueado,
// quanto falta para a janela liberar.
type Status struct {
	Editable  bool    `json:"editable"`
	Remaining string  `json:"remaining,omitempty"`
	Latest    *Income `json:"latest,omitempty"`
}

// SaveIncome registra um envio de renda. Salario e outras rendas sao ambos
// obrigatorios e estritamente numericos. O relogio vem do chamador para a
// janela de 30 dias ser testavel.
func (s *Service) SaveIncome(ctx context.Context, now time.Time, request *domaincontracts.IncomeSaveRequest) (*Income, error) {
	if err := s.Users.Exists(ctx, request.UserId); err != nil {
		return nil, err
	}

	salary, err := feasibility.ParseStrict(request.Salary)
	if err != nil {
		return nil, appErrors.NewValidationError("salary", "deve ser um valor numerico valido")
	}

	other, err := feasibility.ParseStrict(request.OtherIncome)
	if err != nil {
		return nil, appErrors.NewValidationError("other_income", "deve ser um valor numerico valido")
	}

	latest, err := s.Repository.GetLatestByUser(ctx, request.UserId)
	if err != nil {
		if appErr, ok := appErrors.AsAppError(err); !ok || appErr.Code != appErrors.ErrIncomeNotFound.Code {
			return nil, err
		}
	}

	if latest != nil {
		editable, remaining := feasibility.IsIncomeEditable(now, latest.CreatedAt)
		if !editable {
			return nil, appErrors.ErrIncomeCooldown.WithDetails(map[string]interface{}{
				"remaining": FormatRemaining(remaining),
			})
		}
	}

	entity := &Income{
		Id:          pkg.GenerateULIDObject(),
		UserId:      request.UserId,
		Salary:      salary,
		OtherIncome: other,
		TotalIncome: salary + other,
		CreatedAt:   now,
	}

	if err := s.Repository.Create(ctx, entity); err != nil {
		return nil, err
	}
	return entity, nil
}

// GetIncomeStatus informa a renda vigente e o estado da janela de envio.
// Usuario sem envio previo esta sempre liberado.
func (s *Service) GetIncomeStatus(ctx context.Context, now time.Time, userID ulid.ULID) (*Status, error) {
	latest, err := s.Repository.GetLatestByUser(ctx, userID)
	if err != nil {
		if appErr, ok := appErrors.AsAppError(err); ok && appErr.Code == appErrors.ErrIncomeNotFound.Code {
			return &Status{Editable: true}, nil
		}
		return nil, err
	}

	editable, remaining := feasibility.IsIncomeEditable(now, latest.CreatedAt)
	status := &Status{Editable: editable, Latest: latest}
	if !editable {
		status.Remaining = FormatRemaining(remaining)
	}
	return status, nil
}

// GetLatestByUser devolve o envio de renda vigente do usuario.
func (s *Service) GetLatestByUser(ctx context.Context, userID ulid.ULID) (*Income, error) {
	return s.Repository.GetLatestByUser(ctx, userID)
}

// EvaluateWarning sinaliza quando as despesas acumuladas passam de 80% da
// renda vigente. Sem renda cadastrada nao ha alerta.
func (s *Service) EvaluateWarning(ctx context.Context, userID ulid.ULID) (bool, error) {
	latest, err := s.Repository.GetLatestByUser(ctx, userID)
	if err != nil {
		if appErr, ok := appErrors.AsAppError(err); ok && appErr.Code == appErrors.ErrIncomeNotFound.Code {
			return false, nil
		}
		return false, err
	}

	totalExpenses, err := s.ExpenseTotal.GetTotalByUser(ctx, userID)
	if err != nil {
		return false, err
	}

	return feasibility.EvaluateIncomeWarning(latest.TotalIncome, totalExpenses), nil
}

// FormatRemaining formata o tempo restante da janela como na tela de renda.
func FormatRemaining(remaining time.Duration) string {
	if remaining < 0 {
		remaining = 0
	}
	hours := int(remaining / time.Hour)
	minutes := int(remaining/time.Minute) % 60
	seconds := int(remaining/time.Second) % 60
	return fmt.Sprintf("%dh %dm %ds", hours, minutes, seconds)
}
