package dashboard

import (
	"context"

	"FinMate/internal/domain/expense"
	"FinMate/internal/domain/goal"
	"FinMate/internal/domain/income"
	"FinMate/internal/domain/shared"
	appErrors "FinMate/internal/errors"
	"FinMate/internal/pkg"

	"github.com/oklog/ulid/v2"
)

type Service struct {
	IncomeService  *income.Service
	ExpenseService *expense.Service
	GoalService    *goal.Service
	Users          shared.UserGetter
}

func NewService(
	incomeSvc *income.Service,
	expenseSvc *expense.Service,
	goalSvc *goal.Service,
	users shared.UserGetter,
) *Service {
	return &Service{
		IncomeService:  incomeSvc,
		ExpenseService: expenseSvc,
		GoalService:    goalSvc,
		Users:          users,
	}
}

// Summary e a visao consolidada da tela inicial: renda vigente, despesas
// acumuladas, media diaria, alerta de gastos e as metas do usuario.
type Summary struct {
	TotalIncome   float64    `json:"totalIncome"`
	TotalExpenses float64    `json:"totalExpenses"`
	DailyAverage  float64    `json:"dailyAverage"`
	IncomeWarning bool       `json:"incomeWarning"`
	ActiveGoal    *goal.Goal `json:"activeGoal,omitempty"`
	Plan          *goal.Plan `json:"plan,omitempty"`
}

func (s *Service) GetSummary(ctx context.Context, userID ulid.ULID) (*Summary, error) {
	if err := s.Users.Exists(ctx, userID); err != nil {
		return nil, err
	}

	summary := &Summary{}

	latest, err := s.IncomeService.GetLatestByUser(ctx, userID)
	if err != nil {
		if appErr, ok := appErrors.AsAppError(err); !ok || appErr.Code != appErrors.ErrIncomeNotFound.Code {
			return nil, err
		}
	} else {
		summary.TotalIncome = latest.TotalIncome
	}

	summary.TotalExpenses, err = s.ExpenseService.GetTotalExpenses(ctx, userID)
	if err != nil {
		return nil, err
	}

	summary.DailyAverage, err = s.ExpenseService.GetDailyAverage(ctx, userID)
	if err != nil {
		return nil, err
	}

	summary.IncomeWarning, err = s.IncomeService.EvaluateWarning(ctx, userID)
	if err != nil {
		return nil, err
	}

	goals, _, err := s.GoalService.GetGoalsByUserID(ctx, userID, &pkg.PaginationParams{Page: 1, Limit: 1})
	if err != nil {
		return nil, err
	}
	if len(goals) > 0 {
		summary.ActiveGoal = goals[0]
	}

	plan, err := s.GoalService.GetPlanByUser(ctx, userID)
	if err != nil {
		if appErr, ok := appErrors.AsAppError(err); !ok || appErr.Code != appErrors.ErrGoalNotFound.Code {
			return nil, err
		}
	} else {
		summary.Plan = plan
	}

	return summary, nil
}
