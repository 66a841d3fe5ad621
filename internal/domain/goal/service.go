package goal

import (
	"context"
	"fmt"
	"strings"
	"time"

	domaincontracts "FinMate/internal/domain/contracts"
	"FinMate/internal/domain/feasibility"
	"FinMate/internal/domain/shared"
	appErrors "FinMate/internal/errors"
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

// SavePlan dimensiona a meta de longo prazo a partir do custo de referencia da
// categoria. O plano so e persistido quando a renda anual cobre a poupanca
// exigida; caso contrario o envio e rejeitado com a dica de quanto poupar.
func (s *Service) SavePlan(ctx context.Context, request *domaincontracts.GoalPlanRequest) (*Plan, error) {
	if err := s.Users.Exists(ctx, request.UserId); err != nil {
		return nil, err
	}

	duration, err := feasibility.ParseStrict(request.DurationYears)
	if err != nil {
		return nil, appErrors.ErrInvalidDuration
	}

	income, err := feasibility.ParseStrict(request.AnnualIncome)
	if err != nil {
		return nil, err
	}

	required, err := feasibility.ComputeRequiredSavings(request.Category, duration)
	if err != nil {
		return nil, err
	}

	result, err := feasibility.EvaluateFeasibility(income, required)
	if err != nil {
		return nil, err
	}
	if !result.Feasible {
		return nil, appErrors.NewValidationError(
			"annual_income",
			fmt.Sprintf("renda muito baixa para a meta; e preciso poupar %s por ano", feasibility.FormatAmount(required)),
		)
	}

	now := time.Now()
	plan := &Plan{
		Id:              pkg.GenerateULIDObject(),
		UserId:          request.UserId,
		Category:        request.Category,
		DurationYears:   duration,
		AnnualIncome:    income,
		RequiredPerYear: required,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	if err := s.Repository.SavePlan(ctx, plan); err != nil {
		return nil, err
	}
	return plan, nil
}

// PreviewRequiredPerYear calcula a dica exibida durante o preenchimento, sem
// tocar o banco.
func (s *Service) PreviewRequiredPerYear(category feasibility.Category, durationYears string) (float64, error) {
	duration, err := feasibility.ParseStrict(durationYears)
	if err != nil {
		return 0, appErrors.ErrInvalidDuration
	}
	return feasibility.ComputeRequiredSavings(category, duration)
}

func (s *Service) GetPlanByUser(ctx context.Context, userID ulid.ULID) (*Plan, error) {
	return s.Repository.GetPlanByUser(ctx, userID)
}

// TrackGoal cadastra a meta acompanhada de curto prazo. Apenas uma meta pode
// estar ativa por usuario; o veredito de viabilidade compara a poupanca mensal
// declarada com o exigido e fica gravado na propria meta.
func (s *Service) TrackGoal(ctx context.Context, request *domaincontracts.GoalTrackRequest) (*Goal, error) {
	name := strings.TrimSpace(request.Name)
	if name == "" {
		return nil, appErrors.NewValidationError("name", "e obrigatorio")
	}

	if err := s.Users.Exists(ctx, request.UserId); err != nil {
		return nil, err
	}

	count, err := s.Repository.CountByUser(ctx, request.UserId)
	if err != nil {
		return nil, err
	}
	if count >= 1 {
		return nil, appErrors.ErrGoalLimitReached
	}

	target, err := feasibility.ParseStrict(request.TargetAmount)
	if err != nil {
		return nil, appErrors.NewValidationError("target", "deve ser um valor numerico valido")
	}

	duration, err := feasibility.ParseStrict(request.DurationMonths)
	if err != nil {
		return nil, appErrors.ErrInvalidDuration
	}

	salary, err := feasibility.ParseStrict(request.Salary)
	if err != nil {
		return nil, err
	}

	savings, err := feasibility.ParseStrict(request.MonthlySavings)
	if err != nil {
		return nil, appErrors.NewValidationError("savings", "deve ser um valor numerico valido")
	}

	required, err := feasibility.RequiredSavingsForTarget(target, duration)
	if err != nil {
		return nil, err
	}

	result, err := feasibility.EvaluateFeasibility(savings, required)
	if err != nil {
		return nil, err
	}

	entity := &Goal{
		Id:               pkg.GenerateULIDObject(),
		UserId:           request.UserId,
		Name:             name,
		TargetAmount:     target,
		DurationMonths:   duration,
		Salary:           salary,
		MonthlySavings:   savings,
		RequiredPerMonth: result.RequiredPerPeriod,
		Feasible:         result.Feasible,
		Message:          result.Message,
		CreatedAt:        time.Now(),
	}

	if err := s.Repository.Create(ctx, entity); err != nil {
		return nil, err
	}
	return entity, nil
}

func (s *Service) GetGoalByID(ctx context.Context, goalID, userID ulid.ULID) (*Goal, error) {
	return s.Repository.GetByIdAndUser(ctx, goalID, userID)
}

func (s *Service) GetGoalsByUserID(ctx context.Context, userID ulid.ULID, pagination *pkg.PaginationParams) ([]*Goal, int64, error) {
	return s.Repository.GetByUserId(ctx, userID, pagination)
}

func (s *Service) DeleteGoal(ctx context.Context, goalID, userID ulid.ULID) error {
	if err := s.CheckGoalBelongsToUser(ctx, goalID, userID); err != nil {
		return err
	}
	return s.Repository.Delete(ctx, goalID)
}

func (s *Service) CheckGoalBelongsToUser(ctx context.Context, goalID, userID ulid.ULID) error {
	userBelongs, err := s.Repository.CheckGoalBelongsToUser(ctx, goalID, userID)
	if err != nil {
		return err
	}
	if !userBelongs {
		return appErrors.ErrResourceNotOwned
	}
	return nil
}
