package goal_test

import (
	"context"
	"strings"
	"testing"

	domaincontracts "FinMate/internal/domain/contracts"
	"FinMate/internal/domain/feasibility"
	"FinMate/internal/domain/goal"
	appErrors "FinMate/internal/errors"
	"FinMate/internal/pkg"

	"github.com/oklog/ulid/v2"
)

type fakeGoalRepository struct {
	savePlanFn      func(ctx context.Context, plan *goal.Plan) error
	getPlanFn       func(ctx context.Context, userID ulid.ULID) (*goal.Plan, error)
	createFn        func(ctx context.Context, g *goal.Goal) error
	getByIDFn       func(ctx context.Context, id ulid.ULID) (*goal.Goal, error)
	getByIDAndUser  func(ctx context.Context, id, userID ulid.ULID) (*goal.Goal, error)
	getByUserFn     func(ctx context.Context, userID ulid.ULID, pagination *pkg.PaginationParams) ([]*goal.Goal, int64, error)
	countByUserFn   func(ctx context.Context, userID ulid.ULID) (int64, error)
	deleteFn        func(ctx context.Context, id ulid.ULID) error
	belongsToUserFn func(ctx context.Context, goalID, userID ulid.ULID) (bool, error)
}

func (f *fakeGoalRepository) SavePlan(ctx context.Context, plan *goal.Plan) error {
	if f.savePlanFn != nil {
		return f.savePlanFn(ctx, plan)
	}
	return nil
}

func (f *fakeGoalRepository) GetPlanByUser(ctx context.Context, userID ulid.ULID) (*goal.Plan, error) {
	if f.getPlanFn != nil {
		return f.getPlanFn(ctx, userID)
	}
	return nil, appErrors.ErrGoalNotFound
}

func (f *fakeGoalRepository) Create(ctx context.Context, g *goal.Goal) error {
	if f.createFn != nil {
		return f.createFn(ctx, g)
	}
	return nil
}

func (f *fakeGoalRepository) GetById(ctx context.Context, id ulid.ULID) (*goal.Goal, error) {
	if f.getByIDFn != nil {
		return f.getByIDFn(ctx, id)
	}
	return nil, appErrors.ErrGoalNotFound
}

func (f *fakeGoalRepository) GetByIdAndUser(ctx context.Context, id, userID ulid.ULID) (*goal.Goal, error) {
	if f.getByIDAndUser != nil {
		return f.getByIDAndUser(ctx, id, userID)
	}
	return nil, appErrors.ErrGoalNotFound
}

func (f *fakeGoalRepository) GetByUserId(ctx context.Context, userID ulid.ULID, pagination *pkg.PaginationParams) ([]*goal.Goal, int64, error) {
	if f.getByUserFn != nil {
		return f.getByUserFn(ctx, userID, pagination)
	}
	return nil, 0, nil
}

func (f *fakeGoalRepository) CountByUser(ctx context.Context, userID ulid.ULID) (int64, error) {
	if f.countByUserFn != nil {
		return f.countByUserFn(ctx, userID)
	}
	return 0, nil
}

func (f *fakeGoalRepository) Delete(ctx context.Context, id ulid.ULID) error {
	if f.deleteFn != nil {
		return f.deleteFn(ctx, id)
	}
	return nil
}

func (f *fakeGoalRepository) CheckGoalBelongsToUser(ctx context.Context, goalID, userID ulid.ULID) (bool, error) {
	if f.belongsToUserFn != nil {
		return f.belongsToUserFn(ctx, goalID, userID)
	}
	return true, nil
}

type fakeUserGetter struct {
	existsFn func(ctx context.Context, userID ulid.ULID) error
}

func (f *fakeUserGetter) Exists(ctx context.Context, userID ulid.ULID) error {
	if f.existsFn != nil {
		return f.existsFn(ctx, userID)
	}
	return nil
}

func TestServiceSavePlan(t *testing.T) {
	t.Parallel()

	userID := ulid.Make()
	ctx := context.Background()

	tests := []struct {
		name        string
		category    feasibility.Category
		duration    string
		income      string
		wantErrCode string
		wantPerYear float64
	}{
		{
			name:        "plano viavel e persistido",
			category:    feasibility.CategoryBuyCar,
			duration:    "5",
			income:      "6000",
			wantPerYear: 6000,
		},
		{
			name:        "igualdade exata conta como viavel",
			category:    feasibility.CategoryVacation,
			duration:    "2",
			income:      "2500",
			wantPerYear: 2500,
		},
		{
			name:        "renda insuficiente e rejeitada",
			category:    feasibility.CategoryBuyHouse,
			duration:    "10",
			income:      "20000",
			wantErrCode: "VALIDATION_ERROR",
		},
		{
			name:        "duracao nao numerica",
			category:    feasibility.CategoryBuyCar,
			duration:    "abc",
			income:      "6000",
			wantErrCode: appErrors.ErrInvalidDuration.Code,
		},
		{
			name:        "duracao zero",
			category:    feasibility.CategoryBuyCar,
			duration:    "0",
			income:      "6000",
			wantErrCode: appErrors.ErrInvalidDuration.Code,
		},
		{
			name:        "renda nao numerica",
			category:    feasibility.CategoryBuyCar,
			duration:    "5",
			income:      "muito",
			wantErrCode: appErrors.ErrInvalidIncome.Code,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var saved *goal.Plan
			repo := &fakeGoalRepository{
				savePlanFn: func(ctx context.Context, plan *goal.Plan) error {
					saved = plan
					return nil
				},
			}
			svc := goal.NewService(repo, &fakeUserGetter{})

			plan, err := svc.SavePlan(ctx, &domaincontracts.GoalPlanRequest{
				UserId:        userID,
				Category:      tt.category,
				DurationYears: tt.duration,
				AnnualIncome:  tt.income,
			})

			if tt.wantErrCode != "" {
				if err == nil {
					t.Fatalf("expected error")
				}
				appErr, ok := appErrors.AsAppError(err)
				if !ok {
					t.Fatalf("expected AppError, got %v", err)
				}
				if appErr.Code != tt.wantErrCode {
					t.Fatalf("expected code %s, got %s", tt.wantErrCode, appErr.Code)
				}
				if saved != nil {
					t.Fatalf("plan should not be persisted on rejection")
				}
				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if saved == nil {
				t.Fatalf("plan was not persisted")
			}
			if plan.RequiredPerYear != tt.wantPerYear {
				t.Fatalf("expected required %v, got %v", tt.wantPerYear, plan.RequiredPerYear)
			}
		})
	}
}

func TestServiceSavePlanRejectionHint(t *testing.T) {
	t.Parallel()

	svc := goal.NewService(&fakeGoalRepository{}, &fakeUserGetter{})

	_, err := svc.SavePlan(context.Background(), &domaincontracts.GoalPlanRequest{
		UserId:        ulid.Make(),
		Category:      feasibility.CategoryBuyCar,
		DurationYears: "10",
		AnnualIncome:  "2500",
	})
	if err == nil {
		t.Fatalf("expected rejection")
	}
	if !strings.Contains(err.Error(), "3000.00") {
		t.Fatalf("expected hint with required value, got %q", err.Error())
	}
}

func TestServiceTrackGoal(t *testing.T) {
	t.Parallel()

	userID := ulid.Make()
	ctx := context.Background()

	tests := []struct {
		name         string
		request      domaincontracts.GoalTrackRequest
		existing     int64
		wantErrCode  string
		wantFeasible bool
		wantRequired float64
	}{
		{
			name: "meta viavel",
			request: domaincontracts.GoalTrackRequest{
				UserId:         userID,
				Name:           "Notebook",
				TargetAmount:   "6000",
				DurationMonths: "12",
				Salary:         "4000",
				MonthlySavings: "500",
			},
			wantFeasible: true,
			wantRequired: 500,
		},
		{
			name: "meta inviavel fica gravada com veredito",
			request: domaincontracts.GoalTrackRequest{
				UserId:         userID,
				Name:           "Viagem",
				TargetAmount:   "12000",
				DurationMonths: "6",
				Salary:         "4000",
				MonthlySavings: "1000",
			},
			wantFeasible: false,
			wantRequired: 2000,
		},
		{
			name: "limite de uma meta por usuario",
			request: domaincontracts.GoalTrackRequest{
				UserId:         userID,
				Name:           "Outra",
				TargetAmount:   "1000",
				DurationMonths: "10",
				Salary:         "4000",
				MonthlySavings: "100",
			},
			existing:    1,
			wantErrCode: appErrors.ErrGoalLimitReached.Code,
		},
		{
			name: "nome obrigatorio",
			request: domaincontracts.GoalTrackRequest{
				UserId:         userID,
				Name:           "   ",
				TargetAmount:   "1000",
				DurationMonths: "10",
				Salary:         "4000",
				MonthlySavings: "100",
			},
			wantErrCode: "VALIDATION_ERROR",
		},
		{
			name: "duracao invalida",
			request: domaincontracts.GoalTrackRequest{
				UserId:         userID,
				Name:           "Meta",
				TargetAmount:   "1000",
				DurationMonths: "-3",
				Salary:         "4000",
				MonthlySavings: "100",
			},
			wantErrCode: appErrors.ErrInvalidDuration.Code,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var saved *goal.Goal
			repo := &fakeGoalRepository{
				countByUserFn: func(ctx context.Context, id ulid.ULID) (int64, error) {
					return tt.existing, nil
				},
				createFn: func(ctx context.Context, g *goal.Goal) error {
					saved = g
					return nil
				},
			}
			svc := goal.NewService(repo, &fakeUserGetter{})

			entity, err := svc.TrackGoal(ctx, &tt.request)

			if tt.wantErrCode != "" {
				if err == nil {
					t.Fatalf("expected error")
				}
				appErr, ok := appErrors.AsAppError(err)
				if !ok {
					t.Fatalf("expected AppError, got %v", err)
				}
				if appErr.Code != tt.wantErrCode {
					t.Fatalf("expected code %s, got %s", tt.wantErrCode, appErr.Code)
				}
				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if saved == nil {
				t.Fatalf("goal was not persisted")
			}
			if entity.Feasible != tt.wantFeasible {
				t.Fatalf("expected feasible=%v, got %v", tt.wantFeasible, entity.Feasible)
			}
			if entity.RequiredPerMonth != tt.wantRequired {
				t.Fatalf("expected required %v, got %v", tt.wantRequired, entity.RequiredPerMonth)
			}
			if entity.Message == "" {
				t.Fatalf("expected verdict message")
			}
			if !tt.wantFeasible && !strings.Contains(entity.Message, "2000.00") {
				t.Fatalf("expected required value in message, got %q", entity.Message)
			}
		})
	}
}

func TestServiceDeleteGoalOwnership(t *testing.T) {
	t.Parallel()

	repo := &fakeGoalRepository{
		belongsToUserFn: func(ctx context.Context, goalID, userID ulid.ULID) (bool, error) {
			return false, nil
		},
	}
	svc := goal.NewService(repo, &fakeUserGetter{})

	err := svc.DeleteGoal(context.Background(), ulid.Make(), ulid.Make())
	if err == nil {
		t.Fatalf("expected error")
	}
	appErr, ok := appErrors.AsAppError(err)
	if !ok || appErr.Code != appErrors.ErrResourceNotOwned.Code {
		t.Fatalf("expected %s, got %v", appErrors.ErrResourceNotOwned.Code, err)
	}
}

func TestServicePreviewRequiredPerYear(t *testing.T) {
	t.Parallel()

	svc := goal.NewService(&fakeGoalRepository{}, &fakeUserGetter{})

	required, err := svc.PreviewRequiredPerYear(feasibility.CategoryEducation, "4")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if required != 2500 {
		t.Fatalf("expected 2500, got %v", required)
	}

	if _, err := svc.PreviewRequiredPerYear(feasibility.CategoryEducation, ""); err == nil {
		t.Fatalf("expected error for blank duration")
	}
}
