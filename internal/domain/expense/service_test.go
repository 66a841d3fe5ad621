package expense_test

import (
	"context"
	"testing"

	domaincontracts "FinMate/internal/domain/contracts"
	"FinMate/internal/domain/expense"
	"FinMate/internal/domain/feasibility"
	appErrors "FinMate/internal/errors"
	"FinMate/internal/pkg"

	"github.com/oklog/ulid/v2"
)

type fakeExpenseRepository struct {
	createFn       func(ctx context.Context, e *expense.Expense) error
	getByIDFn      func(ctx context.Context, id ulid.ULID) (*expense.Expense, error)
	getByUserFn    func(ctx context.Context, userID ulid.ULID, pagination *pkg.PaginationParams) ([]*expense.Expense, int64, error)
	getAllByUserFn func(ctx context.Context, userID ulid.ULID) ([]*expense.Expense, error)
	getTotalFn     func(ctx context.Context, userID ulid.ULID) (float64, error)
	getTotalsFn    func(ctx context.Context, userID ulid.ULID) ([]float64, error)
}

func (f *fakeExpenseRepository) Create(ctx context.Context, e *expense.Expense) error {
	if f.createFn != nil {
		return f.createFn(ctx, e)
	}
	return nil
}

func (f *fakeExpenseRepository) GetById(ctx context.Context, id ulid.ULID) (*expense.Expense, error) {
	if f.getByIDFn != nil {
		return f.getByIDFn(ctx, id)
	}
	return nil, appErrors.ErrExpenseNotFound
}

func (f *fakeExpenseRepository) GetByUserId(ctx context.Context, userID ulid.ULID, pagination *pkg.PaginationParams) ([]*expense.Expense, int64, error) {
	if f.getByUserFn != nil {
		return f.getByUserFn(ctx, userID, pagination)
	}
	return nil, 0, nil
}

func (f *fakeExpenseRepository) GetAllByUser(ctx context.Context, userID ulid.ULID) ([]*expense.Expense, error) {
	if f.getAllByUserFn != nil {
		return f.getAllByUserFn(ctx, userID)
	}
	return nil, nil
}

func (f *fakeExpenseRepository) GetTotalByUser(ctx context.Context, userID ulid.ULID) (float64, error) {
	if f.getTotalFn != nil {
		return f.getTotalFn(ctx, userID)
	}
	return 0, nil
}

func (f *fakeExpenseRepository) GetTotalsByUser(ctx context.Context, userID ulid.ULID) ([]float64, error) {
	if f.getTotalsFn != nil {
		return f.getTotalsFn(ctx, userID)
	}
	return nil, nil
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

func TestServiceCreateExpense(t *testing.T) {
	t.Parallel()

	userID := ulid.Make()
	ctx := context.Background()

	tests := []struct {
		name        string
		fixed       feasibility.FixedAmounts
		others      []feasibility.OtherCategory
		wantErrCode string
		wantTotal   float64
		wantOthers  int
	}{
		{
			name: "formulario parcial soma so o que foi preenchido",
			fixed: feasibility.FixedAmounts{
				Food:      "100",
				Medicines: "50",
			},
			others: []feasibility.OtherCategory{
				{Name: "Pets", Amount: "30"},
				{Name: "Gym", Amount: "25"},
			},
			wantTotal:  205,
			wantOthers: 2,
		},
		{
			name: "valores nao numericos valem zero",
			fixed: feasibility.FixedAmounts{
				Food:     "100",
				Clothing: "abc",
			},
			wantTotal: 100,
		},
		{
			name:        "envio vazio e rejeitado",
			fixed:       feasibility.FixedAmounts{},
			wantErrCode: appErrors.ErrEmptySubmission.Code,
		},
		{
			name: "envio com tudo zerado e rejeitado",
			fixed: feasibility.FixedAmounts{
				Food: "0",
			},
			others:      []feasibility.OtherCategory{{Name: "Pets", Amount: ""}},
			wantErrCode: appErrors.ErrEmptySubmission.Code,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var saved *expense.Expense
			repo := &fakeExpenseRepository{
				createFn: func(ctx context.Context, e *expense.Expense) error {
					saved = e
					return nil
				},
			}
			svc := expense.NewService(repo, &fakeUserGetter{})

			entity, err := svc.CreateExpense(ctx, &domaincontracts.ExpenseCreateRequest{
				UserId: userID,
				Fixed:  tt.fixed,
				Others: tt.others,
			})

			if tt.wantErrCode != "" {
				if err == nil {
					t.Fatalf("expected error")
				}
				appErr, ok := appErrors.AsAppError(err)
				if !ok || appErr.Code != tt.wantErrCode {
					t.Fatalf("expected code %s, got %v", tt.wantErrCode, err)
				}
				if saved != nil {
					t.Fatalf("expense should not be persisted on rejection")
				}
				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if saved == nil {
				t.Fatalf("expense was not persisted")
			}
			if entity.TotalAmount != tt.wantTotal {
				t.Fatalf("expected total %v, got %v", tt.wantTotal, entity.TotalAmount)
			}
			if len(entity.Others) != tt.wantOthers {
				t.Fatalf("expected %d others, got %d", tt.wantOthers, len(entity.Others))
			}

			sum := entity.Food + entity.Medicines + entity.Entertainment +
				entity.Transportation + entity.Clothing
			for _, other := range entity.Others {
				sum += other.Amount
			}
			if entity.TotalAmount != sum {
				t.Fatalf("total %v diverges from parts sum %v", entity.TotalAmount, sum)
			}
		})
	}
}

func TestServiceCreateExpenseBlankOtherName(t *testing.T) {
	t.Parallel()

	var saved *expense.Expense
	repo := &fakeExpenseRepository{
		createFn: func(ctx context.Context, e *expense.Expense) error {
			saved = e
			return nil
		},
	}
	svc := expense.NewService(repo, &fakeUserGetter{})

	_, err := svc.CreateExpense(context.Background(), &domaincontracts.ExpenseCreateRequest{
		UserId: ulid.Make(),
		Others: []feasibility.OtherCategory{{Name: "   ", Amount: "40"}},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(saved.Others) != 1 || saved.Others[0].Name != "Other" {
		t.Fatalf("expected blank name to fall back to Other, got %+v", saved.Others)
	}
}

func TestServiceGetDailyAverage(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		totals []float64
		want   float64
	}{
		{name: "sem envios", totals: nil, want: 0},
		{name: "media simples", totals: []float64{100, 200}, want: 150},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			repo := &fakeExpenseRepository{
				getTotalsFn: func(ctx context.Context, userID ulid.ULID) ([]float64, error) {
					return tt.totals, nil
				},
			}
			svc := expense.NewService(repo, &fakeUserGetter{})

			avg, err := svc.GetDailyAverage(context.Background(), ulid.Make())
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if avg != tt.want {
				t.Fatalf("expected %v, got %v", tt.want, avg)
			}
		})
	}
}
