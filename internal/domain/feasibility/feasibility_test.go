package feasibility_test

import (
	"math"
	"strings"
	"testing"
	"time"

	"FinMate/internal/domain/feasibility"
	appErrors "FinMate/internal/errors"
)

func TestComputeRequiredSavings(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		category feasibility.Category
		duration float64
		want     float64
	}{
		{name: "buy house over 10 periods", category: feasibility.CategoryBuyHouse, duration: 10, want: 50000},
		{name: "buy car over 10 periods", category: feasibility.CategoryBuyCar, duration: 10, want: 3000},
		{name: "vacation over 2 periods", category: feasibility.CategoryVacation, duration: 2, want: 2500},
		{name: "education over 4 periods", category: feasibility.CategoryEducation, duration: 4, want: 2500},
		{name: "investments over 5 periods", category: feasibility.CategoryInvestments, duration: 5, want: 4000},
		{name: "others over 1 period", category: feasibility.CategoryOthers, duration: 1, want: 10000},
		{name: "unknown category costs zero", category: feasibility.Category("Yacht"), duration: 3, want: 0},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			got, err := feasibility.ComputeRequiredSavings(tt.category, tt.duration)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Fatalf("expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestComputeRequiredSavingsInvalidDuration(t *testing.T) {
	t.Parallel()

	for _, duration := range []float64{0, -1, -0.5, math.NaN(), math.Inf(1), math.Inf(-1)} {
		_, err := feasibility.ComputeRequiredSavings(feasibility.CategoryBuyCar, duration)
		if err == nil {
			t.Fatalf("expected error for duration %v", duration)
		}
		appErr, ok := appErrors.AsAppError(err)
		if !ok {
			t.Fatalf("expected AppError, got %T", err)
		}
		if appErr.Code != appErrors.ErrInvalidDuration.Code {
			t.Fatalf("expected %s, got %s", appErrors.ErrInvalidDuration.Code, appErr.Code)
		}
	}
}

func TestComputeRequiredSavingsIsPure(t *testing.T) {
	t.Parallel()

	first, err := feasibility.ComputeRequiredSavings(feasibility.CategoryEducation, 7)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := feasibility.ComputeRequiredSavings(feasibility.CategoryEducation, 7)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if first != second {
		t.Fatalf("expected identical results, got %v and %v", first, second)
	}
}

func TestEvaluateFeasibility(t *testing.T) {
	t.Parallel()

	t.Run("income below required", func(t *testing.T) {
		required, err := feasibility.ComputeRequiredSavings(feasibility.CategoryBuyCar, 10)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if required != 3000 {
			t.Fatalf("expected 3000, got %v", required)
		}

		result, err := feasibility.EvaluateFeasibility(2500, required)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if result.Feasible {
			t.Fatalf("expected infeasible result")
		}
		if !strings.Contains(result.Message, "3000.00") {
			t.Fatalf("expected message to contain required value, got %q", result.Message)
		}
	})

	t.Run("income equal to required is feasible", func(t *testing.T) {
		result, err := feasibility.EvaluateFeasibility(3000, 3000)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !result.Feasible {
			t.Fatalf("expected exact match to be feasible")
		}
	})

	t.Run("income above required is feasible", func(t *testing.T) {
		result, err := feasibility.EvaluateFeasibility(5000, 3000)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !result.Feasible {
			t.Fatalf("expected feasible result")
		}
	})

	t.Run("non numeric income", func(t *testing.T) {
		_, err := feasibility.EvaluateFeasibility(math.NaN(), 3000)
		if err == nil {
			t.Fatalf("expected error")
		}
		appErr, _ := appErrors.AsAppError(err)
		if appErr.Code != appErrors.ErrInvalidIncome.Code {
			t.Fatalf("expected %s, got %s", appErrors.ErrInvalidIncome.Code, appErr.Code)
		}
	})
}

func TestAggregateExpenseTotal(t *testing.T) {
	t.Parallel()

	fixed := feasibility.FixedAmounts{
		Food:           "100",
		Medicines:      "0",
		Entertainment:  "50",
		Transportation: "",
		Clothing:       "25",
	}
	others := []feasibility.OtherCategory{{Name: "Pets", Amount: "30"}}

	if got := feasibility.AggregateExpenseTotal(fixed, others); got != 205 {
		t.Fatalf("expected 205, got %v", got)
	}

	t.Run("blank and garbage parse as zero", func(t *testing.T) {
		fixed := feasibility.FixedAmounts{Food: "abc", Medicines: "  ", Clothing: "10"}
		if got := feasibility.AggregateExpenseTotal(fixed, nil); got != 10 {
			t.Fatalf("expected 10, got %v", got)
		}
	})

	t.Run("permutation does not change total", func(t *testing.T) {
		base := feasibility.AggregateExpenseTotal(
			feasibility.FixedAmounts{Food: "1", Medicines: "2", Entertainment: "3", Transportation: "4", Clothing: "5"},
			[]feasibility.OtherCategory{{Name: "A", Amount: "6"}, {Name: "B", Amount: "7"}},
		)
		permuted := feasibility.AggregateExpenseTotal(
			feasibility.FixedAmounts{Food: "5", Medicines: "4", Entertainment: "3", Transportation: "2", Clothing: "1"},
			[]feasibility.OtherCategory{{Name: "B", Amount: "7"}, {Name: "A", Amount: "6"}},
		)
		if base != permuted {
			t.Fatalf("expected %v, got %v", base, permuted)
		}
	})
}

func TestValidateSubmission(t *testing.T) {
	t.Parallel()

	err := feasibility.ValidateSubmission(feasibility.FixedAmounts{}, []feasibility.OtherCategory{{Name: "Pets", Amount: ""}})
	if err == nil {
		t.Fatalf("expected error for empty submission")
	}
	appErr, _ := appErrors.AsAppError(err)
	if appErr.Code != appErrors.ErrEmptySubmission.Code {
		t.Fatalf("expected %s, got %s", appErrors.ErrEmptySubmission.Code, appErr.Code)
	}

	if err := feasibility.ValidateSubmission(feasibility.FixedAmounts{Food: "1"}, nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestBreakdownKeepsFixedCategoriesOrdered(t *testing.T) {
	t.Parallel()

	breakdown := feasibility.Breakdown(feasibility.FixedAmounts{Entertainment: "50"}, []feasibility.OtherCategory{
		{Name: "", Amount: "12"},
		{Name: "Pets", Amount: "30"},
	})

	wantNames := []string{"Food", "Medicines", "Entertainment", "Transportation", "Clothing", "Other", "Pets"}
	if len(breakdown) != len(wantNames) {
		t.Fatalf("expected %d entries, got %d", len(wantNames), len(breakdown))
	}
	for i, want := range wantNames {
		if breakdown[i].Name != want {
			t.Fatalf("position %d: expected %s, got %s", i, want, breakdown[i].Name)
		}
	}
	if breakdown[0].Amount != 0 || breakdown[2].Amount != 50 {
		t.Fatalf("unexpected amounts: %+v", breakdown)
	}
}

func TestComputeDailyAverage(t *testing.T) {
	t.Parallel()

	if got := feasibility.ComputeDailyAverage(nil); got != 0 {
		t.Fatalf("expected 0 for empty set, got %v", got)
	}
	if got := feasibility.ComputeDailyAverage([]float64{100, 200}); got != 150 {
		t.Fatalf("expected 150, got %v", got)
	}
}

func TestEvaluateIncomeWarning(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		income   float64
		expenses float64
		want     bool
	}{
		{name: "above threshold", income: 1000, expenses: 850, want: true},
		{name: "exactly at threshold", income: 1000, expenses: 800, want: false},
		{name: "zero income never warns", income: 0, expenses: 0, want: false},
		{name: "zero income with expenses", income: 0, expenses: 100, want: false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			if got := feasibility.EvaluateIncomeWarning(tt.income, tt.expenses); got != tt.want {
				t.Fatalf("expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestIsIncomeEditable(t *testing.T) {
	t.Parallel()

	saved := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)

	t.Run("within cooldown", func(t *testing.T) {
		now := saved.Add(10 * 24 * time.Hour)
		editable, remaining := feasibility.IsIncomeEditable(now, saved)
		if editable {
			t.Fatalf("expected edit blocked")
		}
		if remaining != 20*24*time.Hour {
			t.Fatalf("expected 20 days remaining, got %v", remaining)
		}
	})

	t.Run("exactly at window boundary", func(t *testing.T) {
		now := saved.Add(feasibility.CooldownWindow)
		editable, remaining := feasibility.IsIncomeEditable(now, saved)
		if !editable || remaining != 0 {
			t.Fatalf("expected editable at boundary, got editable=%v remaining=%v", editable, remaining)
		}
	})

	t.Run("after window", func(t *testing.T) {
		editable, _ := feasibility.IsIncomeEditable(saved.Add(31*24*time.Hour), saved)
		if !editable {
			t.Fatalf("expected editable after window")
		}
	})
}

func TestFormatAmount(t *testing.T) {
	t.Parallel()

	if got := feasibility.FormatAmount(3000); got != "3000.00" {
		t.Fatalf("expected 3000.00, got %s", got)
	}
	if got := feasibility.FormatAmount(205.456); got != "205.46" {
		t.Fatalf("expected 205.46, got %s", got)
	}
}
