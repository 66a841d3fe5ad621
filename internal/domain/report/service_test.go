package report_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"FinMate/internal/domain/expense"
	"FinMate/internal/domain/report"

	"github.com/oklog/ulid/v2"
)

type fakeExpenseSource struct {
	expenses []*expense.Expense
}

func (f *fakeExpenseSource) GetAllByUser(ctx context.Context, userID ulid.ULID) ([]*expense.Expense, error) {
	return f.expenses, nil
}

type fakeUserGetter struct{}

func (f *fakeUserGetter) Exists(ctx context.Context, userID ulid.ULID) error { return nil }

func day(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 10, 0, 0, 0, time.UTC)
}

func TestServiceGetMonthlyReports(t *testing.T) {
	t.Parallel()

	source := &fakeExpenseSource{
		expenses: []*expense.Expense{
			{
				Food:        100,
				Medicines:   50,
				TotalAmount: 180,
				Others: []expense.ExpenseOther{
					{Name: "Pets", Amount: 30},
				},
				CreatedAt: day(2025, time.May, 3),
			},
			{
				Food:        40,
				Clothing:    60,
				TotalAmount: 120,
				Others: []expense.ExpenseOther{
					{Name: "Pets", Amount: 20},
				},
				CreatedAt: day(2025, time.May, 20),
			},
			{
				Entertainment: 300,
				TotalAmount:   300,
				CreatedAt:     day(2025, time.June, 1),
			},
		},
	}
	svc := report.NewService(source, &fakeUserGetter{})

	reports, err := svc.GetMonthlyReports(context.Background(), ulid.Make())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(reports) != 2 {
		t.Fatalf("expected 2 months, got %d", len(reports))
	}

	if reports[0].Label != "June 2025" || reports[1].Label != "May 2025" {
		t.Fatalf("expected most recent month first, got %q then %q", reports[0].Label, reports[1].Label)
	}

	may := reports[1]
	if may.Total != 300 {
		t.Fatalf("expected may total 300, got %v", may.Total)
	}
	if may.EntryCount != 2 {
		t.Fatalf("expected 2 entries in may, got %d", may.EntryCount)
	}

	wantOrder := []string{"Food", "Medicines", "Entertainment", "Transportation", "Clothing", "Pets"}
	if len(may.Breakdown) != len(wantOrder) {
		t.Fatalf("expected %d categories, got %d", len(wantOrder), len(may.Breakdown))
	}
	for i, name := range wantOrder {
		if may.Breakdown[i].Name != name {
			t.Fatalf("position %d: expected %s, got %s", i, name, may.Breakdown[i].Name)
		}
	}

	if may.Breakdown[0].Amount != 140 {
		t.Fatalf("expected food 140, got %v", may.Breakdown[0].Amount)
	}
	if may.Breakdown[5].Amount != 50 {
		t.Fatalf("expected pets 50, got %v", may.Breakdown[5].Amount)
	}

	if may.HighestCategory != "Food" || may.HighestAmount != 140 {
		t.Fatalf("expected highest Food 140, got %s %v", may.HighestCategory, may.HighestAmount)
	}

	june := reports[0]
	if june.HighestCategory != "Entertainment" {
		t.Fatalf("expected highest Entertainment, got %s", june.HighestCategory)
	}
	if len(june.Breakdown) != 5 {
		t.Fatalf("fixed categories must always be present, got %d", len(june.Breakdown))
	}
}

func TestServiceGetMonthlyReportsEmpty(t *testing.T) {
	t.Parallel()

	svc := report.NewService(&fakeExpenseSource{}, &fakeUserGetter{})

	reports, err := svc.GetMonthlyReports(context.Background(), ulid.Make())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(reports) != 0 {
		t.Fatalf("expected empty report list, got %d", len(reports))
	}
}

func TestServiceRenderHTML(t *testing.T) {
	t.Parallel()

	source := &fakeExpenseSource{
		expenses: []*expense.Expense{
			{
				Food:        99.5,
				TotalAmount: 99.5,
				CreatedAt:   day(2025, time.April, 10),
			},
		},
	}
	svc := report.NewService(source, &fakeUserGetter{})

	html, err := svc.RenderHTML(context.Background(), ulid.Make())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for _, fragment := range []string{"April 2025", "99.50", "Maior gasto: Food"} {
		if !strings.Contains(html, fragment) {
			t.Fatalf("expected %q in rendered html", fragment)
		}
	}
}

func TestServiceRenderHTMLEmpty(t *testing.T) {
	t.Parallel()

	svc := report.NewService(&fakeExpenseSource{}, &fakeUserGetter{})

	html, err := svc.RenderHTML(context.Background(), ulid.Make())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(html, "Nenhuma despesa registrada.") {
		t.Fatalf("expected empty-state message in rendered html")
	}
}
