package report

import (
	"context"
	"sort"
	"time"

	"FinMate/internal/domain/expense"
	"FinMate/internal/domain/feasibility"
	"FinMate/internal/domain/shared"

	"github.com/oklog/ulid/v2"
)

// ExpenseSource fornece os registros brutos que alimentam os relatorios.
type ExpenseSource interface {
	GetAllByUser(ctx context.Context, userID ulid.ULID) ([]*expense.Expense, error)
}

type Service struct {
	Expenses ExpenseSource
	Users    shared.UserGetter
}

func NewService(expenses ExpenseSource, users shared.UserGetter) *Service {
	return &Service{Expenses: expenses, Users: users}
}

// MonthlyReport agrega os envios de um mes: tabela de categorias com as 5
// fixas sempre presentes (mesmo zeradas) mais as adicionais, total do mes e a
// categoria de maior gasto.
type MonthlyReport struct {
	Month           time.Month                   `json:"month"`
	Year            int                          `json:"year"`
	Label           string                       `json:"label"`
	Total           float64                      `json:"total"`
	Breakdown       []feasibility.CategoryAmount `json:"breakdown"`
	HighestCategory string                       `json:"highestCategory"`
	HighestAmount   float64                      `json:"highestAmount"`
	EntryCount      int                          `json:"entryCount"`
}

// GetMonthlyReports agrupa os envios do usuario por mes e ano, do mais
// recente para o mais antigo. Usuario sem envios recebe lista vazia.
func (s *Service) GetMonthlyReports(ctx context.Context, userID ulid.ULID) ([]*MonthlyReport, error) {
	if err := s.Users.Exists(ctx, userID); err != nil {
		return nil, err
	}

	expenses, err := s.Expenses.GetAllByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	type monthKey struct {
		year  int
		month time.Month
	}

	groups := make(map[monthKey][]*expense.Expense)
	keys := make([]monthKey, 0)
	for _, entry := range expenses {
		key := monthKey{year: entry.CreatedAt.Year(), month: entry.CreatedAt.Month()}
		if _, seen := groups[key]; !seen {
			keys = append(keys, key)
		}
		groups[key] = append(groups[key], entry)
	}

	sort.Slice(keys, func(i, j int) bool {
		if keys[i].year != keys[j].year {
			return keys[i].year > keys[j].year
		}
		return keys[i].month > keys[j].month
	})

	reports := make([]*MonthlyReport, 0, len(keys))
	for _, key := range keys {
		report := buildMonthlyReport(key.month, key.year, groups[key])
		reports = append(reports, report)
	}
	return reports, nil
}

func buildMonthlyReport(month time.Month, year int, entries []*expense.Expense) *MonthlyReport {
	breakdown := []feasibility.CategoryAmount{
		{Name: "Food"},
		{Name: "Medicines"},
		{Name: "Entertainment"},
		{Name: "Transportation"},
		{Name: "Clothing"},
	}
	index := map[string]int{
		"Food":           0,
		"Medicines":      1,
		"Entertainment":  2,
		"Transportation": 3,
		"Clothing":       4,
	}

	var total float64
	for _, entry := range entries {
		breakdown[0].Amount += entry.Food
		breakdown[1].Amount += entry.Medicines
		breakdown[2].Amount += entry.Entertainment
		breakdown[3].Amount += entry.Transportation
		breakdown[4].Amount += entry.Clothing

		for _, other := range entry.Others {
			pos, seen := index[other.Name]
			if !seen {
				index[other.Name] = len(breakdown)
				breakdown = append(breakdown, feasibility.CategoryAmount{Name: other.Name, Amount: other.Amount})
				continue
			}
			breakdown[pos].Amount += other.Amount
		}

		total += entry.TotalAmount
	}

	highest := breakdown[0]
	for _, category := range breakdown[1:] {
		if category.Amount > highest.Amount {
			highest = category
		}
	}

	return &MonthlyReport{
		Month:           month,
		Year:            year,
		Label:           monthLabel(month, year),
		Total:           total,
		Breakdown:       breakdown,
		HighestCategory: highest.Name,
		HighestAmount:   highest.Amount,
		EntryCount:      len(entries),
	}
}

func monthLabel(month time.Month, year int) string {
	return time.Date(year, month, 1, 0, 0, 0, 0, time.UTC).Format("January 2006")
}
