package contracts

import (
	domainExpense "FinMate/internal/domain/expense"
)

type OtherCategoryRequest struct {
	Name   string `json:"name" binding:"omitempty,max=100"`
	Amount string `json:"amount"`
}

// Campos em branco valem zero; a unica rejeicao e o envio todo zerado.
type ExpenseCreateRequest struct {
	Food           string                 `json:"food"`
	Medicines      string                 `json:"medicines"`
	Entertainment  string                 `json:"entertainment"`
	Transportation string                 `json:"transportation"`
	Clothing       string                 `json:"clothing"`
	Others         []OtherCategoryRequest `json:"others" binding:"omitempty,dive"`
}

type ExpenseResponse struct {
	Expense *domainExpense.Expense `json:"expense"`
}

type ExpenseListResponse struct {
	Expenses []*domainExpense.Expense `json:"expenses"`
	Total    int64                    `json:"total"`
}

type DailyAverageResponse struct {
	DailyAverage float64 `json:"daily_average"`
}
