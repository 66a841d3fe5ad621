package contracts

import (
	domainGoal "FinMate/internal/domain/goal"
)

// Campos de valor chegam como texto: o backend e quem decide entre parsing
// estrito e leniente, igual aos formularios do app.
type GoalPlanRequest struct {
	Category      string `json:"category" binding:"required"`
	DurationYears string `json:"duration_years" binding:"required"`
	AnnualIncome  string `json:"annual_income" binding:"required"`
}

type GoalPlanResponse struct {
	Plan *domainGoal.Plan `json:"plan"`
}

type GoalPreviewResponse struct {
	Category        string  `json:"category"`
	RequiredPerYear float64 `json:"required_per_year"`
}

type GoalTrackRequest struct {
	Name           string `json:"name" binding:"required,min=1,max=100"`
	TargetAmount   string `json:"target_amount" binding:"required"`
	DurationMonths string `json:"duration_months" binding:"required"`
	Salary         string `json:"salary" binding:"required"`
	MonthlySavings string `json:"monthly_savings" binding:"required"`
}

type GoalResponse struct {
	Goal *domainGoal.Goal `json:"goal"`
}

type GoalListResponse struct {
	Goals []*domainGoal.Goal `json:"goals"`
	Total int64              `json:"total"`
}
