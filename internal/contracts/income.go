package contracts

import (
	domainIncome "FinMate/internal/domain/income"
)

type IncomeSaveRequest struct {
	Salary      string `json:"salary" binding:"required"`
	OtherIncome string `json:"other_income" binding:"required"`
}

type IncomeResponse struct {
	Income *domainIncome.Income `json:"income"`
}

type IncomeStatusResponse struct {
	Status *domainIncome.Status `json:"status"`
}

type IncomeWarningResponse struct {
	Warning bool `json:"warning"`
}
