package contracts

import (
	"FinMate/internal/domain/feasibility"

	"github.com/oklog/ulid/v2"
)

// GoalPlanRequest dimensiona uma meta de longo prazo: categoria com custo de
// referencia, duracao em ANOS e renda anual declarada.
type GoalPlanRequest struct {
	UserId        ulid.ULID
	Category      feasibility.Category
	DurationYears string
	AnnualIncome  string
}

// GoalTrackRequest acompanha uma meta de curto prazo: alvo informado pelo
// usuario, duracao em MESES e poupanca mensal declarada. As unidades dos dois
// fluxos sao diferentes de proposito e nunca sao normalizadas.
type GoalTrackRequest struct {
	UserId         ulid.ULID
	Name           string
	TargetAmount   string
	DurationMonths string
	Salary         string
	MonthlySavings string
}

type ExpenseCreateRequest struct {
	UserId ulid.ULID
	Fixed  feasibility.FixedAmounts
	Others []feasibility.OtherCategory
}

type IncomeSaveRequest struct {
	UserId      ulid.ULID
	Salary      string
	OtherIncome string
}

type TicketCreateRequest struct {
	UserId      ulid.ULID
	Name        string
	Email       string
	Title       string
	Description string
}
