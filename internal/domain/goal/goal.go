package goal

import (
	"time"

	"FinMate/internal/domain/feasibility"

	"github.com/oklog/ulid/v2"
)

// Plan e o dimensionamento de longo prazo: a categoria fornece o custo de
// referencia e a duracao e contada em ANOS. Cada usuario mantem no maximo um
// plano, que e substituido a cada novo envio.
type Plan struct {
	Id              ulid.ULID            `gorm:"type:varchar(26);primaryKey" json:"id"`
	UserId          ulid.ULID            `gorm:"type:varchar(26);uniqueIndex:idx_goal_plans_user;not null" json:"userId"`
	Category        feasibility.Category `gorm:"type:varchar(50);not null" json:"category"`
	DurationYears   float64              `gorm:"not null" json:"durationYears"`
	AnnualIncome    float64              `gorm:"not null" json:"annualIncome"`
	RequiredPerYear float64              `gorm:"not null" json:"requiredPerYear"`
	CreatedAt       time.Time            `gorm:"autoCreateTime;not null" json:"createdAt"`
	UpdatedAt       time.Time            `gorm:"autoUpdateTime;not null" json:"updatedAt"`
}

func (Plan) TableName() string {
	return "goal_plans"
}

// Goal e a meta acompanhada de curto prazo: alvo informado pelo usuario e
// duracao contada em MESES. O veredito de viabilidade e calculado no momento
// do cadastro e persistido junto com a meta.
type Goal struct {
	Id               ulid.ULID `gorm:"type:varchar(26);primaryKey" json:"id"`
	UserId           ulid.ULID `gorm:"type:varchar(26);index:idx_goals_user;not null" json:"userId"`
	Name             string    `gorm:"type:varchar(100);not null" json:"name"`
	TargetAmount     float64   `gorm:"not null" json:"targetAmount"`
	DurationMonths   float64   `gorm:"not null" json:"durationMonths"`
	Salary           float64   `gorm:"not null" json:"salary"`
	MonthlySavings   float64   `gorm:"not null" json:"monthlySavings"`
	RequiredPerMonth float64   `gorm:"not null" json:"requiredPerMonth"`
	Feasible         bool      `gorm:"not null" json:"feasible"`
	Message          string    `gorm:"type:varchar(255);not null" json:"message"`
	CreatedAt        time.Time `gorm:"autoCreateTime;not null" json:"createdAt"`
}

func (Goal) TableName() string {
	return "goals"
}
