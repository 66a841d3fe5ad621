package expense

import (
	"time"

	"github.com/oklog/ulid/v2"
)

// Expense e um registro imutavel de despesas do dia: as 5 categorias fixas
// sempre presentes (zeradas quando o campo veio em branco) mais as categorias
// adicionais nomeadas pelo usuario. TotalAmount e sempre a soma das parcelas.
type Expense struct {
	Id             ulid.ULID      `gorm:"type:varchar(26);primaryKey" json:"id"`
	UserId         ulid.ULID      `gorm:"type:varchar(26);index:idx_expenses_user;not null" json:"userId"`
	Food           float64        `gorm:"not null" json:"food"`
	Medicines      float64        `gorm:"not null" json:"medicines"`
	Entertainment  float64        `gorm:"not null" json:"entertainment"`
	Transportation float64        `gorm:"not null" json:"transportation"`
	Clothing       float64        `gorm:"not null" json:"clothing"`
	Others         []ExpenseOther `gorm:"foreignKey:ExpenseId;constraint:OnDelete:CASCADE" json:"others"`
	TotalAmount    float64        `gorm:"not null" json:"totalAmount"`
	CreatedAt      time.Time      `gorm:"autoCreateTime;not null" json:"createdAt"`
}

func (Expense) TableName() string {
	return "expenses"
}

type ExpenseOther struct {
	Id        ulid.ULID `gorm:"type:varchar(26);primaryKey" json:"id"`
	ExpenseId ulid.ULID `gorm:"type:varchar(26);index:idx_expense_others_expense;not null" json:"expenseId"`
	Name      string    `gorm:"type:varchar(100);not null" json:"name"`
	Amount    float64   `gorm:"not null" json:"amount"`
}

func (ExpenseOther) TableName() string {
	return "expense_others"
}
