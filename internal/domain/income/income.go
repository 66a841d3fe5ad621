package income

import (
	"time"

	"github.com/oklog/ulid/v2"
)

// Income guarda um envio de renda. Envios nunca sao editados: uma atualizacao
// cria um registro novo e o mais recente passa a valer, respeitando a janela
// de 30 dias entre envios.
type Income struct {
	Id          ulid.ULID `gorm:"type:varchar(26);primaryKey" json:"id"`
	UserId      ulid.ULID `gorm:"type:varchar(26);index:idx_incomes_user;not null" json:"userId"`
	Salary      float64   `gorm:"not null" json:"salary"`
	OtherIncome float64   `gorm:"not null" json:"otherIncome"`
	TotalIncome float64   `gorm:"not null" json:"totalIncome"`
	CreatedAt   time.Time `gorm:"autoCreateTime;not null" json:"createdAt"`
}

func (Income) TableName() string {
	return "incomes"
}
