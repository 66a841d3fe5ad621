package helpdesk

import (
	"time"

	"github.com/oklog/ulid/v2"
)

type TicketStatus string

const (
	StatusOpen   TicketStatus = "open"
	StatusClosed TicketStatus = "closed"
)

type Ticket struct {
	Id          ulid.ULID    `gorm:"type:varchar(26);primaryKey" json:"id"`
	UserId      ulid.ULID    `gorm:"type:varchar(26);index:idx_tickets_user;not null" json:"userId"`
	Name        string       `gorm:"type:varchar(100);not null" json:"name"`
	Email       string       `gorm:"type:varchar(100);not null" json:"email"`
	Title       string       `gorm:"type:varchar(150);not null" json:"title"`
	Description string       `gorm:"type:text;not null" json:"description"`
	Status      TicketStatus `gorm:"type:varchar(20);not null" json:"status"`
	CreatedAt   time.Time    `gorm:"autoCreateTime;not null" json:"createdAt"`
	UpdatedAt   time.Time    `gorm:"autoUpdateTime;not null" json:"updatedAt"`
}

func (Ticket) TableName() string {
	return "support_tickets"
}
