package infrastructure

import (
	"context"
	"errors"
	"time"

	"FinMate/internal/domain/helpdesk"
	appErrors "FinMate/internal/errors"
	"FinMate/internal/pkg"

	"github.com/oklog/ulid/v2"
	"gorm.io/gorm"
)

type TicketRepository struct {
	DB *gorm.DB
}

type ticketDB struct {
	Id          string `gorm:"type:varchar(26);primaryKey"`
	UserId      string `gorm:"type:varchar(26);index;not null"`
	Name        string `gorm:"not null"`
	Email       string `gorm:"not null"`
	Title       string `gorm:"not null"`
	Description string `gorm:"not null"`
	Status      string `gorm:"not null"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func toDomainTicket(tdb *ticketDB) (*helpdesk.Ticket, error) {
	id, err := pkg.ParseULID(tdb.Id)
	if err != nil {
		return nil, appErrors.ErrInternalServer.WithError(err)
	}
	uid, err := pkg.ParseULID(tdb.UserId)
	if err != nil {
		return nil, appErrors.ErrInternalServer.WithError(err)
	}
	return &helpdesk.Ticket{
		Id:          id,
		UserId:      uid,
		Name:        tdb.Name,
		Email:       tdb.Email,
		Title:       tdb.Title,
		Description: tdb.Description,
		Status:      helpdesk.TicketStatus(tdb.Status),
		CreatedAt:   tdb.CreatedAt,
		UpdatedAt:   tdb.UpdatedAt,
	}, nil
}

func toDBTicket(t *helpdesk.Ticket) *ticketDB {
	return &ticketDB{
		Id:          t.Id.String(),
		UserId:      t.UserId.String(),
		Name:        t.Name,
		Email:       t.Email,
		Title:       t.Title,
		Description: t.Description,
		Status:      string(t.Status),
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	}
}

func (r *TicketRepository) Create(ctx context.Context, t *helpdesk.Ticket) error {
	tdb := toDBTicket(t)
	if err := r.DB.WithContext(ctx).Table("support_tickets").Create(&tdb).Error; err != nil {
		return appErrors.NewDatabaseError(err)
	}
	return nil
}

func (r *TicketRepository) GetById(ctx context.Context, id ulid.ULID) (*helpdesk.Ticket, error) {
	var tdb ticketDB
	if err := r.DB.WithContext(ctx).Table("support_tickets").Where("id = ?", id.String()).First(&tdb).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, appErrors.ErrTicketNotFound.WithError(err)
		}
		return nil, appErrors.NewDatabaseError(err)
	}
	return toDomainTicket(&tdb)
}

func (r *TicketRepository) GetByUserId(ctx context.Context, userID ulid.ULID, pagination *pkg.PaginationParams) ([]*helpdesk.Ticket, int64, error) {
	pagination = pkg.NormalizePagination(pagination)

	baseQuery := r.DB.WithContext(ctx).Table("support_tickets").Where("user_id = ?", userID.String())

	var total int64
	if err := baseQuery.Count(&total).Error; err != nil {
		return nil, 0, appErrors.NewDatabaseError(err)
	}

	var rows []ticketDB
	if err := baseQuery.Order("created_at DESC").
		Offset(pagination.Offset()).
		Limit(pagination.Limit).
		Find(&rows).Error; err != nil {
		return nil, 0, appErrors.NewDatabaseError(err)
	}

	out := make([]*helpdesk.Ticket, 0, len(rows))
	for i := range rows {
		t, err := toDomainTicket(&rows[i])
		if err != nil {
			return nil, 0, err
		}
		out = append(out, t)
	}
	return out, total, nil
}

func (r *TicketRepository) UpdateStatus(ctx context.Context, id ulid.ULID, status helpdesk.TicketStatus) error {
	result := r.DB.WithContext(ctx).Table("support_tickets").Where("id = ?", id.String()).
		Updates(map[string]interface{}{
			"status":     string(status),
			"updated_at": time.Now(),
		})
	if result.Error != nil {
		return appErrors.NewDatabaseError(result.Error)
	}
	if result.RowsAffected == 0 {
		return appErrors.ErrTicketNotFound
	}
	return nil
}
