package infrastructure

import (
	"context"
	"errors"
	"time"

	"FinMate/internal/domain/expense"
	appErrors "FinMate/internal/errors"
	"FinMate/internal/pkg"

	"github.com/oklog/ulid/v2"
	"gorm.io/gorm"
)

type ExpenseRepository struct {
	DB *gorm.DB
}

type expenseDB struct {
	Id             string `gorm:"type:varchar(26);primaryKey"`
	UserId         string `gorm:"type:varchar(26);index;not null"`
	Food           float64
	Medicines      float64
	Entertainment  float64
	Transportation float64
	Clothing       float64
	TotalAmount    float64
	CreatedAt      time.Time
}

type expenseOtherDB struct {
	Id        string `gorm:"type:varchar(26);primaryKey"`
	ExpenseId string `gorm:"type:varchar(26);index;not null"`
	Name      string `gorm:"not null"`
	Amount    float64
}

func toDomainExpense(edb *expenseDB, others []expenseOtherDB) (*expense.Expense, error) {
	id, err := pkg.ParseULID(edb.Id)
	if err != nil {
		return nil, appErrors.ErrInternalServer.WithError(err)
	}
	uid, err := pkg.ParseULID(edb.UserId)
	if err != nil {
		return nil, appErrors.ErrInternalServer.WithError(err)
	}

	entity := &expense.Expense{
		Id:             id,
		UserId:         uid,
		Food:           edb.Food,
		Medicines:      edb.Medicines,
		Entertainment:  edb.Entertainment,
		Transportation: edb.Transportation,
		Clothing:       edb.Clothing,
		TotalAmount:    edb.TotalAmount,
		CreatedAt:      edb.CreatedAt,
	}

	for i := range others {
		oid, err := pkg.ParseULID(others[i].Id)
		if err != nil {
			return nil, appErrors.ErrInternalServer.WithError(err)
		}
		entity.Others = append(entity.Others, expense.ExpenseOther{
			Id:        oid,
			ExpenseId: id,
			Name:      others[i].Name,
			Amount:    others[i].Amount,
		})
	}

	return entity, nil
}

func toDBExpense(e *expense.Expense) (*expenseDB, []expenseOtherDB) {
	edb := &expenseDB{
		Id:             e.Id.String(),
		UserId:         e.UserId.String(),
		Food:           e.Food,
		Medicines:      e.Medicines,
		Entertainment:  e.Entertainment,
		Transportation: e.Transportation,
		Clothing:       e.Clothing,
		TotalAmount:    e.TotalAmount,
		CreatedAt:      e.CreatedAt,
	}
	others := make([]expenseOtherDB, 0, len(e.Others))
	for i := range e.Others {
		others = append(others, expenseOtherDB{
			Id:        e.Others[i].Id.String(),
			ExpenseId: e.Id.String(),
			Name:      e.Others[i].Name,
			Amount:    e.Others[i].Amount,
		})
	}
	return edb, others
}

func (r *ExpenseRepository) Create(ctx context.Context, e *expense.Expense) error {
	edb, others := toDBExpense(e)
	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Table("expenses").Create(&edb).Error; err != nil {
			return appErrors.NewDatabaseError(err)
		}
		if len(others) > 0 {
			if err := tx.Table("expense_others").Create(&others).Error; err != nil {
				return appErrors.NewDatabaseError(err)
			}
		}
		return nil
	})
}

func (r *ExpenseRepository) GetById(ctx context.Context, id ulid.ULID) (*expense.Expense, error) {
	var edb expenseDB
	if err := r.DB.WithContext(ctx).Table("expenses").Where("id = ?", id.String()).First(&edb).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, appErrors.ErrExpenseNotFound.WithError(err)
		}
		return nil, appErrors.NewDatabaseError(err)
	}

	others, err := r.getOthers(ctx, []string{edb.Id})
	if err != nil {
		return nil, err
	}
	return toDomainExpense(&edb, others[edb.Id])
}

func (r *ExpenseRepository) GetByUserId(ctx context.Context, userID ulid.ULID, pagination *pkg.PaginationParams) ([]*expense.Expense, int64, error) {
	pagination = pkg.NormalizePagination(pagination)

	baseQuery := r.DB.WithContext(ctx).Table("expenses").Where("user_id = ?", userID.String())

	var total int64
	if err := baseQuery.Count(&total).Error; err != nil {
		return nil, 0, appErrors.NewDatabaseError(err)
	}

	var rows []expenseDB
	if err := baseQuery.Order("created_at DESC").
		Offset(pagination.Offset()).
		Limit(pagination.Limit).
		Find(&rows).Error; err != nil {
		return nil, 0, appErrors.NewDatabaseError(err)
	}

	out, err := r.assemble(ctx, rows)
	if err != nil {
		return nil, 0, err
	}
	return out, total, nil
}

func (r *ExpenseRepository) GetAllByUser(ctx context.Context, userID ulid.ULID) ([]*expense.Expense, error) {
	var rows []expenseDB
	if err := r.DB.WithContext(ctx).Table("expenses").
		Where("user_id = ?", userID.String()).
		Order("created_at ASC").
		Find(&rows).Error; err != nil {
		return nil, appErrors.NewDatabaseError(err)
	}
	return r.assemble(ctx, rows)
}

func (r *ExpenseRepository) GetTotalByUser(ctx context.Context, userID ulid.ULID) (float64, error) {
	var total float64
	if err := r.DB.WithContext(ctx).Table("expenses").
		Where("user_id = ?", userID.String()).
		Select("COALESCE(SUM(total_amount), 0)").
		Scan(&total).Error; err != nil {
		return 0, appErrors.NewDatabaseError(err)
	}
	return total, nil
}

func (r *ExpenseRepository) GetTotalsByUser(ctx context.Context, userID ulid.ULID) ([]float64, error) {
	var totals []float64
	if err := r.DB.WithContext(ctx).Table("expenses").
		Where("user_id = ?", userID.String()).
		Order("created_at ASC").
		Pluck("total_amount", &totals).Error; err != nil {
		return nil, appErrors.NewDatabaseError(err)
	}
	return totals, nil
}

func (r *ExpenseRepository) assemble(ctx context.Context, rows []expenseDB) ([]*expense.Expense, error) {
	ids := make([]string, 0, len(rows))
	for i := range rows {
		ids = append(ids, rows[i].Id)
	}

	others, err := r.getOthers(ctx, ids)
	if err != nil {
		return nil, err
	}

	out := make([]*expense.Expense, 0, len(rows))
	for i := range rows {
		e, err := toDomainExpense(&rows[i], others[rows[i].Id])
		if err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, nil
}

func (r *ExpenseRepository) getOthers(ctx context.Context, expenseIDs []string) (map[string][]expenseOtherDB, error) {
	grouped := make(map[string][]expenseOtherDB)
	if len(expenseIDs) == 0 {
		return grouped, nil
	}

	var rows []expenseOtherDB
	if err := r.DB.WithContext(ctx).Table("expense_others").
		Where("expense_id IN ?", expenseIDs).
		Order("id ASC").
		Find(&rows).Error; err != nil {
		return nil, appErrors.NewDatabaseError(err)
	}

	for i := range rows {
		grouped[rows[i].ExpenseId] = append(grouped[rows[i].ExpenseId], rows[i])
	}
	return grouped, nil
}
