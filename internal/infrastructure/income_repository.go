package infrastructure

import (
	"context"
	"errors"
	"time"

	"FinMate/internal/domain/income"
	appErrors "FinMate/internal/errors"
	"FinMate/internal/pkg"

	"github.com/oklog/ulid/v2"
	"gorm.io/gorm"
)

type IncomeRepository struct {
	DB *gorm.DB
}

type incomeDB struct {
	Id          string `gorm:"type:varchar(26);primaryKey"`
	UserId      string `gorm:"type:varchar(26);index;not null"`
	Salary      float64
	OtherIncome float64
	TotalIncome float64
	CreatedAt   time.Time
}

func toDomainIncome(idb *incomeDB) (*income.Income, error) {
	id, err := pkg.ParseULID(idb.Id)
	if err != nil {
		return nil, appErrors.ErrInternalServer.WithError(err)
	}
	uid, err := pkg.ParseULID(idb.UserId)
	if err != nil {
		return nil, appErrors.ErrInternalServer.WithError(err)
	}
	return &income.Income{
		Id:          id,
		UserId:      uid,
		Salary:      idb.Salary,
		OtherIncome: idb.OtherIncome,
		TotalIncome: idb.TotalIncome,
		CreatedAt:   idb.CreatedAt,
	}, nil
}

func toDBIncome(i *income.Income) *incomeDB {
	return &incomeDB{
		Id:          i.Id.String(),
		UserId:      i.UserId.String(),
		Salary:      i.Salary,
		OtherIncome: i.OtherIncome,
		TotalIncome: i.TotalIncome,
		CreatedAt:   i.CreatedAt,
	}
}

func (r *IncomeRepository) Create(ctx context.Context, i *income.Income) error {
	idb := toDBIncome(i)
	if err := r.DB.WithContext(ctx).Table("incomes").Create(&idb).Error; err != nil {
		return appErrors.NewDatabaseError(err)
	}
	return nil
}

func (r *IncomeRepository) GetLatestByUser(ctx context.Context, userID ulid.ULID) (*income.Income, error) {
	var idb incomeDB
	if err := r.DB.WithContext(ctx).Table("incomes").
		Where("user_id = ?", userID.String()).
		Order("created_at DESC").
		First(&idb).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, appErrors.ErrIncomeNotFound.WithError(err)
		}
		return nil, appErrors.NewDatabaseError(err)
	}
	return toDomainIncome(&idb)
}
