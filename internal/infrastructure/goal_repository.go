package infrastructure

import (
	"context"
	"errors"
	"time"

	"FinMate/internal/domain/feasibility"
	"FinMate/internal/domain/goal"
	appErrors "FinMate/internal/errors"
	"FinMate/internal/pkg"

	"github.com/oklog/ulid/v2"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type GoalRepository struct {
	DB *gorm.DB
}

type goalPlanDB struct {
	Id              string `gorm:"type:varchar(26);primaryKey"`
	UserId          string `gorm:"type:varchar(26);uniqueIndex:idx_goal_plans_user;not null"`
	Category        string `gorm:"not null"`
	DurationYears   float64
	AnnualIncome    float64
	RequiredPerYear float64
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

func toDomainPlan(pdb *goalPlanDB) (*goal.Plan, error) {
	id, err := pkg.ParseULID(pdb.Id)
	if err != nil {
		return nil, appErrors.ErrInternalServer.WithError(err)
	}
	uid, err := pkg.ParseULID(pdb.UserId)
	if err != nil {
		return nil, appErrors.ErrInternalServer.WithError(err)
	}
	return &goal.Plan{
		Id:              id,
		UserId:          uid,
		Category:        feasibility.Category(pdb.Category),
		DurationYears:   pdb.DurationYears,
		AnnualIncome:    pdb.AnnualIncome,
		RequiredPerYear: pdb.RequiredPerYear,
		CreatedAt:       pdb.CreatedAt,
		UpdatedAt:       pdb.UpdatedAt,
	}, nil
}

func toDBPlan(p *goal.Plan) *goalPlanDB {
	return &goalPlanDB{
		Id:              p.Id.String(),
		UserId:          p.UserId.String(),
		Category:        string(p.Category),
		DurationYears:   p.DurationYears,
		AnnualIncome:    p.AnnualIncome,
		RequiredPerYear: p.RequiredPerYear,
		CreatedAt:       p.CreatedAt,
		UpdatedAt:       p.UpdatedAt,
	}
}

// SavePlan substitui o plano vigente do usuario: upsert pela chave user_id.
func (r *GoalRepository) SavePlan(ctx context.Context, p *goal.Plan) error {
	pdb := toDBPlan(p)
	err := r.DB.WithContext(ctx).Table("goal_plans").
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "user_id"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"category", "duration_years", "annual_income", "required_per_year", "updated_at",
			}),
		}).
		Create(&pdb).Error
	if err != nil {
		return appErrors.NewDatabaseError(err)
	}
	return nil
}

func (r *GoalRepository) GetPlanByUser(ctx context.Context, userID ulid.ULID) (*goal.Plan, error) {
	var pdb goalPlanDB
	if err := r.DB.WithContext(ctx).Table("goal_plans").Where("user_id = ?", userID.String()).First(&pdb).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, appErrors.ErrGoalNotFound.WithError(err)
		}
		return nil, appErrors.NewDatabaseError(err)
	}
	return toDomainPlan(&pdb)
}

type goalDB struct {
	Id               string `gorm:"type:varchar(26);primaryKey"`
	UserId           string `gorm:"type:varchar(26);index;not null"`
	Name             string `gorm:"not null"`
	TargetAmount     float64
	DurationMonths   float64
	Salary           float64
	MonthlySavings   float64
	RequiredPerMonth float64
	Feasible         bool
	Message          string
	CreatedAt        time.Time
}

func toDomainGoal(gdb *goalDB) (*goal.Goal, error) {
	id, err := pkg.ParseULID(gdb.Id)
	if err != nil {
		return nil, appErrors.ErrInternalServer.WithError(err)
	}
	uid, err := pkg.ParseULID(gdb.UserId)
	if err != nil {
		return nil, appErrors.ErrInternalServer.WithError(err)
	}
	return &goal.Goal{
		Id:               id,
		UserId:           uid,
		Name:             gdb.Name,
		TargetAmount:     gdb.TargetAmount,
		DurationMonths:   gdb.DurationMonths,
		Salary:           gdb.Salary,
		MonthlySavings:   gdb.MonthlySavings,
		RequiredPerMonth: gdb.RequiredPerMonth,
		Feasible:         gdb.Feasible,
		Message:          gdb.Message,
		CreatedAt:        gdb.CreatedAt,
	}, nil
}

func toDBGoal(g *goal.Goal) *goalDB {
	return &goalDB{
		Id:               g.Id.String(),
		UserId:           g.UserId.String(),
		Name:             g.Name,
		TargetAmount:     g.TargetAmount,
		DurationMonths:   g.DurationMonths,
		Salary:           g.Salary,
		MonthlySavings:   g.MonthlySavings,
		RequiredPerMonth: g.RequiredPerMonth,
		Feasible:         g.Feasible,
		Message:          g.Message,
		CreatedAt:        g.CreatedAt,
	}
}

func (r *GoalRepository) Create(ctx context.Context, g *goal.Goal) error {
	gdb := toDBGoal(g)
	if err := r.DB.WithContext(ctx).Table("goals").Create(&gdb).Error; err != nil {
		return appErrors.NewDatabaseError(err)
	}
	return nil
}

func (r *GoalRepository) GetById(ctx context.Context, id ulid.ULID) (*goal.Goal, error) {
	var gdb goalDB
	if err := r.DB.WithContext(ctx).Table("goals").Where("id = ?", id.String()).First(&gdb).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, appErrors.ErrGoalNotFound.WithError(err)
		}
		return nil, appErrors.NewDatabaseError(err)
	}
	return toDomainGoal(&gdb)
}

func (r *GoalRepository) GetByIdAndUser(ctx context.Context, id, userID ulid.ULID) (*goal.Goal, error) {
	var gdb goalDB
	if err := r.DB.WithContext(ctx).Table("goals").Where("id = ? AND user_id = ?", id.String(), userID.String()).First(&gdb).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, appErrors.ErrGoalNotFound.WithError(err)
		}
		return nil, appErrors.NewDatabaseError(err)
	}
	return toDomainGoal(&gdb)
}

func (r *GoalRepository) GetByUserId(ctx context.Context, userID ulid.ULID, pagination *pkg.PaginationParams) ([]*goal.Goal, int64, error) {
	pagination = pkg.NormalizePagination(pagination)

	baseQuery := r.DB.WithContext(ctx).Table("goals").Where("user_id = ?", userID.String())

	var total int64
	if err := baseQuery.Count(&total).Error; err != nil {
		return nil, 0, appErrors.NewDatabaseError(err)
	}

	var rows []goalDB
	if err := baseQuery.Order("created_at DESC").
		Offset(pagination.Offset()).
		Limit(pagination.Limit).
		Find(&rows).Error; err != nil {
		return nil, 0, appErrors.NewDatabaseError(err)
	}
	out := make([]*goal.Goal, 0, len(rows))
	for i := range rows {
		g, err := toDomainGoal(&rows[i])
		if err != nil {
			return nil, 0, err
		}
		out = append(out, g)
	}
	return out, total, nil
}

func (r *GoalRepository) CountByUser(ctx context.Context, userID ulid.ULID) (int64, error) {
	var count int64
	if err := r.DB.WithContext(ctx).Table("goals").Where("user_id = ?", userID.String()).Count(&count).Error; err != nil {
		return 0, appErrors.NewDatabaseError(err)
	}
	return count, nil
}

func (r *GoalRepository) Delete(ctx context.Context, id ulid.ULID) error {
	result := r.DB.WithContext(ctx).Table("goals").Where("id = ?", id.String()).Delete(&goalDB{})
	if result.Error != nil {
		return appErrors.NewDatabaseError(result.Error)
	}
	if result.RowsAffected == 0 {
		return appErrors.ErrGoalNotFound
	}
	return nil
}

func (r *GoalRepository) CheckGoalBelongsToUser(ctx context.Context, goalID, userID ulid.ULID) (bool, error) {
	var count int64
	if err := r.DB.WithContext(ctx).Table("goals").Where("id = ? AND user_id = ?", goalID.String(), userID.String()).Count(&count).Error; err != nil {
		return false, appErrors.NewDatabaseError(err)
	}
	return count > 0, nil
}
