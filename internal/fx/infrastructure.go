package fx

import (
	"FinMate/config"
	"FinMate/internal/infrastructure"

	"go.uber.org/fx"
	"gorm.io/gorm"
)

var InfrastructureModule = fx.Module("infrastructure",
	fx.Provide(
		newDatabase,
		newUserRepository,
		newGoalRepository,
		newExpenseRepository,
		newIncomeRepository,
		newTicketRepository,
		newSMTPNotifier,
	),
)

func newDatabase(cfg *config.Config) (*gorm.DB, error) {
	return infrastructure.NewDb(cfg)
}

func newUserRepository(db *gorm.DB) *infrastructure.UserRepository {
	return &infrastructure.UserRepository{DB: db}
}

func newGoalRepository(db *gorm.DB) *infrastructure.GoalRepository {
	return &infrastructure.GoalRepository{DB: db}
}

func newExpenseRepository(db *gorm.DB) *infrastructure.ExpenseRepository {
	return &infrastructure.ExpenseRepository{DB: db}
}

func newIncomeRepository(db *gorm.DB) *infrastructure.IncomeRepository {
	return &infrastructure.IncomeRepository{DB: db}
}

func newTicketRepository(db *gorm.DB) *infrastructure.TicketRepository {
	return &infrastructure.TicketRepository{DB: db}
}

func newSMTPNotifier(cfg *config.Config) *infrastructure.SMTPNotifier {
	return infrastructure.NewSMTPNotifier(cfg)
}
