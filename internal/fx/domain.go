package fx

import (
	"FinMate/config"
	"FinMate/internal/domain/auth"
	"FinMate/internal/domain/dashboard"
	"FinMate/internal/domain/expense"
	"FinMate/internal/domain/goal"
	"FinMate/internal/domain/helpdesk"
	"FinMate/internal/domain/income"
	"FinMate/internal/domain/report"
	"FinMate/internal/domain/shared"
	"FinMate/internal/domain/user"
	"FinMate/internal/infrastructure"
	"FinMate/internal/logger"

	"go.uber.org/fx"
)

// DomainModule fornece todos os services do domínio
var DomainModule = fx.Module("domain",
	fx.Provide(
		newUserService,
		newUserCheckerService,

		newGoogleClientID,
		newAuthService,

		newGoalService,
		newExpenseService,
		newIncomeService,
		newReportService,
		newHelpdeskService,
		newDashboardService,
	),
)

func newUserService(repo *infrastructure.UserRepository) *user.Service {
	return user.NewService(repo)
}

func newUserCheckerService(userSvc *user.Service) *shared.UserCheckerService {
	return shared.NewUserCheckerService(userSvc)
}

func newGoogleClientID(cfg *config.Config) string {
	googleClientID := ""
	if cfg.GoogleOAuth.Enabled {
		if cfg.GoogleOAuth.ClientID == "" {
			logger.Warn().
				Msg("GOOGLE_OAUTH_ENABLED=true mas GOOGLE_OAUTH_CLIENT_ID está vazio. Verifique se a variável está definida no arquivo .env")
		} else {
			googleClientID = cfg.GoogleOAuth.ClientID
			logger.Info().
				Int("client_id_length", len(googleClientID)).
				Msg("Google OAuth habilitado")
		}
	} else {
		logger.Info().Msg("Google OAuth desabilitado (GOOGLE_OAUTH_ENABLED não está definido como 'true')")
	}
	return googleClientID
}

func newAuthService(
	repo *infrastructure.UserRepository,
	userSvc *user.Service,
	googleClientID string,
) *auth.Service {
	return auth.NewService(repo, userSvc, googleClientID)
}

func newGoalService(
	repo *infrastructure.GoalRepository,
	userChecker *shared.UserCheckerService,
) *goal.Service {
	return goal.NewService(repo, userChecker)
}

func newExpenseService(
	repo *infrastructure.ExpenseRepository,
	userChecker *shared.UserCheckerService,
) *expense.Service {
	return expense.NewService(repo, userChecker)
}

func newIncomeService(
	repo *infrastructure.IncomeRepository,
	expenseRepo *infrastructure.ExpenseRepository,
	userChecker *shared.UserCheckerService,
) *income.Service {
	return income.NewService(repo, userChecker, expenseRepo)
}

func newReportService(
	expenseRepo *infrastructure.ExpenseRepository,
	userChecker *shared.UserCheckerService,
) *report.Service {
	return report.NewService(expenseRepo, userChecker)
}

func newHelpdeskService(
	repo *infrastructure.TicketRepository,
	notifier *infrastructure.SMTPNotifier,
	userChecker *shared.UserCheckerService,
) *helpdesk.Service {
	return helpdesk.NewService(repo, notifier, userChecker)
}

func newDashboardService(
	incomeSvc *income.Service,
	expenseSvc *expense.Service,
	goalSvc *goal.Service,
	userChecker *shared.UserCheckerService,
) *dashboard.Service {
	return dashboard.NewService(incomeSvc, expenseSvc, goalSvc, userChecker)
}
