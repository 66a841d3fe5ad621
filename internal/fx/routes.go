package fx

import (
	"time"

	"FinMate/internal/domain/auth"
	"FinMate/internal/domain/dashboard"
	"FinMate/internal/domain/expense"
	"FinMate/internal/domain/goal"
	"FinMate/internal/domain/helpdesk"
	"FinMate/internal/domain/income"
	"FinMate/internal/domain/report"
	"FinMate/internal/domain/user"
	"FinMate/internal/middleware"
	"FinMate/internal/routes"

	"go.uber.org/fx"
)

// RoutesModule fornece handlers e rate limiters
var RoutesModule = fx.Module("routes",
	fx.Provide(
		newHandler,
		newAuthRateLimiter,
	),
)

func newHandler(
	userSvc *user.Service,
	jwtSvc *middleware.JwtService,
	authSvc *auth.Service,
	goalSvc *goal.Service,
	expenseSvc *expense.Service,
	incomeSvc *income.Service,
	reportSvc *report.Service,
	helpdeskSvc *helpdesk.Service,
	dashboardSvc *dashboard.Service,
) *routes.Handler {
	return &routes.Handler{
		UserService:      userSvc,
		JwtService:       jwtSvc,
		AuthService:      authSvc,
		GoalService:      goalSvc,
		ExpenseService:   expenseSvc,
		IncomeService:    incomeSvc,
		ReportService:    reportSvc,
		HelpdeskService:  helpdeskSvc,
		DashboardService: dashboardSvc,
	}
}

func newAuthRateLimiter() *middleware.RateLimiter {
	return middleware.NewRateLimiter(100, time.Minute)
}
