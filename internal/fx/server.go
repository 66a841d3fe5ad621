package fx

import (
	"context"

	"FinMate/config"
	"FinMate/internal/logger"
	"FinMate/internal/middleware"
	"FinMate/internal/routes"

	docs "FinMate/docs"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"go.uber.org/fx"
)

// ServerModule fornece a configuração do servidor HTTP
var ServerModule = fx.Module("server",
	fx.Provide(
		newRouter,
	),
	fx.Invoke(
		setupRoutes,
	),
)

func newRouter() *gin.Engine {
	return gin.Default()
}

func setupRoutes(
	lc fx.Lifecycle,
	cfg *config.Config,
	router *gin.Engine,
	handler *routes.Handler,
	jwtSvc *middleware.JwtService,
	authRateLimiter *middleware.RateLimiter,
) {
	router.Use(middleware.CORSMiddleware())

	docs.SwaggerInfo.BasePath = "/api"
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	public := router.Group("/api")
	public.Use(middleware.RateLimit(authRateLimiter))
	{
		public.POST("/auth/login", handler.Authenticate)
		public.POST("/auth/register", handler.Registration)
		public.POST("/auth/google", handler.GoogleAuth)
	}

	private := router.Group("/api")
	private.Use(middleware.AuthMiddleware(jwtSvc))
	private.Use(middleware.RateLimitByUser())
	{
		private.GET("/dashboard", handler.GetDashboard)

		users := private.Group("/users")
		{
			users.GET("/me", handler.GetMe)
			users.PATCH("/me", handler.UpdateUserName)
			users.PATCH("/me/password", handler.UpdateUserPassword)
			users.POST("/me/verify-email", handler.VerifyEmail)
			users.DELETE("/me", handler.DeleteUser)
		}

		goals := private.Group("/goals")
		{
			goals.POST("/plan", handler.SaveGoalPlan)
			goals.GET("/plan", handler.GetGoalPlan)
			goals.GET("/plan/preview", handler.PreviewGoalPlan)
			goals.POST("", handler.TrackGoal)
			goals.GET("", handler.ListGoals)
			goals.GET("/:id", handler.GetGoal)
			goals.DELETE("/:id", handler.DeleteGoal)
		}

		expenses := private.Group("/expenses")
		{
			expenses.POST("", handler.CreateExpense)
			expenses.GET("", handler.ListExpenses)
			expenses.GET("/daily-average", handler.GetDailyAverage)
		}

		incomes := private.Group("/income")
		{
			incomes.POST("", handler.SaveIncome)
			incomes.GET("/status", handler.GetIncomeStatus)
			incomes.GET("/warning", handler.GetIncomeWarning)
		}

		reports := private.Group("/reports")
		{
			reports.GET("", handler.GetMonthlyReports)
			reports.GET("/document", handler.GetReportDocument)
		}

		support := private.Group("/support/tickets")
		{
			support.POST("", handler.CreateTicket)
			support.GET("", handler.ListTickets)
			support.POST("/:id/close", handler.CloseTicket)
		}
	}

	serverAddr := ":" + cfg.Server.Port
	logger.Info().
		Str("address", serverAddr).
		Str("environment", cfg.App.Environment).
		Msg("Servidor iniciando")

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				if err := router.Run(serverAddr); err != nil {
					logger.Fatal().Err(err).Msg("Falha ao iniciar servidor")
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			logger.Info().Msg("Servidor parando...")
			return nil
		},
	})
}
