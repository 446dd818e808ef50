package fx

import (
	"context"

	"github.com/gin-gonic/gin"
	"go.uber.org/fx"

	"Bolso/config"
	"Bolso/internal/logger"
	"Bolso/internal/middleware"
	"Bolso/internal/routes"
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

func newRouter(cfg *config.Config) *gin.Engine {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	return gin.Default()
}

func setupRoutes(
	lc fx.Lifecycle,
	cfg *config.Config,
	router *gin.Engine,
	handler *routes.Handler,
	jwtSvc *middleware.JwtService,
) {
	publicLimiter := middleware.NewRateLimiter(cfg.RateLimit.PublicPerWindow, cfg.RateLimit.Window)
	userLimiter := middleware.NewRateLimiter(cfg.RateLimit.UserPerWindow, cfg.RateLimit.Window)

	router.Use(middleware.CORSMiddleware())

	public := router.Group("/api")
	public.Use(middleware.RateLimit(publicLimiter))
	{
		public.POST("/auth/login", handler.Authenticate)
		public.POST("/auth/register", handler.Registration)
		public.POST("/auth/google", handler.GoogleAuth)
	}

	private := router.Group("/api")
	private.Use(middleware.AuthMiddleware(jwtSvc))
	private.Use(middleware.RateLimitByUser(userLimiter))
	{
		private.GET("/dashboard", handler.GetDashboard)

		users := private.Group("/users")
		{
			users.PATCH("/me", handler.UpdateUserName)
			users.PATCH("/me/password", handler.UpdateUserPassword)
			users.DELETE("/me", handler.DeleteUser)
		}

		budgets := private.Group("/budgets")
		{
			budgets.POST("", handler.SetupBudget)
			budgets.POST("/preview", handler.PreviewSetup)
			budgets.GET("/current", handler.GetCurrentBudget)
			budgets.PATCH("/current", handler.UpdateBudget)
			budgets.GET("/summary", handler.GetBudgetSummary)
		}

		categories := private.Group("/categories")
		{
			categories.POST("", handler.CreateCategory)
			categories.GET("", handler.ListCategories)
			categories.PATCH("/:id", handler.UpdateCategory)
			categories.DELETE("/:id", handler.DeleteCategory)
		}

		transactions := private.Group("/transactions")
		{
			transactions.POST("", handler.CreateTransaction)
			transactions.GET("", handler.GetTransactions)
			transactions.GET("/:id", handler.GetTransaction)
			transactions.PATCH("/:id", handler.UpdateTransaction)
			transactions.DELETE("/:id", handler.DeleteTransaction)
		}

		goals := private.Group("/goals")
		{
			goals.POST("", handler.CreateGoal)
			goals.GET("", handler.ListGoals)
			goals.GET("/:id", handler.GetGoal)
			goals.PATCH("/:id", handler.UpdateGoal)
			goals.DELETE("/:id", handler.DeleteGoal)
			goals.POST("/:id/contribution", handler.ContributeToGoal)
			goals.GET("/:id/progress", handler.GetGoalProgress)
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
			publicLimiter.Stop()
			userLimiter.Stop()
			logger.Info().Msg("Servidor parando...")
			return nil
		},
	})
}
