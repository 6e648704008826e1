// Package dependency provides dependency injection for the application.
package dependency

import (
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/finance-ai/backend/config"
	"github.com/finance-ai/backend/internal/application/adapter"
	"github.com/finance-ai/backend/internal/application/usecase/auth"
	"github.com/finance-ai/backend/internal/application/usecase/dashboard"
	"github.com/finance-ai/backend/internal/application/usecase/goal"
	"github.com/finance-ai/backend/internal/application/usecase/insight"
	"github.com/finance-ai/backend/internal/application/usecase/transaction"
	"github.com/finance-ai/backend/internal/infra/server/router"
	"github.com/finance-ai/backend/internal/integration/adapters"
	"github.com/finance-ai/backend/internal/integration/entrypoint/controller"
	"github.com/finance-ai/backend/internal/integration/entrypoint/middleware"
	"github.com/finance-ai/backend/internal/integration/persistence"
)

// Injector holds all application dependencies.
type Injector struct {
	Config *config.Config
	DB     *gorm.DB
	Redis  *redis.Client
	Router *router.Router
}

// NewInjector creates a new dependency injector with all dependencies wired.
func NewInjector(cfg *config.Config, db *gorm.DB, redisClient *redis.Client) *Injector {
	// Repositories
	userRepo := persistence.NewUserRepository(db)
	transactionRepo := persistence.NewTransactionRepository(db)
	goalRepo := persistence.NewGoalRepository(db)

	// Adapters/services
	passwordService := adapters.NewPasswordService()
	tokenService := adapters.NewTokenService(cfg.JWT.Secret, cfg.JWT.AccessTokenExpiry)
	advisorService := newAdvisorService(&cfg.Advisor)

	// Auth use cases
	registerUseCase := auth.NewRegisterUserUseCase(userRepo, passwordService)
	loginUseCase := auth.NewLoginUserUseCase(userRepo, passwordService, tokenService)

	// Transaction use cases
	createTransactionUseCase := transaction.NewCreateTransactionUseCase(transactionRepo)
	listTransactionsUseCase := transaction.NewListTransactionsUseCase(transactionRepo)
	seedSampleDataUseCase := transaction.NewSeedSampleDataUseCase(createTransactionUseCase, transactionRepo)

	// Dashboard use cases
	getDashboardUseCase := dashboard.NewGetDashboardUseCase(transactionRepo)

	// Goal use cases
	createGoalUseCase := goal.NewCreateGoalUseCase(goalRepo)
	listGoalProgressUseCase := goal.NewListGoalProgressUseCase(goalRepo)
	updateGoalAmountUseCase := goal.NewUpdateGoalAmountUseCase(goalRepo)

	// Insight use cases
	generateInsightUseCase := insight.NewGenerateInsightUseCase(transactionRepo, advisorService)
	quickInsightUseCase := insight.NewQuickInsightUseCase(generateInsightUseCase)

	// Controllers
	healthController := controller.NewHealthController(func() bool {
		sqlDB, err := db.DB()
		if err != nil {
			return false
		}
		return sqlDB.Ping() == nil
	})

	authController := controller.NewAuthController(registerUseCase, loginUseCase)
	transactionController := controller.NewTransactionController(
		createTransactionUseCase,
		listTransactionsUseCase,
		seedSampleDataUseCase,
	)
	dashboardController := controller.NewDashboardController(getDashboardUseCase)
	goalController := controller.NewGoalController(
		createGoalUseCase,
		listGoalProgressUseCase,
		updateGoalAmountUseCase,
	)
	insightController := controller.NewInsightController(generateInsightUseCase, quickInsightUseCase)

	// Middleware. Higher login rate limits in test environments keep suites
	// from tripping the limiter.
	var loginRateLimiter *middleware.RateLimiter
	if redisClient != nil {
		if cfg.Server.Environment == "e2e" || cfg.Server.Environment == "test" {
			loginRateLimiter = middleware.NewRateLimiterWithConfig(redisClient, 1000, 1*time.Minute)
		} else {
			loginRateLimiter = middleware.NewRateLimiter(redisClient)
		}
	}
	authMiddleware := middleware.NewAuthMiddleware(tokenService)

	r := router.NewRouter(
		healthController,
		authController,
		transactionController,
		dashboardController,
		goalController,
		insightController,
		loginRateLimiter,
		authMiddleware,
	)

	return &Injector{
		Config: cfg,
		DB:     db,
		Redis:  redisClient,
		Router: r,
	}
}

// newAdvisorService selects the advisor backend from configuration. An
// unknown provider name falls back to OpenRouter.
func newAdvisorService(cfg *config.AdvisorConfig) adapter.AdvisorService {
	switch cfg.Provider {
	case "gemini":
		return adapters.NewGeminiService(cfg.GeminiAPIKey)
	case "openrouter":
		return adapters.NewOpenRouterService(cfg.OpenRouterAPIKey)
	default:
		slog.Warn("Unknown advisor provider, defaulting to openrouter", "provider", cfg.Provider)
		return adapters.NewOpenRouterService(cfg.OpenRouterAPIKey)
	}
}
