// Package steps provides step definitions for BDD integration tests.
package steps

import (
	"context"
	"net/http"
	"net/http/httptest"
	"time"

	"github.com/cucumber/godog"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

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
	"github.com/finance-ai/backend/test/integration/mock"
)

const testJWTSecret = "test-jwt-secret-key-for-testing-purposes"

// defaultLoginAttempts keeps ordinary scenarios clear of the limiter; the
// rate limiting feature rebuilds the server with a strict limit.
const defaultLoginAttempts = 1000

// testContext holds per-scenario state: the running server, the in-memory
// stores and the last response.
type testContext struct {
	db      *mock.Db
	redis   *redis.Client
	advisor *mock.Advisor

	server *httptest.Server
	client *http.Client

	response     *http.Response
	responseBody []byte

	accessToken string
	lastGoalID  string
}

// InitializeTestSuite sets up resources shared by every scenario.
func InitializeTestSuite(ctx *godog.TestSuiteContext) {
	ctx.BeforeSuite(func() {
		gin.SetMode(gin.TestMode)
	})
}

// InitializeScenario registers all step definitions.
func InitializeScenario(ctx *godog.ScenarioContext) {
	test := &testContext{
		db:      mock.NewDb(),
		redis:   mock.NewRedis(),
		advisor: mock.NewAdvisor(),
		client:  &http.Client{Timeout: 10 * time.Second},
	}

	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		if err := test.db.Reset(); err != nil {
			return ctx, err
		}
		if err := mock.ClearRedis(test.redis); err != nil {
			return ctx, err
		}
		test.advisor.Reset()
		test.accessToken = ""
		test.lastGoalID = ""
		test.response = nil
		test.responseBody = nil
		test.startServer(defaultLoginAttempts)
		return ctx, nil
	})

	ctx.After(func(ctx context.Context, sc *godog.Scenario, err error) (context.Context, error) {
		if test.server != nil {
			test.server.Close()
			test.server = nil
		}
		return ctx, nil
	})

	test.registerSteps(ctx)
}

// startServer wires the full application against the in-memory stores and
// starts an HTTP test server for it.
func (t *testContext) startServer(loginAttempts int) {
	if t.server != nil {
		t.server.Close()
	}

	userRepo := persistence.NewUserRepository(t.db.DbConn)
	transactionRepo := persistence.NewTransactionRepository(t.db.DbConn)
	goalRepo := persistence.NewGoalRepository(t.db.DbConn)

	passwordService := adapters.NewPasswordService()
	tokenService := adapters.NewTokenService(testJWTSecret, time.Hour)

	registerUseCase := auth.NewRegisterUserUseCase(userRepo, passwordService)
	loginUseCase := auth.NewLoginUserUseCase(userRepo, passwordService, tokenService)

	createTransactionUseCase := transaction.NewCreateTransactionUseCase(transactionRepo)
	listTransactionsUseCase := transaction.NewListTransactionsUseCase(transactionRepo)
	seedSampleDataUseCase := transaction.NewSeedSampleDataUseCase(createTransactionUseCase, transactionRepo)

	getDashboardUseCase := dashboard.NewGetDashboardUseCase(transactionRepo)

	createGoalUseCase := goal.NewCreateGoalUseCase(goalRepo)
	listGoalProgressUseCase := goal.NewListGoalProgressUseCase(goalRepo)
	updateGoalAmountUseCase := goal.NewUpdateGoalAmountUseCase(goalRepo)

	generateInsightUseCase := insight.NewGenerateInsightUseCase(transactionRepo, t.advisor)
	quickInsightUseCase := insight.NewQuickInsightUseCase(generateInsightUseCase)

	healthController := controller.NewHealthController(func() bool { return true })
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

	loginRateLimiter := middleware.NewRateLimiterWithConfig(t.redis, loginAttempts, time.Minute)
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

	t.server = httptest.NewServer(r.Setup("test"))
}
