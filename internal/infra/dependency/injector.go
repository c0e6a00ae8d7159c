// Package dependency provides dependency injection for the application.
package dependency

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/finance-tracker/ledger/config"
	"github.com/finance-tracker/ledger/internal/application/adapter"
	"github.com/finance-tracker/ledger/internal/application/usecase/auth"
	"github.com/finance-tracker/ledger/internal/application/usecase/category"
	"github.com/finance-tracker/ledger/internal/application/usecase/debt"
	"github.com/finance-tracker/ledger/internal/application/usecase/goal"
	"github.com/finance-tracker/ledger/internal/application/usecase/paymentmethod"
	"github.com/finance-tracker/ledger/internal/application/usecase/person"
	"github.com/finance-tracker/ledger/internal/application/usecase/transaction"
	"github.com/finance-tracker/ledger/internal/infra/metrics"
	"github.com/finance-tracker/ledger/internal/infra/server/router"
	"github.com/finance-tracker/ledger/internal/integration/adapters"
	"github.com/finance-tracker/ledger/internal/integration/cache"
	"github.com/finance-tracker/ledger/internal/integration/entrypoint/controller"
	"github.com/finance-tracker/ledger/internal/integration/entrypoint/middleware"
	"github.com/finance-tracker/ledger/internal/integration/persistence"
)

// Injector holds all application dependencies.
type Injector struct {
	Config  *config.Config
	DB      *gorm.DB
	Router  *router.Router
	Metrics *metrics.Metrics
}

// NewInjector creates a new dependency injector with all dependencies wired.
// A nil redisClient runs without the summary cache.
func NewInjector(cfg *config.Config, db *gorm.DB, redisClient *redis.Client, clock adapter.Clock) *Injector {
	// Create repositories
	userRepo := persistence.NewUserRepository(db)
	tokenRepo := persistence.NewTokenRepository(db)
	categoryRepo := persistence.NewCategoryRepository(db)
	relationshipRepo := persistence.NewRelationshipRepository(db)
	paymentMethodRepo := persistence.NewPaymentMethodRepository(db)
	transactionRepo := persistence.NewTransactionRepository(db)
	debtRepo := persistence.NewDebtRepository(db)
	personRepo := persistence.NewPersonRepository(db)
	goalRepo := persistence.NewGoalRepository(db)

	// Create adapters/services
	passwordService := adapters.NewPasswordService(cfg.JWT.BcryptCost)
	tokenService := adapters.NewTokenService(
		cfg.JWT.Secret,
		cfg.JWT.AccessTokenExpiry,
		cfg.JWT.RefreshTokenExpiry,
		tokenRepo,
		clock,
	)
	appMetrics := metrics.New()

	var summaryCache adapter.SummaryCache
	var cacheHealthChecker func() bool
	if redisClient != nil {
		summaryCache = cache.NewSummaryCache(redisClient, cfg.Redis.SummaryTTL)
		cacheHealthChecker = func() bool {
			ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
			defer cancel()
			return redisClient.Ping(ctx).Err() == nil
		}
	}

	// Create auth use cases
	registerUseCase := auth.NewRegisterUserUseCase(userRepo, passwordService, tokenService)
	loginUseCase := auth.NewLoginUserUseCase(userRepo, passwordService, tokenService)
	refreshTokenUseCase := auth.NewRefreshTokenUseCase(tokenService)
	logoutUseCase := auth.NewLogoutUserUseCase(tokenService)
	getCurrentUserUseCase := auth.NewGetCurrentUserUseCase(userRepo)

	// Create catalog use cases
	listCategoriesUseCase := category.NewListCategoriesUseCase(categoryRepo)
	createCategoryUseCase := category.NewCreateCategoryUseCase(categoryRepo)
	updateCategoryUseCase := category.NewUpdateCategoryUseCase(categoryRepo)
	deleteCategoryUseCase := category.NewDeleteCategoryUseCase(categoryRepo)
	listRelationshipsUseCase := category.NewListRelationshipsUseCase(relationshipRepo)
	createRelationshipUseCase := category.NewCreateRelationshipUseCase(relationshipRepo)

	listPaymentMethodsUseCase := paymentmethod.NewListPaymentMethodsUseCase(paymentMethodRepo)
	createPaymentMethodUseCase := paymentmethod.NewCreatePaymentMethodUseCase(paymentMethodRepo)
	updatePaymentMethodUseCase := paymentmethod.NewUpdatePaymentMethodUseCase(paymentMethodRepo)
	deletePaymentMethodUseCase := paymentmethod.NewDeletePaymentMethodUseCase(paymentMethodRepo)

	// Create transaction use cases
	listTransactionsUseCase := transaction.NewListTransactionsUseCase(transactionRepo)
	createTransactionUseCase := transaction.NewCreateTransactionUseCase(
		transactionRepo, categoryRepo, paymentMethodRepo, summaryCache, appMetrics, clock,
	)
	getTransactionUseCase := transaction.NewGetTransactionUseCase(transactionRepo)
	updateTransactionUseCase := transaction.NewUpdateTransactionUseCase(
		transactionRepo, categoryRepo, paymentMethodRepo, summaryCache, clock,
	)
	deleteTransactionUseCase := transaction.NewDeleteTransactionUseCase(transactionRepo, summaryCache)
	transactionSummaryUseCase := transaction.NewGetSummaryUseCase(transactionRepo, summaryCache, clock)

	// Create debt and people use cases
	listDebtsUseCase := debt.NewListDebtsUseCase(debtRepo)
	createDebtUseCase := debt.NewCreateDebtUseCase(
		debtRepo, personRepo, paymentMethodRepo, summaryCache, appMetrics, clock,
	)
	getDebtUseCase := debt.NewGetDebtUseCase(debtRepo, personRepo)
	updateDebtUseCase := debt.NewUpdateDebtUseCase(debtRepo, personRepo, paymentMethodRepo, summaryCache, clock)
	applyPaymentUseCase := debt.NewApplyPaymentUseCase(debtRepo, summaryCache, clock)
	deleteDebtUseCase := debt.NewDeleteDebtUseCase(debtRepo, summaryCache)
	debtSummaryUseCase := debt.NewGetSummaryUseCase(debtRepo, summaryCache)

	listPeopleUseCase := person.NewListPeopleUseCase(personRepo)
	createPersonUseCase := person.NewCreatePersonUseCase(personRepo, relationshipRepo)
	getPersonUseCase := person.NewGetPersonUseCase(personRepo)
	updatePersonUseCase := person.NewUpdatePersonUseCase(personRepo, relationshipRepo)
	deletePersonUseCase := person.NewDeletePersonUseCase(personRepo, summaryCache)

	// Create goal use cases
	listGoalsUseCase := goal.NewListGoalsUseCase(goalRepo)
	createGoalUseCase := goal.NewCreateGoalUseCase(goalRepo)
	getGoalUseCase := goal.NewGetGoalUseCase(goalRepo)
	updateGoalUseCase := goal.NewUpdateGoalUseCase(goalRepo)
	deleteGoalUseCase := goal.NewDeleteGoalUseCase(goalRepo)

	// Create controllers
	healthController := controller.NewHealthController(func() bool {
		sqlDB, err := db.DB()
		if err != nil {
			return false
		}
		return sqlDB.Ping() == nil
	}, cacheHealthChecker)

	authController := controller.NewAuthController(
		registerUseCase,
		loginUseCase,
		refreshTokenUseCase,
		logoutUseCase,
		getCurrentUserUseCase,
	)

	categoryController := controller.NewCategoryController(
		listCategoriesUseCase,
		createCategoryUseCase,
		updateCategoryUseCase,
		deleteCategoryUseCase,
		listRelationshipsUseCase,
		createRelationshipUseCase,
	)

	paymentMethodController := controller.NewPaymentMethodController(
		listPaymentMethodsUseCase,
		createPaymentMethodUseCase,
		updatePaymentMethodUseCase,
		deletePaymentMethodUseCase,
	)

	transactionController := controller.NewTransactionController(
		listTransactionsUseCase,
		createTransactionUseCase,
		getTransactionUseCase,
		updateTransactionUseCase,
		deleteTransactionUseCase,
		transactionSummaryUseCase,
		clock,
	)

	debtController := controller.NewDebtController(
		listDebtsUseCase,
		createDebtUseCase,
		getDebtUseCase,
		updateDebtUseCase,
		applyPaymentUseCase,
		deleteDebtUseCase,
		debtSummaryUseCase,
	)

	personController := controller.NewPersonController(
		listPeopleUseCase,
		createPersonUseCase,
		getPersonUseCase,
		updatePersonUseCase,
		deletePersonUseCase,
	)

	goalController := controller.NewGoalController(
		listGoalsUseCase,
		createGoalUseCase,
		getGoalUseCase,
		updateGoalUseCase,
		deleteGoalUseCase,
	)

	// Create middleware
	loginRateLimiter := middleware.NewRateLimiterWithConfig(cfg.RateLimit.LoginMaxAttempts, cfg.RateLimit.LoginWindow)
	authMiddleware := middleware.NewAuthMiddleware(tokenService)

	// Create router
	r := router.NewRouter(
		healthController,
		authController,
		categoryController,
		paymentMethodController,
		transactionController,
		debtController,
		personController,
		goalController,
		loginRateLimiter,
		authMiddleware,
	)
	if cfg.Metrics.Enabled {
		r.WithMetrics(cfg.Metrics.Path, appMetrics, appMetrics.Handler())
	}

	return &Injector{
		Config:  cfg,
		DB:      db,
		Router:  r,
		Metrics: appMetrics,
	}
}

// NewRedisClient connects to the Redis instance in cfg. It returns nil when no URL is
// configured.
func NewRedisClient(ctx context.Context, cfg config.RedisConfig) (*redis.Client, error) {
	if cfg.URL == "" {
		return nil, nil
	}

	opts, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse redis url: %w", err)
	}
	if cfg.Password != "" {
		opts.Password = cfg.Password
	}
	if cfg.DB != 0 {
		opts.DB = cfg.DB
	}

	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to ping redis: %w", err)
	}
	return client, nil
}
