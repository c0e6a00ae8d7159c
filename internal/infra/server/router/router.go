// Package router sets up the HTTP routing for the application.
package router

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/finance-tracker/ledger/internal/integration/entrypoint/controller"
	"github.com/finance-tracker/ledger/internal/integration/entrypoint/middleware"
)

// Router holds the Gin engine and controller dependencies.
type Router struct {
	engine                  *gin.Engine
	healthController        *controller.HealthController
	authController          *controller.AuthController
	categoryController      *controller.CategoryController
	paymentMethodController *controller.PaymentMethodController
	transactionController   *controller.TransactionController
	debtController          *controller.DebtController
	personController        *controller.PersonController
	goalController          *controller.GoalController
	loginRateLimiter        *middleware.RateLimiter
	authMiddleware          *middleware.AuthMiddleware

	metricsObserver middleware.RequestObserver
	metricsHandler  http.Handler
	metricsPath     string
}

// NewRouter creates a new router instance with all dependencies.
func NewRouter(
	healthController *controller.HealthController,
	authController *controller.AuthController,
	categoryController *controller.CategoryController,
	paymentMethodController *controller.PaymentMethodController,
	transactionController *controller.TransactionController,
	debtController *controller.DebtController,
	personController *controller.PersonController,
	goalController *controller.GoalController,
	loginRateLimiter *middleware.RateLimiter,
	authMiddleware *middleware.AuthMiddleware,
) *Router {
	return &Router{
		healthController:        healthController,
		authController:          authController,
		categoryController:      categoryController,
		paymentMethodController: paymentMethodController,
		transactionController:   transactionController,
		debtController:          debtController,
		personController:        personController,
		goalController:          goalController,
		loginRateLimiter:        loginRateLimiter,
		authMiddleware:          authMiddleware,
	}
}

// WithMetrics reports every request to observer and serves handler at path.
func (r *Router) WithMetrics(path string, observer middleware.RequestObserver, handler http.Handler) *Router {
	r.metricsPath = path
	r.metricsObserver = observer
	r.metricsHandler = handler
	return r
}

// Setup configures and returns the Gin engine with all routes.
func (r *Router) Setup(environment string) *gin.Engine {
	// Set Gin mode based on environment
	if environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else if environment == "test" {
		gin.SetMode(gin.TestMode)
	}

	r.engine = gin.New()
	r.engine.Use(gin.Recovery(), middleware.RequestLogger())
	if r.metricsObserver != nil {
		r.engine.Use(middleware.Metrics(r.metricsObserver))
	}

	// Setup routes
	r.setupOperationalRoutes()
	r.setupAPIRoutes()

	return r.engine
}

// setupOperationalRoutes configures health check and scrape endpoints.
func (r *Router) setupOperationalRoutes() {
	r.engine.GET("/health", r.healthController.Check)
	if r.metricsHandler != nil && r.metricsPath != "" {
		r.engine.GET(r.metricsPath, gin.WrapH(r.metricsHandler))
	}
}

// setupAPIRoutes configures the main API routes.
func (r *Router) setupAPIRoutes() {
	v1 := r.engine.Group("/api/v1")

	auth := v1.Group("/auth")
	{
		auth.POST("/register", r.authController.Register)
		auth.POST("/login", r.loginRateLimiter.Middleware(), r.authController.Login)
		auth.POST("/refresh", r.authController.RefreshToken)
		auth.POST("/logout", r.authController.Logout)
		auth.GET("/me", r.authMiddleware.Authenticate(), r.authController.Me)
	}

	// Everything below requires authentication
	protected := v1.Group("")
	protected.Use(r.authMiddleware.Authenticate())

	transactions := protected.Group("/transactions")
	{
		transactions.GET("", r.transactionController.List)
		transactions.POST("", r.transactionController.Create)
		transactions.GET("/summary", r.transactionController.Summary)
		transactions.GET("/:id", r.transactionController.Get)
		transactions.PUT("/:id", r.transactionController.Update)
		transactions.DELETE("/:id", r.transactionController.Delete)
	}

	debts := protected.Group("/debts")
	{
		debts.GET("", r.debtController.List)
		debts.POST("", r.debtController.Create)
		debts.GET("/summary", r.debtController.Summary)

		people := debts.Group("/people")
		{
			people.GET("", r.personController.List)
			people.POST("", r.personController.Create)
			people.GET("/:id", r.personController.Get)
			people.PUT("/:id", r.personController.Update)
			people.DELETE("/:id", r.personController.Delete)
		}

		debts.GET("/:id", r.debtController.Get)
		debts.PUT("/:id", r.debtController.Update)
		debts.PATCH("/:id/payment", r.debtController.ApplyPayment)
		debts.DELETE("/:id", r.debtController.Delete)
	}

	catalog := protected.Group("/config")
	{
		catalog.GET("/categories", r.categoryController.List)
		catalog.POST("/categories", r.categoryController.Create)
		catalog.PUT("/categories/:id", r.categoryController.Update)
		catalog.DELETE("/categories/:id", r.categoryController.Delete)
		catalog.GET("/relationships", r.categoryController.ListRelationships)
		catalog.POST("/relationships", r.categoryController.CreateRelationship)
	}

	paymentMethods := protected.Group("/payment-methods")
	{
		paymentMethods.GET("", r.paymentMethodController.List)
		paymentMethods.POST("", r.paymentMethodController.Create)
		paymentMethods.PUT("/:id", r.paymentMethodController.Update)
		paymentMethods.DELETE("/:id", r.paymentMethodController.Delete)
	}

	goals := protected.Group("/goals")
	{
		goals.GET("", r.goalController.List)
		goals.POST("", r.goalController.Create)
		goals.GET("/:id", r.goalController.Get)
		goals.PUT("/:id", r.goalController.Update)
		goals.DELETE("/:id", r.goalController.Delete)
	}
}

// Engine returns the underlying Gin engine.
func (r *Router) Engine() *gin.Engine {
	return r.engine
}
