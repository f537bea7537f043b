// Package router sets up the HTTP routing for the application.
package router

import (
	"github.com/gin-gonic/gin"

	"github.com/eternal-wealth/toolkit/internal/integration/entrypoint/controller"
	"github.com/eternal-wealth/toolkit/internal/integration/entrypoint/middleware"
)

// Router holds the Gin engine and controller dependencies.
type Router struct {
	engine               *gin.Engine
	healthController     *controller.HealthController
	sessionController    *controller.SessionController
	incomeController     *controller.IncomeController
	expenseController    *controller.ExpenseController
	savingsController    *controller.SavingsController
	automationController *controller.AutomationController
	noiseLifeController  *controller.NoiseLifeController
	actionPlanController *controller.ActionPlanController
	checklistController  *controller.ChecklistController
	dashboardController  *controller.DashboardController
	sessionRateLimiter   *middleware.RateLimiter
}

// NewRouter creates a new router instance with all dependencies.
func NewRouter(
	healthController *controller.HealthController,
	sessionController *controller.SessionController,
	incomeController *controller.IncomeController,
	expenseController *controller.ExpenseController,
	savingsController *controller.SavingsController,
	automationController *controller.AutomationController,
	noiseLifeController *controller.NoiseLifeController,
	actionPlanController *controller.ActionPlanController,
	checklistController *controller.ChecklistController,
	dashboardController *controller.DashboardController,
	sessionRateLimiter *middleware.RateLimiter,
) *Router {
	return &Router{
		healthController:     healthController,
		sessionController:    sessionController,
		incomeController:     incomeController,
		expenseController:    expenseController,
		savingsController:    savingsController,
		automationController: automationController,
		noiseLifeController:  noiseLifeController,
		actionPlanController: actionPlanController,
		checklistController:  checklistController,
		dashboardController:  dashboardController,
		sessionRateLimiter:   sessionRateLimiter,
	}
}

// Setup configures and returns the Gin engine with all routes.
func (r *Router) Setup(environment string) *gin.Engine {
	// Set Gin mode based on environment
	if environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else if environment == "test" {
		gin.SetMode(gin.TestMode)
	}

	if environment == "test" {
		r.engine = gin.New()
		r.engine.Use(gin.Recovery())
	} else {
		// Create router with default middleware (logger and recovery)
		r.engine = gin.Default()
	}

	r.setupHealthRoutes()
	r.setupAPIRoutes()

	return r.engine
}

// setupHealthRoutes configures health check endpoints.
func (r *Router) setupHealthRoutes() {
	r.engine.GET("/health", r.healthController.Check)
}

// setupAPIRoutes configures the main API routes.
func (r *Router) setupAPIRoutes() {
	v1 := r.engine.Group("/api/v1")
	v1.GET("/health", r.healthController.Check)

	sessions := v1.Group("/sessions")
	if r.sessionRateLimiter != nil {
		sessions.POST("", r.sessionRateLimiter.Middleware(), r.sessionController.Start)
	} else {
		sessions.POST("", r.sessionController.Start)
	}

	// Everything below operates on one session
	session := sessions.Group("/:" + middleware.SessionIDParam)
	session.Use(middleware.ResolveSession())
	{
		session.GET("", r.sessionController.Get)
		session.DELETE("", r.sessionController.End)

		income := session.Group("/income")
		{
			income.GET("", r.incomeController.List)
			income.POST("", r.incomeController.Add)
			income.DELETE("/:id", r.incomeController.Remove)
		}

		expenses := session.Group("/expenses")
		{
			expenses.GET("", r.expenseController.List)
			expenses.POST("", r.expenseController.Add)
			expenses.GET("/breakdown", r.expenseController.Breakdown)
			expenses.DELETE("/:id", r.expenseController.Remove)
		}

		savings := session.Group("/savings")
		{
			savings.GET("", r.savingsController.Get)
			savings.PUT("/fund", r.savingsController.SetFund)
			savings.PUT("/goal", r.savingsController.SetGoal)
		}

		automations := session.Group("/automations")
		{
			automations.GET("", r.automationController.List)
			automations.POST("", r.automationController.Add)
			automations.PATCH("/:id/toggle", r.automationController.Toggle)
			automations.PUT("/:id/status", r.automationController.SetStatus)
		}

		noiseLife := session.Group("/noise-life")
		{
			noiseLife.GET("", r.noiseLifeController.List)
			noiseLife.POST("", r.noiseLifeController.Add)
			noiseLife.DELETE("/:id", r.noiseLifeController.Remove)
		}

		actionPlan := session.Group("/action-plan")
		{
			actionPlan.GET("", r.actionPlanController.List)
			actionPlan.POST("", r.actionPlanController.Add)
			actionPlan.PATCH("/:id/toggle", r.actionPlanController.Toggle)
			actionPlan.PUT("/:id/status", r.actionPlanController.SetStatus)
		}

		checklists := session.Group("/checklists")
		{
			checklists.GET("", r.checklistController.List)
			checklists.GET("/:kind", r.checklistController.Get)
			checklists.PATCH("/:kind/items/:key/toggle", r.checklistController.Toggle)
		}

		session.GET("/dashboard", r.dashboardController.Get)
	}
}
