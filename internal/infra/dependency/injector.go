// Package dependency provides dependency injection for the application.
package dependency

import (
	"github.com/eternal-wealth/toolkit/config"
	"github.com/eternal-wealth/toolkit/internal/application/usecase/actionplan"
	"github.com/eternal-wealth/toolkit/internal/application/usecase/automation"
	"github.com/eternal-wealth/toolkit/internal/application/usecase/checklist"
	"github.com/eternal-wealth/toolkit/internal/application/usecase/dashboard"
	"github.com/eternal-wealth/toolkit/internal/application/usecase/expense"
	"github.com/eternal-wealth/toolkit/internal/application/usecase/income"
	"github.com/eternal-wealth/toolkit/internal/application/usecase/noiselife"
	"github.com/eternal-wealth/toolkit/internal/application/usecase/savings"
	"github.com/eternal-wealth/toolkit/internal/application/usecase/session"
	"github.com/eternal-wealth/toolkit/internal/domain/valueobject"
	"github.com/eternal-wealth/toolkit/internal/infra/server/router"
	"github.com/eternal-wealth/toolkit/internal/integration/entrypoint/controller"
	"github.com/eternal-wealth/toolkit/internal/integration/entrypoint/dto"
	"github.com/eternal-wealth/toolkit/internal/integration/entrypoint/middleware"
	"github.com/eternal-wealth/toolkit/internal/integration/janitor"
)

// Injector holds all application dependencies.
type Injector struct {
	Config  *config.Config
	Storage *Storage
	Router  *router.Router
	Janitor *janitor.Janitor
}

// NewInjector creates a new dependency injector with all dependencies wired.
func NewInjector(cfg *config.Config, storage *Storage) (*Injector, error) {
	repo := storage.Repository
	tracker := valueobject.DefaultTrackerConfig().WithOverrides(cfg.Tracker.DefaultGoal, cfg.Tracker.Milestone)

	money, err := dto.NewMoneyFormatter(cfg.Tracker.Locale, cfg.Tracker.Currency)
	if err != nil {
		return nil, err
	}

	// Create session use cases
	startSessionUseCase := session.NewStartSessionUseCase(repo, tracker)
	getSessionUseCase := session.NewGetSessionUseCase(repo)
	endSessionUseCase := session.NewEndSessionUseCase(repo)
	evictUseCase := session.NewEvictExpiredSessionsUseCase(repo)

	// Create income use cases
	listIncomeUseCase := income.NewListIncomeUseCase(repo)
	addIncomeUseCase := income.NewAddIncomeUseCase(repo)
	removeIncomeUseCase := income.NewRemoveIncomeUseCase(repo)

	// Create expense use cases
	listExpensesUseCase := expense.NewListExpensesUseCase(repo)
	addExpenseUseCase := expense.NewAddExpenseUseCase(repo)
	removeExpenseUseCase := expense.NewRemoveExpenseUseCase(repo)
	breakdownUseCase := expense.NewGetBreakdownUseCase(repo, tracker)

	// Create savings use cases
	getSavingsUseCase := savings.NewGetSavingsUseCase(repo)
	setFundUseCase := savings.NewSetFundUseCase(repo)
	setGoalUseCase := savings.NewSetGoalUseCase(repo)

	// Create automation use cases
	listAutomationsUseCase := automation.NewListAutomationsUseCase(repo)
	addAutomationUseCase := automation.NewAddAutomationUseCase(repo)
	toggleAutomationUseCase := automation.NewToggleAutomationUseCase(repo)
	setAutomationStatusUseCase := automation.NewSetAutomationStatusUseCase(repo)

	// Create noise/life use cases
	listNoiseLifeUseCase := noiselife.NewListNoiseLifeUseCase(repo)
	addNoiseLifeUseCase := noiselife.NewAddNoiseLifeUseCase(repo)
	removeNoiseLifeUseCase := noiselife.NewRemoveNoiseLifeUseCase(repo)

	// Create action plan use cases
	listActionPlanUseCase := actionplan.NewListActionPlanUseCase(repo)
	addActionStepUseCase := actionplan.NewAddActionStepUseCase(repo)
	toggleActionStepUseCase := actionplan.NewToggleActionStepUseCase(repo)
	setActionStepStatusUseCase := actionplan.NewSetActionStepStatusUseCase(repo)

	// Create checklist use cases
	listChecklistsUseCase := checklist.NewListChecklistsUseCase(repo)
	getChecklistUseCase := checklist.NewGetChecklistUseCase(repo)
	toggleItemUseCase := checklist.NewToggleItemUseCase(repo)

	getDashboardUseCase := dashboard.NewGetDashboardUseCase(repo, tracker)

	// Create controllers
	healthController := controller.NewHealthController(storage.Backend, repo.Ping)
	sessionController := controller.NewSessionController(startSessionUseCase, getSessionUseCase, endSessionUseCase, tracker, money)
	incomeController := controller.NewIncomeController(listIncomeUseCase, addIncomeUseCase, removeIncomeUseCase, money)
	expenseController := controller.NewExpenseController(listExpensesUseCase, addExpenseUseCase, removeExpenseUseCase, breakdownUseCase, money)
	savingsController := controller.NewSavingsController(getSavingsUseCase, setFundUseCase, setGoalUseCase, money)
	automationController := controller.NewAutomationController(
		listAutomationsUseCase,
		addAutomationUseCase,
		toggleAutomationUseCase,
		setAutomationStatusUseCase,
	)
	noiseLifeController := controller.NewNoiseLifeController(listNoiseLifeUseCase, addNoiseLifeUseCase, removeNoiseLifeUseCase)
	actionPlanController := controller.NewActionPlanController(
		listActionPlanUseCase,
		addActionStepUseCase,
		toggleActionStepUseCase,
		setActionStepStatusUseCase,
	)
	checklistController := controller.NewChecklistController(listChecklistsUseCase, getChecklistUseCase, toggleItemUseCase, money)
	dashboardController := controller.NewDashboardController(getDashboardUseCase, money)

	// Create middleware
	sessionRateLimiter := middleware.NewRateLimiterWithConfig(cfg.RateLimit.SessionCreates, cfg.RateLimit.Window)
	if cfg.Server.Environment == "e2e" || cfg.Server.Environment == "test" {
		sessionRateLimiter.Disable()
	}

	r := router.NewRouter(
		healthController,
		sessionController,
		incomeController,
		expenseController,
		savingsController,
		automationController,
		noiseLifeController,
		actionPlanController,
		checklistController,
		dashboardController,
		sessionRateLimiter,
	)

	return &Injector{
		Config:  cfg,
		Storage: storage,
		Router:  r,
		Janitor: janitor.New(evictUseCase, janitor.Config{Interval: cfg.Session.JanitorInterval}),
	}, nil
}
