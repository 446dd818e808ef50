package fx

import (
	"go.uber.org/fx"

	"Bolso/config"
	"Bolso/internal/domain/auth"
	"Bolso/internal/domain/budget"
	"Bolso/internal/domain/category"
	"Bolso/internal/domain/dashboard"
	"Bolso/internal/domain/goal"
	"Bolso/internal/domain/transaction"
	"Bolso/internal/domain/user"
	"Bolso/internal/infrastructure"
	"Bolso/internal/logger"
)

// DomainModule fornece todos os services do domínio
var DomainModule = fx.Module("domain",
	fx.Provide(
		newUserService,
		newGoogleClientID,
		newAuthService,
		newCategoryService,
		newBudgetService,
		newTransactionService,
		newGoalService,
		newDashboardService,
	),
)

func newUserService(repo *infrastructure.UserRepository) *user.Service {
	return user.NewService(repo)
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

func newCategoryService(repo *infrastructure.CategoryRepository) *category.Service {
	return category.NewService(repo)
}

func newBudgetService(
	repo *infrastructure.BudgetRepository,
	categoryRepo *infrastructure.CategoryRepository,
) *budget.Service {
	return budget.NewService(repo, categoryRepo)
}

func newTransactionService(
	repo *infrastructure.TransactionRepository,
	categorySvc *category.Service,
) *transaction.Service {
	return transaction.NewService(repo, categorySvc)
}

func newGoalService(repo *infrastructure.GoalRepository) *goal.Service {
	return goal.NewService(repo)
}

func newDashboardService(
	budgetRepo *infrastructure.BudgetRepository,
	categoryRepo *infrastructure.CategoryRepository,
	transactionRepo *infrastructure.TransactionRepository,
	goalRepo *infrastructure.GoalRepository,
) *dashboard.Service {
	return &dashboard.Service{
		BudgetRepository:      budgetRepo,
		CategoryRepository:    categoryRepo,
		TransactionRepository: transactionRepo,
		GoalRepository:        goalRepo,
	}
}
