package fx

import (
	"go.uber.org/fx"

	"Bolso/internal/domain/auth"
	"Bolso/internal/domain/budget"
	"Bolso/internal/domain/category"
	"Bolso/internal/domain/dashboard"
	"Bolso/internal/domain/goal"
	"Bolso/internal/domain/transaction"
	"Bolso/internal/domain/user"
	"Bolso/internal/middleware"
	"Bolso/internal/routes"
)

// RoutesModule fornece os handlers HTTP
var RoutesModule = fx.Module("routes",
	fx.Provide(
		newHandler,
	),
)

func newHandler(
	userSvc *user.Service,
	authSvc *auth.Service,
	jwtSvc *middleware.JwtService,
	budgetSvc *budget.Service,
	categorySvc *category.Service,
	transactionSvc *transaction.Service,
	goalSvc *goal.Service,
	dashboardSvc *dashboard.Service,
) *routes.Handler {
	return &routes.Handler{
		UserService:        *userSvc,
		AuthService:        *authSvc,
		JwtService:         jwtSvc,
		BudgetService:      *budgetSvc,
		CategoryService:    *categorySvc,
		TransactionService: *transactionSvc,
		GoalService:        *goalSvc,
		DashboardService:   *dashboardSvc,
	}
}
