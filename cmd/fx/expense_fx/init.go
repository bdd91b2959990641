package expense_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"gigwise/internal/repositories"
	"gigwise/internal/services"
)

var Module = fx.Provide(
	provideExpenseRepo, provideExpenseService)

func provideExpenseRepo(db *gorm.DB) repositories.ExpenseRepository {
	return repositories.NewExpenseRepository(db)
}

func provideExpenseService(expenseRepo repositories.ExpenseRepository) services.ExpenseServiceInterface {
	return services.NewExpenseService(expenseRepo)
}
