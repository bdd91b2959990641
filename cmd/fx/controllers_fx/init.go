package controllers_fx

import (
	"go.uber.org/fx"

	"gigwise/internal/api/controllers"
)

var Module = fx.Options(
	fx.Provide(controllers.NewAccountController),
	fx.Provide(controllers.NewLifecycleController),
	fx.Provide(controllers.NewShowController),
	fx.Provide(controllers.NewExpenseController),
	fx.Provide(controllers.NewRosterController),
	fx.Provide(controllers.NewSupportController),
	fx.Provide(controllers.NewBillingController),
	fx.Provide(controllers.NewDashboardController))
