package main

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"go.uber.org/fx"
	"gorm.io/gorm"

	"gigwise/cmd/fx/account_fx"
	"gigwise/cmd/fx/billing_fx"
	"gigwise/cmd/fx/config_fx"
	"gigwise/cmd/fx/controllers_fx"
	"gigwise/cmd/fx/dashboard_fx"
	"gigwise/cmd/fx/db_fx"
	"gigwise/cmd/fx/expense_fx"
	"gigwise/cmd/fx/lifecycle_fx"
	"gigwise/cmd/fx/memcache_fx"
	"gigwise/cmd/fx/roster_fx"
	"gigwise/cmd/fx/show_fx"
	"gigwise/cmd/fx/support_fx"
	"gigwise/internal/api/controllers"
	"gigwise/internal/config"
	"gigwise/internal/infra"
	"gigwise/pkg/middleware"
)

func main() {
	app := fx.New(
		config_fx.Module,
		db_fx.Module,
		memcache_fx.Module,
		account_fx.Module,
		lifecycle_fx.Module,
		show_fx.Module,
		expense_fx.Module,
		roster_fx.Module,
		support_fx.Module,
		billing_fx.Module,
		dashboard_fx.Module,
		controllers_fx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(RunMigrations),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func RunMigrations(db *gorm.DB) error {
	return infra.AutoMigrate(db)
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine, cfg *config.Config, db *gorm.DB) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				log.Info().Str("port", cfg.Port).Msg("starting HTTP server")
				if err := engine.Run(":" + cfg.Port); err != nil {
					log.Fatal().Err(err).Msg("failed to start server")
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info().Msg("stopping HTTP server")
			infra.ClosePostgresql(db)
			return nil
		},
	})
}

func ProvideRouter(
	accountController *controllers.AccountController,
	lifecycleController *controllers.LifecycleController,
	showController *controllers.ShowController,
	expenseController *controllers.ExpenseController,
	rosterController *controllers.RosterController,
	supportController *controllers.SupportController,
	billingController *controllers.BillingController,
	dashboardController *controllers.DashboardController) *gin.Engine {

	r := gin.Default()
	r.Use(middleware.TraceIDMiddleware())
	r.Use(middleware.CORSMiddleware())

	RegisterRoutes(r,
		accountController,
		lifecycleController,
		showController,
		expenseController,
		rosterController,
		supportController,
		billingController,
		dashboardController)

	return r
}

func RegisterRoutes(r *gin.Engine,
	accountController *controllers.AccountController,
	lifecycleController *controllers.LifecycleController,
	showController *controllers.ShowController,
	expenseController *controllers.ExpenseController,
	rosterController *controllers.RosterController,
	supportController *controllers.SupportController,
	billingController *controllers.BillingController,
	dashboardController *controllers.DashboardController) {

	// Public surface
	r.POST("/auth/register", accountController.Register)
	r.POST("/auth/login", accountController.Login)
	r.POST("/auth/forgot-password", accountController.ForgotPassword)
	r.POST("/auth/reset-password", accountController.ResetPassword)
	r.GET("/plans", billingController.ListPlans)
	r.POST("/webhook/payos", billingController.HandleWebhook)

	// Authenticated surface
	authed := r.Group("/")
	authed.Use(middleware.JWTAuthMiddleware())

	authed.GET("/accounts/me", accountController.GetProfile)
	authed.PATCH("/accounts/me", accountController.UpdateProfile)

	authed.POST("/shows", showController.CreateShow)
	authed.GET("/shows", showController.ListShows)
	authed.GET("/shows/:id", showController.GetShow)
	authed.PATCH("/shows/:id", showController.UpdateShow)
	authed.DELETE("/shows/:id", showController.DeleteShow)

	authed.POST("/expenses", expenseController.CreateExpense)
	authed.GET("/expenses", expenseController.ListExpenses)
	authed.DELETE("/expenses/:id", expenseController.DeleteExpense)

	authed.POST("/roster/artists", rosterController.CreateArtist)
	authed.GET("/roster/artists", rosterController.ListArtists)
	authed.POST("/roster/musicians", rosterController.CreateMusician)
	authed.GET("/roster/musicians", rosterController.ListMusicians)
	authed.POST("/roster/venues", rosterController.CreateVenue)
	authed.GET("/roster/venues", rosterController.ListVenues)

	authed.POST("/support/tickets", supportController.CreateTicket)
	authed.GET("/support/tickets", supportController.ListTickets)
	authed.GET("/support/tickets/:id", supportController.GetTicket)
	authed.POST("/support/tickets/:id/responses", supportController.AddResponse)

	authed.POST("/billing/checkout", billingController.CreateCheckout)

	authed.GET("/dashboard/earnings", dashboardController.GetEarnings)

	// Admin-only lifecycle surface
	admin := r.Group("/admin")
	admin.Use(middleware.JWTAuthMiddleware(), middleware.RoleMiddleware("admin"))
	admin.POST("/users/lifecycle", lifecycleController.HandleLifecycleAction)
	admin.GET("/users/deleted", lifecycleController.ListDeletedUsers)
}
