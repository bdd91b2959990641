package billing_fx

import (
	"log"

	"go.uber.org/fx"
	"gorm.io/gorm"

	"gigwise/internal/config"
	"gigwise/internal/repositories"
	"gigwise/internal/services"
)

var Module = fx.Provide(
	providePlanRepo, providePlanService, providePaymentService)

func providePlanRepo(db *gorm.DB) repositories.PlanRepository {
	return repositories.NewPlanRepository(db)
}

func providePlanService(planRepo repositories.PlanRepository) services.PlanServiceInterface {
	return services.NewPlanService(planRepo)
}

func providePaymentService(db *gorm.DB, cfg *config.Config) services.PaymentService {
	instance, err := services.NewPaymentService(db, cfg)
	if err != nil {
		log.Printf("Error initializing PaymentService: %v", err)
		return nil
	}
	return instance
}
