package support_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"gigwise/internal/repositories"
	"gigwise/internal/services"
)

var Module = fx.Provide(
	provideSupportRepo, provideSupportService)

func provideSupportRepo(db *gorm.DB) repositories.SupportRepository {
	return repositories.NewSupportRepository(db)
}

func provideSupportService(supportRepo repositories.SupportRepository) services.SupportServiceInterface {
	return services.NewSupportService(supportRepo)
}
