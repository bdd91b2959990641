package show_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"gigwise/internal/repositories"
	"gigwise/internal/services"
)

var Module = fx.Provide(
	provideShowRepo, provideShowService)

func provideShowRepo(db *gorm.DB) repositories.ShowRepository {
	return repositories.NewShowRepository(db)
}

func provideShowService(showRepo repositories.ShowRepository) services.ShowServiceInterface {
	return services.NewShowService(showRepo)
}
