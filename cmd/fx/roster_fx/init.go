package roster_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"gigwise/internal/repositories"
	"gigwise/internal/services"
)

var Module = fx.Provide(
	provideRosterRepo, provideRosterService)

func provideRosterRepo(db *gorm.DB) repositories.RosterRepository {
	return repositories.NewRosterRepository(db)
}

func provideRosterService(rosterRepo repositories.RosterRepository) services.RosterServiceInterface {
	return services.NewRosterService(rosterRepo)
}
