package lifecycle_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"gigwise/internal/repositories"
	"gigwise/internal/services"
)

var Module = fx.Provide(
	provideArchiveRepo, provideSnapshotRepo, provideLifecycleService)

func provideArchiveRepo(db *gorm.DB) repositories.ArchiveRepository {
	return repositories.NewArchiveRepository(db)
}

func provideSnapshotRepo(db *gorm.DB) repositories.SnapshotRepository {
	return repositories.NewSnapshotRepository(db, repositories.DefaultSnapshotRegistry())
}

func provideLifecycleService(
	accountRepo repositories.AccountRepository,
	profileRepo repositories.ProfileRepository,
	archiveRepo repositories.ArchiveRepository,
	snapshotRepo repositories.SnapshotRepository,
) services.LifecycleServiceInterface {
	return services.NewLifecycleService(accountRepo, profileRepo, archiveRepo, snapshotRepo)
}
