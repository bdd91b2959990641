package account_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"gigwise/internal/repositories"
	"gigwise/internal/services"
	mem "gigwise/pkg/memcache"
)

var Module = fx.Provide(
	provideAccountRepo, provideProfileRepo, provideReferralRepo, provideAccountService)

func provideAccountRepo(db *gorm.DB) repositories.AccountRepository {
	return repositories.NewAccountRepository(db)
}

func provideProfileRepo(db *gorm.DB) repositories.ProfileRepository {
	return repositories.NewProfileRepository(db)
}

func provideReferralRepo(db *gorm.DB) repositories.ReferralRepository {
	return repositories.NewReferralRepository(db)
}

func provideAccountService(
	accountRepo repositories.AccountRepository,
	profileRepo repositories.ProfileRepository,
	referralRepo repositories.ReferralRepository,
	resetTokens mem.ResetTokenStore,
) services.AccountServiceInterface {
	return services.NewAccountService(accountRepo, profileRepo, referralRepo, resetTokens)
}
