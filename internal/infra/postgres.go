package infra

import (
	"github.com/rs/zerolog/log"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"gigwise/internal/config"
	"gigwise/internal/models/db_models"
)

func InitPostgresql(cfg *config.Config) *gorm.DB {
	db, err := gorm.Open(postgres.Open(cfg.PostgresURL), &gorm.Config{})
	if err != nil {
		log.Fatal().Err(err).Msg("error connecting to database")
	}
	return db
}

// AutoMigrate keeps the schema in step with the models. The archive
// table is included: deleted_users rows are never dropped, purge only
// flips their status.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&db_models.Account{},
		&db_models.Profile{},
		&db_models.Artist{},
		&db_models.Musician{},
		&db_models.Venue{},
		&db_models.MusicianVenue{},
		&db_models.MusicianInstrument{},
		&db_models.Show{},
		&db_models.LocomotionExpense{},
		&db_models.Plan{},
		&db_models.Subscription{},
		&db_models.Transaction{},
		&db_models.ReferralCode{},
		&db_models.Referral{},
		&db_models.SupportTicket{},
		&db_models.SupportResponse{},
		&db_models.DeletedUser{},
	)
}

func ClosePostgresql(db *gorm.DB) {
	sqlDB, err := db.DB()
	if err != nil {
		log.Error().Err(err).Msg("error getting database instance")
		return
	}
	if err := sqlDB.Close(); err != nil {
		log.Error().Err(err).Msg("error closing database connection")
	}
}
