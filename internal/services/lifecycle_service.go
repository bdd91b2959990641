package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"gorm.io/datatypes"

	"gigwise/internal/models/db_models"
	"gigwise/internal/models/response_models"
	"gigwise/internal/repositories"
	"gigwise/pkg/utils"
)

const tempPasswordLength = 12

// LifecycleServiceInterface is the admin user-lifecycle manager: soft
// delete into an archive, restore from it, or tombstone it for good.
// Callers are expected to be privilege-gated before reaching here.
type LifecycleServiceInterface interface {
	DeleteUser(ctx context.Context, callerID uuid.UUID, userID string) (*response_models.DeleteUserResponse, error)
	RestoreUser(ctx context.Context, callerID uuid.UUID, deletedUserID string) (*response_models.RestoreUserResponse, error)
	PurgeUser(ctx context.Context, deletedUserID string) (*response_models.PurgeUserResponse, error)
	ListDeletedUsers(ctx context.Context, page, pageSize int) ([]response_models.DeletedUserSummary, error)
}

type LifecycleService struct {
	accountRepo  repositories.AccountRepository
	profileRepo  repositories.ProfileRepository
	archiveRepo  repositories.ArchiveRepository
	snapshotRepo repositories.SnapshotRepository
}

func NewLifecycleService(
	accountRepo repositories.AccountRepository,
	profileRepo repositories.ProfileRepository,
	archiveRepo repositories.ArchiveRepository,
	snapshotRepo repositories.SnapshotRepository,
) LifecycleServiceInterface {
	return &LifecycleService{
		accountRepo:  accountRepo,
		profileRepo:  profileRepo,
		archiveRepo:  archiveRepo,
		snapshotRepo: snapshotRepo,
	}
}

// DeleteUser snapshots everything the target owns into one archive row,
// then removes the account. The account is only touched after the
// archive write succeeded; a failed account deletion rolls the archive
// back so no orphan archive points at a live account.
func (s *LifecycleService) DeleteUser(ctx context.Context, callerID uuid.UUID, userID string) (*response_models.DeleteUserResponse, error) {
	targetID, err := uuid.Parse(userID)
	if err != nil {
		return nil, utils.ErrInvalidInput
	}

	account, err := s.accountRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if account == nil {
		return nil, utils.ErrUserNotFound
	}

	profile, err := s.profileRepo.FindByAccountID(ctx, targetID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if profile == nil {
		return nil, utils.ErrUserNotFound
	}

	tables, err := s.snapshotRepo.CollectAll(ctx, targetID)
	if err != nil {
		log.Error().Err(err).Str("user_id", userID).Msg("snapshot collection failed")
		return nil, utils.ErrDatabaseError
	}

	now := utils.NowUnixSeconds()
	archive := &db_models.DeletedUser{
		OriginalUserID:   targetID,
		Email:            account.Email,
		UserDeletedAt:    now,
		ScheduledPurgeAt: now + db_models.RetentionDays*24*3600,
		DeletedBy:        callerID,
		Status:           db_models.ArchivePendingDeletion,
		Snapshot: datatypes.NewJSONType(db_models.UserSnapshot{
			Profile: profileSnapshotOf(profile),
			Tables:  tables,
		}),
	}

	if err := s.archiveRepo.Insert(ctx, archive); err != nil {
		log.Error().Err(err).Str("user_id", userID).Msg("archive write failed, account left untouched")
		return nil, utils.ErrDatabaseError
	}

	if err := s.accountRepo.HardDelete(ctx, targetID); err != nil {
		// Compensating action, not a transaction: a crash between the
		// archive write and this rollback can still leave an orphan.
		if rbErr := s.archiveRepo.HardDelete(ctx, archive.ID); rbErr != nil {
			log.Error().Err(rbErr).Str("archive_id", archive.ID.String()).Msg("archive rollback failed")
		}
		log.Error().Err(err).Str("user_id", userID).Msg("account deletion failed, archive rolled back")
		return nil, utils.ErrDatabaseError
	}

	log.Info().
		Str("user_id", userID).
		Str("archive_id", archive.ID.String()).
		Str("deleted_by", callerID.String()).
		Msg("user soft-deleted")

	return &response_models.DeleteUserResponse{
		DeletedUserID:  archive.ID.String(),
		OriginalUserID: userID,
		RetentionNote:  fmt.Sprintf("Account deleted. The data can be restored within %d days.", db_models.RetentionDays),
	}, nil
}

// RestoreUser recreates an account from a pending archive. The new
// account gets a fresh identity and a one-time temporary password; the
// original credential is gone for good. Row ids are regenerated on
// replay and embedded cross-references are not remapped.
func (s *LifecycleService) RestoreUser(ctx context.Context, callerID uuid.UUID, deletedUserID string) (*response_models.RestoreUserResponse, error) {
	if _, err := uuid.Parse(deletedUserID); err != nil {
		return nil, utils.ErrInvalidInput
	}

	archive, err := s.archiveRepo.FindByID(ctx, deletedUserID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if archive == nil {
		return nil, utils.ErrArchiveNotFound
	}
	if archive.Status != db_models.ArchivePendingDeletion {
		return nil, utils.ErrArchiveNotPending
	}

	existing, err := s.accountRepo.FindByEmail(ctx, archive.Email)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if existing != nil {
		return nil, utils.ErrEmailAlreadyExists
	}

	tempPassword, err := utils.GenerateTempPassword(tempPasswordLength)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	passwordHash, err := utils.HashPassword(tempPassword)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	account := &db_models.Account{
		Email:        archive.Email,
		PasswordHash: passwordHash,
		Role:         "user",
		// Pre-confirmed so the user can log in with the temp password
		// right away.
		EmailConfirmed: true,
	}
	if err := s.accountRepo.Insert(ctx, account); err != nil {
		log.Error().Err(err).Str("archive_id", deletedUserID).Msg("account recreation failed")
		return nil, utils.ErrDatabaseError
	}

	snapshot := archive.Snapshot.Data()

	profile, err := s.profileRepo.FindByAccountID(ctx, account.ID)
	if err != nil || profile == nil {
		log.Error().Err(err).Str("archive_id", deletedUserID).Msg("auto-created profile missing after restore")
		return nil, utils.ErrDatabaseError
	}
	applyProfileSnapshot(&snapshot.Profile, profile)
	if err := s.profileRepo.Save(ctx, profile); err != nil {
		return nil, utils.ErrDatabaseError
	}

	replayed, err := s.snapshotRepo.ReplayAll(ctx, snapshot.Tables, account.ID)
	if err != nil {
		// No rollback of already-replayed rows: the new account keeps
		// whatever made it in, and the archive stays pending.
		log.Error().Err(err).
			Str("archive_id", deletedUserID).
			Int("rows_replayed", replayed).
			Msg("snapshot replay failed mid-way")
		return nil, utils.ErrDatabaseError
	}

	ok, err := s.archiveRepo.MarkRestored(ctx, archive.ID, callerID, utils.NowUnixSeconds())
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if !ok {
		// A concurrent restore or purge won the status transition.
		return nil, utils.ErrArchiveNotPending
	}

	log.Info().
		Str("archive_id", deletedUserID).
		Str("new_user_id", account.ID.String()).
		Int("rows_replayed", replayed).
		Str("restored_by", callerID.String()).
		Msg("user restored from archive")

	return &response_models.RestoreUserResponse{
		NewUserID:    account.ID.String(),
		Email:        account.Email,
		TempPassword: tempPassword,
		Note:         "Share the temporary password over a secure channel; it is shown only once and must be changed on first login.",
	}, nil
}

// PurgeUser flips a pending archive to permanently_deleted. The row and
// its snapshot stay in place as an audit trail; nothing is erased.
func (s *LifecycleService) PurgeUser(ctx context.Context, deletedUserID string) (*response_models.PurgeUserResponse, error) {
	if _, err := uuid.Parse(deletedUserID); err != nil {
		return nil, utils.ErrInvalidInput
	}

	archive, err := s.archiveRepo.FindByID(ctx, deletedUserID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if archive == nil {
		return nil, utils.ErrArchiveNotFound
	}

	ok, err := s.archiveRepo.MarkPurged(ctx, archive.ID, utils.NowUnixSeconds())
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if !ok {
		return nil, utils.ErrArchiveNotPending
	}

	log.Info().Str("archive_id", deletedUserID).Msg("archive permanently deleted")

	return &response_models.PurgeUserResponse{
		DeletedUserID: deletedUserID,
		Status:        string(db_models.ArchivePermanentlyDeleted),
	}, nil
}

func (s *LifecycleService) ListDeletedUsers(ctx context.Context, page, pageSize int) ([]response_models.DeletedUserSummary, error) {
	if page < 1 {
		return nil, utils.ErrInvalidPage
	}
	if pageSize < 1 || pageSize > 100 {
		return nil, utils.ErrInvalidPageSize
	}

	archives, err := s.archiveRepo.List(ctx, page, pageSize)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	out := make([]response_models.DeletedUserSummary, 0, len(archives))
	for _, a := range archives {
		out = append(out, response_models.DeletedUserSummary{
			ID:               a.ID.String(),
			OriginalUserID:   a.OriginalUserID.String(),
			Email:            a.Email,
			Status:           string(a.Status),
			UserDeletedAt:    a.UserDeletedAt,
			ScheduledPurgeAt: a.ScheduledPurgeAt,
		})
	}
	return out, nil
}

func profileSnapshotOf(p *db_models.Profile) db_models.ProfileSnapshot {
	return db_models.ProfileSnapshot{
		Name:              p.Name,
		Phone:             p.Phone,
		TaxID:             p.TaxID,
		BirthDate:         p.BirthDate,
		PhotoURL:          p.PhotoURL,
		PlanType:          string(p.PlanType),
		PlanStatus:        string(p.PlanStatus),
		Timezone:          p.Timezone,
		Gender:            p.Gender,
		NotificationToken: p.NotificationToken,
	}
}

func applyProfileSnapshot(snap *db_models.ProfileSnapshot, p *db_models.Profile) {
	p.Name = snap.Name
	p.Phone = snap.Phone
	p.TaxID = snap.TaxID
	p.BirthDate = snap.BirthDate
	p.PhotoURL = snap.PhotoURL
	p.PlanType = db_models.PlanType(snap.PlanType)
	p.PlanStatus = db_models.PlanStatus(snap.PlanStatus)
	p.Timezone = snap.Timezone
	p.Gender = snap.Gender
	p.NotificationToken = snap.NotificationToken
}
