package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"gigwise/internal/models/db_models"
)

type ArchiveRepository interface {
	Insert(ctx context.Context, archive *db_models.DeletedUser) error
	FindByID(ctx context.Context, id string) (*db_models.DeletedUser, error)
	List(ctx context.Context, page, pageSize int) ([]db_models.DeletedUser, error)

	// HardDelete is the compensating action when the account deletion
	// fails after the archive was written. It is the only path that
	// physically removes an archive row.
	HardDelete(ctx context.Context, id uuid.UUID) error

	// MarkRestored / MarkPurged flip a pending archive into a terminal
	// state. Both are conditional writes on status = pending_deletion;
	// ok is false when the archive already left that state.
	MarkRestored(ctx context.Context, id uuid.UUID, restoredBy uuid.UUID, restoredAt int64) (ok bool, err error)
	MarkPurged(ctx context.Context, id uuid.UUID, purgedAt int64) (ok bool, err error)
}

type archiveRepository struct {
	db *gorm.DB
}

func NewArchiveRepository(db *gorm.DB) ArchiveRepository {
	return &archiveRepository{db: db}
}

func (r *archiveRepository) Insert(ctx context.Context, archive *db_models.DeletedUser) error {
	return r.db.WithContext(ctx).Create(archive).Error
}

func (r *archiveRepository) FindByID(ctx context.Context, id string) (*db_models.DeletedUser, error) {
	var archive db_models.DeletedUser
	err := r.db.WithContext(ctx).First(&archive, "id = ?", id).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &archive, nil
}

func (r *archiveRepository) List(ctx context.Context, page, pageSize int) ([]db_models.DeletedUser, error) {
	var archives []db_models.DeletedUser
	err := r.db.WithContext(ctx).
		Limit(pageSize).
		Offset((page - 1) * pageSize).
		Order("user_deleted_at DESC").
		Find(&archives).Error
	return archives, err
}

func (r *archiveRepository) HardDelete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).
		Unscoped().
		Delete(&db_models.DeletedUser{}, "id = ?", id).Error
}

func (r *archiveRepository) MarkRestored(ctx context.Context, id uuid.UUID, restoredBy uuid.UUID, restoredAt int64) (bool, error) {
	res := r.db.WithContext(ctx).
		Model(&db_models.DeletedUser{}).
		Where("id = ? AND status = ?", id, db_models.ArchivePendingDeletion).
		Updates(map[string]interface{}{
			"status":      db_models.ArchiveRestored,
			"restored_at": restoredAt,
			"restored_by": restoredBy,
		})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected == 1, nil
}

func (r *archiveRepository) MarkPurged(ctx context.Context, id uuid.UUID, purgedAt int64) (bool, error) {
	res := r.db.WithContext(ctx).
		Model(&db_models.DeletedUser{}).
		Where("id = ? AND status = ?", id, db_models.ArchivePendingDeletion).
		Updates(map[string]interface{}{
			"status":                 db_models.ArchivePermanentlyDeleted,
			"permanently_deleted_at": purgedAt,
		})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected == 1, nil
}
