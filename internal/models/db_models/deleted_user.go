package db_models

import (
	"encoding/json"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type ArchiveStatus string

const (
	ArchivePendingDeletion    ArchiveStatus = "pending_deletion"
	ArchiveRestored           ArchiveStatus = "restored"
	ArchivePermanentlyDeleted ArchiveStatus = "permanently_deleted"
)

// RetentionDays is how long a pending archive stays restorable.
const RetentionDays = 30

// ProfileSnapshot is the point-in-time copy of the profile row taken at
// deletion. It is applied back onto the auto-created profile on restore.
type ProfileSnapshot struct {
	Name              string `json:"name"`
	Phone             string `json:"phone"`
	TaxID             string `json:"taxId"`
	BirthDate         *int64 `json:"birthDate,omitempty"`
	PhotoURL          string `json:"photoUrl"`
	PlanType          string `json:"planType"`
	PlanStatus        string `json:"planStatus"`
	Timezone          string `json:"timezone"`
	Gender            string `json:"gender"`
	NotificationToken string `json:"notificationToken"`
}

// UserSnapshot holds everything a user owned at the moment of deletion:
// the profile fields plus, per domain table, the ordered row snapshots
// collected through the snapshot registry. Rows are kept as raw JSON so
// the archive shape survives model changes.
type UserSnapshot struct {
	Profile ProfileSnapshot              `json:"profile"`
	Tables  map[string][]json.RawMessage `json:"tables"`
}

// DeletedUser is the archive row written when an admin soft-deletes an
// account. It is never physically deleted; a purge only flips Status.
type DeletedUser struct {
	BaseModel
	OriginalUserID uuid.UUID `gorm:"type:uuid;index"`
	Email          string    `gorm:"index"`

	UserDeletedAt    int64
	ScheduledPurgeAt int64 `gorm:"index"` // UserDeletedAt + RetentionDays
	DeletedBy        uuid.UUID

	RestoredAt *int64
	RestoredBy *uuid.UUID

	PermanentlyDeletedAt *int64

	Status ArchiveStatus `gorm:"default:pending_deletion;index"`

	Snapshot datatypes.JSONType[UserSnapshot]
}
