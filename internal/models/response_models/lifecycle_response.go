package response_models

// DeleteUserResponse confirms a soft delete and tells the admin how long
// the archive stays restorable.
type DeleteUserResponse struct {
	DeletedUserID  string `json:"deleted_user_id"` // archive id, not the original account id
	OriginalUserID string `json:"original_user_id"`
	RetentionNote  string `json:"retention_note"`
}

// RestoreUserResponse carries the one-time temporary password. It is
// returned once and never stored in plaintext.
type RestoreUserResponse struct {
	NewUserID    string `json:"new_user_id"`
	Email        string `json:"email"`
	TempPassword string `json:"temp_password"`
	Note         string `json:"note"`
}

type PurgeUserResponse struct {
	DeletedUserID string `json:"deleted_user_id"`
	Status        string `json:"status"`
}

// DeletedUserSummary is one row of the admin deleted-users listing.
type DeletedUserSummary struct {
	ID               string `json:"id"`
	OriginalUserID   string `json:"original_user_id"`
	Email            string `json:"email"`
	Status           string `json:"status"`
	UserDeletedAt    int64  `json:"deleted_at"`
	ScheduledPurgeAt int64  `json:"scheduled_purge_at"`
}
