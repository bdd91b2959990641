package request_models

// LifecycleRequest is the body of the single admin RPC endpoint. Action
// selects the operation; the id fields are action-specific.
type LifecycleRequest struct {
	Action        string `json:"action" binding:"required,oneof=delete restore permanent_delete"`
	UserID        string `json:"userId"`        // required for "delete"
	DeletedUserID string `json:"deletedUserId"` // required for "restore" and "permanent_delete"
}
