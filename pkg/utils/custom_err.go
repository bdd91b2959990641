package utils

import "errors"

var (
	ErrInvalidInput       = errors.New("invalid input")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrEmailAlreadyExists = errors.New("email already exists")
	ErrAccountNotFound    = errors.New("account not found")
	ErrUserNotFound       = errors.New("user not found")
	ErrShowNotFound       = errors.New("show not found")
	ErrExpenseNotFound    = errors.New("expense not found")
	ErrTicketNotFound     = errors.New("ticket not found")
	ErrPlanNotFound       = errors.New("plan not found")
	ErrArchiveNotFound    = errors.New("deleted user record not found")
	// Archive exists but is not pending_deletion anymore; restore/purge
	// must not be retried against it.
	ErrArchiveNotPending = errors.New("deleted user record is not pending deletion")
	ErrForbidden         = errors.New("forbidden")
	ErrInvalidPage       = errors.New("invalid page parameter")
	ErrInvalidPageSize   = errors.New("invalid page size parameter")
	ErrDatabaseError     = errors.New("database error")
)
