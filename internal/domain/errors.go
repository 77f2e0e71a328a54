package domain

import "errors"

// Authentication errors
var (
	ErrUserNotFound       = errors.New("user not found")
	ErrInactiveAccount    = errors.New("account is inactive")
	ErrInvalidCredentials = errors.New("invalid password")
	ErrCredentialNotFound = errors.New("credential not found")
	ErrPasswordMismatch   = errors.New("new passwords do not match")
)

// Entity errors
var (
	ErrRoleNotFound        = errors.New("role not found")
	ErrRoleExists          = errors.New("role already exists")
	ErrRoleInUse           = errors.New("role is assigned to users")
	ErrClientNotFound      = errors.New("client not found")
	ErrOrderNotFound       = errors.New("order not found")
	ErrCommentNotFound     = errors.New("comment not found")
	ErrEmailExists         = errors.New("email already registered")
	ErrOrderNumberExists   = errors.New("order number already exists")
	ErrInvalidPaymentState = errors.New("invalid payment state")
)
