package models

import (
	"errors"
)

var (
	ErrAdNotFound         = errors.New("ad not found")
	ErrProposalNotFound   = errors.New("proposal not found")
	ErrCategoryNotFound   = errors.New("category not found")
	ErrUserNotFound       = errors.New("models: user not found")
	ErrInvalidProposal    = errors.New("invalid proposal: sender matches ad owner")
	ErrUnknownStatus      = errors.New("unknown proposal status")
	ErrUnauthorized       = errors.New("operation not permitted for this user")
	ErrInvalidCredentials = errors.New("models: invalid credentials")
	ErrDuplicatePhone     = errors.New("models: duplicate phone number")
)
