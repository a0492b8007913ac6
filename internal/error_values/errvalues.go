package errorvalues

import "errors"

var (
	ErrStoreUnavailable = errors.New("store unavailable")
	ErrInvalidInput     = errors.New("invalid input")

	ErrInvalidToken = errors.New("invalid token")

	ErrAliasNotFound = errors.New("alias doesn't exist")
	ErrAliasExists   = errors.New("alias already taken")

	ErrThreadNotFound = errors.New("thread doesn't exist")
	ErrReplyNotFound  = errors.New("reply doesn't exist")
	ErrWrongOwner     = errors.New("resource belongs to another user")

	ErrDoseAlreadyTaken = errors.New("dose already logged today")
)
