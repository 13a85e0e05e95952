package domain

import "errors"

var (
	ErrUserNotFound       = errors.New("user not found")
	ErrUserExists         = errors.New("user already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")

	ErrDesignerNotFound = errors.New("designer not found")
	ErrDesignerAssigned = errors.New("user already has a designer assigned")
	ErrCompanyNotFound  = errors.New("company not found")
	ErrWeeklyNotFound   = errors.New("no weekly designer selected")
	ErrEventNotFound    = errors.New("event not found")
	ErrWorkNotFound     = errors.New("work not found")
	ErrTooManyWorks     = errors.New("too many works in one upload")

	ErrResetTokenInvalid = errors.New("invalid or expired reset token")

	ErrForbidden = errors.New("access forbidden")
)
