package utils

import "errors"

var (
	ErrAccountNotFound    = errors.New("account not found")
	ErrEmailAlreadyExists = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrDatabaseError      = errors.New("database error")

	ErrChildNotFound = errors.New("child not found")
	ErrEntryNotFound = errors.New("entry not found")
	ErrPlanNotFound  = errors.New("plan not found")

	// Quota and entitlement decisions. These are first-class denials the
	// controllers branch on, not faults.
	ErrDailyLimitReached = errors.New("daily limit reached")
	ErrTrialAlreadyUsed  = errors.New("trial already used")
	ErrAlreadyPremium    = errors.New("already premium")

	ErrInvalidPoints      = errors.New("points must be greater than zero")
	ErrInvalidActionKind  = errors.New("unknown action kind")
	ErrInvalidReferral    = errors.New("invalid referral code")
	ErrSelfReferral       = errors.New("self-referral is not allowed")
	ErrInvalidResetToken  = errors.New("invalid or expired reset token")
	ErrConfigNotFound     = errors.New("config not found")
	ErrConfigKeyNotFound  = errors.New("config key not found")
)
