package db_models

import "time"

type Account struct {
	BaseModel
	Name         string
	Email        string `gorm:"uniqueIndex"`
	PasswordHash string
	Role         string `gorm:"default:user"`

	// Premium window. Entitlement is always derived from these two
	// timestamps, never from a stored boolean.
	PremiumStart *int64
	PremiumEnd   *int64
	IsTrial      bool `gorm:"default:false"`
	TrialUsed    bool `gorm:"default:false"`

	// Free-tier daily usage. Reset lazily the first time they are touched
	// after midnight of LastUsageReset.
	ScansUsedToday         int   `gorm:"default:0"`
	CoachMessagesUsedToday int   `gorm:"default:0"`
	LastUsageReset         int64 `gorm:"default:0"`

	// Referral code supplied at registration, kept for the lifetime of the
	// account so a later conversion can be attributed.
	ReferredBy string `gorm:"size:16;default:''"`

	Children     []ChildProfile `gorm:"foreignKey:ParentID"`
	DiaryEntries []DiaryEntry   `gorm:"foreignKey:AccountID"`
}

// IsEntitled reports whether the account has premium access at now,
// regardless of how the window was funded (trial, payment, referral reward).
func (a *Account) IsEntitled(now time.Time) bool {
	if a.PremiumStart == nil || a.PremiumEnd == nil {
		return false
	}
	ts := now.Unix()
	return ts >= *a.PremiumStart && ts < *a.PremiumEnd
}
