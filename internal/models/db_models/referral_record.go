package db_models

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

const (
	// Conversions needed per reward and the hard per-year grant cap.
	ReferralConversionsPerReward = 3
	ReferralMaxRewardsPerYear    = 3
	// Premium time granted per reward.
	ReferralRewardDays = 30
)

type ReferralRecord struct {
	BaseModel
	OwnerID uuid.UUID `gorm:"type:uuid;uniqueIndex"`
	Code    string    `gorm:"size:16;uniqueIndex"`

	// An invitee id lives in exactly one of these two sets: it moves from
	// pending to successful the first time the invitee becomes premium.
	PendingInvites    pq.StringArray `gorm:"type:text[]"`
	SuccessfulInvites pq.StringArray `gorm:"type:text[]"`

	RewardsClaimed   int   `gorm:"default:0"`
	RewardsYearStart int64 `gorm:"default:0"`
	LastRewardAt     *int64
}

const rewardYear = 365 * 24 * time.Hour

// ResetYearIfDue zeroes the claim counter when the rolling 365-day window
// has elapsed, restarting the window at now.
func (r *ReferralRecord) ResetYearIfDue(now time.Time) {
	if r.RewardsYearStart == 0 {
		r.RewardsYearStart = now.Unix()
		return
	}
	if now.Sub(time.Unix(r.RewardsYearStart, 0)) >= rewardYear {
		r.RewardsClaimed = 0
		r.RewardsYearStart = now.Unix()
	}
}

// MarkConverted moves an invitee from pending to successful. It is a no-op
// when the id is not pending, so duplicate conversion notifications are
// harmless.
func (r *ReferralRecord) MarkConverted(inviteeID uuid.UUID) bool {
	id := inviteeID.String()
	for i, pending := range r.PendingInvites {
		if pending == id {
			r.PendingInvites = append(r.PendingInvites[:i], r.PendingInvites[i+1:]...)
			r.SuccessfulInvites = append(r.SuccessfulInvites, id)
			return true
		}
	}
	return false
}

// SettleRewards computes how many rewards are newly payable and claims them.
// available = successful/3 - claimed, clamped at zero (negative values mean
// repaired data, not an error), capped at 3 grants per rolling year.
func (r *ReferralRecord) SettleRewards(now time.Time) int {
	r.ResetYearIfDue(now)

	available := len(r.SuccessfulInvites)/ReferralConversionsPerReward - r.RewardsClaimed
	if available < 0 {
		available = 0
	}
	if room := ReferralMaxRewardsPerYear - r.RewardsClaimed; available > room {
		available = room
	}
	if available <= 0 {
		return 0
	}

	r.RewardsClaimed += available
	ts := now.Unix()
	r.LastRewardAt = &ts
	return available
}
