package db_models

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMarkConvertedMovesPendingToSuccessful(t *testing.T) {
	inviteeID := uuid.New()
	record := &ReferralRecord{
		PendingInvites: []string{inviteeID.String(), "other"},
	}

	assert.True(t, record.MarkConverted(inviteeID))
	assert.Equal(t, []string{"other"}, []string(record.PendingInvites))
	assert.Equal(t, []string{inviteeID.String()}, []string(record.SuccessfulInvites))

	// Second conversion of the same invitee is a no-op.
	assert.False(t, record.MarkConverted(inviteeID))
	assert.Len(t, record.SuccessfulInvites, 1)
}

func TestMarkConvertedUnknownInvitee(t *testing.T) {
	record := &ReferralRecord{PendingInvites: []string{"someone"}}
	assert.False(t, record.MarkConverted(uuid.New()))
	assert.Len(t, record.PendingInvites, 1)
	assert.Empty(t, record.SuccessfulInvites)
}

func TestSettleRewardsGroupsOfThree(t *testing.T) {
	now := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	record := &ReferralRecord{
		SuccessfulInvites: []string{"a", "b"},
		RewardsYearStart:  now.Unix(),
	}

	assert.Equal(t, 0, record.SettleRewards(now))

	record.SuccessfulInvites = append(record.SuccessfulInvites, "c")
	assert.Equal(t, 1, record.SettleRewards(now))
	assert.Equal(t, 1, record.RewardsClaimed)
	require.NotNil(t, record.LastRewardAt)
	assert.Equal(t, now.Unix(), *record.LastRewardAt)

	// Settling again with no new conversions pays nothing.
	assert.Equal(t, 0, record.SettleRewards(now))
}

func TestSettleRewardsClampsRepairedData(t *testing.T) {
	now := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	record := &ReferralRecord{
		SuccessfulInvites: []string{"a", "b", "c"},
		RewardsClaimed:    2, // more than the conversions justify
		RewardsYearStart:  now.Unix(),
	}

	assert.Equal(t, 0, record.SettleRewards(now))
	assert.Equal(t, 2, record.RewardsClaimed)
}

func TestSettleRewardsAnnualCap(t *testing.T) {
	now := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	var successful []string
	for i := 0; i < 15; i++ {
		successful = append(successful, uuid.NewString())
	}
	record := &ReferralRecord{
		SuccessfulInvites: successful,
		RewardsYearStart:  now.Unix(),
	}

	// 15 conversions are worth 5 groups but only 3 grants per year.
	assert.Equal(t, ReferralMaxRewardsPerYear, record.SettleRewards(now))
	assert.Equal(t, ReferralMaxRewardsPerYear, record.RewardsClaimed)
}

func TestResetYearIfDue(t *testing.T) {
	start := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	record := &ReferralRecord{RewardsClaimed: 3, RewardsYearStart: start.Unix()}

	// Not yet due.
	record.ResetYearIfDue(start.Add(200 * 24 * time.Hour))
	assert.Equal(t, 3, record.RewardsClaimed)
	assert.Equal(t, start.Unix(), record.RewardsYearStart)

	// Due: counter resets, window restarts.
	later := start.Add(366 * 24 * time.Hour)
	record.ResetYearIfDue(later)
	assert.Equal(t, 0, record.RewardsClaimed)
	assert.Equal(t, later.Unix(), record.RewardsYearStart)
}

func TestResetYearInitializesZeroStart(t *testing.T) {
	now := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	record := &ReferralRecord{RewardsClaimed: 1}

	record.ResetYearIfDue(now)
	assert.Equal(t, now.Unix(), record.RewardsYearStart)
	assert.Equal(t, 1, record.RewardsClaimed, "initializing the window must not reset claims")
}
