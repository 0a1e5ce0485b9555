package response_models

type ReferralResponse struct {
	Code              string `json:"code"`
	PendingInvites    int    `json:"pending_invites"`
	SuccessfulInvites int    `json:"successful_invites"`
	RewardsClaimed    int    `json:"rewards_claimed"`
	RewardsYearStart  int64  `json:"rewards_year_start"`
	LastRewardAt      *int64 `json:"last_reward_at,omitempty"`
	// Conversions still needed before the next 30-day reward.
	ConversionsToNextReward int `json:"conversions_to_next_reward"`
}
