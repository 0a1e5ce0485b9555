package services

import (
	"context"
	"log"
	"time"

	"github.com/google/uuid"

	"nutrikids/internal/models/db_models"
	"nutrikids/internal/repositories"
	"nutrikids/pkg/utils"
)

// ReferralService is the reward ledger: it tracks who invited whom and
// converts groups of successful invites into premium-time grants for the
// inviter, capped per rolling year.
type ReferralService interface {
	// GetOrCreateRecord lazily creates the owner's referral record with a
	// code derived from the owner id.
	GetOrCreateRecord(ctx context.Context, ownerID uuid.UUID) (*db_models.ReferralRecord, error)

	// RegisterInvite records a registration made with a referral code. It
	// grants nothing by itself.
	RegisterInvite(ctx context.Context, code string, inviteeID uuid.UUID) error

	// OnBecamePremium handles an account's first (or repeated, it is
	// idempotent) transition to premium. Referrer-side failures are logged
	// and swallowed: they must never block the invitee's own activation.
	OnBecamePremium(ctx context.Context, inviteeID uuid.UUID)
}

type referralService struct {
	referralRepo repositories.ReferralRepository
	accountRepo  repositories.AccountRepository
	entitlements EntitlementService
	clock        utils.Clock
}

func NewReferralService(
	referralRepo repositories.ReferralRepository,
	accountRepo repositories.AccountRepository,
	entitlements EntitlementService,
	clock utils.Clock,
) ReferralService {
	return &referralService{
		referralRepo: referralRepo,
		accountRepo:  accountRepo,
		entitlements: entitlements,
		clock:        clock,
	}
}

func (r *referralService) GetOrCreateRecord(ctx context.Context, ownerID uuid.UUID) (*db_models.ReferralRecord, error) {
	record, err := r.referralRepo.FindByOwner(ctx, ownerID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if record != nil {
		return record, nil
	}

	record = &db_models.ReferralRecord{
		OwnerID:           ownerID,
		Code:              utils.DeriveReferralCode(ownerID.String()),
		PendingInvites:    []string{},
		SuccessfulInvites: []string{},
		RewardsYearStart:  r.clock.Now().Unix(),
	}
	if err := r.referralRepo.Insert(ctx, record); err != nil {
		return nil, utils.ErrDatabaseError
	}
	return record, nil
}

func (r *referralService) RegisterInvite(ctx context.Context, code string, inviteeID uuid.UUID) error {
	record, err := r.referralRepo.FindByCode(ctx, code)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if record == nil {
		return utils.ErrInvalidReferral
	}
	if record.OwnerID == inviteeID {
		return utils.ErrSelfReferral
	}

	if err := r.referralRepo.AppendPendingInvite(ctx, code, inviteeID); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}

func (r *referralService) OnBecamePremium(ctx context.Context, inviteeID uuid.UUID) {
	invitee, err := r.accountRepo.FindById(ctx, inviteeID)
	if err != nil {
		log.Printf("referral: loading invitee %s: %v", inviteeID, err)
		return
	}
	if invitee == nil || invitee.ReferredBy == "" {
		return
	}

	record, err := r.referralRepo.FindByCode(ctx, invitee.ReferredBy)
	if err != nil {
		log.Printf("referral: loading record for code %s: %v", invitee.ReferredBy, err)
		return
	}
	if record == nil {
		// Referrer record vanished; nothing to settle.
		log.Printf("referral: no record owns code %s", invitee.ReferredBy)
		return
	}

	now := r.clock.Now()
	grants := 0
	updated, err := r.referralRepo.ApplyLedger(ctx, record.OwnerID, func(rec *db_models.ReferralRecord) error {
		rec.MarkConverted(inviteeID)
		grants = rec.SettleRewards(now)
		return nil
	})
	if err != nil {
		log.Printf("referral: settling ledger for %s: %v", record.OwnerID, err)
		return
	}
	if updated == nil {
		log.Printf("referral: record for %s vanished during settle", record.OwnerID)
		return
	}

	if grants == 0 {
		return
	}

	wasEntitled, err := r.entitlements.IsEntitled(ctx, record.OwnerID)
	if err != nil {
		log.Printf("referral: checking entitlement for %s: %v", record.OwnerID, err)
	}

	for i := 0; i < grants; i++ {
		reward := time.Duration(db_models.ReferralRewardDays) * 24 * time.Hour
		if err := r.entitlements.GrantOrExtend(ctx, record.OwnerID, reward); err != nil {
			log.Printf("referral: granting reward %d/%d to %s: %v", i+1, grants, record.OwnerID, err)
		}
	}
	log.Printf("referral: granted %d reward(s) to %s", grants, record.OwnerID)

	// A reward that opens the owner's first window is a premium transition
	// like any other: the owner may be pending in someone else's ledger.
	// Settling is idempotent, so re-entering here terminates.
	if !wasEntitled {
		r.OnBecamePremium(ctx, record.OwnerID)
	}
}
