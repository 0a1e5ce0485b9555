package services

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"nutrikids/internal/models/db_models"
	"nutrikids/internal/repositories"
)

type fakeClock struct {
	now time.Time
}

func (f *fakeClock) Now() time.Time { return f.now }

func (f *fakeClock) Advance(d time.Duration) { f.now = f.now.Add(d) }

// fakeAccountRepo mirrors the guarded-update semantics of the real
// repository in memory.
type fakeAccountRepo struct {
	mu       sync.Mutex
	accounts map[uuid.UUID]*db_models.Account
}

func newFakeAccountRepo() *fakeAccountRepo {
	return &fakeAccountRepo{accounts: make(map[uuid.UUID]*db_models.Account)}
}

func (f *fakeAccountRepo) add(account *db_models.Account) *db_models.Account {
	if account.ID == uuid.Nil {
		account.ID = uuid.New()
	}
	f.accounts[account.ID] = account
	return account
}

func (f *fakeAccountRepo) Insert(ctx context.Context, account *db_models.Account) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.add(account)
	return nil
}

func (f *fakeAccountRepo) FindByEmail(ctx context.Context, email string) (*db_models.Account, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, a := range f.accounts {
		if a.Email == email {
			copied := *a
			return &copied, nil
		}
	}
	return nil, nil
}

func (f *fakeAccountRepo) FindById(ctx context.Context, id uuid.UUID) (*db_models.Account, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	a, ok := f.accounts[id]
	if !ok {
		return nil, nil
	}
	copied := *a
	return &copied, nil
}

func (f *fakeAccountRepo) ListAll(ctx context.Context) ([]db_models.Account, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]db_models.Account, 0, len(f.accounts))
	for _, a := range f.accounts {
		out = append(out, *a)
	}
	return out, nil
}

func (f *fakeAccountRepo) UpdatePasswordHash(ctx context.Context, id uuid.UUID, hash string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if a, ok := f.accounts[id]; ok {
		a.PasswordHash = hash
	}
	return nil
}

func (f *fakeAccountRepo) ResetDailyUsage(ctx context.Context, id uuid.UUID, dayStart, now time.Time) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	a, ok := f.accounts[id]
	if !ok {
		return nil
	}
	if time.Unix(a.LastUsageReset, 0).Before(dayStart) {
		a.ScansUsedToday = 0
		a.CoachMessagesUsedToday = 0
		a.LastUsageReset = now.Unix()
	}
	return nil
}

func (f *fakeAccountRepo) IncrementUsageBelowLimit(ctx context.Context, id uuid.UUID, kind repositories.UsageKind, limit int) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	a, ok := f.accounts[id]
	if !ok {
		return false, nil
	}
	if kind == repositories.UsageCoachMessage {
		if a.CoachMessagesUsedToday >= limit {
			return false, nil
		}
		a.CoachMessagesUsedToday++
		return true, nil
	}
	if a.ScansUsedToday >= limit {
		return false, nil
	}
	a.ScansUsedToday++
	return true, nil
}

func (f *fakeAccountRepo) StartTrial(ctx context.Context, id uuid.UUID, now time.Time, duration time.Duration) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	a, ok := f.accounts[id]
	if !ok {
		return false, nil
	}
	ts := now.Unix()
	if a.TrialUsed || (a.PremiumEnd != nil && *a.PremiumEnd > ts) {
		return false, nil
	}
	end := now.Add(duration).Unix()
	a.PremiumStart = &ts
	a.PremiumEnd = &end
	a.IsTrial = true
	a.TrialUsed = true
	return true, nil
}

func (f *fakeAccountRepo) GrantOrExtend(ctx context.Context, id uuid.UUID, now time.Time, duration time.Duration) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	a, ok := f.accounts[id]
	if !ok {
		return nil
	}
	ts := now.Unix()
	secs := int64(duration / time.Second)
	if a.PremiumEnd != nil && *a.PremiumEnd > ts {
		end := *a.PremiumEnd + secs
		a.PremiumEnd = &end
	} else {
		end := ts + secs
		a.PremiumStart = &ts
		a.PremiumEnd = &end
	}
	a.IsTrial = false
	return nil
}

func (f *fakeAccountRepo) ClearExpiredTrials(ctx context.Context, now time.Time) ([]uuid.UUID, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var ids []uuid.UUID
	ts := now.Unix()
	for _, a := range f.accounts {
		if a.IsTrial && a.PremiumEnd != nil && *a.PremiumEnd <= ts {
			a.IsTrial = false
			ids = append(ids, a.ID)
		}
	}
	return ids, nil
}

func (f *fakeAccountRepo) FindTrialsExpiringBetween(ctx context.Context, from, to time.Time) ([]db_models.Account, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []db_models.Account
	for _, a := range f.accounts {
		if a.IsTrial && a.PremiumEnd != nil && *a.PremiumEnd > from.Unix() && *a.PremiumEnd <= to.Unix() {
			out = append(out, *a)
		}
	}
	return out, nil
}

type fakeConfigRepo struct {
	cfg *db_models.AppConfig
}

func newFakeConfigRepo() *fakeConfigRepo {
	return &fakeConfigRepo{cfg: db_models.DefaultAppConfig()}
}

func (f *fakeConfigRepo) GetOrCreate(ctx context.Context) (*db_models.AppConfig, error) {
	return f.cfg, nil
}

func (f *fakeConfigRepo) Update(ctx context.Context, cfg *db_models.AppConfig) error {
	f.cfg = cfg
	return nil
}

type fakeChildRepo struct {
	mu       sync.Mutex
	children map[uuid.UUID]*db_models.ChildProfile
}

func newFakeChildRepo() *fakeChildRepo {
	return &fakeChildRepo{children: make(map[uuid.UUID]*db_models.ChildProfile)}
}

func (f *fakeChildRepo) add(child *db_models.ChildProfile) *db_models.ChildProfile {
	if child.ID == uuid.Nil {
		child.ID = uuid.New()
	}
	if child.Level == 0 {
		child.Level = 1
	}
	f.children[child.ID] = child
	return child
}

func (f *fakeChildRepo) Insert(ctx context.Context, child *db_models.ChildProfile) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.add(child)
	return nil
}

func (f *fakeChildRepo) FindById(ctx context.Context, id uuid.UUID) (*db_models.ChildProfile, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	c, ok := f.children[id]
	if !ok {
		return nil, nil
	}
	copied := *c
	return &copied, nil
}

func (f *fakeChildRepo) FindByParent(ctx context.Context, parentID uuid.UUID) ([]db_models.ChildProfile, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []db_models.ChildProfile
	for _, c := range f.children {
		if c.ParentID == parentID {
			out = append(out, *c)
		}
	}
	return out, nil
}

func (f *fakeChildRepo) Update(ctx context.Context, child *db_models.ChildProfile) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.children[child.ID] = child
	return nil
}

func (f *fakeChildRepo) Delete(ctx context.Context, id uuid.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.children, id)
	return nil
}

func (f *fakeChildRepo) ApplyGamification(ctx context.Context, id uuid.UUID, apply func(*db_models.ChildProfile) error) (*db_models.ChildProfile, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	c, ok := f.children[id]
	if !ok {
		return nil, nil
	}
	if err := apply(c); err != nil {
		return nil, err
	}
	copied := *c
	return &copied, nil
}

type fakeReferralRepo struct {
	mu      sync.Mutex
	records map[uuid.UUID]*db_models.ReferralRecord
}

func newFakeReferralRepo() *fakeReferralRepo {
	return &fakeReferralRepo{records: make(map[uuid.UUID]*db_models.ReferralRecord)}
}

func (f *fakeReferralRepo) Insert(ctx context.Context, record *db_models.ReferralRecord) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if record.ID == uuid.Nil {
		record.ID = uuid.New()
	}
	f.records[record.OwnerID] = record
	return nil
}

func (f *fakeReferralRepo) FindByCode(ctx context.Context, code string) (*db_models.ReferralRecord, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, r := range f.records {
		if r.Code == code {
			copied := *r
			return &copied, nil
		}
	}
	return nil, nil
}

func (f *fakeReferralRepo) FindByOwner(ctx context.Context, ownerID uuid.UUID) (*db_models.ReferralRecord, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	r, ok := f.records[ownerID]
	if !ok {
		return nil, nil
	}
	copied := *r
	return &copied, nil
}

func (f *fakeReferralRepo) AppendPendingInvite(ctx context.Context, code string, inviteeID uuid.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, r := range f.records {
		if r.Code == code {
			r.PendingInvites = append(r.PendingInvites, inviteeID.String())
			return nil
		}
	}
	return nil
}

func (f *fakeReferralRepo) ApplyLedger(ctx context.Context, ownerID uuid.UUID, apply func(*db_models.ReferralRecord) error) (*db_models.ReferralRecord, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	r, ok := f.records[ownerID]
	if !ok {
		return nil, nil
	}
	if err := apply(r); err != nil {
		return nil, err
	}
	copied := *r
	return &copied, nil
}

// grantRecorder captures premium grants issued by the referral engine while
// delegating to a real entitlement service, so granted windows stay visible
// through IsEntitled.
type grantRecorder struct {
	EntitlementService
	mu     sync.Mutex
	grants []time.Duration
}

func (g *grantRecorder) GrantOrExtend(ctx context.Context, accountID uuid.UUID, duration time.Duration) error {
	g.mu.Lock()
	g.grants = append(g.grants, duration)
	g.mu.Unlock()
	if g.EntitlementService == nil {
		return nil
	}
	return g.EntitlementService.GrantOrExtend(ctx, accountID, duration)
}
