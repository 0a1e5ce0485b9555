package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"math/rand"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/payOSHQ/payos-lib-golang"

	"nutrikids/internal/config"
	"nutrikids/internal/models/db_models"
	"nutrikids/internal/models/response_models"
	"nutrikids/internal/repositories"
	"nutrikids/pkg/utils"
)

const paymentProvider = "payos"

type PaymentService interface {
	ListPlans(ctx context.Context) ([]response_models.PlanResponse, error)
	CreateCheckout(ctx context.Context, accountID uuid.UUID, planCode string) (*response_models.CreateCheckoutResponse, error)

	// HandleWebhook settles a provider notification. It is idempotent: a
	// retried webhook for an already-paid transaction grants nothing twice.
	HandleWebhook(ctx context.Context, webhook payos.WebhookType) error
}

type paymentService struct {
	planRepo    repositories.PlanRepository
	txnRepo     repositories.TransactionRepository
	entitlement EntitlementService
	referrals   ReferralService
	cfg         *config.Config
	clock       utils.Clock
}

func NewPaymentService(
	planRepo repositories.PlanRepository,
	txnRepo repositories.TransactionRepository,
	entitlement EntitlementService,
	referrals ReferralService,
	cfg *config.Config,
	clock utils.Clock,
) (PaymentService, error) {
	if cfg.PayOSClientID != "" {
		if err := payos.Key(cfg.PayOSClientID, cfg.PayOSAPIKey, cfg.PayOSChecksumKey); err != nil {
			return nil, fmt.Errorf("payos client init: %w", err)
		}
	}
	return &paymentService{
		planRepo:    planRepo,
		txnRepo:     txnRepo,
		entitlement: entitlement,
		referrals:   referrals,
		cfg:         cfg,
		clock:       clock,
	}, nil
}

func (p *paymentService) ListPlans(ctx context.Context) ([]response_models.PlanResponse, error) {
	plans, err := p.planRepo.GetAllActive(ctx)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	out := make([]response_models.PlanResponse, 0, len(plans))
	for _, plan := range plans {
		out = append(out, response_models.PlanResponse{
			Code:       plan.Code,
			Name:       plan.Name,
			Period:     string(plan.Period),
			PriceMinor: plan.PriceMinor,
			Currency:   plan.Currency,
		})
	}
	return out, nil
}

func (p *paymentService) CreateCheckout(ctx context.Context, accountID uuid.UUID, planCode string) (*response_models.CreateCheckoutResponse, error) {
	plan, err := p.planRepo.GetByCode(ctx, planCode)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if plan == nil || plan.PriceMinor <= 0 {
		return nil, utils.ErrPlanNotFound
	}

	// payOS wants a numeric order code of at most 13 digits. Unix seconds
	// plus a random suffix keeps collisions unlikely without another table.
	orderCode := p.clock.Now().Unix()%1_000_000_000*10_000 + rand.Int63n(10_000)

	txn := &db_models.Transaction{
		AccountID:     accountID,
		PlanID:        plan.ID,
		AmountMinor:   plan.PriceMinor,
		Currency:      strings.ToUpper(plan.Currency),
		Status:        db_models.TxnStatusPending,
		Provider:      paymentProvider,
		ProviderTxnID: fmt.Sprintf("payos:%d", orderCode),
	}
	if err := p.txnRepo.Insert(ctx, txn); err != nil {
		return nil, utils.ErrDatabaseError
	}

	body := payos.CheckoutRequestType{
		OrderCode: orderCode,
		Amount:    int(plan.PriceMinor),
		Items: []payos.Item{{
			Name:     fmt.Sprintf("%s (%s)", plan.Name, plan.Code),
			Price:    int(plan.PriceMinor),
			Quantity: 1,
		}},
		Description: fmt.Sprintf("Subscription %s", plan.Code),
		CancelUrl:   p.cfg.PayOSCancelURL,
		ReturnUrl:   p.cfg.PayOSReturnURL,
	}

	link, err := payos.CreatePaymentLink(body)
	if err != nil {
		txn.Status = db_models.TxnStatusFailed
		if updateErr := p.txnRepo.Update(ctx, txn); updateErr != nil {
			log.Printf("payment: marking txn %s failed: %v", txn.ID, updateErr)
		}
		return nil, fmt.Errorf("payos create link: %w", err)
	}

	if meta, marshalErr := json.Marshal(map[string]any{
		"payos_link": link,
		"plan_code":  plan.Code,
	}); marshalErr == nil {
		txn.Metadata = meta
		if updateErr := p.txnRepo.Update(ctx, txn); updateErr != nil {
			log.Printf("payment: storing txn %s metadata: %v", txn.ID, updateErr)
		}
	}

	return &response_models.CreateCheckoutResponse{
		OrderCode:    orderCode,
		Amount:       plan.PriceMinor,
		PaymentURL:   link.CheckoutUrl,
		ProviderName: paymentProvider,
	}, nil
}

func (p *paymentService) HandleWebhook(ctx context.Context, webhook payos.WebhookType) error {
	data, err := payos.VerifyPaymentWebhookData(webhook)
	if err != nil {
		return fmt.Errorf("payos webhook verify: %w", err)
	}
	if !webhook.Success {
		log.Printf("payment: ignoring unsuccessful webhook for order %d", data.OrderCode)
		return nil
	}

	txn, err := p.txnRepo.FindByProviderTxnID(ctx, paymentProvider, fmt.Sprintf("payos:%d", data.OrderCode))
	if err != nil {
		return utils.ErrDatabaseError
	}
	if txn == nil {
		return fmt.Errorf("unknown order code %d", data.OrderCode)
	}

	paid, err := p.txnRepo.MarkPaid(ctx, txn.ID, p.clock.Now().Unix())
	if err != nil {
		return utils.ErrDatabaseError
	}
	if !paid {
		// Already settled by an earlier delivery.
		return nil
	}

	plan, err := p.planRepo.GetById(ctx, txn.PlanID)
	if err != nil || plan == nil {
		return utils.ErrPlanNotFound
	}

	days := plan.PremiumDuration()
	if err := p.entitlement.GrantOrExtend(ctx, txn.AccountID, time.Duration(days)*24*time.Hour); err != nil {
		return err
	}

	// Referral settlement is best effort and must never fail the webhook.
	p.referrals.OnBecamePremium(ctx, txn.AccountID)
	return nil
}
