package db_models

import (
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type TransactionStatus string

const (
	TxnStatusPending  TransactionStatus = "pending"
	TxnStatusPaid     TransactionStatus = "paid"
	TxnStatusFailed   TransactionStatus = "failed"
	TxnStatusRefunded TransactionStatus = "refunded"
)

type Transaction struct {
	BaseModel
	AccountID   uuid.UUID         `gorm:"type:uuid;index"`
	PlanID      uuid.UUID         `gorm:"type:uuid;index"`
	AmountMinor int64
	Currency    string            `gorm:"size:3"`
	Status      TransactionStatus `gorm:"size:16;index"`

	Provider      string `gorm:"index"`
	ProviderTxnID string `gorm:"index"` // idempotency across webhooks

	PaidAt     *int64
	RefundedAt *int64

	// Raw provider payloads, plan snapshot, failure reasons.
	Metadata datatypes.JSON `gorm:"type:jsonb;default:'{}'"`
}
