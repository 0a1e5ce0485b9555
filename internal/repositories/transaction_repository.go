package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"nutrikids/internal/models/db_models"
)

type TransactionRepository interface {
	Insert(ctx context.Context, txn *db_models.Transaction) error
	FindByProviderTxnID(ctx context.Context, provider, providerTxnID string) (*db_models.Transaction, error)
	Update(ctx context.Context, txn *db_models.Transaction) error
	// MarkPaid flips a pending transaction to paid. Returns false when the
	// transaction was already settled, which keeps webhook retries idempotent.
	MarkPaid(ctx context.Context, id uuid.UUID, paidAt int64) (bool, error)
}

type transactionRepository struct {
	db *gorm.DB
}

func NewTransactionRepository(db *gorm.DB) TransactionRepository {
	return &transactionRepository{db: db}
}

func (r *transactionRepository) Insert(ctx context.Context, txn *db_models.Transaction) error {
	return r.db.WithContext(ctx).Create(txn).Error
}

func (r *transactionRepository) FindByProviderTxnID(ctx context.Context, provider, providerTxnID string) (*db_models.Transaction, error) {
	var txn db_models.Transaction
	err := r.db.WithContext(ctx).
		First(&txn, "provider = ? AND provider_txn_id = ?", provider, providerTxnID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &txn, nil
}

func (r *transactionRepository) Update(ctx context.Context, txn *db_models.Transaction) error {
	return r.db.WithContext(ctx).Save(txn).Error
}

func (r *transactionRepository) MarkPaid(ctx context.Context, id uuid.UUID, paidAt int64) (bool, error) {
	res := r.db.WithContext(ctx).Model(&db_models.Transaction{}).
		Where("id = ? AND status = ?", id, db_models.TxnStatusPending).
		Updates(map[string]interface{}{
			"status":  db_models.TxnStatusPaid,
			"paid_at": paidAt,
		})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected == 1, nil
}
