package repositories

import (
	"context"
	"fmt"

	"pullapi/internal/models"

	"gorm.io/gorm"
)

// TransferRepository persists the transaction aggregate and serves the
// receipt numbers validation checks new submissions against.
type TransferRepository interface {
	ReceiptIDs(ctx context.Context, userID uint) ([]string, error)
	InsertTransaction(ctx context.Context, transfer *models.Transfer, sender, receiver *models.Client) error
}

type transferRepository struct {
	db *gorm.DB
}

func NewTransferRepository(db *gorm.DB) TransferRepository {
	return &transferRepository{db: db}
}

func (r *transferRepository) ReceiptIDs(ctx context.Context, userID uint) ([]string, error) {
	var ids []string
	err := r.db.WithContext(ctx).
		Model(&models.Transfer{}).
		Where("user_id = ?", userID).
		Pluck("receipt_id", &ids).Error
	if err != nil {
		return nil, fmt.Errorf("failed to load receipt ids: %w", err)
	}
	return ids, nil
}

// InsertTransaction writes the sender, receiver and transfer rows in a
// single database transaction. It runs exactly once per successful remote
// submission and is not idempotent; duplicate protection lives in the
// receipt uniqueness index and the gateway's pid.
func (r *transferRepository) InsertTransaction(ctx context.Context, transfer *models.Transfer, sender, receiver *models.Client) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(sender).Error; err != nil {
			return fmt.Errorf("failed to create sender client: %w", err)
		}
		if err := tx.Create(receiver).Error; err != nil {
			return fmt.Errorf("failed to create receiver client: %w", err)
		}

		transfer.SenderClientID = sender.ID
		transfer.ReceiverClientID = receiver.ID

		if err := tx.Create(transfer).Error; err != nil {
			return fmt.Errorf("failed to create transfer: %w", err)
		}
		return nil
	})
}
