package repository

import (
	"fmt"

	"sms-payment-backend/internal/models"

	"gorm.io/gorm"
)

type VerificationRepository struct {
	db *gorm.DB
}

func NewVerificationRepository(db *gorm.DB) *VerificationRepository {
	return &VerificationRepository{db: db}
}

// Save inserts one verification audit row.
func (r *VerificationRepository) Save(v *models.PaymentVerification) error {
	if err := r.db.Create(v).Error; err != nil {
		return fmt.Errorf("saving verification record: %w", err)
	}
	return nil
}

// ListByTxID returns the audit trail for one transaction id.
func (r *VerificationRepository) ListByTxID(txid string) ([]models.PaymentVerification, error) {
	var recs []models.PaymentVerification
	err := r.db.Where("txid = ?", txid).Order("created_at ASC").Find(&recs).Error
	if err != nil {
		return nil, fmt.Errorf("listing verifications: %w", err)
	}
	return recs, nil
}
