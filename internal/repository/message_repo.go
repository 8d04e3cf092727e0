package repository

import (
	"errors"
	"fmt"

	"sms-payment-backend/internal/models"

	"gorm.io/gorm"
)

type MessageRepository struct {
	db *gorm.DB
}

func NewMessageRepository(db *gorm.DB) *MessageRepository {
	return &MessageRepository{db: db}
}

// Expose DB if needed
func (r *MessageRepository) DB() *gorm.DB {
	return r.db
}

// FindByTxID returns the first stored message carrying the transaction id,
// or nil when none exists. Absence is a domain outcome, not an error.
func (r *MessageRepository) FindByTxID(txid string) (*models.Message, error) {
	var msg models.Message
	err := r.db.First(&msg, "txid = ?", txid).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("looking up message by txid: %w", err)
	}
	return &msg, nil
}

// Save inserts one ingested message row.
func (r *MessageRepository) Save(msg *models.Message) error {
	if err := r.db.Create(msg).Error; err != nil {
		return fmt.Errorf("saving message: %w", err)
	}
	return nil
}

// ListRecent returns the newest stored messages, most recent first.
func (r *MessageRepository) ListRecent(limit int) ([]models.Message, error) {
	var msgs []models.Message
	err := r.db.Order("created_at DESC").Limit(limit).Find(&msgs).Error
	if err != nil {
		return nil, fmt.Errorf("listing messages: %w", err)
	}
	return msgs, nil
}
