package models

import (
	"time"

	"github.com/google/uuid"
)

// PaymentVerification is the audit row written when an identity
// verification approves a payment.
type PaymentVerification struct {
	ID                 uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	TxID               string    `gorm:"column:txid;index" json:"txid"`
	ClientName         string    `json:"client_name"`
	ClientPhone        string    `json:"client_phone"`
	VerifiedAmount     int64     `json:"verified_amount"`
	VerificationStatus string    `gorm:"index" json:"verification_status"`
	CreatedAt          time.Time `json:"created_at"`
}
