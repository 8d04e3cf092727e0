package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Message is a stored payment SMS: the raw body plus the fields extracted
// at ingestion time and the classifier tags.
type Message struct {
	ID                uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	RawText           string         `json:"raw_text"`
	TxID              string         `gorm:"column:txid;index" json:"txid"`
	Amount            string         `json:"amount"`
	SenderName        string         `json:"sender_name"`
	SenderPhoneDigits string         `json:"sender_phone_digits"`
	SMSTimestamp      *string        `gorm:"column:sms_timestamp" json:"timestamp"`
	MLConfidence      float64        `gorm:"column:ml_confidence" json:"ml_confidence"`
	PaymentStatus     string         `gorm:"index" json:"payment_status"`
	ClassifierDetails datatypes.JSON `json:"classifier_details"`
	CreatedAt         time.Time      `json:"created_at"`
}
