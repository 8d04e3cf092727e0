package handlers

import (
	"encoding/json"
	"log"
	"net/http"
	"strconv"
	"time"

	"sms-payment-backend/internal/classifier"
	"sms-payment-backend/internal/extractor"
	"sms-payment-backend/internal/models"
	"sms-payment-backend/internal/services/verification"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// MessageStore is the slice of the message repository the handler needs.
type MessageStore interface {
	Save(msg *models.Message) error
	ListRecent(limit int) ([]models.Message, error)
}

// VerificationLister reads the verification audit trail.
type VerificationLister interface {
	ListByTxID(txid string) ([]models.PaymentVerification, error)
}

type SMSHandler struct {
	classifier    *classifier.Classifier
	messages      MessageStore
	verifications VerificationLister
	engine        *verification.Engine
	defaultAmount int64
}

func NewSMSHandler(
	c *classifier.Classifier,
	messages MessageStore,
	verifications VerificationLister,
	engine *verification.Engine,
	defaultAmount int64,
) *SMSHandler {
	return &SMSHandler{
		classifier:    c,
		messages:      messages,
		verifications: verifications,
		engine:        engine,
		defaultAmount: defaultAmount,
	}
}

// ReceiveSMS ingests one raw SMS body. Non-payment and non-success
// messages are acknowledged but not stored.
func (h *SMSHandler) ReceiveSMS(c *gin.Context) {
	var payload struct {
		Message string `json:"message"`
	}
	// A missing or malformed body counts as an empty message, not an error.
	_ = c.ShouldBindJSON(&payload)

	result := h.classifier.Classify(payload.Message)

	if !result.IsPaymentRelated {
		c.JSON(http.StatusOK, gin.H{
			"status":     "ignored",
			"reason":     "Not a payment-related SMS",
			"confidence": result.Confidence,
		})
		return
	}

	if result.Status != classifier.StatusSuccess {
		c.JSON(http.StatusOK, gin.H{
			"status":     "ignored",
			"reason":     "Payment status: " + string(result.Status),
			"confidence": result.Confidence,
		})
		return
	}

	fields := extractor.Extract(payload.Message)
	details, _ := json.Marshal(result)

	msg := &models.Message{
		ID:                uuid.New(),
		RawText:           payload.Message,
		TxID:              fields.TxID,
		Amount:            fields.Amount,
		SenderName:        fields.SenderName,
		SenderPhoneDigits: fields.PhoneDigits,
		SMSTimestamp:      fields.Timestamp,
		MLConfidence:      result.Confidence,
		PaymentStatus:     string(result.Status),
		ClassifierDetails: details,
		CreatedAt:         time.Now(),
	}

	if err := h.messages.Save(msg); err != nil {
		log.Println("ERROR saving message:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save message"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":            "saved",
		"data":              msg,
		"ml_classification": result,
	})
}

// VerifyPayment runs the amount-only check.
func (h *SMSHandler) VerifyPayment(c *gin.Context) {
	var payload struct {
		TxID           string `json:"txid"`
		RequiredAmount *int64 `json:"required_amount"`
	}
	if err := c.ShouldBindJSON(&payload); err != nil || payload.TxID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "txid is required"})
		return
	}

	required := h.defaultAmount
	if payload.RequiredAmount != nil {
		required = *payload.RequiredAmount
	}

	outcome := h.engine.VerifySimple(payload.TxID, required)
	c.JSON(http.StatusOK, outcome)
}

// VerifyPaymentWithClient runs the amount + name + phone check. The engine
// assumes validated identity inputs, so the handler rejects blanks here.
func (h *SMSHandler) VerifyPaymentWithClient(c *gin.Context) {
	var payload struct {
		TxID           string `json:"txid"`
		ClientName     string `json:"client_name"`
		ClientPhone    string `json:"client_phone"`
		RequiredAmount *int64 `json:"required_amount"`
	}
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}
	if payload.TxID == "" || payload.ClientName == "" || payload.ClientPhone == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  verification.StatusNotApproved,
			"message": "All fields are required.",
		})
		return
	}

	required := h.defaultAmount
	if payload.RequiredAmount != nil {
		required = *payload.RequiredAmount
	}

	outcome := h.engine.VerifyWithIdentity(payload.TxID, payload.ClientName, payload.ClientPhone, required)
	c.JSON(http.StatusOK, outcome)
}

// ListMessages returns the most recently stored payment messages.
func (h *SMSHandler) ListMessages(c *gin.Context) {
	limit := 50
	if l := c.Query("limit"); l != "" {
		if n, err := strconv.Atoi(l); err == nil && n > 0 {
			limit = n
		}
	}

	msgs, err := h.messages.ListRecent(limit)
	if err != nil {
		log.Println("ERROR listing messages:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list messages"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"items": msgs, "count": len(msgs)})
}

// ListVerifications returns the audit trail for one transaction id.
func (h *SMSHandler) ListVerifications(c *gin.Context) {
	txid := c.Param("txid")

	recs, err := h.verifications.ListByTxID(txid)
	if err != nil {
		log.Println("ERROR listing verifications:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list verifications"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"txid": txid, "items": recs, "count": len(recs)})
}
