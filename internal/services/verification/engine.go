package verification

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"sms-payment-backend/internal/models"

	"github.com/google/uuid"
)

// OutcomeStatus is the verdict of a verification call.
type OutcomeStatus string

const (
	StatusApproved    OutcomeStatus = "approved"
	StatusNotApproved OutcomeStatus = "not_approved"
	StatusError       OutcomeStatus = "error"
)

// Outcome is the result of one verification call. Amount is set only when
// the payment was approved.
type Outcome struct {
	Status  OutcomeStatus `json:"status"`
	Message string        `json:"message"`
	Amount  *int64        `json:"amount,omitempty"`
}

// PhonePolicy controls how the phone rule treats records whose SMS carried
// no masked phone digits.
type PhonePolicy string

const (
	// PhoneOptional skips the phone rule when the stored record has no
	// digits. This mirrors the lenient historical behavior.
	PhoneOptional PhonePolicy = "optional"
	// PhoneRequired rejects when the stored record has no digits to check.
	PhoneRequired PhonePolicy = "required"
	// PhoneOff disables the phone rule entirely.
	PhoneOff PhonePolicy = "off"
)

// TransactionFinder looks up a stored payment message by transaction id.
// A nil message with a nil error means no record exists.
type TransactionFinder interface {
	FindByTxID(txid string) (*models.Message, error)
}

// VerificationRecorder persists an approved verification.
type VerificationRecorder interface {
	Save(v *models.PaymentVerification) error
}

// Engine applies the payment verification rules. It holds no mutable state
// beyond the injected stores and is safe for concurrent use.
type Engine struct {
	messages      TransactionFinder
	verifications VerificationRecorder
	phonePolicy   PhonePolicy
}

func NewEngine(messages TransactionFinder, verifications VerificationRecorder, phonePolicy PhonePolicy) *Engine {
	return &Engine{
		messages:      messages,
		verifications: verifications,
		phonePolicy:   phonePolicy,
	}
}

// VerifySimple checks that a stored payment covers requiredAmount.
// Overpayment is approved here; the identity path treats it differently
// on purpose (kept pending a product decision, see DESIGN.md).
func (e *Engine) VerifySimple(txid string, requiredAmount int64) Outcome {
	msg, err := e.messages.FindByTxID(txid)
	if err != nil {
		return Outcome{Status: StatusError, Message: "Verification is temporarily unavailable. Please try again."}
	}
	if msg == nil {
		return Outcome{Status: StatusNotApproved, Message: "Payment is not approved."}
	}

	paid, err := parseStoredAmount(msg.Amount)
	if err != nil {
		return Outcome{Status: StatusNotApproved, Message: "Payment is not approved (invalid amount format)."}
	}

	if paid < requiredAmount {
		shortage := requiredAmount - paid
		return Outcome{
			Status:  StatusNotApproved,
			Message: fmt.Sprintf("Payment is not approved. You are short by %d RWF.", shortage),
		}
	}
	return Outcome{Status: StatusApproved, Message: "Payment is approved."}
}

// VerifyWithIdentity checks amount, sender name and phone suffix in that
// order, failing fast so the reported reason is deterministic. On success
// it writes an audit row through the recorder.
func (e *Engine) VerifyWithIdentity(txid, clientName, clientPhone string, requiredAmount int64) Outcome {
	msg, err := e.messages.FindByTxID(txid)
	if err != nil {
		return Outcome{Status: StatusError, Message: "Verification is temporarily unavailable. Please try again."}
	}
	if msg == nil {
		return Outcome{Status: StatusNotApproved, Message: "Payment not found. Please check your TxID."}
	}

	paid, err := parseStoredAmount(msg.Amount)
	if err != nil {
		return Outcome{Status: StatusNotApproved, Message: "Invalid payment amount format."}
	}

	// Unlike VerifySimple, overpayment does not short-circuit: the
	// identity rules still run.
	if paid < requiredAmount {
		shortage := requiredAmount - paid
		return Outcome{
			Status:  StatusNotApproved,
			Message: fmt.Sprintf("Insufficient payment. You are short by %d RWF.", shortage),
		}
	}

	if !nameMatches(msg.SenderName, clientName) {
		return Outcome{
			Status:  StatusNotApproved,
			Message: "Name verification failed. Please ensure you entered the correct name.",
		}
	}

	if !e.phoneMatches(msg.SenderPhoneDigits, clientPhone) {
		return Outcome{
			Status:  StatusNotApproved,
			Message: "Phone number verification failed. Please check your mobile number.",
		}
	}

	record := &models.PaymentVerification{
		ID:                 uuid.New(),
		TxID:               txid,
		ClientName:         clientName,
		ClientPhone:        clientPhone,
		VerifiedAmount:     paid,
		VerificationStatus: string(StatusApproved),
		CreatedAt:          time.Now(),
	}
	if err := e.verifications.Save(record); err != nil {
		return Outcome{Status: StatusError, Message: "Failed to record payment verification."}
	}

	return Outcome{
		Status:  StatusApproved,
		Message: fmt.Sprintf("Payment verified successfully! Amount received: %d RWF", paid),
		Amount:  &paid,
	}
}

// parseStoredAmount turns a stored amount string into whole RWF. It accepts
// both the canonical digits form ("5,000") and legacy rows that kept the
// currency suffix ("5,000 RWF").
func parseStoredAmount(amount string) (int64, error) {
	s := strings.ReplaceAll(amount, " RWF", "")
	s = strings.ReplaceAll(s, ",", "")
	s = strings.TrimSpace(s)
	return strconv.ParseInt(s, 10, 64)
}

// nameMatches compares the SMS sender name with the claimed name,
// case-insensitive and trimmed. Either containing the other passes. An
// empty stored name always fails.
func nameMatches(storedName, claimedName string) bool {
	stored := strings.ToLower(strings.TrimSpace(storedName))
	claimed := strings.ToLower(strings.TrimSpace(claimedName))
	if stored == "" {
		return false
	}
	return strings.Contains(stored, claimed) || strings.Contains(claimed, stored)
}

// phoneMatches checks the claimed phone's trailing digits against the
// masked digits from the SMS, honoring the configured leniency policy.
func (e *Engine) phoneMatches(storedDigits, claimedPhone string) bool {
	if e.phonePolicy == PhoneOff {
		return true
	}
	if storedDigits == "" {
		return e.phonePolicy != PhoneRequired
	}

	claimed := strings.NewReplacer("+", "", " ", "", "-", "").Replace(claimedPhone)
	claimedSuffix := lastN(claimed, 3)
	storedSuffix := lastN(storedDigits, 2)
	return strings.HasSuffix(claimedSuffix, storedSuffix)
}

func lastN(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[len(s)-n:]
}
