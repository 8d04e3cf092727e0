package extractor

import (
	"regexp"
	"strings"
)

// Fields holds the structured payment data pulled out of a raw SMS body.
// Unmatched fields stay empty; Timestamp is nil when the message carries
// no timestamp at all.
type Fields struct {
	TxID        string
	Amount      string
	SenderName  string
	Timestamp   *string
	PhoneDigits string
}

var (
	// TxId: 12345 or the standard *161*TxId:12345*R* MoMo marker
	txidPattern         = regexp.MustCompile(`(?i)TxId[:\s]*(\d+)`)
	txidFallbackPattern = regexp.MustCompile(`\*161\*TxId:(\d+)\*R\*`)

	// 5,000 RWF or 5000 RWF; the currency code is case-sensitive
	amountPattern = regexp.MustCompile(`(\d{1,3}(?:,\d{3})*|\d+)\s*RWF`)

	// "from Jane Doe (" — name between "from " and the opening paren
	senderPattern = regexp.MustCompile(`from ([A-Za-z ]+) \(`)

	// "at 2024-01-01 10:00:00"
	timestampPattern = regexp.MustCompile(`at (\d{4}-\d{2}-\d{2} \d{2}:\d{2}:\d{2})`)

	// masked phone, e.g. (***56) or (***456)
	phonePattern = regexp.MustCompile(`\(\*+(\d{2,3})\)`)
)

// Extract pulls all payment fields out of text. Each field is matched
// independently; no input can make it fail. The canonical amount form is
// the digit group without the currency suffix ("5,000", not "5,000 RWF").
func Extract(text string) Fields {
	f := Fields{}

	if m := txidPattern.FindStringSubmatch(text); m != nil {
		f.TxID = m[1]
	} else if m := txidFallbackPattern.FindStringSubmatch(text); m != nil {
		f.TxID = m[1]
	}

	if m := amountPattern.FindStringSubmatch(text); m != nil {
		f.Amount = m[1]
	}

	if m := senderPattern.FindStringSubmatch(text); m != nil {
		f.SenderName = strings.TrimSpace(m[1])
	}

	if m := timestampPattern.FindStringSubmatch(text); m != nil {
		ts := m[1]
		f.Timestamp = &ts
	}

	if m := phonePattern.FindStringSubmatch(text); m != nil {
		f.PhoneDigits = m[1]
	}

	return f
}
