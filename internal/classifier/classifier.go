package classifier

import (
	"regexp"
	"strings"
)

// Status is the payment status read from an SMS.
type Status string

const (
	StatusSuccess Status = "success"
	StatusFailed  Status = "failed"
	StatusUnknown Status = "unknown"
)

// Result is the outcome of classifying one SMS body. Confidence is a
// heuristic evidence score in [0,1], not a calibrated probability.
type Result struct {
	IsPaymentRelated bool    `json:"is_payment_sms"`
	Status           Status  `json:"status"`
	Confidence       float64 `json:"confidence"`
}

// Classifier decides whether an SMS reports a mobile-money payment. The
// rule set is fixed at construction; a Classifier holds no per-call state
// and is safe for concurrent use.
type Classifier struct {
	successKeywords []string
	failureKeywords []string
	momoPatterns    []*regexp.Regexp
}

// New builds a Classifier with the Rwandan MoMo rule set.
func New() *Classifier {
	return &Classifier{
		successKeywords: []string{
			"received", "sent", "paid", "successful", "completed",
			"confirmed", "approved", "transaction", "transfer",
		},
		failureKeywords: []string{
			"failed", "declined", "insufficient", "pending",
			"cancelled", "error", "rejected",
		},
		momoPatterns: []*regexp.Regexp{
			regexp.MustCompile(`(?i)\*161\*TxId:\d+\*R\*`),
			regexp.MustCompile(`(?i)You have received \d+ RWF`),
			regexp.MustCompile(`(?i)You have sent \d+ RWF`),
		},
	}
}

// Classify gates the message on payment-relatedness, assigns a status and
// computes a confidence score. Failure keywords dominate success keywords
// when a message mentions both.
func (c *Classifier) Classify(text string) Result {
	res := Result{Status: StatusUnknown}
	res.Confidence = c.confidence(text)

	lower := strings.ToLower(text)
	res.IsPaymentRelated = c.matchesPattern(text) ||
		countHits(lower, c.successKeywords) > 0 ||
		countHits(lower, c.failureKeywords) > 0

	if !res.IsPaymentRelated {
		return res
	}

	switch {
	case countHits(lower, c.failureKeywords) > 0:
		res.Status = StatusFailed
	case countHits(lower, c.successKeywords) > 0:
		res.Status = StatusSuccess
	}
	return res
}

func (c *Classifier) matchesPattern(text string) bool {
	for _, p := range c.momoPatterns {
		if p.MatchString(text) {
			return true
		}
	}
	return false
}

// confidence adds 0.7 for a MoMo format hit (first pattern only) plus 0.1
// per keyword hit capped at 0.3, clamped to 1.0. Blank text scores 0.
func (c *Classifier) confidence(text string) float64 {
	if strings.TrimSpace(text) == "" {
		return 0.0
	}

	score := 0.0
	if c.matchesPattern(text) {
		score += 0.7
	}

	lower := strings.ToLower(text)
	hits := countHits(lower, c.successKeywords) + countHits(lower, c.failureKeywords)
	keywordScore := float64(hits) * 0.1
	if keywordScore > 0.3 {
		keywordScore = 0.3
	}
	score += keywordScore

	if score > 1.0 {
		score = 1.0
	}
	return score
}

func countHits(lowerText string, keywords []string) int {
	hits := 0
	for _, kw := range keywords {
		if strings.Contains(lowerText, kw) {
			hits++
		}
	}
	return hits
}
