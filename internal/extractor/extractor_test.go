package extractor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleSMS = "You have received 5,000 RWF from Jane Doe (***56) TxId:12345 at 2024-01-01 10:00:00"

func TestExtractRoundTrip(t *testing.T) {
	f := Extract(sampleSMS)

	assert.Equal(t, "12345", f.TxID)
	assert.Equal(t, "5,000", f.Amount)
	assert.Equal(t, "Jane Doe", f.SenderName)
	assert.Equal(t, "56", f.PhoneDigits)
	require.NotNil(t, f.Timestamp)
	assert.Equal(t, "2024-01-01 10:00:00", *f.Timestamp)
}

func TestExtractTxID(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{"labelled with colon", "Payment TxId: 98765 received", "98765"},
		{"labelled no separator", "TxId98765", "98765"},
		{"case insensitive", "txid: 4321", "4321"},
		{"momo marker fallback", "*161*TxId:777888*R*", "777888"},
		{"missing", "You have received 5000 RWF", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Extract(tt.text).TxID)
		})
	}
}

func TestExtractAmount(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{"with thousands commas", "received 1,250,000 RWF today", "1,250,000"},
		{"plain digits", "sent 700 RWF", "700"},
		{"no space before unit", "sent 700RWF", "700"},
		{"currency code is case sensitive", "sent 700 rwf", ""},
		{"no amount", "hello there", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Extract(tt.text).Amount)
		})
	}
}

func TestExtractSenderName(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{"simple name", "from John Smith (***23)", "John Smith"},
		{"trailing space trimmed", "from Alice  (***45)", "Alice"},
		{"no paren terminator", "from John Smith", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Extract(tt.text).SenderName)
		})
	}
}

func TestExtractTimestampAbsentIsNil(t *testing.T) {
	f := Extract("You have received 5000 RWF from John (***12)")
	assert.Nil(t, f.Timestamp)
}

func TestExtractPhoneDigits(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{"two digits", "from Jane (***56)", "56"},
		{"three digits", "from Jane (****456)", "456"},
		{"unmasked paren group", "from Jane (56)", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Extract(tt.text).PhoneDigits)
		})
	}
}

// Extraction is total: no input yields anything but empty defaults.
func TestExtractNeverFails(t *testing.T) {
	inputs := []string{
		"",
		"   ",
		"from (",
		"TxId:",
		"*161*TxId:*R*",
		", RWF (*** at ::",
		string([]byte{0xff, 0xfe, 0x00}),
	}

	for _, in := range inputs {
		f := Extract(in)
		assert.Empty(t, f.TxID)
		assert.Empty(t, f.Amount)
		assert.Empty(t, f.SenderName)
		assert.Empty(t, f.PhoneDigits)
		assert.Nil(t, f.Timestamp)
	}
}
