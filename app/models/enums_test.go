package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParsePaymentStatus(t *testing.T) {
	for _, valid := range []string{"Paid", "Pending", "Overdue"} {
		status, err := ParsePaymentStatus(valid)
		assert.NoError(t, err)
		assert.Equal(t, PaymentStatus(valid), status)
		assert.True(t, status.Valid())
	}

	for _, invalid := range []string{"", "paid", "PAID", "Settled", "Refunded"} {
		_, err := ParsePaymentStatus(invalid)
		assert.Error(t, err, "status %q must be rejected", invalid)
	}
}

func TestParsePaymentMethod(t *testing.T) {
	for _, valid := range []string{"Cash", "Transfer", "Online"} {
		method, err := ParsePaymentMethod(valid)
		assert.NoError(t, err)
		assert.True(t, method.Valid())
	}

	for _, invalid := range []string{"", "cash", "Cheque", "Card"} {
		_, err := ParsePaymentMethod(invalid)
		assert.Error(t, err, "method %q must be rejected", invalid)
	}
}

func TestParseStudentStatus(t *testing.T) {
	for _, valid := range []string{"Active", "Inactive"} {
		status, err := ParseStudentStatus(valid)
		assert.NoError(t, err)
		assert.True(t, status.Valid())
	}

	for _, invalid := range []string{"", "active", "Suspended"} {
		_, err := ParseStudentStatus(invalid)
		assert.Error(t, err, "status %q must be rejected", invalid)
	}
}
