package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPaymentStatus_IsTerminal(t *testing.T) {
	terminal := []PaymentStatus{
		PaymentStatusSuccess,
		PaymentStatusExpired,
		PaymentStatusTimeout,
		PaymentStatusError,
	}
	for _, s := range terminal {
		assert.True(t, s.IsTerminal(), "expected %s to be terminal", s)
	}

	assert.False(t, PaymentStatusNone.IsTerminal())
	assert.False(t, PaymentStatusProcessing.IsTerminal())
}
