package enrollment

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPaymentAmount(t *testing.T) {
	assert.Equal(t, int64(999), PaymentAmount(9.99))
	assert.Equal(t, int64(0), PaymentAmount(0))
	assert.Equal(t, int64(100), PaymentAmount(1))

	// Rounded, not truncated
	assert.Equal(t, int64(1000), PaymentAmount(9.999))
	assert.Equal(t, int64(1999), PaymentAmount(19.99))
}

func TestPlatformFee(t *testing.T) {
	assert.Equal(t, int64(299), PlatformFee(999, 30))
	assert.Equal(t, int64(0), PlatformFee(0, 30))
	assert.Equal(t, int64(0), PlatformFee(999, 0))
	assert.Equal(t, int64(999), PlatformFee(999, 100))
}
