package enrollment

import "math"

// PaymentAmount converts a course price to minor currency units
func PaymentAmount(price float64) int64 {
	return int64(math.Round(price * 100))
}

// PlatformFee computes the platform cut of an amount in minor units
func PlatformFee(amount int64, feePercent int) int64 {
	return amount * int64(feePercent) / 100
}
