package models

import "time"

// Snapshot of the instructor's connected Stripe account state
type StripeSeller struct {
	AccountID      string `json:"account_id" bson:"account_id"`
	ChargesEnabled bool   `json:"charges_enabled" bson:"charges_enabled"`
}

// Snapshot of an in-flight checkout session. Only one is tracked per user;
// starting a second paid enrollment overwrites it.
type CheckoutSnapshot struct {
	SessionID     string `json:"session_id" bson:"session_id"`
	PaymentStatus string `json:"payment_status" bson:"payment_status"`
	CourseID      uint64 `json:"course_id" bson:"course_id"`
}

type User struct {
	ID                uint64            `json:"id" bson:"id"`
	Name              string            `json:"name" bson:"name"`
	Email             string            `json:"email" bson:"email"` // Unique
	Password          string            `json:"password,omitempty" bson:"password"` // Hashed password
	Roles             []string          `json:"roles" bson:"roles"`
	Courses           []uint64          `json:"courses" bson:"courses"` // Enrolled course IDs
	PasswordResetCode string            `json:"-" bson:"password_reset_code,omitempty"`
	StripeAccountID   string            `json:"stripe_account_id,omitempty" bson:"stripe_account_id,omitempty"`
	StripeSeller      *StripeSeller     `json:"stripe_seller,omitempty" bson:"stripe_seller,omitempty"`
	StripeSession     *CheckoutSnapshot `json:"stripe_session,omitempty" bson:"stripe_session,omitempty"`
	CreatedAt         time.Time         `json:"created_at" bson:"created_at"`
	UpdatedAt         time.Time         `json:"updated_at" bson:"updated_at"`
}

// HasRole reports whether the user carries the given role
func (u User) HasRole(role string) bool {
	for _, r := range u.Roles {
		if r == role {
			return true
		}
	}
	return false
}

// IsEnrolled reports whether the course ID is in the enrolled set
func (u User) IsEnrolled(courseID uint64) bool {
	for _, id := range u.Courses {
		if id == courseID {
			return true
		}
	}
	return false
}

// Sanitize strips the credential before the user record leaves the API
func (u User) Sanitize() User {
	u.Password = ""
	u.PasswordResetCode = ""
	return u
}
