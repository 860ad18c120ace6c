package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHasRole(t *testing.T) {
	user := User{Roles: []string{"Learner"}}
	assert.True(t, user.HasRole("Learner"))
	assert.False(t, user.HasRole("Instructor"))

	user.Roles = append(user.Roles, "Instructor")
	assert.True(t, user.HasRole("Instructor"))

	empty := User{}
	assert.False(t, empty.HasRole("Learner"))
}

func TestIsEnrolled(t *testing.T) {
	user := User{Courses: []uint64{10, 20}}
	assert.True(t, user.IsEnrolled(10))
	assert.False(t, user.IsEnrolled(30))

	assert.False(t, User{}.IsEnrolled(10))
}

func TestSanitize(t *testing.T) {
	user := User{
		Name:              "Ann",
		Password:          "$2a$10$hash",
		PasswordResetCode: "AB12CD",
	}

	clean := user.Sanitize()
	assert.Empty(t, clean.Password)
	assert.Empty(t, clean.PasswordResetCode)
	assert.Equal(t, "Ann", clean.Name)

	// Value receiver, the original is untouched
	assert.Equal(t, "$2a$10$hash", user.Password)
}
