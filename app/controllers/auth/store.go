package auth

import (
	"github.com/dpak1999/cognitionis-server/app/queries"
)

// Persistence collaborators, injectable so the handlers can run
// against fakes.
var (
	getUserByEmail       = queries.GetUserQueueByEmail
	getUserByID          = queries.GetUserQueueByID
	createUser           = queries.CreateUserQueue
	setPasswordResetCode = queries.SetPasswordResetCodeQueue
	resetPassword        = queries.ResetPasswordQueue
)
