package instructor

import (
	"github.com/dpak1999/cognitionis-server/app/models"
	"github.com/dpak1999/cognitionis-server/app/queries"
	"github.com/dpak1999/cognitionis-server/pkg/payments"
	"github.com/dpak1999/cognitionis-server/pkg/utils"
	"github.com/gin-gonic/gin"
)

// GetAccountStatus re-checks the connected account and grants the
// Instructor role once charges are enabled
func GetAccountStatus(c *gin.Context) {
	userID, err := utils.GetUserIDFromContext(c)
	if err != nil {
		utils.FullyResponse(c, 403, "UserID not found in context", utils.ErrUserIDNotFound, nil)
		return
	}

	user, err := queries.GetUserQueueByID(userID)
	if err != nil {
		utils.ServerErrorResponse(c, 500, "Error fetching user", utils.ErrGetData, err)
		return
	}

	if user.StripeAccountID == "" {
		utils.FullyResponse(c, 400, "No payment account to check, onboard first", utils.ErrNoStripeAccount, nil)
		return
	}

	account, err := payments.GetAccount(user.StripeAccountID)
	if err != nil {
		utils.ServerErrorResponse(c, 500, "Error fetching payment account", utils.ErrStripeFailed, err)
		return
	}

	if !account.ChargesEnabled {
		utils.FullyResponse(c, 200, "Onboarding not finished yet", nil, gin.H{"charges_enabled": false})
		return
	}

	seller := models.StripeSeller{
		AccountID:      account.ID,
		ChargesEnabled: account.ChargesEnabled,
	}
	if err := queries.SetStripeSellerQueue(user.ID, seller); err != nil {
		utils.ServerErrorResponse(c, 500, "Error saving seller snapshot", utils.ErrSaveData, err)
		return
	}

	if err := queries.AddUserRoleQueue(user.ID, "Instructor"); err != nil {
		utils.ServerErrorResponse(c, 500, "Error granting instructor role", utils.ErrSaveData, err)
		return
	}

	updated, err := queries.GetUserQueueByID(user.ID)
	if err != nil {
		utils.ServerErrorResponse(c, 500, "Error fetching user", utils.ErrGetData, err)
		return
	}

	utils.FullyResponse(c, 200, "Instructor onboarding complete", nil, updated.Sanitize())
}

// CurrentInstructor confirms the caller holds the Instructor role
func CurrentInstructor(c *gin.Context) {
	userID, err := utils.GetUserIDFromContext(c)
	if err != nil {
		utils.FullyResponse(c, 403, "UserID not found in context", utils.ErrUserIDNotFound, nil)
		return
	}

	user, err := queries.GetUserQueueByID(userID)
	if err != nil {
		utils.ServerErrorResponse(c, 500, "Error fetching user", utils.ErrGetData, err)
		return
	}

	if !user.HasRole("Instructor") {
		utils.FullyResponse(c, 403, "Instructor role required", utils.ErrNotInstructor, nil)
		return
	}

	utils.FullyResponse(c, 200, "Current instructor", nil, user.Sanitize())
}
