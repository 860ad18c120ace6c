package instructor

import (
	"github.com/dpak1999/cognitionis-server/app/queries"
	"github.com/dpak1999/cognitionis-server/pkg/payments"
	"github.com/dpak1999/cognitionis-server/pkg/utils"
	"github.com/gin-gonic/gin"
)

// MakeInstructor creates a connected Stripe account for the caller if they
// have none and returns the onboarding link
func MakeInstructor(c *gin.Context) {
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
		account, err := payments.CreateExpressAccount()
		if err != nil {
			utils.ServerErrorResponse(c, 500, "Error creating payment account", utils.ErrStripeFailed, err)
			return
		}

		if err := queries.SetStripeAccountQueue(user.ID, account.ID); err != nil {
			utils.ServerErrorResponse(c, 500, "Error saving payment account", utils.ErrSaveData, err)
			return
		}
		user.StripeAccountID = account.ID
	}

	link, err := payments.CreateAccountLink(user.StripeAccountID, utils.StripeRedirectURL)
	if err != nil {
		utils.ServerErrorResponse(c, 500, "Error creating onboarding link", utils.ErrStripeFailed, err)
		return
	}

	utils.FullyResponse(c, 200, "Onboarding link created", nil, gin.H{"url": link.URL})
}
