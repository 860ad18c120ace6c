package enrollment

import (
	stripe "github.com/stripe/stripe-go/v81"

	"github.com/dpak1999/cognitionis-server/pkg/utils"
	"github.com/gin-gonic/gin"
)

// ReconcilePayment checks the live status of the caller's in-flight checkout
// session. A paid session grants access and clears the snapshot in a single
// document update. An unpaid session leaves the snapshot for a retry and
// returns success=false without raising an error.
func ReconcilePayment(c *gin.Context) {
	user, course, ok := loadUserAndCourse(c)
	if !ok {
		return
	}

	// Covers the replay after a successful reconcile already cleared it
	if user.StripeSession == nil || user.StripeSession.SessionID == "" {
		utils.FullyResponse(c, 400, "No checkout session in progress", utils.ErrNoCheckoutSession, nil)
		return
	}

	session, err := getCheckoutSession(user.StripeSession.SessionID)
	if err != nil {
		utils.ServerErrorResponse(c, 500, "Error fetching checkout session", utils.ErrStripeFailed, err)
		return
	}

	if session.PaymentStatus != stripe.CheckoutSessionPaymentStatusPaid {
		utils.FullyResponse(c, 200, "Payment not completed", nil, gin.H{
			"success": false,
			"course":  course,
		})
		return
	}

	if err := enrollAndClearSession(user.ID, course.ID); err != nil {
		utils.ServerErrorResponse(c, 500, "Error granting course access", utils.ErrSaveData, err)
		return
	}

	utils.FullyResponse(c, 200, "Payment confirmed", nil, gin.H{
		"success": true,
		"course":  course,
	})
}
