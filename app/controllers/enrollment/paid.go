package enrollment

import (
	"fmt"

	"github.com/dpak1999/cognitionis-server/app/models"
	"github.com/dpak1999/cognitionis-server/pkg/payments"
	"github.com/dpak1999/cognitionis-server/pkg/utils"
	"github.com/gin-gonic/gin"
)

// PaidEnrollment starts a checkout for a paid course. On a free course this
// is a silent no-op mirroring the FreeEnrollment guard.
func PaidEnrollment(c *gin.Context) {
	user, course, ok := loadUserAndCourse(c)
	if !ok {
		return
	}

	if !course.Paid {
		utils.FullyResponse(c, 200, "Not a paid course", nil, gin.H{"enrolled": false})
		return
	}

	instructor, err := getUserByID(course.InstructorID)
	if err != nil {
		utils.ServerErrorResponse(c, 500, "Error fetching instructor", utils.ErrGetData, err)
		return
	}
	if instructor.StripeAccountID == "" {
		utils.FullyResponse(c, 400, "Instructor cannot accept payments yet", utils.ErrNoStripeAccount, nil)
		return
	}

	amount := PaymentAmount(course.Price)
	fee := PlatformFee(amount, utils.PlatformFeePercent)

	session, err := createCheckoutSession(payments.CheckoutParams{
		CourseName:     course.Name,
		Amount:         amount,
		ApplicationFee: fee,
		Destination:    instructor.StripeAccountID,
		SuccessURL:     fmt.Sprintf("%s/stripe-success/%s", utils.FrontendURL, utils.Uint64ToStr(course.ID)),
		CancelURL:      fmt.Sprintf("%s/stripe-cancel", utils.FrontendURL),
	})
	if err != nil {
		utils.ServerErrorResponse(c, 500, "Error creating checkout session", utils.ErrStripeFailed, err)
		return
	}

	// One in-flight snapshot per user, a newer checkout overwrites it
	snapshot := models.CheckoutSnapshot{
		SessionID:     session.ID,
		PaymentStatus: string(session.PaymentStatus),
		CourseID:      course.ID,
	}
	if err := setCheckoutSession(user.ID, snapshot); err != nil {
		utils.ServerErrorResponse(c, 500, "Error saving checkout session", utils.ErrSaveData, err)
		return
	}

	utils.FullyResponse(c, 200, "Checkout session created", nil, gin.H{"session_id": session.ID})
}
