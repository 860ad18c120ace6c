package enrollment

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/dpak1999/cognitionis-server/app/models"
	"github.com/dpak1999/cognitionis-server/app/queries"
	"github.com/dpak1999/cognitionis-server/pkg/payments"
	"github.com/dpak1999/cognitionis-server/pkg/utils"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	stripe "github.com/stripe/stripe-go/v81"
)

type apiResponse struct {
	Message   string                 `json:"message"`
	ErrorCode string                 `json:"error_code"`
	Data      map[string]interface{} `json:"data"`
}

func resetStores(t *testing.T) {
	t.Cleanup(func() {
		getUserByID = queries.GetUserQueueByID
		getCourseByID = queries.GetCourseQueueByID
		enrollUser = queries.EnrollUserQueue
		enrollAndClearSession = queries.EnrollAndClearSessionQueue
		setCheckoutSession = queries.SetCheckoutSessionQueue
		createCheckoutSession = payments.CreateCheckoutSession
		getCheckoutSession = payments.GetCheckoutSession
	})
}

func performEnrollment(t *testing.T, handler gin.HandlerFunc, method string, userID uint64, courseID string) (*httptest.ResponseRecorder, apiResponse) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Handle(method, "/:courseID", func(c *gin.Context) { c.Set("userID", userID) }, handler)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, "/"+courseID, nil)
	r.ServeHTTP(w, req)

	var resp apiResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return w, resp
}

func TestFreeEnrollmentPaidCourseIsNoOp(t *testing.T) {
	resetStores(t)

	getUserByID = func(id uint64) (models.User, error) {
		return models.User{ID: 100}, nil
	}
	getCourseByID = func(id uint64) (models.Course, error) {
		return models.Course{ID: 200, Name: "Go Basics", Slug: "go-basics", Paid: true, Published: true}, nil
	}
	enrolled := false
	enrollUser = func(userID, courseID uint64) error {
		enrolled = true
		return nil
	}

	w, resp := performEnrollment(t, FreeEnrollment, http.MethodPost, 100, "200")

	assert.Equal(t, 200, w.Code)
	assert.Equal(t, "Not a free course", resp.Message)
	assert.Equal(t, false, resp.Data["enrolled"])
	assert.False(t, enrolled, "paid course must not trigger an enrollment write")
}

func TestFreeEnrollmentIsIdempotent(t *testing.T) {
	resetStores(t)

	course := models.Course{ID: 200, Name: "Go Basics", Slug: "go-basics", Paid: false, Published: true}
	enrolledSet := map[uint64]struct{}{}

	getUserByID = func(id uint64) (models.User, error) {
		user := models.User{ID: 100}
		for courseID := range enrolledSet {
			user.Courses = append(user.Courses, courseID)
		}
		return user, nil
	}
	getCourseByID = func(id uint64) (models.Course, error) {
		return course, nil
	}
	enrollUser = func(userID, courseID uint64) error {
		enrolledSet[courseID] = struct{}{}
		return nil
	}

	for i := 0; i < 2; i++ {
		w, resp := performEnrollment(t, FreeEnrollment, http.MethodPost, 100, "200")
		assert.Equal(t, 200, w.Code)
		assert.Equal(t, true, resp.Data["enrolled"])
	}
	assert.Len(t, enrolledSet, 1)
}

func TestPaidEnrollmentFreeCourseIsNoOp(t *testing.T) {
	resetStores(t)

	getUserByID = func(id uint64) (models.User, error) {
		return models.User{ID: 100}, nil
	}
	getCourseByID = func(id uint64) (models.Course, error) {
		return models.Course{ID: 200, Name: "Go Basics", Slug: "go-basics", Paid: false, Published: true}, nil
	}
	checkoutStarted := false
	createCheckoutSession = func(p payments.CheckoutParams) (*stripe.CheckoutSession, error) {
		checkoutStarted = true
		return &stripe.CheckoutSession{ID: "cs_test_1"}, nil
	}

	w, resp := performEnrollment(t, PaidEnrollment, http.MethodPost, 100, "200")

	assert.Equal(t, 200, w.Code)
	assert.Equal(t, "Not a paid course", resp.Message)
	assert.Equal(t, false, resp.Data["enrolled"])
	assert.False(t, checkoutStarted, "free course must not open a checkout session")
}

func TestReconcileWithoutSession(t *testing.T) {
	resetStores(t)

	getUserByID = func(id uint64) (models.User, error) {
		return models.User{ID: 100}, nil
	}
	getCourseByID = func(id uint64) (models.Course, error) {
		return models.Course{ID: 200, Name: "Go Basics", Slug: "go-basics", Paid: true, Published: true}, nil
	}

	w, resp := performEnrollment(t, ReconcilePayment, http.MethodGet, 100, "200")

	assert.Equal(t, 400, w.Code)
	assert.Equal(t, utils.ErrNoCheckoutSession, resp.ErrorCode)
}

func TestReconcileReplayAfterSuccess(t *testing.T) {
	resetStores(t)

	user := models.User{
		ID:            100,
		StripeSession: &models.CheckoutSnapshot{SessionID: "cs_test_1", PaymentStatus: "unpaid", CourseID: 200},
	}
	getUserByID = func(id uint64) (models.User, error) {
		return user, nil
	}
	getCourseByID = func(id uint64) (models.Course, error) {
		return models.Course{ID: 200, Name: "Go Basics", Slug: "go-basics", Paid: true, Published: true}, nil
	}
	getCheckoutSession = func(sessionID string) (*stripe.CheckoutSession, error) {
		return &stripe.CheckoutSession{ID: sessionID, PaymentStatus: stripe.CheckoutSessionPaymentStatusPaid}, nil
	}
	grants := 0
	enrollAndClearSession = func(userID, courseID uint64) error {
		grants++
		user.Courses = append(user.Courses, courseID)
		user.StripeSession = nil
		return nil
	}

	w, resp := performEnrollment(t, ReconcilePayment, http.MethodGet, 100, "200")
	assert.Equal(t, 200, w.Code)
	assert.Equal(t, true, resp.Data["success"])
	assert.Equal(t, 1, grants)

	// Snapshot is gone, hitting the success URL again must not re-grant
	w, resp = performEnrollment(t, ReconcilePayment, http.MethodGet, 100, "200")
	assert.Equal(t, 400, w.Code)
	assert.Equal(t, utils.ErrNoCheckoutSession, resp.ErrorCode)
	assert.Equal(t, 1, grants)
}

func TestReconcileUnpaidKeepsSession(t *testing.T) {
	resetStores(t)

	getUserByID = func(id uint64) (models.User, error) {
		return models.User{
			ID:            100,
			StripeSession: &models.CheckoutSnapshot{SessionID: "cs_test_1", PaymentStatus: "unpaid", CourseID: 200},
		}, nil
	}
	getCourseByID = func(id uint64) (models.Course, error) {
		return models.Course{ID: 200, Name: "Go Basics", Slug: "go-basics", Paid: true, Published: true}, nil
	}
	getCheckoutSession = func(sessionID string) (*stripe.CheckoutSession, error) {
		return &stripe.CheckoutSession{ID: sessionID, PaymentStatus: stripe.CheckoutSessionPaymentStatusUnpaid}, nil
	}
	granted := false
	enrollAndClearSession = func(userID, courseID uint64) error {
		granted = true
		return nil
	}

	w, resp := performEnrollment(t, ReconcilePayment, http.MethodGet, 100, "200")

	assert.Equal(t, 200, w.Code)
	assert.Equal(t, false, resp.Data["success"])
	assert.False(t, granted, "an unpaid session must not grant access")
}
