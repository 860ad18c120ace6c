package enrollment

import (
	"github.com/dpak1999/cognitionis-server/app/queries"
	"github.com/dpak1999/cognitionis-server/pkg/payments"
)

// Persistence and payment collaborators, injectable so the enrollment
// guards can run against fakes.
var (
	getUserByID           = queries.GetUserQueueByID
	getCourseByID         = queries.GetCourseQueueByID
	enrollUser            = queries.EnrollUserQueue
	enrollAndClearSession = queries.EnrollAndClearSessionQueue
	setCheckoutSession    = queries.SetCheckoutSessionQueue
	markLessonCompleted   = queries.MarkLessonCompletedQueue
	getCompletion         = queries.GetCompletionQueue
	createCheckoutSession = payments.CreateCheckoutSession
	getCheckoutSession    = payments.GetCheckoutSession
)
