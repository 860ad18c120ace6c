package utils

import "os"

var (
	// Session cookie / JWT lifetime in days
	SessionExpiresDays int

	// Percent of each paid enrollment kept by the platform
	PlatformFeePercent int

	FrontendURL string
	BackendURL  string

	EmailFrom         string
	StripeRedirectURL string

	CourseImageBucket string
	CourseVideoBucket string
)

// Init some useful variables
func InitVariables() {
	SessionExpiresDays = Atoi(os.Getenv("SESSION_EXPIRES_DAYS"))
	if SessionExpiresDays == 0 {
		SessionExpiresDays = 10
	}

	PlatformFeePercent = Atoi(os.Getenv("PLATFORM_FEE_PERCENT"))
	if PlatformFeePercent == 0 {
		PlatformFeePercent = 30
	}

	FrontendURL = os.Getenv("FRONTEND_URL")
	BackendURL = os.Getenv("BACKEND_URL")

	EmailFrom = os.Getenv("EMAIL_FROM")
	StripeRedirectURL = os.Getenv("STRIPE_REDIRECT_URL")

	CourseImageBucket = os.Getenv("S3_IMAGE_BUCKET")
	if CourseImageBucket == "" {
		CourseImageBucket = "cognitionis-bucket"
	}
	CourseVideoBucket = os.Getenv("S3_VIDEO_BUCKET")
	if CourseVideoBucket == "" {
		CourseVideoBucket = "cognitionis-video"
	}
}
