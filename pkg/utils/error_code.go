package utils

// Authentication errors
const (
	ErrAuthenticationKeyNotFound = "authentication_key_not_found"
	ErrUnauthorized              = "unauthorized"
	ErrTokenExpired              = "token_expired"
	ErrInvalidEmail              = "invalid_email"
	ErrInvalidPassword           = "invalid_password"
	ErrEmailAlreadyUsed          = "email_already_used"
	ErrInvalidResetCode          = "invalid_reset_code"
)

// Request errors
const (
	ErrBadRequest       = "bad_request"
	ErrUserIDNotFound   = "user_id_not_found"
	ErrCSRFTokenInvalid = "csrf_token_invalid"
)

// Permission errors
const (
	ErrNotInstructor  = "not_instructor"
	ErrNotCourseOwner = "not_course_owner"
)

// Courses-releated errors
const (
	ErrMissingCourseID = "missing_course_id"
	ErrCourseNotExist  = "course_not_exist"
	ErrCourseSlugTaken = "course_slug_taken"
	ErrLessonNotExist  = "lesson_not_exist"
	ErrImageRequired   = "image_required"
	ErrInvalidImage    = "invalid_image"
	ErrImageTooLarge   = "image_too_large"
	ErrVideoRequired   = "video_required"
	ErrVideoTooLarge   = "video_too_large"
	ErrS3UploadFailed  = "s3_upload_failed"
	ErrS3DeleteFailed  = "s3_delete_failed"
)

// Enrollment errors
const (
	ErrNoCheckoutSession = "no_checkout_session"
	ErrStripeFailed      = "stripe_request_failed"
	ErrNoStripeAccount   = "no_stripe_account"
)

// Database errors
const (
	ErrSaveData = "error_save_data"
	ErrGetData  = "error_get_data"
)

// Internal errors
const (
	ErrHashData      = "hash_data_failed"
	ErrSendEmail     = "send_email_failed"
	ErrGenerateToken = "generate_token_failed"
	ErrStoreRedis    = "store_redis_failed"
)
