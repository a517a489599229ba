package constvars

// Validation messages mapper
var CustomValidationErrorMessages = map[string]string{
	"required":    "is required",
	"email":       "must be a valid email",
	"alphanum":    "must contain only alphanumeric characters",
	"min":         "must be at least %s characters long",
	"max":         "maximum at %s characters long",
	"eqfield":     "must match %s",
	"password":    "must be at least 8 characters long, contain at least one special character, and one uppercase letter",
	"numeric":     "must be a number",
	"len":         "must be %s characters long",
	"oneof":       "must be one of [%s]",
	"gt":          "must be greater than %s",
	"gte":         "must be greater than or equal to %s",
	"lt":          "must be less than %s",
	"lte":         "must be less than or equal to %s",
	"clinic_date": "must be a calendar date in YYYY-MM-DD form",
	"clinic_time": "must be a 30-minute-aligned time in HH:MM form",
	"urgency":     "must be one of 'normal', 'urgent' or 'emergency'",
}

// Tags that require parameter substitution
var TagsWithParams = map[string]bool{
	"min":     true,
	"max":     true,
	"len":     true,
	"eqfield": true,
	"gt":      true,
	"gte":     true,
	"lt":      true,
	"lte":     true,
	"oneof":   true,
}

// Error messages for clients
const (
	ErrClientPasswordsDoNotMatch           = "passwords do not match"
	ErrClientEmailAlreadyExists            = "email already used"
	ErrClientCannotProcessRequest          = "failed to process your request"
	ErrClientInvalidEmailOrPassword        = "invalid email or password"
	ErrClientSomethingWrongWithApplication = "there is something wrong with the application"
	ErrClientServerLongRespond             = "the app taking too long to respond"
	ErrClientNotAuthorized                 = "you can't access this feature"
	ErrClientNotLoggedIn                   = "your session ended, please login again"
	ErrClientProfileNotFound               = "patient profile not found"
	ErrClientAppointmentNotFound           = "appointment not found"
	ErrClientSlotNotAvailable              = "the requested time slot is not available"
	ErrClientClinicClosed                  = "the clinic is closed on the requested date"
	ErrClientAppointmentAlreadyFinal       = "the appointment can no longer be changed"
	ErrClientAppointmentDateInPast         = "the requested date is already in the past"
	ErrClientHealthPlanNotFound            = "no health plan has been created for this patient"
	ErrClientProgressDateInFuture          = "progress cannot be recorded for a future date"
	ErrClientUnknownTreatmentCode          = "unknown treatment code"
	ErrClientContentNotFound               = "educational content not found"
	ErrClientFileTooLarge                  = "the uploaded file exceeds the allowed size"
)

// Error messages for developers
const (
	ErrDevInvalidInput             = "invalid input"
	ErrDevValidationFailed         = "request validation failed"
	ErrDevCannotParseJSON          = "cannot parse JSON into struct or other data types"
	ErrDevCannotParseDate          = "cannot parse the requested date"
	ErrDevCannotMarshalJSON        = "cannot convert struct or other data types to JSON"
	ErrDevCannotParseMultipartForm = "cannot parse multipart form body"
	ErrDevServerProcess            = "server cannot process the request"
	ErrDevServerDeadlineExceeded   = "server deadline exceeded"
	ErrDevMissingRequestID         = "request id missing from context"
	ErrDevMissingSessionData       = "session data missing from context"

	ErrDevFailedToHashPassword          = "failed to hash password"
	ErrDevInvalidCredentials            = "invalid credentials"
	ErrDevEmailAlreadyExists            = "email already exists in database"
	ErrDevPasswordsDoNotMatch           = "password and retype password do not match"
	ErrDevAuthTokenMissing              = "authorization token is missing"
	ErrDevAuthTokenInvalidOrExpired     = "authorization token is invalid or expired"
	ErrDevAuthGenerateToken             = "failed to generate JWT token"
	ErrDevAuthSigningMethod             = "unexpected JWT signing method"
	ErrDevAuthInvalidSession            = "session not found or expired"
	ErrDevRoleTypeDoesntMatch           = "user role does not allow this operation"
	ErrDevRedisStoreSession             = "failed to store session data in redis"
	ErrDevProfileNotFound               = "profile document not found for the given id"
	ErrDevAppointmentNotFound           = "appointment id not present in the profile's list"
	ErrDevAppointmentInvalidTransition  = "appointment status transition not allowed"
	ErrDevSlotTaken                     = "slot already present in booked set"
	ErrDevSlotOutsideWorkingWindows     = "slot is outside the clinic working windows"
	ErrDevClinicClosedOnWeekday         = "date falls on a non-working weekday"
	ErrDevAppointmentDateInPast         = "appointment date is before today"
	ErrDevHealthPlanMissing             = "profile has no health plan"
	ErrDevProgressDateInFuture          = "progress date is strictly after today"
	ErrDevTreatmentCodeUnknown          = "treatment code not present in catalog"
	ErrDevContentNotFound               = "educational content document not found"

	ErrDevDBFailedToFindDocument     = "failed to find document in mongoDB"
	ErrDevDBFailedToInsertDocument   = "failed to insert document to mongoDB"
	ErrDevDBFailedToUpdateDocument   = "failed to update document in mongoDB"
	ErrDevDBFailedToDeleteDocument   = "failed to delete document in mongoDB"
	ErrDevDBFailedToIterateDocuments = "failed to iterate documents from mongoDB"
	ErrDevDBStringNotObjectID        = "string is not a valid mongoDB ObjectID"
	ErrDevDBFailedToWatchDocument    = "failed to open change stream on mongoDB document"

	ErrDevRedisGetNoData      = "no data found in redis for key: %s"
	ErrDevRedisGetData        = "failed to get data from redis"
	ErrDevRedisSetData        = "failed to set data in redis"
	ErrDevRedisDeleteData     = "failed to delete data from redis"
	ErrDevRedisIncrementValue = "failed to increment value in redis"
	ErrDevRedisUnlock         = "failed to release redis lock"

	ErrDevRabbitMQPublishMessage = "failed to publish message to queue: %s"
	ErrDevRabbitMQConsumeQueue   = "failed to consume messages from queue: %s"

	ErrDevMinioFailedToCreateObject       = "failed to create object in bucket: %s"
	ErrDevMinioFailedToPresignObject      = "failed to presign object URL in bucket: %s"

	ErrDevSMTPSendEmail = "failed to send email via SMTP host: %s"
)
