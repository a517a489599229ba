package constvars

const (
	LoggingRequestIDKey        = "request_id"
	LoggingOperationKey        = "operation"
	LoggingMethodKey           = "method"
	LoggingEndpointKey         = "endpoint"
	LoggingRemoteAddrKey       = "remote_addr"
	LoggingUserAgentKey        = "user_agent"
	LoggingQueryKey            = "query"
	LoggingStatusCodeKey       = "status_code"
	LoggingDurationKey         = "duration"
	LoggingSuccessKey          = "success"
	LoggingErrorTypeKey        = "error_type"
	LoggingSessionDataKey      = "session_data"
	LoggingEmailKey            = "email"
	LoggingUserIDKey           = "user_id"
	LoggingPatientIDKey        = "patient_id"
	LoggingAppointmentIDKey    = "appointment_id"
	LoggingAppointmentCountKey = "appointment_count"
	LoggingPaymentIDKey        = "payment_id"
	LoggingContentIDKey        = "content_id"
	LoggingResponseCountKey    = "response_count"
	LoggingRedisKey            = "redis_key"
	LoggingLockValueKey        = "lock_value"
	LoggingLockExpirationKey   = "lock_expiration"
	LoggingLockStoredValueKey  = "lock_stored_value"
	LoggingQueueKey            = "queue"
	LoggingDateKey             = "date"
)
