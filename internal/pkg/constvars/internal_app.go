package constvars

type ContextKey string

const (
	CONTEXT_REQUEST_ID_KEY           ContextKey = "request_id"
	CONTEXT_IS_CLIENT_REQUEST_ID_KEY ContextKey = "is_client_request_id"
	CONTEXT_SESSION_DATA_KEY         ContextKey = "session_data"
)

const (
	MongoCollectionUsers              = "users"
	MongoCollectionProfiles           = "profiles"
	MongoCollectionTreatments         = "treatments"
	MongoCollectionEducationalContent = "educational_content"
)

const (
	RoleDoctor  = "doctor"
	RolePatient = "patient"
)

const (
	AppointmentStatusPending   = "pending"
	AppointmentStatusConfirmed = "confirmed"
	AppointmentStatusCompleted = "completed"
	AppointmentStatusCancelled = "cancelled"
)

const (
	UrgencyNormal    = "normal"
	UrgencyUrgent    = "urgent"
	UrgencyEmergency = "emergency"
)

const (
	PaymentMethodCash      = "cash"
	PaymentMethodCard      = "card"
	PaymentMethodInsurance = "insurance"

	PaymentStatusCompleted = "completed"
	PaymentStatusPending   = "pending"
	PaymentStatusRefunded  = "refunded"

	InsuranceClaimStatusPending  = "pending"
	InsuranceClaimStatusApproved = "approved"
	InsuranceClaimStatusRejected = "rejected"
)

const (
	ContentStatusDraft     = "draft"
	ContentStatusPublished = "published"
	ContentStatusArchived  = "archived"
)

const (
	RoutinePeriodMorning = "morning"
	RoutinePeriodEvening = "evening"
)

// Calendar date and wall-clock formats used across the API surface.
const (
	ClinicDateLayout = "2006-01-02"
	ClinicTimeLayout = "15:04"
)

const (
	AppPaginationUrlFormat = "%s?page=%d&page_size=%d"
)
