package constvars

const (
	// Generic messages
	ResponseUnknown = "unknown"
	ResponseSuccess = "success"

	// Auth messages
	RegisterSuccess = "account created successfully"
	LoginSuccess    = "successfully login"
	LogoutSuccess   = "successfully logout"

	// Profile messages
	ProfileGetSuccess        = "get profile successfully"
	PatientListSuccess       = "get patient roster successfully"
	MedicalRecordAddSuccess  = "medical record added successfully"
	MedicalHistoryGetSuccess = "get medical history successfully"

	// Appointment messages
	SlotListSuccess               = "get available slots successfully"
	AppointmentListSuccess        = "get appointments successfully"
	AppointmentCreateSuccess      = "appointment created successfully"
	AppointmentConfirmSuccess     = "appointment confirmed successfully"
	AppointmentCancelSuccess      = "appointment cancelled successfully"
	AppointmentRescheduleSuccess  = "appointment rescheduled successfully"
	AppointmentCompleteSuccess    = "appointment marked as completed"

	// Health plan messages
	HealthPlanGetSuccess      = "get health plan successfully"
	HealthPlanUpsertSuccess   = "health plan saved successfully"
	HealthPlanProgressSuccess = "progress updated successfully"

	// Payment messages
	PaymentListSuccess   = "get payments successfully"
	PaymentCreateSuccess = "payment recorded successfully"
	PaymentStatsSuccess  = "get payment stats successfully"
	DailyStatsSuccess    = "get daily stats successfully"
	TreatmentListSuccess = "get treatment catalog successfully"

	// Education messages
	ContentListSuccess     = "get educational content successfully"
	ContentCreateSuccess   = "educational content created successfully"
	ContentUpdateSuccess   = "educational content updated successfully"
	ContentDeleteSuccess   = "educational content deleted successfully"
	MaterialUploadSuccess  = "material uploaded successfully"
)
