package constvars

const (
	URLParamPatientID     = "patient_id"
	URLParamAppointmentID = "appointment_id"
	URLParamContentID     = "content_id"
)

const (
	URLQueryParamDate     = "date"
	URLQueryParamSearch   = "search"
	URLQueryParamCategory = "category"
	URLQueryParamLevel    = "level"
	URLQueryParamStatus   = "status"
	URLQueryParamPage     = "page"
	URLQueryParamPageSize = "page_size"
)
