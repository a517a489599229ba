package constvars

const (
	EmailAppointmentReminderSubject    = "[DENTASSIST] Appointment Reminder"
	EmailAppointmentConfirmedSubject   = "[DENTASSIST] Appointment Confirmed"
	EmailAppointmentCancelledSubject   = "[DENTASSIST] Appointment Cancelled"
	EmailAppointmentRescheduledSubject = "[DENTASSIST] Appointment Rescheduled"
	EmailAppointmentRequestedSubject   = "[DENTASSIST] Appointment Request Received"
)

const (
	EmailSendBasicEmailSubjectFormat = "To: %s\r\nSubject: %s\r\n\r\n%s\r\n"
	EmailSendHTMLSubjectFormat       = "To: %s\r\nSubject: %s\r\nMIME-version: 1.0;\r\nContent-Type: text/html; charset=\"UTF-8\";\r\n\r\n%s\r\n"

	EmailBodyAppointmentReminder    = "Hello %s, this is a reminder for your dental appointment on %s at %s (%s)."
	EmailBodyAppointmentConfirmed   = "Hello %s, your dental appointment on %s at %s has been confirmed."
	EmailBodyAppointmentCancelled   = "Hello %s, your dental appointment on %s at %s has been cancelled."
	EmailBodyAppointmentRescheduled = "Hello %s, your dental appointment has been moved to %s at %s."
	EmailBodyAppointmentRequested   = "Hello %s, we received your appointment request for %s at %s. You will be notified once it is confirmed."
)
