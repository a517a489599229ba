package config

type InternalConfig struct {
	App      App
	JWT      AppJWT
	Clinic   AppClinic
	Mailer   AppMailer
	Minio    AppMinio
	RabbitMQ AppRabbitMQ
}

type App struct {
	Env                            string
	Port                           string
	Version                        string
	Address                        string
	Timezone                       string
	EndpointPrefix                 string
	MaxRequests                    int
	ShutdownTimeoutInSeconds       int
	MaxTimeRequestsPerSeconds      int
	RequestBodyLimitInMegabyte     int
	LoginSessionExpiredTimeInHours int
}

type AppJWT struct {
	Secret        string
	ExpTimeInHour int
}

// AppClinic holds scheduling knobs for the reminder worker.
type AppClinic struct {
	// ReminderCronSpec is the cron expression for the appointment reminder
	// worker schedule (e.g. "0 7 * * *").
	ReminderCronSpec string
	// ReminderLookAheadDays is how many days ahead of today an appointment
	// must be to trigger a reminder email.
	ReminderLookAheadDays int
}

type AppMailer struct {
	EmailSender string
}

type AppMinio struct {
	BucketName                    string
	MaterialMaxUploadSizeInMB     int
	PreSignedUrlExpiryTimeInHours int
}

type AppRabbitMQ struct {
	MailerQueue string
}
