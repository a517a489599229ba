package constvars

const (
	RegexContainAtLeastOneSpecialChar = `.*[!@#$%^&*(),.?":{}|<>].*`
	RegexContainAtLeastOneUppercase   = `.*[A-Z].*`
	RegexDateYYYYMMDD                 = `^\d{4}-\d{2}-\d{2}$`
	RegexTimeHHMM                     = `^([01]\d|2[0-3]):[0-5]\d$`
	RegexPhoneNumberGeneral           = `^\+[1-9]\d{9,14}$`
)
