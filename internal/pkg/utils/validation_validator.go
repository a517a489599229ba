package utils

import (
	"regexp"
	"strings"

	"dentassist-service/internal/pkg/constvars"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
	validate.RegisterValidation("password", validatePassword)
	validate.RegisterValidation("clinic_date", validateClinicDate)
	validate.RegisterValidation("clinic_time", validateClinicTime)
	validate.RegisterValidation("urgency", validateUrgency)
}

func ValidateStruct(s interface{}) error {
	return validate.Struct(s)
}

func validatePassword(fl validator.FieldLevel) bool {
	password := fl.Field().String()
	hasMinLen := len(password) >= 8
	hasSpecialChar := regexp.MustCompile(constvars.RegexContainAtLeastOneSpecialChar).MatchString(password)
	hasUppercase := regexp.MustCompile(constvars.RegexContainAtLeastOneUppercase).MatchString(password)
	return hasMinLen && hasSpecialChar && hasUppercase
}

func validateClinicDate(fl validator.FieldLevel) bool {
	date := fl.Field().String()
	if !regexp.MustCompile(constvars.RegexDateYYYYMMDD).MatchString(date) {
		return false
	}
	_, err := ParseClinicDate(date)
	return err == nil
}

// Appointment times are offered on the half hour only.
func validateClinicTime(fl validator.FieldLevel) bool {
	clock := fl.Field().String()
	if !regexp.MustCompile(constvars.RegexTimeHHMM).MatchString(clock) {
		return false
	}
	return strings.HasSuffix(clock, ":00") || strings.HasSuffix(clock, ":30")
}

func validateUrgency(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	return value == constvars.UrgencyNormal || value == constvars.UrgencyUrgent || value == constvars.UrgencyEmergency
}
