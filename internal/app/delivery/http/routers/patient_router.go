package routers

import (
	"dentassist-service/internal/app/delivery/http/controllers"
	"dentassist-service/internal/app/delivery/http/middlewares"
	"dentassist-service/internal/pkg/constvars"

	"github.com/go-chi/chi/v5"
)

func attachPatientRoutes(
	router chi.Router,
	middlewares *middlewares.Middlewares,
	profileController *controllers.ProfileController,
	appointmentController *controllers.AppointmentController,
	healthPlanController *controllers.HealthPlanController,
	paymentController *controllers.PaymentController,
) {
	router.Use(middlewares.Authenticate)

	router.With(middlewares.DoctorOnly).Get("/", profileController.ListPatients)

	router.Route("/{"+constvars.URLParamPatientID+"}", func(r chi.Router) {
		r.Get("/", profileController.GetPatientProfile)
		r.Get("/events", profileController.Events)

		r.Route("/appointments", func(r chi.Router) {
			r.Get("/", appointmentController.ListAppointments)
			r.Post("/", appointmentController.CreateAppointment)

			r.Route("/{"+constvars.URLParamAppointmentID+"}", func(r chi.Router) {
				r.With(middlewares.DoctorOnly).Post("/confirm", appointmentController.ConfirmAppointment)
				r.Post("/cancel", appointmentController.CancelAppointment)
				r.Post("/reschedule", appointmentController.RescheduleAppointment)
				r.With(middlewares.DoctorOnly).Post("/complete", appointmentController.CompleteAppointment)
			})
		})

		r.Route("/health-plan", func(r chi.Router) {
			r.Get("/", healthPlanController.GetHealthPlan)
			r.With(middlewares.DoctorOnly).Put("/", healthPlanController.UpsertHealthPlan)
			r.Post("/progress", healthPlanController.ToggleProgress)
		})

		r.Route("/medical-history", func(r chi.Router) {
			r.Get("/", profileController.GetMedicalHistory)
			r.With(middlewares.DoctorOnly).Post("/", profileController.AddMedicalRecord)
		})

		r.Route("/payments", func(r chi.Router) {
			r.Get("/", paymentController.ListPayments)
			r.With(middlewares.DoctorOnly).Post("/", paymentController.CreatePayment)
			r.Get("/stats", paymentController.GetPaymentStats)
		})
	})
}
