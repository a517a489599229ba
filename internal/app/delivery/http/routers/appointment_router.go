package routers

import (
	"dentassist-service/internal/app/delivery/http/controllers"
	"dentassist-service/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
)

func attachAppointmentRoutes(router chi.Router, middlewares *middlewares.Middlewares, appointmentController *controllers.AppointmentController) {
	// The day schedule only exposes open and taken slots, so it stays public
	// for the booking page.
	router.Get("/slots", appointmentController.GetDaySchedule)
}
