package routers

import (
	"dentassist-service/internal/app/delivery/http/controllers"
	"dentassist-service/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
)

func attachProfileRoutes(router chi.Router, middlewares *middlewares.Middlewares, profileController *controllers.ProfileController) {
	router.Use(middlewares.Authenticate)

	router.Get("/", profileController.GetOwnProfile)
	router.Get("/events", profileController.Events)
}
