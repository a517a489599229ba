package routers

import (
	"dentassist-service/internal/app/delivery/http/controllers"
	"dentassist-service/internal/app/delivery/http/middlewares"
	"dentassist-service/internal/pkg/constvars"

	"github.com/go-chi/chi/v5"
)

func attachEducationRoutes(router chi.Router, middlewares *middlewares.Middlewares, educationController *controllers.EducationController) {
	router.Use(middlewares.Authenticate)

	router.Get("/", educationController.ListContent)
	router.With(middlewares.DoctorOnly).Post("/", educationController.CreateContent)

	router.Route("/{"+constvars.URLParamContentID+"}", func(r chi.Router) {
		r.Get("/", educationController.GetContent)
		r.With(middlewares.DoctorOnly).Put("/", educationController.UpdateContent)
		r.With(middlewares.DoctorOnly).Delete("/", educationController.DeleteContent)
		r.With(middlewares.DoctorOnly).Post("/material", educationController.UploadMaterial)
		r.Get("/material", educationController.GetMaterialURL)
	})
}
