package routers

import (
	"time"

	"dentassist-service/internal/app/delivery/http/controllers"
	"dentassist-service/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
)

func attachAuthRoutes(router chi.Router, middlewares *middlewares.Middlewares, authController *controllers.AuthController) {
	// Credential endpoints carry their own stricter limiter on top of the
	// global httprate budget.
	loginLimiter := middlewares.NewAuthRateLimiter(5, time.Minute, 15*time.Minute)

	router.With(loginLimiter.Limit).Post("/register", authController.Register)
	router.With(loginLimiter.Limit).Post("/login", authController.Login)
	router.With(middlewares.Authenticate).Post("/logout", authController.Logout)
}
