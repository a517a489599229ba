package middlewares

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"dentassist-service/internal/app/models"
	"dentassist-service/internal/pkg/constvars"
	"dentassist-service/internal/pkg/exceptions"
	"dentassist-service/internal/pkg/utils"
)

// Authenticate validates the bearer token, loads the redis-backed session
// and puts it on the request context.
func (m *Middlewares) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get(constvars.HeaderAuthorization)
		if authHeader == "" {
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrTokenMissing(nil))
			return
		}

		token := strings.TrimPrefix(authHeader, "Bearer ")
		sessionID, err := utils.ParseSessionJWT(token, m.InternalConfig.JWT.Secret)
		if err != nil {
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrTokenInvalidOrExpired(err))
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
		defer cancel()

		sessionData, err := m.SessionService.GetSessionData(ctx, sessionID)
		if err != nil {
			if errors.Is(err, context.DeadlineExceeded) {
				utils.BuildErrorResponse(m.Log, w, exceptions.ErrServerDeadlineExceeded(err))
				return
			}
			utils.BuildErrorResponse(m.Log, w, err)
			return
		}

		session, err := m.SessionService.ParseSessionData(r.Context(), sessionData)
		if err != nil {
			utils.BuildErrorResponse(m.Log, w, err)
			return
		}

		reqCtx := context.WithValue(r.Context(), constvars.CONTEXT_SESSION_DATA_KEY, session)
		next.ServeHTTP(w, r.WithContext(reqCtx))
	})
}

// DoctorOnly rejects requests whose session does not carry the doctor role.
// It must run after Authenticate.
func (m *Middlewares) DoctorOnly(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		session, ok := r.Context().Value(constvars.CONTEXT_SESSION_DATA_KEY).(*models.Session)
		if !ok {
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrMissingSessionData(nil))
			return
		}
		if session.Role != constvars.RoleDoctor {
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrRoleTypeDoesntMatch(errors.New("doctor role required")))
			return
		}
		next.ServeHTTP(w, r)
	})
}
