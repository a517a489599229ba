package controllers

import (
	"net/http"
	"time"

	"dentassist-service/internal/app/models"
	"dentassist-service/internal/pkg/constvars"
)

const requestTimeout = 10 * time.Second

func sessionFromRequest(r *http.Request) (*models.Session, bool) {
	session, ok := r.Context().Value(constvars.CONTEXT_SESSION_DATA_KEY).(*models.Session)
	return session, ok && session != nil
}

func requestIDFromRequest(r *http.Request) (string, bool) {
	requestID, ok := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	return requestID, ok && requestID != ""
}
