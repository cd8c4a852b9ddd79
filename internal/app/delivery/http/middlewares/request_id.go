package middlewares

import (
	"context"
	"net/http"

	"hospital-service/internal/pkg/constvars"
	"hospital-service/internal/pkg/utils"
)

// RequestID honors a client-supplied X-Request-Id and generates one
// otherwise. The ID is echoed back on the response and placed in the
// request context for every downstream log line.
func (m *Middlewares) RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := r.Header.Get(constvars.HeaderXRequestID)
		if requestID == "" {
			requestID = utils.GenerateRequestID()
		}

		ctx := context.WithValue(r.Context(), constvars.ContextRequestIDKey, requestID)
		w.Header().Set(constvars.HeaderXRequestID, requestID)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
