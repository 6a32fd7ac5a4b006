package middleware

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/mannyautos/storefront-backend/pkg/logger"
)

const sessionIDHeader = "X-Session-Id"

// Session attaches a cart session identifier to every request. Clients that
// do not present one are issued a fresh id, echoed back in the response
// header so the storefront can persist it.
func Session(logg *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			sessionID := r.Header.Get(sessionIDHeader)
			if sessionID == "" {
				sessionID = uuid.NewString()
			}

			w.Header().Set(sessionIDHeader, sessionID)

			ctx := WithSessionID(r.Context(), sessionID)
			if logg != nil {
				ctx = logg.WithSessionID(ctx, sessionID)
			}

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
