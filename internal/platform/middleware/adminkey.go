package middleware

import (
	"log/slog"
	"net/http"

	"golang.org/x/crypto/bcrypt"
)

// AdminKey guards operator-only endpoints with a static API key. The key is
// carried in X-Api-Key and verified against a bcrypt hash so the plaintext
// never lives in configuration. An empty hash disables the guarded routes.
func AdminKey(keyHash string, logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if keyHash == "" {
				http.Error(w, "not found", http.StatusNotFound)
				return
			}
			key := r.Header.Get("X-Api-Key")
			if key == "" {
				http.Error(w, "unauthorized", http.StatusUnauthorized)
				return
			}
			if err := bcrypt.CompareHashAndPassword([]byte(keyHash), []byte(key)); err != nil {
				logger.WarnContext(r.Context(), "admin key rejected",
					"request_id", GetRequestID(r.Context()),
					"remote_ip", GetClientIP(r.Context()),
				)
				http.Error(w, "unauthorized", http.StatusUnauthorized)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
