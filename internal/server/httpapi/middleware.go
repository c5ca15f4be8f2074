package httpapi

import (
	"net/http"
	"strings"
	"time"

	"github.com/questionboard/questionboard/internal/common"
	"github.com/questionboard/questionboard/internal/server/auth"
)

// authenticate classifies the request as authenticated or anonymous and
// never rejects it: a missing, malformed, or invalid bearer token just
// leaves the request without a principal. Downstream handlers decide
// whether an anonymous request may proceed.
func (s *Server) authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if raw := extractBearer(r); raw != "" {
			if userID, err := s.auth.Tokens().Validate(raw); err == nil {
				r = r.WithContext(auth.WithPrincipal(r.Context(), auth.Principal{UserID: userID}))
			}
		}
		next.ServeHTTP(w, r)
	})
}

// extractBearer returns the token from the Authorization header, or ""
// when the header is absent or not a bearer credential.
func extractBearer(r *http.Request) string {
	header := r.Header.Get(common.AuthorizationHeaderName)
	if !strings.HasPrefix(header, common.BearerPrefix) {
		return ""
	}
	return strings.TrimPrefix(header, common.BearerPrefix)
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		s.logger.Info(r.Context(), "request handled",
			"method", r.Method,
			"path", r.URL.Path,
			"duration", time.Since(start).String(),
		)
	})
}

func (s *Server) recovery(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if p := recover(); p != nil {
				s.logger.Error(r.Context(), "panic in handler", "panic", p, "path", r.URL.Path)
				http.Error(w, "internal server error", http.StatusInternalServerError)
			}
		}()
		next.ServeHTTP(w, r)
	})
}
