package http

import (
	"context"
	"net/http"
	"strings"

	"equiprent-backend/internal/domain"
	"equiprent-backend/internal/logger"
	"equiprent-backend/internal/security"

	"github.com/gorilla/mux"
)

type contextKey string

const principalKey contextKey = "principal"

// Authenticate validates the bearer token and stores the caller's principal
// in the request context. Requests without a valid token are rejected.
func Authenticate(tokens security.TokenManager) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if header == "" {
				respondError(w, r, domain.Unauthorizedf("missing authorization header"))
				return
			}
			token, ok := strings.CutPrefix(header, "Bearer ")
			if !ok {
				respondError(w, r, domain.Unauthorizedf("invalid authorization header"))
				return
			}

			claims, err := tokens.ValidateToken(token)
			if err != nil {
				respondError(w, r, domain.Unauthorizedf("%s", err.Error()))
				return
			}

			ctx := context.WithValue(r.Context(), principalKey, claims.Principal())
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequestLogger logs each request at debug level.
func RequestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger.WithRequest(r.Method, r.URL.Path).Debug("handling request")
		next.ServeHTTP(w, r)
	})
}

// requireRoles gates a handler on the caller holding at least one of the
// given roles.
func requireRoles(next http.HandlerFunc, roles ...string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p, ok := principalFrom(r)
		if !ok {
			respondError(w, r, domain.Unauthorizedf("authentication required"))
			return
		}
		if !p.HasAnyRole(roles...) {
			respondError(w, r, domain.Forbiddenf("insufficient permissions"))
			return
		}
		next(w, r)
	}
}

func principalFrom(r *http.Request) (domain.Principal, bool) {
	p, ok := r.Context().Value(principalKey).(domain.Principal)
	return p, ok
}
