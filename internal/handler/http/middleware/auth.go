package middleware

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
	"github.com/hrconsole/hr-console-backend/internal/domain/auth"
	"github.com/hrconsole/hr-console-backend/internal/domain/user"
	"github.com/hrconsole/hr-console-backend/internal/handler/http/response"
	"github.com/hrconsole/hr-console-backend/internal/pkg/jwt"
)

type principalKey struct{}

// AuthRequired rejects requests without a valid bearer access token and
// stores the caller's principal in the request context.
func AuthRequired(jwtService jwt.Service) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			tokenString := jwtauth.TokenFromHeader(r)
			if tokenString == "" {
				response.HandleError(w, auth.ErrUnauthenticated)
				return
			}

			claims, err := jwtService.ParseAccessToken(tokenString)
			if err != nil {
				response.HandleError(w, auth.ErrUnauthenticated)
				return
			}

			principal := user.Principal{ID: claims.UserID, Role: claims.Role}
			httplog.SetAttrs(r.Context(),
				slog.String("user.id", principal.ID),
				slog.String("user.role", string(principal.Role)),
			)

			next.ServeHTTP(w, r.WithContext(WithPrincipal(r.Context(), principal)))
		})
	}
}

// WithPrincipal returns a copy of ctx carrying p.
func WithPrincipal(ctx context.Context, p user.Principal) context.Context {
	return context.WithValue(ctx, principalKey{}, p)
}

// PrincipalFromContext returns the caller stored by AuthRequired.
func PrincipalFromContext(ctx context.Context) (user.Principal, bool) {
	p, ok := ctx.Value(principalKey{}).(user.Principal)
	return p, ok && p.ID != ""
}
