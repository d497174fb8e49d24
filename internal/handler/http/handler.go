package http

import (
	"net/http"

	"github.com/hrconsole/hr-console-backend/internal/domain/auth"
	"github.com/hrconsole/hr-console-backend/internal/domain/user"
	"github.com/hrconsole/hr-console-backend/internal/handler/http/middleware"
	"github.com/hrconsole/hr-console-backend/internal/handler/http/response"
)

// callerFrom returns the authenticated principal, writing a 401 when the
// route was mounted without AuthRequired.
func callerFrom(w http.ResponseWriter, r *http.Request) (user.Principal, bool) {
	p, ok := middleware.PrincipalFromContext(r.Context())
	if !ok {
		response.HandleError(w, auth.ErrUnauthenticated)
		return user.Principal{}, false
	}
	return p, true
}
