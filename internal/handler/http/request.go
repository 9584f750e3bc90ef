package http

import (
	"net/http"

	"github.com/crewdesk-app/crewdesk-backend-go/internal/handler/http/middleware"
)

// authorizedBusinessID returns the business the guard resolved the
// request against. It is empty when the request named no business and
// the guard checked the caller's memberships in aggregate; services
// treat that as addressing no row, so ID-addressed operations require
// the client to name the owning business.
func authorizedBusinessID(r *http.Request) string {
	grant, ok := middleware.GrantFrom(r.Context())
	if !ok {
		return ""
	}
	return grant.BusinessID
}
