package middleware

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"

	"github.com/crewdesk-app/crewdesk-backend-go/internal/domain/permission"
	"github.com/crewdesk-app/crewdesk-backend-go/internal/handler/http/response"
	"github.com/crewdesk-app/crewdesk-backend-go/internal/service/access"
	"github.com/go-chi/chi/v5"
)

const grantKey contextKey = "access_grant"

// maxBodyPeek bounds how much of a request body the guard will read to
// find the target business id.
const maxBodyPeek = 1 << 20

// Guard wraps the permission resolver as chi middleware. Every guarded
// request resolves the caller's membership and role against the
// database; nothing authorization-related is trusted from the token.
type Guard struct {
	resolver access.Resolver
}

func NewGuard(resolver access.Resolver) *Guard {
	return &Guard{resolver: resolver}
}

// RequirePermissions allows the request only when the caller holds
// every listed permission in the target business.
func (g *Guard) RequirePermissions(codes ...permission.Code) func(http.Handler) http.Handler {
	return g.require(access.Requirement{Permissions: codes})
}

// RequireRoles allows the request when the caller's membership role
// matches any of the listed role strings exactly.
func (g *Guard) RequireRoles(roles ...string) func(http.Handler) http.Handler {
	return g.require(access.Requirement{Roles: roles})
}

// RequireMembership allows any member of the target business through.
func (g *Guard) RequireMembership() func(http.Handler) http.Handler {
	return g.require(access.Requirement{})
}

func (g *Guard) require(req access.Requirement) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			userID := UserID(r.Context())
			if userID == "" {
				response.Unauthorized(w, "Authentication required")
				return
			}

			// A request that names no business is checked against the
			// union of the caller's memberships.
			var (
				grant access.Grant
				err   error
			)
			if businessID := targetBusinessID(r); businessID != "" {
				grant, err = g.resolver.Authorize(r.Context(), userID, businessID, req)
			} else {
				grant, err = g.resolver.AuthorizeAny(r.Context(), userID, req)
			}
			if err != nil {
				response.HandleError(w, err)
				return
			}

			ctx := context.WithValue(r.Context(), grantKey, grant)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// GrantFrom returns the resolved grant placed by the guard.
func GrantFrom(ctx context.Context) (access.Grant, bool) {
	grant, ok := ctx.Value(grantKey).(access.Grant)
	return grant, ok
}

// targetBusinessID locates the business a request operates on. A JSON
// body field wins over a query parameter, which wins over the URL path
// segment, so a client cannot smuggle a check against one business while
// acting on another.
func targetBusinessID(r *http.Request) string {
	if id := businessIDFromBody(r); id != "" {
		return id
	}
	if id := r.URL.Query().Get("business_id"); id != "" {
		return id
	}
	return chi.URLParam(r, "businessID")
}

func businessIDFromBody(r *http.Request) string {
	if r.Body == nil || !strings.Contains(r.Header.Get("Content-Type"), "application/json") {
		return ""
	}

	body, err := io.ReadAll(io.LimitReader(r.Body, maxBodyPeek))
	if err != nil {
		return ""
	}
	// Hand the body back for the handler's own decode.
	r.Body = io.NopCloser(bytes.NewReader(body))

	var peek struct {
		BusinessID string `json:"business_id"`
	}
	if err := json.Unmarshal(body, &peek); err != nil {
		return ""
	}
	return peek.BusinessID
}
