package http

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/crewdesk-app/crewdesk-backend-go/internal/domain/membership"
	"github.com/crewdesk-app/crewdesk-backend-go/internal/domain/permission"
	"github.com/crewdesk-app/crewdesk-backend-go/internal/domain/role"
	"github.com/crewdesk-app/crewdesk-backend-go/internal/fixtures"
	"github.com/crewdesk-app/crewdesk-backend-go/internal/handler/http/middleware"
	"github.com/crewdesk-app/crewdesk-backend-go/internal/pkg/jwt"
	"github.com/crewdesk-app/crewdesk-backend-go/internal/service/access"
	permissionService "github.com/crewdesk-app/crewdesk-backend-go/internal/service/permission"
	roleService "github.com/crewdesk-app/crewdesk-backend-go/internal/service/role"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/jwtauth/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// The role routes get wired against real services over in-memory
// stores so the guard, the handler, and the service run as one stack.

type roleStore struct {
	roles map[string]role.CustomRole
}

func (s *roleStore) Create(ctx context.Context, newRole role.CustomRole) (role.CustomRole, error) {
	s.roles[newRole.ID] = newRole
	return newRole, nil
}

func (s *roleStore) GetByID(ctx context.Context, id string) (role.CustomRole, error) {
	r, ok := s.roles[id]
	if !ok {
		return role.CustomRole{}, role.ErrRoleNotFound
	}
	return r, nil
}

func (s *roleStore) GetByBusinessAndName(ctx context.Context, businessID, name string) (role.CustomRole, error) {
	for _, r := range s.roles {
		if r.BusinessID == businessID && r.Name == name {
			return r, nil
		}
	}
	return role.CustomRole{}, role.ErrRoleNotFound
}

func (s *roleStore) ListByBusiness(ctx context.Context, businessID string) ([]role.CustomRole, error) {
	var out []role.CustomRole
	for _, r := range s.roles {
		if r.BusinessID == businessID {
			out = append(out, r)
		}
	}
	return out, nil
}

func (s *roleStore) Update(ctx context.Context, updated role.CustomRole) (role.CustomRole, error) {
	if _, ok := s.roles[updated.ID]; !ok {
		return role.CustomRole{}, role.ErrRoleNotFound
	}
	s.roles[updated.ID] = updated
	return updated, nil
}

func (s *roleStore) ReplacePermissions(ctx context.Context, id string, permissions []byte) (role.CustomRole, error) {
	r, ok := s.roles[id]
	if !ok {
		return role.CustomRole{}, role.ErrRoleNotFound
	}
	if err := r.Permissions.UnmarshalJSON(permissions); err != nil {
		return role.CustomRole{}, err
	}
	s.roles[id] = r
	return r, nil
}

func (s *roleStore) Delete(ctx context.Context, id string) error {
	if _, ok := s.roles[id]; !ok {
		return role.ErrRoleNotFound
	}
	delete(s.roles, id)
	return nil
}

func (s *roleStore) ExistsByBusinessAndName(ctx context.Context, businessID, name string) (bool, error) {
	_, err := s.GetByBusinessAndName(ctx, businessID, name)
	return err == nil, nil
}

type memberStore struct {
	memberships map[string]membership.Membership // keyed by userID/businessID
}

func (s *memberStore) Create(ctx context.Context, m membership.Membership) (membership.Membership, error) {
	s.memberships[m.UserID+"/"+m.BusinessID] = m
	return m, nil
}

func (s *memberStore) GetByUserAndBusiness(ctx context.Context, userID, businessID string) (membership.Membership, error) {
	m, ok := s.memberships[userID+"/"+businessID]
	if !ok {
		return membership.Membership{}, membership.ErrMembershipNotFound
	}
	return m, nil
}

func (s *memberStore) ListByUser(ctx context.Context, userID string) ([]membership.Membership, error) {
	var out []membership.Membership
	for _, m := range s.memberships {
		if m.UserID == userID {
			out = append(out, m)
		}
	}
	return out, nil
}

func (s *memberStore) ListByBusiness(ctx context.Context, businessID string) ([]membership.Membership, error) {
	return nil, nil
}

func (s *memberStore) UpdateRole(ctx context.Context, userID, businessID string, roleType membership.RoleType, roleName string) error {
	m, ok := s.memberships[userID+"/"+businessID]
	if !ok {
		return membership.ErrMembershipNotFound
	}
	m.RoleType = roleType
	m.Role = roleName
	s.memberships[userID+"/"+businessID] = m
	return nil
}

func (s *memberStore) Delete(ctx context.Context, userID, businessID string) error {
	delete(s.memberships, userID+"/"+businessID)
	return nil
}

func (s *memberStore) ExistsByUserAndBusiness(ctx context.Context, userID, businessID string) (bool, error) {
	_, ok := s.memberships[userID+"/"+businessID]
	return ok, nil
}

type staticCatalogRepo struct{}

func (staticCatalogRepo) ListSections(ctx context.Context) ([]permission.Section, error) {
	return fixtures.DefaultCatalog(), nil
}

func (staticCatalogRepo) SeedDefaults(ctx context.Context, sections []permission.Section) error {
	return nil
}

type roleRouteEnv struct {
	router     *chi.Mux
	jwtService jwt.Service
	roles      *roleStore
	members    *memberStore
}

func newRoleRouteEnv(t *testing.T) *roleRouteEnv {
	t.Helper()

	roles := &roleStore{roles: make(map[string]role.CustomRole)}
	members := &memberStore{memberships: make(map[string]membership.Membership)}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	resolver := access.NewResolver(members, roles, logger)
	guard := middleware.NewGuard(resolver)
	catalog := permissionService.NewCatalogService(staticCatalogRepo{}, logger)
	handler := NewRoleHandler(roleService.NewRoleService(roles, members, catalog, logger))

	jwtService := jwt.NewJWTService("test-secret", "15m", "720h")

	r := chi.NewRouter()
	r.Group(func(r chi.Router) {
		r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
		r.Use(middleware.AuthRequired(jwtService.JWTAuth()))

		r.Route("/api/v1/roles", func(r chi.Router) {
			r.Route("/{roleID}", func(r chi.Router) {
				r.With(guard.RequireMembership()).Get("/", handler.Get)
				r.With(guard.RequirePermissions(permission.ManageRoles)).Put("/", handler.Update)
			})
		})
	})

	return &roleRouteEnv{router: r, jwtService: jwtService, roles: roles, members: members}
}

func (e *roleRouteEnv) authed(t *testing.T, method, target, body, userID string) *http.Request {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	r := httptest.NewRequest(method, target, reader)
	token, _, err := e.jwtService.GenerateAccessToken(userID, userID+"@example.com")
	require.NoError(t, err)
	r.Header.Set("Authorization", "Bearer "+token)
	if body != "" {
		r.Header.Set("Content-Type", "application/json")
	}
	return r
}

func TestRoleRoutes_OtherBusinessRoleStaysHidden(t *testing.T) {
	env := newRoleRouteEnv(t)

	const (
		businessA = "0190a1b2-0000-7000-8000-00000000000a"
		businessB = "0190a1b2-0000-7000-8000-00000000000b"
		ownerA    = "0190a1b2-0000-7000-8000-0000000000aa"
	)

	// The caller owns business A and nothing else.
	env.members.memberships[ownerA+"/"+businessA] = membership.Membership{
		UserID:     ownerA,
		BusinessID: businessA,
		RoleType:   membership.RoleTypePredefined,
		Role:       string(role.PredefinedOwner),
	}

	// The victim role belongs to business B.
	env.roles.roles["role-b"] = role.CustomRole{
		ID:         "role-b",
		BusinessID: businessB,
		Name:       "Closer",
		Permissions: permission.Blob{Sections: map[string][]string{
			permission.SectionScheduling: {string(permission.PublishSchedule)},
		}},
	}

	t.Run("rename via spoofed body business", func(t *testing.T) {
		body := `{"business_id": "` + businessA + `", "name": "Hijacked"}`
		r := env.authed(t, http.MethodPut, "/api/v1/roles/role-b", body, ownerA)
		w := httptest.NewRecorder()
		env.router.ServeHTTP(w, r)

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Equal(t, "Closer", env.roles.roles["role-b"].Name)
	})

	t.Run("read with own business named", func(t *testing.T) {
		r := env.authed(t, http.MethodGet, "/api/v1/roles/role-b?business_id="+businessA, "", ownerA)
		w := httptest.NewRecorder()
		env.router.ServeHTTP(w, r)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("read naming the owning business is forbidden for non-members", func(t *testing.T) {
		r := env.authed(t, http.MethodGet, "/api/v1/roles/role-b?business_id="+businessB, "", ownerA)
		w := httptest.NewRecorder()
		env.router.ServeHTTP(w, r)

		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("read without naming a business", func(t *testing.T) {
		// The aggregate grant carries no business scope, so an
		// ID-addressed lookup cannot land on business B's row.
		r := env.authed(t, http.MethodGet, "/api/v1/roles/role-b", "", ownerA)
		w := httptest.NewRecorder()
		env.router.ServeHTTP(w, r)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}
