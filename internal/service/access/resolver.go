package access

import (
	"context"
	"errors"
	"log/slog"
	"sort"
	"strings"

	"github.com/crewdesk-app/crewdesk-backend-go/internal/domain/membership"
	"github.com/crewdesk-app/crewdesk-backend-go/internal/domain/permission"
	"github.com/crewdesk-app/crewdesk-backend-go/internal/domain/role"
)

// Requirement is what an endpoint demands of the caller. Permissions
// are conjunctive (every listed code must be granted); Roles are
// disjunctive (holding any listed role satisfies it). When both are
// set, either satisfying the role list or holding all the permissions
// passes.
type Requirement struct {
	Permissions []permission.Code
	Roles       []string
}

// Grant is the resolved authority of one user. A targeted grant covers
// one business; an aggregate grant, resolved when a request names no
// business, unions every membership the user holds and leaves
// BusinessID empty.
type Grant struct {
	// BusinessID is the business the grant was resolved against, empty
	// for an aggregate grant.
	BusinessID string
	Membership membership.Membership
	// Roles holds the role string of every membership the grant covers.
	Roles []string
	// Permissions is the flattened, deduplicated set of codes the
	// covered memberships' roles grant.
	Permissions map[string]struct{}
}

// Has reports whether the grant includes a permission code.
func (g Grant) Has(code permission.Code) bool {
	_, ok := g.Permissions[string(code)]
	return ok
}

// HasRole reports whether any covered membership's role string equals
// wanted exactly.
func (g Grant) HasRole(wanted string) bool {
	for _, r := range g.Roles {
		if r == wanted {
			return true
		}
	}
	return false
}

// Resolver answers "may this user do this in this business". Nothing is
// cached across requests and nothing authorization-related lives in the
// access token, so role and permission edits apply on the next request.
type Resolver interface {
	// Resolve loads the caller's membership in the business and expands
	// its role into a permission set. Returns ErrNotMember when the user
	// holds no membership in the business.
	Resolve(ctx context.Context, userID, businessID string) (Grant, error)
	// ResolveAll unions the caller's grants across every business they
	// belong to. Returns ErrNotMember when the user holds no
	// memberships at all.
	ResolveAll(ctx context.Context, userID string) (Grant, error)
	// Authorize resolves and then checks the requirement, returning a
	// DeniedError naming what was missing on failure.
	Authorize(ctx context.Context, userID, businessID string, req Requirement) (Grant, error)
	// AuthorizeAny checks the requirement against the aggregate grant.
	// Used when a request names no target business.
	AuthorizeAny(ctx context.Context, userID string, req Requirement) (Grant, error)
}

type resolverImpl struct {
	membershipRepo membership.MembershipRepository
	roleRepo       role.CustomRoleRepository
	logger         *slog.Logger
}

func NewResolver(
	membershipRepo membership.MembershipRepository,
	roleRepo role.CustomRoleRepository,
	logger *slog.Logger,
) Resolver {
	return &resolverImpl{
		membershipRepo: membershipRepo,
		roleRepo:       roleRepo,
		logger:         logger,
	}
}

// Resolve implements Resolver.
func (r *resolverImpl) Resolve(ctx context.Context, userID, businessID string) (Grant, error) {
	found, err := r.membershipRepo.GetByUserAndBusiness(ctx, userID, businessID)
	if err != nil {
		if errors.Is(err, membership.ErrMembershipNotFound) {
			return Grant{}, ErrNotMember
		}
		return Grant{}, err
	}

	grant := Grant{
		BusinessID:  businessID,
		Membership:  found,
		Roles:       []string{found.Role},
		Permissions: make(map[string]struct{}),
	}
	if err := r.expand(ctx, found, grant.Permissions); err != nil {
		return Grant{}, err
	}
	return grant, nil
}

// ResolveAll implements Resolver.
func (r *resolverImpl) ResolveAll(ctx context.Context, userID string) (Grant, error) {
	memberships, err := r.membershipRepo.ListByUser(ctx, userID)
	if err != nil {
		return Grant{}, err
	}
	if len(memberships) == 0 {
		return Grant{}, ErrNotMember
	}

	grant := Grant{
		Roles:       make([]string, 0, len(memberships)),
		Permissions: make(map[string]struct{}),
	}
	for _, m := range memberships {
		grant.Roles = append(grant.Roles, m.Role)
		if err := r.expand(ctx, m, grant.Permissions); err != nil {
			return Grant{}, err
		}
	}
	return grant, nil
}

// expand adds the permission set of one membership's role to dst.
func (r *resolverImpl) expand(ctx context.Context, m membership.Membership, dst map[string]struct{}) error {
	switch m.RoleType {
	case membership.RoleTypePredefined:
		for _, code := range role.PermissionsFor(role.Predefined(m.Role)) {
			dst[string(code)] = struct{}{}
		}
	case membership.RoleTypeCustom:
		customRole, err := r.roleRepo.GetByBusinessAndName(ctx, m.BusinessID, m.Role)
		if err != nil {
			if errors.Is(err, role.ErrRoleNotFound) {
				// The custom role was deleted out from under the
				// membership. The membership stays valid but grants
				// nothing until reassigned.
				r.logger.Warn("membership references missing custom role",
					slog.String("user_id", m.UserID),
					slog.String("business_id", m.BusinessID),
					slog.String("role", m.Role),
				)
				return nil
			}
			return err
		}
		for _, code := range customRole.Permissions.Flatten() {
			dst[code] = struct{}{}
		}
	}
	return nil
}

// Authorize implements Resolver.
func (r *resolverImpl) Authorize(ctx context.Context, userID, businessID string, req Requirement) (Grant, error) {
	grant, err := r.Resolve(ctx, userID, businessID)
	if err != nil {
		return Grant{}, err
	}
	return check(grant, req)
}

// AuthorizeAny implements Resolver.
func (r *resolverImpl) AuthorizeAny(ctx context.Context, userID string, req Requirement) (Grant, error) {
	grant, err := r.ResolveAll(ctx, userID)
	if err != nil {
		return Grant{}, err
	}
	return check(grant, req)
}

func check(grant Grant, req Requirement) (Grant, error) {
	// Role matches are exact and case-sensitive against the raw
	// membership role strings.
	for _, wanted := range req.Roles {
		if grant.HasRole(wanted) {
			return grant, nil
		}
	}

	if len(req.Permissions) > 0 {
		var missing []string
		for _, code := range req.Permissions {
			if !grant.Has(code) {
				missing = append(missing, string(code))
			}
		}
		if len(missing) == 0 {
			return grant, nil
		}
		sort.Strings(missing)
		return Grant{}, &DeniedError{Missing: missing}
	}

	if len(req.Roles) > 0 {
		return Grant{}, &DeniedError{Roles: req.Roles}
	}

	// Empty requirement: membership alone is enough.
	return grant, nil
}

// ErrNotMember is returned when the caller holds no membership in the
// target business.
var ErrNotMember = errors.New("user is not a member of this business")

// DeniedError reports a failed requirement check with enough detail for
// the response body to name what was missing.
type DeniedError struct {
	Missing []string
	Roles   []string
}

func (e *DeniedError) Error() string {
	if len(e.Missing) > 0 {
		return "missing required permissions: " + strings.Join(e.Missing, ", ")
	}
	return "requires one of roles: " + strings.Join(e.Roles, ", ")
}
