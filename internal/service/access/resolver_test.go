package access

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/crewdesk-app/crewdesk-backend-go/internal/domain/membership"
	"github.com/crewdesk-app/crewdesk-backend-go/internal/domain/permission"
	"github.com/crewdesk-app/crewdesk-backend-go/internal/domain/role"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testBusinessID = "0190a1b2-0000-7000-8000-000000000001"
	otherBusiness  = "0190a1b2-0000-7000-8000-000000000002"
	testOwnerID    = "0190a1b2-0000-7000-8000-0000000000aa"
	testStaffID    = "0190a1b2-0000-7000-8000-0000000000bb"
	testCustomID   = "0190a1b2-0000-7000-8000-0000000000cc"
	testStrangerID = "0190a1b2-0000-7000-8000-0000000000dd"
)

type fakeMembershipRepo struct {
	memberships map[string]membership.Membership
}

func membershipKey(userID, businessID string) string {
	return userID + "/" + businessID
}

func (f *fakeMembershipRepo) GetByUserAndBusiness(ctx context.Context, userID, businessID string) (membership.Membership, error) {
	m, ok := f.memberships[membershipKey(userID, businessID)]
	if !ok {
		return membership.Membership{}, membership.ErrMembershipNotFound
	}
	return m, nil
}

func (f *fakeMembershipRepo) Create(ctx context.Context, m membership.Membership) (membership.Membership, error) {
	f.memberships[membershipKey(m.UserID, m.BusinessID)] = m
	return m, nil
}

func (f *fakeMembershipRepo) ListByUser(ctx context.Context, userID string) ([]membership.Membership, error) {
	var result []membership.Membership
	for _, m := range f.memberships {
		if m.UserID == userID {
			result = append(result, m)
		}
	}
	return result, nil
}

func (f *fakeMembershipRepo) ListByBusiness(ctx context.Context, businessID string) ([]membership.Membership, error) {
	return nil, nil
}

func (f *fakeMembershipRepo) UpdateRole(ctx context.Context, userID, businessID string, roleType membership.RoleType, roleName string) error {
	m := f.memberships[membershipKey(userID, businessID)]
	m.RoleType = roleType
	m.Role = roleName
	f.memberships[membershipKey(userID, businessID)] = m
	return nil
}

func (f *fakeMembershipRepo) Delete(ctx context.Context, userID, businessID string) error {
	delete(f.memberships, membershipKey(userID, businessID))
	return nil
}

func (f *fakeMembershipRepo) ExistsByUserAndBusiness(ctx context.Context, userID, businessID string) (bool, error) {
	_, ok := f.memberships[membershipKey(userID, businessID)]
	return ok, nil
}

type fakeRoleRepo struct {
	roles map[string]role.CustomRole // keyed by businessID/name
}

func (f *fakeRoleRepo) GetByBusinessAndName(ctx context.Context, businessID, name string) (role.CustomRole, error) {
	r, ok := f.roles[businessID+"/"+name]
	if !ok {
		return role.CustomRole{}, role.ErrRoleNotFound
	}
	return r, nil
}

func (f *fakeRoleRepo) Create(ctx context.Context, r role.CustomRole) (role.CustomRole, error) {
	f.roles[r.BusinessID+"/"+r.Name] = r
	return r, nil
}

func (f *fakeRoleRepo) GetByID(ctx context.Context, id string) (role.CustomRole, error) {
	for _, r := range f.roles {
		if r.ID == id {
			return r, nil
		}
	}
	return role.CustomRole{}, role.ErrRoleNotFound
}

func (f *fakeRoleRepo) ListByBusiness(ctx context.Context, businessID string) ([]role.CustomRole, error) {
	return nil, nil
}

func (f *fakeRoleRepo) Update(ctx context.Context, r role.CustomRole) (role.CustomRole, error) {
	return r, nil
}

func (f *fakeRoleRepo) ReplacePermissions(ctx context.Context, id string, permissions []byte) (role.CustomRole, error) {
	return role.CustomRole{}, role.ErrRoleNotFound
}

func (f *fakeRoleRepo) Delete(ctx context.Context, id string) error {
	return nil
}

func (f *fakeRoleRepo) ExistsByBusinessAndName(ctx context.Context, businessID, name string) (bool, error) {
	_, ok := f.roles[businessID+"/"+name]
	return ok, nil
}

func testResolver() (Resolver, *fakeMembershipRepo, *fakeRoleRepo) {
	membershipRepo := &fakeMembershipRepo{memberships: map[string]membership.Membership{
		membershipKey(testOwnerID, testBusinessID): {
			ID:         "m-owner",
			UserID:     testOwnerID,
			BusinessID: testBusinessID,
			RoleType:   membership.RoleTypePredefined,
			Role:       string(role.PredefinedOwner),
		},
		membershipKey(testStaffID, testBusinessID): {
			ID:         "m-staff",
			UserID:     testStaffID,
			BusinessID: testBusinessID,
			RoleType:   membership.RoleTypePredefined,
			Role:       string(role.PredefinedDishwasher),
		},
		membershipKey(testCustomID, testBusinessID): {
			ID:         "m-custom",
			UserID:     testCustomID,
			BusinessID: testBusinessID,
			RoleType:   membership.RoleTypeCustom,
			Role:       "Shift Lead",
		},
	}}
	roleRepo := &fakeRoleRepo{roles: map[string]role.CustomRole{
		testBusinessID + "/Shift Lead": {
			ID:         "r-lead",
			BusinessID: testBusinessID,
			Name:       "Shift Lead",
			Permissions: permission.Blob{Sections: map[string][]string{
				permission.SectionScheduling: {
					string(permission.ViewSchedule),
					string(permission.PublishSchedule),
				},
				permission.SectionShiftOps: {
					string(permission.OpenShift),
					string(permission.CloseShift),
				},
			}},
		},
	}}

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewResolver(membershipRepo, roleRepo, logger), membershipRepo, roleRepo
}

func TestResolve_OwnerGetsFullSet(t *testing.T) {
	resolver, _, _ := testResolver()

	grant, err := resolver.Resolve(context.Background(), testOwnerID, testBusinessID)
	require.NoError(t, err)

	assert.True(t, grant.Has(permission.DeleteBusiness))
	assert.True(t, grant.Has(permission.ManageBilling))
	assert.True(t, grant.Has(permission.ClockInOut))
	assert.Len(t, grant.Permissions, len(role.PermissionsFor(role.PredefinedOwner)))
}

func TestResolve_NonMember(t *testing.T) {
	resolver, _, _ := testResolver()

	_, err := resolver.Resolve(context.Background(), testStrangerID, testBusinessID)
	assert.ErrorIs(t, err, ErrNotMember)
}

func TestResolve_CustomRoleFlattensBlob(t *testing.T) {
	resolver, _, _ := testResolver()

	grant, err := resolver.Resolve(context.Background(), testCustomID, testBusinessID)
	require.NoError(t, err)

	assert.True(t, grant.Has(permission.OpenShift))
	assert.True(t, grant.Has(permission.PublishSchedule))
	assert.False(t, grant.Has(permission.ManageRoles))
	assert.Len(t, grant.Permissions, 4)
}

func TestResolve_DeletedCustomRoleGrantsNothing(t *testing.T) {
	resolver, _, roleRepo := testResolver()
	delete(roleRepo.roles, testBusinessID+"/Shift Lead")

	grant, err := resolver.Resolve(context.Background(), testCustomID, testBusinessID)
	require.NoError(t, err)

	assert.Empty(t, grant.Permissions)
	assert.Equal(t, "m-custom", grant.Membership.ID)
}

func TestAuthorize_AllPermissionsRequired(t *testing.T) {
	resolver, _, _ := testResolver()
	ctx := context.Background()

	req := Requirement{Permissions: []permission.Code{
		permission.ViewSchedule,
		permission.OpenShift,
	}}

	_, err := resolver.Authorize(ctx, testCustomID, testBusinessID, req)
	assert.NoError(t, err)

	_, err = resolver.Authorize(ctx, testStaffID, testBusinessID, req)
	var denied *DeniedError
	require.ErrorAs(t, err, &denied)
	assert.Equal(t, []string{"open_shift"}, denied.Missing)
}

func TestAuthorize_MissingPermissionsSorted(t *testing.T) {
	resolver, _, _ := testResolver()

	_, err := resolver.Authorize(context.Background(), testStaffID, testBusinessID, Requirement{
		Permissions: []permission.Code{
			permission.ViewSchedule,
			permission.PublishSchedule,
			permission.DeleteShifts,
			permission.CreateShifts,
		},
	})

	var denied *DeniedError
	require.ErrorAs(t, err, &denied)
	assert.Equal(t, []string{"create_shifts", "delete_shifts", "publish_schedule"}, denied.Missing)
}

func TestAuthorize_RoleMatchIsExact(t *testing.T) {
	resolver, _, _ := testResolver()
	ctx := context.Background()

	_, err := resolver.Authorize(ctx, testOwnerID, testBusinessID, Requirement{Roles: []string{"owner"}})
	assert.NoError(t, err)

	_, err = resolver.Authorize(ctx, testOwnerID, testBusinessID, Requirement{Roles: []string{"Owner"}})
	var denied *DeniedError
	require.ErrorAs(t, err, &denied)
	assert.Equal(t, []string{"Owner"}, denied.Roles)

	_, err = resolver.Authorize(ctx, testCustomID, testBusinessID, Requirement{Roles: []string{"Shift Lead"}})
	assert.NoError(t, err)
}

func TestAuthorize_RoleOrPermissionsEitherPasses(t *testing.T) {
	resolver, _, _ := testResolver()
	ctx := context.Background()

	req := Requirement{
		Roles:       []string{"owner"},
		Permissions: []permission.Code{permission.ManageBilling},
	}

	// Owner passes on the role match.
	_, err := resolver.Authorize(ctx, testOwnerID, testBusinessID, req)
	assert.NoError(t, err)

	// The custom role holds neither the role nor the permission.
	_, err = resolver.Authorize(ctx, testCustomID, testBusinessID, req)
	var denied *DeniedError
	require.ErrorAs(t, err, &denied)
	assert.Equal(t, []string{"manage_billing"}, denied.Missing)
}

func TestAuthorize_EmptyRequirementNeedsMembershipOnly(t *testing.T) {
	resolver, _, _ := testResolver()
	ctx := context.Background()

	grant, err := resolver.Authorize(ctx, testStaffID, testBusinessID, Requirement{})
	require.NoError(t, err)
	assert.Equal(t, "m-staff", grant.Membership.ID)

	_, err = resolver.Authorize(ctx, testStrangerID, testBusinessID, Requirement{})
	assert.ErrorIs(t, err, ErrNotMember)
}

func TestAuthorize_RoleEditAppliesImmediately(t *testing.T) {
	resolver, membershipRepo, _ := testResolver()
	ctx := context.Background()

	req := Requirement{Permissions: []permission.Code{permission.ApproveLeave}}

	_, err := resolver.Authorize(ctx, testStaffID, testBusinessID, req)
	assert.Error(t, err)

	// Promote the member; the very next check must pick it up since
	// nothing is cached between requests.
	require.NoError(t, membershipRepo.UpdateRole(ctx, testStaffID, testBusinessID,
		membership.RoleTypePredefined, string(role.PredefinedManager)))

	_, err = resolver.Authorize(ctx, testStaffID, testBusinessID, req)
	assert.NoError(t, err)
}

func TestResolve_GrantCarriesBusinessScope(t *testing.T) {
	resolver, _, _ := testResolver()

	grant, err := resolver.Resolve(context.Background(), testOwnerID, testBusinessID)
	require.NoError(t, err)

	assert.Equal(t, testBusinessID, grant.BusinessID)
	assert.Equal(t, []string{"owner"}, grant.Roles)
}

func TestResolveAll_UnionsAcrossBusinesses(t *testing.T) {
	resolver, membershipRepo, _ := testResolver()
	ctx := context.Background()

	// Dishwasher in one business, manager in another.
	_, err := membershipRepo.Create(ctx, membership.Membership{
		ID:         "m-staff-2",
		UserID:     testStaffID,
		BusinessID: otherBusiness,
		RoleType:   membership.RoleTypePredefined,
		Role:       string(role.PredefinedManager),
	})
	require.NoError(t, err)

	grant, err := resolver.ResolveAll(ctx, testStaffID)
	require.NoError(t, err)

	// The aggregate is scoped to no single business.
	assert.Empty(t, grant.BusinessID)
	assert.ElementsMatch(t, []string{"dishwasher", "manager"}, grant.Roles)
	// Manager-only permissions come through the union.
	assert.True(t, grant.Has(permission.ManageRoles))
	assert.True(t, grant.Has(permission.ClockInOut))
}

func TestResolveAll_NoMemberships(t *testing.T) {
	resolver, _, _ := testResolver()

	_, err := resolver.ResolveAll(context.Background(), testStrangerID)
	assert.ErrorIs(t, err, ErrNotMember)
}

func TestAuthorizeAny_RoleMatchAcrossBusinesses(t *testing.T) {
	resolver, membershipRepo, _ := testResolver()
	ctx := context.Background()

	_, err := membershipRepo.Create(ctx, membership.Membership{
		ID:         "m-owner-2",
		UserID:     testStaffID,
		BusinessID: otherBusiness,
		RoleType:   membership.RoleTypePredefined,
		Role:       string(role.PredefinedOwner),
	})
	require.NoError(t, err)

	_, err = resolver.AuthorizeAny(ctx, testStaffID, Requirement{Roles: []string{"owner"}})
	assert.NoError(t, err)

	_, err = resolver.AuthorizeAny(ctx, testCustomID, Requirement{Roles: []string{"owner"}})
	var denied *DeniedError
	require.ErrorAs(t, err, &denied)
}
