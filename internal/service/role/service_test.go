package role

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/crewdesk-app/crewdesk-backend-go/internal/domain/membership"
	"github.com/crewdesk-app/crewdesk-backend-go/internal/domain/permission"
	"github.com/crewdesk-app/crewdesk-backend-go/internal/domain/role"
	"github.com/crewdesk-app/crewdesk-backend-go/internal/fixtures"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testBusinessID  = "0190a1b2-0000-7000-8000-000000000001"
	otherBusinessID = "0190a1b2-0000-7000-8000-000000000002"
	testUserID      = "0190a1b2-0000-7000-8000-0000000000aa"
)

type fakeRoleRepo struct {
	roles  map[string]role.CustomRole // keyed by id
	nextID int
}

func (f *fakeRoleRepo) Create(ctx context.Context, r role.CustomRole) (role.CustomRole, error) {
	f.nextID++
	r.ID = string(rune('a' + f.nextID))
	f.roles[r.ID] = r
	return r, nil
}

func (f *fakeRoleRepo) GetByID(ctx context.Context, id string) (role.CustomRole, error) {
	r, ok := f.roles[id]
	if !ok {
		return role.CustomRole{}, role.ErrRoleNotFound
	}
	return r, nil
}

func (f *fakeRoleRepo) GetByBusinessAndName(ctx context.Context, businessID, name string) (role.CustomRole, error) {
	for _, r := range f.roles {
		if r.BusinessID == businessID && r.Name == name {
			return r, nil
		}
	}
	return role.CustomRole{}, role.ErrRoleNotFound
}

func (f *fakeRoleRepo) ListByBusiness(ctx context.Context, businessID string) ([]role.CustomRole, error) {
	var out []role.CustomRole
	for _, r := range f.roles {
		if r.BusinessID == businessID {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeRoleRepo) Update(ctx context.Context, updated role.CustomRole) (role.CustomRole, error) {
	if _, ok := f.roles[updated.ID]; !ok {
		return role.CustomRole{}, role.ErrRoleNotFound
	}
	f.roles[updated.ID] = updated
	return updated, nil
}

func (f *fakeRoleRepo) ReplacePermissions(ctx context.Context, id string, permissions []byte) (role.CustomRole, error) {
	r, ok := f.roles[id]
	if !ok {
		return role.CustomRole{}, role.ErrRoleNotFound
	}
	if err := r.Permissions.UnmarshalJSON(permissions); err != nil {
		return role.CustomRole{}, err
	}
	f.roles[id] = r
	return r, nil
}

func (f *fakeRoleRepo) Delete(ctx context.Context, id string) error {
	if _, ok := f.roles[id]; !ok {
		return role.ErrRoleNotFound
	}
	delete(f.roles, id)
	return nil
}

func (f *fakeRoleRepo) ExistsByBusinessAndName(ctx context.Context, businessID, name string) (bool, error) {
	_, err := f.GetByBusinessAndName(ctx, businessID, name)
	return err == nil, nil
}

type fakeMembershipRepo struct {
	memberships map[string]membership.Membership // keyed by userID/businessID
}

func (f *fakeMembershipRepo) key(userID, businessID string) string {
	return userID + "/" + businessID
}

func (f *fakeMembershipRepo) Create(ctx context.Context, m membership.Membership) (membership.Membership, error) {
	f.memberships[f.key(m.UserID, m.BusinessID)] = m
	return m, nil
}

func (f *fakeMembershipRepo) GetByUserAndBusiness(ctx context.Context, userID, businessID string) (membership.Membership, error) {
	m, ok := f.memberships[f.key(userID, businessID)]
	if !ok {
		return membership.Membership{}, membership.ErrMembershipNotFound
	}
	return m, nil
}

func (f *fakeMembershipRepo) ListByUser(ctx context.Context, userID string) ([]membership.Membership, error) {
	return nil, nil
}

func (f *fakeMembershipRepo) ListByBusiness(ctx context.Context, businessID string) ([]membership.Membership, error) {
	return nil, nil
}

func (f *fakeMembershipRepo) UpdateRole(ctx context.Context, userID, businessID string, roleType membership.RoleType, roleName string) error {
	m, ok := f.memberships[f.key(userID, businessID)]
	if !ok {
		return membership.ErrMembershipNotFound
	}
	m.RoleType = roleType
	m.Role = roleName
	f.memberships[f.key(userID, businessID)] = m
	return nil
}

func (f *fakeMembershipRepo) Delete(ctx context.Context, userID, businessID string) error {
	delete(f.memberships, f.key(userID, businessID))
	return nil
}

func (f *fakeMembershipRepo) ExistsByUserAndBusiness(ctx context.Context, userID, businessID string) (bool, error) {
	_, ok := f.memberships[f.key(userID, businessID)]
	return ok, nil
}

type staticCatalogService struct {
	sections []permission.Section
}

func (s *staticCatalogService) GetCatalog(ctx context.Context) ([]permission.Section, error) {
	return s.sections, nil
}

func (s *staticCatalogService) Validate(ctx context.Context, blob permission.Blob) error {
	known := make(map[string]map[string]struct{}, len(s.sections))
	for _, section := range s.sections {
		codes := make(map[string]struct{}, len(section.Permissions))
		for _, p := range section.Permissions {
			codes[string(p.Code)] = struct{}{}
		}
		known[section.Code] = codes
	}
	for sectionCode, codes := range blob.Sections {
		sectionCodes, ok := known[permission.NormalizeSectionCode(sectionCode)]
		if !ok {
			return &permission.InvalidPermissionError{Section: sectionCode}
		}
		for _, code := range codes {
			if _, ok := sectionCodes[code]; !ok {
				return &permission.InvalidPermissionError{Section: sectionCode, Code: code}
			}
		}
	}
	return nil
}

func testRoleService() (role.RoleService, *fakeRoleRepo, *fakeMembershipRepo) {
	roleRepo := &fakeRoleRepo{roles: make(map[string]role.CustomRole)}
	membershipRepo := &fakeMembershipRepo{memberships: make(map[string]membership.Membership)}
	catalog := &staticCatalogService{sections: fixtures.DefaultCatalog()}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewRoleService(roleRepo, membershipRepo, catalog, logger), roleRepo, membershipRepo
}

func validCreateRequest() role.CreateRoleRequest {
	return role.CreateRoleRequest{
		BusinessID: testBusinessID,
		Name:       "Shift Lead",
		Permissions: permission.Blob{Sections: map[string][]string{
			permission.SectionScheduling: {
				string(permission.ViewSchedule),
				string(permission.PublishSchedule),
			},
		}},
	}
}

func TestCreate_Success(t *testing.T) {
	service, _, _ := testRoleService()

	created, err := service.Create(context.Background(), validCreateRequest())
	require.NoError(t, err)

	assert.NotEmpty(t, created.ID)
	assert.Equal(t, "Shift Lead", created.Name)
	assert.False(t, created.IsPredefined)
}

func TestCreate_NameConflict(t *testing.T) {
	service, _, _ := testRoleService()
	ctx := context.Background()

	_, err := service.Create(ctx, validCreateRequest())
	require.NoError(t, err)

	_, err = service.Create(ctx, validCreateRequest())
	assert.ErrorIs(t, err, role.ErrRoleNameExists)
}

func TestCreate_SameNameDifferentBusiness(t *testing.T) {
	service, _, _ := testRoleService()
	ctx := context.Background()

	_, err := service.Create(ctx, validCreateRequest())
	require.NoError(t, err)

	req := validCreateRequest()
	req.BusinessID = otherBusinessID
	_, err = service.Create(ctx, req)
	assert.NoError(t, err)
}

func TestCreate_UnknownPermissionRejected(t *testing.T) {
	service, _, _ := testRoleService()

	req := validCreateRequest()
	req.Permissions = permission.Blob{Sections: map[string][]string{
		permission.SectionScheduling: {"teleport_staff"},
	}}

	_, err := service.Create(context.Background(), req)
	var invalid *permission.InvalidPermissionError
	require.ErrorAs(t, err, &invalid)
	assert.Equal(t, "teleport_staff", invalid.Code)
}

func TestCreate_LegacyFlatBlobRejected(t *testing.T) {
	service, _, _ := testRoleService()

	req := validCreateRequest()
	req.Permissions = permission.Blob{Flat: []string{string(permission.ViewSchedule)}}

	_, err := service.Create(context.Background(), req)
	assert.Error(t, err)
}

func TestInstantiatePredefined_UnknownIdentifier(t *testing.T) {
	service, _, _ := testRoleService()

	_, err := service.InstantiatePredefined(context.Background(), role.InstantiatePredefinedRequest{
		BusinessID: testBusinessID,
		Role:       "barista",
	})
	assert.ErrorIs(t, err, role.ErrUnknownPredefined)
}

func TestInstantiatePredefined_GroupsBlobBySection(t *testing.T) {
	service, roleRepo, _ := testRoleService()

	created, err := service.InstantiatePredefined(context.Background(), role.InstantiatePredefinedRequest{
		BusinessID: testBusinessID,
		Role:       string(role.PredefinedManager),
	})
	require.NoError(t, err)

	assert.True(t, created.IsPredefined)
	assert.Equal(t, "manager", created.Name)

	stored := roleRepo.roles[created.ID]
	flattened := stored.Permissions.Flatten()
	assert.Contains(t, flattened, string(permission.ManageRoles))
	assert.NotContains(t, flattened, string(permission.ManageBilling))
	assert.NotContains(t, flattened, string(permission.DeleteBusiness))
	assert.Contains(t, stored.Permissions.Sections[permission.SectionScheduling], string(permission.PublishSchedule))
}

func TestInstantiatePredefined_Conflict(t *testing.T) {
	service, _, _ := testRoleService()
	ctx := context.Background()

	req := role.InstantiatePredefinedRequest{BusinessID: testBusinessID, Role: string(role.PredefinedWaiter)}
	_, err := service.InstantiatePredefined(ctx, req)
	require.NoError(t, err)

	_, err = service.InstantiatePredefined(ctx, req)
	assert.ErrorIs(t, err, role.ErrRoleNameExists)
}

func TestUpdate_RenamePredefinedRowRejected(t *testing.T) {
	service, _, _ := testRoleService()
	ctx := context.Background()

	created, err := service.InstantiatePredefined(ctx, role.InstantiatePredefinedRequest{
		BusinessID: testBusinessID,
		Role:       string(role.PredefinedCashier),
	})
	require.NoError(t, err)

	newName := "Till Operator"
	_, err = service.Update(ctx, testBusinessID, created.ID, role.UpdateRoleRequest{Name: &newName})
	assert.ErrorIs(t, err, role.ErrPredefinedReadOnly)

	// Permissions on an instantiated predefined row stay editable.
	_, err = service.Update(ctx, testBusinessID, created.ID, role.UpdateRoleRequest{
		Permissions: &permission.Blob{Sections: map[string][]string{
			permission.SectionAttendance: {string(permission.ClockInOut)},
		}},
	})
	assert.NoError(t, err)
}

func TestUpdate_RenameConflict(t *testing.T) {
	service, _, _ := testRoleService()
	ctx := context.Background()

	first, err := service.Create(ctx, validCreateRequest())
	require.NoError(t, err)

	req := validCreateRequest()
	req.Name = "Closer"
	_, err = service.Create(ctx, req)
	require.NoError(t, err)

	taken := "Closer"
	_, err = service.Update(ctx, testBusinessID, first.ID, role.UpdateRoleRequest{Name: &taken})
	assert.ErrorIs(t, err, role.ErrRoleNameExists)
}

func TestRoleOwnedByOtherBusinessIsInvisible(t *testing.T) {
	service, roleRepo, _ := testRoleService()
	ctx := context.Background()

	req := validCreateRequest()
	req.BusinessID = otherBusinessID
	created, err := service.Create(ctx, req)
	require.NoError(t, err)

	newName := "Hijacked"
	rename := role.UpdateRoleRequest{Name: &newName}
	replace := role.ReplacePermissionsRequest{Permissions: permission.Blob{Sections: map[string][]string{
		permission.SectionScheduling: {string(permission.ViewSchedule)},
	}}}

	t.Run("get", func(t *testing.T) {
		_, err := service.GetByID(ctx, testBusinessID, created.ID)
		assert.ErrorIs(t, err, role.ErrRoleNotFound)
	})
	t.Run("update", func(t *testing.T) {
		_, err := service.Update(ctx, testBusinessID, created.ID, rename)
		assert.ErrorIs(t, err, role.ErrRoleNotFound)
	})
	t.Run("replace permissions", func(t *testing.T) {
		_, err := service.ReplacePermissions(ctx, testBusinessID, created.ID, replace)
		assert.ErrorIs(t, err, role.ErrRoleNotFound)
	})
	t.Run("delete", func(t *testing.T) {
		err := service.Delete(ctx, testBusinessID, created.ID)
		assert.ErrorIs(t, err, role.ErrRoleNotFound)
	})

	// The owning business's row is untouched.
	stored := roleRepo.roles[created.ID]
	assert.Equal(t, "Shift Lead", stored.Name)
	assert.Contains(t, stored.Permissions.Sections[permission.SectionScheduling], string(permission.PublishSchedule))
}

func TestAggregateScopeCannotAddressRoleByID(t *testing.T) {
	service, _, _ := testRoleService()
	ctx := context.Background()

	created, err := service.Create(ctx, validCreateRequest())
	require.NoError(t, err)

	// An empty business scope matches no row, so ID-addressed
	// operations require naming the owning business.
	_, err = service.GetByID(ctx, "", created.ID)
	assert.ErrorIs(t, err, role.ErrRoleNotFound)
}

func TestAssign_PredefinedIdentifier(t *testing.T) {
	service, _, membershipRepo := testRoleService()

	err := service.Assign(context.Background(), role.AssignRoleRequest{
		UserID:     testUserID,
		BusinessID: testBusinessID,
		Role:       string(role.PredefinedBartender),
	})
	require.NoError(t, err)

	m, err := membershipRepo.GetByUserAndBusiness(context.Background(), testUserID, testBusinessID)
	require.NoError(t, err)
	assert.Equal(t, membership.RoleTypePredefined, m.RoleType)
	assert.Equal(t, "bartender", m.Role)
}

func TestAssign_CustomRoleByID(t *testing.T) {
	service, _, membershipRepo := testRoleService()
	ctx := context.Background()

	created, err := service.Create(ctx, validCreateRequest())
	require.NoError(t, err)

	err = service.Assign(ctx, role.AssignRoleRequest{
		UserID:     testUserID,
		BusinessID: testBusinessID,
		Role:       created.ID,
	})
	require.NoError(t, err)

	m, err := membershipRepo.GetByUserAndBusiness(ctx, testUserID, testBusinessID)
	require.NoError(t, err)
	assert.Equal(t, membership.RoleTypeCustom, m.RoleType)
	assert.Equal(t, "Shift Lead", m.Role)
}

func TestAssign_UnknownRole(t *testing.T) {
	service, _, _ := testRoleService()

	err := service.Assign(context.Background(), role.AssignRoleRequest{
		UserID:     testUserID,
		BusinessID: testBusinessID,
		Role:       "nonexistent-id",
	})
	assert.ErrorIs(t, err, role.ErrUnknownRole)
}

func TestAssign_CustomRoleFromOtherBusiness(t *testing.T) {
	service, _, _ := testRoleService()
	ctx := context.Background()

	req := validCreateRequest()
	req.BusinessID = otherBusinessID
	created, err := service.Create(ctx, req)
	require.NoError(t, err)

	err = service.Assign(ctx, role.AssignRoleRequest{
		UserID:     testUserID,
		BusinessID: testBusinessID,
		Role:       created.ID,
	})
	assert.ErrorIs(t, err, role.ErrUnknownRole)
}

func TestAssign_ReassignUpdatesExistingMembership(t *testing.T) {
	service, _, membershipRepo := testRoleService()
	ctx := context.Background()

	require.NoError(t, service.Assign(ctx, role.AssignRoleRequest{
		UserID:     testUserID,
		BusinessID: testBusinessID,
		Role:       string(role.PredefinedEmployee),
	}))
	require.NoError(t, service.Assign(ctx, role.AssignRoleRequest{
		UserID:     testUserID,
		BusinessID: testBusinessID,
		Role:       string(role.PredefinedManager),
	}))

	assert.Len(t, membershipRepo.memberships, 1)
	m, err := membershipRepo.GetByUserAndBusiness(ctx, testUserID, testBusinessID)
	require.NoError(t, err)
	assert.Equal(t, "manager", m.Role)
}
