package role

import (
	"testing"

	"github.com/crewdesk-app/crewdesk-backend-go/internal/domain/permission"
	"github.com/stretchr/testify/assert"
)

func TestOwnerHoldsEveryPermission(t *testing.T) {
	owner := PermissionsFor(PredefinedOwner)

	assert.Len(t, owner, len(fullPermissionSet))
	for _, code := range fullPermissionSet {
		assert.True(t, HasPermission(PredefinedOwner, code), "owner missing %s", code)
	}
}

func TestManagerLacksBillingAndDeletion(t *testing.T) {
	assert.False(t, HasPermission(PredefinedManager, permission.ManageBilling))
	assert.False(t, HasPermission(PredefinedManager, permission.DeleteBusiness))

	for _, code := range fullPermissionSet {
		if code == permission.ManageBilling || code == permission.DeleteBusiness {
			continue
		}
		assert.True(t, HasPermission(PredefinedManager, code), "manager missing %s", code)
	}
}

func TestFrontOfHouseSeesBusinessOverview(t *testing.T) {
	for _, r := range []Predefined{PredefinedCashier, PredefinedBartender, PredefinedWaiter, PredefinedEmployee} {
		assert.True(t, HasPermission(r, permission.ViewBusinessOverview), "%s should see the overview", r)
	}
	for _, r := range []Predefined{PredefinedHousekeepingStaff, PredefinedDishwasher} {
		assert.False(t, HasPermission(r, permission.ViewBusinessOverview), "%s should not see the overview", r)
	}
}

func TestStaffRolesCannotManage(t *testing.T) {
	staff := []Predefined{
		PredefinedCashier,
		PredefinedBartender,
		PredefinedHousekeepingStaff,
		PredefinedWaiter,
		PredefinedDishwasher,
		PredefinedEmployee,
	}
	for _, r := range staff {
		assert.False(t, HasPermission(r, permission.ManageRoles), "%s should not manage roles", r)
		assert.False(t, HasPermission(r, permission.OpenShift), "%s should not open shifts", r)
		assert.False(t, HasPermission(r, permission.ApproveLeave), "%s should not approve leave", r)
		assert.True(t, HasPermission(r, permission.ClockInOut), "%s should clock in", r)
		assert.True(t, HasPermission(r, permission.RequestSwap), "%s should request swaps", r)
	}
}

func TestIsPredefined_CaseSensitive(t *testing.T) {
	assert.True(t, IsPredefined("owner"))
	assert.True(t, IsPredefined("housekeeping_staff"))
	assert.False(t, IsPredefined("Owner"))
	assert.False(t, IsPredefined("OWNER"))
	assert.False(t, IsPredefined("barista"))
	assert.False(t, IsPredefined(""))
}

func TestPermissionsFor_UnknownRole(t *testing.T) {
	assert.Nil(t, PermissionsFor(Predefined("barista")))
}

func TestPermissionsFor_ReturnsCopy(t *testing.T) {
	first := PermissionsFor(PredefinedDishwasher)
	first[0] = permission.DeleteBusiness

	second := PermissionsFor(PredefinedDishwasher)
	assert.NotEqual(t, permission.DeleteBusiness, second[0])
}

func TestAllPredefinedCoversPermissionTable(t *testing.T) {
	listed := AllPredefined()
	assert.Len(t, listed, len(predefinedPermissions))
	for _, r := range listed {
		assert.True(t, IsPredefined(string(r)))
	}
}
