package role

import "github.com/crewdesk-app/crewdesk-backend-go/internal/domain/permission"

// Predefined is one of the fixed, code-defined role identifiers.
type Predefined string

const (
	PredefinedOwner            Predefined = "owner"
	PredefinedManager          Predefined = "manager"
	PredefinedCashier          Predefined = "cashier"
	PredefinedBartender        Predefined = "bartender"
	PredefinedHousekeepingStaff Predefined = "housekeeping_staff"
	PredefinedWaiter           Predefined = "waiter"
	PredefinedDishwasher       Predefined = "dishwasher"
	PredefinedEmployee         Predefined = "employee"
)

// fullPermissionSet is everything in the catalog; owners get all of it.
var fullPermissionSet = []permission.Code{
	permission.ViewBusinessOverview,
	permission.EditBusinessOverview,
	permission.ViewBusinessAnalytics,
	permission.ManageTeamMembers,
	permission.ViewEmployeeProfiles,
	permission.InviteMembers,
	permission.ManageRoles,
	permission.PostJobs,
	permission.ManageJobApplications,
	permission.ViewApplicants,
	permission.ViewSchedule,
	permission.CreateShifts,
	permission.EditShifts,
	permission.DeleteShifts,
	permission.PublishSchedule,
	permission.RequestLeave,
	permission.ApproveLeave,
	permission.ViewLeaveBalances,
	permission.ManageLeavePolicies,
	permission.RequestOvertime,
	permission.ApproveOvertime,
	permission.ViewOvertimeReports,
	permission.RequestSwap,
	permission.ApproveSwap,
	permission.OpenShift,
	permission.CloseShift,
	permission.AssignShift,
	permission.ClockInOut,
	permission.ViewOwnAttendance,
	permission.ViewTeamAttendance,
	permission.EditAttendance,
	permission.EditBusinessSettings,
	permission.ManageBilling,
	permission.ManageRewards,
	permission.AwardCoins,
	permission.DeleteBusiness,
}

// frontOfHouseSet is the view/request subset shared by front-of-house
// roles (cashier, bartender, waiter) and the generic employee role.
var frontOfHouseSet = []permission.Code{
	permission.ViewBusinessOverview,
	permission.ViewSchedule,
	permission.RequestLeave,
	permission.ViewLeaveBalances,
	permission.RequestOvertime,
	permission.RequestSwap,
	permission.ClockInOut,
	permission.ViewOwnAttendance,
}

// backOfHouseSet is the same subset without any business-overview
// visibility, for housekeeping staff and dishwashers.
var backOfHouseSet = []permission.Code{
	permission.ViewSchedule,
	permission.RequestLeave,
	permission.ViewLeaveBalances,
	permission.RequestOvertime,
	permission.RequestSwap,
	permission.ClockInOut,
	permission.ViewOwnAttendance,
}

// predefinedPermissions maps every predefined role to its hand-curated
// permission list. Built once at process start and never mutated, so it
// is safe for concurrent reads.
var predefinedPermissions = map[Predefined][]permission.Code{
	PredefinedOwner: fullPermissionSet,
	PredefinedManager: {
		permission.ViewBusinessOverview,
		permission.EditBusinessOverview,
		permission.ViewBusinessAnalytics,
		permission.ManageTeamMembers,
		permission.ViewEmployeeProfiles,
		permission.InviteMembers,
		permission.ManageRoles,
		permission.PostJobs,
		permission.ManageJobApplications,
		permission.ViewApplicants,
		permission.ViewSchedule,
		permission.CreateShifts,
		permission.EditShifts,
		permission.DeleteShifts,
		permission.PublishSchedule,
		permission.RequestLeave,
		permission.ApproveLeave,
		permission.ViewLeaveBalances,
		permission.ManageLeavePolicies,
		permission.RequestOvertime,
		permission.ApproveOvertime,
		permission.ViewOvertimeReports,
		permission.RequestSwap,
		permission.ApproveSwap,
		permission.OpenShift,
		permission.CloseShift,
		permission.AssignShift,
		permission.ClockInOut,
		permission.ViewOwnAttendance,
		permission.ViewTeamAttendance,
		permission.EditAttendance,
		permission.EditBusinessSettings,
		permission.ManageRewards,
		permission.AwardCoins,
	},
	PredefinedCashier:          frontOfHouseSet,
	PredefinedBartender:        frontOfHouseSet,
	PredefinedWaiter:           frontOfHouseSet,
	PredefinedEmployee:         frontOfHouseSet,
	PredefinedHousekeepingStaff: backOfHouseSet,
	PredefinedDishwasher:       backOfHouseSet,
}

// AllPredefined lists every predefined role identifier.
func AllPredefined() []Predefined {
	return []Predefined{
		PredefinedOwner,
		PredefinedManager,
		PredefinedCashier,
		PredefinedBartender,
		PredefinedHousekeepingStaff,
		PredefinedWaiter,
		PredefinedDishwasher,
		PredefinedEmployee,
	}
}

// IsPredefined reports whether name is a known predefined role
// identifier. The match is case-sensitive.
func IsPredefined(name string) bool {
	_, ok := predefinedPermissions[Predefined(name)]
	return ok
}

// PermissionsFor returns the static permission list for a predefined
// role. Unknown identifiers return an empty list, which is how callers
// distinguish "custom role name" from "known role".
func PermissionsFor(r Predefined) []permission.Code {
	permissions, ok := predefinedPermissions[r]
	if !ok {
		return nil
	}
	out := make([]permission.Code, len(permissions))
	copy(out, permissions)
	return out
}

// HasPermission checks if a predefined role has a specific permission.
func HasPermission(r Predefined, code permission.Code) bool {
	for _, p := range predefinedPermissions[r] {
		if p == code {
			return true
		}
	}
	return false
}
