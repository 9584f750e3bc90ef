package fixtures

import (
	"github.com/crewdesk-app/crewdesk-backend-go/internal/domain/permission"
)

// DefaultCatalog returns the seeded permission taxonomy. The rows are
// upserted at startup; administrators can add more rows later, so this
// is the starting catalog, not a closed enum.
func DefaultCatalog() []permission.Section {
	sections := []struct {
		code        string
		title       string
		permissions []struct {
			code  permission.Code
			label string
		}
	}{
		{
			code:  permission.SectionBusinessOverview,
			title: "Business overview",
			permissions: []struct {
				code  permission.Code
				label string
			}{
				{permission.ViewBusinessOverview, "View business overview"},
				{permission.EditBusinessOverview, "Edit business overview"},
				{permission.ViewBusinessAnalytics, "View business analytics"},
			},
		},
		{
			code:  permission.SectionPeopleManagement,
			title: "People management",
			permissions: []struct {
				code  permission.Code
				label string
			}{
				{permission.ManageTeamMembers, "Manage team members"},
				{permission.ViewEmployeeProfiles, "View employee profiles"},
				{permission.InviteMembers, "Invite members"},
				{permission.ManageRoles, "Manage roles"},
			},
		},
		{
			code:  permission.SectionJobManagement,
			title: "Job management",
			permissions: []struct {
				code  permission.Code
				label string
			}{
				{permission.PostJobs, "Post jobs"},
				{permission.ManageJobApplications, "Manage job applications"},
				{permission.ViewApplicants, "View applicants"},
			},
		},
		{
			code:  permission.SectionScheduling,
			title: "Scheduling",
			permissions: []struct {
				code  permission.Code
				label string
			}{
				{permission.ViewSchedule, "View schedule"},
				{permission.CreateShifts, "Create shifts"},
				{permission.EditShifts, "Edit shifts"},
				{permission.DeleteShifts, "Delete shifts"},
				{permission.PublishSchedule, "Publish schedule"},
			},
		},
		{
			code:  permission.SectionLeave,
			title: "Leave",
			permissions: []struct {
				code  permission.Code
				label string
			}{
				{permission.RequestLeave, "Request leave"},
				{permission.ApproveLeave, "Approve leave"},
				{permission.ViewLeaveBalances, "View leave balances"},
				{permission.ManageLeavePolicies, "Manage leave policies"},
			},
		},
		{
			code:  permission.SectionOvertime,
			title: "Overtime",
			permissions: []struct {
				code  permission.Code
				label string
			}{
				{permission.RequestOvertime, "Request overtime"},
				{permission.ApproveOvertime, "Approve overtime"},
				{permission.ViewOvertimeReports, "View overtime reports"},
			},
		},
		{
			code:  permission.SectionSwap,
			title: "Shift swaps",
			permissions: []struct {
				code  permission.Code
				label string
			}{
				{permission.RequestSwap, "Request shift swap"},
				{permission.ApproveSwap, "Approve shift swap"},
			},
		},
		{
			code:  permission.SectionShiftOps,
			title: "Shift operations",
			permissions: []struct {
				code  permission.Code
				label string
			}{
				{permission.OpenShift, "Open shift"},
				{permission.CloseShift, "Close shift"},
				{permission.AssignShift, "Assign shift"},
			},
		},
		{
			code:  permission.SectionAttendance,
			title: "Attendance",
			permissions: []struct {
				code  permission.Code
				label string
			}{
				{permission.ClockInOut, "Clock in and out"},
				{permission.ViewOwnAttendance, "View own attendance"},
				{permission.ViewTeamAttendance, "View team attendance"},
				{permission.EditAttendance, "Edit attendance records"},
			},
		},
		{
			code:  permission.SectionBusinessManagement,
			title: "Business management",
			permissions: []struct {
				code  permission.Code
				label string
			}{
				{permission.EditBusinessSettings, "Edit business settings"},
				{permission.ManageBilling, "Manage billing"},
				{permission.ManageRewards, "Manage rewards"},
				{permission.AwardCoins, "Award coins"},
				{permission.DeleteBusiness, "Delete business"},
			},
		},
	}

	result := make([]permission.Section, 0, len(sections))
	for i, s := range sections {
		section := permission.Section{
			Code:      s.code,
			Title:     s.title,
			SortOrder: i + 1,
		}
		for j, p := range s.permissions {
			section.Permissions = append(section.Permissions, permission.Permission{
				Code:        p.code,
				Label:       p.label,
				SectionCode: s.code,
				SortOrder:   j + 1,
			})
		}
		result = append(result, section)
	}
	return result
}
