package permission

// Section codes
const (
	SectionBusinessOverview   = "business_overview"
	SectionPeopleManagement   = "people_management"
	SectionJobManagement      = "job_management"
	SectionScheduling         = "scheduling"
	SectionLeave              = "leave"
	SectionOvertime           = "overtime"
	SectionSwap               = "swap"
	SectionShiftOps           = "shift_ops"
	SectionAttendance         = "attendance"
	SectionBusinessManagement = "business_management"
)

type Code string

const (
	// Business overview
	ViewBusinessOverview  Code = "view_business_overview"
	EditBusinessOverview  Code = "edit_business_overview"
	ViewBusinessAnalytics Code = "view_business_analytics"

	// People management
	ManageTeamMembers    Code = "manage_team_members"
	ViewEmployeeProfiles Code = "view_employee_profiles"
	InviteMembers        Code = "invite_members"
	ManageRoles          Code = "manage_roles"

	// Job management
	PostJobs              Code = "post_jobs"
	ManageJobApplications Code = "manage_job_applications"
	ViewApplicants        Code = "view_applicants"

	// Scheduling
	ViewSchedule    Code = "view_schedule"
	CreateShifts    Code = "create_shifts"
	EditShifts      Code = "edit_shifts"
	DeleteShifts    Code = "delete_shifts"
	PublishSchedule Code = "publish_schedule"

	// Leave
	RequestLeave       Code = "request_leave"
	ApproveLeave       Code = "approve_leave"
	ViewLeaveBalances  Code = "view_leave_balances"
	ManageLeavePolicies Code = "manage_leave_policies"

	// Overtime
	RequestOvertime     Code = "request_overtime"
	ApproveOvertime     Code = "approve_overtime"
	ViewOvertimeReports Code = "view_overtime_reports"

	// Shift swaps
	RequestSwap Code = "request_swap"
	ApproveSwap Code = "approve_swap"

	// Shift operations
	OpenShift   Code = "open_shift"
	CloseShift  Code = "close_shift"
	AssignShift Code = "assign_shift"

	// Attendance
	ClockInOut         Code = "clock_in_out"
	ViewOwnAttendance  Code = "view_own_attendance"
	ViewTeamAttendance Code = "view_team_attendance"
	EditAttendance     Code = "edit_attendance"

	// Business management
	EditBusinessSettings Code = "edit_business_settings"
	ManageBilling        Code = "manage_billing"
	ManageRewards        Code = "manage_rewards"
	AwardCoins           Code = "award_coins"
	DeleteBusiness       Code = "delete_business"
)

// Permission is a single catalog entry, owned by exactly one section.
type Permission struct {
	Code        Code
	Label       string
	SectionCode string
	SortOrder   int
}

// Section groups permissions for display and validation.
type Section struct {
	Code        string
	Title       string
	SortOrder   int
	Permissions []Permission
}
