package response

import (
	"errors"
	"net/http"

	"github.com/crewdesk-app/crewdesk-backend-go/internal/domain/attendance"
	"github.com/crewdesk-app/crewdesk-backend-go/internal/domain/auth"
	"github.com/crewdesk-app/crewdesk-backend-go/internal/domain/business"
	"github.com/crewdesk-app/crewdesk-backend-go/internal/domain/coin"
	"github.com/crewdesk-app/crewdesk-backend-go/internal/domain/job"
	"github.com/crewdesk-app/crewdesk-backend-go/internal/domain/leave"
	"github.com/crewdesk-app/crewdesk-backend-go/internal/domain/membership"
	"github.com/crewdesk-app/crewdesk-backend-go/internal/domain/permission"
	"github.com/crewdesk-app/crewdesk-backend-go/internal/domain/role"
	"github.com/crewdesk-app/crewdesk-backend-go/internal/domain/shift"
	"github.com/crewdesk-app/crewdesk-backend-go/internal/domain/user"
	"github.com/crewdesk-app/crewdesk-backend-go/internal/pkg/validator"
	"github.com/crewdesk-app/crewdesk-backend-go/internal/service/access"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	var invalidPermission *permission.InvalidPermissionError
	if errors.As(err, &invalidPermission) {
		BadRequest(w, invalidPermission.Error(), nil)
		return
	}

	var denied *access.DeniedError
	if errors.As(err, &denied) {
		PermissionDenied(w, denied.Error(), denied.Missing)
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, err.Error())
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid token")
	case errors.Is(err, auth.ErrTokenExpired):
		Unauthorized(w, "Token expired")
	case errors.Is(err, auth.ErrRefreshTokenRevoked):
		Unauthorized(w, "Refresh token revoked")
	case errors.Is(err, auth.ErrEmailNotVerified):
		Forbidden(w, "Email not verified")
	case errors.Is(err, auth.ErrOTPNotFound):
		BadRequest(w, "No active verification code", nil)
	case errors.Is(err, auth.ErrOTPInvalid):
		BadRequest(w, "Invalid verification code", nil)
	case errors.Is(err, auth.ErrOTPExpired):
		BadRequest(w, "Verification code expired", nil)
	case errors.Is(err, auth.ErrOTPTooManyAttempts):
		TooManyRequests(w, "Too many failed verification attempts")
	case errors.Is(err, auth.ErrOTPResendTooSoon):
		TooManyRequests(w, "Verification code was requested too recently")

	// User domain errors
	case errors.Is(err, user.ErrUserNotFound):
		NotFound(w, "User not found")
	case errors.Is(err, user.ErrUserEmailExists):
		Conflict(w, "Email already registered")

	// Business and membership errors
	case errors.Is(err, business.ErrBusinessNotFound):
		NotFound(w, "Business not found")
	case errors.Is(err, business.ErrNotBusinessOwner):
		Forbidden(w, "Only the business owner may do this")
	case errors.Is(err, membership.ErrMembershipNotFound):
		NotFound(w, "Membership not found")
	case errors.Is(err, membership.ErrMembershipExists):
		Conflict(w, "User is already a member of this business")
	case errors.Is(err, access.ErrNotMember):
		Forbidden(w, "You are not a member of this business")

	// Role errors
	case errors.Is(err, role.ErrRoleNotFound):
		NotFound(w, "Role not found")
	case errors.Is(err, role.ErrRoleNameExists):
		Conflict(w, "Role name already exists in this business")
	case errors.Is(err, role.ErrUnknownPredefined):
		BadRequest(w, "Unknown predefined role identifier", nil)
	case errors.Is(err, role.ErrUnknownRole):
		BadRequest(w, "Role is neither a predefined identifier nor an existing custom role", nil)
	case errors.Is(err, role.ErrPredefinedReadOnly):
		Conflict(w, "Predefined role rows cannot be renamed")

	// Shift and swap errors
	case errors.Is(err, shift.ErrShiftNotFound):
		NotFound(w, "Shift not found")
	case errors.Is(err, shift.ErrShiftNotPublished),
		errors.Is(err, shift.ErrShiftAlreadyPublished),
		errors.Is(err, shift.ErrShiftAlreadyOpen),
		errors.Is(err, shift.ErrShiftAlreadyClosed),
		errors.Is(err, shift.ErrShiftNotOpen),
		errors.Is(err, shift.ErrInvalidShiftWindow):
		Conflict(w, err.Error())
	case errors.Is(err, shift.ErrSwapNotFound):
		NotFound(w, "Swap request not found")
	case errors.Is(err, shift.ErrSwapAlreadyProcessed):
		Conflict(w, "Swap request already processed")
	case errors.Is(err, shift.ErrSwapNotShiftAssignee):
		Forbidden(w, "Only the shift assignee may request a swap")
	case errors.Is(err, shift.ErrSwapCounterpartMissing):
		BadRequest(w, "Swap counterpart is not a member of this business", nil)

	// Attendance and overtime errors
	case errors.Is(err, attendance.ErrAttendanceNotFound):
		NotFound(w, "Attendance record not found")
	case errors.Is(err, attendance.ErrAlreadyClockedIn):
		Conflict(w, "Already clocked in")
	case errors.Is(err, attendance.ErrNotClockedIn):
		Conflict(w, "No open attendance record to clock out of")
	case errors.Is(err, attendance.ErrOvertimeNotFound):
		NotFound(w, "Overtime request not found")
	case errors.Is(err, attendance.ErrOvertimeAlreadyProcessed):
		Conflict(w, "Overtime request already processed")

	// Leave errors
	case errors.Is(err, leave.ErrLeaveRequestNotFound):
		NotFound(w, "Leave request not found")
	case errors.Is(err, leave.ErrLeaveRequestAlreadyProcessed):
		Conflict(w, "Leave request already processed")
	case errors.Is(err, leave.ErrInsufficientBalance):
		BadRequest(w, "Insufficient leave balance", nil)
	case errors.Is(err, leave.ErrBalanceNotFound):
		NotFound(w, "Leave balance not found")

	// Coin and reward errors
	case errors.Is(err, coin.ErrInsufficientCoins):
		BadRequest(w, "Insufficient coin balance", nil)
	case errors.Is(err, coin.ErrRewardNotFound):
		NotFound(w, "Reward not found")
	case errors.Is(err, coin.ErrRewardInactive):
		Conflict(w, "Reward is not active")
	case errors.Is(err, coin.ErrInvalidAmount):
		BadRequest(w, "Coin amount must not be zero", nil)

	// Job board errors
	case errors.Is(err, job.ErrPostNotFound):
		NotFound(w, "Job post not found")
	case errors.Is(err, job.ErrPostClosed):
		Conflict(w, "Job post is closed")
	case errors.Is(err, job.ErrAlreadyApplied):
		Conflict(w, "Already applied to this job post")
	case errors.Is(err, job.ErrApplicationNotFound):
		NotFound(w, "Application not found")
	case errors.Is(err, job.ErrConnectionNotFound):
		NotFound(w, "Connection not found")
	case errors.Is(err, job.ErrConnectionExists):
		Conflict(w, "Connection already exists")
	case errors.Is(err, job.ErrConnectionSelf):
		BadRequest(w, "Cannot connect with yourself", nil)
	case errors.Is(err, job.ErrConnectionNotRecipient):
		Forbidden(w, "Only the recipient may accept a connection")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
