package postgresql

import (
	"testing"

	"github.com/crewdesk-app/crewdesk-backend-go/internal/domain/attendance"
	"github.com/crewdesk-app/crewdesk-backend-go/internal/domain/auth"
	"github.com/crewdesk-app/crewdesk-backend-go/internal/domain/business"
	"github.com/crewdesk-app/crewdesk-backend-go/internal/domain/coin"
	"github.com/crewdesk-app/crewdesk-backend-go/internal/domain/job"
	"github.com/crewdesk-app/crewdesk-backend-go/internal/domain/leave"
	"github.com/crewdesk-app/crewdesk-backend-go/internal/domain/membership"
	"github.com/crewdesk-app/crewdesk-backend-go/internal/domain/role"
	"github.com/crewdesk-app/crewdesk-backend-go/internal/domain/shift"
	"github.com/crewdesk-app/crewdesk-backend-go/internal/domain/user"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
)

// noRow stands in for a pgx.Row whose query matched nothing.
type noRow struct{}

func (noRow) Scan(dest ...any) error { return pgx.ErrNoRows }

// Every scan helper must translate pgx.ErrNoRows into the domain
// sentinel its consumers match on, so a missing row surfaces as
// not-found instead of a bare driver error.
func TestScanHelpers_NoRowsBecomeDomainNotFound(t *testing.T) {
	t.Run("user", func(t *testing.T) {
		_, err := scanUser(noRow{})
		assert.ErrorIs(t, err, user.ErrUserNotFound)
	})
	t.Run("membership", func(t *testing.T) {
		_, err := scanMembership(noRow{})
		assert.ErrorIs(t, err, membership.ErrMembershipNotFound)
	})
	t.Run("custom role", func(t *testing.T) {
		_, err := scanCustomRole(noRow{})
		assert.ErrorIs(t, err, role.ErrRoleNotFound)
	})
	t.Run("business", func(t *testing.T) {
		_, err := scanBusiness(noRow{})
		assert.ErrorIs(t, err, business.ErrBusinessNotFound)
	})
	t.Run("shift", func(t *testing.T) {
		_, err := scanShift(noRow{})
		assert.ErrorIs(t, err, shift.ErrShiftNotFound)
	})
	t.Run("swap", func(t *testing.T) {
		_, err := scanSwap(noRow{})
		assert.ErrorIs(t, err, shift.ErrSwapNotFound)
	})
	t.Run("attendance", func(t *testing.T) {
		_, err := scanAttendance(noRow{})
		assert.ErrorIs(t, err, attendance.ErrAttendanceNotFound)
	})
	t.Run("overtime", func(t *testing.T) {
		_, err := scanOvertime(noRow{})
		assert.ErrorIs(t, err, attendance.ErrOvertimeNotFound)
	})
	t.Run("leave request", func(t *testing.T) {
		_, err := scanLeaveRequest(noRow{})
		assert.ErrorIs(t, err, leave.ErrLeaveRequestNotFound)
	})
	t.Run("leave balance", func(t *testing.T) {
		_, err := scanLeaveBalance(noRow{})
		assert.ErrorIs(t, err, leave.ErrBalanceNotFound)
	})
	t.Run("reward", func(t *testing.T) {
		_, err := scanReward(noRow{})
		assert.ErrorIs(t, err, coin.ErrRewardNotFound)
	})
	t.Run("job post", func(t *testing.T) {
		_, err := scanJobPost(noRow{})
		assert.ErrorIs(t, err, job.ErrPostNotFound)
	})
	t.Run("job application", func(t *testing.T) {
		_, err := scanJobApplication(noRow{})
		assert.ErrorIs(t, err, job.ErrApplicationNotFound)
	})
	t.Run("connection", func(t *testing.T) {
		_, err := scanConnection(noRow{})
		assert.ErrorIs(t, err, job.ErrConnectionNotFound)
	})
	t.Run("otp", func(t *testing.T) {
		_, err := scanOTP(noRow{})
		assert.ErrorIs(t, err, auth.ErrOTPNotFound)
	})
	t.Run("refresh token", func(t *testing.T) {
		_, err := scanRefreshToken(noRow{})
		assert.ErrorIs(t, err, auth.ErrInvalidToken)
	})
}
