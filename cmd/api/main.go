package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/crewdesk-app/crewdesk-backend-go/internal/config"
	"github.com/crewdesk-app/crewdesk-backend-go/internal/fixtures"
	appHTTP "github.com/crewdesk-app/crewdesk-backend-go/internal/handler/http"
	"github.com/crewdesk-app/crewdesk-backend-go/internal/pkg/cron"
	"github.com/crewdesk-app/crewdesk-backend-go/internal/pkg/database"
	"github.com/crewdesk-app/crewdesk-backend-go/internal/pkg/email"
	"github.com/crewdesk-app/crewdesk-backend-go/internal/pkg/jwt"
	"github.com/crewdesk-app/crewdesk-backend-go/internal/pkg/oauth"
	"github.com/crewdesk-app/crewdesk-backend-go/internal/repository/postgresql"
	accessService "github.com/crewdesk-app/crewdesk-backend-go/internal/service/access"
	attendanceService "github.com/crewdesk-app/crewdesk-backend-go/internal/service/attendance"
	authService "github.com/crewdesk-app/crewdesk-backend-go/internal/service/auth"
	businessService "github.com/crewdesk-app/crewdesk-backend-go/internal/service/business"
	coinService "github.com/crewdesk-app/crewdesk-backend-go/internal/service/coin"
	jobService "github.com/crewdesk-app/crewdesk-backend-go/internal/service/job"
	leaveService "github.com/crewdesk-app/crewdesk-backend-go/internal/service/leave"
	permissionService "github.com/crewdesk-app/crewdesk-backend-go/internal/service/permission"
	roleService "github.com/crewdesk-app/crewdesk-backend-go/internal/service/role"
	shiftService "github.com/crewdesk-app/crewdesk-backend-go/internal/service/shift"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}
	if err := cfg.Validate(); err != nil {
		fmt.Println("Invalid config:", err)
		return
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil)).With(
		slog.String("app", "crewdesk"),
	)

	db, err := database.NewPostgreSQLDB(context.Background(), cfg.DatabaseURL())
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}
	defer db.Close()

	// Repositories
	userRepo := postgresql.NewUserRepository(db)
	otpRepo := postgresql.NewOTPRepository(db)
	refreshTokenRepo := postgresql.NewRefreshTokenRepository(db)
	businessRepo := postgresql.NewBusinessRepository(db)
	membershipRepo := postgresql.NewMembershipRepository(db)
	catalogRepo := postgresql.NewCatalogRepository(db)
	customRoleRepo := postgresql.NewCustomRoleRepository(db)
	shiftRepo := postgresql.NewShiftRepository(db)
	swapRepo := postgresql.NewSwapRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)
	overtimeRepo := postgresql.NewOvertimeRepository(db)
	leaveRequestRepo := postgresql.NewLeaveRequestRepository(db)
	leaveBalanceRepo := postgresql.NewLeaveBalanceRepository(db)
	ledgerRepo := postgresql.NewLedgerRepository(db)
	rewardRepo := postgresql.NewRewardRepository(db)
	jobPostRepo := postgresql.NewJobPostRepository(db)
	jobApplicationRepo := postgresql.NewJobApplicationRepository(db)
	connectionRepo := postgresql.NewConnectionRepository(db)

	// The permission catalog is code-defined; make sure the database
	// mirrors it before serving traffic.
	seedCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	if err := catalogRepo.SeedDefaults(seedCtx, fixtures.DefaultCatalog()); err != nil {
		cancel()
		log.Fatal("Failed to seed permission catalog: ", err)
	}
	cancel()

	// Shared services
	jwtSvc := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)
	googleSvc := oauth.NewGoogleService(cfg.OAuth2Google.ClientID, cfg.OAuth2Google.ClientSecret, cfg.OAuth2Google.RedirectURL, cfg.OAuth2Google.Scopes)
	emailSvc, err := email.NewEmailService(cfg.SMTP)
	if err != nil {
		log.Fatal("Failed to initialize email service: ", err)
	}

	// Domain services
	catalogSvc := permissionService.NewCatalogService(catalogRepo, logger)
	resolver := accessService.NewResolver(membershipRepo, customRoleRepo, logger)
	authSvc := authService.NewAuthService(userRepo, otpRepo, refreshTokenRepo, jwtSvc, emailSvc, cfg.OTP, logger)
	businessSvc := businessService.NewBusinessService(db, businessRepo, membershipRepo, logger)
	roleSvc := roleService.NewRoleService(customRoleRepo, membershipRepo, catalogSvc, logger)
	shiftSvc := shiftService.NewShiftService(db, shiftRepo, swapRepo, membershipRepo, logger)
	coinSvc := coinService.NewCoinService(db, ledgerRepo, rewardRepo, membershipRepo, logger)
	attendanceSvc := attendanceService.NewAttendanceService(attendanceRepo, overtimeRepo, membershipRepo, coinSvc, logger)
	leaveSvc := leaveService.NewLeaveService(db, leaveRequestRepo, leaveBalanceRepo, membershipRepo, logger)
	jobSvc := jobService.NewJobService(jobPostRepo, jobApplicationRepo, connectionRepo, logger)

	// Housekeeping
	scheduler := cron.NewScheduler(logger)
	scheduler.AddJob("purge-expired-otps", time.Hour, authSvc.PurgeExpiredOTPs)
	scheduler.AddJob("purge-expired-refresh-tokens", 6*time.Hour, authSvc.PurgeExpiredRefreshTokens)
	scheduler.Start()
	defer scheduler.Stop()

	router := appHTTP.NewRouter(appHTTP.RouterDeps{
		Config:            cfg,
		JWTService:        jwtSvc,
		Resolver:          resolver,
		AuthHandler:       appHTTP.NewAuthHandler(jwtSvc, authSvc, googleSvc),
		BusinessHandler:   appHTTP.NewBusinessHandler(businessSvc),
		RoleHandler:       appHTTP.NewRoleHandler(roleSvc),
		ShiftHandler:      appHTTP.NewShiftHandler(shiftSvc),
		AttendanceHandler: appHTTP.NewAttendanceHandler(attendanceSvc),
		LeaveHandler:      appHTTP.NewLeaveHandler(leaveSvc),
		CoinHandler:       appHTTP.NewCoinHandler(coinSvc),
		JobHandler:        appHTTP.NewJobHandler(jobSvc),
	})

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
