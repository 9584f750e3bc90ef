package http

import (
	"log/slog"
	"os"

	"github.com/crewdesk-app/crewdesk-backend-go/internal/config"
	"github.com/crewdesk-app/crewdesk-backend-go/internal/domain/permission"
	"github.com/crewdesk-app/crewdesk-backend-go/internal/domain/role"
	"github.com/crewdesk-app/crewdesk-backend-go/internal/handler/http/middleware"
	"github.com/crewdesk-app/crewdesk-backend-go/internal/pkg/jwt"
	"github.com/crewdesk-app/crewdesk-backend-go/internal/service/access"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
)

type RouterDeps struct {
	Config            *config.Config
	JWTService        jwt.Service
	Resolver          access.Resolver
	AuthHandler       AuthHandler
	BusinessHandler   BusinessHandler
	RoleHandler       RoleHandler
	ShiftHandler      ShiftHandler
	AttendanceHandler AttendanceHandler
	LeaveHandler      LeaveHandler
	CoinHandler       CoinHandler
	JobHandler        JobHandler
}

func NewRouter(deps RouterDeps) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "crewdesk"),
		slog.String("env", deps.Config.App.Env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{deps.Config.App.FrontendURL},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelDebug,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.AllowContentEncoding("application/json"))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	guard := middleware.NewGuard(deps.Resolver)

	r.Route("/api/v1", func(r chi.Router) {

		r.Route("/auth", func(r chi.Router) {
			r.Post("/register", deps.AuthHandler.Register)
			r.Post("/verify-otp", deps.AuthHandler.VerifyOTP)
			r.Post("/resend-otp", deps.AuthHandler.ResendOTP)
			r.Post("/login", deps.AuthHandler.Login)
			r.Post("/refresh", deps.AuthHandler.RefreshToken)
			r.Post("/logout", deps.AuthHandler.Logout)
			r.Route("/oauth", func(r chi.Router) {
				r.Get("/google", deps.AuthHandler.LoginWithGoogle)
				r.Get("/callback/google", deps.AuthHandler.OAuthCallbackGoogle)
			})
		})

		// Everything below resolves authorization per request against
		// the database.
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(deps.JWTService.JWTAuth()))
			r.Use(middleware.AuthRequired(deps.JWTService.JWTAuth()))

			r.Route("/businesses", func(r chi.Router) {
				r.Post("/", deps.BusinessHandler.Create)
				r.Get("/", deps.BusinessHandler.ListMine)

				r.Route("/{businessID}", func(r chi.Router) {
					r.With(guard.RequirePermissions(permission.ViewBusinessOverview)).
						Get("/", deps.BusinessHandler.Get)
					r.With(guard.RequirePermissions(permission.EditBusinessSettings)).
						Put("/", deps.BusinessHandler.Update)
					r.With(guard.RequirePermissions(permission.DeleteBusiness)).
						Delete("/", deps.BusinessHandler.Delete)
					r.With(guard.RequirePermissions(permission.ViewEmployeeProfiles)).
						Get("/members", deps.BusinessHandler.ListMembers)
				})
			})

			r.Route("/roles", func(r chi.Router) {
				r.Get("/catalog", deps.RoleHandler.Catalog)

				// Listing a business's roles exposes every permission
				// blob, so it stays with the owner.
				r.With(guard.RequireRoles(string(role.PredefinedOwner))).Get("/", deps.RoleHandler.List)

				r.Group(func(r chi.Router) {
					r.Use(guard.RequirePermissions(permission.ManageRoles))
					r.Post("/", deps.RoleHandler.Create)
					r.Post("/predefined", deps.RoleHandler.InstantiatePredefined)
					r.Post("/assign", deps.RoleHandler.Assign)
				})

				r.Route("/{roleID}", func(r chi.Router) {
					r.With(guard.RequireMembership()).Get("/", deps.RoleHandler.Get)

					r.Group(func(r chi.Router) {
						r.Use(guard.RequirePermissions(permission.ManageRoles))
						r.Put("/", deps.RoleHandler.Update)
						r.Put("/permissions", deps.RoleHandler.ReplacePermissions)
						r.Delete("/", deps.RoleHandler.Delete)
					})
				})
			})

			r.Route("/shifts", func(r chi.Router) {
				r.With(guard.RequirePermissions(permission.ViewSchedule)).
					Get("/", deps.ShiftHandler.List)
				r.With(guard.RequirePermissions(permission.CreateShifts)).
					Post("/", deps.ShiftHandler.Create)

				r.Route("/{shiftID}", func(r chi.Router) {
					r.With(guard.RequirePermissions(permission.ViewSchedule)).
						Get("/", deps.ShiftHandler.Get)
					r.With(guard.RequirePermissions(permission.EditShifts)).
						Put("/", deps.ShiftHandler.Update)
					r.With(guard.RequirePermissions(permission.DeleteShifts)).
						Delete("/", deps.ShiftHandler.Delete)
					r.With(guard.RequirePermissions(permission.PublishSchedule)).
						Post("/publish", deps.ShiftHandler.Publish)
					r.With(guard.RequirePermissions(permission.OpenShift)).
						Post("/open", deps.ShiftHandler.Open)
					r.With(guard.RequirePermissions(permission.CloseShift)).
						Post("/close", deps.ShiftHandler.Close)
				})
			})

			r.Route("/swaps", func(r chi.Router) {
				r.With(guard.RequirePermissions(permission.RequestSwap)).
					Post("/", deps.ShiftHandler.RequestSwap)
				r.With(guard.RequirePermissions(permission.ApproveSwap)).
					Get("/", deps.ShiftHandler.ListSwaps)

				r.Route("/{swapID}", func(r chi.Router) {
					r.Use(guard.RequirePermissions(permission.ApproveSwap))
					r.Post("/approve", deps.ShiftHandler.ApproveSwap)
					r.Post("/decline", deps.ShiftHandler.DeclineSwap)
				})
			})

			r.Route("/attendance", func(r chi.Router) {
				r.With(guard.RequirePermissions(permission.ClockInOut)).
					Post("/clock-in", deps.AttendanceHandler.ClockIn)
				r.With(guard.RequirePermissions(permission.ClockInOut)).
					Post("/clock-out", deps.AttendanceHandler.ClockOut)
				r.With(guard.RequirePermissions(permission.ViewOwnAttendance)).
					Get("/my", deps.AttendanceHandler.ListMine)
				r.With(guard.RequirePermissions(permission.ViewTeamAttendance)).
					Get("/team", deps.AttendanceHandler.ListTeam)
			})

			r.Route("/overtime", func(r chi.Router) {
				r.With(guard.RequirePermissions(permission.RequestOvertime)).
					Post("/", deps.AttendanceHandler.RequestOvertime)
				r.With(guard.RequirePermissions(permission.ViewOvertimeReports)).
					Get("/", deps.AttendanceHandler.ListOvertime)

				r.Route("/{overtimeID}", func(r chi.Router) {
					r.Use(guard.RequirePermissions(permission.ApproveOvertime))
					r.Post("/approve", deps.AttendanceHandler.ApproveOvertime)
					r.Post("/decline", deps.AttendanceHandler.DeclineOvertime)
				})
			})

			r.Route("/leave", func(r chi.Router) {
				r.With(guard.RequirePermissions(permission.RequestLeave)).
					Post("/", deps.LeaveHandler.CreateRequest)
				r.With(guard.RequirePermissions(permission.RequestLeave)).
					Get("/my", deps.LeaveHandler.GetMyRequests)
				r.With(guard.RequirePermissions(permission.ApproveLeave)).
					Get("/", deps.LeaveHandler.ListRequests)
				r.With(guard.RequirePermissions(permission.ViewLeaveBalances)).
					Get("/balance", deps.LeaveHandler.GetMyBalance)
				r.With(guard.RequirePermissions(permission.ManageLeavePolicies)).
					Put("/allocation", deps.LeaveHandler.SetAllocation)

				r.Route("/{leaveID}", func(r chi.Router) {
					r.Use(guard.RequirePermissions(permission.ApproveLeave))
					r.Post("/approve", deps.LeaveHandler.ApproveRequest)
					r.Post("/decline", deps.LeaveHandler.DeclineRequest)
				})
			})

			r.Route("/coins", func(r chi.Router) {
				r.With(guard.RequireMembership()).Get("/balance", deps.CoinHandler.GetBalance)
				r.With(guard.RequireMembership()).Get("/ledger", deps.CoinHandler.ListLedger)
				r.With(guard.RequirePermissions(permission.AwardCoins)).
					Post("/award", deps.CoinHandler.Award)
			})

			r.Route("/rewards", func(r chi.Router) {
				r.With(guard.RequireMembership()).Get("/", deps.CoinHandler.ListRewards)
				r.With(guard.RequirePermissions(permission.ManageRewards)).
					Post("/", deps.CoinHandler.CreateReward)
				r.With(guard.RequireMembership()).
					Post("/{rewardID}/redeem", deps.CoinHandler.Redeem)
			})

			r.Route("/jobs", func(r chi.Router) {
				// The open board is cross-business, so no guard here.
				r.Get("/", deps.JobHandler.ListOpenPosts)
				r.With(guard.RequirePermissions(permission.PostJobs)).
					Post("/", deps.JobHandler.CreatePost)
				r.With(guard.RequirePermissions(permission.PostJobs)).
					Get("/mine", deps.JobHandler.ListBusinessPosts)

				r.Route("/{postID}", func(r chi.Router) {
					r.Get("/", deps.JobHandler.GetPost)
					r.Post("/apply", deps.JobHandler.Apply)
					r.With(guard.RequirePermissions(permission.ManageJobApplications)).
						Post("/close", deps.JobHandler.ClosePost)
					r.With(guard.RequirePermissions(permission.ViewApplicants)).
						Get("/applications", deps.JobHandler.ListApplications)
				})
			})

			r.Route("/applications/{applicationID}", func(r chi.Router) {
				r.Use(guard.RequirePermissions(permission.ManageJobApplications))
				r.Post("/accept", deps.JobHandler.AcceptApplication)
				r.Post("/reject", deps.JobHandler.RejectApplication)
			})

			r.Route("/connections", func(r chi.Router) {
				r.Post("/", deps.JobHandler.Connect)
				r.Get("/", deps.JobHandler.ListConnections)
				r.Post("/{connectionID}/accept", deps.JobHandler.AcceptConnection)
			})
		})
	})

	return r
}
