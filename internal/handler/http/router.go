package http

import (
	"io"
	"log/slog"
	"time"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/hrconsole/hr-console-backend/internal/domain/user"
	"github.com/hrconsole/hr-console-backend/internal/handler/http/middleware"
	"github.com/hrconsole/hr-console-backend/internal/pkg/jwt"
)

const (
	appName    = "hr-console"
	appVersion = "v1.0.0"
)

// NewLogger builds the JSON logger shared by the request log and the
// application, formatted with the ECS schema.
func NewLogger(out io.Writer, env string, level slog.Level) *slog.Logger {
	logFormat := httplog.SchemaECS.Concise(env != "production")
	return slog.New(slog.NewJSONHandler(out, &slog.HandlerOptions{
		Level:       level,
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", appName),
		slog.String("version", appVersion),
		slog.String("env", env),
	)
}

type RouterOptions struct {
	Logger         *slog.Logger
	AllowedOrigins []string
	RequestTimeout time.Duration
}

type Handlers struct {
	Auth       AuthHandler
	Attendance AttendanceHandler
	Leave      LeaveHandler
	Holiday    HolidayHandler
	Event      EventHandler
	Team       TeamHandler
	Admin      AdminHandler
	Employee   EmployeeHandler
	Calendar   CalendarHandler
}

func NewRouter(opts RouterOptions, JWTService jwt.Service, h Handlers) *chi.Mux {
	r := chi.NewRouter()

	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	timeout := opts.RequestTimeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   opts.AllowedOrigins,
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-ID"},
		ExposedHeaders:   []string{"X-Request-ID"},
		MaxAge:           300,
	}))

	r.Use(chiMiddleware.RequestID)
	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelInfo,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Timeout(timeout))
	r.Use(chiMiddleware.Heartbeat("/"))

	authenticated := func(r chi.Router) {
		r.Use(middleware.AuthRequired(JWTService))
	}
	can := middleware.RequirePermission

	r.Route("/admin", func(r chi.Router) {
		r.Post("/login", h.Auth.AdminLogin)

		r.Group(func(r chi.Router) {
			authenticated(r)
			r.Use(can(user.PermissionAdminManage))

			r.Post("/add", h.Admin.Add)
			r.Get("/view", h.Admin.View)
			r.Get("/view/{id}", h.Admin.ViewByID)
			r.Patch("/edit/{id}", h.Admin.Edit)
			r.Delete("/delete/{id}", h.Admin.Delete)
			r.Delete("/delete", h.Admin.DeleteAll)
		})
	})

	r.Route("/user", func(r chi.Router) {
		r.Post("/login", h.Auth.UserLogin)

		r.Group(func(r chi.Router) {
			authenticated(r)
			r.Use(can(user.PermissionEmployeeManage))

			r.Post("/add", h.Employee.Add)
			r.Get("/view", h.Employee.View)
			r.Get("/view/{id}", h.Employee.ViewByID)
			r.Patch("/edit/{id}", h.Employee.Edit)
			r.Delete("/delete/{id}", h.Employee.Delete)
			r.Delete("/delete", h.Employee.DeleteAll)
		})
	})

	// Requires authentication
	r.Group(func(r chi.Router) {
		authenticated(r)

		r.Route("/attendance", func(r chi.Router) {
			r.With(can(user.PermissionAttendanceRecord)).Post("/checkin", h.Attendance.CheckIn)
			r.With(can(user.PermissionAttendanceRecord)).Post("/checkout", h.Attendance.CheckOut)
			r.With(can(user.PermissionAttendanceView)).Get("/view", h.Attendance.View)
		})

		r.Route("/leave", func(r chi.Router) {
			r.With(can(user.PermissionLeaveApply)).Post("/apply", h.Leave.Apply)
			r.With(can(user.PermissionLeaveViewOwn)).Get("/my-leaves", h.Leave.MyLeaves)
			r.With(can(user.PermissionLeaveProcess)).Patch("/process/{id}", h.Leave.Process)
			r.With(can(user.PermissionLeaveDecide)).Patch("/approve/{id}", h.Leave.Decide)
			r.With(can(user.PermissionLeaveViewAll)).Get("/view", h.Leave.ViewAll)
		})

		r.Route("/holiday", func(r chi.Router) {
			r.With(can(user.PermissionHolidayView)).Get("/view", h.Holiday.View)

			r.Group(func(r chi.Router) {
				r.Use(can(user.PermissionHolidayManage))
				r.Post("/add", h.Holiday.Add)
				r.Patch("/edit/{id}", h.Holiday.Edit)
				r.Delete("/delete/{id}", h.Holiday.Delete)
			})
		})

		r.Route("/event", func(r chi.Router) {
			r.With(can(user.PermissionEventView)).Get("/view", h.Event.View)

			r.Group(func(r chi.Router) {
				r.Use(can(user.PermissionEventManage))
				r.Post("/add", h.Event.Add)
				r.Patch("/edit/{id}", h.Event.Edit)
				r.Delete("/delete/{id}", h.Event.Delete)
			})
		})

		r.Route("/team", func(r chi.Router) {
			r.With(can(user.PermissionTeamViewOwn)).Get("/my-team", h.Team.MyTeam)

			r.Group(func(r chi.Router) {
				r.Use(can(user.PermissionTeamManage))
				r.Post("/add", h.Team.Add)
				r.Get("/view", h.Team.View)
				r.Get("/view/{id}", h.Team.ViewByID)
				r.Patch("/edit/{id}", h.Team.Edit)
				r.Delete("/delete/{id}", h.Team.Delete)
				r.Delete("/delete", h.Team.DeleteAll)
			})
		})

		r.With(can(user.PermissionCalendarView)).Get("/calendar", h.Calendar.Feed)
	})

	return r
}
