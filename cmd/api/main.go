package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/hrconsole/hr-console-backend/internal/config"
	"github.com/hrconsole/hr-console-backend/internal/domain/attendance"
	"github.com/hrconsole/hr-console-backend/internal/domain/event"
	"github.com/hrconsole/hr-console-backend/internal/domain/holiday"
	"github.com/hrconsole/hr-console-backend/internal/domain/leave"
	"github.com/hrconsole/hr-console-backend/internal/domain/team"
	"github.com/hrconsole/hr-console-backend/internal/domain/user"
	"github.com/hrconsole/hr-console-backend/internal/fixtures"
	appHTTP "github.com/hrconsole/hr-console-backend/internal/handler/http"
	"github.com/hrconsole/hr-console-backend/internal/pkg/database"
	"github.com/hrconsole/hr-console-backend/internal/pkg/dateutil"
	"github.com/hrconsole/hr-console-backend/internal/pkg/jwt"
	"github.com/hrconsole/hr-console-backend/internal/repository/memory"
	"github.com/hrconsole/hr-console-backend/internal/repository/mongodb"
	"github.com/hrconsole/hr-console-backend/internal/repository/postgresql"
	adminService "github.com/hrconsole/hr-console-backend/internal/service/admin"
	attendanceService "github.com/hrconsole/hr-console-backend/internal/service/attendance"
	serviceAuth "github.com/hrconsole/hr-console-backend/internal/service/auth"
	calendarService "github.com/hrconsole/hr-console-backend/internal/service/calendar"
	employeeService "github.com/hrconsole/hr-console-backend/internal/service/employee"
	eventService "github.com/hrconsole/hr-console-backend/internal/service/event"
	holidayService "github.com/hrconsole/hr-console-backend/internal/service/holiday"
	leaveService "github.com/hrconsole/hr-console-backend/internal/service/leave"
	teamService "github.com/hrconsole/hr-console-backend/internal/service/team"
)

// repositories is the storage backend selected by DB_DRIVER.
type repositories struct {
	users      user.UserRepository
	holidays   holiday.HolidayRepository
	leaves     leave.LeaveRequestRepository
	attendance attendance.AttendanceRepository
	events     event.EventRepository
	teams      team.TeamRepository
	close      func(ctx context.Context) error
}

func openRepositories(ctx context.Context, cfg *config.Config) (*repositories, error) {
	switch cfg.Database.Driver {
	case config.DriverPostgres:
		db, err := database.NewPostgreSQLDB(ctx, cfg.DatabaseURL())
		if err != nil {
			return nil, err
		}
		if err := postgresql.EnsureSchema(ctx, db); err != nil {
			db.Close()
			return nil, fmt.Errorf("apply schema: %w", err)
		}
		return &repositories{
			users:      postgresql.NewUserRepository(db),
			holidays:   postgresql.NewHolidayRepository(db),
			leaves:     postgresql.NewLeaveRequestRepository(db),
			attendance: postgresql.NewAttendanceRepository(db),
			events:     postgresql.NewEventRepository(db),
			teams:      postgresql.NewTeamRepository(db),
			close: func(context.Context) error {
				db.Close()
				return nil
			},
		}, nil

	case config.DriverMongoDB:
		mdb, err := database.NewMongoDB(ctx, cfg.Database.MongoURI, cfg.Database.MongoDatabase)
		if err != nil {
			return nil, err
		}
		if err := mongodb.EnsureIndexes(ctx, mdb.Database); err != nil {
			_ = mdb.Close(context.Background())
			return nil, fmt.Errorf("create indexes: %w", err)
		}
		return &repositories{
			users:      mongodb.NewUserRepository(mdb.Database),
			holidays:   mongodb.NewHolidayRepository(mdb.Database),
			leaves:     mongodb.NewLeaveRequestRepository(mdb.Database),
			attendance: mongodb.NewAttendanceRepository(mdb.Database),
			events:     mongodb.NewEventRepository(mdb.Database),
			teams:      mongodb.NewTeamRepository(mdb.Database),
			close:      mdb.Close,
		}, nil

	case config.DriverMemory:
		slog.Warn("Using in-memory storage, data is lost on restart")
		return &repositories{
			users:      memory.NewUserRepository(),
			holidays:   memory.NewHolidayRepository(),
			leaves:     memory.NewLeaveRepository(),
			attendance: memory.NewAttendanceRepository(),
			events:     memory.NewEventRepository(),
			teams:      memory.NewTeamRepository(),
			close:      func(context.Context) error { return nil },
		}, nil
	}
	return nil, fmt.Errorf("unsupported database driver %q", cfg.Database.Driver)
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		os.Exit(1)
	}

	logger := appHTTP.NewLogger(os.Stdout, cfg.App.Env, cfg.SlogLevel())
	slog.SetDefault(logger)

	loc, err := cfg.Location()
	if err != nil {
		slog.Error("Invalid time zone", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	connectCtx, cancel := context.WithTimeout(ctx, 15*time.Second)
	repos, err := openRepositories(connectCtx, cfg)
	cancel()
	if err != nil {
		slog.Error("Error connecting to database", "driver", cfg.Database.Driver, "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := repos.close(context.Background()); err != nil {
			slog.Error("Error closing database", "error", err)
		}
	}()

	if cfg.Database.Driver == config.DriverMemory && cfg.Seed.SuperAdminEmail != "" {
		seeder := &fixtures.Seeder{Users: repos.users, Holidays: repos.holidays, Teams: repos.teams, Events: repos.events}
		if _, _, err := seeder.EnsureSuperAdmin(ctx, fixtures.SuperAdmin{
			Name:     cfg.Seed.SuperAdminName,
			Email:    cfg.Seed.SuperAdminEmail,
			Password: cfg.Seed.SuperAdminPassword,
			Phone:    cfg.Seed.SuperAdminPhone,
		}); err != nil {
			slog.Error("Error seeding superadmin", "error", err)
			os.Exit(1)
		}
	}

	JWTService, err := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration)
	if err != nil {
		slog.Error("Error creating JWT service", "error", err)
		os.Exit(1)
	}

	holidaySvc := holidayService.NewHolidayService(repos.holidays, loc)
	leaveSvc := leaveService.NewLeaveService(repos.leaves, repos.users, holidaySvc, loc)
	attendanceSvc := attendanceService.NewAttendanceService(
		repos.attendance,
		repos.users,
		holidaySvc,
		dateutil.NewSystemClock(loc),
		loc,
		cfg.Attendance.AutoCheckoutAfter,
	)
	authSvc := serviceAuth.NewAuthService(repos.users, JWTService)
	adminSvc := adminService.NewAdminService(repos.users)
	employeeSvc := employeeService.NewEmployeeService(repos.users)
	teamSvc := teamService.NewTeamService(repos.teams, repos.users)
	eventSvc := eventService.NewEventService(repos.events, loc)
	calendarSvc := calendarService.NewCalendarService(holidaySvc, leaveSvc)

	router := appHTTP.NewRouter(appHTTP.RouterOptions{
		Logger:         logger,
		AllowedOrigins: cfg.App.AllowedOrigins,
	}, JWTService, appHTTP.Handlers{
		Auth:       appHTTP.NewAuthHandler(authSvc),
		Attendance: appHTTP.NewAttendanceHandler(attendanceSvc),
		Leave:      appHTTP.NewLeaveHandler(leaveSvc),
		Holiday:    appHTTP.NewHolidayHandler(holidaySvc),
		Event:      appHTTP.NewEventHandler(eventSvc),
		Team:       appHTTP.NewTeamHandler(teamSvc),
		Admin:      appHTTP.NewAdminHandler(adminSvc),
		Employee:   appHTTP.NewEmployeeHandler(employeeSvc),
		Calendar:   appHTTP.NewCalendarHandler(calendarSvc),
	})

	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.App.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	go func() {
		slog.Info("Server running", "addr", server.Addr, "driver", cfg.Database.Driver, "timezone", loc.String())
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Server error", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	slog.Info("Shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("Graceful shutdown failed", "error", err)
	}
}
