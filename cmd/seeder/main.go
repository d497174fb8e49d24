package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/hrconsole/hr-console-backend/internal/config"
	"github.com/hrconsole/hr-console-backend/internal/fixtures"
	appHTTP "github.com/hrconsole/hr-console-backend/internal/handler/http"
	"github.com/hrconsole/hr-console-backend/internal/pkg/database"
	"github.com/hrconsole/hr-console-backend/internal/repository/mongodb"
	"github.com/hrconsole/hr-console-backend/internal/repository/postgresql"
)

func main() {
	demo := flag.Bool("demo", false, "also load demo admins, employees, teams, holidays and events")
	year := flag.Int("year", time.Now().Year(), "year the demo holidays and events fall in")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		os.Exit(1)
	}
	slog.SetDefault(appHTTP.NewLogger(os.Stdout, cfg.App.Env, cfg.SlogLevel()))

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	seeder, closeStore, err := openSeeder(ctx, cfg)
	if err != nil {
		slog.Error("Error connecting to database", "driver", cfg.Database.Driver, "error", err)
		os.Exit(1)
	}
	defer closeStore()

	admin, created, err := seeder.EnsureSuperAdmin(ctx, fixtures.SuperAdmin{
		Name:     cfg.Seed.SuperAdminName,
		Email:    cfg.Seed.SuperAdminEmail,
		Password: cfg.Seed.SuperAdminPassword,
		Phone:    cfg.Seed.SuperAdminPhone,
	})
	if err != nil {
		slog.Error("Error seeding superadmin", "error", err)
		os.Exit(1)
	}
	if created {
		slog.Info("Super admin created", "user_id", admin.ID, "email", admin.Email)
	} else {
		slog.Info("Super admin already exists", "user_id", admin.ID, "email", admin.Email)
	}

	if *demo {
		if _, err := seeder.SeedDemo(ctx, *year); err != nil {
			slog.Error("Error seeding demo data", "error", err)
			os.Exit(1)
		}
	}
}

func openSeeder(ctx context.Context, cfg *config.Config) (*fixtures.Seeder, func(), error) {
	switch cfg.Database.Driver {
	case config.DriverPostgres:
		db, err := database.NewPostgreSQLDB(ctx, cfg.DatabaseURL())
		if err != nil {
			return nil, nil, err
		}
		if err := postgresql.EnsureSchema(ctx, db); err != nil {
			db.Close()
			return nil, nil, fmt.Errorf("apply schema: %w", err)
		}
		return &fixtures.Seeder{
			Users:    postgresql.NewUserRepository(db),
			Holidays: postgresql.NewHolidayRepository(db),
			Teams:    postgresql.NewTeamRepository(db),
			Events:   postgresql.NewEventRepository(db),
		}, db.Close, nil

	case config.DriverMongoDB:
		mdb, err := database.NewMongoDB(ctx, cfg.Database.MongoURI, cfg.Database.MongoDatabase)
		if err != nil {
			return nil, nil, err
		}
		if err := mongodb.EnsureIndexes(ctx, mdb.Database); err != nil {
			_ = mdb.Close(context.Background())
			return nil, nil, fmt.Errorf("create indexes: %w", err)
		}
		seeder := &fixtures.Seeder{
			Users:    mongodb.NewUserRepository(mdb.Database),
			Holidays: mongodb.NewHolidayRepository(mdb.Database),
			Teams:    mongodb.NewTeamRepository(mdb.Database),
			Events:   mongodb.NewEventRepository(mdb.Database),
		}
		return seeder, func() { _ = mdb.Close(context.Background()) }, nil
	}
	return nil, nil, fmt.Errorf("seeding needs a persistent store, DB_DRIVER is %q", cfg.Database.Driver)
}
