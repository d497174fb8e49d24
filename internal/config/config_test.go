package config

import (
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequiredEnv(t *testing.T) {
	t.Helper()
	t.Setenv("DB_DRIVER", "memory")
	t.Setenv("JWT_SECRET_KEY", "secret")
}

func TestLoad_Defaults(t *testing.T) {
	setRequiredEnv(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, DriverMemory, cfg.Database.Driver)
	assert.Equal(t, 8080, cfg.App.Port)
	assert.Equal(t, "24h", cfg.JWT.AccessExpiration)
	assert.Equal(t, 9*time.Hour, cfg.Attendance.AutoCheckoutAfter)
	assert.Equal(t, []string{"http://localhost:5173"}, cfg.App.AllowedOrigins)
	assert.Equal(t, slog.LevelInfo, cfg.SlogLevel())
}

func TestLoad_Overrides(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("DB_DRIVER", "MongoDB")
	t.Setenv("MONGODB_URI", "mongodb://localhost:27017")
	t.Setenv("APP_PORT", "9090")
	t.Setenv("APP_TIMEZONE", "Asia/Jakarta")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("ATTENDANCE_AUTO_CHECKOUT", "8h30m")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example.com, ,https://b.example.com")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, DriverMongoDB, cfg.Database.Driver)
	assert.Equal(t, 9090, cfg.App.Port)
	assert.Equal(t, 8*time.Hour+30*time.Minute, cfg.Attendance.AutoCheckoutAfter)
	assert.Equal(t, []string{"https://a.example.com", "https://b.example.com"}, cfg.App.AllowedOrigins)
	assert.Equal(t, slog.LevelDebug, cfg.SlogLevel())

	loc, err := cfg.Location()
	require.NoError(t, err)
	assert.Equal(t, "Asia/Jakarta", loc.String())
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{"missing jwt secret", map[string]string{"JWT_SECRET_KEY": ""}},
		{"postgres without password", map[string]string{"DB_DRIVER": "postgres", "DB_PASSWORD": ""}},
		{"mongodb without uri", map[string]string{"DB_DRIVER": "mongodb", "MONGODB_URI": ""}},
		{"unknown driver", map[string]string{"DB_DRIVER": "sqlite"}},
		{"bad port", map[string]string{"APP_PORT": "http"}},
		{"bad expiration", map[string]string{"JWT_ACCESS_EXPIRATION_TIME": "tomorrow"}},
		{"non-positive checkout", map[string]string{"ATTENDANCE_AUTO_CHECKOUT": "0s"}},
		{"unknown timezone", map[string]string{"APP_TIMEZONE": "Mars/Olympus"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setRequiredEnv(t)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			_, err := Load()
			assert.Error(t, err)
		})
	}
}

func TestDatabaseURL(t *testing.T) {
	cfg := &Config{Database: DatabaseConfig{
		Host: "db", Port: 5432, User: "hr", Password: "pw", Name: "hr_console", SSLMode: "disable",
	}}
	assert.Equal(t, "postgres://hr:pw@db:5432/hr_console?sslmode=disable", cfg.DatabaseURL())
}
