package mongodb_test

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/hrconsole/hr-console-backend/internal/domain/attendance"
	"github.com/hrconsole/hr-console-backend/internal/domain/holiday"
	"github.com/hrconsole/hr-console-backend/internal/domain/team"
	"github.com/hrconsole/hr-console-backend/internal/domain/user"
	"github.com/hrconsole/hr-console-backend/internal/pkg/database"
	"github.com/hrconsole/hr-console-backend/internal/repository/mongodb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/mongo"
)

// newTestDatabase connects to TEST_MONGODB_URI and returns a throwaway
// database that is dropped when the test ends.
func newTestDatabase(t *testing.T) *mongo.Database {
	t.Helper()

	uri := os.Getenv("TEST_MONGODB_URI")
	if uri == "" {
		t.Skip("TEST_MONGODB_URI not set")
	}

	ctx := context.Background()
	conn, err := database.NewMongoDB(ctx, uri, fmt.Sprintf("hr_console_test_%d", time.Now().UnixNano()))
	require.NoError(t, err)
	require.NoError(t, mongodb.EnsureIndexes(ctx, conn.Database))

	t.Cleanup(func() {
		_ = conn.Database.Drop(context.Background())
		_ = conn.Close(context.Background())
	})
	return conn.Database
}

func TestUserRepository(t *testing.T) {
	db := newTestDatabase(t)
	ctx := context.Background()
	repo := mongodb.NewUserRepository(db)

	created, err := repo.Create(ctx, user.User{Name: "Emp", Email: "emp@example.com", Role: user.RoleUser,
		Profile: &user.EmployeeProfile{EmployeeNo: "E-9", Active: true}})
	require.NoError(t, err)

	_, err = repo.Create(ctx, user.User{Email: "EMP@example.com", Role: user.RoleUser})
	assert.ErrorIs(t, err, user.ErrUserEmailExists)

	got, err := repo.GetByEmail(ctx, "Emp@Example.com")
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)
	require.NotNil(t, got.Profile)
	assert.Equal(t, "E-9", got.Profile.EmployeeNo)

	_, err = repo.GetByID(ctx, "missing")
	assert.ErrorIs(t, err, user.ErrUserNotFound)
}

func TestHolidayRepository_DuplicateDate(t *testing.T) {
	db := newTestDatabase(t)
	ctx := context.Background()
	repo := mongodb.NewHolidayRepository(db)

	date := time.Date(2024, 12, 25, 0, 0, 0, 0, time.UTC)
	_, err := repo.Create(ctx, holiday.Holiday{Name: "Christmas", Date: date, Type: holiday.TypePublic})
	require.NoError(t, err)

	_, err = repo.Create(ctx, holiday.Holiday{Name: "Dup", Date: date, Type: holiday.TypePublic})
	assert.ErrorIs(t, err, holiday.ErrDuplicateDate)

	got, err := repo.GetByDate(ctx, date)
	require.NoError(t, err)
	assert.Equal(t, "Christmas", got.Name)
}

func TestAttendanceRepository_UniquePerDay(t *testing.T) {
	db := newTestDatabase(t)
	ctx := context.Background()
	repo := mongodb.NewAttendanceRepository(db)

	checkIn := time.Date(2024, 6, 3, 9, 0, 0, 0, time.UTC)
	rec := attendance.Record{UserID: "u1", Date: checkIn, CheckIn: checkIn, CheckOut: checkIn.Add(9 * time.Hour)}

	_, err := repo.Create(ctx, rec)
	require.NoError(t, err)
	_, err = repo.Create(ctx, rec)
	assert.ErrorIs(t, err, attendance.ErrAlreadyCheckedIn)
}

func TestTeamRepository_NameUnique(t *testing.T) {
	db := newTestDatabase(t)
	ctx := context.Background()
	repo := mongodb.NewTeamRepository(db)

	_, err := repo.Create(ctx, team.Team{Name: "Ops", MemberIDs: []string{"u1"}})
	require.NoError(t, err)
	_, err = repo.Create(ctx, team.Team{Name: "OPS"})
	assert.ErrorIs(t, err, team.ErrTeamNameExists)

	got, err := repo.GetByMember(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, "Ops", got.Name)
}
