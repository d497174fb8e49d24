package postgresql_test

import (
	"context"
	"testing"
	"time"

	"github.com/hrconsole/hr-console-backend/internal/domain/attendance"
	"github.com/hrconsole/hr-console-backend/internal/domain/holiday"
	"github.com/hrconsole/hr-console-backend/internal/domain/leave"
	"github.com/hrconsole/hr-console-backend/internal/domain/team"
	"github.com/hrconsole/hr-console-backend/internal/domain/user"
	"github.com/hrconsole/hr-console-backend/internal/repository/postgresql"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func createTestUser(t *testing.T, ctx context.Context, repo user.UserRepository, email string, role user.Role) user.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	require.NoError(t, err)

	u, err := repo.Create(ctx, user.User{
		Name:         "Test " + string(role),
		Email:        email,
		PasswordHash: string(hash),
		Role:         role,
		Phone:        "081234567890",
		Profile:      &user.EmployeeProfile{EmployeeNo: "E-001", Active: true, LeavesPerMonth: 2},
	})
	require.NoError(t, err)
	return u
}

func TestUserRepository(t *testing.T) {
	setup := NewTestDatabase(t)
	ctx := context.Background()
	repo := postgresql.NewUserRepository(setup.DB)

	created := createTestUser(t, ctx, repo, "employee@example.com", user.RoleUser)
	assert.NotEmpty(t, created.ID)
	require.NotNil(t, created.Profile)
	assert.Equal(t, "E-001", created.Profile.EmployeeNo)

	_, err := repo.Create(ctx, user.User{Email: "EMPLOYEE@example.com", PasswordHash: "x", Role: user.RoleUser})
	assert.ErrorIs(t, err, user.ErrUserEmailExists)

	byEmail, err := repo.GetByEmail(ctx, "Employee@Example.com")
	require.NoError(t, err)
	assert.Equal(t, created.ID, byEmail.ID)

	_, err = repo.GetByID(ctx, "not-a-uuid")
	assert.ErrorIs(t, err, user.ErrUserNotFound)

	createTestUser(t, ctx, repo, "admin@example.com", user.RoleAdmin)
	createTestUser(t, ctx, repo, "super@example.com", user.RoleSuperAdmin)

	deleted, err := repo.DeleteByRole(ctx, user.RoleAdmin)
	require.NoError(t, err)
	assert.Equal(t, int64(1), deleted)

	remaining, err := repo.ListByRoles(ctx, user.RoleAdmin, user.RoleSuperAdmin)
	require.NoError(t, err)
	require.Len(t, remaining, 1)
	assert.Equal(t, user.RoleSuperAdmin, remaining[0].Role)
}

func TestHolidayRepository_DuplicateDate(t *testing.T) {
	setup := NewTestDatabase(t)
	ctx := context.Background()
	repo := postgresql.NewHolidayRepository(setup.DB)

	_, err := repo.Create(ctx, holiday.Holiday{Name: "Christmas", Date: day(2024, 12, 25), Type: holiday.TypePublic})
	require.NoError(t, err)

	_, err = repo.Create(ctx, holiday.Holiday{Name: "Dup", Date: day(2024, 12, 25), Type: holiday.TypeCompany})
	assert.ErrorIs(t, err, holiday.ErrDuplicateDate)

	between, err := repo.ListBetween(ctx, day(2024, 12, 1), day(2024, 12, 31))
	require.NoError(t, err)
	require.Len(t, between, 1)
	assert.Equal(t, day(2024, 12, 25), between[0].Date)
}

func TestAttendanceRepository_UniquePerDay(t *testing.T) {
	setup := NewTestDatabase(t)
	ctx := context.Background()
	users := postgresql.NewUserRepository(setup.DB)
	repo := postgresql.NewAttendanceRepository(setup.DB)

	u := createTestUser(t, ctx, users, "worker@example.com", user.RoleUser)
	checkIn := time.Date(2024, 6, 3, 9, 0, 0, 0, time.UTC)

	rec, err := repo.Create(ctx, attendance.Record{UserID: u.ID, Date: day(2024, 6, 3), CheckIn: checkIn, CheckOut: checkIn.Add(9 * time.Hour)})
	require.NoError(t, err)

	_, err = repo.Create(ctx, attendance.Record{UserID: u.ID, Date: day(2024, 6, 3), CheckIn: checkIn, CheckOut: checkIn})
	assert.ErrorIs(t, err, attendance.ErrAlreadyCheckedIn)

	out := checkIn.Add(4 * time.Hour)
	updated, err := repo.UpdateCheckOut(ctx, rec.ID, out)
	require.NoError(t, err)
	assert.True(t, updated.CheckOut.Equal(out))
}

func TestLeaveRequestRepository_InTransaction(t *testing.T) {
	setup := NewTestDatabase(t)
	ctx := context.Background()
	users := postgresql.NewUserRepository(setup.DB)
	repo := postgresql.NewLeaveRequestRepository(setup.DB)

	u := createTestUser(t, ctx, users, "leaver@example.com", user.RoleUser)

	err := postgresql.WithTransaction(ctx, setup.DB, func(ctx context.Context, tx pgx.Tx) error {
		l, err := repo.Create(ctx, leave.LeaveRequest{
			UserID: u.ID, Reason: "trip", FromDate: day(2024, 6, 3), ToDate: day(2024, 6, 4), Status: leave.StatusPending,
		})
		if err != nil {
			return err
		}
		_, err = repo.UpdateStatus(ctx, l.ID, leave.StatusProcessed)
		return err
	})
	require.NoError(t, err)

	leaves, err := repo.ListByUser(ctx, u.ID)
	require.NoError(t, err)
	require.Len(t, leaves, 1)
	assert.Equal(t, leave.StatusProcessed, leaves[0].Status)
	assert.Equal(t, day(2024, 6, 4), leaves[0].ToDate)
}

func TestLeaveRequestRepository_OutlivesOwner(t *testing.T) {
	setup := NewTestDatabase(t)
	ctx := context.Background()
	users := postgresql.NewUserRepository(setup.DB)
	repo := postgresql.NewLeaveRequestRepository(setup.DB)
	attendances := postgresql.NewAttendanceRepository(setup.DB)

	u := createTestUser(t, ctx, users, "gone@example.com", user.RoleUser)
	l, err := repo.Create(ctx, leave.LeaveRequest{
		UserID: u.ID, Reason: "trip", FromDate: day(2024, 6, 3), ToDate: day(2024, 6, 3), Status: leave.StatusPending,
	})
	require.NoError(t, err)
	checkIn := time.Date(2024, 6, 3, 9, 0, 0, 0, time.UTC)
	_, err = attendances.Create(ctx, attendance.Record{UserID: u.ID, Date: day(2024, 6, 3), CheckIn: checkIn, CheckOut: checkIn.Add(9 * time.Hour)})
	require.NoError(t, err)

	require.NoError(t, users.Delete(ctx, u.ID))

	got, err := repo.GetByID(ctx, l.ID)
	require.NoError(t, err)
	assert.Equal(t, u.ID, got.UserID)

	records, err := attendances.List(ctx)
	require.NoError(t, err)
	assert.Len(t, records, 1)
}

func TestTeamRepository(t *testing.T) {
	setup := NewTestDatabase(t)
	ctx := context.Background()
	repo := postgresql.NewTeamRepository(setup.DB)

	created, err := repo.Create(ctx, team.Team{Name: "Platform", MemberIDs: []string{"a", "b"}})
	require.NoError(t, err)

	_, err = repo.Create(ctx, team.Team{Name: "platform"})
	assert.ErrorIs(t, err, team.ErrTeamNameExists)

	got, err := repo.GetByMember(ctx, "b")
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)
	assert.Equal(t, []string{"a", "b"}, got.MemberIDs)
}
