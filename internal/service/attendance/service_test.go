package attendance

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/hrconsole/hr-console-backend/internal/domain/attendance"
	"github.com/hrconsole/hr-console-backend/internal/domain/holiday"
	"github.com/hrconsole/hr-console-backend/internal/domain/user"
	"github.com/hrconsole/hr-console-backend/internal/pkg/dateutil"
	"github.com/hrconsole/hr-console-backend/internal/repository/memory"
	holidaysvc "github.com/hrconsole/hr-console-backend/internal/service/holiday"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixture struct {
	svc      attendance.AttendanceService
	clock    *dateutil.FixedClock
	holidays holiday.HolidayService
	users    user.UserRepository
}

func newFixture(t *testing.T) fixture {
	t.Helper()

	users := memory.NewUserRepository()
	holidays := holidaysvc.NewHolidayService(memory.NewHolidayRepository(), time.UTC)
	clock := &dateutil.FixedClock{T: time.Date(2024, 6, 10, 9, 0, 0, 0, time.UTC)}

	return fixture{
		svc:      NewAttendanceService(memory.NewAttendanceRepository(), users, holidays, clock, time.UTC, 0),
		clock:    clock,
		holidays: holidays,
		users:    users,
	}
}

func (f fixture) person(t *testing.T, name string, role user.Role) user.Principal {
	t.Helper()
	u, err := f.users.Create(context.Background(), user.User{Name: name, Email: name + "@example.com", Role: role})
	require.NoError(t, err)
	return u.Principal()
}

func TestCheckInCheckOut(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	employee := f.person(t, "employee", user.RoleUser)

	_, err := f.svc.CheckOut(ctx, employee)
	assert.ErrorIs(t, err, attendance.ErrNoCheckIn)

	in, err := f.svc.CheckIn(ctx, employee)
	require.NoError(t, err)
	assert.Equal(t, "2024-06-10", in.Date)
	assert.Equal(t, "2024-06-10T09:00:00Z", in.CheckInTime)
	assert.Equal(t, "2024-06-10T18:00:00Z", in.CheckOutTime)

	_, err = f.svc.CheckIn(ctx, employee)
	assert.ErrorIs(t, err, attendance.ErrAlreadyCheckedIn)

	f.clock.Set(time.Date(2024, 6, 10, 17, 30, 0, 0, time.UTC))
	out, err := f.svc.CheckOut(ctx, employee)
	require.NoError(t, err)
	assert.Equal(t, in.ID, out.ID)
	assert.Equal(t, "2024-06-10T17:30:00Z", out.CheckOutTime)

	// Checking out again just moves the time.
	f.clock.Set(time.Date(2024, 6, 10, 19, 0, 0, 0, time.UTC))
	out, err = f.svc.CheckOut(ctx, employee)
	require.NoError(t, err)
	assert.Equal(t, "2024-06-10T19:00:00Z", out.CheckOutTime)

	f.clock.Set(time.Date(2024, 6, 11, 8, 0, 0, 0, time.UTC))
	_, err = f.svc.CheckOut(ctx, employee)
	assert.ErrorIs(t, err, attendance.ErrNoCheckIn)
	_, err = f.svc.CheckIn(ctx, employee)
	assert.NoError(t, err)
}

func TestCheckIn_WeekendOrHoliday(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	employee := f.person(t, "employee", user.RoleUser)
	admin := f.person(t, "admin", user.RoleAdmin)

	f.clock.Set(time.Date(2024, 6, 8, 9, 0, 0, 0, time.UTC))
	_, err := f.svc.CheckIn(ctx, employee)
	assert.ErrorIs(t, err, attendance.ErrWeekendOrHoliday)

	_, err = f.holidays.Add(ctx, admin, holiday.CreateHolidayRequest{Name: "Holiday", Date: "2024-06-12"})
	require.NoError(t, err)
	f.clock.Set(time.Date(2024, 6, 12, 9, 0, 0, 0, time.UTC))
	_, err = f.svc.CheckIn(ctx, employee)
	assert.ErrorIs(t, err, attendance.ErrWeekendOrHoliday)
}

func TestCheckIn_CustomWorkDay(t *testing.T) {
	ctx := context.Background()
	users := memory.NewUserRepository()
	u, err := users.Create(ctx, user.User{Name: "a", Email: "a@example.com", Role: user.RoleUser})
	require.NoError(t, err)

	clock := &dateutil.FixedClock{T: time.Date(2024, 6, 10, 8, 0, 0, 0, time.UTC)}
	svc := NewAttendanceService(memory.NewAttendanceRepository(), users,
		holidaysvc.NewHolidayService(memory.NewHolidayRepository(), time.UTC), clock, time.UTC, 8*time.Hour)

	in, err := svc.CheckIn(ctx, u.Principal())
	require.NoError(t, err)
	assert.Equal(t, "2024-06-10T16:00:00Z", in.CheckOutTime)
}

func TestCheckIn_Concurrent(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	employee := f.person(t, "employee", user.RoleUser)

	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		succeeded int
	)
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := f.svc.CheckIn(ctx, employee)
			if err == nil {
				mu.Lock()
				succeeded++
				mu.Unlock()
				return
			}
			assert.ErrorIs(t, err, attendance.ErrAlreadyCheckedIn)
		}()
	}
	wg.Wait()
	assert.Equal(t, 1, succeeded)
}

func TestListFor(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	employee := f.person(t, "employee", user.RoleUser)
	admin := f.person(t, "admin", user.RoleAdmin)
	other := f.person(t, "other", user.RoleAdmin)
	root := f.person(t, "root", user.RoleSuperAdmin)

	for _, p := range []user.Principal{employee, admin, other, root} {
		_, err := f.svc.CheckIn(ctx, p)
		require.NoError(t, err)
	}

	tests := []struct {
		name   string
		caller user.Principal
		want   []string
	}{
		{"user sees own", employee, []string{employee.ID}},
		{"admin sees own and users", admin, []string{employee.ID, admin.ID}},
		{"superadmin sees all", root, []string{employee.ID, admin.ID, other.ID, root.ID}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := f.svc.ListFor(ctx, tt.caller)
			require.NoError(t, err)

			ids := make([]string, len(got))
			for i, r := range got {
				ids[i] = r.UserID
				require.NotNil(t, r.User)
				assert.Equal(t, r.UserID, r.User.ID)
			}
			assert.ElementsMatch(t, tt.want, ids)
		})
	}
}
