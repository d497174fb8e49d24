package holiday

import (
	"context"
	"testing"
	"time"

	"github.com/hrconsole/hr-console-backend/internal/domain/holiday"
	"github.com/hrconsole/hr-console-backend/internal/domain/user"
	"github.com/hrconsole/hr-console-backend/internal/pkg/validator"
	"github.com/hrconsole/hr-console-backend/internal/repository/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	testAdmin = user.Principal{ID: "admin-1", Role: user.RoleAdmin}
	testUser  = user.Principal{ID: "user-1", Role: user.RoleUser}
)

func newTestService(t *testing.T) holiday.HolidayService {
	t.Helper()
	loc, err := time.LoadLocation("Asia/Jakarta")
	require.NoError(t, err)
	return NewHolidayService(memory.NewHolidayRepository(), loc)
}

func TestHolidayService_Add(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)

	created, err := svc.Add(ctx, testAdmin, holiday.CreateHolidayRequest{Name: "Christmas", Date: "2024-12-25"})
	require.NoError(t, err)
	assert.Equal(t, "2024-12-25", created.Date)
	assert.Equal(t, "Public", created.Type)

	t.Run("duplicate date", func(t *testing.T) {
		_, err := svc.Add(ctx, testAdmin, holiday.CreateHolidayRequest{Name: "Other", Date: "2024-12-25", Type: "Company"})
		assert.ErrorIs(t, err, holiday.ErrDuplicateDate)

		day := time.Date(2024, 12, 25, 0, 0, 0, 0, time.UTC)
		stored, err := svc.HolidaysBetween(ctx, day, day)
		require.NoError(t, err)
		require.Len(t, stored, 1)
		kept := stored["2024-12-25"]
		assert.Equal(t, created.ID, kept.ID)
		assert.Equal(t, "Christmas", kept.Name)
		assert.Equal(t, holiday.TypePublic, kept.Type)
	})

	t.Run("timestamp resolves in app time zone", func(t *testing.T) {
		// 20:00 UTC on the 31st is already New Year's Day in Jakarta.
		created, err := svc.Add(ctx, testAdmin, holiday.CreateHolidayRequest{Name: "New Year", Date: "2024-12-31T20:00:00Z"})
		require.NoError(t, err)
		assert.Equal(t, "2025-01-01", created.Date)
	})

	t.Run("user is forbidden", func(t *testing.T) {
		_, err := svc.Add(ctx, testUser, holiday.CreateHolidayRequest{Name: "Mine", Date: "2024-08-17"})
		assert.ErrorIs(t, err, user.ErrForbidden)
	})

	t.Run("invalid input", func(t *testing.T) {
		_, err := svc.Add(ctx, testAdmin, holiday.CreateHolidayRequest{Date: "25/12/2024", Type: "Bank"})
		var verrs validator.ValidationErrors
		require.ErrorAs(t, err, &verrs)
		assert.Len(t, verrs.ToMap(), 3)
	})
}

func TestHolidayService_Edit(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)

	xmas, err := svc.Add(ctx, testAdmin, holiday.CreateHolidayRequest{Name: "Christmas", Date: "2024-12-25"})
	require.NoError(t, err)
	boxing, err := svc.Add(ctx, testAdmin, holiday.CreateHolidayRequest{Name: "Boxing Day", Date: "2024-12-26"})
	require.NoError(t, err)

	occupied := xmas.Date
	_, err = svc.Edit(ctx, testAdmin, holiday.UpdateHolidayRequest{ID: boxing.ID, Date: &occupied})
	assert.ErrorIs(t, err, holiday.ErrDuplicateDate)

	list, err := svc.List(ctx, testUser)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "2024-12-26", list[1].Date)

	name := "St. Stephen's Day"
	edited, err := svc.Edit(ctx, testAdmin, holiday.UpdateHolidayRequest{ID: boxing.ID, Name: &name})
	require.NoError(t, err)
	assert.Equal(t, name, edited.Name)

	_, err = svc.Edit(ctx, testAdmin, holiday.UpdateHolidayRequest{ID: "missing", Name: &name})
	assert.ErrorIs(t, err, holiday.ErrHolidayNotFound)
}

func TestHolidayService_IsHoliday(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)

	_, err := svc.Add(ctx, testAdmin, holiday.CreateHolidayRequest{Name: "Independence Day", Date: "2024-08-17"})
	require.NoError(t, err)

	jakarta, _ := time.LoadLocation("Asia/Jakarta")
	tests := []struct {
		name string
		at   time.Time
		want bool
	}{
		{"morning of the day", time.Date(2024, 8, 17, 8, 0, 0, 0, jakarta), true},
		{"late evening of the day", time.Date(2024, 8, 17, 23, 59, 0, 0, jakarta), true},
		{"utc instant that is the 17th locally", time.Date(2024, 8, 16, 18, 0, 0, 0, time.UTC), true},
		{"next day", time.Date(2024, 8, 18, 0, 1, 0, 0, jakarta), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := svc.IsHoliday(ctx, tt.at)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestHolidayService_HolidaysBetween(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)

	for _, d := range []string{"2024-06-03", "2024-06-05", "2024-07-01"} {
		_, err := svc.Add(ctx, testAdmin, holiday.CreateHolidayRequest{Name: d, Date: d})
		require.NoError(t, err)
	}

	got, err := svc.HolidaysBetween(ctx,
		time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2024, 6, 30, 0, 0, 0, 0, time.UTC),
	)
	require.NoError(t, err)
	assert.Len(t, got, 2)
	assert.Contains(t, got, "2024-06-03")
	assert.Contains(t, got, "2024-06-05")
}

func TestHolidayService_Delete(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)

	created, err := svc.Add(ctx, testAdmin, holiday.CreateHolidayRequest{Name: "X", Date: "2024-05-01"})
	require.NoError(t, err)

	assert.ErrorIs(t, svc.Delete(ctx, testUser, created.ID), user.ErrForbidden)
	assert.NoError(t, svc.Delete(ctx, testAdmin, created.ID))
	assert.ErrorIs(t, svc.Delete(ctx, testAdmin, created.ID), holiday.ErrHolidayNotFound)
}
