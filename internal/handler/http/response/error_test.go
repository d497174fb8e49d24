package response

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/hrconsole/hr-console-backend/internal/domain/attendance"
	"github.com/hrconsole/hr-console-backend/internal/domain/auth"
	"github.com/hrconsole/hr-console-backend/internal/domain/holiday"
	"github.com/hrconsole/hr-console-backend/internal/domain/leave"
	"github.com/hrconsole/hr-console-backend/internal/domain/team"
	"github.com/hrconsole/hr-console-backend/internal/domain/user"
	"github.com/hrconsole/hr-console-backend/internal/pkg/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandleError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
		wantErr  string
	}{
		{"validation", validator.ValidationErrors{{Field: "name", Message: "name is required"}}, http.StatusBadRequest, "VALIDATION_ERROR"},
		{"missing field", fmt.Errorf("%w: %w", leave.ErrMissingField, validator.ValidationErrors{{Field: "reason", Message: "reason is required"}}), http.StatusBadRequest, "BAD_REQUEST"},
		{"weekend", fmt.Errorf("%w: Sat Jun 08 2024", leave.ErrWeekendDate), http.StatusBadRequest, "BAD_REQUEST"},
		{"already checked in", attendance.ErrAlreadyCheckedIn, http.StatusBadRequest, "BAD_REQUEST"},
		{"credentials", auth.ErrInvalidCredentials, http.StatusUnauthorized, "UNAUTHORIZED"},
		{"forbidden", user.ErrForbidden, http.StatusForbidden, "FORBIDDEN"},
		{"not found", leave.ErrLeaveRequestNotFound, http.StatusNotFound, "NOT_FOUND"},
		{"no team", team.ErrNoTeamAssigned, http.StatusNotFound, "NOT_FOUND"},
		{"duplicate holiday", holiday.ErrDuplicateDate, http.StatusConflict, "CONFLICT"},
		{"duplicate email", user.ErrUserEmailExists, http.StatusConflict, "CONFLICT"},
		{"unknown", errors.New("boom"), http.StatusInternalServerError, "INTERNAL_SERVER_ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			HandleError(rec, tt.err)

			assert.Equal(t, tt.wantCode, rec.Code)

			var body Response
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.False(t, body.Success)
			require.NotNil(t, body.Error)
			assert.Equal(t, tt.wantErr, body.Error.Code)
		})
	}
}

func TestHandleError_WeekendMessageNamesDay(t *testing.T) {
	rec := httptest.NewRecorder()
	HandleError(rec, fmt.Errorf("%w: Sat Jun 08 2024", leave.ErrWeekendDate))

	var body Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "cannot apply leave on weekend: Sat Jun 08 2024", body.Error.Message)
}
