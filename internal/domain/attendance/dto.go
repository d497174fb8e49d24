package attendance

import "github.com/hrconsole/hr-console-backend/internal/domain/user"

type AttendanceResponse struct {
	ID           string      `json:"id"`
	UserID       string      `json:"user_id"`
	Date         string      `json:"date"`
	CheckInTime  string      `json:"checkin_time"`
	CheckOutTime string      `json:"checkout_time"`
	User         *user.Owner `json:"user,omitempty"`
	CreatedAt    string      `json:"created_at"`
	UpdatedAt    string      `json:"updated_at"`
}
