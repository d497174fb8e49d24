package event

import "time"

type Type string

const (
	TypeMeeting  Type = "Meeting"
	TypeWorkshop Type = "Workshop"
	TypeSeminar  Type = "Seminar"
	TypeSocial   Type = "Social"
	TypeHoliday  Type = "Holiday"
	TypeOther    Type = "Other"
	TypeTraining Type = "Training"
)

var validTypes = []string{
	string(TypeMeeting), string(TypeWorkshop), string(TypeSeminar), string(TypeSocial),
	string(TypeHoliday), string(TypeOther), string(TypeTraining),
}

type Event struct {
	ID          string
	Title       string
	Description string
	Date        time.Time // calendar day
	Time        string    // HH:MM, optional
	Location    string
	Type        Type
	CreatedBy   string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
