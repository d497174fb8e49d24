package fixtures

import (
	"time"

	"github.com/hrconsole/hr-console-backend/internal/domain/event"
	"github.com/hrconsole/hr-console-backend/internal/domain/holiday"
	"github.com/hrconsole/hr-console-backend/internal/domain/user"
)

// DemoPassword is the password every demo identity signs in with.
const DemoPassword = "password123"

// ==========================================
// HELPER FUNCTIONS
// ==========================================

func day(year int, month time.Month, d int) time.Time {
	return time.Date(year, month, d, 0, 0, 0, 0, time.UTC)
}

// ==========================================
// DEFAULT ADMINS
// ==========================================

// GetDefaultAdmins returns the demo console operators, superadmin first.
func GetDefaultAdmins() []user.User {
	return []user.User{
		{Name: "Global Commander", Email: "superadmin@corp.com", Phone: "9998887770", Position: "System Overseer", Role: user.RoleSuperAdmin},
		{Name: "Regional Director", Email: "admin@corp.com", Phone: "9998887771", Position: "Operations Lead", Role: user.RoleAdmin},
		{Name: "Test Administrator", Email: "admin3@lms.com", Phone: "9998887772", Position: "System Test Lead", Role: user.RoleAdmin},
	}
}

// ==========================================
// DEFAULT EMPLOYEES
// ==========================================

func employee(no, name, email, personal, phone, emergency, position, joined, userType string) user.User {
	return user.User{
		Name:     name,
		Email:    email,
		Phone:    phone,
		Position: position,
		Role:     user.RoleUser,
		Profile: &user.EmployeeProfile{
			EmployeeNo:     no,
			PersonalEmail:  personal,
			EmergencyPhone: emergency,
			DateOfJoining:  joined,
			UserType:       userType,
			Active:         true,
		},
	}
}

// GetDefaultEmployees returns the demo workforce.
func GetDefaultEmployees() []user.User {
	return []user.User{
		employee("EMP001", "Sarah Connors", "sarah@corp.com", "sarah.p@gmail.com", "9876543210", "9876543200", "Senior Analyst", "2024-01-15", "Permanent"),
		employee("EMP002", "John Wick", "john@corp.com", "john.wick@gmail.com", "9876543211", "9876543201", "Security Consultant", "2023-11-20", "Contract"),
		employee("EMP003", "Ellen Ripley", "ripley@corp.com", "ripley@space.com", "9876543212", "9876543202", "Logistics Manager", "2022-05-10", "Permanent"),
		employee("EMP004", "Tony Stark", "tony@corp.com", "ironman@avengers.com", "9876543213", "9876543203", "Tech Lead", "2021-03-01", "Permanent"),
		employee("EMP005", "Bruce Wayne", "bruce@corp.com", "batman@gotham.com", "9876543214", "9876543204", "Financial Analyst", "2023-01-10", "Contract"),
	}
}

// ==========================================
// DEFAULT TEAMS
// ==========================================

// DefaultTeam names a team by the emails of its members.
type DefaultTeam struct {
	Name         string
	MemberEmails []string
}

// GetDefaultTeams returns the demo teams.
func GetDefaultTeams() []DefaultTeam {
	return []DefaultTeam{
		{Name: "Alpha Squad - R&D", MemberEmails: []string{"tony@corp.com", "sarah@corp.com"}},
		{Name: "Bravo Team - Security", MemberEmails: []string{"john@corp.com"}},
		{Name: "Logistics Core", MemberEmails: []string{"ripley@corp.com", "bruce@corp.com"}},
	}
}

// ==========================================
// DEFAULT HOLIDAYS
// ==========================================

// GetDefaultHolidays returns the demo holiday calendar for year.
func GetDefaultHolidays(year int) []holiday.Holiday {
	return []holiday.Holiday{
		{Name: "New Year's Day", Date: day(year, time.January, 1), Type: holiday.TypePublic, Description: "Global holiday"},
		{Name: "Corporate Founding Day", Date: day(year, time.March, 15), Type: holiday.TypeCompany, Description: "Mandatory shutdown"},
		{Name: "Labor Day", Date: day(year, time.May, 1), Type: holiday.TypePublic, Description: "International workers day"},
		{Name: "Innovation Summit", Date: day(year, time.September, 10), Type: holiday.TypeRestricted, Description: "Optional holiday for R&D"},
		{Name: "Christmas Day", Date: day(year, time.December, 25), Type: holiday.TypePublic},
	}
}

// ==========================================
// DEFAULT EVENTS
// ==========================================

// GetDefaultEvents returns the demo events for year. CreatedBy holds the
// creator's email and is resolved to an id by the seeder.
func GetDefaultEvents(year int) []event.Event {
	return []event.Event{
		{
			Title:       "Q1 Strategy Meeting",
			Description: "Review of first quarter performance and Q2 goals.",
			Date:        day(year, time.April, 1),
			Time:        "10:00",
			Location:    "Conference Room A",
			Type:        event.TypeMeeting,
			CreatedBy:   "superadmin@corp.com",
		},
		{
			Title:       "Cybersecurity Workshop",
			Description: "Mandatory training on new security protocols.",
			Date:        day(year, time.April, 10),
			Time:        "14:00",
			Location:    "Virtual (Zoom)",
			Type:        event.TypeTraining,
			CreatedBy:   "admin@corp.com",
		},
		{
			Title:       "Annual Gala",
			Description: "Corporate networking event.",
			Date:        day(year, time.June, 20),
			Time:        "19:00",
			Location:    "Grand Hall",
			Type:        event.TypeSocial,
			CreatedBy:   "superadmin@corp.com",
		},
	}
}
