package user

import "time"

type Role string

const (
	RoleUser       Role = "user"       // Regular employee
	RoleAdmin      Role = "admin"      // HR admin, manages employees and processes leave
	RoleSuperAdmin Role = "superadmin" // Full access, decides leave and manages admins
)

func (r Role) IsValid() bool {
	switch r {
	case RoleUser, RoleAdmin, RoleSuperAdmin:
		return true
	}
	return false
}

// IsAdminTier reports whether r may sign in to the admin console.
func (r Role) IsAdminTier() bool {
	return r == RoleAdmin || r == RoleSuperAdmin
}

type User struct {
	ID           string
	Name         string
	Email        string
	PasswordHash string
	Role         Role
	Phone        string
	Position     string
	Profile      *EmployeeProfile
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// EmployeeProfile holds the HR record fields kept for role user persons.
type EmployeeProfile struct {
	EmployeeNo      string `json:"employee_no" bson:"employee_no"`
	PersonalEmail   string `json:"personal_email,omitempty" bson:"personal_email,omitempty"`
	EmergencyPhone  string `json:"emergency_phone,omitempty" bson:"emergency_phone,omitempty"`
	DateOfBirth     string `json:"date_of_birth,omitempty" bson:"date_of_birth,omitempty"`
	DateOfJoining   string `json:"date_of_joining,omitempty" bson:"date_of_joining,omitempty"`
	DateOfRelieving string `json:"date_of_relieving,omitempty" bson:"date_of_relieving,omitempty"`
	BloodGroup      string `json:"blood_group,omitempty" bson:"blood_group,omitempty"`
	Education       string `json:"education,omitempty" bson:"education,omitempty"`
	ReportTo        string `json:"report_to,omitempty" bson:"report_to,omitempty"`
	LeavesPerMonth  int    `json:"leaves_per_month" bson:"leaves_per_month"`
	UserType        string `json:"user_type,omitempty" bson:"user_type,omitempty"`
	Active          bool   `json:"active" bson:"active"`
	Address         string `json:"address,omitempty" bson:"address,omitempty"`
	Image           string `json:"image,omitempty" bson:"image,omitempty"`
}

// Principal is the authenticated caller of an operation.
type Principal struct {
	ID   string
	Role Role
}

func (u User) Principal() Principal {
	return Principal{ID: u.ID, Role: u.Role}
}

// Owner is the identity attached to leave and attendance records in listings.
type Owner struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  Role   `json:"role"`
}

func (u User) Owner() Owner {
	return Owner{ID: u.ID, Name: u.Name, Email: u.Email, Role: u.Role}
}

// IndexByID keys users by id.
func IndexByID(users []User) map[string]User {
	byID := make(map[string]User, len(users))
	for _, u := range users {
		byID[u.ID] = u
	}
	return byID
}
