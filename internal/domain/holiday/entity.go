package holiday

import "time"

type Type string

const (
	TypePublic     Type = "Public"
	TypeRestricted Type = "Restricted"
	TypeCompany    Type = "Company"
)

func (t Type) IsValid() bool {
	switch t {
	case TypePublic, TypeRestricted, TypeCompany:
		return true
	}
	return false
}

// Holiday is a named calendar day. Date is always a calendar day (UTC midnight).
type Holiday struct {
	ID          string
	Name        string
	Date        time.Time
	Type        Type
	Description string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
