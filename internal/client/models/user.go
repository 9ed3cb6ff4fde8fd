// Package models defines the WellbeingHub payloads exchanged with the
// backend and their validation rules.
package models

import "fmt"

// Role is the account role assigned at registration.
type Role string

const (
	RoleEmployee Role = "Employee"
	RoleAdmin    Role = "Admin"
)

// DefaultUserID stands in for the creator/member id when no profile is cached.
const DefaultUserID int64 = 1

// User is the profile returned by GET /api/User/me and cached locally.
type User struct {
	NumericID int64  `json:"numericId"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Role      Role   `json:"role"`
	Location  string `json:"location"`
}

func (u *User) String() string {
	return fmt.Sprintf("%s <%s> (%s, %s)", u.Name, u.Email, u.Role, u.Location)
}

// IDOrDefault returns the user's numeric id, or DefaultUserID for a nil user.
func (u *User) IDOrDefault() int64 {
	if u == nil {
		return DefaultUserID
	}
	return u.NumericID
}
