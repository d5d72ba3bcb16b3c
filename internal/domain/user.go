package domain

import "time"

// User is a login account. EmployeeID links it to an employee record when set.
type User struct {
	ID               int64
	EmployeeID       *int64
	Username         string
	PasswordHash     string
	Role             Role
	IsActive         bool
	TwoFactorEnabled bool
	CreatedAt        time.Time
	UpdatedAt        time.Time

	// Populated from the linked employee on lookups.
	FirstName string
	LastName  string
	Email     string
}

// FullName joins the linked employee's names, falling back to the username.
func (u *User) FullName() string {
	switch {
	case u.FirstName != "" && u.LastName != "":
		return u.FirstName + " " + u.LastName
	case u.FirstName != "":
		return u.FirstName
	case u.LastName != "":
		return u.LastName
	default:
		return u.Username
	}
}
