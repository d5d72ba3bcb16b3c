package domain

// Role is one of the closed set of account roles.
type Role string

const (
	RoleSystemAdmin Role = "System Admin"
	RoleHRAdmin     Role = "HR Admin"
	RoleManager     Role = "Manager"
	RoleEmployee    Role = "Employee"
)

// Roles lists every known role.
func Roles() []Role {
	return []Role{RoleSystemAdmin, RoleHRAdmin, RoleManager, RoleEmployee}
}

// ParseRole maps a stored role name onto a known Role.
func ParseRole(name string) (Role, bool) {
	for _, r := range Roles() {
		if string(r) == name {
			return r, true
		}
	}
	return "", false
}

// Valid reports whether r is a known role.
func (r Role) Valid() bool {
	_, ok := ParseRole(string(r))
	return ok
}

// Permission names a single action, e.g. "employees.read".
type Permission string

const (
	PermissionAll Permission = "*"

	PermEmployeesRead   Permission = "employees.read"
	PermEmployeesWrite  Permission = "employees.write"
	PermEmployeesDelete Permission = "employees.delete"

	PermUsersRead   Permission = "users.read"
	PermUsersWrite  Permission = "users.write"
	PermUsersDelete Permission = "users.delete"

	PermPayrollRead   Permission = "payroll.read"
	PermPayrollWrite  Permission = "payroll.write"
	PermPayrollDelete Permission = "payroll.delete"

	PermReportsRead Permission = "reports.read"

	PermProfileRead  Permission = "profile.read"
	PermProfileWrite Permission = "profile.write"

	PermClaimsRead   Permission = "claims.read"
	PermClaimsWrite  Permission = "claims.write"
	PermClaimsDelete Permission = "claims.delete"

	PermDocumentsRead   Permission = "documents.read"
	PermDocumentsWrite  Permission = "documents.write"
	PermDocumentsDelete Permission = "documents.delete"

	PermBenefitsRead   Permission = "benefits.read"
	PermBenefitsWrite  Permission = "benefits.write"
	PermBenefitsDelete Permission = "benefits.delete"
)
