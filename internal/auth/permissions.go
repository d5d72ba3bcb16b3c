package auth

import (
	"sort"

	"github.com/spec-kit/hr-service/internal/domain"
)

type permissionSet map[domain.Permission]struct{}

func newPermissionSet(perms ...domain.Permission) permissionSet {
	set := make(permissionSet, len(perms))
	for _, p := range perms {
		set[p] = struct{}{}
	}
	return set
}

// rolePermissions is fixed at build time and never mutated.
var rolePermissions = map[domain.Role]permissionSet{
	domain.RoleSystemAdmin: newPermissionSet(domain.PermissionAll),
	domain.RoleHRAdmin: newPermissionSet(
		domain.PermEmployeesRead, domain.PermEmployeesWrite, domain.PermEmployeesDelete,
		domain.PermUsersRead, domain.PermUsersWrite, domain.PermUsersDelete,
		domain.PermPayrollRead, domain.PermPayrollWrite,
		domain.PermReportsRead,
		domain.PermClaimsRead, domain.PermClaimsWrite,
		domain.PermDocumentsRead, domain.PermDocumentsWrite,
		domain.PermBenefitsRead, domain.PermBenefitsWrite,
	),
	domain.RoleManager: newPermissionSet(
		domain.PermEmployeesRead, domain.PermEmployeesWrite,
		domain.PermPayrollRead,
		domain.PermReportsRead,
		domain.PermClaimsRead,
		domain.PermDocumentsRead,
		domain.PermBenefitsRead,
	),
	domain.RoleEmployee: newPermissionSet(
		domain.PermProfileRead, domain.PermProfileWrite,
		domain.PermPayrollRead,
		domain.PermClaimsWrite,
		domain.PermBenefitsRead,
	),
}

// HasPermission reports whether role may perform action. Unknown roles get
// an empty set. Only the "*" entry acts as a wildcard; there is no prefix
// matching and no inheritance between roles.
func HasPermission(role domain.Role, action domain.Permission) bool {
	set, ok := rolePermissions[role]
	if !ok {
		return false
	}
	if _, all := set[domain.PermissionAll]; all {
		return true
	}
	_, allowed := set[action]
	return allowed
}

// PermissionsFor lists the explicit entries for role in sorted order, for
// display only.
func PermissionsFor(role domain.Role) []domain.Permission {
	set := rolePermissions[role]
	out := make([]domain.Permission, 0, len(set))
	for p := range set {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
