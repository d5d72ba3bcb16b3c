package auth

import (
	"testing"

	"github.com/spec-kit/hr-service/internal/domain"
)

var everyPermission = []domain.Permission{
	domain.PermEmployeesRead, domain.PermEmployeesWrite, domain.PermEmployeesDelete,
	domain.PermUsersRead, domain.PermUsersWrite, domain.PermUsersDelete,
	domain.PermPayrollRead, domain.PermPayrollWrite, domain.PermPayrollDelete,
	domain.PermReportsRead,
	domain.PermProfileRead, domain.PermProfileWrite,
	domain.PermClaimsRead, domain.PermClaimsWrite, domain.PermClaimsDelete,
	domain.PermDocumentsRead, domain.PermDocumentsWrite, domain.PermDocumentsDelete,
	domain.PermBenefitsRead, domain.PermBenefitsWrite, domain.PermBenefitsDelete,
	"made.up",
}

func TestSystemAdminHasEverything(t *testing.T) {
	for _, p := range everyPermission {
		if !HasPermission(domain.RoleSystemAdmin, p) {
			t.Errorf("System Admin denied %q", p)
		}
	}
}

func TestUnknownRoleHasNothing(t *testing.T) {
	for _, role := range []domain.Role{"", "Intern", "system admin", "*"} {
		for _, p := range everyPermission {
			if HasPermission(role, p) {
				t.Errorf("role %q granted %q", role, p)
			}
		}
	}
}

func TestHasPermission(t *testing.T) {
	tests := []struct {
		role   domain.Role
		action domain.Permission
		want   bool
	}{
		{domain.RoleEmployee, domain.PermEmployeesDelete, false},
		{domain.RoleEmployee, domain.PermProfileRead, true},
		{domain.RoleEmployee, domain.PermPayrollRead, true},
		{domain.RoleEmployee, domain.PermPayrollWrite, false},
		{domain.RoleHRAdmin, domain.PermEmployeesWrite, true},
		{domain.RoleHRAdmin, domain.PermPayrollDelete, false},
		{domain.RoleManager, domain.PermEmployeesWrite, true},
		{domain.RoleManager, domain.PermEmployeesDelete, false},
		{domain.RoleManager, "employees", false},
		{domain.RoleManager, "employees.*", false},
	}

	for _, tt := range tests {
		if got := HasPermission(tt.role, tt.action); got != tt.want {
			t.Errorf("HasPermission(%q, %q) = %v, want %v", tt.role, tt.action, got, tt.want)
		}
	}
}

func TestPayrollDeleteOnlyViaWildcard(t *testing.T) {
	for _, role := range domain.Roles() {
		if role == domain.RoleSystemAdmin {
			continue
		}
		if HasPermission(role, domain.PermPayrollDelete) {
			t.Errorf("role %q grants payroll.delete", role)
		}
	}
}

func TestEveryKnownRoleHasTableEntry(t *testing.T) {
	for _, role := range domain.Roles() {
		if len(PermissionsFor(role)) == 0 {
			t.Errorf("role %q has no permissions", role)
		}
	}
}
