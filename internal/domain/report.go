package domain

// ReportKind selects which sections a report includes.
type ReportKind string

const (
	ReportAll       ReportKind = "all"
	ReportEmployees ReportKind = "employees"
	ReportPayroll   ReportKind = "payroll"
	ReportClaims    ReportKind = "claims"
)

// Valid reports whether k is a known report kind.
func (k ReportKind) Valid() bool {
	switch k {
	case ReportAll, ReportEmployees, ReportPayroll, ReportClaims:
		return true
	}
	return false
}

// Includes reports whether a report of kind k carries section.
func (k ReportKind) Includes(section ReportKind) bool {
	return k == ReportAll || k == section
}

// HeadcountReport summarizes employee records.
type HeadcountReport struct {
	Total        int64
	Active       int64
	ByDepartment []DepartmentHeadcount
}

// DepartmentHeadcount counts active employees in one department. Employees
// without a department are grouped under the empty name.
type DepartmentHeadcount struct {
	Department string
	Active     int64
}

// StatusCount is a row count for one status value.
type StatusCount struct {
	Status string
	Count  int64
}

// ClaimStatusTotal counts claims and sums their amounts for one status.
type ClaimStatusTotal struct {
	Status ClaimStatus
	Count  int64
	Amount float64
}

// Report is the aggregate view served to HR and managers. Sections not
// requested are nil.
type Report struct {
	Kind      ReportKind
	Employees *HeadcountReport
	Payroll   []StatusCount
	Claims    []ClaimStatusTotal
}
