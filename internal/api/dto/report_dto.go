package dto

// ReportResponse payload. Sections that were not requested are omitted.
type ReportResponse struct {
	Type      string               `json:"type"`
	Employees *HeadcountResponse   `json:"employees,omitempty"`
	Payroll   []StatusCountItem    `json:"payroll_runs,omitempty"`
	Claims    []ClaimStatusSummary `json:"claims,omitempty"`
}

// HeadcountResponse payload.
type HeadcountResponse struct {
	Total        int64            `json:"total"`
	Active       int64            `json:"active"`
	Inactive     int64            `json:"inactive"`
	ByDepartment []DepartmentItem `json:"by_department"`
}

// DepartmentItem payload.
type DepartmentItem struct {
	Department string `json:"department"`
	Active     int64  `json:"active"`
}

// StatusCountItem payload.
type StatusCountItem struct {
	Status string `json:"status"`
	Count  int64  `json:"count"`
}

// ClaimStatusSummary payload.
type ClaimStatusSummary struct {
	Status string  `json:"status"`
	Count  int64   `json:"count"`
	Amount float64 `json:"amount"`
}
