package handlers

import (
	"github.com/spec-kit/hr-service/internal/api/dto"
	"github.com/spec-kit/hr-service/internal/domain"
)

func userResponse(u *domain.User) dto.UserResponse {
	return dto.UserResponse{
		ID:               u.ID,
		EmployeeID:       u.EmployeeID,
		Username:         u.Username,
		Role:             string(u.Role),
		FullName:         u.FullName(),
		IsActive:         u.IsActive,
		TwoFactorEnabled: u.TwoFactorEnabled,
		CreatedAt:        u.CreatedAt,
	}
}

func employeeResponse(e *domain.Employee) dto.EmployeeResponse {
	return dto.EmployeeResponse{
		ID:         e.ID,
		FirstName:  e.FirstName,
		LastName:   e.LastName,
		Email:      e.Email,
		Department: e.Department,
		JobTitle:   e.JobTitle,
		HireDate:   formatDate(e.HireDate),
		IsActive:   e.IsActive,
		CreatedAt:  e.CreatedAt,
		UpdatedAt:  e.UpdatedAt,
	}
}

func payrollRunResponse(r *domain.PayrollRun) dto.PayrollRunResponse {
	return dto.PayrollRunResponse{
		ID:          r.ID,
		StartDate:   r.StartDate.Format(dateLayout),
		EndDate:     r.EndDate.Format(dateLayout),
		PaymentDate: r.PaymentDate.Format(dateLayout),
		Status:      string(r.Status),
		CreatedAt:   r.CreatedAt,
	}
}

func claimResponse(c *domain.Claim) dto.ClaimResponse {
	return dto.ClaimResponse{
		ID:         c.ID,
		EmployeeID: c.EmployeeID,
		ClaimType:  c.ClaimType,
		Amount:     c.Amount,
		Status:     string(c.Status),
		CreatedAt:  c.CreatedAt,
	}
}

func documentResponse(d *domain.Document) dto.DocumentResponse {
	return dto.DocumentResponse{
		ID:         d.ID,
		EmployeeID: d.EmployeeID,
		FileName:   d.FileName,
		MimeType:   d.MimeType,
		CreatedAt:  d.CreatedAt,
	}
}

func benefitResponse(b *domain.HMOBenefit) dto.BenefitResponse {
	return dto.BenefitResponse{
		ID:          b.ID,
		Name:        b.Name,
		Description: b.Description,
		Coverage:    b.Coverage,
		CreatedAt:   b.CreatedAt,
	}
}
