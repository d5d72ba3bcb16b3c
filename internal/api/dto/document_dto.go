package dto

import "time"

// CreateDocumentRequest registers document metadata.
type CreateDocumentRequest struct {
	EmployeeID int64  `json:"employee_id" validate:"required,gt=0"`
	FileName   string `json:"file_name" validate:"required,max=255"`
	MimeType   string `json:"mime_type" validate:"required,max=100"`
}

// DocumentResponse payload.
type DocumentResponse struct {
	ID         int64     `json:"id"`
	EmployeeID int64     `json:"employee_id"`
	FileName   string    `json:"file_name"`
	MimeType   string    `json:"mime_type"`
	CreatedAt  time.Time `json:"created_at"`
}
