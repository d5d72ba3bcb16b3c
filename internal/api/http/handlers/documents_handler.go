package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/hr-service/internal/api/dto"
	"github.com/spec-kit/hr-service/internal/domain"
	"github.com/spec-kit/hr-service/internal/service"
)

// DocumentsHandler serves /documents.
type DocumentsHandler struct {
	documents *service.DocumentService
}

// NewDocumentsHandler constructs handler.
func NewDocumentsHandler(documents *service.DocumentService) *DocumentsHandler {
	return &DocumentsHandler{documents: documents}
}

// List GET /documents?employee_id=.
func (h *DocumentsHandler) List(c *fiber.Ctx) error {
	opts, page, limit := pageParams(c)
	employeeID, err := parseOptionalInt64Query(c, "employee_id")
	if err != nil {
		return err
	}
	documents, err := h.documents.List(c.UserContext(), employeeID, opts)
	if err != nil {
		return err
	}
	items := make([]dto.DocumentResponse, 0, len(documents))
	for i := range documents {
		items = append(items, documentResponse(&documents[i]))
	}
	return c.JSON(fiber.Map{"data": items, "meta": pageMeta(page, limit, len(items))})
}

// Get GET /documents/:id.
func (h *DocumentsHandler) Get(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return err
	}
	document, err := h.documents.Get(c.UserContext(), id)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": documentResponse(document)})
}

// Create POST /documents.
func (h *DocumentsHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateDocumentRequest
	if err := bindJSON(c, &req); err != nil {
		return err
	}
	document := &domain.Document{
		EmployeeID: req.EmployeeID,
		FileName:   req.FileName,
		MimeType:   req.MimeType,
	}
	if err := h.documents.Create(c.UserContext(), document); err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": documentResponse(document)})
}

// Delete DELETE /documents/:id.
func (h *DocumentsHandler) Delete(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return err
	}
	if err := h.documents.Delete(c.UserContext(), id); err != nil {
		return err
	}
	return c.SendStatus(http.StatusNoContent)
}
