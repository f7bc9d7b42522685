package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/invoice-maker/internal/application/dto"
	"github.com/jhoicas/invoice-maker/internal/application/usecase"
	"github.com/jhoicas/invoice-maker/internal/domain"
)

// InvoiceHandler maneja las peticiones HTTP sobre la colección de facturas.
type InvoiceHandler struct {
	uc     *usecase.InvoiceUseCase
	export *usecase.ExportUseCase
}

// NewInvoiceHandler construye el handler.
func NewInvoiceHandler(uc *usecase.InvoiceUseCase, export *usecase.ExportUseCase) *InvoiceHandler {
	return &InvoiceHandler{uc: uc, export: export}
}

// List lista las facturas persistidas con su total derivado.
// GET /api/invoices
func (h *InvoiceHandler) List(c *fiber.Ctx) error {
	list, err := h.uc.List()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(list)
}

// Save inserta o reemplaza una factura (upsert por ID).
// POST /api/invoices
func (h *InvoiceHandler) Save(c *fiber.Ctx) error {
	var in dto.SaveInvoiceRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	saved, err := h.uc.Save(in)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(saved)
}

// GetByID obtiene una factura por ID.
// GET /api/invoices/:id
func (h *InvoiceHandler) GetByID(c *fiber.Ctx) error {
	id := c.Params("id")
	inv, err := h.uc.Get(id)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if inv == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "factura no encontrada"})
	}
	return c.JSON(inv)
}

// Delete elimina una factura por ID. Idempotente: borrar un ID inexistente
// también responde 204.
// DELETE /api/invoices/:id
func (h *InvoiceHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Params("id")); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Clone guarda como nueva una factura existente (ID nuevo, número decorado).
// POST /api/invoices/:id/clone
func (h *InvoiceHandler) Clone(c *fiber.Ctx) error {
	dup, err := h.uc.Clone(c.Params("id"))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "factura no encontrada"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(dup)
}

// DownloadPDF genera y descarga el PDF de una factura.
// GET /api/invoices/:id/pdf
func (h *InvoiceHandler) DownloadPDF(c *fiber.Ctx) error {
	pdfBytes, filename, err := h.export.DownloadInvoicePDF(c.Context(), c.Params("id"))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "factura no encontrada"})
		}
		if errors.Is(err, domain.ErrExportFailed) {
			return c.Status(fiber.StatusBadGateway).JSON(dto.ErrorResponse{Code: "EXPORT_FAILED", Message: "no se pudo generar el PDF"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(pdfBytes)
}
