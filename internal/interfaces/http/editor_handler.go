package http

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/invoice-maker/internal/application/dto"
	"github.com/jhoicas/invoice-maker/internal/application/usecase"
	"github.com/jhoicas/invoice-maker/internal/domain"
	"github.com/jhoicas/invoice-maker/internal/domain/entity"
)

// EditorHandler expone la sesión de edición (una sola factura activa).
// Las operaciones por índice con índice fuera de rango responden el estado
// actual sin modificarlo, igual que el caso de uso.
type EditorHandler struct {
	uc *usecase.EditorUseCase
}

// NewEditorHandler construye el handler.
func NewEditorHandler(uc *usecase.EditorUseCase) *EditorHandler {
	return &EditorHandler{uc: uc}
}

// Initialize arranca la sesión, desde una factura guardada o desde cero.
// POST /api/editor
func (h *EditorHandler) Initialize(c *fiber.Ctx) error {
	var in dto.InitializeEditorRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&in); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
		}
	}
	inv, err := h.uc.Initialize(in.SeedID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "factura semilla no encontrada"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(dto.FromInvoice(inv))
}

// Current devuelve la factura en edición con sus totales derivados.
// GET /api/editor
func (h *EditorHandler) Current(c *fiber.Ctx) error {
	return c.JSON(dto.FromInvoice(h.uc.Current()))
}

// ApplyFields aplica una actualización parcial de campos (contactos se
// mezclan preservando los campos hermanos).
// PATCH /api/editor
func (h *EditorHandler) ApplyFields(c *fiber.Ctx) error {
	var in dto.EditorFieldsRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	return c.JSON(dto.FromInvoice(h.uc.ApplyFields(in)))
}

// AddItem agrega una línea en blanco.
// POST /api/editor/items
func (h *EditorHandler) AddItem(c *fiber.Ctx) error {
	return c.Status(fiber.StatusCreated).JSON(dto.FromInvoice(h.uc.AddItem()))
}

// UpdateItem aplica un patch a la línea en la posición indicada.
// PATCH /api/editor/items/:index
func (h *EditorHandler) UpdateItem(c *fiber.Ctx) error {
	index, ok := parseIndex(c)
	if !ok {
		return badIndex(c)
	}
	var in dto.ItemPatch
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	return c.JSON(dto.FromInvoice(h.uc.UpdateItem(index, in)))
}

// RemoveItem elimina la línea en la posición indicada.
// DELETE /api/editor/items/:index
func (h *EditorHandler) RemoveItem(c *fiber.Ctx) error {
	index, ok := parseIndex(c)
	if !ok {
		return badIndex(c)
	}
	return c.JSON(dto.FromInvoice(h.uc.RemoveItem(index)))
}

// AddPaymentMethod agrega un método de pago vacío.
// POST /api/editor/payment-methods
func (h *EditorHandler) AddPaymentMethod(c *fiber.Ctx) error {
	return c.Status(fiber.StatusCreated).JSON(dto.FromInvoice(h.uc.AddPaymentMethod()))
}

// UpdatePaymentMethod aplica un patch al método de pago indicado.
// PATCH /api/editor/payment-methods/:index
func (h *EditorHandler) UpdatePaymentMethod(c *fiber.Ctx) error {
	index, ok := parseIndex(c)
	if !ok {
		return badIndex(c)
	}
	var in dto.PaymentMethodPatch
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	return c.JSON(dto.FromInvoice(h.uc.UpdatePaymentMethod(index, in)))
}

// RemovePaymentMethod elimina el método de pago indicado.
// DELETE /api/editor/payment-methods/:index
func (h *EditorHandler) RemovePaymentMethod(c *fiber.Ctx) error {
	index, ok := parseIndex(c)
	if !ok {
		return badIndex(c)
	}
	return c.JSON(dto.FromInvoice(h.uc.RemovePaymentMethod(index)))
}

// AttachLogo adjunta el cuerpo crudo como logo del emisor. Se acepta
// cualquier contenido, sin validación de tamaño ni formato.
// POST /api/editor/logo
func (h *EditorHandler) AttachLogo(c *fiber.Ctx) error {
	body := c.Body()
	if len(body) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo vacío"})
	}
	return c.JSON(dto.FromInvoice(h.uc.AttachLogo(body)))
}

// Save guarda la factura en edición en la colección.
// POST /api/editor/save
func (h *EditorHandler) Save(c *fiber.Ctx) error {
	inv, err := h.uc.Save()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(savedResponse(inv))
}

// SaveAsNew guarda la factura en edición como una copia nueva.
// POST /api/editor/save-as-new
func (h *EditorHandler) SaveAsNew(c *fiber.Ctx) error {
	inv, err := h.uc.SaveAsNew()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(savedResponse(inv))
}

// savedResponse factura guardada + confirmación transitoria para la UI.
func savedResponse(inv *entity.Invoice) fiber.Map {
	return fiber.Map{
		"message": "Invoice saved successfully!",
		"invoice": dto.FromInvoice(inv),
	}
}

func parseIndex(c *fiber.Ctx) (int, bool) {
	n, err := strconv.Atoi(c.Params("index"))
	if err != nil {
		return 0, false
	}
	return n, true
}

func badIndex(c *fiber.Ctx) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "índice inválido"})
}
