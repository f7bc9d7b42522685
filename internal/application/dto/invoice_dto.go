package dto

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/invoice-maker/internal/domain/entity"
)

// ContactInfoDTO contacto embebido en requests y responses.
type ContactInfoDTO struct {
	Name  string `json:"name,omitempty"`
	Phone string `json:"phone,omitempty"`
	Email string `json:"email,omitempty"`
}

// InvoiceItemRequest línea de factura en un request de guardado.
// Cantidad y precio pasan por la coerción de Amount (no parseable → cero).
type InvoiceItemRequest struct {
	ID          string `json:"id,omitempty"`
	Description string `json:"description"`
	Quantity    Amount `json:"quantity"`
	Price       Amount `json:"price"`
}

// PaymentMethodRequest método de pago en un request de guardado.
type PaymentMethodRequest struct {
	ID      string `json:"id,omitempty"`
	Label   string `json:"label"`
	Details string `json:"details"`
}

// SaveInvoiceRequest body para POST /api/invoices (upsert por ID).
// Los campos omitidos toman los valores por defecto de una factura nueva.
type SaveInvoiceRequest struct {
	ID      string `json:"id,omitempty"`
	Number  string `json:"number,omitempty"`
	Date    string `json:"date,omitempty"`
	DueDate string `json:"dueDate,omitempty"`

	CompanyName    string          `json:"companyName,omitempty"`
	CompanyLogo    string          `json:"companyLogo,omitempty"`
	CompanyAddress string          `json:"companyAddress,omitempty"`
	CompanyWebsite string          `json:"companyWebsite,omitempty"`
	CompanyContact *ContactInfoDTO `json:"companyContact,omitempty"`

	ClientName    string          `json:"clientName,omitempty"`
	ClientAddress string          `json:"clientAddress,omitempty"`
	ClientContact *ContactInfoDTO `json:"clientContact,omitempty"`

	Items          []InvoiceItemRequest   `json:"items,omitempty"`
	PaymentMethods []PaymentMethodRequest `json:"paymentMethods,omitempty"`

	Currency         string `json:"currency,omitempty"`
	CurrencyPosition string `json:"currencyPosition,omitempty"`
	Status           string `json:"status,omitempty"`
}

// InvoiceItemResponse línea con su subtotal derivado.
type InvoiceItemResponse struct {
	ID          string          `json:"id"`
	Description string          `json:"description"`
	Quantity    decimal.Decimal `json:"quantity"`
	Price       decimal.Decimal `json:"price"`
	Subtotal    decimal.Decimal `json:"subtotal"`
}

// PaymentMethodResponse método de pago en responses.
type PaymentMethodResponse struct {
	ID      string `json:"id"`
	Label   string `json:"label"`
	Details string `json:"details"`
}

// InvoiceResponse factura completa con totales derivados.
type InvoiceResponse struct {
	ID      string `json:"id"`
	Number  string `json:"number"`
	Date    string `json:"date"`
	DueDate string `json:"dueDate"`

	CompanyName    string          `json:"companyName"`
	CompanyLogo    string          `json:"companyLogo,omitempty"`
	CompanyAddress string          `json:"companyAddress,omitempty"`
	CompanyWebsite string          `json:"companyWebsite,omitempty"`
	CompanyContact *ContactInfoDTO `json:"companyContact,omitempty"`

	ClientName    string          `json:"clientName"`
	ClientAddress string          `json:"clientAddress,omitempty"`
	ClientContact *ContactInfoDTO `json:"clientContact,omitempty"`

	Items          []InvoiceItemResponse   `json:"items"`
	PaymentMethods []PaymentMethodResponse `json:"paymentMethods,omitempty"`

	Currency         string `json:"currency"`
	CurrencyPosition string `json:"currencyPosition"`
	Status           string `json:"status"`

	Total          decimal.Decimal `json:"total"`
	TotalFormatted string          `json:"totalFormatted"`
}

// InvoiceSummaryResponse entrada ligera para el listado lateral.
type InvoiceSummaryResponse struct {
	ID             string          `json:"id"`
	Number         string          `json:"number"`
	ClientName     string          `json:"clientName"`
	Date           string          `json:"date"`
	Status         string          `json:"status"`
	Total          decimal.Decimal `json:"total"`
	TotalFormatted string          `json:"totalFormatted"`
}

// InvoiceListResponse respuesta de GET /api/invoices.
type InvoiceListResponse struct {
	Items []InvoiceSummaryResponse `json:"items"`
	Total int                      `json:"total"`
}

// ── mapeo entidad ↔ DTO ───────────────────────────────────────────────────────

// FromInvoice construye la respuesta completa de una factura.
func FromInvoice(inv *entity.Invoice) *InvoiceResponse {
	if inv == nil {
		return nil
	}
	items := make([]InvoiceItemResponse, 0, len(inv.Items))
	for _, it := range inv.Items {
		items = append(items, InvoiceItemResponse{
			ID:          it.ID,
			Description: it.Description,
			Quantity:    it.Quantity,
			Price:       it.Price,
			Subtotal:    it.Subtotal(),
		})
	}
	methods := make([]PaymentMethodResponse, 0, len(inv.PaymentMethods))
	for _, pm := range inv.PaymentMethods {
		methods = append(methods, PaymentMethodResponse(pm))
	}
	total := inv.Total()
	return &InvoiceResponse{
		ID:               inv.ID,
		Number:           inv.Number,
		Date:             inv.Date,
		DueDate:          inv.DueDate,
		CompanyName:      inv.CompanyName,
		CompanyLogo:      inv.CompanyLogo,
		CompanyAddress:   inv.CompanyAddress,
		CompanyWebsite:   inv.CompanyWebsite,
		CompanyContact:   contactToDTO(inv.CompanyContact),
		ClientName:       inv.ClientName,
		ClientAddress:    inv.ClientAddress,
		ClientContact:    contactToDTO(inv.ClientContact),
		Items:            items,
		PaymentMethods:   methods,
		Currency:         inv.Currency,
		CurrencyPosition: inv.CurrencyPosition,
		Status:           inv.Status,
		Total:            total,
		TotalFormatted:   inv.FormatAmount(total),
	}
}

// SummaryFromInvoice construye la entrada de listado de una factura.
func SummaryFromInvoice(inv *entity.Invoice) InvoiceSummaryResponse {
	total := inv.Total()
	return InvoiceSummaryResponse{
		ID:             inv.ID,
		Number:         inv.Number,
		ClientName:     inv.ClientName,
		Date:           inv.Date,
		Status:         inv.Status,
		Total:          total,
		TotalFormatted: inv.FormatAmount(total),
	}
}

func contactToDTO(c *entity.ContactInfo) *ContactInfoDTO {
	if c == nil {
		return nil
	}
	return &ContactInfoDTO{Name: c.Name, Phone: c.Phone, Email: c.Email}
}

// ToContact convierte el DTO en el sub-registro de dominio.
func (c *ContactInfoDTO) ToContact() *entity.ContactInfo {
	if c == nil {
		return nil
	}
	return &entity.ContactInfo{Name: c.Name, Phone: c.Phone, Email: c.Email}
}
