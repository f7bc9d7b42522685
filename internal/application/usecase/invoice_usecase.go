package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/invoice-maker/internal/application/dto"
	"github.com/jhoicas/invoice-maker/internal/domain"
	"github.com/jhoicas/invoice-maker/internal/domain/entity"
	"github.com/jhoicas/invoice-maker/internal/domain/repository"
)

// copyMarker sufijo que decora el número al clonar una factura.
const copyMarker = " (Copy)"

// EditorDefaults valores aplicados a los campos vacíos de una factura nueva.
type EditorDefaults struct {
	CompanyName    string
	CompanyAddress string
	CompanyLogo    string
	Currency       string
}

// InvoiceUseCase operaciones sobre la colección persistida de facturas.
type InvoiceUseCase struct {
	repo     repository.InvoiceRepository
	defaults EditorDefaults
}

// NewInvoiceUseCase construye el caso de uso con el puerto de persistencia.
func NewInvoiceUseCase(repo repository.InvoiceRepository, defaults EditorDefaults) *InvoiceUseCase {
	return &InvoiceUseCase{repo: repo, defaults: defaults}
}

// List lista las facturas con su total derivado, en orden de almacenamiento.
func (uc *InvoiceUseCase) List() (*dto.InvoiceListResponse, error) {
	list, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	items := make([]dto.InvoiceSummaryResponse, 0, len(list))
	for _, inv := range list {
		items = append(items, dto.SummaryFromInvoice(inv))
	}
	return &dto.InvoiceListResponse{Items: items, Total: len(items)}, nil
}

// Get obtiene una factura por ID. Devuelve (nil, nil) si no existe.
func (uc *InvoiceUseCase) Get(id string) (*dto.InvoiceResponse, error) {
	inv, err := uc.repo.Get(id)
	if err != nil {
		return nil, err
	}
	if inv == nil {
		return nil, nil
	}
	return dto.FromInvoice(inv), nil
}

// Save inserta o reemplaza (por ID) la factura recibida. Los campos vacíos
// toman los defaults de una factura nueva; los IDs faltantes se generan.
func (uc *InvoiceUseCase) Save(in dto.SaveInvoiceRequest) (*dto.InvoiceResponse, error) {
	inv := uc.requestToInvoice(in)
	if err := uc.repo.Upsert(inv); err != nil {
		return nil, err
	}
	return dto.FromInvoice(inv), nil
}

// Delete elimina una factura por ID. No es error que el ID no exista; la
// confirmación previa es asunto de la capa de UI.
func (uc *InvoiceUseCase) Delete(id string) error {
	return uc.repo.Remove(id)
}

// Clone guarda como nueva la factura indicada: copia con ID nuevo y número
// decorado. La original queda intacta y presente en la colección.
func (uc *InvoiceUseCase) Clone(id string) (*dto.InvoiceResponse, error) {
	inv, err := uc.repo.Get(id)
	if err != nil {
		return nil, err
	}
	if inv == nil {
		return nil, domain.ErrNotFound
	}
	dup := inv.Clone()
	dup.ID = uuid.New().String()
	dup.Number = inv.Number + copyMarker
	if err := uc.repo.Upsert(dup); err != nil {
		return nil, err
	}
	return dto.FromInvoice(dup), nil
}

func (uc *InvoiceUseCase) requestToInvoice(in dto.SaveInvoiceRequest) *entity.Invoice {
	inv := newInvoice(uc.defaults)

	if in.ID != "" {
		inv.ID = in.ID
	}
	if in.Number != "" {
		inv.Number = in.Number
	}
	if in.Date != "" {
		inv.Date = in.Date
	}
	inv.DueDate = in.DueDate
	if in.CompanyName != "" {
		inv.CompanyName = in.CompanyName
	}
	if in.CompanyLogo != "" {
		inv.CompanyLogo = in.CompanyLogo
	}
	if in.CompanyAddress != "" {
		inv.CompanyAddress = in.CompanyAddress
	}
	inv.CompanyWebsite = in.CompanyWebsite
	if c := in.CompanyContact.ToContact(); c != nil {
		inv.CompanyContact = c
	}
	inv.ClientName = in.ClientName
	inv.ClientAddress = in.ClientAddress
	if c := in.ClientContact.ToContact(); c != nil {
		inv.ClientContact = c
	}
	if in.Currency != "" {
		inv.Currency = in.Currency
	}
	if in.CurrencyPosition != "" {
		inv.CurrencyPosition = in.CurrencyPosition
	}
	if in.Status != "" {
		inv.Status = in.Status
	}

	if in.Items != nil {
		inv.Items = make([]entity.InvoiceItem, 0, len(in.Items))
		for _, it := range in.Items {
			id := it.ID
			if id == "" {
				id = uuid.New().String()
			}
			inv.Items = append(inv.Items, entity.InvoiceItem{
				ID:          id,
				Description: it.Description,
				Quantity:    it.Quantity.Decimal,
				Price:       it.Price.Decimal,
			})
		}
	}
	if in.PaymentMethods != nil {
		inv.PaymentMethods = make([]entity.PaymentMethod, 0, len(in.PaymentMethods))
		for _, pm := range in.PaymentMethods {
			id := pm.ID
			if id == "" {
				id = uuid.New().String()
			}
			inv.PaymentMethods = append(inv.PaymentMethods, entity.PaymentMethod{
				ID:      id,
				Label:   pm.Label,
				Details: pm.Details,
			})
		}
	}
	return inv
}

// newInvoice construye una factura nueva con los defaults de una sesión de
// edición recién iniciada: ID fresco, número "INV-001", fecha de hoy,
// moneda "$" antes del monto, estado draft y exactamente una línea en blanco.
func newInvoice(d EditorDefaults) *entity.Invoice {
	currency := d.Currency
	if currency == "" {
		currency = "$"
	}
	return &entity.Invoice{
		ID:               uuid.New().String(),
		Number:           "INV-001",
		Date:             time.Now().Format("2006-01-02"),
		DueDate:          "",
		CompanyName:      d.CompanyName,
		CompanyLogo:      d.CompanyLogo,
		CompanyAddress:   d.CompanyAddress,
		CompanyContact:   &entity.ContactInfo{},
		ClientContact:    &entity.ContactInfo{},
		Items:            []entity.InvoiceItem{newBlankItem()},
		PaymentMethods:   []entity.PaymentMethod{},
		Currency:         currency,
		CurrencyPosition: entity.CurrencyBefore,
		Status:           entity.StatusDraft,
	}
}

func newBlankItem() entity.InvoiceItem {
	return entity.InvoiceItem{
		ID:       uuid.New().String(),
		Quantity: decimal.NewFromInt(1),
		Price:    decimal.Zero,
	}
}
