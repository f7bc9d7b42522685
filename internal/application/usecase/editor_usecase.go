package usecase

import (
	"encoding/base64"
	"sync"

	"github.com/google/uuid"
	"github.com/h2non/filetype"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/invoice-maker/internal/application/dto"
	"github.com/jhoicas/invoice-maker/internal/domain"
	"github.com/jhoicas/invoice-maker/internal/domain/entity"
	"github.com/jhoicas/invoice-maker/internal/domain/repository"
)

// EditorUseCase mantiene exactamente una factura como unidad de edición
// activa, separada de la colección persistida: las ediciones no son visibles
// en la colección hasta que se guardan explícitamente.
//
// Las operaciones por índice sobre listas (ítems, métodos de pago) definen el
// índice fuera de rango como no-op. Ninguna operación de la sesión produce un
// error visible al usuario salvo las que tocan la persistencia.
type EditorUseCase struct {
	mu       sync.Mutex
	repo     repository.InvoiceRepository
	defaults EditorDefaults
	current  *entity.Invoice
}

// NewEditorUseCase construye la sesión de edición (vacía hasta el primer uso).
func NewEditorUseCase(repo repository.InvoiceRepository, defaults EditorDefaults) *EditorUseCase {
	return &EditorUseCase{repo: repo, defaults: defaults}
}

// Initialize arranca la sesión. Con seedID carga la factura desde la
// colección (ErrNotFound si no existe); sin él arranca una factura nueva
// con los defaults.
func (uc *EditorUseCase) Initialize(seedID string) (*entity.Invoice, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	if seedID == "" {
		uc.current = newInvoice(uc.defaults)
		return uc.current.Clone(), nil
	}

	seed, err := uc.repo.Get(seedID)
	if err != nil {
		return nil, err
	}
	if seed == nil {
		return nil, domain.ErrNotFound
	}
	uc.current = seedInvoice(seed, uc.defaults)
	return uc.current.Clone(), nil
}

// Current devuelve un snapshot de la factura en edición. Si no hay sesión
// activa arranca una nueva, como el formulario original que siempre tiene
// una factura cargada.
func (uc *EditorUseCase) Current() *entity.Invoice {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	uc.ensureSession()
	return uc.current.Clone()
}

// Total calcula el total sobre los ítems actuales. Puro, sin efectos.
func (uc *EditorUseCase) Total() decimal.Decimal {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	uc.ensureSession()
	return uc.current.Total()
}

// ApplyFields aplica una actualización parcial de campos. Los contactos se
// mezclan campo a campo sobre el sub-registro existente, preservando los
// campos hermanos no mencionados.
func (uc *EditorUseCase) ApplyFields(in dto.EditorFieldsRequest) *entity.Invoice {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	uc.ensureSession()

	inv := uc.current
	setIf(&inv.Number, in.Number)
	setIf(&inv.Date, in.Date)
	setIf(&inv.DueDate, in.DueDate)
	setIf(&inv.CompanyName, in.CompanyName)
	setIf(&inv.CompanyAddress, in.CompanyAddress)
	setIf(&inv.CompanyWebsite, in.CompanyWebsite)
	setIf(&inv.ClientName, in.ClientName)
	setIf(&inv.ClientAddress, in.ClientAddress)
	setIf(&inv.Currency, in.Currency)
	setIf(&inv.CurrencyPosition, in.CurrencyPosition)
	setIf(&inv.Status, in.Status)

	if in.CompanyContact != nil {
		inv.CompanyContact = mergeContact(inv.CompanyContact, in.CompanyContact)
	}
	if in.ClientContact != nil {
		inv.ClientContact = mergeContact(inv.ClientContact, in.ClientContact)
	}
	return inv.Clone()
}

// AddItem agrega una línea en blanco al final.
func (uc *EditorUseCase) AddItem() *entity.Invoice {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	uc.ensureSession()
	uc.current.Items = append(uc.current.Items, newBlankItem())
	return uc.current.Clone()
}

// UpdateItem aplica un patch a la línea en la posición index.
func (uc *EditorUseCase) UpdateItem(index int, patch dto.ItemPatch) *entity.Invoice {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	uc.ensureSession()

	if index >= 0 && index < len(uc.current.Items) {
		it := &uc.current.Items[index]
		if patch.Description != nil {
			it.Description = *patch.Description
		}
		if patch.Quantity != nil {
			it.Quantity = patch.Quantity.Decimal
		}
		if patch.Price != nil {
			it.Price = patch.Price.Decimal
		}
	}
	return uc.current.Clone()
}

// RemoveItem elimina la línea en la posición index.
func (uc *EditorUseCase) RemoveItem(index int) *entity.Invoice {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	uc.ensureSession()

	if index >= 0 && index < len(uc.current.Items) {
		uc.current.Items = append(uc.current.Items[:index], uc.current.Items[index+1:]...)
	}
	return uc.current.Clone()
}

// AddPaymentMethod agrega un método de pago vacío al final.
func (uc *EditorUseCase) AddPaymentMethod() *entity.Invoice {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	uc.ensureSession()
	uc.current.PaymentMethods = append(uc.current.PaymentMethods, entity.PaymentMethod{
		ID: uuid.New().String(),
	})
	return uc.current.Clone()
}

// UpdatePaymentMethod aplica un patch al método de pago en la posición index.
func (uc *EditorUseCase) UpdatePaymentMethod(index int, patch dto.PaymentMethodPatch) *entity.Invoice {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	uc.ensureSession()

	if index >= 0 && index < len(uc.current.PaymentMethods) {
		pm := &uc.current.PaymentMethods[index]
		if patch.Label != nil {
			pm.Label = *patch.Label
		}
		if patch.Details != nil {
			pm.Details = *patch.Details
		}
	}
	return uc.current.Clone()
}

// RemovePaymentMethod elimina el método de pago en la posición index.
func (uc *EditorUseCase) RemovePaymentMethod(index int) *entity.Invoice {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	uc.ensureSession()

	if index >= 0 && index < len(uc.current.PaymentMethods) {
		uc.current.PaymentMethods = append(
			uc.current.PaymentMethods[:index],
			uc.current.PaymentMethods[index+1:]...,
		)
	}
	return uc.current.Clone()
}

// AttachLogo almacena el logo del emisor como data URL. Cualquier contenido
// se acepta tal cual; el MIME se detecta por los magic bytes y cae a
// application/octet-stream si no se reconoce.
func (uc *EditorUseCase) AttachLogo(data []byte) *entity.Invoice {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	uc.ensureSession()

	mime := "application/octet-stream"
	if kind, err := filetype.Match(data); err == nil && kind != filetype.Unknown {
		mime = kind.MIME.Value
	}
	uc.current.CompanyLogo = "data:" + mime + ";base64," + base64.StdEncoding.EncodeToString(data)
	return uc.current.Clone()
}

// Save guarda la factura en edición en la colección (upsert por ID).
func (uc *EditorUseCase) Save() (*entity.Invoice, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	uc.ensureSession()

	if err := uc.repo.Upsert(uc.current); err != nil {
		return nil, err
	}
	return uc.current.Clone(), nil
}

// SaveAsNew clona la factura en edición con ID nuevo y número decorado,
// guarda el clon y lo deja como sesión activa. La original no se toca.
func (uc *EditorUseCase) SaveAsNew() (*entity.Invoice, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	uc.ensureSession()

	dup := uc.current.Clone()
	dup.ID = uuid.New().String()
	dup.Number = uc.current.Number + copyMarker
	if err := uc.repo.Upsert(dup); err != nil {
		return nil, err
	}
	uc.current = dup
	return dup.Clone(), nil
}

// ensureSession garantiza una sesión activa. Requiere uc.mu tomado.
func (uc *EditorUseCase) ensureSession() {
	if uc.current == nil {
		uc.current = newInvoice(uc.defaults)
	}
}

// seedInvoice completa con defaults los campos vacíos de una factura semilla.
func seedInvoice(seed *entity.Invoice, d EditorDefaults) *entity.Invoice {
	inv := seed.Clone()
	base := newInvoice(d)

	if inv.ID == "" {
		inv.ID = base.ID
	}
	if inv.Number == "" {
		inv.Number = base.Number
	}
	if inv.Date == "" {
		inv.Date = base.Date
	}
	if inv.CompanyContact == nil {
		inv.CompanyContact = &entity.ContactInfo{}
	}
	if inv.ClientContact == nil {
		inv.ClientContact = &entity.ContactInfo{}
	}
	if inv.Items == nil {
		inv.Items = []entity.InvoiceItem{newBlankItem()}
	}
	if inv.PaymentMethods == nil {
		inv.PaymentMethods = []entity.PaymentMethod{}
	}
	if inv.Currency == "" {
		inv.Currency = base.Currency
	}
	if inv.CurrencyPosition == "" {
		inv.CurrencyPosition = entity.CurrencyBefore
	}
	if inv.Status == "" {
		inv.Status = entity.StatusDraft
	}
	return inv
}

func mergeContact(dst *entity.ContactInfo, patch *dto.ContactPatch) *entity.ContactInfo {
	if dst == nil {
		dst = &entity.ContactInfo{}
	}
	if patch.Name != nil {
		dst.Name = *patch.Name
	}
	if patch.Phone != nil {
		dst.Phone = *patch.Phone
	}
	if patch.Email != nil {
		dst.Email = *patch.Email
	}
	return dst
}

func setIf(dst *string, v *string) {
	if v != nil {
		*dst = *v
	}
}
