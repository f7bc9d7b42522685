// Package memory implementa InvoiceRepository en memoria, para tests y
// ejecuciones efímeras.
package memory

import (
	"sync"

	"github.com/jhoicas/invoice-maker/internal/domain/entity"
	"github.com/jhoicas/invoice-maker/internal/domain/repository"
)

var _ repository.InvoiceRepository = (*InvoiceRepo)(nil)

// InvoiceRepo colección de facturas en memoria. Mismo contrato que la
// implementación de archivo: upsert por ID preservando posición, remove no-op
// si el ID no existe.
type InvoiceRepo struct {
	mu       sync.Mutex
	invoices []*entity.Invoice
}

// NewInvoiceRepository construye el repositorio vacío.
func NewInvoiceRepository() *InvoiceRepo {
	return &InvoiceRepo{}
}

// List devuelve copias de todas las facturas en orden de inserción.
func (r *InvoiceRepo) List() ([]*entity.Invoice, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*entity.Invoice, 0, len(r.invoices))
	for _, inv := range r.invoices {
		out = append(out, inv.Clone())
	}
	return out, nil
}

// Get devuelve la factura con el ID dado, o (nil, nil) si no existe.
func (r *InvoiceRepo) Get(id string) (*entity.Invoice, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, inv := range r.invoices {
		if inv.ID == id {
			return inv.Clone(), nil
		}
	}
	return nil, nil
}

// Upsert reemplaza en su posición la factura con el mismo ID o la agrega al final.
func (r *InvoiceRepo) Upsert(inv *entity.Invoice) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored := inv.Clone()
	for i, existing := range r.invoices {
		if existing.ID == stored.ID {
			r.invoices[i] = stored
			return nil
		}
	}
	r.invoices = append(r.invoices, stored)
	return nil
}

// Remove elimina la factura con el ID dado. No-op si no existe.
func (r *InvoiceRepo) Remove(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, inv := range r.invoices {
		if inv.ID == id {
			r.invoices = append(r.invoices[:i], r.invoices[i+1:]...)
			return nil
		}
	}
	return nil
}
