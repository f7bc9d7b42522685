package repository

import "github.com/jhoicas/invoice-maker/internal/domain/entity"

// InvoiceRepository define el puerto de persistencia para la colección de
// facturas. La colección completa se serializa y persiste de forma síncrona
// tras cada mutación: la escala prevista es la lista local de un solo usuario.
type InvoiceRepository interface {
	// List devuelve todas las facturas en orden de inserción/almacenamiento.
	List() ([]*entity.Invoice, error)
	// Get devuelve la factura con el ID dado, o (nil, nil) si no existe.
	Get(id string) (*entity.Invoice, error)
	// Upsert reemplaza en su posición la factura con el mismo ID, o la
	// agrega al final si no existe. Persiste la colección completa.
	Upsert(inv *entity.Invoice) error
	// Remove elimina la factura con el ID dado. No-op si no existe.
	// Persiste la colección completa.
	Remove(id string) error
}
