// Package jsonfile implementa la persistencia local de la colección de
// facturas en un único archivo JSON. Cada mutación reserializa y reescribe
// la colección completa — O(n) por operación, aceptable para la lista local
// de un solo usuario.
package jsonfile

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/jhoicas/invoice-maker/internal/domain/entity"
	"github.com/jhoicas/invoice-maker/internal/domain/repository"
	"github.com/jhoicas/invoice-maker/pkg/logger"
)

var _ repository.InvoiceRepository = (*InvoiceRepo)(nil)

// schemaVersion versión actual del envelope persistido.
const schemaVersion = 1

// envelope formato en disco: versión de esquema + colección.
type envelope struct {
	Version  int               `json:"version"`
	Invoices []*entity.Invoice `json:"invoices"`
}

// InvoiceRepo implementación de InvoiceRepository respaldada por archivo.
type InvoiceRepo struct {
	mu       sync.Mutex
	path     string
	invoices []*entity.Invoice
	log      *logger.Logger
}

// NewInvoiceRepository carga la colección desde path. Si el archivo no existe,
// la colección arranca vacía. Si el contenido no parsea, se registra el error
// y la colección arranca vacía: el fallo de lectura es recuperable y nunca se
// propaga al caller.
func NewInvoiceRepository(path string, log *logger.Logger) (*InvoiceRepo, error) {
	r := &InvoiceRepo{path: path, log: log}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return r, nil
	}
	if err != nil {
		return nil, fmt.Errorf("jsonfile: leer %s: %w", path, err)
	}

	r.invoices = decodeCollection(data, log)
	return r, nil
}

// decodeCollection acepta el envelope versionado actual y, por compatibilidad,
// el layout original sin versión (un array JSON plano).
func decodeCollection(data []byte, log *logger.Logger) []*entity.Invoice {
	var env envelope
	if err := json.Unmarshal(data, &env); err == nil && env.Version > 0 {
		return env.Invoices
	}

	var bare []*entity.Invoice
	if err := json.Unmarshal(data, &bare); err == nil {
		return bare
	}

	log.Warn().Msg("jsonfile: contenido almacenado inválido, se inicia con colección vacía")
	return nil
}

// List devuelve copias de todas las facturas en orden de almacenamiento.
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

// Upsert reemplaza en su posición la factura con el mismo ID o la agrega al
// final, y persiste la colección completa.
func (r *InvoiceRepo) Upsert(inv *entity.Invoice) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored := inv.Clone()
	replaced := false
	for i, existing := range r.invoices {
		if existing.ID == stored.ID {
			r.invoices[i] = stored
			replaced = true
			break
		}
	}
	if !replaced {
		r.invoices = append(r.invoices, stored)
	}
	return r.persist()
}

// Remove elimina la factura con el ID dado y persiste. No-op si no existe.
func (r *InvoiceRepo) Remove(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, inv := range r.invoices {
		if inv.ID == id {
			r.invoices = append(r.invoices[:i], r.invoices[i+1:]...)
			return r.persist()
		}
	}
	return nil
}

// persist serializa la colección completa y la escribe de forma atómica
// (archivo temporal + rename). Requiere r.mu tomado.
func (r *InvoiceRepo) persist() error {
	env := envelope{Version: schemaVersion, Invoices: r.invoices}
	if env.Invoices == nil {
		env.Invoices = []*entity.Invoice{}
	}
	data, err := json.MarshalIndent(env, "", "  ")
	if err != nil {
		return fmt.Errorf("jsonfile: serializar colección: %w", err)
	}

	if dir := filepath.Dir(r.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("jsonfile: crear directorio %s: %w", dir, err)
		}
	}

	tmp := r.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("jsonfile: escribir %s: %w", tmp, err)
	}
	if err := os.Rename(tmp, r.path); err != nil {
		return fmt.Errorf("jsonfile: renombrar %s: %w", tmp, err)
	}
	return nil
}
