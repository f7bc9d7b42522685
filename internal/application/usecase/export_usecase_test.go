package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/invoice-maker/internal/application/usecase"
	"github.com/jhoicas/invoice-maker/internal/domain"
	"github.com/jhoicas/invoice-maker/internal/domain/entity"
	"github.com/jhoicas/invoice-maker/internal/infrastructure/memory"
	"github.com/jhoicas/invoice-maker/pkg/logger"
)

// stubRenderer renderizador controlable para el caso de uso de exportación.
type stubRenderer struct {
	bytes []byte
	err   error
	delay time.Duration

	gotInvoice *entity.Invoice
	gotTheme   usecase.DocumentTheme
}

func (s *stubRenderer) RenderInvoicePDF(ctx context.Context, inv *entity.Invoice, theme usecase.DocumentTheme) ([]byte, error) {
	s.gotInvoice = inv
	s.gotTheme = theme
	if s.delay > 0 {
		select {
		case <-time.After(s.delay):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	return s.bytes, s.err
}

func newExport(r usecase.InvoicePDFRenderer, theme usecase.DocumentTheme, timeout time.Duration) (*usecase.ExportUseCase, *memory.InvoiceRepo) {
	repo := memory.NewInvoiceRepository()
	uc := usecase.NewExportUseCase(repo, r, theme, timeout, logger.Nop())
	return uc, repo
}

// ── Exportación ───────────────────────────────────────────────────────────────

func TestDownloadInvoicePDF_Exitoso(t *testing.T) {
	stub := &stubRenderer{bytes: []byte("%PDF-1.7 fake")}
	theme := usecase.DocumentTheme{Background: "#ffffff", Text: "#000000"}
	uc, repo := newExport(stub, theme, 0)
	require.NoError(t, repo.Upsert(&entity.Invoice{ID: "inv-1", Number: "INV-001"}))

	pdfBytes, filename, err := uc.DownloadInvoicePDF(context.Background(), "inv-1")

	require.NoError(t, err)
	assert.Equal(t, []byte("%PDF-1.7 fake"), pdfBytes)
	assert.Equal(t, "INV-001.pdf", filename, "el nombre deriva del número de la factura")
	require.NotNil(t, stub.gotInvoice, "el renderizador recibe la factura persistida")
	assert.Equal(t, "INV-001", stub.gotInvoice.Number)
	assert.Equal(t, theme, stub.gotTheme, "el tema configurado llega al renderizador")
}

func TestDownloadInvoicePDF_FacturaInexistente(t *testing.T) {
	uc, _ := newExport(&stubRenderer{}, usecase.DocumentTheme{}, 0)

	_, _, err := uc.DownloadInvoicePDF(context.Background(), "fantasma")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// El fallo del renderizador se envuelve en ErrExportFailed sin salida parcial.
func TestDownloadInvoicePDF_RenderizadoFallido(t *testing.T) {
	stub := &stubRenderer{err: errors.New("fuente no disponible")}
	uc, repo := newExport(stub, usecase.DocumentTheme{}, 0)
	require.NoError(t, repo.Upsert(&entity.Invoice{ID: "inv-1", Number: "INV-001"}))

	pdfBytes, filename, err := uc.DownloadInvoicePDF(context.Background(), "inv-1")

	assert.ErrorIs(t, err, domain.ErrExportFailed)
	assert.Contains(t, err.Error(), "fuente no disponible", "la causa queda en el mensaje")
	assert.Nil(t, pdfBytes, "sin salida parcial")
	assert.Empty(t, filename)
}

// Un renderizador colgado no bloquea al caller: el timeout produce un
// ErrExportFailed definido.
func TestDownloadInvoicePDF_TimeoutDeRenderizado(t *testing.T) {
	stub := &stubRenderer{bytes: []byte("tarde"), delay: 2 * time.Second}
	uc, repo := newExport(stub, usecase.DocumentTheme{}, 20*time.Millisecond)
	require.NoError(t, repo.Upsert(&entity.Invoice{ID: "inv-1", Number: "INV-001"}))

	start := time.Now()
	_, _, err := uc.DownloadInvoicePDF(context.Background(), "inv-1")

	assert.ErrorIs(t, err, domain.ErrExportFailed)
	assert.Less(t, time.Since(start), time.Second, "la espera queda acotada por el timeout")
}

// ── Nombre del archivo ────────────────────────────────────────────────────────

func TestDownloadInvoicePDF_NombreSaneado(t *testing.T) {
	casos := []struct {
		number string
		want   string
	}{
		{"INV-001", "INV-001.pdf"},
		{"INV 001/2026", "INV_001_2026.pdf"},
		{"  factura #9  ", "factura__9.pdf"},
		{"", "invoice.pdf"},
		{"///", "___.pdf"},
	}

	for _, c := range casos {
		stub := &stubRenderer{bytes: []byte("pdf")}
		uc, repo := newExport(stub, usecase.DocumentTheme{}, 0)
		require.NoError(t, repo.Upsert(&entity.Invoice{ID: "inv-1", Number: c.number}))

		_, filename, err := uc.DownloadInvoicePDF(context.Background(), "inv-1")
		require.NoError(t, err)
		assert.Equal(t, c.want, filename, "número %q", c.number)
	}
}
