package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jhoicas/invoice-maker/internal/domain"
	"github.com/jhoicas/invoice-maker/internal/domain/entity"
	"github.com/jhoicas/invoice-maker/internal/domain/repository"
	"github.com/jhoicas/invoice-maker/pkg/logger"
)

// DocumentTheme colores del documento exportado, como strings CSS tal cual
// llegan de la configuración. Shadow y Filter se transportan solo para que el
// renderizador los descarte explícitamente antes de dibujar.
type DocumentTheme struct {
	Background string
	Border     string
	Text       string
	Accent     string
	Shadow     string
	Filter     string
}

// InvoicePDFRenderer puerto hacia el ensamblado PDF (colaborador externo).
type InvoicePDFRenderer interface {
	RenderInvoicePDF(ctx context.Context, inv *entity.Invoice, theme DocumentTheme) ([]byte, error)
}

// ExportUseCase exporta una factura persistida a un PDF descargable.
type ExportUseCase struct {
	repo     repository.InvoiceRepository
	renderer InvoicePDFRenderer
	theme    DocumentTheme
	timeout  time.Duration
	log      *logger.Logger
}

// NewExportUseCase construye el caso de uso. timeout acota la espera máxima
// por el renderizado; cero deshabilita el límite.
func NewExportUseCase(
	repo repository.InvoiceRepository,
	renderer InvoicePDFRenderer,
	theme DocumentTheme,
	timeout time.Duration,
	log *logger.Logger,
) *ExportUseCase {
	return &ExportUseCase{repo: repo, renderer: renderer, theme: theme, timeout: timeout, log: log}
}

// DownloadInvoicePDF genera el PDF de la factura indicada y deriva el nombre
// del archivo a partir del número visible.
//
// Retorna:
//   - (pdfBytes, filename, nil)  si todo sale bien.
//   - domain.ErrNotFound         si la factura no existe.
//   - domain.ErrExportFailed     si el renderizado falla o expira el timeout;
//     el error queda registrado y no se produce salida parcial.
func (uc *ExportUseCase) DownloadInvoicePDF(ctx context.Context, id string) ([]byte, string, error) {
	inv, err := uc.repo.Get(id)
	if err != nil {
		return nil, "", fmt.Errorf("export: obtener factura: %w", err)
	}
	if inv == nil {
		return nil, "", domain.ErrNotFound
	}

	if uc.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, uc.timeout)
		defer cancel()
	}

	pdfBytes, err := uc.renderBounded(ctx, inv)
	if err != nil {
		uc.log.Error().Err(err).Str("invoice_id", id).Msg("export: renderizado PDF fallido")
		return nil, "", fmt.Errorf("%w: %v", domain.ErrExportFailed, err)
	}

	return pdfBytes, pdfFilename(inv.Number), nil
}

// renderBounded ejecuta el renderizador y espera acotado por el contexto:
// si el renderizado se cuelga, el caller recibe un fallo definido en lugar
// de una espera sin límite.
func (uc *ExportUseCase) renderBounded(ctx context.Context, inv *entity.Invoice) ([]byte, error) {
	type result struct {
		bytes []byte
		err   error
	}
	done := make(chan result, 1)

	go func() {
		b, err := uc.renderer.RenderInvoicePDF(ctx, inv, uc.theme)
		done <- result{bytes: b, err: err}
	}()

	select {
	case r := <-done:
		return r.bytes, r.err
	case <-ctx.Done():
		return nil, fmt.Errorf("tiempo de espera agotado: %w", ctx.Err())
	}
}

// pdfFilename deriva el nombre del archivo del número de la factura,
// sustituyendo los caracteres problemáticos para un nombre de archivo.
func pdfFilename(number string) string {
	sanitized := strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			return r
		case r == '-' || r == '_' || r == '.':
			return r
		default:
			return '_'
		}
	}, strings.TrimSpace(number))
	if sanitized == "" {
		sanitized = "invoice"
	}
	return sanitized + ".pdf"
}
