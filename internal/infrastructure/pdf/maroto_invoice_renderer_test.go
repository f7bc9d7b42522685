package pdf

import (
	"bytes"
	"context"
	"encoding/base64"
	"testing"

	"github.com/johnfercher/maroto/v2/pkg/consts/extension"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/invoice-maker/internal/application/usecase"
	"github.com/jhoicas/invoice-maker/internal/domain/entity"
)

// ── decodeLogo ────────────────────────────────────────────────────────────────

func TestDecodeLogo_PNGValido(t *testing.T) {
	payload := []byte{0x89, 'P', 'N', 'G'}
	dataURL := "data:image/png;base64," + base64.StdEncoding.EncodeToString(payload)

	raw, ext, ok := decodeLogo(dataURL)
	require.True(t, ok)
	assert.Equal(t, extension.Png, ext)
	assert.Equal(t, payload, raw)
}

func TestDecodeLogo_SeOmiteEnSilencio(t *testing.T) {
	casos := []struct {
		nombre  string
		dataURL string
	}{
		{"vacío", ""},
		{"sin prefijo data:", "image/png;base64,QUJD"},
		{"sin marcador base64", "data:image/png,QUJD"},
		{"MIME no soportado", "data:image/gif;base64,QUJD"},
		{"base64 corrupto", "data:image/png;base64,???"},
	}
	for _, c := range casos {
		_, _, ok := decodeLogo(c.dataURL)
		assert.False(t, ok, c.nombre)
	}
}

func TestContactLine_OmiteCamposVacios(t *testing.T) {
	assert.Empty(t, contactLine(nil))
	assert.Empty(t, contactLine(&entity.ContactInfo{}))
	assert.Equal(t, "Ana   |   ana@acme.io",
		contactLine(&entity.ContactInfo{Name: "Ana", Email: "ana@acme.io"}))
}

// ── render completo ───────────────────────────────────────────────────────────

// Smoke test: una factura representativa produce un PDF no vacío aun con un
// tema en espacios de color no soportados.
func TestRenderInvoicePDF_GeneraDocumento(t *testing.T) {
	inv := &entity.Invoice{
		ID:               "inv-1",
		Number:           "INV-001",
		Date:             "2026-08-28",
		CompanyName:      "Acme S.A.S.",
		CompanyContact:   &entity.ContactInfo{Email: "billing@acme.io"},
		ClientName:       "Cliente Uno",
		ClientContact:    &entity.ContactInfo{},
		Currency:         "$",
		CurrencyPosition: entity.CurrencyBefore,
		Status:           entity.StatusDraft,
		Items: []entity.InvoiceItem{
			{ID: "it-1", Description: "Consulting", Quantity: decimal.NewFromInt(3), Price: decimal.NewFromInt(150)},
		},
		PaymentMethods: []entity.PaymentMethod{
			{ID: "pm-1", Label: "Bank transfer", Details: "IBAN XX00 1234"},
		},
	}

	out, err := NewMarotoInvoiceRenderer().RenderInvoicePDF(context.Background(), inv, usecase.DocumentTheme{
		Background: "oklch(0.97 0.01 254)",
		Border:     "#e5e7eb",
		Text:       "#0f172a",
		Accent:     "rgb(0, 70, 127)",
	})

	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF")), "la salida es un documento PDF")
}
