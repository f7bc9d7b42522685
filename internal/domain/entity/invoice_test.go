package entity_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/invoice-maker/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Total derivado: para toda factura con ítems I, total = Σ(cantidad_i × precio_i).
// El total nunca se almacena: debe recalcularse desde los ítems en cada lectura.
// ──────────────────────────────────────────────────────────────────────────────

func TestTotal_ListaVacia(t *testing.T) {
	inv := &entity.Invoice{}
	assert.True(t, inv.Total().IsZero(), "el total de una factura sin ítems debe ser 0")
}

func TestTotal_UnItem(t *testing.T) {
	inv := &entity.Invoice{
		Items: []entity.InvoiceItem{
			{ID: "a", Description: "Consulting", Quantity: decimal.NewFromInt(3), Price: decimal.NewFromInt(150)},
		},
	}
	assert.True(t, inv.Total().Equal(decimal.NewFromInt(450)), "3 × 150 debe dar 450")
}

func TestTotal_DosItemsConDecimales(t *testing.T) {
	inv := &entity.Invoice{
		Currency:         "$",
		CurrencyPosition: entity.CurrencyBefore,
		Items: []entity.InvoiceItem{
			{ID: "a", Quantity: decimal.NewFromInt(2), Price: decimal.RequireFromString("10.5")},
			{ID: "b", Quantity: decimal.NewFromInt(1), Price: decimal.NewFromInt(5)},
		},
	}
	total := inv.Total()
	assert.True(t, total.Equal(decimal.NewFromInt(26)), "2×10.5 + 1×5 debe dar 26")
	assert.Equal(t, "$26.00", inv.FormatAmount(total), "el total se formatea con dos decimales")
}

// Cantidades fraccionarias o negativas no se validan: el total simplemente
// refleja la aritmética.
func TestTotal_CantidadesNegativas(t *testing.T) {
	inv := &entity.Invoice{
		Items: []entity.InvoiceItem{
			{ID: "a", Quantity: decimal.NewFromInt(-2), Price: decimal.NewFromInt(10)},
			{ID: "b", Quantity: decimal.RequireFromString("0.5"), Price: decimal.NewFromInt(8)},
		},
	}
	assert.True(t, inv.Total().Equal(decimal.NewFromInt(-16)), "-2×10 + 0.5×8 debe dar -16")
}

// ── Formato de moneda ─────────────────────────────────────────────────────────

func TestFormatAmount_SimboloDespues(t *testing.T) {
	inv := &entity.Invoice{Currency: "€", CurrencyPosition: entity.CurrencyAfter}
	assert.Equal(t, "99.90€", inv.FormatAmount(decimal.RequireFromString("99.9")))
}

func TestFormatAmount_SimboloAntesPorDefecto(t *testing.T) {
	inv := &entity.Invoice{Currency: "$"}
	assert.Equal(t, "$7.00", inv.FormatAmount(decimal.NewFromInt(7)),
		"sin posición explícita el símbolo va antes del monto")
}

// ── Clone ─────────────────────────────────────────────────────────────────────

// TestClone_CopiaProfunda verifica que mutar el clon no afecta la factura
// original: el clon es la base de "guardar como nueva".
func TestClone_CopiaProfunda(t *testing.T) {
	original := &entity.Invoice{
		ID:             "inv-1",
		Number:         "INV-100",
		CompanyContact: &entity.ContactInfo{Name: "Ana", Email: "ana@acme.io"},
		Items: []entity.InvoiceItem{
			{ID: "a", Description: "Consulting", Quantity: decimal.NewFromInt(3), Price: decimal.NewFromInt(150)},
		},
		PaymentMethods: []entity.PaymentMethod{{ID: "p", Label: "Bank", Details: "IBAN ..."}},
	}

	clone := original.Clone()
	require.NotSame(t, original, clone)

	clone.Number = "INV-100 (Copy)"
	clone.CompanyContact.Name = "Luis"
	clone.Items[0].Description = "Other"
	clone.PaymentMethods[0].Label = "Cash"

	assert.Equal(t, "INV-100", original.Number, "el número original no debe cambiar")
	assert.Equal(t, "Ana", original.CompanyContact.Name, "el contacto original no debe cambiar")
	assert.Equal(t, "Consulting", original.Items[0].Description, "los ítems originales no deben cambiar")
	assert.Equal(t, "Bank", original.PaymentMethods[0].Label, "los métodos de pago originales no deben cambiar")
}
