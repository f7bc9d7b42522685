package pdf

import (
	"testing"

	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/invoice-maker/internal/application/usecase"
)

// ── Espacios de color no soportados ───────────────────────────────────────────

// Los colores en espacios modernos que el rasterizador no entiende caen al
// fallback seguro de su rol, nunca se intenta interpretarlos.
func TestNormalizeTheme_EspaciosNoSoportados(t *testing.T) {
	pal := normalizeTheme(usecase.DocumentTheme{
		Background: "oklch(0.97 0.01 254)",
		Border:     "lab(86% 0 0)",
		Text:       "oklab(0.2 0 0)",
		Accent:     "lch(52% 58 265)",
	})

	assert.Equal(t, fallbackBackground, pal.Background, "fondo no soportado cae a blanco")
	assert.Equal(t, fallbackBorder, pal.Border, "borde no soportado cae a gris neutro")
	assert.Equal(t, fallbackText, pal.Text, "texto no soportado cae a negro")
	assert.Equal(t, fallbackText, pal.Accent)
}

func TestNormalizeColor_ValorBasuraYVacio(t *testing.T) {
	assert.Equal(t, fallbackText, normalizeColor("no-es-un-color", fallbackText))
	assert.Equal(t, fallbackBackground, normalizeColor("", fallbackBackground))
	assert.Equal(t, fallbackBorder, normalizeColor("var(--border)", fallbackBorder))
}

// Shadow y Filter jamás llegan a la paleta.
func TestNormalizeTheme_DescartaSombraYFiltro(t *testing.T) {
	pal := normalizeTheme(usecase.DocumentTheme{
		Background: "#ffffff",
		Shadow:     "0 4px 6px rgba(0,0,0,.1)",
		Filter:     "blur(4px)",
	})
	assert.Equal(t, &props.Color{Red: 255, Green: 255, Blue: 255}, pal.Background)
}

// ── Parseo de valores soportados ──────────────────────────────────────────────

func TestNormalizeColor_Hex(t *testing.T) {
	assert.Equal(t, &props.Color{Red: 229, Green: 231, Blue: 235},
		normalizeColor("#e5e7eb", fallbackText))
	assert.Equal(t, &props.Color{Red: 255, Green: 255, Blue: 255},
		normalizeColor("#FFF", fallbackText), "la forma corta #abc se expande")
	assert.Equal(t, &props.Color{Red: 0, Green: 70, Blue: 127},
		normalizeColor("  #00467f  ", fallbackText), "los espacios alrededor se ignoran")
	assert.Equal(t, fallbackText, normalizeColor("#12345", fallbackText), "largo inválido")
	assert.Equal(t, fallbackText, normalizeColor("#zzzzzz", fallbackText), "dígitos inválidos")
}

func TestNormalizeColor_FuncionRGB(t *testing.T) {
	assert.Equal(t, &props.Color{Red: 15, Green: 23, Blue: 42},
		normalizeColor("rgb(15, 23, 42)", fallbackText))
	assert.Equal(t, &props.Color{Red: 0, Green: 0, Blue: 0},
		normalizeColor("rgba(0,0,0,0.5)", fallbackText), "el canal alfa se ignora")
	assert.Equal(t, fallbackText, normalizeColor("rgb(300, 0, 0)", fallbackText), "canal fuera de 0-255")
	assert.Equal(t, fallbackText, normalizeColor("rgb(1, 2)", fallbackText), "canales insuficientes")
}
