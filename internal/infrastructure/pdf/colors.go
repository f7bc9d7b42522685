package pdf

import (
	"strconv"
	"strings"

	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/jhoicas/invoice-maker/internal/application/usecase"
)

// Shim de compatibilidad de colores: el tema del documento llega como strings
// CSS y el rasterizador solo entiende RGB. Los valores expresados en espacios
// de color no soportados (lab, oklch, oklab, lch) o que no parsean caen, según
// su rol, a colores seguros:
//
//	fondo  → blanco opaco
//	borde  → gris neutro (#e5e7eb)
//	texto  → negro
//
// Los efectos de sombra y filtro del tema se descartan siempre: el ensamblado
// PDF no puede reproducirlos fielmente y corromperían la salida.

var (
	fallbackBackground = &props.Color{Red: 255, Green: 255, Blue: 255}
	fallbackBorder     = &props.Color{Red: 229, Green: 231, Blue: 235}
	fallbackText       = &props.Color{Red: 0, Green: 0, Blue: 0}
)

// palette colores ya normalizados, listos para maroto.
type palette struct {
	Background *props.Color
	Border     *props.Color
	Text       *props.Color
	Accent     *props.Color
}

// normalizeTheme aplica el shim al tema completo. Shadow y Filter no se
// trasladan a la paleta.
func normalizeTheme(theme usecase.DocumentTheme) palette {
	return palette{
		Background: normalizeColor(theme.Background, fallbackBackground),
		Border:     normalizeColor(theme.Border, fallbackBorder),
		Text:       normalizeColor(theme.Text, fallbackText),
		Accent:     normalizeColor(theme.Accent, fallbackText),
	}
}

// normalizeColor parsea un color CSS (#rgb, #rrggbb, rgb(...), rgba(...)) y
// devuelve el fallback del rol ante cualquier valor no soportado.
func normalizeColor(value string, fallback *props.Color) *props.Color {
	s := strings.ToLower(strings.TrimSpace(value))
	if s == "" || usesUnsupportedColorSpace(s) {
		return fallback
	}
	if c, ok := parseHex(s); ok {
		return c
	}
	if c, ok := parseRGBFunc(s); ok {
		return c
	}
	return fallback
}

// usesUnsupportedColorSpace detecta las funciones de color CSS modernas que
// el rasterizador no sabe interpretar.
func usesUnsupportedColorSpace(s string) bool {
	for _, fn := range []string{"lab(", "oklch(", "oklab(", "lch("} {
		if strings.Contains(s, fn) {
			return true
		}
	}
	return false
}

func parseHex(s string) (*props.Color, bool) {
	if !strings.HasPrefix(s, "#") {
		return nil, false
	}
	hex := s[1:]
	switch len(hex) {
	case 3:
		// #abc → #aabbcc
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	case 6:
	default:
		return nil, false
	}
	n, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return nil, false
	}
	return &props.Color{
		Red:   int(n >> 16 & 0xff),
		Green: int(n >> 8 & 0xff),
		Blue:  int(n & 0xff),
	}, true
}

func parseRGBFunc(s string) (*props.Color, bool) {
	if !strings.HasPrefix(s, "rgb(") && !strings.HasPrefix(s, "rgba(") {
		return nil, false
	}
	start := strings.IndexByte(s, '(')
	end := strings.IndexByte(s, ')')
	if end < start {
		return nil, false
	}
	parts := strings.Split(s[start+1:end], ",")
	if len(parts) < 3 {
		return nil, false
	}
	var channels [3]int
	for i := 0; i < 3; i++ {
		n, err := strconv.Atoi(strings.TrimSpace(parts[i]))
		if err != nil || n < 0 || n > 255 {
			return nil, false
		}
		channels[i] = n
	}
	return &props.Color{Red: channels[0], Green: channels[1], Blue: channels[2]}, true
}
