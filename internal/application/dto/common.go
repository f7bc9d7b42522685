package dto

import (
	"bytes"
	"strconv"

	"github.com/shopspring/decimal"
)

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// MessageResponse confirmación simple.
type MessageResponse struct {
	Message string `json:"message"`
}

// Amount monto numérico que entra por el borde HTTP. Acepta números JSON,
// strings numéricos ("3", "10.5") o cualquier otra cosa; la entrada que no
// parsea se normaliza a cero. Es la única regla de coerción numérica del
// sistema y nunca produce error.
type Amount struct {
	decimal.Decimal
}

// NewAmount construye un Amount a partir de un decimal.
func NewAmount(d decimal.Decimal) Amount {
	return Amount{Decimal: d}
}

// UnmarshalJSON implementa la coerción con fallback a cero.
func (a *Amount) UnmarshalJSON(data []byte) error {
	s := string(bytes.Trim(bytes.TrimSpace(data), `"`))
	if s == "" || s == "null" {
		a.Decimal = decimal.Zero
		return nil
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		// ¿float con notación rara? último intento antes de caer a cero
		if f, ferr := strconv.ParseFloat(s, 64); ferr == nil {
			a.Decimal = decimal.NewFromFloat(f)
			return nil
		}
		a.Decimal = decimal.Zero
		return nil
	}
	a.Decimal = d
	return nil
}
