package entity

import "github.com/shopspring/decimal"

// Estados de una factura. Se registran pero no condicionan ningún comportamiento.
const (
	StatusDraft   = "draft"
	StatusPaid    = "paid"
	StatusPending = "pending"
)

// Posición del símbolo de moneda respecto al monto.
const (
	CurrencyBefore = "before" // $100.00
	CurrencyAfter  = "after"  // 100.00€
)

// ContactInfo sub-registro opcional de contacto (sin identidad propia).
type ContactInfo struct {
	Name  string `json:"name,omitempty"`
	Phone string `json:"phone,omitempty"`
	Email string `json:"email,omitempty"`
}

// InvoiceItem una línea facturable. El subtotal nunca se almacena: siempre
// se deriva de cantidad × precio unitario.
type InvoiceItem struct {
	ID          string          `json:"id"`
	Description string          `json:"description"`
	Quantity    decimal.Decimal `json:"quantity"`
	Price       decimal.Decimal `json:"price"`
}

// Subtotal devuelve cantidad × precio unitario.
func (i InvoiceItem) Subtotal() decimal.Decimal {
	return i.Quantity.Mul(i.Price)
}

// PaymentMethod bloque de texto libre con instrucciones de pago.
type PaymentMethod struct {
	ID      string `json:"id"`
	Label   string `json:"label"`
	Details string `json:"details"`
}

// Invoice documento raíz de facturación. Los tags JSON conservan el layout
// camelCase con el que se persiste la colección.
type Invoice struct {
	ID      string `json:"id"`
	Number  string `json:"number"`
	Date    string `json:"date"` // ISO YYYY-MM-DD
	DueDate string `json:"dueDate"`

	// Emisor
	CompanyName    string       `json:"companyName"`
	CompanyLogo    string       `json:"companyLogo,omitempty"` // data URL
	CompanyAddress string       `json:"companyAddress,omitempty"`
	CompanyWebsite string       `json:"companyWebsite,omitempty"`
	CompanyContact *ContactInfo `json:"companyContact,omitempty"`

	// Receptor
	ClientName    string       `json:"clientName"`
	ClientAddress string       `json:"clientAddress,omitempty"`
	ClientContact *ContactInfo `json:"clientContact,omitempty"`

	Items          []InvoiceItem   `json:"items"`
	PaymentMethods []PaymentMethod `json:"paymentMethods,omitempty"`

	Currency         string `json:"currency"`
	CurrencyPosition string `json:"currencyPosition"` // before | after
	Status           string `json:"status"`           // draft | paid | pending
}

// Total suma cantidad × precio sobre la lista actual de ítems.
// Nunca se persiste: se recalcula en cada lectura. Lista vacía → 0.
func (inv *Invoice) Total() decimal.Decimal {
	total := decimal.Zero
	for _, it := range inv.Items {
		total = total.Add(it.Subtotal())
	}
	return total
}

// FormatAmount formatea un monto con dos decimales y el símbolo de moneda
// en la posición configurada.
func (inv *Invoice) FormatAmount(d decimal.Decimal) string {
	s := d.StringFixed(2)
	if inv.CurrencyPosition == CurrencyAfter {
		return s + inv.Currency
	}
	return inv.Currency + s
}

// Clone devuelve una copia profunda de la factura (ítems, métodos de pago
// y sub-registros de contacto incluidos).
func (inv *Invoice) Clone() *Invoice {
	c := *inv
	if inv.CompanyContact != nil {
		cc := *inv.CompanyContact
		c.CompanyContact = &cc
	}
	if inv.ClientContact != nil {
		cc := *inv.ClientContact
		c.ClientContact = &cc
	}
	if inv.Items != nil {
		c.Items = make([]InvoiceItem, len(inv.Items))
		copy(c.Items, inv.Items)
	}
	if inv.PaymentMethods != nil {
		c.PaymentMethods = make([]PaymentMethod, len(inv.PaymentMethods))
		copy(c.PaymentMethods, inv.PaymentMethods)
	}
	return &c
}
