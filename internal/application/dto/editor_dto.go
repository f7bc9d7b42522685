package dto

// ContactPatch actualización parcial de un contacto: los campos presentes se
// mezclan en el sub-registro existente, los demás se conservan.
type ContactPatch struct {
	Name  *string `json:"name,omitempty"`
	Phone *string `json:"phone,omitempty"`
	Email *string `json:"email,omitempty"`
}

// EditorFieldsRequest body de PATCH /api/editor. Solo los campos presentes
// se aplican sobre la sesión de edición.
type EditorFieldsRequest struct {
	Number  *string `json:"number,omitempty"`
	Date    *string `json:"date,omitempty"`
	DueDate *string `json:"dueDate,omitempty"`

	CompanyName    *string       `json:"companyName,omitempty"`
	CompanyAddress *string       `json:"companyAddress,omitempty"`
	CompanyWebsite *string       `json:"companyWebsite,omitempty"`
	CompanyContact *ContactPatch `json:"companyContact,omitempty"`

	ClientName    *string       `json:"clientName,omitempty"`
	ClientAddress *string       `json:"clientAddress,omitempty"`
	ClientContact *ContactPatch `json:"clientContact,omitempty"`

	Currency         *string `json:"currency,omitempty"`
	CurrencyPosition *string `json:"currencyPosition,omitempty"`
	Status           *string `json:"status,omitempty"`
}

// ItemPatch actualización parcial de una línea (por índice).
type ItemPatch struct {
	Description *string `json:"description,omitempty"`
	Quantity    *Amount `json:"quantity,omitempty"`
	Price       *Amount `json:"price,omitempty"`
}

// PaymentMethodPatch actualización parcial de un método de pago (por índice).
type PaymentMethodPatch struct {
	Label   *string `json:"label,omitempty"`
	Details *string `json:"details,omitempty"`
}

// InitializeEditorRequest body de POST /api/editor. Con SeedID la sesión se
// carga desde la colección; sin él arranca una factura nueva con defaults.
type InitializeEditorRequest struct {
	SeedID string `json:"seedId,omitempty"`
}
