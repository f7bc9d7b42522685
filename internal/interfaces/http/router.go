package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/invoice-maker/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	InvoiceUC *usecase.InvoiceUseCase
	EditorUC  *usecase.EditorUseCase
	ExportUC  *usecase.ExportUseCase
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Colección persistida
	invoices := api.Group("/invoices")
	invoiceHandler := NewInvoiceHandler(deps.InvoiceUC, deps.ExportUC)
	invoices.Get("/", invoiceHandler.List)
	invoices.Post("/", invoiceHandler.Save)
	invoices.Get("/:id", invoiceHandler.GetByID)
	invoices.Delete("/:id", invoiceHandler.Delete)
	invoices.Post("/:id/clone", invoiceHandler.Clone)
	invoices.Get("/:id/pdf", invoiceHandler.DownloadPDF)

	// Sesión de edición (una sola factura activa)
	editor := api.Group("/editor")
	editorHandler := NewEditorHandler(deps.EditorUC)
	editor.Post("/", editorHandler.Initialize)
	editor.Get("/", editorHandler.Current)
	editor.Patch("/", editorHandler.ApplyFields)
	editor.Post("/items", editorHandler.AddItem)
	editor.Patch("/items/:index", editorHandler.UpdateItem)
	editor.Delete("/items/:index", editorHandler.RemoveItem)
	editor.Post("/payment-methods", editorHandler.AddPaymentMethod)
	editor.Patch("/payment-methods/:index", editorHandler.UpdatePaymentMethod)
	editor.Delete("/payment-methods/:index", editorHandler.RemovePaymentMethod)
	editor.Post("/logo", editorHandler.AttachLogo)
	editor.Post("/save", editorHandler.Save)
	editor.Post("/save-as-new", editorHandler.SaveAsNew)
}
