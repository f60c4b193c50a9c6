package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Documentos-api/internal/application/billing"
	"github.com/jhoicas/Documentos-api/pkg/jwt"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	PricingUC          *billing.PricingUseCase
	DocumentUC         *billing.DocumentUseCase
	PDFUC              *billing.PDFUseCase
	JWTSecret          string
	DefaultPricingMode string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	documents := protected.Group("/documents")
	documentHandler := NewDocumentHandler(deps.PricingUC, deps.DocumentUC, deps.PDFUC, deps.DefaultPricingMode)
	documents.Post("/preview", documentHandler.Preview)
	documents.Post("/", RequireRole(jwt.RoleAdmin, jwt.RoleVendedor), documentHandler.Create)
	documents.Get("/:id", documentHandler.GetByID)
	documents.Get("/:id/pdf", documentHandler.PDF)
}
