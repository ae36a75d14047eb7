package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Tienda-pos/internal/application/auth"
	"github.com/jhoicas/Tienda-pos/internal/application/catalog"
	"github.com/jhoicas/Tienda-pos/internal/application/reports"
	"github.com/jhoicas/Tienda-pos/internal/application/sales"
	"github.com/jhoicas/Tienda-pos/internal/application/settings"
	"github.com/jhoicas/Tienda-pos/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC     *auth.AuthUseCase
	CatalogUC  *catalog.CatalogUseCase
	SaleUC     *sales.SaleUseCase
	ReportUC   *reports.ReportUseCase
	SettingsUC *settings.SettingsUseCase
	JWTSecret  string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (login público, logout protegido)
	authHandler := NewAuthHandler(deps.AuthUC)
	api.Post("/auth/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))
	protected.Post("/auth/logout", authHandler.Logout)

	// Products (protegido)
	products := protected.Group("/products")
	productHandler := NewProductHandler(deps.CatalogUC)
	products.Post("/", productHandler.Create)
	products.Get("/", productHandler.List)
	products.Get("/alerts", productHandler.Alerts)
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id", productHandler.Update)
	products.Delete("/:id", productHandler.Delete)

	// Sales (protegido)
	salesGroup := protected.Group("/sales")
	saleHandler := NewSaleHandler(deps.SaleUC)
	salesGroup.Get("/quote", saleHandler.Quote)
	salesGroup.Post("/", saleHandler.Create)

	// Reports (protegido)
	reportsGroup := protected.Group("/reports")
	reportHandler := NewReportHandler(deps.ReportUC)
	reportsGroup.Get("/sales", reportHandler.History)
	reportsGroup.Get("/sales/pdf", reportHandler.ExportPDF)
	reportsGroup.Get("/totals", reportHandler.Totals)

	// Settings (lectura para todos; escritura solo admin)
	settingsGroup := protected.Group("/settings")
	settingsHandler := NewSettingsHandler(deps.SettingsUC)
	settingsGroup.Get("/exchange-rate", settingsHandler.GetExchangeRate)
	settingsGroup.Put("/exchange-rate", RequireRole(entity.RoleAdmin), settingsHandler.UpdateExchangeRate)
}
