package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Lotes-api/internal/application/auth"
	"github.com/jhoicas/Lotes-api/internal/application/usecase"
	"github.com/jhoicas/Lotes-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	ClientUC     *usecase.ClientUseCase
	ProductUC    *usecase.ProductUseCase
	LotUC        *usecase.LotUseCase
	ExpenseUC    *usecase.ExpenseUseCase
	LotExpenseUC *usecase.LotExpenseUseCase
	SaleUC       *usecase.SaleUseCase
	AuthUC       *auth.AuthUseCase
	Reports      ReportFacade
	Page         PageConfig
	JWTSecret    string
}

// Router registra las rutas de la API.
// Las rutas /report/* van antes que las paramétricas (/:id, /:type/:term) porque Fiber
// resuelve en orden de registro.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token); escrituras solo admin
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))
	admin := RequireRole(entity.RoleAdmin)
	reports := NewReportHandler(deps.Reports)

	// Clients
	clients := protected.Group("/clients")
	clientHandler := NewClientHandler(deps.ClientUC, deps.Page)
	clients.Post("/", admin, clientHandler.Create)
	clients.Get("/", clientHandler.List)
	clients.Get("/report/new", reports.NewClients)
	clients.Get("/search/:term", clientHandler.Search)
	clients.Get("/:term", clientHandler.Get)
	clients.Patch("/:id", admin, clientHandler.Update)
	clients.Delete("/:id", admin, clientHandler.Delete)

	// Products
	products := protected.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC, deps.Page)
	products.Post("/", admin, productHandler.Create)
	products.Get("/", productHandler.List)
	products.Get("/search/:term", productHandler.Search)
	products.Get("/:term", productHandler.Get)
	products.Patch("/:id", admin, productHandler.Update)
	products.Delete("/:id", admin, productHandler.Delete)

	// Lots
	lots := protected.Group("/lots")
	lotHandler := NewLotHandler(deps.LotUC, deps.Page)
	lots.Post("/", admin, lotHandler.Create)
	lots.Get("/", lotHandler.List)
	lots.Get("/report/expenses-proceeds", reports.LotProfitability)
	lots.Get("/report/expenses-proceeds/pdf", reports.LotProfitabilityPDF)
	lots.Get("/report/production", reports.Production)
	lots.Get("/report/cost/:id", reports.LotCost)
	lots.Get("/:id", lotHandler.GetByID)
	lots.Get("/:type/:term", lotHandler.Search)
	lots.Patch("/:id", admin, lotHandler.Update)
	lots.Delete("/:id", admin, lotHandler.Delete)

	// Expenses
	expenses := protected.Group("/expenses")
	expenseHandler := NewExpenseHandler(deps.ExpenseUC, deps.Page)
	expenses.Post("/", admin, expenseHandler.Create)
	expenses.Get("/", expenseHandler.List)
	expenses.Get("/report/admin", reports.AdminExpenses)
	expenses.Get("/report/advertising", reports.AdvertisingExpenses)
	expenses.Get("/report/other", reports.OtherExpenses)
	expenses.Get("/report/operational", reports.OperationalExpenses)
	expenses.Get("/type/:term", expenseHandler.SearchByType)
	expenses.Get("/:id", expenseHandler.GetByID)
	expenses.Patch("/:id", admin, expenseHandler.Update)
	expenses.Delete("/:id", admin, expenseHandler.Delete)

	// Expenses per lot
	perLot := protected.Group("/expenses-per-lot")
	lotExpenseHandler := NewLotExpenseHandler(deps.LotExpenseUC, deps.Page)
	perLot.Post("/", admin, lotExpenseHandler.Create)
	perLot.Get("/", lotExpenseHandler.List)
	perLot.Get("/:id", lotExpenseHandler.GetByID)
	perLot.Patch("/:id", admin, lotExpenseHandler.Update)
	perLot.Delete("/:id", admin, lotExpenseHandler.Delete)

	// Sales
	sales := protected.Group("/sales")
	saleHandler := NewSaleHandler(deps.SaleUC, deps.Page)
	sales.Post("/", admin, saleHandler.Create)
	sales.Get("/", saleHandler.List)
	sales.Get("/report", reports.SaleCount)
	sales.Get("/report/proceeds", reports.Proceeds)
	sales.Get("/report/abstract/proceeds/expenses", reports.ProceedsVsExpenses)
	sales.Get("/report/abstract/proceeds/expenses/pdf", reports.ProceedsVsExpensesPDF)
	sales.Get("/:id", saleHandler.GetByID)
	sales.Get("/:type/:term", saleHandler.Search)
	sales.Patch("/:id", admin, saleHandler.Update)
	sales.Delete("/:id", admin, saleHandler.Delete)
}
