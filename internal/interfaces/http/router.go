package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/viniciushcruz95-cmd/Verde-Oeste-hidrosemeadura/internal/application/state"
)

// RouterDeps dependências para o router.
type RouterDeps struct {
	Ctrl *state.Controller
}

// Router registra as rotas da API.
//
// As rotas literais "/edicao" vêm antes das rotas ":id" do mesmo grupo
// para não serem capturadas pelo parâmetro.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Clientes
	clients := api.Group("/clientes")
	clientHandler := NewClientHandler(deps.Ctrl)
	clients.Get("/", clientHandler.List)
	clients.Post("/", clientHandler.Create)
	clients.Delete("/edicao", clientHandler.CancelEdit)
	clients.Put("/:id", clientHandler.Update)
	clients.Delete("/:id", clientHandler.Delete)
	clients.Post("/:id/edicao", clientHandler.StartEdit)

	// Catálogo de serviços
	services := api.Group("/servicos")
	serviceHandler := NewServiceHandler(deps.Ctrl)
	services.Get("/", serviceHandler.List)
	services.Post("/", serviceHandler.Create)
	services.Delete("/edicao", serviceHandler.CancelEdit)
	services.Put("/:id", serviceHandler.Update)
	services.Delete("/:id", serviceHandler.Delete)
	services.Post("/:id/edicao", serviceHandler.StartEdit)

	// Viáticos
	expenses := api.Group("/viaticos")
	expenseHandler := NewTravelExpenseHandler(deps.Ctrl)
	expenses.Get("/", expenseHandler.List)
	expenses.Post("/", expenseHandler.Create)
	expenses.Delete("/edicao", expenseHandler.CancelEdit)
	expenses.Put("/:id", expenseHandler.Update)
	expenses.Delete("/:id", expenseHandler.Delete)
	expenses.Post("/:id/edicao", expenseHandler.StartEdit)

	// Orçamentos
	quotes := api.Group("/orcamentos")
	quoteHandler := NewQuoteHandler(deps.Ctrl)
	quotes.Get("/", quoteHandler.List)
	quotes.Post("/", quoteHandler.Create)
	quotes.Delete("/edicao", quoteHandler.CancelEdit)
	quotes.Put("/:id", quoteHandler.Update)
	quotes.Delete("/:id", quoteHandler.Delete)
	quotes.Post("/:id/edicao", quoteHandler.StartEdit)
	quotes.Get("/:id/pdf", quoteHandler.PDF)

	// Calculadora de custos (sem persistência)
	estimateHandler := NewEstimateHandler(deps.Ctrl)
	api.Post("/calculadora", estimateHandler.Calculate)

	// Export e dashboard
	exportHandler := NewExportHandler(deps.Ctrl)
	api.Get("/export", exportHandler.Export)

	dashboardHandler := NewDashboardHandler(deps.Ctrl)
	api.Get("/dashboard", dashboardHandler.Summary)
}
