package rest

import (
	"log/slog"

	"github.com/chasselife/xpnse/internal/category"
	"github.com/chasselife/xpnse/internal/dashboard"
	"github.com/chasselife/xpnse/internal/expense"
	"github.com/chasselife/xpnse/internal/item"
	"github.com/chasselife/xpnse/internal/storage"
	"github.com/chasselife/xpnse/internal/transport/middleware"
	"github.com/go-chi/chi"
)

// RegisterAllRoutes mounts the collaborator surface. Path segments follow
// the expense → category → item ownership chain, with aggregation endpoints
// alongside each scope.
func RegisterAllRoutes(router *chi.Mux, db *storage.DB, expenseHandler *expense.Handler, categoryHandler *category.Handler, itemHandler *item.Handler, dashboardHandler *dashboard.Handler, logger *slog.Logger) {
	healthHandler := NewHealthHandler(db)

	// Apply global middleware
	router.Use(middleware.RequestID)
	router.Use(middleware.LoggingMiddleware(logger))
	router.Use(middleware.RecoveryMiddleware(logger))

	router.Route("/api/v1", func(r chi.Router) {
		// Health check routes
		r.Get("/health", healthHandler.healthCheckHandler)
		r.Get("/ping", healthHandler.pingHandler)

		r.Get("/dashboard", dashboardHandler.GetDashboard)

		r.Route("/expenses", func(er chi.Router) {
			er.Post("/", expenseHandler.CreateExpense)
			er.Get("/", expenseHandler.ListExpenses)
			er.Get("/{id}", expenseHandler.GetExpense)
			er.Patch("/{id}", expenseHandler.UpdateExpense)
			er.Delete("/{id}", expenseHandler.DeleteExpense)

			er.Get("/{id}/categories", categoryHandler.ListByExpense)
			er.Get("/{id}/total", itemHandler.ExpenseTotal)
			er.Get("/{id}/date-range", itemHandler.ExpenseDateRange)
		})

		r.Route("/categories", func(cr chi.Router) {
			cr.Post("/", categoryHandler.CreateCategory)
			cr.Get("/", categoryHandler.ListCategories)
			cr.Get("/{id}", categoryHandler.GetCategory)
			cr.Patch("/{id}", categoryHandler.UpdateCategory)
			cr.Delete("/{id}", categoryHandler.DeleteCategory)

			cr.Get("/{id}/items", itemHandler.ListByCategory)
			cr.Get("/{id}/total", itemHandler.CategoryTotal)
			cr.Get("/{id}/date-range", itemHandler.CategoryDateRange)
		})

		r.Route("/items", func(ir chi.Router) {
			ir.Post("/", itemHandler.CreateItem)
			ir.Get("/", itemHandler.ListItems)
			ir.Get("/{id}", itemHandler.GetItem)
			ir.Patch("/{id}", itemHandler.UpdateItem)
			ir.Delete("/{id}", itemHandler.DeleteItem)
		})
	})
}
