package router

import (
	"github.com/gofiber/fiber/v2"

	handlers "github.com/jeffrey-cordero/capital/internal/http"
)

type Router struct {
	TransactionsHandler *handlers.TransactionsHandler
	AuthMW              fiber.Handler
}

// RegisterRoutes wires the transaction endpoints. Every route sits
// behind the auth middleware; the write paths additionally carry the
// per-user rate limit.
func (r *Router) RegisterRoutes(app *fiber.App) {
	if r.TransactionsHandler == nil {
		return
	}

	writeLimit := RateLimitWrite()

	app.Get("/api/transactions", r.AuthMW, r.TransactionsHandler.List)
	app.Post("/api/transactions", r.AuthMW, writeLimit, r.TransactionsHandler.Create)
	app.Patch("/api/transactions/:id", r.AuthMW, writeLimit, r.TransactionsHandler.Update)
	app.Delete("/api/transactions", r.AuthMW, writeLimit, r.TransactionsHandler.DeleteBatch)
}
