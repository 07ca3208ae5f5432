package router

import (
	audithandler "ticketing-service/internal/module/audit/handler"
	authhandler "ticketing-service/internal/module/auth/handler"
	financehandler "ticketing-service/internal/module/finance/handler"
	tickethandler "ticketing-service/internal/module/ticket/handler"
	"ticketing-service/internal/pkg/middleware"

	"github.com/gofiber/fiber/v2"
)

func Initialize(
	app *fiber.App,
	ticketHandler *tickethandler.TicketHandler,
	financeHandler *financehandler.FinanceHandler,
	authHandler *authhandler.AuthHandler,
	auditHandler *audithandler.AuditHandler,
	m *middleware.Middleware,
) *fiber.App {

	// health check
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusOK).SendString("OK")
	})

	Api := app.Group("/api")
	v1 := Api.Group("/v1")

	// public routes
	v1.Post("/login", authHandler.Login)
	v1.Get("/guest/tickets/:id", ticketHandler.GetGuestTicket)

	// admin routes
	v1.Post("/logout", m.RequireSession, authHandler.Logout)

	v1.Get("/tickets", m.RequireSession, ticketHandler.ShowTickets)
	v1.Post("/tickets", m.RequireSession, ticketHandler.CreateTicket)
	v1.Get("/tickets/:id", m.RequireSession, ticketHandler.GetTicket)
	v1.Put("/tickets/:id", m.RequireSession, ticketHandler.UpdateTicket)
	v1.Put("/tickets/:id/checkin", m.RequireSession, ticketHandler.CheckIn)
	v1.Put("/tickets/:id/checkout", m.RequireSession, ticketHandler.CheckOut)
	v1.Delete("/tickets/:id", m.RequireSession, ticketHandler.DeleteTicket)

	v1.Get("/expenses", m.RequireSession, financeHandler.ShowExpenses)
	v1.Post("/expenses", m.RequireSession, financeHandler.CreateExpense)
	v1.Put("/expenses/:id", m.RequireSession, financeHandler.UpdateExpense)
	v1.Delete("/expenses/:id", m.RequireSession, financeHandler.DeleteExpense)

	v1.Get("/sponsorships", m.RequireSession, financeHandler.ShowSponsorships)
	v1.Post("/sponsorships", m.RequireSession, financeHandler.CreateSponsorship)
	v1.Put("/sponsorships/:id", m.RequireSession, financeHandler.UpdateSponsorship)
	v1.Delete("/sponsorships/:id", m.RequireSession, financeHandler.DeleteSponsorship)

	v1.Get("/financial-summary", m.RequireSession, financeHandler.GetSummary)
	v1.Get("/export/:type", m.RequireSession, financeHandler.Export)
	v1.Get("/audit-events", m.RequireSession, auditHandler.ShowEvents)

	return app
}
