package tradingRoutes

import (
	tradingController "finsim/controllers/trading"
	"finsim/middleware"
	"finsim/session"
	tradingValidator "finsim/validators/trading"

	"github.com/gofiber/fiber/v2"
)

func SetupTradingRoutes(app *fiber.App, ctrl *tradingController.Controller, sessions session.Store) {
	auth := middleware.SessionAuth(sessions)

	app.Get("/", auth, ctrl.Index)
	app.Get("/quote", auth, ctrl.Quote)
	app.Post("/quote", auth, tradingValidator.Quote(), ctrl.Quote)
	app.Post("/buy", auth, tradingValidator.Trade(), ctrl.Buy)
	app.Get("/sell", auth, ctrl.Holdings)
	app.Post("/sell", auth, tradingValidator.Trade(), ctrl.Sell)
	app.Get("/history", auth, ctrl.History)
}
