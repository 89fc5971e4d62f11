package routes

import (
	"betsim/controllers/auth"
	"betsim/controllers/bet"
	"betsim/controllers/game"
	"betsim/controllers/prediction"
	"betsim/controllers/user"
	"betsim/middlewares"

	"github.com/gofiber/fiber/v2"
)

func Setup(app *fiber.App) {
	app.Post("/auth/register", auth.Register)
	app.Post("/auth/login", auth.Login)

	app.Get("/games", game.List)
	app.Post("/games", game.Create)

	app.Get("/predictions", prediction.List)
	app.Post("/predictions/generate", prediction.Generate)

	authed := app.Group("/", middlewares.SessionAuth)
	authed.Get("/user", user.Profile)
	authed.Get("/user/stats", user.Stats)
	authed.Get("/bets", bet.List)
	authed.Get("/bets/recent", bet.Recent)
	authed.Post("/bets", bet.Place)
	authed.Post("/games/:id/simulate", game.Simulate)
}
