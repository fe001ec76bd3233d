package app

import (
	"github.com/vancomm/minesweeper-agent/internal/handlers"
)

func (a *App) loadRoutes() {
	game := handlers.NewGameHandler(a.logger, a.sessions, a.ws)

	a.router.HandleFunc("POST /game", game.NewGame)
	a.router.HandleFunc("GET /game/{id}", game.Fetch)
	a.router.HandleFunc("POST /game/{id}/step", game.Step)
	a.router.HandleFunc("POST /game/{id}/autoplay", game.Autoplay)
	a.router.HandleFunc("/game/{id}/connect", game.ConnectWS)
}
