package handlers

import (
	"errors"
	"fmt"
	"hash/maphash"
	"log/slog"
	"math/rand/v2"
	"net/http"

	"github.com/vancomm/minesweeper-agent/internal/agent"
	"github.com/vancomm/minesweeper-agent/internal/config"
	"github.com/vancomm/minesweeper-agent/internal/game"
	"github.com/vancomm/minesweeper-agent/internal/repository"
)

type GameHandler struct {
	logger   *slog.Logger
	sessions *repository.Sessions
	ws       *config.WebSocket
}

func NewGameHandler(
	logger *slog.Logger,
	sessions *repository.Sessions,
	ws *config.WebSocket,
) *GameHandler {
	return &GameHandler{
		logger:   logger,
		sessions: sessions,
		ws:       ws,
	}
}

func (g GameHandler) NewGame(w http.ResponseWriter, r *http.Request) {
	dto, err := ParseCreateGameDTO(r.URL.Query())
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		sendJSONOrLog(w, g.logger, wrapError(err))
		return
	}

	rnd := newSessionRand(dto.Seed)

	board, err := game.NewBoard(dto.Height, dto.Width, dto.MineCount, rnd)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		sendJSONOrLog(w, g.logger, wrapError(err))
		return
	}

	session := g.sessions.Create(agent.NewPlayer(board, rnd))
	g.logger.Debug("created session",
		"id", session.ID,
		"height", dto.Height,
		"width", dto.Width,
		"mineCount", dto.MineCount,
	)

	session.Lock()
	defer session.Unlock()
	sendJSONOrLog(w, g.logger, NewSessionDTO(session))
}

func (g GameHandler) Fetch(w http.ResponseWriter, r *http.Request) {
	session, err := g.sessions.Get(r.PathValue("id"))
	if errors.Is(err, repository.ErrNotFound) {
		w.WriteHeader(http.StatusNotFound)
		return
	}
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		g.logger.Error("unable to fetch session", "error", err)
		return
	}

	session.Lock()
	defer session.Unlock()
	sendJSONOrLog(w, g.logger, NewSessionDTO(session))
}

// Step has the agent make a single move.
func (g GameHandler) Step(w http.ResponseWriter, r *http.Request) {
	session, err := g.sessions.Get(r.PathValue("id"))
	if errors.Is(err, repository.ErrNotFound) {
		w.WriteHeader(http.StatusNotFound)
		return
	}
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		g.logger.Error("unable to fetch session", "error", err)
		return
	}

	session.Lock()
	defer session.Unlock()

	if session.Player.Status() != agent.Playing {
		w.WriteHeader(http.StatusConflict)
		sendJSONOrLog(w, g.logger, wrapError(fmt.Errorf(
			"game is over: %s", session.Player.Status(),
		)))
		return
	}

	move, status := session.Player.Step()
	if status != agent.Playing {
		session.Finish()
	}

	sendJSONOrLog(w, g.logger, &StepDTO{
		Move:    &agentMoveDTO{Cell: move.Cell, Guess: move.Guess},
		Session: NewSessionDTO(session),
	})
}

// Autoplay has the agent play the game out to completion.
func (g GameHandler) Autoplay(w http.ResponseWriter, r *http.Request) {
	session, err := g.sessions.Get(r.PathValue("id"))
	if errors.Is(err, repository.ErrNotFound) {
		w.WriteHeader(http.StatusNotFound)
		return
	}
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		g.logger.Error("unable to fetch session", "error", err)
		return
	}

	session.Lock()
	defer session.Unlock()

	session.Player.Play()
	session.Finish()

	sendJSONOrLog(w, g.logger, NewSessionDTO(session))
}

// newSessionRand seeds a per-session generator; sessions never share one.
func newSessionRand(seed *uint64) *rand.Rand {
	if seed != nil {
		return rand.New(rand.NewPCG(*seed, *seed))
	}
	return rand.New(rand.NewPCG(
		new(maphash.Hash).Sum64(), new(maphash.Hash).Sum64(),
	))
}
