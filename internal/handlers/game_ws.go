package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gorilla/websocket"

	"github.com/vancomm/minesweeper-agent/internal/agent"
	"github.com/vancomm/minesweeper-agent/internal/repository"
)

type wsCommand string

const (
	wsGet      wsCommand = "g"
	wsStep     wsCommand = "s"
	wsAutoplay wsCommand = "a"
	wsQuit     wsCommand = "q"
)

// ConnectWS streams the agent's play over a websocket. The client drives it
// with single-letter commands: "g" fetches the current snapshot, "s" makes
// one move, "a" plays the game out (one message per move), "q" hangs up.
func (g GameHandler) ConnectWS(w http.ResponseWriter, r *http.Request) {
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

	conn, err := g.ws.Upgrader.Upgrade(w, r, nil)
	if err != nil {
		g.logger.Error("unable to upgrade connection", "error", err)
		return
	}
	defer conn.Close()

	for {
		_, message, err := conn.ReadMessage()
		if err != nil {
			if !websocket.IsCloseError(err,
				websocket.CloseNormalClosure, websocket.CloseGoingAway,
			) {
				g.logger.Debug("websocket read failed", "error", err)
			}
			return
		}

		switch wsCommand(strings.TrimSpace(string(message))) {
		case wsGet:
			if !g.sendSnapshot(conn, session) {
				return
			}
		case wsStep:
			session.Lock()
			if session.Player.Status() == agent.Playing {
				if _, status := session.Player.Step(); status != agent.Playing {
					session.Finish()
				}
			}
			session.Unlock()
			if !g.sendSnapshot(conn, session) {
				return
			}
		case wsAutoplay:
			for {
				session.Lock()
				done := session.Player.Status() != agent.Playing
				if !done {
					if _, status := session.Player.Step(); status != agent.Playing {
						session.Finish()
					}
				}
				session.Unlock()
				if done {
					break
				}
				if !g.sendSnapshot(conn, session) {
					return
				}
			}
		case wsQuit:
			return
		default:
			if err := conn.WriteJSON(wrapError(
				errors.New("unknown command"),
			)); err != nil {
				return
			}
		}
	}
}

func (g GameHandler) sendSnapshot(
	conn *websocket.Conn, session *repository.Session,
) bool {
	session.Lock()
	dto := NewSessionDTO(session)
	session.Unlock()
	if err := conn.WriteJSON(dto); err != nil {
		g.logger.Debug("websocket write failed", "error", err)
		return false
	}
	return true
}
