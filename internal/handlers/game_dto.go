package handlers

import (
	"github.com/gorilla/schema"

	"github.com/vancomm/minesweeper-agent/internal/knowledge"
	"github.com/vancomm/minesweeper-agent/internal/repository"
)

type CreateGameDTO struct {
	Height    int     `schema:"height,required"`
	Width     int     `schema:"width,required"`
	MineCount int     `schema:"mine_count,required"`
	Seed      *uint64 `schema:"seed"`
}

func ParseCreateGameDTO(src map[string][]string) (CreateGameDTO, error) {
	var dto CreateGameDTO
	dec := schema.NewDecoder()
	dec.IgnoreUnknownKeys(true)
	err := dec.Decode(&dto, src)
	return dto, err
}

type SessionDTO struct {
	SessionId  string           `json:"session_id"`
	Height     int              `json:"height"`
	Width      int              `json:"width"`
	MineCount  int              `json:"mine_count"`
	Status     string           `json:"status"`
	Moves      int              `json:"moves"`
	Grid       []string         `json:"grid"`
	KnownMines []knowledge.Cell `json:"known_mines"`
	StartedAt  int64            `json:"started_at"`
	EndedAt    *int64           `json:"ended_at,omitempty"`
}

// NewSessionDTO renders a session snapshot. Caller holds the session lock.
func NewSessionDTO(s *repository.Session) *SessionDTO {
	var endedAt *int64
	if s.EndedAt != nil {
		e := s.EndedAt.UnixMilli()
		endedAt = &e
	}
	board := s.Player.Board()
	return &SessionDTO{
		SessionId:  s.ID,
		Height:     board.Height(),
		Width:      board.Width(),
		MineCount:  board.MineCount(),
		Status:     s.Player.Status().String(),
		Moves:      len(s.Player.Moves()),
		Grid:       s.Player.View(),
		KnownMines: s.Player.Engine().KnownMines(),
		StartedAt:  s.StartedAt.UnixMilli(),
		EndedAt:    endedAt,
	}
}

type StepDTO struct {
	Move    *agentMoveDTO `json:"move,omitempty"`
	Session *SessionDTO   `json:"session"`
}

type agentMoveDTO struct {
	Cell  knowledge.Cell `json:"cell"`
	Guess bool           `json:"guess"`
}
