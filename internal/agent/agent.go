package agent

import (
	"math/rand/v2"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/vancomm/minesweeper-agent/internal/game"
	"github.com/vancomm/minesweeper-agent/internal/knowledge"
)

var log *logrus.Logger

func init() {
	log = logrus.New()
}

// Logger exposes the package logger so a host binary can adjust its level
// and output.
func Logger() *logrus.Logger {
	return log
}

type Status int8

const (
	Playing Status = iota
	Won
	Lost
	Stalled
)

func (s Status) String() string {
	switch s {
	case Playing:
		return "playing"
	case Won:
		return "won"
	case Lost:
		return "lost"
	case Stalled:
		return "stalled"
	default:
		return "invalid"
	}
}

// Move is one decision the player made. Guess is false when the engine had
// proven the cell safe beforehand.
type Move struct {
	Cell  knowledge.Cell `json:"cell"`
	Guess bool           `json:"guess"`
}

// Player couples a board with a knowledge engine and plays the game move by
// move: a proven-safe cell when one exists, a random unexplored cell
// otherwise. Not safe for concurrent use; a concurrent host must hold one
// lock per player.
type Player struct {
	board    *game.Board
	engine   *knowledge.Engine
	rnd      *rand.Rand
	status   Status
	moves    []Move
	observed map[knowledge.Cell]int
}

func NewPlayer(board *game.Board, rnd *rand.Rand) *Player {
	return &Player{
		board:    board,
		engine:   knowledge.NewEngine(board.Height(), board.Width()),
		rnd:      rnd,
		observed: make(map[knowledge.Cell]int),
	}
}

func (p *Player) Board() *game.Board        { return p.board }
func (p *Player) Engine() *knowledge.Engine { return p.engine }
func (p *Player) Status() Status            { return p.status }
func (p *Player) Moves() []Move             { return p.moves }

// Observation returns the neighbor-mine count reported for an opened cell.
func (p *Player) Observation(c knowledge.Cell) (int, bool) {
	n, ok := p.observed[c]
	return n, ok
}

// Step makes one move. When the game is already over it reports the final
// status without touching the board.
func (p *Player) Step() (Move, Status) {
	if p.status != Playing {
		return Move{}, p.status
	}

	cell, ok := p.engine.ChooseSafeMove()
	move := Move{Cell: cell}
	if !ok {
		cell, ok = p.engine.ChooseRandomMove(p.rnd)
		if !ok {
			log.Debug("no moves left")
			p.finish()
			return Move{}, p.status
		}
		move = Move{Cell: cell, Guess: true}
	}

	p.moves = append(p.moves, move)

	if p.board.IsMine(move.Cell) {
		log.WithField("cell", move.Cell).Debug("stepped on a mine")
		p.status = Lost
		return move, p.status
	}

	count := p.board.NearbyMines(move.Cell)
	p.engine.RecordObservation(move.Cell, count)
	p.observed[move.Cell] = count

	log.WithFields(logrus.Fields{
		"cell":  move.Cell,
		"count": count,
		"guess": move.Guess,
	}).Debug("opened cell")

	p.flagKnownMines()
	if p.board.Won() {
		p.status = Won
	}
	return move, p.status
}

// Play steps until the game ends. Terminates on any board: every step either
// opens a fresh cell or ends the game.
func (p *Player) Play() Status {
	for p.status == Playing {
		p.Step()
	}
	return p.status
}

// finish is reached when both move queries come up empty: every non-mine
// cell is open. Whether that counts as a win depends on the mines all being
// deduced and flagged.
func (p *Player) finish() {
	p.flagKnownMines()
	if p.board.Won() {
		p.status = Won
	} else {
		p.status = Stalled
	}
}

func (p *Player) flagKnownMines() {
	for _, cell := range p.engine.KnownMines() {
		p.board.Flag(cell)
	}
}

// View renders the player's knowledge of the board, one row per string:
// the neighbor count for opened cells, "*" for proven mines, "?" for
// everything else.
func (p *Player) View() []string {
	rows := make([]string, p.board.Height())
	for row := range p.board.Height() {
		var sb strings.Builder
		for col := range p.board.Width() {
			cell := knowledge.Cell{Row: row, Col: col}
			switch {
			case p.engine.IsMine(cell):
				sb.WriteString("*")
			case p.engine.Played(cell):
				sb.WriteString(strconv.Itoa(p.observed[cell]))
			default:
				sb.WriteString("?")
			}
			if col != p.board.Width()-1 {
				sb.WriteString(" ")
			}
		}
		rows[row] = sb.String()
	}
	return rows
}
