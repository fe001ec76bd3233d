package main

import (
	"flag"
	"hash/maphash"
	"math/rand/v2"

	"github.com/sirupsen/logrus"
	"github.com/snowzach/rotatefilehook"

	"github.com/vancomm/minesweeper-agent/internal/agent"
	"github.com/vancomm/minesweeper-agent/internal/game"
)

var (
	log = logrus.New()

	height    int
	width     int
	mineCount int
	games     int
	seed      uint64
	verbose   bool
	logFile   string
)

func init() {
	flag.IntVar(&height, "height", 8, "board height")
	flag.IntVar(&width, "width", 8, "board width")
	flag.IntVar(&mineCount, "mines", 8, "mines per board")
	flag.IntVar(&games, "games", 1, "number of games to play")
	flag.Uint64Var(&seed, "seed", 0, "rng seed (0 picks one)")
	flag.BoolVar(&verbose, "v", false, "log every move")
	flag.StringVar(&logFile, "log-file", "", "also write logs to a rotating file")
}

func setupLogging() {
	logLevel := logrus.InfoLevel
	if verbose {
		logLevel = logrus.DebugLevel
	}
	log.SetLevel(logLevel)
	log.SetFormatter(&logrus.TextFormatter{ForceColors: true})

	agent.Logger().SetLevel(logLevel)
	agent.Logger().SetFormatter(&logrus.TextFormatter{ForceColors: true})

	if logFile == "" {
		return
	}
	hook, err := rotatefilehook.NewRotateFileHook(rotatefilehook.RotateFileConfig{
		Filename:   logFile,
		MaxSize:    10, // MB
		MaxBackups: 3,
		MaxAge:     28, // days
		Level:      logLevel,
		Formatter:  &logrus.JSONFormatter{},
	})
	if err != nil {
		log.Fatal("unable to create rotate file hook: ", err)
	}
	log.AddHook(hook)
	agent.Logger().AddHook(hook)
}

func main() {
	flag.Parse()
	setupLogging()

	if seed == 0 {
		seed = new(maphash.Hash).Sum64()
	}
	rnd := rand.New(rand.NewPCG(seed, seed))

	log.WithFields(logrus.Fields{
		"height": height,
		"width":  width,
		"mines":  mineCount,
		"games":  games,
		"seed":   seed,
	}).Info("starting up")

	var won, lost, stalled, guesses int
	for i := range games {
		board, err := game.NewBoard(height, width, mineCount, rnd)
		if err != nil {
			log.Fatal("unable to build board: ", err)
		}

		player := agent.NewPlayer(board, rnd)
		status := player.Play()

		gameGuesses := 0
		for _, m := range player.Moves() {
			if m.Guess {
				gameGuesses++
			}
		}
		guesses += gameGuesses

		log.WithFields(logrus.Fields{
			"game":    i + 1,
			"status":  status,
			"moves":   len(player.Moves()),
			"guesses": gameGuesses,
		}).Info("game over")

		switch status {
		case agent.Won:
			won++
		case agent.Lost:
			lost++
		default:
			stalled++
		}
	}

	log.WithFields(logrus.Fields{
		"games":   games,
		"won":     won,
		"lost":    lost,
		"stalled": stalled,
		"guesses": guesses,
	}).Info("done")
}
