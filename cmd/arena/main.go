package main

import (
	"context"
	"flag"
	"log"
	"runtime"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/thunderchess/thunder/internal/arena"
	"github.com/thunderchess/thunder/internal/storage"
	"github.com/thunderchess/thunder/pkg/engine"
)

type Config struct {
	Games       int    `validate:"min=1"`
	Concurrency int    `validate:"min=1"`
	Depth       int    `validate:"min=1,max=8"`
	MaxPlies    int    `validate:"min=2"`
	WeightsA    string `validate:"required"`
	WeightsB    string `validate:"required"`
	NameA       string `validate:"required"`
	NameB       string `validate:"required"`
	DBPath      string `validate:"required"`
	MinTime     time.Duration
	Deepening   bool
}

var config Config
var validate = validator.New()

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	var err = run()
	if err != nil {
		log.Println(err)
	}
}

func run() error {
	flag.IntVar(&config.Games, "games", 10, "Number of games to play")
	flag.IntVar(&config.Concurrency, "concurrency", runtime.NumCPU(), "Number of concurrent games")
	flag.IntVar(&config.Depth, "depth", 4, "Search depth in plies")
	flag.IntVar(&config.MaxPlies, "maxplies", 200, "Adjudicate a draw after this many plies")
	flag.StringVar(&config.WeightsA, "weightsa", engine.DefaultWeights.String(), "Engine A heuristic weights")
	flag.StringVar(&config.WeightsB, "weightsb", engine.DefaultWeights.String(), "Engine B heuristic weights")
	flag.StringVar(&config.NameA, "namea", "thunder-a", "Engine A name")
	flag.StringVar(&config.NameB, "nameb", "thunder-b", "Engine B name")
	flag.StringVar(&config.DBPath, "db", "arena.db", "SQLite database path")
	flag.DurationVar(&config.MinTime, "mintime", 0, "Deepening time floor per move (enables iterative deepening)")
	flag.Parse()
	config.Deepening = config.MinTime > 0

	if err := validate.Struct(&config); err != nil {
		return err
	}
	log.Printf("%+v", config)

	var weightsA, err = engine.ParseWeights(config.WeightsA)
	if err != nil {
		return err
	}
	weightsB, err := engine.ParseWeights(config.WeightsB)
	if err != nil {
		return err
	}

	store, err := storage.Open(config.DBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	var a = &arena.Arena{
		Store:       store,
		Games:       config.Games,
		Concurrency: config.Concurrency,
		MaxPlies:    config.MaxPlies,
		NewPlayerA:  func() arena.Player { return newPlayer(config.NameA, weightsA) },
		NewPlayerB:  func() arena.Player { return newPlayer(config.NameB, weightsB) },
	}
	return a.Run(context.Background())
}

func newPlayer(name string, w engine.Weights) arena.Player {
	if config.Deepening {
		return &arena.DeepeningPlayer{
			PlayerName: name,
			Weights:    w,
			MinTime:    config.MinTime,
			MinNodes:   10000,
			MaxDepth:   config.Depth,
		}
	}
	return &arena.FixedDepthPlayer{
		PlayerName: name,
		Depth:      config.Depth,
		Weights:    w,
	}
}
