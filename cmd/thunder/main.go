// Command thunder is an interactive console game against the engine.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"strings"
	"time"

	"github.com/chzyer/readline"

	"github.com/thunderchess/thunder/pkg/chess"
	"github.com/thunderchess/thunder/pkg/engine"
)

type Config struct {
	Depth    int
	Weights  string
	Black    bool
	FEN      string
	MinTime  time.Duration
	MinNodes uint64
}

var config Config

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	var err = run()
	if err != nil {
		log.Println(err)
	}
}

func run() error {
	flag.IntVar(&config.Depth, "depth", 4, "Engine search depth in plies")
	flag.StringVar(&config.Weights, "weights", engine.DefaultWeights.String(), "Engine heuristic weights")
	flag.BoolVar(&config.Black, "black", false, "Play Black (engine moves first)")
	flag.StringVar(&config.FEN, "fen", chess.InitialPositionFEN, "Starting position")
	flag.DurationVar(&config.MinTime, "mintime", 0, "Deepening time floor per engine move (0 uses fixed depth)")
	flag.Uint64Var(&config.MinNodes, "minnodes", 10000, "Deepening node floor per engine move")
	flag.Parse()

	if config.Depth < 1 {
		return fmt.Errorf("depth must be at least 1")
	}
	var weights, err = engine.ParseWeights(config.Weights)
	if err != nil {
		return err
	}
	board, err := chess.NewBoardFromFEN(config.FEN)
	if err != nil {
		return err
	}
	var humanColor = chess.White
	if config.Black {
		humanColor = chess.Black
	}

	rl, err := readline.NewEx(&readline.Config{
		Prompt:          "thunder> ",
		HistoryFile:     ".thunder_history",
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	})
	if err != nil {
		return err
	}
	defer rl.Close()

	fmt.Println("Enter moves like 'e2 e4', 'e7 e8 queen', 'O-O' or 'resign'.")
	fmt.Println("Commands: moves, fen, board, help, quit.")

	var g = &game{
		board:   board,
		weights: weights,
		human:   humanColor,
	}
	return g.play(rl)
}

type game struct {
	board   chess.Board
	weights engine.Weights
	human   chess.Color
}

func (g *game) play(rl *readline.Instance) error {
	fmt.Println(g.board)
	for {
		// A position handed in via -fen may already be terminal.
		if len(g.board.LegalMoves()) == 0 {
			if g.board.InCheck(g.board.Turn()) {
				fmt.Printf("%v wins.\n", g.board.Turn().Other())
			} else {
				fmt.Println("Draw.")
			}
			return nil
		}

		if g.board.Turn() != g.human {
			if done := g.engineMove(); done {
				return nil
			}
			continue
		}

		var line, err = rl.Readline()
		if err == io.EOF || err == readline.ErrInterrupt {
			return nil
		}
		if err != nil {
			return err
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		switch strings.ToLower(line) {
		case "quit", "exit", "x":
			return nil
		case "board":
			fmt.Println(g.board)
			continue
		case "fen":
			fmt.Println(g.board.FEN())
			continue
		case "moves":
			for _, m := range g.board.LegalMoves() {
				fmt.Println(m)
			}
			continue
		case "help":
			fmt.Println("moves  list legal moves")
			fmt.Println("fen    print the current position as FEN")
			fmt.Println("board  reprint the board")
			fmt.Println("quit   leave the game")
			continue
		}

		move, err := chess.ParseMove(line)
		if err != nil {
			fmt.Println(err)
			continue
		}
		if done := g.applyMove(move, "You"); done {
			return nil
		}
	}
}

func (g *game) engineMove() bool {
	var started = time.Now()
	var move chess.Move
	var nodes uint64
	var score float64
	if config.MinTime > 0 {
		var depth = 1
		var totalNodes uint64
		for ; depth <= config.Depth; depth++ {
			move, nodes, score = engine.BestMove(g.board, depth, g.weights)
			totalNodes += nodes
			if time.Since(started) >= config.MinTime || totalNodes >= config.MinNodes {
				break
			}
		}
		nodes = totalNodes
	} else {
		move, nodes, score = engine.BestMove(g.board, config.Depth, g.weights)
	}
	fmt.Printf("Engine plays %v (score %.2f, %v nodes, %v)\n",
		move, score, nodes, time.Since(started).Round(time.Millisecond))
	return g.applyMove(move, "Engine")
}

// applyMove plays the move and reports the outcome; it returns true
// when the game is over.
func (g *game) applyMove(move chess.Move, who string) bool {
	switch res := g.board.PlayMove(move); res.Kind {
	case chess.Continuing:
		g.board = res.Board
		fmt.Println(g.board)
		return false
	case chess.Victory:
		fmt.Println(res.Board)
		fmt.Printf("%v wins.\n", res.Winner)
		return true
	case chess.Stalemate:
		fmt.Println(res.Board)
		fmt.Println("Draw.")
		return true
	default:
		fmt.Printf("%v played an illegal move: %v\n", who, res.Move)
		return false
	}
}
