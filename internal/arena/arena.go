// Package arena loops engine-vs-engine games, records them in storage
// and keeps both engines' ratings up to date.
package arena

import (
	"context"
	"log"
	"runtime"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/thunderchess/thunder/internal/storage"
)

type Arena struct {
	Store       *storage.Store
	Games       int
	Concurrency int
	MaxPlies    int

	// NewPlayerA and NewPlayerB build one player instance per worker.
	NewPlayerA func() Player
	NewPlayerB func() Player

	engineAID string
	engineBID string
}

// Run registers both engines, then drives the game pipeline: a generator
// feeds pairings with alternating colors, workers play games, and a
// single collector updates storage and reports the running score.
func (a *Arena) Run(ctx context.Context) error {
	log.Println("arena started")
	defer log.Println("arena finished")

	log.Println("NumCPU", runtime.NumCPU(),
		"GOMAXPROCS", runtime.GOMAXPROCS(0),
		"gameConcurrency", a.Concurrency)

	var playerA = a.NewPlayerA()
	var playerB = a.NewPlayerB()
	var err error
	a.engineAID, err = a.Store.SaveEngine(storage.EngineRecord{Name: playerA.Name()})
	if err != nil {
		return err
	}
	a.engineBID, err = a.Store.SaveEngine(storage.EngineRecord{Name: playerB.Name()})
	if err != nil {
		return err
	}

	g, ctx := errgroup.WithContext(ctx)

	var gameInfos = make(chan gameInfo)
	var gameResults = make(chan gameResult)

	g.Go(func() error {
		defer close(gameInfos)
		return a.scheduleGames(ctx, gameInfos)
	})

	g.Go(func() error {
		return a.collectResults(ctx, gameResults)
	})

	var wg = &sync.WaitGroup{}
	for i := 0; i < a.Concurrency; i++ {
		wg.Add(1)
		g.Go(func() error {
			defer wg.Done()
			return a.playGames(ctx, gameInfos, gameResults)
		})
	}

	g.Go(func() error {
		wg.Wait()
		close(gameResults)
		return nil
	})

	return g.Wait()
}

// scheduleGames alternates colors so neither engine plays White more
// than one game extra.
func (a *Arena) scheduleGames(ctx context.Context, gameInfos chan<- gameInfo) error {
	for i := 0; i < a.Games; i++ {
		var info = gameInfo{gameNumber: i + 1}
		if i%2 == 0 {
			info.white, info.whiteID = a.NewPlayerA(), a.engineAID
			info.black, info.blackID = a.NewPlayerB(), a.engineBID
		} else {
			info.white, info.whiteID = a.NewPlayerB(), a.engineBID
			info.black, info.blackID = a.NewPlayerA(), a.engineAID
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case gameInfos <- info:
		}
	}
	return nil
}

func (a *Arena) playGames(ctx context.Context,
	gameInfos <-chan gameInfo, gameResults chan<- gameResult) error {
	for info := range gameInfos {
		var res, err = playGame(ctx, info, a.MaxPlies)
		if err != nil {
			return err
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case gameResults <- res:
		}
	}
	return nil
}
