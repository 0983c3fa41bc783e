// Package storage persists engines, their ratings and finished games in
// SQLite. The engine core knows nothing about it; the arena driver feeds
// it terminal game results.
package storage

import (
	"database/sql"
	"fmt"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"

	"github.com/thunderchess/thunder/internal/rating"
)

type Store struct {
	db *sql.DB
}

// Open opens (or creates) the database at dataSourceName and ensures the
// schema exists. Use ":memory:" for an ephemeral store.
func Open(dataSourceName string) (*Store, error) {
	var db, err = sql.Open("sqlite3", dataSourceName)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	// One connection keeps the pragma effective and makes ":memory:"
	// behave as a single database.
	db.SetMaxOpenConns(1)
	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		db.Close()
		return nil, fmt.Errorf("enable foreign keys: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("create schema: %w", err)
	}
	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

// SaveEngine registers an engine configuration and returns its id. The
// initial rating defaults to 1000 when record.Rating is zero.
func (s *Store) SaveEngine(record EngineRecord) (string, error) {
	if record.EngineID == "" {
		record.EngineID = uuid.NewString()
	}
	if record.Rating == 0 {
		record.Rating = 1000
	}
	var _, err = s.db.Exec(
		`INSERT INTO engines (engine_id, name, weights, rating, wins, losses, draws)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		record.EngineID, record.Name, record.Weights, record.Rating,
		record.Wins, record.Losses, record.Draws)
	if err != nil {
		return "", fmt.Errorf("save engine %q: %w", record.Name, err)
	}
	return record.EngineID, nil
}

func (s *Store) EngineByID(engineID string) (EngineRecord, error) {
	var record EngineRecord
	var err = s.db.QueryRow(
		`SELECT engine_id, name, weights, rating, wins, losses, draws
		 FROM engines WHERE engine_id = ?`, engineID).
		Scan(&record.EngineID, &record.Name, &record.Weights, &record.Rating,
			&record.Wins, &record.Losses, &record.Draws)
	if err != nil {
		return EngineRecord{}, fmt.Errorf("engine %s: %w", engineID, err)
	}
	return record, nil
}

func (s *Store) ListEngines() ([]EngineRecord, error) {
	var rows, err = s.db.Query(
		`SELECT engine_id, name, weights, rating, wins, losses, draws
		 FROM engines ORDER BY rating DESC`)
	if err != nil {
		return nil, fmt.Errorf("list engines: %w", err)
	}
	defer rows.Close()

	var result []EngineRecord
	for rows.Next() {
		var record EngineRecord
		if err := rows.Scan(&record.EngineID, &record.Name, &record.Weights,
			&record.Rating, &record.Wins, &record.Losses, &record.Draws); err != nil {
			return nil, fmt.Errorf("list engines: %w", err)
		}
		result = append(result, record)
	}
	return result, rows.Err()
}

// RecordGame inserts the game row, bumps both engines' win/loss/draw
// counters and applies the ELO update, all in one transaction. It
// returns the auto-incremented game id.
func (s *Store) RecordGame(game GameRecord) (int64, error) {
	var tx, err = s.db.Begin()
	if err != nil {
		return 0, fmt.Errorf("record game: %w", err)
	}
	defer tx.Rollback()

	var res sql.Result
	res, err = tx.Exec(
		`INSERT INTO games (white_engine, black_engine, final_fen, status, played_at)
		 VALUES (?, ?, ?, ?, ?)`,
		game.WhiteID, game.BlackID, game.FinalFEN, game.Status, game.PlayedAt)
	if err != nil {
		return 0, fmt.Errorf("record game: %w", err)
	}
	var gameID int64
	gameID, err = res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("record game: %w", err)
	}

	var whiteScore float64
	var whiteCol, blackCol string
	switch game.Status {
	case StatusWhiteWins:
		whiteScore = rating.ScoreWin
		whiteCol, blackCol = "wins", "losses"
	case StatusBlackWins:
		whiteScore = rating.ScoreLoss
		whiteCol, blackCol = "losses", "wins"
	case StatusDraw:
		whiteScore = rating.ScoreDraw
		whiteCol, blackCol = "draws", "draws"
	default:
		return 0, fmt.Errorf("record game: unknown status %q", game.Status)
	}

	var whiteRating, blackRating float64
	err = tx.QueryRow(`SELECT rating FROM engines WHERE engine_id = ?`, game.WhiteID).Scan(&whiteRating)
	if err != nil {
		return 0, fmt.Errorf("record game: white engine: %w", err)
	}
	err = tx.QueryRow(`SELECT rating FROM engines WHERE engine_id = ?`, game.BlackID).Scan(&blackRating)
	if err != nil {
		return 0, fmt.Errorf("record game: black engine: %w", err)
	}
	whiteRating, blackRating = rating.Update(whiteRating, blackRating, whiteScore)

	_, err = tx.Exec(fmt.Sprintf(
		`UPDATE engines SET rating = ?, %s = %s + 1 WHERE engine_id = ?`, whiteCol, whiteCol),
		whiteRating, game.WhiteID)
	if err != nil {
		return 0, fmt.Errorf("record game: %w", err)
	}
	_, err = tx.Exec(fmt.Sprintf(
		`UPDATE engines SET rating = ?, %s = %s + 1 WHERE engine_id = ?`, blackCol, blackCol),
		blackRating, game.BlackID)
	if err != nil {
		return 0, fmt.Errorf("record game: %w", err)
	}

	if err = tx.Commit(); err != nil {
		return 0, fmt.Errorf("record game: %w", err)
	}
	return gameID, nil
}
