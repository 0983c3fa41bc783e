package storage

import "time"

// EngineRecord is a row in the engines table: one weight configuration
// with its rating and lifetime score counters.
type EngineRecord struct {
	EngineID string
	Name     string
	Weights  string
	Rating   float64
	Wins     int
	Losses   int
	Draws    int
}

// GameRecord is a row in the games table. GameID is assigned by the
// database on insert.
type GameRecord struct {
	GameID   int64
	WhiteID  string
	BlackID  string
	FinalFEN string
	Status   string
	PlayedAt time.Time
}

// Game status values.
const (
	StatusWhiteWins = "white-wins"
	StatusBlackWins = "black-wins"
	StatusDraw      = "draw"
)

const schema = `
CREATE TABLE IF NOT EXISTS engines (
	engine_id TEXT PRIMARY KEY,
	name TEXT NOT NULL,
	weights TEXT NOT NULL,
	rating REAL NOT NULL DEFAULT 1000,
	wins INTEGER NOT NULL DEFAULT 0,
	losses INTEGER NOT NULL DEFAULT 0,
	draws INTEGER NOT NULL DEFAULT 0
);

CREATE TABLE IF NOT EXISTS games (
	game_id INTEGER PRIMARY KEY AUTOINCREMENT,
	white_engine TEXT NOT NULL,
	black_engine TEXT NOT NULL,
	final_fen TEXT NOT NULL,
	status TEXT NOT NULL CHECK(status IN ('white-wins', 'black-wins', 'draw')),
	played_at DATETIME NOT NULL,
	FOREIGN KEY (white_engine) REFERENCES engines(engine_id),
	FOREIGN KEY (black_engine) REFERENCES engines(engine_id)
);

CREATE INDEX IF NOT EXISTS idx_games_white ON games(white_engine);
CREATE INDEX IF NOT EXISTS idx_games_black ON games(black_engine);
`
