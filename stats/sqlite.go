package stats

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"
)

const schema = `
CREATE TABLE IF NOT EXISTS player_statistics (
	player_id TEXT PRIMARY KEY,
	played INTEGER NOT NULL DEFAULT 0,
	won INTEGER NOT NULL DEFAULT 0,
	lost INTEGER NOT NULL DEFAULT 0,
	drawn INTEGER NOT NULL DEFAULT 0
);`

// SQLiteStore is a Store backed by a SQLite database.
type SQLiteStore struct {
	db *sql.DB
}

// OpenSQLite opens (and if needed initializes) a SQLite-backed store.
func OpenSQLite(path string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, err
	}
	return &SQLiteStore{db: db}, nil
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

func (s *SQLiteStore) Apply(playerID string, result Result) error {
	col := result.String()
	q := fmt.Sprintf(`
		INSERT INTO player_statistics (player_id, played, %s) VALUES (?, 1, 1)
		ON CONFLICT(player_id) DO UPDATE SET
			played = played + 1, %s = %s + 1`, col, col, col)
	_, err := s.db.Exec(q, playerID)
	return err
}

func (s *SQLiteStore) Get(playerID string) (Record, error) {
	var rec Record
	err := s.db.QueryRow(`
		SELECT played, won, lost, drawn FROM player_statistics
		WHERE player_id = ?`, playerID).
		Scan(&rec.Played, &rec.Won, &rec.Lost, &rec.Drawn)
	if err == sql.ErrNoRows {
		return Record{}, nil
	}
	return rec, err
}
