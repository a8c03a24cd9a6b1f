package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// ErrNoScore is returned when a requested run does not exist.
var ErrNoScore = errors.New("no such score")

// ScoreEntry is one finished run.
type ScoreEntry struct {
	ID        int64
	RunID     string
	GameID    string
	Player    string
	Score     int
	CreatedAt time.Time
}

// GameStats contains aggregated statistics for a game.
type GameStats struct {
	GameID     string
	GamesCount int
	HighScore  int
	AvgScore   float64
	TotalScore int64
	LastPlayed time.Time
}

// SaveScore records a finished run and returns it with its generated run ID.
func (s *Store) SaveScore(gameID, player string, score int) (ScoreEntry, error) {
	entry := ScoreEntry{
		RunID:  uuid.NewString(),
		GameID: gameID,
		Player: player,
		Score:  score,
	}

	result, err := s.db.Exec(
		"INSERT INTO scores (run_id, game_id, player, score) VALUES (?, ?, ?, ?)",
		entry.RunID, gameID, player, score,
	)
	if err != nil {
		return ScoreEntry{}, fmt.Errorf("storage: cannot save score: %w", err)
	}

	entry.ID, err = result.LastInsertId()
	if err != nil {
		return ScoreEntry{}, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}
	entry.CreatedAt = time.Now().UTC()

	return entry, nil
}

const scoreColumns = "id, run_id, game_id, player, score, created_at"

// TopScores retrieves the top N scores for the given game, highest first.
// A non-positive limit means 10.
func (s *Store) TopScores(gameID string, limit int) ([]ScoreEntry, error) {
	if limit <= 0 {
		limit = 10
	}
	return s.queryScores(
		"SELECT "+scoreColumns+" FROM scores WHERE game_id = ? ORDER BY score DESC, id ASC LIMIT ?",
		gameID, limit,
	)
}

// ScoreByRun returns the run with the given run ID, or ErrNoScore.
func (s *Store) ScoreByRun(runID string) (ScoreEntry, error) {
	entries, err := s.queryScores("SELECT "+scoreColumns+" FROM scores WHERE run_id = ?", runID)
	if err != nil {
		return ScoreEntry{}, err
	}
	if len(entries) == 0 {
		return ScoreEntry{}, fmt.Errorf("storage: run %s: %w", runID, ErrNoScore)
	}
	return entries[0], nil
}

// AllScores retrieves all scores for the given game, highest first.
func (s *Store) AllScores(gameID string) ([]ScoreEntry, error) {
	return s.queryScores(
		"SELECT "+scoreColumns+" FROM scores WHERE game_id = ? ORDER BY score DESC, id ASC",
		gameID,
	)
}

func (s *Store) queryScores(query string, args ...any) ([]ScoreEntry, error) {
	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query scores: %w", err)
	}
	defer rows.Close()

	var entries []ScoreEntry
	for rows.Next() {
		var e ScoreEntry
		var createdAt any
		if err := rows.Scan(&e.ID, &e.RunID, &e.GameID, &e.Player, &e.Score, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		e.CreatedAt = parseTime(createdAt)
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return entries, nil
}

// ClearScores deletes all run history for the given game.
func (s *Store) ClearScores(gameID string) error {
	_, err := s.db.Exec("DELETE FROM scores WHERE game_id = ?", gameID)
	if err != nil {
		return fmt.Errorf("storage: cannot clear scores: %w", err)
	}
	return nil
}

// GameStats retrieves aggregated statistics for a specific game.
// A game with no runs yields zero values.
func (s *Store) GameStats(gameID string) (*GameStats, error) {
	stats := &GameStats{GameID: gameID}

	err := s.db.QueryRow(
		`SELECT COUNT(*), COALESCE(MAX(score), 0), COALESCE(AVG(score), 0), COALESCE(SUM(score), 0)
		 FROM scores WHERE game_id = ?`,
		gameID,
	).Scan(&stats.GamesCount, &stats.HighScore, &stats.AvgScore, &stats.TotalScore)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get game stats: %w", err)
	}

	var lastPlayed any
	err = s.db.QueryRow(
		`SELECT created_at FROM scores WHERE game_id = ? ORDER BY created_at DESC, id DESC LIMIT 1`,
		gameID,
	).Scan(&lastPlayed)
	switch {
	case errors.Is(err, sql.ErrNoRows):
	case err != nil:
		return nil, fmt.Errorf("storage: cannot get last played: %w", err)
	default:
		stats.LastPlayed = parseTime(lastPlayed)
	}

	return stats, nil
}

// AllGamesStats retrieves statistics for every game that has been played.
func (s *Store) AllGamesStats() (map[string]*GameStats, error) {
	rows, err := s.db.Query(
		`SELECT game_id, COUNT(*), MAX(score), AVG(score), SUM(score), MAX(created_at)
		 FROM scores
		 GROUP BY game_id`,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get all games stats: %w", err)
	}
	defer rows.Close()

	stats := make(map[string]*GameStats)
	for rows.Next() {
		var gs GameStats
		var lastPlayed any
		if err := rows.Scan(&gs.GameID, &gs.GamesCount, &gs.HighScore, &gs.AvgScore, &gs.TotalScore, &lastPlayed); err != nil {
			return nil, fmt.Errorf("storage: cannot scan stats row: %w", err)
		}
		gs.LastPlayed = parseTime(lastPlayed)
		stats[gs.GameID] = &gs
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return stats, nil
}
