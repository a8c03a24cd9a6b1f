package storage

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/vovakirdan/minigames/internal/core"
)

// HighScore returns the stored best score for key, or 0 when none exists.
func (s *Store) HighScore(key string) (int, error) {
	var score int
	err := s.db.QueryRow("SELECT score FROM high_scores WHERE key = ?", key).Scan(&score)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("storage: cannot query high score %q: %w", key, err)
	}
	return score, nil
}

// SubmitHighScore stores score under key only if it beats the stored value.
// It reports whether a new maximum was written.
func (s *Store) SubmitHighScore(key string, score int) (bool, error) {
	if key == "" {
		return false, fmt.Errorf("storage: empty high score key: %w", core.ErrInvalidInput)
	}
	if score < 0 {
		return false, fmt.Errorf("storage: negative high score %d: %w", score, core.ErrInvalidInput)
	}
	if score == 0 {
		return false, nil
	}

	res, err := s.db.Exec(
		`INSERT INTO high_scores (key, score) VALUES (?, ?)
		 ON CONFLICT(key) DO UPDATE SET score = excluded.score, updated_at = CURRENT_TIMESTAMP
		 WHERE excluded.score > high_scores.score`,
		key, score,
	)
	if err != nil {
		return false, fmt.Errorf("storage: cannot submit high score %q: %w", key, err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("storage: cannot read affected rows: %w", err)
	}
	return n > 0, nil
}

// HighScores returns every stored key and value.
func (s *Store) HighScores() (map[string]int, error) {
	rows, err := s.db.Query("SELECT key, score FROM high_scores")
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query high scores: %w", err)
	}
	defer rows.Close()

	out := make(map[string]int)
	for rows.Next() {
		var key string
		var score int
		if err := rows.Scan(&key, &score); err != nil {
			return nil, fmt.Errorf("storage: cannot scan high score: %w", err)
		}
		out[key] = score
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return out, nil
}
