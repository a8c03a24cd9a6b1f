package httpapi

import (
	"time"

	"github.com/vovakirdan/minigames/internal/registry"
	"github.com/vovakirdan/minigames/internal/storage"
)

// GameResponse describes one registered game.
type GameResponse struct {
	ID           string `json:"id"`
	Title        string `json:"title"`
	Category     string `json:"category"`
	HighScoreKey string `json:"high_score_key,omitempty"`
}

// ScoreResponse is one finished run.
type ScoreResponse struct {
	Rank      int       `json:"rank,omitempty"`
	RunID     string    `json:"run_id"`
	GameID    string    `json:"game_id"`
	Player    string    `json:"player"`
	Score     int       `json:"score"`
	CreatedAt time.Time `json:"created_at"`
}

// HighScoreResponse is the persisted best value under one key.
type HighScoreResponse struct {
	Key   string `json:"key"`
	Score int    `json:"score"`
}

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Error string `json:"error"`
}

func newGameResponse(info registry.GameInfo, hsKey string) GameResponse {
	return GameResponse{
		ID:           info.ID,
		Title:        info.Title,
		Category:     string(info.Category),
		HighScoreKey: hsKey,
	}
}

func newScoreResponse(rank int, e storage.ScoreEntry) ScoreResponse {
	return ScoreResponse{
		Rank:      rank,
		RunID:     e.RunID,
		GameID:    e.GameID,
		Player:    e.Player,
		Score:     e.Score,
		CreatedAt: e.CreatedAt,
	}
}
