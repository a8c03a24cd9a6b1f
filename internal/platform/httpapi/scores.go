package httpapi

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/vovakirdan/minigames/internal/registry"
	"github.com/vovakirdan/minigames/internal/storage"
)

const (
	defaultLimit = 10
	maxLimit     = 100
)

// ScoreStore is the part of storage.Store the API reads from.
type ScoreStore interface {
	TopScores(gameID string, limit int) ([]storage.ScoreEntry, error)
	ScoreByRun(runID string) (storage.ScoreEntry, error)
	HighScore(key string) (int, error)
}

// ScoresController serves the catalogue and leaderboards.
type ScoresController struct {
	store ScoreStore
}

// NewScoresController creates a controller reading from store.
func NewScoresController(store ScoreStore) *ScoresController {
	return &ScoresController{store: store}
}

// Register implements Controller.
func (sc *ScoresController) Register(route *gin.RouterGroup) {
	route.GET("/games", sc.games)
	route.GET("/games/:id/scores", sc.topScores)
	route.GET("/runs/:runID", sc.run)
	route.GET("/highscores/:key", sc.highScore)
}

func (sc *ScoresController) games(ctx *gin.Context) {
	infos := registry.List()
	out := make([]GameResponse, 0, len(infos))
	for _, info := range infos {
		key := ""
		if g, err := registry.Create(info.ID); err == nil {
			key = registry.HighScoreKey(g)
		}
		out = append(out, newGameResponse(info, key))
	}
	ctx.JSON(http.StatusOK, out)
}

func (sc *ScoresController) topScores(ctx *gin.Context) {
	id := ctx.Param("id")
	if !registry.Exists(id) {
		ctx.JSON(http.StatusNotFound, ErrorResponse{Error: "unknown game " + strconv.Quote(id)})
		return
	}

	limit := defaultLimit
	if raw, ok := ctx.GetQuery("limit"); ok {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 || n > maxLimit {
			ctx.JSON(http.StatusBadRequest, ErrorResponse{Error: "limit must be 1.." + strconv.Itoa(maxLimit)})
			return
		}
		limit = n
	}

	entries, err := sc.store.TopScores(id, limit)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, ErrorResponse{Error: "cannot load scores"})
		return
	}
	out := make([]ScoreResponse, len(entries))
	for i, e := range entries {
		out[i] = newScoreResponse(i+1, e)
	}
	ctx.JSON(http.StatusOK, out)
}

func (sc *ScoresController) run(ctx *gin.Context) {
	runID, err := uuid.Parse(ctx.Param("runID"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Error: "run id must be a UUID"})
		return
	}

	entry, err := sc.store.ScoreByRun(runID.String())
	switch {
	case errors.Is(err, storage.ErrNoScore):
		ctx.JSON(http.StatusNotFound, ErrorResponse{Error: "run not found"})
	case err != nil:
		ctx.JSON(http.StatusInternalServerError, ErrorResponse{Error: "cannot load run"})
	default:
		ctx.JSON(http.StatusOK, newScoreResponse(0, entry))
	}
}

func (sc *ScoresController) highScore(ctx *gin.Context) {
	key := ctx.Param("key")
	score, err := sc.store.HighScore(key)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, ErrorResponse{Error: "cannot load high score"})
		return
	}
	ctx.JSON(http.StatusOK, HighScoreResponse{Key: key, Score: score})
}
