// Package registry provides a global registry for game factories.
// Games register themselves in init() functions, allowing the platform
// to discover and instantiate games without hardcoded dependencies.
package registry

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/minigames/internal/core"
)

// ErrUnknownGame is returned by Create for an unregistered ID.
var ErrUnknownGame = errors.New("unknown game")

// Game is the core interface that all arcade games must implement.
// Games contain pure logic with no external dependencies (especially no Bubble Tea).
// The platform handles input mapping, timing, and rendering.
type Game interface {
	// ID returns a unique identifier for this game (e.g., "flappy", "maze").
	// Used for CLI commands and score storage.
	ID() string

	// Title returns a human-readable name for display.
	Title() string

	// Reset initializes or resets the game state, including every timer.
	// Called once at start and again when restarting after game over.
	Reset(cfg core.RuntimeConfig)

	// Step advances the simulation by one fixed tick.
	Step(in core.InputFrame) core.StepResult

	// Render draws the current game state into the provided screen buffer.
	// The screen is pre-cleared before this call. Render must not mutate state.
	Render(dst *core.Screen)

	// State returns the current game state.
	State() core.GameState
}

// HighScorer is implemented by games that persist a single best score
// under a fixed key.
type HighScorer interface {
	HighScoreKey() string
}

// TextInput is implemented by games that consume typed characters.
// While WantsText is true the platform sends printable keys as Text
// instead of mapping them to actions.
type TextInput interface {
	WantsText() bool
}

// OneShot is implemented by games whose listed actions are discrete intents:
// each physical press applies once, however long the key is held.
type OneShot interface {
	OneShotActions() []core.Action
}

// Field is one named, editable piece of game state.
type Field struct {
	Name  string
	Value string
}

// Inspectable is implemented by games whose state the player is meant to
// read and rewrite directly, as part of play.
type Inspectable interface {
	Inspect() []Field
	Poke(name, value string) error
}

// Category groups games by the shape of their loop.
type Category string

const (
	CategoryRunner Category = "runner"
	CategoryPuzzle Category = "puzzle"
	CategoryQuiz   Category = "quiz"
	CategoryToy    Category = "toy"
	CategoryTyping Category = "typing"
)

// Categories lists every category in menu order.
var Categories = []Category{CategoryRunner, CategoryPuzzle, CategoryQuiz, CategoryTyping, CategoryToy}

// GameInfo contains metadata about a registered game.
type GameInfo struct {
	ID       string
	Title    string
	Category Category
}

// Factory is a function that creates a new instance of a game.
type Factory func() Game

var (
	factories = make(map[string]Factory)
	infos     = make(map[string]GameInfo)
	mu        sync.RWMutex
)

// Register adds a game factory to the registry.
// Typically called from a game's init() function.
// Panics if a game with the same ID is already registered.
func Register(id string, cat Category, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}

	factories[id] = f
	infos[id] = GameInfo{ID: id, Title: f().Title(), Category: cat}
}

// List returns information about all registered games, sorted by ID.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]GameInfo, 0, len(infos))
	for _, info := range infos {
		result = append(result, info)
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// ByCategory returns registered games grouped by category, each group sorted by ID.
func ByCategory() map[Category][]GameInfo {
	groups := make(map[Category][]GameInfo)
	for _, info := range List() {
		groups[info.Category] = append(groups[info.Category], info)
	}
	return groups
}

// Info returns metadata for a registered game.
func Info(id string) (GameInfo, bool) {
	mu.RLock()
	defer mu.RUnlock()

	info, ok := infos[id]
	return info, ok
}

// Create instantiates a new game by its ID.
func Create(id string) (Game, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[id]
	if !ok {
		return nil, fmt.Errorf("registry: %q: %w", id, ErrUnknownGame)
	}

	return f(), nil
}

// Exists checks if a game with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}

// HighScoreKey returns the persisted high-score key for g, or "" if it has none.
func HighScoreKey(g Game) string {
	if hs, ok := g.(HighScorer); ok {
		return hs.HighScoreKey()
	}
	return ""
}
