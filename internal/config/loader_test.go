package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmbeddedDefaultsParse(t *testing.T) {
	flappy := DefaultFlappyConfig()
	assert.Positive(t, flappy.Physics.Gravity)
	assert.Negative(t, flappy.Physics.JumpImpulse)
	assert.LessOrEqual(t, flappy.Obstacles.MinGapSize, flappy.Obstacles.MaxGapSize)

	sprint := DefaultSprintConfig()
	assert.LessOrEqual(t, sprint.Obstacles.MinSpacing, sprint.Obstacles.MaxSpacing)

	tetris := DefaultTetrisConfig()
	assert.Equal(t, 10, tetris.Board.Width)
	assert.Len(t, tetris.LineScores, 4)

	whack := DefaultWhackConfig()
	assert.Greater(t, whack.SpawnSeconds, whack.MinSpawnSeconds)

	fishing := DefaultFishingConfig()
	assert.Positive(t, fishing.Hook.Radius)

	quiz := DefaultQuizConfig()
	require.NotEmpty(t, quiz.Questions)
	for _, q := range quiz.Questions {
		assert.NotEmpty(t, q.Answer, q.Prompt)
		assert.NotContains(t, q.Decoys, q.Answer, q.Prompt)
	}

	typing := DefaultTypingConfig()
	assert.NotEmpty(t, typing.Passages)
}

func TestLoadCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "whack.yaml")
	require.NoError(t, os.WriteFile(path, []byte("rows: 4\ncols: 5\n"), 0o644))

	cfg, err := Load[WhackConfig]("whack", path)
	require.NoError(t, err)
	assert.Equal(t, 4, cfg.Rows)
	assert.Equal(t, 5, cfg.Cols)
}

func TestLoadCustomPathErrors(t *testing.T) {
	_, err := Load[WhackConfig]("whack", filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	bad := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("rows: [nope"), 0o644))
	_, err = Load[WhackConfig]("whack", bad)
	assert.Error(t, err)
}

func TestLoadLocalConfigsDir(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	t.Setenv("HOME", dir)
	require.NoError(t, os.MkdirAll("configs", 0o755))
	require.NoError(t, os.WriteFile(filepath.Join("configs", "typing.yaml"), []byte("seconds: 15\npassages: [abc]\n"), 0o644))

	cfg, err := Load[TypingConfig]("typing", "")
	require.NoError(t, err)
	assert.Equal(t, 15.0, cfg.Seconds)
	assert.Equal(t, []string{"abc"}, cfg.Passages)
}

func TestDefaultUnknownGame(t *testing.T) {
	_, err := Default[WhackConfig]("no-such-game")
	assert.Error(t, err)
}

func TestApplyPreset(t *testing.T) {
	cfg := DefaultFlappyConfig().Difficulty
	ApplyPreset(&cfg, DifficultyHard)
	assert.True(t, cfg.Enabled)
	assert.Equal(t, 0.7, cfg.InitialLevel)

	ApplyPreset(&cfg, DifficultyFixed)
	assert.False(t, cfg.Enabled)
}

func TestParsePreset(t *testing.T) {
	for _, name := range []string{"", "easy", "normal", "hard", "fixed"} {
		p, err := ParsePreset(name)
		require.NoError(t, err, name)
		assert.Equal(t, DifficultyPreset(name), p)
	}

	_, err := ParsePreset("brutal")
	assert.Error(t, err)
}
