package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	// Save original env and restore after test
	origEnv := os.Environ()
	t.Cleanup(func() {
		os.Clearenv()
		for _, e := range origEnv {
			for i := 0; i < len(e); i++ {
				if e[i] == '=' {
					os.Setenv(e[:i], e[i+1:])
					break
				}
			}
		}
	})

	t.Run("defaults", func(t *testing.T) {
		os.Clearenv()
		cfg, err := Load()
		require.NoError(t, err)

		assert.Equal(t, "data/guwen.db", cfg.DatabasePath)
		assert.Equal(t, "medium", cfg.DefaultLevel)
		assert.Equal(t, "info", cfg.LogLevel)
		assert.InDelta(t, 70.0, cfg.EvaluationThreshold, 1e-9)
		assert.Equal(t, 4, cfg.BatchWorkers)
		assert.Equal(t, DefaultWeights(), cfg.Weights)
		assert.NoError(t, cfg.Validate())
	})

	t.Run("custom values", func(t *testing.T) {
		os.Clearenv()
		os.Setenv("DATABASE_PATH", "/custom/path.db")
		os.Setenv("CONVERSION_LEVEL", "high")
		os.Setenv("EVALUATION_THRESHOLD", "85")
		os.Setenv("BATCH_WORKERS", "8")
		os.Setenv("WEIGHT_VOCABULARY", "0.40")
		os.Setenv("WEIGHT_SENTENCE", "0.15")

		cfg, err := Load()
		require.NoError(t, err)

		assert.Equal(t, "/custom/path.db", cfg.DatabasePath)
		assert.Equal(t, "high", cfg.DefaultLevel)
		assert.InDelta(t, 85.0, cfg.EvaluationThreshold, 1e-9)
		assert.Equal(t, 8, cfg.BatchWorkers)
		assert.InDelta(t, 0.40, cfg.Weights.Vocabulary, 1e-9)
		assert.InDelta(t, 0.15, cfg.Weights.Sentence, 1e-9)
		assert.NoError(t, cfg.Validate())
	})

	t.Run("invalid threshold", func(t *testing.T) {
		os.Clearenv()
		os.Setenv("EVALUATION_THRESHOLD", "not a number")
		_, err := Load()
		assert.Error(t, err)
	})

	t.Run("invalid workers", func(t *testing.T) {
		os.Clearenv()
		os.Setenv("BATCH_WORKERS", "many")
		_, err := Load()
		assert.Error(t, err)
	})
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		return &Config{
			DatabasePath:        "data/guwen.db",
			DefaultLevel:        "medium",
			EvaluationThreshold: 70,
			BatchWorkers:        4,
			Weights:             DefaultWeights(),
		}
	}

	t.Run("valid config", func(t *testing.T) {
		assert.NoError(t, valid().Validate())
	})

	t.Run("missing database path", func(t *testing.T) {
		cfg := valid()
		cfg.DatabasePath = ""
		assert.Error(t, cfg.Validate())
	})

	t.Run("bad level", func(t *testing.T) {
		cfg := valid()
		cfg.DefaultLevel = "extreme"
		assert.Error(t, cfg.Validate())
	})

	t.Run("threshold out of range", func(t *testing.T) {
		cfg := valid()
		cfg.EvaluationThreshold = 120
		assert.Error(t, cfg.Validate())
	})

	t.Run("zero workers", func(t *testing.T) {
		cfg := valid()
		cfg.BatchWorkers = 0
		assert.Error(t, cfg.Validate())
	})
}

func TestWeights(t *testing.T) {
	t.Run("defaults sum to one", func(t *testing.T) {
		assert.NoError(t, DefaultWeights().Validate())
	})

	t.Run("sum off by too much", func(t *testing.T) {
		w := DefaultWeights()
		w.Vocabulary = 0.5
		assert.Error(t, w.Validate())
	})

	t.Run("negative weight", func(t *testing.T) {
		w := DefaultWeights()
		w.Rhetoric = -0.25
		w.Vocabulary = 0.80
		assert.Error(t, w.Validate())
	})
}
