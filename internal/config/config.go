package config

import (
	"fmt"
	"math"
	"os"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

// Weights blends the five evaluation dimensions into the total score. The
// fields must each lie in [0,1] and sum to 1.
type Weights struct {
	Vocabulary   float64 `validate:"gte=0,lte=1"`
	Sentence     float64 `validate:"gte=0,lte=1"`
	Rhetoric     float64 `validate:"gte=0,lte=1"`
	Addressing   float64 `validate:"gte=0,lte=1"`
	OverallStyle float64 `validate:"gte=0,lte=1"`
}

// DefaultWeights returns the standard dimension weighting.
func DefaultWeights() Weights {
	return Weights{
		Vocabulary:   0.30,
		Sentence:     0.25,
		Rhetoric:     0.25,
		Addressing:   0.10,
		OverallStyle: 0.10,
	}
}

// Validate checks ranges and that the weights sum to 1.
func (w Weights) Validate() error {
	if err := validate.Struct(w); err != nil {
		return fmt.Errorf("invalid evaluation weights: %w", err)
	}
	sum := w.Vocabulary + w.Sentence + w.Rhetoric + w.Addressing + w.OverallStyle
	if math.Abs(sum-1.0) > 1e-6 {
		return fmt.Errorf("evaluation weights must sum to 1, got %.4f", sum)
	}
	return nil
}

var validate = validator.New()

// Config holds all application configuration.
type Config struct {
	// Database
	DatabasePath string

	// Corpus and templates
	CorpusOverlayPath string // optional YAML overlay refining the built-in corpus tables
	TemplatePath      string // optional YAML file with extra template entries

	// Conversion defaults
	DefaultLevel string // low, medium or high

	// Evaluation
	Weights             Weights
	EvaluationThreshold float64 // passing total score for batch evaluation

	// Batch settings
	BatchWorkers int

	// Logging
	LogLevel string
}

// Load reads configuration from environment variables.
// It automatically loads .env file if present.
func Load() (*Config, error) {
	// Load .env file if it exists (ignore error if not found)
	_ = godotenv.Load()

	cfg := &Config{
		DatabasePath:      getEnv("DATABASE_PATH", "data/guwen.db"),
		CorpusOverlayPath: getEnv("CORPUS_OVERLAY_PATH", ""),
		TemplatePath:      getEnv("TEMPLATE_PATH", ""),
		DefaultLevel:      getEnv("CONVERSION_LEVEL", "medium"),
		LogLevel:          getEnv("LOG_LEVEL", "info"),
		Weights:           DefaultWeights(),
	}

	var err error
	cfg.EvaluationThreshold, err = parseFloat("EVALUATION_THRESHOLD", 70)
	if err != nil {
		return nil, err
	}

	cfg.BatchWorkers, err = parseInt("BATCH_WORKERS", 4)
	if err != nil {
		return nil, err
	}

	for _, w := range []struct {
		key string
		dst *float64
	}{
		{"WEIGHT_VOCABULARY", &cfg.Weights.Vocabulary},
		{"WEIGHT_SENTENCE", &cfg.Weights.Sentence},
		{"WEIGHT_RHETORIC", &cfg.Weights.Rhetoric},
		{"WEIGHT_ADDRESSING", &cfg.Weights.Addressing},
		{"WEIGHT_OVERALL_STYLE", &cfg.Weights.OverallStyle},
	} {
		*w.dst, err = parseFloat(w.key, *w.dst)
		if err != nil {
			return nil, err
		}
	}

	return cfg, nil
}

// Validate checks that required configuration is present and consistent.
func (c *Config) Validate() error {
	if c.DatabasePath == "" {
		return fmt.Errorf("DATABASE_PATH is required")
	}
	switch c.DefaultLevel {
	case "low", "medium", "high":
	default:
		return fmt.Errorf("invalid CONVERSION_LEVEL: %s (must be 'low', 'medium' or 'high')", c.DefaultLevel)
	}
	if c.EvaluationThreshold < 0 || c.EvaluationThreshold > 100 {
		return fmt.Errorf("EVALUATION_THRESHOLD must be between 0 and 100, got %.1f", c.EvaluationThreshold)
	}
	if c.BatchWorkers < 1 {
		return fmt.Errorf("BATCH_WORKERS must be at least 1, got %d", c.BatchWorkers)
	}
	return c.Weights.Validate()
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func parseFloat(key string, defaultVal float64) (float64, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return defaultVal, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return v, nil
}

func parseInt(key string, defaultVal int) (int, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return defaultVal, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return v, nil
}
