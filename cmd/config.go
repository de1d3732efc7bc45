package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/spigell/hire-screener/internal/filtering"
	"github.com/spigell/hire-screener/internal/logger"
	"github.com/spigell/hire-screener/internal/scoring"
	"github.com/spigell/hire-screener/internal/secrets"
	"github.com/spigell/hire-screener/internal/similarity"
	"github.com/spigell/hire-screener/internal/similarity/gemini"
	"github.com/spigell/hire-screener/internal/similarity/huggingface"
	"github.com/spigell/hire-screener/internal/similarity/openai"
	"github.com/spigell/hire-screener/internal/taxonomy"
)

const (
	defaultWorkers  = 4
	defaultProvider = "huggingface"
)

type Config struct {
	Job         *JobConfig        `mapstructure:"job"`
	Similarity  *SimilarityConfig `mapstructure:"similarity" validate:"omitempty"`
	Screening   *ScreeningConfig  `mapstructure:"screening" validate:"omitempty"`
	Filters     *FiltersConfig    `mapstructure:"filters" validate:"omitempty"`
	ExcludeFile string            `mapstructure:"exclude-file"`
	Taxonomy    map[string]any    `mapstructure:"taxonomy"`
}

type JobConfig struct {
	Title string `mapstructure:"title"`
	File  string `mapstructure:"file"`
}

type SimilarityConfig struct {
	Provider          string  `mapstructure:"provider" validate:"omitempty,oneof=huggingface gemini openai"`
	Model             string  `mapstructure:"model"`
	APIKey            string  `mapstructure:"api-key" json:"-"`
	APIKeyFile        string  `mapstructure:"api-key-file"`
	RequestsPerSecond float64 `mapstructure:"requests-per-second" validate:"gte=0"`
	MaxLogLength      int     `mapstructure:"max-log-length" validate:"gte=0"`
}

type ScreeningConfig struct {
	Workers int    `mapstructure:"workers" validate:"gte=1"`
	Output  string `mapstructure:"output"`
}

type FiltersConfig struct {
	MinScore       float64  `mapstructure:"min-score" validate:"gte=0,lte=100"`
	MinTier        string   `mapstructure:"min-tier" validate:"omitempty,oneof=low potential excellent"`
	RequiredSkills []string `mapstructure:"required-skills"`
}

func getConfig() (*Config, error) {
	config := &Config{}
	if err := viper.Unmarshal(config); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}

	if config.Job == nil {
		config.Job = &JobConfig{}
	}
	if config.Similarity == nil {
		config.Similarity = &SimilarityConfig{}
	}
	if config.Screening == nil {
		config.Screening = &ScreeningConfig{Workers: defaultWorkers}
	}
	if config.Filters == nil {
		config.Filters = &FiltersConfig{}
	}

	if err := validator.New().Struct(config); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return config, nil
}

// loadTaxonomy applies the optional taxonomy block on top of the built-in vocabularies.
func loadTaxonomy(config *Config) (*taxonomy.Taxonomy, error) {
	if len(config.Taxonomy) == 0 {
		return taxonomy.Default(), nil
	}
	return taxonomy.Decode(config.Taxonomy)
}

// newProvider returns nil without error when no credential is configured: the
// calculator then scores with keywords only.
func newProvider(ctx context.Context, cfg *SimilarityConfig, log *zap.Logger) (similarity.Provider, error) {
	apiKey, err := secrets.LoadOptional(secrets.Source{
		Name:  "similarity api key",
		Value: cfg.APIKey,
		File:  cfg.APIKeyFile,
	})
	if err != nil {
		return nil, err
	}

	if apiKey == "" {
		log.Info("similarity credential is not configured, using keyword scoring")
		return nil, nil
	}

	provider := strings.ToLower(strings.TrimSpace(cfg.Provider))
	if provider == "" {
		provider = defaultProvider
	}

	providerLogger := logger.WithCommonFields(log, provider, cfg.Model)

	switch provider {
	case "huggingface":
		client := huggingface.New(providerLogger, apiKey, cfg.Model, cfg.RequestsPerSecond)
		if cfg.MaxLogLength > 0 {
			client.MaxLogLength = cfg.MaxLogLength
		}
		return client, nil
	case "gemini":
		embedder, err := gemini.NewEmbedder(ctx, apiKey, cfg.Model)
		if err != nil {
			return nil, fmt.Errorf("create gemini embedder: %w", err)
		}
		return embedder, nil
	case "openai":
		embedder, err := openai.NewEmbedder(apiKey, cfg.Model)
		if err != nil {
			return nil, fmt.Errorf("create openai embedder: %w", err)
		}
		return embedder, nil
	default:
		return nil, fmt.Errorf("unsupported similarity provider: %s", cfg.Provider)
	}
}

func prepareFilters(config *Config, log *zap.Logger) (*filtering.Filtering, error) {
	minTier, err := scoring.ParseTier(config.Filters.MinTier)
	if err != nil {
		return nil, err
	}

	minScore := filtering.NewMinScore(config.Filters.MinScore)
	if config.Filters.MinScore == 0 {
		minScore.Disable("minimum score is not set")
	}

	tier := filtering.NewMinTier(minTier)
	if minTier == scoring.TierLow {
		tier.Disable("minimum tier is not set")
	}

	required := filtering.NewRequiredSkills(config.Filters.RequiredSkills)
	if len(config.Filters.RequiredSkills) == 0 {
		required.Disable("no required skills configured")
	}

	exclude := filtering.NewExcludeFile(config.ExcludeFile)
	if strings.TrimSpace(config.ExcludeFile) == "" {
		exclude.Disable("exclude file is not set")
	}

	return filtering.New([]filtering.Filter{minScore, tier, required, exclude}, log), nil
}
