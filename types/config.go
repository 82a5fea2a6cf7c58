package types

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type SurfaceCacheConfig struct {
	Enabled     bool `yaml:"enabled" json:"enabled"`
	InitialSize int  `yaml:"initial_size" json:"initial_size"`
}

type AnalysisCacheConfig struct {
	Enabled bool `yaml:"enabled" json:"enabled"`
	Size    int  `yaml:"size" json:"size"`
}

type Config struct {
	LexiconPaths     []string            `yaml:"lexicon_paths" json:"lexicon_paths"`
	SurfaceCache     SurfaceCacheConfig  `yaml:"surface_cache" json:"surface_cache"`
	AnalysisCache    AnalysisCacheConfig `yaml:"analysis_cache" json:"analysis_cache"`
	Informal         bool                `yaml:"informal" json:"informal"`
	BatchParallelism int                 `yaml:"batch_parallelism" json:"batch_parallelism"`
}

func DefaultConfig() Config {
	return Config{
		SurfaceCache: SurfaceCacheConfig{
			Enabled:     true,
			InitialSize: 4,
		},
		AnalysisCache: AnalysisCacheConfig{
			Enabled: true,
			Size:    10000,
		},
		BatchParallelism: 4,
	}
}

// LoadConfig reads a YAML file over the defaults; keys missing from the file keep their default values.
func LoadConfig(filePath string) (Config, error) {
	cfg := DefaultConfig()
	buf, err := os.ReadFile(filePath)
	if err != nil {
		return cfg, fmt.Errorf("could not read config %s: %w", filePath, err)
	}
	if err := yaml.Unmarshal(buf, &cfg); err != nil {
		return cfg, fmt.Errorf("could not parse config %s: %w", filePath, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid config %s: %w", filePath, err)
	}
	return cfg, nil
}

func (cfg Config) Validate() error {
	if cfg.SurfaceCache.InitialSize < 0 {
		return fmt.Errorf("surface_cache.initial_size must not be negative, got %d", cfg.SurfaceCache.InitialSize)
	}
	if cfg.AnalysisCache.Enabled && cfg.AnalysisCache.Size <= 0 {
		return fmt.Errorf("analysis_cache.size must be positive when the cache is enabled, got %d", cfg.AnalysisCache.Size)
	}
	if cfg.BatchParallelism <= 0 {
		return fmt.Errorf("batch_parallelism must be positive, got %d", cfg.BatchParallelism)
	}
	return nil
}
