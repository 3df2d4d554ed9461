package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"

	"textsum/internal/language"
)

const envPrefix = "TEXTSUM_"

// SummarizerConfig holds the summary defaults.
type SummarizerConfig struct {
	Language  string `yaml:"language"  env:"LANGUAGE"`
	Sentences int    `yaml:"sentences" env:"SENTENCES"`
}

// AnalyzerConfig selects the linguistic analysis backends.
type AnalyzerConfig struct {
	Segmenter string `yaml:"segmenter" env:"SEGMENTER"`
	StopWords string `yaml:"stopwords" env:"STOPWORDS"`
}

// ServiceConfig configures caching and export.
type ServiceConfig struct {
	CacheSize int    `yaml:"cache_size" env:"CACHE_SIZE"`
	Output    string `yaml:"output"     env:"OUTPUT"`
}

// LogConfig configures the slog handler.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"`
	Format string `yaml:"format" env:"LOG_FORMAT"`
	File   string `yaml:"file"   env:"LOG_FILE"`
}

// AppConfig is the root application configuration structure.
type AppConfig struct {
	Summarizer SummarizerConfig `yaml:"summarizer"`
	Analyzer   AnalyzerConfig   `yaml:"analyzer"`
	Service    ServiceConfig    `yaml:"service"`
	Log        LogConfig        `yaml:"log"`
}

// Load reads a config from a specified path. If the file does not exist, returns defaults.
// Environment overrides are applied on top in both cases.
func Load(path string) (*AppConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			cfg := defaultConfig()
			return cfg, applyEnv(cfg)
		}
		return nil, err
	}
	cfg := defaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	applyConfigDefaults(cfg)
	if err := applyEnv(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadDefault tries ./config.yaml first, then ~/.config/textsum/config.yaml.
// If neither exists, it writes defaults to ~/.config/textsum/config.yaml and returns them.
func LoadDefault() (*AppConfig, string, error) {
	cwdPath := "config.yaml"
	if _, err := os.Stat(cwdPath); err == nil {
		cfg, err := Load(cwdPath)
		return cfg, cwdPath, err
	}
	userPath, err := defaultUserConfigPath()
	if err != nil {
		return nil, "", err
	}
	if _, err := os.Stat(userPath); err == nil {
		cfg, err := Load(userPath)
		return cfg, userPath, err
	}
	cfg := defaultConfig()
	if err := Save(userPath, cfg); err != nil {
		return nil, "", err
	}
	return cfg, userPath, applyEnv(cfg)
}

// Save writes the config to the given path, creating directories as needed.
func Save(path string, cfg *AppConfig) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

// Validate checks value ranges and enumerations.
func (c *AppConfig) Validate() error {
	if c.Summarizer.Sentences < 1 {
		return fmt.Errorf("summarizer.sentences must be at least 1, got %d", c.Summarizer.Sentences)
	}
	if _, err := language.Parse(c.Summarizer.Language); err != nil {
		return fmt.Errorf("summarizer.language: %w", err)
	}
	switch c.Analyzer.Segmenter {
	case "punkt", "prose":
	default:
		return fmt.Errorf("analyzer.segmenter must be punkt or prose, got %q", c.Analyzer.Segmenter)
	}
	switch language.StopWordSource(c.Analyzer.StopWords) {
	case language.SpaCy, language.Snowball:
	default:
		return fmt.Errorf("analyzer.stopwords must be spacy or snowball, got %q", c.Analyzer.StopWords)
	}
	if c.Service.CacheSize < 0 {
		return fmt.Errorf("service.cache_size must not be negative, got %d", c.Service.CacheSize)
	}
	switch c.Log.Format {
	case "text", "json":
	default:
		return fmt.Errorf("log.format must be text or json, got %q", c.Log.Format)
	}
	return nil
}

func applyEnv(cfg *AppConfig) error {
	if err := env.ParseWithOptions(cfg, env.Options{Prefix: envPrefix}); err != nil {
		return fmt.Errorf("environment overrides: %w", err)
	}
	return nil
}

func defaultUserConfigPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "textsum", "config.yaml"), nil
}

func defaultConfig() *AppConfig {
	cfg := &AppConfig{
		Summarizer: SummarizerConfig{Language: string(language.English), Sentences: 5},
		Analyzer:   AnalyzerConfig{Segmenter: "punkt", StopWords: string(language.SpaCy)},
		Service:    ServiceConfig{CacheSize: 128, Output: "summary.txt"},
		Log:        LogConfig{Level: "info", Format: "text"},
	}
	return cfg
}

func applyConfigDefaults(cfg *AppConfig) {
	if cfg.Summarizer.Language == "" {
		cfg.Summarizer.Language = string(language.English)
	}
	if cfg.Summarizer.Sentences == 0 {
		cfg.Summarizer.Sentences = 5
	}
	if cfg.Analyzer.Segmenter == "" {
		cfg.Analyzer.Segmenter = "punkt"
	}
	if cfg.Analyzer.StopWords == "" {
		cfg.Analyzer.StopWords = string(language.SpaCy)
	}
	if cfg.Service.Output == "" {
		cfg.Service.Output = "summary.txt"
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = "info"
	}
	if cfg.Log.Format == "" {
		cfg.Log.Format = "text"
	}
}
