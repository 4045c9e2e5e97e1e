package config

import (
	"fmt"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config aggregates all application configuration
type Config struct {
	AI      AIConfig      `yaml:"ai"`
	Amadeus AmadeusConfig `yaml:"amadeus"`
	Server  ServerConfig  `yaml:"server"`
}

type AIConfig struct {
	Plugin string       `yaml:"plugin" env:"AI_PLUGIN" env-default:"openai"`
	OpenAI OpenAIConfig `yaml:"openai"`
	Gemini GeminiConfig `yaml:"gemini"`
}

// OpenAIConfig points at an OpenAI-compatible chat endpoint
// (Azure OpenAI deployments use this shape).
type OpenAIConfig struct {
	Endpoint   string `yaml:"endpoint" env:"AZURE_OPENAI_ENDPOINT"`
	APIKey     string `yaml:"api_key" env:"AZURE_OPENAI_API_KEY"`
	Deployment string `yaml:"deployment" env:"AZURE_OPENAI_DEPLOYMENT_NAME" env-default:"gpt-4o-mini"`
}

type GeminiConfig struct {
	APIKey string `yaml:"api_key" env:"GEMINI_API_KEY"`
	Model  string `yaml:"model" env:"GEMINI_MODEL" env-default:"gemini-1.5-flash"`
}

type AmadeusConfig struct {
	APIKey      string `yaml:"api_key" env:"AMADEUS_API_KEY"`
	APISecret   string `yaml:"api_secret" env:"AMADEUS_API_SECRET"`
	Environment string `yaml:"environment" env:"AMADEUS_ENV" env-default:"test"`
}

type ServerConfig struct {
	Port string `yaml:"port" env:"PORT" env-default:"8080"`
}

// Production reports whether the Amadeus production endpoints should be used.
func (c AmadeusConfig) Production() bool {
	return c.Environment == "production"
}

// Load reads configuration from config.yaml and environment variables
// Priority: Env Vars > Config File > Defaults
func Load() (*Config, error) {
	var cfg Config

	// Read config.yaml if present, then override with envs.
	err := cleanenv.ReadConfig("config.yaml", &cfg)
	if err != nil {
		if err := cleanenv.ReadEnv(&cfg); err != nil {
			return nil, fmt.Errorf("failed to read env config: %w", err)
		}
	}

	return &cfg, nil
}
