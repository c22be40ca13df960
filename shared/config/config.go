package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Generator  GeneratorConfig  `yaml:"generator"`
	Finder     FinderConfig     `yaml:"finder"`
	Email      EmailConfig      `yaml:"email"`
	Monitoring MonitoringConfig `yaml:"monitoring"`
	OutputDir  string           `yaml:"output_dir"`
}

type GeneratorConfig struct {
	Niche       string           `yaml:"niche"`
	TopicCount  int              `yaml:"topic_count"`  // 1-20
	ScriptWords int              `yaml:"script_words"` // 100-2000
	Completion  CompletionConfig `yaml:"completion"`
	Schedule    string           `yaml:"schedule"`
}

type CompletionConfig struct {
	Provider     string  `yaml:"provider"` // "openrouter" or "gemini"
	APIKey       string  `yaml:"api_key" env:"OPENROUTER_API_KEY"`
	GeminiAPIKey string  `yaml:"gemini_api_key" env:"GEMINI_API_KEY"`
	Model        string  `yaml:"model"`
	BaseURL      string  `yaml:"base_url"`
	Temperature  float64 `yaml:"temperature"`
}

type FinderConfig struct {
	Keyword    string        `yaml:"keyword"`
	FetchLimit int           `yaml:"fetch_limit"` // results requested upstream
	TableLimit int           `yaml:"table_limit"` // 5-50 rows kept after ranking
	Source     string        `yaml:"source"`      // "web" or "dataapi"
	YouTube    YouTubeConfig `yaml:"youtube"`
	Schedule   string        `yaml:"schedule"`
}

type YouTubeConfig struct {
	APIKey       string `yaml:"api_key" env:"YOUTUBE_API_KEY"`
	ClientID     string `yaml:"client_id" env:"GOOGLE_CLIENT_ID"`
	ClientSecret string `yaml:"client_secret" env:"GOOGLE_CLIENT_SECRET"`
	TokenFile    string `yaml:"token_file"`
}

type EmailConfig struct {
	SMTPServer string `yaml:"smtp_server"`
	SMTPPort   int    `yaml:"smtp_port"`
	Username   string `yaml:"username" env:"EMAIL_USERNAME"`
	Password   string `yaml:"password" env:"EMAIL_PASSWORD"`
	FromEmail  string `yaml:"from_email"`
	ToEmail    string `yaml:"to_email"`
}

type MonitoringConfig struct {
	HealthPort int `yaml:"health_port"`
}

// Enabled reports whether a digest recipient is configured. Email is
// optional for both agents.
func (e *EmailConfig) Enabled() bool {
	return e.ToEmail != ""
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	configFile := os.Getenv("CONFIG_FILE")
	if configFile == "" {
		configFile = "config.yaml"
	}

	data, err := os.ReadFile(configFile)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", configFile, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", configFile, err)
	}

	cfg.applyEnv()
	cfg.applyDefaults()

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &cfg, nil
}

func (c *Config) applyEnv() {
	if c.Generator.Completion.APIKey == "" {
		c.Generator.Completion.APIKey = os.Getenv("OPENROUTER_API_KEY")
	}
	if c.Generator.Completion.GeminiAPIKey == "" {
		c.Generator.Completion.GeminiAPIKey = os.Getenv("GEMINI_API_KEY")
	}
	if c.Finder.YouTube.APIKey == "" {
		c.Finder.YouTube.APIKey = os.Getenv("YOUTUBE_API_KEY")
	}
	if c.Finder.YouTube.ClientID == "" {
		c.Finder.YouTube.ClientID = os.Getenv("GOOGLE_CLIENT_ID")
	}
	if c.Finder.YouTube.ClientSecret == "" {
		c.Finder.YouTube.ClientSecret = os.Getenv("GOOGLE_CLIENT_SECRET")
	}
	if c.Email.Username == "" {
		c.Email.Username = os.Getenv("EMAIL_USERNAME")
	}
	if c.Email.Password == "" {
		c.Email.Password = os.Getenv("EMAIL_PASSWORD")
	}
}

func (c *Config) applyDefaults() {
	if c.OutputDir == "" {
		c.OutputDir = "output"
	}

	if c.Generator.TopicCount == 0 {
		c.Generator.TopicCount = 5
	}
	if c.Generator.ScriptWords == 0 {
		c.Generator.ScriptWords = 300
	}
	if c.Generator.Completion.Provider == "" {
		c.Generator.Completion.Provider = "openrouter"
	}
	if c.Generator.Completion.Model == "" {
		c.Generator.Completion.Model = "openrouter-gpt-4"
	}
	if c.Generator.Completion.Temperature == 0 {
		c.Generator.Completion.Temperature = 0.7
	}
	if c.Generator.Schedule == "" {
		c.Generator.Schedule = "0 0 9 * * *" // Daily at 9 AM
	}

	if c.Finder.FetchLimit == 0 {
		c.Finder.FetchLimit = 50
	}
	if c.Finder.TableLimit == 0 {
		c.Finder.TableLimit = 10
	}
	if c.Finder.Source == "" {
		c.Finder.Source = "web"
	}
	if c.Finder.YouTube.TokenFile == "" {
		c.Finder.YouTube.TokenFile = "youtube_token.json"
	}
	if c.Finder.Schedule == "" {
		c.Finder.Schedule = "0 0 9 * * *"
	}

	if c.Monitoring.HealthPort == 0 {
		c.Monitoring.HealthPort = 8080
	}
}

// validate only rejects values the pipelines cannot work with. A missing
// niche, keyword or API key is not a config error: the affected agent
// simply skips its run.
func (c *Config) validate() error {
	if c.Generator.TopicCount < 1 || c.Generator.TopicCount > 20 {
		return fmt.Errorf("generator topic_count must be between 1 and 20, got %d", c.Generator.TopicCount)
	}
	if c.Generator.ScriptWords < 100 || c.Generator.ScriptWords > 2000 {
		return fmt.Errorf("generator script_words must be between 100 and 2000, got %d", c.Generator.ScriptWords)
	}
	switch c.Generator.Completion.Provider {
	case "openrouter", "gemini":
	default:
		return fmt.Errorf("generator completion provider must be \"openrouter\" or \"gemini\", got %q", c.Generator.Completion.Provider)
	}

	if c.Finder.TableLimit < 5 || c.Finder.TableLimit > 50 {
		return fmt.Errorf("finder table_limit must be between 5 and 50, got %d", c.Finder.TableLimit)
	}
	if c.Finder.FetchLimit < c.Finder.TableLimit {
		return fmt.Errorf("finder fetch_limit (%d) must not be below table_limit (%d)", c.Finder.FetchLimit, c.Finder.TableLimit)
	}
	switch c.Finder.Source {
	case "web", "dataapi":
	default:
		return fmt.Errorf("finder source must be \"web\" or \"dataapi\", got %q", c.Finder.Source)
	}

	if c.Email.Enabled() {
		if c.Email.Username == "" {
			return fmt.Errorf("email username is required when a recipient is set (set EMAIL_USERNAME or email.username)")
		}
		if c.Email.Password == "" {
			return fmt.Errorf("email password is required when a recipient is set (set EMAIL_PASSWORD or email.password)")
		}
	}

	return nil
}
