package store

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config is built once at startup and passed into every component.
// Nothing reads the environment after LoadConfig returns.
type Config struct {
	Mode        string   `yaml:"mode"`         // DRY_RUN or LIVE
	Symbols     []string `yaml:"symbols"`      // instrument tokens, order matters
	JournalFile string   `yaml:"journal_file"` // append-only run journal

	LLM struct {
		Provider   string `yaml:"provider"` // OPENAI, CLAUDE or NOOP
		Model      string `yaml:"model"`
		MaxTokens  int    `yaml:"max_tokens"`
		PromptPath string `yaml:"prompt_path"`
	} `yaml:"llm"`

	Quote struct {
		Source      string `yaml:"source"` // REST, KITE or FALLBACK
		URL         string `yaml:"url"`
		AccessToken string `yaml:"-"` // env only, never from file
	} `yaml:"quote"`

	Order struct {
		URL         string `yaml:"url"`
		AccessToken string `yaml:"-"`
	} `yaml:"order"`

	Kite struct {
		APIKey      string `yaml:"-"`
		AccessToken string `yaml:"-"`
	} `yaml:"-"`

	News struct {
		Enabled      bool `yaml:"enabled"`
		MaxHeadlines int  `yaml:"max_headlines"`
	} `yaml:"news"`
}

func (c *Config) DryRun() bool { return c.Mode != "LIVE" }

func (c *Config) Validate() error {
	if c.Mode != "DRY_RUN" && c.Mode != "LIVE" {
		return fmt.Errorf("invalid mode '%s': must be 'DRY_RUN' or 'LIVE'", c.Mode)
	}
	if len(c.Symbols) == 0 {
		return fmt.Errorf("symbols cannot be empty")
	}
	if c.LLM.MaxTokens <= 0 {
		return fmt.Errorf("llm.max_tokens must be positive, got %d", c.LLM.MaxTokens)
	}
	switch c.LLM.Provider {
	case "OPENAI", "CLAUDE", "NOOP":
	default:
		return fmt.Errorf("llm.provider must be 'OPENAI', 'CLAUDE' or 'NOOP', got '%s'", c.LLM.Provider)
	}
	return nil
}

// LoadConfig reads the optional yaml file, overlays environment
// variables on top and fills defaults. A missing file is not an error;
// the bot must be runnable from environment alone.
func LoadConfig(path string) (*Config, error) {
	var c Config
	if b, err := os.ReadFile(path); err == nil {
		if err := yaml.Unmarshal(b, &c); err != nil {
			return nil, fmt.Errorf("parsing %s: %w", path, err)
		}
	} else if !os.IsNotExist(err) {
		return nil, err
	}

	c.applyEnv()
	c.applyDefaults()

	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	return &c, nil
}

func (c *Config) applyEnv() {
	if v := os.Getenv("SYMBOLS"); v != "" {
		c.Symbols = splitSymbols(v)
	}
	if v := os.Getenv("DRY_RUN"); v != "" {
		if parseBool(v) {
			c.Mode = "DRY_RUN"
		} else {
			c.Mode = "LIVE"
		}
	}
	if v := os.Getenv("LOG_FILE"); v != "" {
		c.JournalFile = v
	}
	if v := os.Getenv("LLM_PROVIDER"); v != "" {
		c.LLM.Provider = strings.ToUpper(v)
	}
	if v := os.Getenv("OPENAI_MODEL"); v != "" {
		c.LLM.Model = v
	}
	if v := os.Getenv("MAX_TOKENS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.LLM.MaxTokens = n
		}
	}
	if v := os.Getenv("OMEGA_PROMPT_PATH"); v != "" {
		c.LLM.PromptPath = v
	}
	if v := os.Getenv("QUOTE_SOURCE"); v != "" {
		c.Quote.Source = strings.ToUpper(v)
	}
	if v := os.Getenv("FYERS_QUOTE_URL"); v != "" {
		c.Quote.URL = v
	}
	if v := os.Getenv("FYERS_ORDER_URL"); v != "" {
		c.Order.URL = v
	}
	// the Fyers token authorizes both quote and order endpoints
	if v := os.Getenv("FYERS_ACCESS_TOKEN"); v != "" {
		c.Quote.AccessToken = v
		c.Order.AccessToken = v
	}
	c.Kite.APIKey = os.Getenv("KITE_API_KEY")
	c.Kite.AccessToken = os.Getenv("KITE_ACCESS_TOKEN")
}

func (c *Config) applyDefaults() {
	if c.Mode == "" {
		c.Mode = "DRY_RUN"
	}
	if len(c.Symbols) == 0 {
		c.Symbols = []string{"NIFTY50"}
	}
	if c.JournalFile == "" {
		c.JournalFile = "signals.log"
	}
	if c.LLM.Provider == "" {
		c.LLM.Provider = "OPENAI"
	}
	if c.LLM.Model == "" {
		c.LLM.Model = "gpt-5.1"
	}
	if c.LLM.MaxTokens == 0 {
		c.LLM.MaxTokens = 600
	}
	if c.LLM.PromptPath == "" {
		c.LLM.PromptPath = "prompts/omega-fi-prompt.txt"
	}
	if c.Quote.Source == "" {
		c.Quote.Source = "REST"
	}
	if c.News.MaxHeadlines == 0 {
		c.News.MaxHeadlines = 5
	}
}

func splitSymbols(v string) []string {
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func parseBool(v string) bool {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "true", "1", "yes":
		return true
	}
	return false
}
