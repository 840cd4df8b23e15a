package model

import "time"

// Config is the complete semflow configuration
type Config struct {
	Compose     ComposeConfig     `yaml:"compose"`
	Data        DataConfig        `yaml:"data"`
	Concurrency ConcurrencyConfig `yaml:"concurrency"`
	LLM         LLMConfig         `yaml:"llm"`
	Output      OutputConfig      `yaml:"output"`
}

// ComposeConfig controls event composition behavior
type ComposeConfig struct {
	// Events whose fused confidence falls below this threshold are
	// filtered from the output
	ConfidenceThreshold float32 `yaml:"confidence_threshold"`

	// Upper bound on events emitted per sentence
	MaxEventsPerSentence int `yaml:"max_events_per_sentence"`
}

// DataConfig controls verb-class data loading
type DataConfig struct {
	// Directory of verb-class YAML files; empty means built-in inventory only
	ClassDir string `yaml:"class_dir"`

	// Watch the class directory and hot-swap the index on changes
	Watch bool `yaml:"watch"`

	// Lookup memoization cache
	CacheEnabled  bool          `yaml:"cache_enabled"`
	CacheTTL      time.Duration `yaml:"cache_ttl"`
	CacheCleanup  time.Duration `yaml:"cache_cleanup"`
}

// ConcurrencyConfig controls batch parallelism
type ConcurrencyConfig struct {
	BatchWorkers int `yaml:"batch_workers"`
}

// LLMConfig configures the optional gloss generator.
// Gloss output never affects composition confidence.
type LLMConfig struct {
	Provider  string `yaml:"provider"` // "" disables glossing
	Model     string `yaml:"model"`
	APIKey    string `yaml:"api_key,omitempty"`
	BaseURL   string `yaml:"base_url,omitempty"`
	Timeout   int    `yaml:"timeout"` // seconds
	MaxTokens int    `yaml:"max_tokens"`
}

// OutputConfig controls rendering
type OutputConfig struct {
	Format  string `yaml:"format"` // "yaml" or "json"
	Verbose bool   `yaml:"verbose"`
}

// DefaultConfig returns the standard configuration
func DefaultConfig() *Config {
	return &Config{
		Compose: ComposeConfig{
			ConfidenceThreshold:  0.2,
			MaxEventsPerSentence: 5,
		},
		Data: DataConfig{
			ClassDir:     "",
			Watch:        false,
			CacheEnabled: true,
			CacheTTL:     10 * time.Minute,
			CacheCleanup: 30 * time.Minute,
		},
		Concurrency: ConcurrencyConfig{
			BatchWorkers: 4,
		},
		LLM: LLMConfig{
			Provider:  "",
			Timeout:   30,
			MaxTokens: 500,
		},
		Output: OutputConfig{
			Format: "yaml",
		},
	}
}
