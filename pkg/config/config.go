package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

//go:generate go run ../../cmd/schema/main.go schema.json

// Config holds the application configuration
type Config struct {
	Server struct {
		Listen  string        `yaml:"listen" json:"listen" jsonschema:"default=:8080,description=HTTP server listen address"`
		Timeout time.Duration `yaml:"timeout" json:"timeout" jsonschema:"default=30s,description=HTTP server timeout"`
	} `yaml:"server" json:"server" jsonschema:"description=Server configuration"`

	Fetch      FetchConfig      `yaml:"fetch" json:"fetch" jsonschema:"description=Feed and article fetching configuration"`
	Extraction ExtractionConfig `yaml:"extraction" json:"extraction" jsonschema:"description=Article body extraction configuration"`
	Warmup     WarmupConfig     `yaml:"warmup" json:"warmup" jsonschema:"description=Background cache warming configuration"`

	// Topics maps topic keys to feed sources and keyword filters. When
	// empty the built-in registry of Polish financial sources is used.
	Topics       map[string]Topic `yaml:"topics" json:"topics" jsonschema:"description=Topic registry: feed URLs and keyword filters per topic key"`
	DefaultTopic string           `yaml:"default_topic" json:"default_topic" jsonschema:"default=biznes,description=Topic key used when the requested one is unknown"`
}

// FetchConfig holds HTTP fetching settings for feeds and article pages
type FetchConfig struct {
	FeedTimeout     time.Duration `yaml:"feed_timeout" json:"feed_timeout" jsonschema:"default=10s,description=Timeout for a single feed fetch"`
	FeedCacheTTL    time.Duration `yaml:"feed_cache_ttl" json:"feed_cache_ttl" jsonschema:"default=5m,description=How long fetched feed documents stay cached"`
	ArticleTimeout  time.Duration `yaml:"article_timeout" json:"article_timeout" jsonschema:"default=8s,description=Timeout for a single article page fetch"`
	ArticleCacheTTL time.Duration `yaml:"article_cache_ttl" json:"article_cache_ttl" jsonschema:"default=30m,description=How long fetched article pages stay cached"`
	UserAgent       string        `yaml:"user_agent" json:"user_agent" jsonschema:"default=FusionFinanceBot/1.0 (+https://fusionfinance.pl),description=User agent for feed requests"`
	MaxConcurrent   int           `yaml:"max_concurrent" json:"max_concurrent" jsonschema:"default=4,description=Maximum concurrent feed fetches per aggregation"`
	Attempts        int           `yaml:"attempts" json:"attempts" jsonschema:"default=2,description=Fetch attempts per feed URL including retries"`
	RateLimit       time.Duration `yaml:"rate_limit" json:"rate_limit" jsonschema:"default=500ms,description=Minimum delay between article page fetches"`
}

// ExtractionConfig holds article body extraction settings
type ExtractionConfig struct {
	MinSiteRuleLength  int  `yaml:"min_site_rule_length" json:"min_site_rule_length" jsonschema:"default=100,description=Minimum captured HTML length for a site-specific rule match"`
	MinGenericLength   int  `yaml:"min_generic_length" json:"min_generic_length" jsonschema:"default=200,description=Minimum captured HTML length for a generic rule match"`
	MinParagraphLength int  `yaml:"min_paragraph_length" json:"min_paragraph_length" jsonschema:"default=40,description=Minimum paragraph length kept by the harvesting fallback"`
	DisableReadability bool `yaml:"disable_readability" json:"disable_readability" jsonschema:"default=false,description=Disable the trafilatura fallback after all selector tiers fail"`
	DescriptionLimit   int  `yaml:"description_limit" json:"description_limit" jsonschema:"default=300,description=Maximum description length in list views"`
}

// WarmupConfig holds background cache warming settings. Warming is disabled
// unless a cron schedule is set.
type WarmupConfig struct {
	Schedule string   `yaml:"schedule" json:"schedule" jsonschema:"description=Cron schedule for cache warming (empty disables)"`
	Topics   []string `yaml:"topics" json:"topics" jsonschema:"description=Topic keys to keep warm"`
	Limit    int      `yaml:"limit" json:"limit" jsonschema:"default=30,description=Item limit used for warmup aggregations"`
}

// Topic describes one taxonomy bucket: which feeds to poll and which
// keyword filter refines the result. An empty keyword set passes all items.
type Topic struct {
	URLs    []string `yaml:"urls" json:"urls" jsonschema:"description=Ordered list of feed URLs"`
	Include []string `yaml:"include" json:"include" jsonschema:"description=Case-insensitive keywords, at least one must match title+description"`
	Exclude []string `yaml:"exclude" json:"exclude" jsonschema:"description=Case-insensitive keywords, any match rejects the item"`
}

// Load reads configuration from a YAML file. A missing file is not an
// error, the built-in defaults are used instead.
func Load(path string) (*Config, error) {
	var cfg Config

	if path != "" {
		data, err := os.ReadFile(path) //nolint:gosec // file path comes from CLI flag
		if err != nil {
			if !os.IsNotExist(err) {
				return nil, fmt.Errorf("read config file: %w", err)
			}
		} else {
			// expand environment variables
			expanded := os.ExpandEnv(string(data))
			if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
				return nil, fmt.Errorf("parse config: %w", err)
			}
		}
	}

	setDefaults(&cfg)

	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	// verify against embedded schema
	if err := VerifyAgainstEmbeddedSchema(&cfg); err != nil {
		// log warning but don't fail - schema validation is supplementary
		fmt.Printf("warning: schema validation failed: %v\n", err)
	}

	return &cfg, nil
}

// Default returns the configuration with all built-in defaults applied.
func Default() *Config {
	var cfg Config
	setDefaults(&cfg)
	return &cfg
}

func setDefaults(cfg *Config) {
	// server defaults
	if cfg.Server.Listen == "" {
		cfg.Server.Listen = ":8080"
	}
	if cfg.Server.Timeout == 0 {
		cfg.Server.Timeout = 30 * time.Second
	}

	// fetch defaults
	if cfg.Fetch.FeedTimeout == 0 {
		cfg.Fetch.FeedTimeout = 10 * time.Second
	}
	if cfg.Fetch.FeedCacheTTL == 0 {
		cfg.Fetch.FeedCacheTTL = 5 * time.Minute
	}
	if cfg.Fetch.ArticleTimeout == 0 {
		cfg.Fetch.ArticleTimeout = 8 * time.Second
	}
	if cfg.Fetch.ArticleCacheTTL == 0 {
		cfg.Fetch.ArticleCacheTTL = 30 * time.Minute
	}
	if cfg.Fetch.UserAgent == "" {
		cfg.Fetch.UserAgent = "FusionFinanceBot/1.0 (+https://fusionfinance.pl)"
	}
	if cfg.Fetch.MaxConcurrent == 0 {
		cfg.Fetch.MaxConcurrent = 4
	}
	if cfg.Fetch.Attempts == 0 {
		cfg.Fetch.Attempts = 2
	}
	if cfg.Fetch.RateLimit == 0 {
		cfg.Fetch.RateLimit = 500 * time.Millisecond
	}

	// extraction defaults
	if cfg.Extraction.MinSiteRuleLength == 0 {
		cfg.Extraction.MinSiteRuleLength = 100
	}
	if cfg.Extraction.MinGenericLength == 0 {
		cfg.Extraction.MinGenericLength = 200
	}
	if cfg.Extraction.MinParagraphLength == 0 {
		cfg.Extraction.MinParagraphLength = 40
	}
	if cfg.Extraction.DescriptionLimit == 0 {
		cfg.Extraction.DescriptionLimit = 300
	}

	// warmup defaults
	if cfg.Warmup.Limit == 0 {
		cfg.Warmup.Limit = 30
	}

	// topic registry defaults
	if len(cfg.Topics) == 0 {
		cfg.Topics = DefaultTopics()
	}
	if cfg.DefaultTopic == "" {
		cfg.DefaultTopic = "biznes"
	}
}

// validate checks configuration for correctness
func validate(cfg *Config) error {
	if cfg.Server.Timeout < time.Second {
		return fmt.Errorf("server.timeout must be at least 1 second")
	}
	if cfg.Fetch.FeedTimeout < time.Second {
		return fmt.Errorf("fetch.feed_timeout must be at least 1 second")
	}
	if cfg.Fetch.ArticleTimeout < time.Second {
		return fmt.Errorf("fetch.article_timeout must be at least 1 second")
	}
	if cfg.Fetch.MaxConcurrent < 1 {
		return fmt.Errorf("fetch.max_concurrent must be at least 1")
	}
	if cfg.Fetch.Attempts < 1 {
		return fmt.Errorf("fetch.attempts must be at least 1")
	}
	if cfg.Extraction.MinParagraphLength < 0 {
		return fmt.Errorf("extraction.min_paragraph_length must be non-negative")
	}

	if _, ok := cfg.Topics[cfg.DefaultTopic]; !ok {
		return fmt.Errorf("default_topic %q is not present in topics", cfg.DefaultTopic)
	}
	for key, topic := range cfg.Topics {
		if len(topic.URLs) == 0 {
			return fmt.Errorf("topic %q has no feed URLs", key)
		}
	}
	for _, key := range cfg.Warmup.Topics {
		if _, ok := cfg.Topics[key]; !ok {
			return fmt.Errorf("warmup topic %q is not present in topics", key)
		}
	}

	return nil
}

// GetServerConfig returns server configuration
func (c *Config) GetServerConfig() (listen string, timeout time.Duration) {
	return c.Server.Listen, c.Server.Timeout
}

// GetFetchConfig returns fetching configuration
func (c *Config) GetFetchConfig() FetchConfig {
	return c.Fetch
}

// GetExtractionConfig returns article extraction configuration
func (c *Config) GetExtractionConfig() ExtractionConfig {
	return c.Extraction
}
