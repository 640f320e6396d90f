// Load envs from .env
// Load YAML selector config
// Validate config
// Provide default values

package config

import (
	"fmt"
	"os"
	"strconv"

	mapset "github.com/deckarep/golang-set/v2"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Section holds the selectors for one profile section. All selectors are
// relative fragments: item is resolved under the page, the others under
// each matched item node.
type Section struct {
	ItemSelector        string `yaml:"item_selector"`
	TitleSelector       string `yaml:"title_selector"`
	DetailsSelector     string `yaml:"details_selector"`
	DescriptionSelector string `yaml:"description_selector"`
}

type Config struct {
	// Target profile URLs, in run order.
	Targets []string `yaml:"targets"`

	// Sections to extract; a nil section is skipped.
	Experience *Section `yaml:"experience"`
	Education  *Section `yaml:"education"`

	// Output destinations. Excel output is skipped when empty.
	OutputJSON  string `yaml:"output_json"`
	OutputExcel string `yaml:"output_excel"`

	// Paths
	CookiesPath string `yaml:"cookies_path"`
	CachePath   string `yaml:"cache_path"`

	// Behavior
	SkipSeen     bool `yaml:"skip_seen"`
	WaitForStart bool `yaml:"wait_for_start"`
	Headful      bool `yaml:"headful"`

	// Optional run-summary reporting; disabled when the token is empty.
	TelegramToken  string `yaml:"telegram_token" env:"TELEGRAM_BOT_TOKEN"`
	TelegramChatID int64  `yaml:"telegram_chat_id" env:"TELEGRAM_CHAT_ID"`
}

// Load reads and validates the YAML config at path. Any parse or
// validation failure is fatal to the run: the process must not proceed
// with a partially-parsed config.
func Load(path string) (*Config, error) {
	_ = godotenv.Load()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}

	cfg := &Config{}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config: parse %s: %w", path, err)
	}

	// Override with env vars
	if token := os.Getenv("TELEGRAM_BOT_TOKEN"); token != "" {
		cfg.TelegramToken = token
	}
	if chatID := os.Getenv("TELEGRAM_CHAT_ID"); chatID != "" {
		id, err := strconv.ParseInt(chatID, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("config: invalid TELEGRAM_CHAT_ID: %w", err)
		}
		cfg.TelegramChatID = id
	}

	// Set default values if not set
	if cfg.OutputJSON == "" {
		cfg.OutputJSON = "results/profiles.json"
	}
	if cfg.CookiesPath == "" {
		cfg.CookiesPath = ".cookies"
	}
	if cfg.CachePath == "" {
		cfg.CachePath = ".cache"
	}

	// Same profile listed twice would be harvested twice; keep the first
	// occurrence, preserving run order.
	seen := mapset.NewThreadUnsafeSet[string]()
	unique := make([]string, 0, len(cfg.Targets))
	for _, t := range cfg.Targets {
		if seen.Add(t) {
			unique = append(unique, t)
		}
	}
	cfg.Targets = unique

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if len(c.Targets) == 0 {
		return fmt.Errorf("config: at least one target profile URL is required")
	}
	if c.Experience == nil && c.Education == nil {
		return fmt.Errorf("config: at least one section (experience, education) is required")
	}
	for name, s := range map[string]*Section{"experience": c.Experience, "education": c.Education} {
		if s == nil {
			continue
		}
		if s.ItemSelector == "" {
			return fmt.Errorf("config: %s.item_selector is required", name)
		}
		if s.TitleSelector == "" {
			return fmt.Errorf("config: %s.title_selector is required", name)
		}
	}
	return nil
}
