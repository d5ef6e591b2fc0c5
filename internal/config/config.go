package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/jessevdk/go-flags"
	"gopkg.in/yaml.v3"
)

const defaultEndpoint = "https://hn.algolia.com/api/v1/search?query="

type Config struct {
	CacheDir          string        `yaml:"cache_dir"`
	DBPath            string        `yaml:"db_path"`
	LogPath           string        `yaml:"log_path"`
	Endpoint          string        `yaml:"endpoint"`
	InitialQuery      string        `yaml:"initial_query"`
	UserAgent         string        `yaml:"user_agent"`
	SearchTTL         time.Duration `yaml:"search_ttl"`
	RequestTimeout    time.Duration `yaml:"request_timeout"`
	RefreshInterval   time.Duration `yaml:"refresh_interval"`
	RequestsPerSecond float64       `yaml:"requests_per_second"`
	FetchPages        int           `yaml:"fetch_pages"`
	Debug             bool          `yaml:"debug"`
}

func Default() Config {
	cacheDir := filepath.Join(userConfigDir(), "hackerstories")
	return Config{
		CacheDir:          cacheDir,
		DBPath:            filepath.Join(cacheDir, "cache.db"),
		LogPath:           filepath.Join(cacheDir, "debug.log"),
		Endpoint:          defaultEndpoint,
		InitialQuery:      "React",
		UserAgent:         "hackerstories/1.0",
		SearchTTL:         5 * time.Minute,
		RequestTimeout:    10 * time.Second,
		RefreshInterval:   0,
		RequestsPerSecond: 2,
		FetchPages:        1,
	}
}

// Options are the command line flags. Every flag can also be given
// through its environment variable.
type Options struct {
	ConfigFile string        `long:"config" env:"HACKERSTORIES_CONFIG" description:"Path to a YAML config file"`
	CacheDir   string        `long:"cache-dir" env:"HACKERSTORIES_CACHE_DIR" description:"Directory for the cache database and log"`
	Query      string        `short:"q" long:"query" env:"HACKERSTORIES_QUERY" description:"Search term used when none is saved"`
	Endpoint   string        `long:"endpoint" env:"HACKERSTORIES_ENDPOINT" description:"Search endpoint, the query is appended to it"`
	Pages      int           `long:"pages" env:"HACKERSTORIES_PAGES" description:"Number of result pages to fetch per search"`
	Refresh    time.Duration `long:"refresh" env:"HACKERSTORIES_REFRESH" description:"Re-run the current search at this interval (0 disables)"`
	Debug      bool          `long:"debug" env:"HACKERSTORIES_DEBUG" description:"Enable debug logging"`
}

// ErrHelp is returned by Load when help output was requested.
var ErrHelp = errors.New("help requested")

// Load builds the configuration from the defaults, the YAML config file
// (the --config flag, or config.yml in the cache dir if it exists) and
// the command line, in that order of precedence.
func Load(args []string) (Config, error) {
	var opts Options
	parser := flags.NewParser(&opts, flags.Default)
	if _, err := parser.ParseArgs(args); err != nil {
		var flagsErr *flags.Error
		if errors.As(err, &flagsErr) && flagsErr.Type == flags.ErrHelp {
			return Config{}, ErrHelp
		}
		return Config{}, fmt.Errorf("parsing flags: %w", err)
	}

	cfg := Default()
	// The flag locates config.yml; mergeOptions applies it again so it
	// wins over a cache_dir from the file.
	if opts.CacheDir != "" {
		cfg.SetCacheDir(opts.CacheDir)
	}

	path := opts.ConfigFile
	required := path != ""
	if !required {
		path = filepath.Join(cfg.CacheDir, "config.yml")
	}
	if err := cfg.mergeFile(path, required); err != nil {
		return Config{}, err
	}

	cfg.mergeOptions(opts)

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// SetCacheDir moves the cache directory and the files kept inside it.
func (c *Config) SetCacheDir(dir string) {
	c.CacheDir = dir
	c.DBPath = filepath.Join(dir, "cache.db")
	c.LogPath = filepath.Join(dir, "debug.log")
}

// Validate reports the first invalid setting.
func (c Config) Validate() error {
	if c.Endpoint == "" {
		return fmt.Errorf("endpoint is required")
	}
	if c.DBPath == "" {
		return fmt.Errorf("database path is required")
	}
	if c.FetchPages <= 0 {
		return fmt.Errorf("invalid fetch pages: %d", c.FetchPages)
	}
	if c.RefreshInterval < 0 {
		return fmt.Errorf("invalid refresh interval: %s", c.RefreshInterval)
	}
	if c.SearchTTL < 0 {
		return fmt.Errorf("invalid search ttl: %s", c.SearchTTL)
	}
	if c.RequestTimeout < 0 {
		return fmt.Errorf("invalid request timeout: %s", c.RequestTimeout)
	}
	if c.RequestsPerSecond < 0 {
		return fmt.Errorf("invalid requests per second: %v", c.RequestsPerSecond)
	}
	return nil
}

func (c *Config) mergeFile(path string, required bool) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) && !required {
			return nil
		}
		return fmt.Errorf("reading config file: %w", err)
	}

	var file Config
	if err := yaml.Unmarshal(data, &file); err != nil {
		return fmt.Errorf("parsing config file %s: %w", path, err)
	}

	if file.CacheDir != "" {
		c.SetCacheDir(file.CacheDir)
	}
	if file.DBPath != "" {
		c.DBPath = file.DBPath
	}
	if file.LogPath != "" {
		c.LogPath = file.LogPath
	}
	if file.Endpoint != "" {
		c.Endpoint = file.Endpoint
	}
	if file.InitialQuery != "" {
		c.InitialQuery = file.InitialQuery
	}
	if file.UserAgent != "" {
		c.UserAgent = file.UserAgent
	}
	if file.SearchTTL != 0 {
		c.SearchTTL = file.SearchTTL
	}
	if file.RequestTimeout != 0 {
		c.RequestTimeout = file.RequestTimeout
	}
	if file.RefreshInterval != 0 {
		c.RefreshInterval = file.RefreshInterval
	}
	if file.RequestsPerSecond != 0 {
		c.RequestsPerSecond = file.RequestsPerSecond
	}
	if file.FetchPages != 0 {
		c.FetchPages = file.FetchPages
	}
	if file.Debug {
		c.Debug = true
	}
	return nil
}

func (c *Config) mergeOptions(opts Options) {
	if opts.CacheDir != "" {
		c.SetCacheDir(opts.CacheDir)
	}
	if opts.Query != "" {
		c.InitialQuery = opts.Query
	}
	if opts.Endpoint != "" {
		c.Endpoint = opts.Endpoint
	}
	if opts.Pages != 0 {
		c.FetchPages = opts.Pages
	}
	if opts.Refresh != 0 {
		c.RefreshInterval = opts.Refresh
	}
	if opts.Debug {
		c.Debug = true
	}
}

func userConfigDir() string {
	if dir, err := os.UserConfigDir(); err == nil {
		return dir
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config")
}
