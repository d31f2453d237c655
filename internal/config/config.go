package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	// APIURL is the base URL of the storefront API, e.g. http://host:port/api.
	APIURL      string
	HTTPTimeout time.Duration

	// CatalogCacheCap bounds the by-id product cache.
	CatalogCacheCap int

	// SessionFile is where the CLI keeps its session cookie between runs;
	// without it every invocation would start with an empty cart.
	SessionFile string

	// Dev API server settings (cmd/apiserver).
	HTTPAddr     string
	SeedProducts int
}

// Load keeps the simple API and fatals on error in main().
func Load() Config {
	cfg, err := load()
	if err != nil {
		log.Fatalf("config load error: %v", err)
	}
	return cfg
}

func load() (Config, error) {
	_ = godotenv.Load("env/.env")

	cfg := Config{
		APIURL:          envDefault("API_URL", "http://localhost:8081/api"),
		HTTPTimeout:     envDurationMS("HTTP_TIMEOUT", 10*time.Second),
		CatalogCacheCap: envInt("CATALOG_CACHE_CAP", 256),
		SessionFile:     envDefault("SESSION_FILE", "env/.session"),
		HTTPAddr:        envDefault("HTTP_ADDR", ":8081"),
		SeedProducts:    envInt("SEED_PRODUCTS", 24),
	}

	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if strings.TrimSpace(c.APIURL) == "" {
		return &missingEnvError{Keys: []string{"API_URL"}}
	}
	if c.CatalogCacheCap <= 0 {
		log.Printf("CATALOG_CACHE_CAP is %d, adjusting to 1", c.CatalogCacheCap)
		c.CatalogCacheCap = 1
	}
	if c.HTTPTimeout <= 0 {
		log.Printf("HTTP_TIMEOUT is %v, adjusting to 10s", c.HTTPTimeout)
		c.HTTPTimeout = 10 * time.Second
	}
	return nil
}

type missingEnvError struct{ Keys []string }

func (e *missingEnvError) Error() string {
	return "missing required envs: " + strings.Join(e.Keys, ", ")
}

func envDefault(k, def string) string {
	if v := strings.TrimSpace(os.Getenv(k)); v != "" {
		return v
	}
	return def
}

func envInt(k string, def int) int {
	v := strings.TrimSpace(os.Getenv(k))
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		log.Printf("invalid %s=%q, using default %d: %v", k, v, def, err)
		return def
	}
	return n
}

// envDurationMS supports either plain integer milliseconds ("1500") or
// Go duration strings ("1.5s", "250ms", "2m").
func envDurationMS(k string, def time.Duration) time.Duration {
	v := strings.TrimSpace(os.Getenv(k))
	if v == "" {
		return def
	}
	if strings.IndexFunc(v, func(r rune) bool { return r < '0' || r > '9' }) != -1 {
		d, err := time.ParseDuration(v)
		if err != nil {
			log.Printf("invalid %s=%q, using default %v: %v", k, v, def, err)
			return def
		}
		return d
	}
	ms, err := strconv.Atoi(v)
	if err != nil {
		log.Printf("invalid %s=%q, using default %v: %v", k, v, def, err)
		return def
	}
	return time.Duration(ms) * time.Millisecond
}
