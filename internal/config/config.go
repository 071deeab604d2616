package config

import (
	"errors"
	"fmt"
	"io/fs"
	"net"
	"net/url"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Backend selects the storage implementation.
type Backend string

const (
	BackendMemory   Backend = "memory"   // In-process maps, reset on restart
	BackendDatabase Backend = "database" // gorm with sqlite or postgres
)

func (b Backend) Valid() bool {
	return b == BackendMemory || b == BackendDatabase
}

// Storage configures the storage backend.
type Storage struct {
	Backend     Backend
	Dialect     string // sqlite or postgres, only used for BackendDatabase
	DSN         string
	AutoMigrate bool // Migrate the schema with gorm on startup
	Seed        bool // Seed default data, only used for BackendMemory
}

type Config struct {
	Port             string
	APIURL           *url.URL
	LogFormat        string // "human" or "json", empty for the default of the gin mode
	CORSAllowOrigins []string
	EnablePprof      bool
	Storage          Storage
}

// Load reads the configuration from the environment.
//
// If a .env file exists in the working directory, it is loaded first.
// Variables that are already set in the environment take precedence.
func Load() (Config, error) {
	err := godotenv.Load()
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("could not load .env file: %w", err)
	}

	port := getEnv("PORT", "8080")

	// Without API_URL, the API is served at the root of localhost. PORT is
	// checked by Validate.
	apiURL := &url.URL{Scheme: "http", Host: net.JoinHostPort("localhost", port)}
	if value := os.Getenv("API_URL"); value != "" {
		apiURL, err = url.Parse(value)
		if err != nil {
			return Config{}, fmt.Errorf("API_URL is not a valid URL: %w", err)
		}
	}

	autoMigrate, err := getEnvBool("DB_AUTO_MIGRATE", true)
	if err != nil {
		return Config{}, err
	}

	seed, err := getEnvBool("SEED_DEFAULTS", true)
	if err != nil {
		return Config{}, err
	}

	enablePprof, err := getEnvBool("ENABLE_PPROF", false)
	if err != nil {
		return Config{}, err
	}

	c := Config{
		Port:             port,
		APIURL:           apiURL,
		LogFormat:        os.Getenv("LOG_FORMAT"),
		CORSAllowOrigins: strings.Fields(os.Getenv("CORS_ALLOW_ORIGINS")),
		EnablePprof:      enablePprof,
		Storage: Storage{
			Backend:     Backend(getEnv("STORAGE_BACKEND", string(BackendMemory))),
			Dialect:     getEnv("DB_DIALECT", "sqlite"),
			DSN:         getEnv("DB_DSN", "data/ledger.db"),
			AutoMigrate: autoMigrate,
			Seed:        seed,
		},
	}

	return c, c.Validate()
}

// Validate returns an error listing all invalid settings.
func (c Config) Validate() error {
	var errs []error

	if port, err := strconv.Atoi(c.Port); err != nil || port < 1 || port > 65535 {
		errs = append(errs, fmt.Errorf("invalid PORT %q: must be a number between 1 and 65535", c.Port))
	}

	if c.APIURL == nil || c.APIURL.Scheme == "" || c.APIURL.Host == "" {
		errs = append(errs, errors.New("API_URL must be an absolute URL, e.g. https://ledger.example.com/api"))
	}

	if c.LogFormat != "" && c.LogFormat != "human" && c.LogFormat != "json" {
		errs = append(errs, fmt.Errorf("invalid LOG_FORMAT %q: must be human or json", c.LogFormat))
	}

	if !c.Storage.Backend.Valid() {
		errs = append(errs, fmt.Errorf("invalid STORAGE_BACKEND %q: must be %s or %s", c.Storage.Backend, BackendMemory, BackendDatabase))
	}

	if c.Storage.Backend == BackendDatabase {
		if c.Storage.Dialect != "sqlite" && c.Storage.Dialect != "postgres" {
			errs = append(errs, fmt.Errorf("invalid DB_DIALECT %q: must be sqlite or postgres", c.Storage.Dialect))
		}

		if c.Storage.DSN == "" {
			errs = append(errs, errors.New("DB_DSN must be set for the database backend"))
		}
	}

	return errors.Join(errs...)
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return fallback
}

func getEnvBool(key string, fallback bool) (bool, error) {
	value, ok := os.LookupEnv(key)
	if !ok || value == "" {
		return fallback, nil
	}

	b, err := strconv.ParseBool(value)
	if err != nil {
		return false, fmt.Errorf("invalid %s %q: must be true or false", key, value)
	}
	return b, nil
}
