package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
)

const (
	StorageFile   = "file"
	StorageSQLite = "sqlite"

	EnvDataPath    = "RIGHTSDAILY_DATA"
	EnvContentPath = "RIGHTSDAILY_CONTENT"
	EnvStorage     = "RIGHTSDAILY_STORAGE"
	EnvLogLevel    = "RIGHTSDAILY_LOG_LEVEL"
)

type Config struct {
	DataPath    string
	ContentPath string
	StatePath   string
	DBPath      string
	JournalPath string
	Storage     string
	LogLevel    string
}

// Options carries values given on the command line. Empty fields are
// resolved from the environment and then from defaults.
type Options struct {
	DataPath    string
	ContentPath string
	Storage     string
	LogLevel    string
	// EnvFile is loaded into the process environment when present.
	EnvFile string
}

func New(opts Options) (Config, error) {
	if opts.EnvFile != "" {
		if err := godotenv.Load(opts.EnvFile); err != nil && !os.IsNotExist(err) {
			return Config{}, fmt.Errorf("load env file: %w", err)
		}
	}

	dataPath := firstNonEmpty(opts.DataPath, os.Getenv(EnvDataPath), ".")
	contentPath := firstNonEmpty(opts.ContentPath, os.Getenv(EnvContentPath), filepath.Join(dataPath, "content"))
	storage := strings.ToLower(firstNonEmpty(opts.Storage, os.Getenv(EnvStorage), StorageFile))
	logLevel := firstNonEmpty(opts.LogLevel, os.Getenv(EnvLogLevel), "warn")

	switch storage {
	case StorageFile, StorageSQLite:
	default:
		return Config{}, fmt.Errorf("unsupported storage backend %q", storage)
	}

	statePath := filepath.Join(dataPath, ".rightsdaily")
	return Config{
		DataPath:    dataPath,
		ContentPath: contentPath,
		StatePath:   statePath,
		DBPath:      filepath.Join(statePath, "rightsdaily.db"),
		JournalPath: filepath.Join(dataPath, "progress-journal.md"),
		Storage:     storage,
		LogLevel:    logLevel,
	}, nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return strings.TrimSpace(v)
		}
	}
	return ""
}
