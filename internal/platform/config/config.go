package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"
)

// Server captures process-level configuration.
type Server struct {
	Addr string

	// PostgresDSN selects the durable access store. Empty means in-memory,
	// which is the default for local development and unit tests.
	PostgresDSN string

	Redis RedisConfig

	// KafkaSeeds enables the lead-event publisher when non-empty.
	KafkaSeeds     []string
	LeadEventTopic string

	// SheetURL is the off-platform resource handed out by the bottom-of-page
	// subscribe path and the root redirect.
	SheetURL string

	// AdminKeyHash is the bcrypt hash guarding the application export
	// endpoint. Empty disables the endpoint entirely.
	AdminKeyHash string

	// ProgressFile is where the catalog progress map is persisted.
	ProgressFile string
}

// RedisConfig holds connection settings for the access-change notifier.
type RedisConfig struct {
	URL          string
	PoolSize     int
	MinIdleConns int
	DialTimeout  time.Duration
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

const defaultSheetURL = "https://docs.google.com/spreadsheets/d/1BaeOJeP5oIpbumgh5VN4LJZAhjuByTSssxbMlHuyHrI/view?gid=1589637341"

// FromEnv builds a Server config from environment variables so main stays lean.
func FromEnv() Server {
	addr := os.Getenv("FIXLIST_ADDR")
	if addr == "" {
		addr = ":8080"
	}

	sheetURL := os.Getenv("FIXLIST_SHEET_URL")
	if sheetURL == "" {
		sheetURL = defaultSheetURL
	}

	topic := os.Getenv("FIXLIST_LEAD_EVENT_TOPIC")
	if topic == "" {
		topic = "fixlist.lead-events"
	}

	progressFile := os.Getenv("FIXLIST_PROGRESS_FILE")
	if progressFile == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			home = "."
		}
		progressFile = filepath.Join(home, ".fixlist", "progress.json")
	}

	var seeds []string
	if raw := os.Getenv("FIXLIST_KAFKA_SEEDS"); raw != "" {
		for _, s := range strings.Split(raw, ",") {
			if s = strings.TrimSpace(s); s != "" {
				seeds = append(seeds, s)
			}
		}
	}

	return Server{
		Addr:        addr,
		PostgresDSN: os.Getenv("FIXLIST_POSTGRES_DSN"),
		Redis: RedisConfig{
			URL:          os.Getenv("FIXLIST_REDIS_URL"),
			PoolSize:     10,
			MinIdleConns: 2,
			DialTimeout:  5 * time.Second,
			ReadTimeout:  3 * time.Second,
			WriteTimeout: 3 * time.Second,
		},
		KafkaSeeds:     seeds,
		LeadEventTopic: topic,
		SheetURL:       sheetURL,
		AdminKeyHash:   os.Getenv("FIXLIST_ADMIN_KEY_HASH"),
		ProgressFile:   progressFile,
	}
}
