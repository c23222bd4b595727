package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds everything the server needs at startup. Instruments are
// provisioned from here and only from here: an instrument absent from the
// list does not exist as far as the engine is concerned.
type Config struct {
	GRPCAddr    string
	Instruments []string

	// PriceScale converts wire-side decimal prices to integer ticks:
	// ticks = price * PriceScale.
	PriceScale int64

	EntryWALDir      string
	ExitWALDir       string
	SnapshotDir      string
	SnapshotInterval time.Duration

	KafkaBrokers      []string
	TradesTopic       string
	DepthTopic        string
	BroadcastInterval time.Duration
	DepthInterval     time.Duration
	DepthLevels       int
}

func Default() Config {
	return Config{
		GRPCAddr:          ":5001",
		Instruments:       []string{"AAPL"},
		PriceScale:        10000,
		EntryWALDir:       "./data/wal_entry",
		ExitWALDir:        "./data/wal_exit",
		SnapshotDir:       "./data/snapshots",
		SnapshotInterval:  30 * time.Second,
		TradesTopic:       "trades",
		DepthTopic:        "depth",
		BroadcastInterval: 250 * time.Millisecond,
		DepthInterval:     time.Second,
		DepthLevels:       10,
	}
}

// Load reads configuration from a .env file (optional) and environment
// variables. Priority: ENV > .env file > defaults.
func Load(envPath string) Config {
	cfg := Default()

	if envPath != "" {
		_ = godotenv.Load(envPath)
	} else {
		_ = godotenv.Load()
	}

	cfg.GRPCAddr = getEnv("GRPC_ADDR", cfg.GRPCAddr)
	cfg.EntryWALDir = getEnv("ENTRY_WAL_DIR", cfg.EntryWALDir)
	cfg.ExitWALDir = getEnv("EXIT_WAL_DIR", cfg.ExitWALDir)
	cfg.SnapshotDir = getEnv("SNAPSHOT_DIR", cfg.SnapshotDir)
	cfg.TradesTopic = getEnv("TRADES_TOPIC", cfg.TradesTopic)
	cfg.DepthTopic = getEnv("DEPTH_TOPIC", cfg.DepthTopic)

	if v := os.Getenv("INSTRUMENTS"); v != "" {
		cfg.Instruments = splitList(v)
	}
	if v := os.Getenv("KAFKA_BROKERS"); v != "" {
		cfg.KafkaBrokers = splitList(v)
	}

	if v := os.Getenv("PRICE_SCALE"); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil && n > 0 {
			cfg.PriceScale = n
		}
	}
	if v := os.Getenv("DEPTH_LEVELS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.DepthLevels = n
		}
	}

	cfg.SnapshotInterval = getDuration("SNAPSHOT_INTERVAL_MS", cfg.SnapshotInterval)
	cfg.BroadcastInterval = getDuration("BROADCAST_INTERVAL_MS", cfg.BroadcastInterval)
	cfg.DepthInterval = getDuration("DEPTH_INTERVAL_MS", cfg.DepthInterval)

	return cfg
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getDuration(key string, defaultValue time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if ms, err := strconv.Atoi(v); err == nil && ms > 0 {
			return time.Duration(ms) * time.Millisecond
		}
	}
	return defaultValue
}

func splitList(v string) []string {
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
