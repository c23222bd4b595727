package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDefaults(t *testing.T) {
	cfg := Load("/nonexistent/.env")

	assert.Equal(t, ":5001", cfg.GRPCAddr)
	assert.Equal(t, []string{"AAPL"}, cfg.Instruments)
	assert.Equal(t, int64(10000), cfg.PriceScale)
	assert.Equal(t, 30*time.Second, cfg.SnapshotInterval)
	assert.Empty(t, cfg.KafkaBrokers)
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("GRPC_ADDR", ":6001")
	t.Setenv("INSTRUMENTS", "AAPL, MSFT ,GOOG")
	t.Setenv("KAFKA_BROKERS", "k1:9092,k2:9092")
	t.Setenv("PRICE_SCALE", "100")
	t.Setenv("SNAPSHOT_INTERVAL_MS", "5000")
	t.Setenv("DEPTH_LEVELS", "25")

	cfg := Load("/nonexistent/.env")

	assert.Equal(t, ":6001", cfg.GRPCAddr)
	assert.Equal(t, []string{"AAPL", "MSFT", "GOOG"}, cfg.Instruments)
	assert.Equal(t, []string{"k1:9092", "k2:9092"}, cfg.KafkaBrokers)
	assert.Equal(t, int64(100), cfg.PriceScale)
	assert.Equal(t, 5*time.Second, cfg.SnapshotInterval)
	assert.Equal(t, 25, cfg.DepthLevels)
}

func TestInvalidNumbersKeepDefaults(t *testing.T) {
	t.Setenv("PRICE_SCALE", "-1")
	t.Setenv("SNAPSHOT_INTERVAL_MS", "abc")

	cfg := Load("/nonexistent/.env")

	assert.Equal(t, int64(10000), cfg.PriceScale)
	assert.Equal(t, 30*time.Second, cfg.SnapshotInterval)
}
