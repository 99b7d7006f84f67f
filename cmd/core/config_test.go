package main

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JoeShih716/go-joint-ledger/internal/app/core/domain"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadConfigFromFile(t *testing.T) {
	path := writeConfig(t, `
grpc:
  addr: ":6000"
engine:
  type: lmax
  wal_path: /tmp/ledger.wal
  snapshot_interval: 30s
rules:
  min_funding: 500
mysql:
  enabled: true
  host: db
auth:
  secret: s3cret
  ttl: 2h
`)
	cfg, err := loadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, ":6000", cfg.GRPC.Addr)
	assert.Equal(t, LedgerTypeLMAX, cfg.Engine.Type)
	assert.Equal(t, "/tmp/ledger.wal", cfg.Engine.WALPath)
	assert.Equal(t, 30*time.Second, cfg.Engine.SnapshotInterval)
	assert.Equal(t, int64(500), cfg.Rules.MinFunding)
	assert.True(t, cfg.MySQL.Enabled)
	assert.Equal(t, 3306, cfg.MySQL.Port)
	assert.Equal(t, 2*time.Hour, cfg.Auth.TTL)
	assert.Equal(t, "events.db", cfg.Events.LogPath)
	assert.Equal(t, 30*time.Second, cfg.Events.ShutdownTimeout)
}

func TestLoadConfigEnvOverridesFile(t *testing.T) {
	path := writeConfig(t, `
engine:
  type: mutex
auth:
  secret: from-file
`)
	t.Setenv("LEDGER_ENGINE_TYPE", "lmax")
	t.Setenv("LEDGER_AUTH_SECRET", "from-env")
	t.Setenv("LEDGER_RULES_MIN_FUNDING", "42")
	t.Setenv("LEDGER_MYSQL_HOST", "mysql.internal")

	cfg, err := loadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, LedgerTypeLMAX, cfg.Engine.Type)
	assert.Equal(t, "from-env", cfg.Auth.Secret)
	assert.Equal(t, int64(42), cfg.Rules.MinFunding)
	assert.Equal(t, "mysql.internal", cfg.MySQL.Host)
}

func TestLoadConfigDefaultsWithoutFile(t *testing.T) {
	t.Setenv("LEDGER_AUTH_SECRET", "x")

	cfg, err := loadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)
	assert.Equal(t, ":50051", cfg.GRPC.Addr)
	assert.Equal(t, LedgerTypeMutex, cfg.Engine.Type)
	assert.Equal(t, int64(domain.DefaultMinFunding), cfg.Rules.MinFunding)
	assert.False(t, cfg.MySQL.Enabled)
}

func TestLoadConfigValidation(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{name: "missing secret", content: "engine:\n  type: mutex\n"},
		{name: "unknown ledger type", content: "engine:\n  type: mysql\nauth:\n  secret: x\n"},
		{name: "negative min funding", content: "rules:\n  min_funding: -1\nauth:\n  secret: x\n"},
		{name: "sample ratio out of range", content: "tracing:\n  sample_ratio: 2\nauth:\n  secret: x\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := loadConfig(writeConfig(t, tt.content))
			assert.Error(t, err)
		})
	}
}
