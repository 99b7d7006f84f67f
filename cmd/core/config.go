package main

import (
	"fmt"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"

	"github.com/JoeShih716/go-joint-ledger/internal/app/core/domain"
	"github.com/JoeShih716/go-joint-ledger/pkg/auth"
	"github.com/JoeShih716/go-joint-ledger/pkg/logger"
	"github.com/JoeShih716/go-joint-ledger/pkg/mysql"
)

// envPrefix 環境變數前綴，例如 LEDGER_ENGINE_TYPE=lmax
const envPrefix = "LEDGER_"

// LedgerType 設定使用哪種 Ledger
type LedgerType string

const (
	LedgerTypeMutex LedgerType = "mutex"
	LedgerTypeLMAX  LedgerType = "lmax"
)

type GRPCConfig struct {
	Addr       string `yaml:"addr" env:"ADDR"`
	Reflection bool   `yaml:"reflection" env:"REFLECTION"`
}

type EngineConfig struct {
	Type LedgerType `yaml:"type" env:"TYPE"`
	// BufferSize: LMAX 指令 channel 容量
	BufferSize int    `yaml:"buffer_size" env:"BUFFER_SIZE"`
	WALPath    string `yaml:"wal_path" env:"WAL_PATH"`
	// SnapshotInterval: 定期寫入 MySQL 快照的間隔 (MySQL 未啟用時無效)
	SnapshotInterval time.Duration `yaml:"snapshot_interval" env:"SNAPSHOT_INTERVAL"`
}

type EventsConfig struct {
	// LogPath: SQLite 事件紀錄檔
	LogPath    string `yaml:"log_path" env:"LOG_PATH"`
	BufferSize int    `yaml:"buffer_size" env:"BUFFER_SIZE"`
	// ShutdownTimeout: 關閉時等待事件送完的上限，逾時後放棄重試
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SHUTDOWN_TIMEOUT"`
}

type TracingConfig struct {
	// SampleRatio: 0 表示不取樣
	SampleRatio float64 `yaml:"sample_ratio" env:"SAMPLE_RATIO"`
	// Endpoint: OTLP/HTTP collector (host:port)，空字串表示不匯出
	Endpoint string `yaml:"endpoint" env:"ENDPOINT"`
	Insecure bool   `yaml:"insecure" env:"INSECURE"`
}

type Config struct {
	GRPC    GRPCConfig    `yaml:"grpc" envPrefix:"GRPC_"`
	Engine  EngineConfig  `yaml:"engine" envPrefix:"ENGINE_"`
	Rules   domain.Rules  `yaml:"rules" envPrefix:"RULES_"`
	Events  EventsConfig  `yaml:"events" envPrefix:"EVENTS_"`
	MySQL   mysql.Config  `yaml:"mysql" envPrefix:"MYSQL_"`
	Log     logger.Config `yaml:"log" envPrefix:"LOG_"`
	Auth    auth.Config   `yaml:"auth" envPrefix:"AUTH_"`
	Tracing TracingConfig `yaml:"tracing" envPrefix:"TRACING_"`
}

// loadConfig 讀取 yaml 設定檔，再以環境變數覆蓋，最後補上預設值
//
// 參數:
//
//	path: 設定檔路徑，檔案不存在時只使用環境變數與預設值
//
// 回傳:
//
//	Config: 設定
//	error: 讀檔、解析或驗證失敗
func loadConfig(path string) (Config, error) {
	var cfg Config
	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("parse config %s: %w", path, err)
		}
	case os.IsNotExist(err):
	default:
		return cfg, fmt.Errorf("read config %s: %w", path, err)
	}

	if err := env.ParseWithOptions(&cfg, env.Options{Prefix: envPrefix}); err != nil {
		return cfg, fmt.Errorf("parse env: %w", err)
	}

	cfg = cfg.withDefaults()
	if err := cfg.validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func (c Config) withDefaults() Config {
	if c.GRPC.Addr == "" {
		c.GRPC.Addr = ":50051"
	}
	if c.Engine.Type == "" {
		c.Engine.Type = LedgerTypeMutex
	}
	if c.Engine.BufferSize == 0 {
		c.Engine.BufferSize = 4096
	}
	if c.Engine.WALPath == "" {
		c.Engine.WALPath = "wal.log"
	}
	if c.Engine.SnapshotInterval == 0 {
		c.Engine.SnapshotInterval = time.Minute
	}
	if c.Events.LogPath == "" {
		c.Events.LogPath = "events.db"
	}
	if c.Events.BufferSize == 0 {
		c.Events.BufferSize = 1024
	}
	if c.Events.ShutdownTimeout == 0 {
		c.Events.ShutdownTimeout = 30 * time.Second
	}
	c.Rules = c.Rules.WithDefaults()
	c.MySQL = c.MySQL.WithDefaults()
	return c
}

func (c Config) validate() error {
	switch c.Engine.Type {
	case LedgerTypeMutex, LedgerTypeLMAX:
	default:
		return fmt.Errorf("invalid ledger type %q", c.Engine.Type)
	}
	if c.Rules.MinFunding <= 0 {
		return fmt.Errorf("min_funding must be positive, got %d", c.Rules.MinFunding)
	}
	if c.Auth.Secret == "" {
		return fmt.Errorf("auth secret is required (set %sAUTH_SECRET)", envPrefix)
	}
	if c.Tracing.SampleRatio < 0 || c.Tracing.SampleRatio > 1 {
		return fmt.Errorf("tracing sample_ratio must be within [0, 1], got %v", c.Tracing.SampleRatio)
	}
	return nil
}
