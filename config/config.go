// Package config 提供了库配置的加载、校验与热更新能力.
package config

import (
	"sync/atomic"
	"time"

	"github.com/sobinrajan1999/dsa/logging"

	"github.com/fsnotify/fsnotify"
	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// Config 顶级配置结构.
type Config struct {
	Log      LogConfig      `mapstructure:"log"      toml:"log"`
	Snapshot SnapshotConfig `mapstructure:"snapshot" toml:"snapshot"`
	Redis    RedisConfig    `mapstructure:"redis"    toml:"redis"`
}

// LogConfig 日志输出与切割参数.
type LogConfig struct {
	Service    string `mapstructure:"service"     toml:"service"     validate:"required"`
	Module     string `mapstructure:"module"      toml:"module"`
	Level      string `mapstructure:"level"       toml:"level"       validate:"omitempty,oneof=debug info warn error"`
	File       string `mapstructure:"file"        toml:"file"`
	MaxSize    int    `mapstructure:"max_size"    toml:"max_size"`
	MaxBackups int    `mapstructure:"max_backups" toml:"max_backups"`
	MaxAge     int    `mapstructure:"max_age"     toml:"max_age"`
	Compress   bool   `mapstructure:"compress"    toml:"compress"`
}

// SnapshotConfig 快照文件存储参数.
type SnapshotConfig struct {
	Dir string `mapstructure:"dir" toml:"dir" validate:"required"`
}

// RedisConfig 快照 Redis 存储参数.
type RedisConfig struct {
	Addr         string        `mapstructure:"addr"          toml:"addr"          validate:"required,hostname_port"`
	Password     string        `mapstructure:"password"      toml:"password"`
	DB           int           `mapstructure:"db"            toml:"db"            validate:"min=0"`
	DialTimeout  time.Duration `mapstructure:"dial_timeout"  toml:"dial_timeout"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"  toml:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout" toml:"write_timeout"`
	PoolSize     int           `mapstructure:"pool_size"     toml:"pool_size"`
	TTL          time.Duration `mapstructure:"ttl"           toml:"ttl"` // 快照过期时间，0 表示永不过期
}

// ToLogging 转换为 logging 包的配置结构。
func (c LogConfig) ToLogging() logging.Config {
	return logging.Config{
		Service:    c.Service,
		Module:     c.Module,
		Level:      c.Level,
		File:       c.File,
		MaxSize:    c.MaxSize,
		MaxBackups: c.MaxBackups,
		MaxAge:     c.MaxAge,
		Compress:   c.Compress,
	}
}

// Manager 持有底层 viper 实例，支持配置热更新.
type Manager struct {
	v        *viper.Viper
	validate *validator.Validate
	current  atomic.Pointer[Config]
}

// Load 从指定路径加载并校验配置，格式由文件扩展名决定 (toml/yaml/json).
func Load(path string) (*Manager, error) {
	m := &Manager{
		v:        viper.New(),
		validate: validator.New(),
	}
	m.v.SetConfigFile(path)

	// 缺省值
	m.v.SetDefault("log.level", "info")
	m.v.SetDefault("log.module", "dsa")
	m.v.SetDefault("redis.dial_timeout", 3*time.Second)
	m.v.SetDefault("redis.read_timeout", time.Second)
	m.v.SetDefault("redis.write_timeout", time.Second)
	m.v.SetDefault("redis.pool_size", 8)

	if err := m.v.ReadInConfig(); err != nil {
		return nil, err
	}
	cfg, err := m.unmarshal()
	if err != nil {
		return nil, err
	}
	m.current.Store(cfg)
	return m, nil
}

func (m *Manager) unmarshal() (*Config, error) {
	var cfg Config
	if err := m.v.Unmarshal(&cfg); err != nil {
		return nil, err
	}
	if err := m.validate.Struct(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Config 返回最近一次成功加载的配置.
func (m *Manager) Config() *Config {
	return m.current.Load()
}

// Watch 监听配置文件变更并热更新。
// 新配置未通过校验时保留旧值，仅记录告警。
func (m *Manager) Watch(onChange func(*Config)) {
	m.v.OnConfigChange(func(e fsnotify.Event) {
		cfg, err := m.unmarshal()
		if err != nil {
			logging.Default().Warn("config reload rejected", "file", e.Name, "error", err)
			return
		}
		m.current.Store(cfg)
		logging.Default().Info("config reloaded", "file", e.Name)
		if onChange != nil {
			onChange(cfg)
		}
	})
	m.v.WatchConfig()
}
