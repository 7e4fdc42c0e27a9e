package persistence

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/sobinrajan1999/dsa/config"
	"github.com/sobinrajan1999/dsa/logging"
	"github.com/sobinrajan1999/dsa/unionfind"
	"github.com/sobinrajan1999/dsa/xerrors"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/redis/go-redis/v9"
)

var (
	snapshotOps = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "dsu_snapshot_store_ops_total",
			Help: "The total number of snapshot store operations",
		},
		[]string{"backend", "op", "status"},
	)
	snapshotDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "dsu_snapshot_store_duration_seconds",
			Help:    "The duration of snapshot store operations",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"backend", "op"},
	)
)

func init() {
	prometheus.MustRegister(snapshotOps, snapshotDuration)
}

// keyPrefix 避免与同一 Redis 实例上其他业务的键冲突。
const keyPrefix = "dsa:snapshot:"

// RedisStore 将快照以 JSON 字符串形式保存在 Redis 中。
type RedisStore struct {
	client *redis.Client
	logger *logging.Logger
	ttl    time.Duration
}

// NewRedisStore 创建 Redis 快照存储并探活。
// 后端不可达时返回 ErrStoreUnavailable。
func NewRedisStore(cfg config.RedisConfig, logger *logging.Logger) (*RedisStore, error) {
	if logger == nil {
		logger = logging.Default()
	}
	client := redis.NewClient(&redis.Options{
		Addr:         cfg.Addr,
		Password:     cfg.Password,
		DB:           cfg.DB,
		DialTimeout:  cfg.DialTimeout,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		PoolSize:     cfg.PoolSize,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		logger.ErrorContext(ctx, "redis snapshot store unreachable", "addr", cfg.Addr, "error", err)
		return nil, xerrors.ErrStoreUnavailable
	}

	logger.InfoContext(ctx, "redis snapshot store connected", "addr", cfg.Addr, "db", cfg.DB)
	return &RedisStore{client: client, logger: logger, ttl: cfg.TTL}, nil
}

func observeStore(op string, start time.Time, err error) {
	status := "success"
	// 键不存在属于正常结果，不计入错误。
	if err != nil && !errors.Is(err, redis.Nil) {
		status = "error"
	}
	snapshotOps.WithLabelValues("redis", op, status).Inc()
	snapshotDuration.WithLabelValues("redis", op).Observe(time.Since(start).Seconds())
}

// Save 写入或覆盖 key 对应的快照。
func (s *RedisStore) Save(ctx context.Context, key string, snap *unionfind.Snapshot) error {
	if err := validateKey(key); err != nil {
		return err
	}

	data, err := json.Marshal(snap)
	if err != nil {
		return xerrors.WrapInternal(err, "encode snapshot")
	}

	start := time.Now()
	err = s.client.Set(ctx, keyPrefix+key, data, s.ttl).Err()
	observeStore("save", start, err)
	if err != nil {
		return xerrors.WrapInternal(err, "write snapshot to redis")
	}

	s.logger.InfoContext(ctx, "snapshot saved",
		"key", key,
		"elements", len(snap.Parents),
		"components", snap.Count)
	return nil
}

// Load 读取 key 对应的快照。
func (s *RedisStore) Load(ctx context.Context, key string) (*unionfind.Snapshot, error) {
	if err := validateKey(key); err != nil {
		return nil, err
	}

	start := time.Now()
	data, err := s.client.Get(ctx, keyPrefix+key).Bytes()
	observeStore("load", start, err)
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, xerrors.ErrSnapshotNotFound
		}
		return nil, xerrors.WrapInternal(err, "read snapshot from redis")
	}

	var snap unionfind.Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, xerrors.ErrSnapshotCorrupt
	}
	return &snap, nil
}

// Delete 删除 key 对应的快照。
func (s *RedisStore) Delete(ctx context.Context, key string) error {
	if err := validateKey(key); err != nil {
		return err
	}

	start := time.Now()
	deleted, err := s.client.Del(ctx, keyPrefix+key).Result()
	observeStore("delete", start, err)
	if err != nil {
		return xerrors.WrapInternal(err, "delete snapshot from redis")
	}
	if deleted == 0 {
		return xerrors.ErrSnapshotNotFound
	}
	return nil
}

// Close 释放底层连接池。
func (s *RedisStore) Close() error {
	return s.client.Close()
}
