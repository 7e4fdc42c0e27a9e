// Package persistence 提供并查集快照的持久化存储。
// 并查集本身只存活于拥有者进程内，需要跨进程或跨重启延续连通状态时，
// 由调用方显式导出 Snapshot 并写入存储。
package persistence

import (
	"context"
	"strings"

	"github.com/sobinrajan1999/dsa/unionfind"
	"github.com/sobinrajan1999/dsa/xerrors"
)

// SnapshotStore 定义快照存储的统一接口。
// key 标识一份快照，不得为空或包含路径分隔符。
type SnapshotStore interface {
	// Save 写入或覆盖 key 对应的快照。
	Save(ctx context.Context, key string, snap *unionfind.Snapshot) error
	// Load 读取 key 对应的快照，不存在时返回 ErrSnapshotNotFound。
	Load(ctx context.Context, key string) (*unionfind.Snapshot, error)
	// Delete 删除 key 对应的快照，不存在时返回 ErrSnapshotNotFound。
	Delete(ctx context.Context, key string) error
}

// validateKey 统一各实现的 key 约束。
func validateKey(key string) error {
	if key == "" || strings.ContainsAny(key, "/\\") {
		return xerrors.ErrInvalidKey
	}
	return nil
}
