package persistence

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/sobinrajan1999/dsa/logging"
	"github.com/sobinrajan1999/dsa/unionfind"
	"github.com/sobinrajan1999/dsa/xerrors"
)

// FileStore 将快照以 JSON 文件形式保存在单个目录下，每个 key 一个文件。
type FileStore struct {
	dir    string
	logger *logging.Logger
}

// NewFileStore 创建文件快照存储，目录不存在时自动创建。
func NewFileStore(dir string, logger *logging.Logger) (*FileStore, error) {
	if logger == nil {
		logger = logging.Default()
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, xerrors.WrapInternal(err, "create snapshot dir")
	}
	return &FileStore{dir: dir, logger: logger}, nil
}

func (s *FileStore) path(key string) string {
	return filepath.Join(s.dir, key+".json")
}

// Save 写入快照。先写临时文件再重命名，避免写入中断留下半份快照。
func (s *FileStore) Save(ctx context.Context, key string, snap *unionfind.Snapshot) error {
	if err := validateKey(key); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	data, err := json.Marshal(snap)
	if err != nil {
		return xerrors.WrapInternal(err, "encode snapshot")
	}

	tmp, err := os.CreateTemp(s.dir, key+".*.tmp")
	if err != nil {
		return xerrors.WrapInternal(err, "create temp snapshot file")
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return xerrors.WrapInternal(err, "write snapshot")
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return xerrors.WrapInternal(err, "close snapshot file")
	}
	if err := os.Rename(tmp.Name(), s.path(key)); err != nil {
		os.Remove(tmp.Name())
		return xerrors.WrapInternal(err, "rename snapshot file")
	}

	s.logger.InfoContext(ctx, "snapshot saved",
		"key", key,
		"elements", len(snap.Parents),
		"components", snap.Count)
	return nil
}

// Load 读取快照。文件不存在返回 ErrSnapshotNotFound，内容不可解码返回 ErrSnapshotCorrupt。
func (s *FileStore) Load(ctx context.Context, key string) (*unionfind.Snapshot, error) {
	if err := validateKey(key); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(s.path(key))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, xerrors.ErrSnapshotNotFound
		}
		return nil, xerrors.WrapInternal(err, "read snapshot file")
	}

	var snap unionfind.Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, xerrors.ErrSnapshotCorrupt
	}
	return &snap, nil
}

// Delete 删除快照文件。
func (s *FileStore) Delete(ctx context.Context, key string) error {
	if err := validateKey(key); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	if err := os.Remove(s.path(key)); err != nil {
		if os.IsNotExist(err) {
			return xerrors.ErrSnapshotNotFound
		}
		return xerrors.WrapInternal(err, "remove snapshot file")
	}
	return nil
}
