package xerrors

var (
	// ErrNegativeSize 元素数量为负。
	ErrNegativeSize = New(ErrInvalidArg, 400001, "negative size", "universe size must be non-negative", nil)
	// ErrIndexOutOfRange 元素编号越界。
	ErrIndexOutOfRange = New(ErrInvalidArg, 400002, "index out of range", "element id must be in [0, n)", nil)
	// ErrInvalidKey 快照 key 非法。
	ErrInvalidKey = New(ErrInvalidArg, 400003, "invalid key", "key must be non-empty and must not contain path separators", nil)
	// ErrSnapshotCorrupt 快照数据损坏或不自洽。
	ErrSnapshotCorrupt = New(ErrInvalidArg, 400004, "snapshot corrupt", "parent forest is inconsistent or not decodable", nil)
	// ErrSnapshotNotFound 指定 key 不存在快照。
	ErrSnapshotNotFound = New(ErrNotFound, 404001, "snapshot not found", "no snapshot stored under the given key", nil)
	// ErrNoRedundantEdge 边集中不存在成环边。
	ErrNoRedundantEdge = New(ErrNotFound, 404002, "no redundant edge", "the edge list never closes a cycle", nil)
	// ErrStoreUnavailable 快照存储后端不可用。
	ErrStoreUnavailable = New(ErrUnavailable, 503001, "snapshot store unavailable", "backend did not respond to ping", nil)
)
