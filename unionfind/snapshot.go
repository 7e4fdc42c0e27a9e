package unionfind

import (
	"slices"

	"github.com/sobinrajan1999/dsa/xerrors"
)

// Snapshot 是 DSU 的可序列化状态快照。
// 字段为深拷贝，持有快照不会观察到原结构后续的变化。
type Snapshot struct {
	Parents []int `json:"parents"`
	Ranks   []int `json:"ranks"`
	Count   int   `json:"count"`
}

// Snapshot 导出当前状态。
func (d *DSU) Snapshot() *Snapshot {
	return &Snapshot{
		Parents: slices.Clone(d.parent),
		Ranks:   slices.Clone(d.rank),
		Count:   d.count,
	}
}

// FromSnapshot 根据快照重建 DSU。
// 快照在反序列化过程中可能被篡改或截断，重建前做完整性校验：
// 数组长度一致、父指针不越界、父指针森林无环、分量计数等于根的个数。
func FromSnapshot(s *Snapshot) (*DSU, error) {
	if s == nil {
		return nil, xerrors.ErrSnapshotCorrupt
	}
	n := len(s.Parents)
	if len(s.Ranks) != n {
		return nil, xerrors.ErrSnapshotCorrupt
	}

	roots := 0
	for i, p := range s.Parents {
		if p < 0 || p >= n {
			return nil, xerrors.ErrSnapshotCorrupt
		}
		if p == i {
			roots++
		}
	}
	if s.Count != roots {
		return nil, xerrors.ErrSnapshotCorrupt
	}
	if err := checkAcyclic(s.Parents); err != nil {
		return nil, err
	}

	return &DSU{
		parent: slices.Clone(s.Parents),
		rank:   slices.Clone(s.Ranks),
		count:  s.Count,
	}, nil
}

// checkAcyclic 校验父指针构成森林。
// 每个节点沿父指针走最终必须到达根；三色标记保证整体 O(n)。
func checkAcyclic(parent []int) error {
	const (
		unvisited = iota
		inProgress
		done
	)
	state := make([]uint8, len(parent))
	for i := range parent {
		if state[i] != unvisited {
			continue
		}
		var path []int
		x := i
		for state[x] == unvisited {
			state[x] = inProgress
			path = append(path, x)
			if parent[x] == x {
				break
			}
			x = parent[x]
		}
		if state[x] == inProgress && parent[x] != x {
			return xerrors.ErrSnapshotCorrupt
		}
		for _, p := range path {
			state[p] = done
		}
	}
	return nil
}
