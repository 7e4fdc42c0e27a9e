package unionfind

import (
	"sync"
)

// ConcurrentDSU 是 DSU 的互斥锁封装。
// Find 会通过路径压缩修改内部状态，不存在只读操作，
// 因此所有方法一律持排它锁，读写锁在此没有收益。
type ConcurrentDSU struct {
	mu  sync.Mutex
	dsu *DSU
}

// NewConcurrent 创建包含 n 个单元素集合的并发安全并查集。
func NewConcurrent(n int) (*ConcurrentDSU, error) {
	d, err := New(n)
	if err != nil {
		return nil, err
	}
	return &ConcurrentDSU{dsu: d}, nil
}

// Len 返回元素全集的大小。
func (c *ConcurrentDSU) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.dsu.Len()
}

// Count 返回当前连通分量数量。
func (c *ConcurrentDSU) Count() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.dsu.Count()
}

// Find 返回 x 所在集合的根。
func (c *ConcurrentDSU) Find(x int) (int, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.dsu.Find(x)
}

// Union 合并 x 与 y 所在的集合。
func (c *ConcurrentDSU) Union(x, y int) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.dsu.Union(x, y)
}

// Connected 判断 x 与 y 是否属于同一集合。
func (c *ConcurrentDSU) Connected(x, y int) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.dsu.Connected(x, y)
}

// Snapshot 返回当前状态的一致性快照。
func (c *ConcurrentDSU) Snapshot() *Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.dsu.Snapshot()
}
