package unionfind

import (
	"github.com/sobinrajan1999/dsa/xerrors"
)

// SizedDSU 是按大小合并的并查集。
// 与 DSU 的区别在于辅助数组记录的是精确的集合大小而非秩，
// 因此可以在 O(find) 时间内回答 SetSize 查询。
type SizedDSU struct {
	parent []int
	size   []int // 仅根节点的取值有意义，为该集合的元素个数。
	count  int
}

// NewSized 创建包含 n 个单元素集合的按大小合并并查集。
func NewSized(n int) (*SizedDSU, error) {
	if n < 0 {
		return nil, xerrors.ErrNegativeSize
	}
	d := &SizedDSU{
		parent: make([]int, n),
		size:   make([]int, n),
		count:  n,
	}
	for i := range d.parent {
		d.parent[i] = i
		d.size[i] = 1
	}
	return d, nil
}

// Len 返回元素全集的大小。
func (d *SizedDSU) Len() int {
	return len(d.parent)
}

// Count 返回当前连通分量数量。
func (d *SizedDSU) Count() int {
	return d.count
}

// Find 返回 x 所在集合的根，并对查找路径做路径压缩。
func (d *SizedDSU) Find(x int) (int, error) {
	if x < 0 || x >= len(d.parent) {
		return 0, xerrors.ErrIndexOutOfRange
	}
	return d.find(x), nil
}

func (d *SizedDSU) find(x int) int {
	root := x
	for d.parent[root] != root {
		root = d.parent[root]
	}
	for d.parent[x] != root {
		d.parent[x], x = root, d.parent[x]
	}
	return root
}

// Union 合并 x 与 y 所在的集合，小集合并入大集合。
// 返回 true 表示发生了合并；返回 false 表示二者本已连通。
func (d *SizedDSU) Union(x, y int) (bool, error) {
	if x < 0 || x >= len(d.parent) {
		return false, xerrors.ErrIndexOutOfRange
	}
	if y < 0 || y >= len(d.parent) {
		return false, xerrors.ErrIndexOutOfRange
	}
	rootX, rootY := d.find(x), d.find(y)
	if rootX == rootY {
		return false, nil
	}
	if d.size[rootX] < d.size[rootY] {
		rootX, rootY = rootY, rootX
	}
	d.parent[rootY] = rootX
	d.size[rootX] += d.size[rootY]
	d.count--
	return true, nil
}

// Connected 判断 x 与 y 是否属于同一集合。
func (d *SizedDSU) Connected(x, y int) (bool, error) {
	rootX, err := d.Find(x)
	if err != nil {
		return false, err
	}
	rootY, err := d.Find(y)
	if err != nil {
		return false, err
	}
	return rootX == rootY, nil
}

// SetSize 返回 x 所在集合的元素个数。
func (d *SizedDSU) SetSize(x int) (int, error) {
	root, err := d.Find(x)
	if err != nil {
		return 0, err
	}
	return d.size[root], nil
}
