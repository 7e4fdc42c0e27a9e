// Package unionfind 提供并查集 (Disjoint Set Union) 数据结构的多种实现。
//
// 算法原理.
// 并查集在 {0, ..., n-1} 的固定元素全集上维护一组不相交集合，
// 支持集合合并 (Union) 与代表元查询 (Find)。本包同时启用路径压缩与
// 按秩/按大小合并两种优化。
//
// 复杂度分析.
// - 时间复杂度: 单次操作均摊 O(α(n))，α 为反阿克曼函数。
// - 空间复杂度: O(n)。
package unionfind

import (
	"github.com/sobinrajan1999/dsa/xerrors"
)

// DSU 是按秩合并的并查集。
// 元素为 [0, n) 内的整数编号，构造后不再增删；零值不可用，必须通过 New 创建。
type DSU struct {
	parent []int // parent[i] 为 i 的父节点，根节点满足 parent[i] == i。
	rank   []int // 根所在树高度的上界，路径压缩后不再精确。
	count  int   // 当前连通分量数量。
}

// New 创建包含 n 个单元素集合的并查集。
func New(n int) (*DSU, error) {
	if n < 0 {
		return nil, xerrors.ErrNegativeSize
	}
	d := &DSU{
		parent: make([]int, n),
		rank:   make([]int, n),
		count:  n,
	}
	for i := range d.parent {
		d.parent[i] = i
	}
	return d, nil
}

// Len 返回元素全集的大小。
func (d *DSU) Len() int {
	return len(d.parent)
}

// Count 返回当前连通分量数量。
func (d *DSU) Count() int {
	return d.count
}

// Find 返回 x 所在集合的根，并对查找路径做路径压缩。
// 压缩只缩短后续查找的路径长度，不会改变集合的根。
func (d *DSU) Find(x int) (int, error) {
	if x < 0 || x >= len(d.parent) {
		return 0, xerrors.ErrIndexOutOfRange
	}
	return d.find(x), nil
}

// find 两趟迭代实现：先走到根，再把路径上的节点全部直接挂到根上。
// 不用递归，深链场景下栈深度与 n 无关。调用方保证 x 合法。
func (d *DSU) find(x int) int {
	root := x
	for d.parent[root] != root {
		root = d.parent[root]
	}
	for d.parent[x] != root {
		d.parent[x], x = root, d.parent[x]
	}
	return root
}

// Union 合并 x 与 y 所在的集合。
// 返回 true 表示发生了合并；返回 false 表示二者本已连通，
// 此时连通分量计数不变（可据此做环检测）。
func (d *DSU) Union(x, y int) (bool, error) {
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

	// 按秩合并：矮树挂到高树下，等高时任选一方做根并将其秩加一。
	switch {
	case d.rank[rootX] < d.rank[rootY]:
		d.parent[rootX] = rootY
	case d.rank[rootX] > d.rank[rootY]:
		d.parent[rootY] = rootX
	default:
		d.parent[rootY] = rootX
		d.rank[rootX]++
	}
	d.count--
	return true, nil
}

// Connected 判断 x 与 y 是否属于同一集合。
func (d *DSU) Connected(x, y int) (bool, error) {
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
