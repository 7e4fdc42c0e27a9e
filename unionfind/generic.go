package unionfind

// GenericDSU 是以任意可比较类型为键的并查集。
// 元素全集不固定：未注册的键在首次参与任何操作时自动成为单元素集合，
// 因此不存在编号越界的失败路径。
type GenericDSU[K comparable] struct {
	parent map[K]K
	rank   map[K]int
	count  int
}

// NewGeneric 创建一个空的泛型并查集。
func NewGeneric[K comparable]() *GenericDSU[K] {
	return &GenericDSU[K]{
		parent: make(map[K]K),
		rank:   make(map[K]int),
	}
}

// Add 注册键 k 为单元素集合。
// 返回 true 表示新注册；k 已存在时不做任何修改并返回 false。
func (d *GenericDSU[K]) Add(k K) bool {
	if _, ok := d.parent[k]; ok {
		return false
	}
	d.parent[k] = k
	d.rank[k] = 0
	d.count++
	return true
}

// Len 返回已注册的键数量。
func (d *GenericDSU[K]) Len() int {
	return len(d.parent)
}

// Count 返回当前集合数量。
func (d *GenericDSU[K]) Count() int {
	return d.count
}

// Find 返回 k 所在集合的根，未注册的键先注册再返回其自身。
func (d *GenericDSU[K]) Find(k K) K {
	d.Add(k)
	return d.find(k)
}

func (d *GenericDSU[K]) find(k K) K {
	root := k
	for d.parent[root] != root {
		root = d.parent[root]
	}
	for d.parent[k] != root {
		d.parent[k], k = root, d.parent[k]
	}
	return root
}

// Union 合并 a 与 b 所在的集合，未注册的键自动注册。
// 返回 true 表示发生了合并。
func (d *GenericDSU[K]) Union(a, b K) bool {
	rootA, rootB := d.Find(a), d.Find(b)
	if rootA == rootB {
		return false
	}
	switch {
	case d.rank[rootA] < d.rank[rootB]:
		d.parent[rootA] = rootB
	case d.rank[rootA] > d.rank[rootB]:
		d.parent[rootB] = rootA
	default:
		d.parent[rootB] = rootA
		d.rank[rootA]++
	}
	d.count--
	return true
}

// Connected 判断 a 与 b 是否属于同一集合，未注册的键自动注册。
func (d *GenericDSU[K]) Connected(a, b K) bool {
	return d.Find(a) == d.Find(b)
}
