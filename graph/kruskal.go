// Package graph 提供构建在并查集之上的无向图算法：
// 最小生成树、环检测与连通分量统计。
package graph

import (
	"cmp"
	"slices"

	"github.com/sobinrajan1999/dsa/unionfind"
)

// Edge 表示一条带权无向边，端点为 [0, n) 内的节点编号。
type Edge struct {
	From   int
	To     int
	Weight int64
}

// Kruskal 在 n 个节点与给定边集上构建最小生成树。
// 图不连通时返回最小生成森林，不视为错误。
// 返回选中的边集（按权重升序）与总权重。
//
// 复杂度分析.
// - 时间复杂度: O(E log E) 排序占主导，并查集部分均摊 O(E α(n))。
// - 空间复杂度: O(E + n)。
func Kruskal(n int, edges []Edge) ([]Edge, int64, error) {
	dsu, err := unionfind.New(n)
	if err != nil {
		return nil, 0, err
	}

	sorted := slices.Clone(edges)
	slices.SortStableFunc(sorted, func(a, b Edge) int {
		return cmp.Compare(a.Weight, b.Weight)
	})

	mst := make([]Edge, 0, max(n-1, 0))
	var total int64
	for _, e := range sorted {
		merged, err := dsu.Union(e.From, e.To)
		if err != nil {
			return nil, 0, err
		}
		if !merged {
			continue
		}
		mst = append(mst, e)
		total += e.Weight
		if len(mst) == n-1 {
			break
		}
	}
	return mst, total, nil
}
