package graph

import (
	"github.com/sobinrajan1999/dsa/unionfind"
	"github.com/sobinrajan1999/dsa/xerrors"
)

// HasCycle 判断 n 个节点的无向图中给定边集是否构成环。
// 依据是并查集的合并信号：某条边的两个端点在处理该边前已连通，即成环。
func HasCycle(n int, edges [][2]int) (bool, error) {
	dsu, err := unionfind.New(n)
	if err != nil {
		return false, err
	}
	for _, e := range edges {
		merged, err := dsu.Union(e[0], e[1])
		if err != nil {
			return false, err
		}
		if !merged {
			return true, nil
		}
	}
	return false, nil
}

// RedundantConnection 返回按输入顺序第一条使图成环的边。
// 面向 1 起始编号的输入（树加一条多余边的惯用形式），
// 元素全集按边集中出现的最大编号确定。
// 边集始终不成环时返回 ErrNoRedundantEdge。
func RedundantConnection(edges [][2]int) ([2]int, error) {
	maxID := 0
	for _, e := range edges {
		maxID = max(maxID, e[0], e[1])
	}
	dsu, err := unionfind.New(maxID + 1)
	if err != nil {
		return [2]int{}, err
	}
	for _, e := range edges {
		merged, err := dsu.Union(e[0], e[1])
		if err != nil {
			return [2]int{}, err
		}
		if !merged {
			return e, nil
		}
	}
	return [2]int{}, xerrors.ErrNoRedundantEdge
}
