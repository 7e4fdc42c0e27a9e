package graph

import (
	"github.com/sobinrajan1999/dsa/unionfind"
)

// CountComponents 统计 n 个节点与给定边集构成的无向图的连通分量数量。
func CountComponents(n int, edges [][2]int) (int, error) {
	dsu, err := unionfind.New(n)
	if err != nil {
		return 0, err
	}
	for _, e := range edges {
		if _, err := dsu.Union(e[0], e[1]); err != nil {
			return 0, err
		}
	}
	return dsu.Count(), nil
}

// Components 返回各连通分量的成员列表。
// 组内按节点编号升序；组间按各组最小节点编号升序。
func Components(n int, edges [][2]int) ([][]int, error) {
	dsu, err := unionfind.New(n)
	if err != nil {
		return nil, err
	}
	for _, e := range edges {
		if _, err := dsu.Union(e[0], e[1]); err != nil {
			return nil, err
		}
	}

	// 按根分组；节点升序遍历保证组内与组间的顺序。
	groups := make(map[int]int, dsu.Count())
	result := make([][]int, 0, dsu.Count())
	for i := 0; i < n; i++ {
		root, _ := dsu.Find(i)
		idx, ok := groups[root]
		if !ok {
			idx = len(result)
			groups[root] = idx
			result = append(result, nil)
		}
		result[idx] = append(result[idx], i)
	}
	return result, nil
}
